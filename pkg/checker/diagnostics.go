package checker

import "fmt"

// Diagnostic is one checker error. Line is the source line of the
// offending statement, or 0 when the error is not tied to a line.
type Diagnostic struct {
	Line    int
	Message string
}

func (d *Diagnostic) Error() string {
	if d.Line > 0 {
		return fmt.Sprintf("line %d: checker error, %s", d.Line, d.Message)
	}
	return fmt.Sprintf("checker error, %s", d.Message)
}

// errorf appends a diagnostic. No pass aborts on its first error; the
// diagnostics accumulate across all passes.
func (c *Checker) errorf(line int, format string, args ...any) {
	c.Diagnostics = append(c.Diagnostics, &Diagnostic{
		Line:    line,
		Message: fmt.Sprintf(format, args...),
	})
}
