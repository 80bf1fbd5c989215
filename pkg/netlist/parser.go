package netlist

import (
	"bufio"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// numberRe splits a raw property value into its numeric part and the
// trailing SI scale/unit suffix, e.g. "1 kOhm" or "5.6e-3m".
var numberRe = regexp.MustCompile(`^([+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)\s*(.*)$`)

// Parse reads a netlist in the qucsator text syntax and returns the
// statement list. Each line is one statement:
//
//	Type:Instance node ... Key="Value" ...
//
// Actions carry a leading dot (".DC:DC1"). Subcircuit bodies are
// bracketed by ".Def:Name ports..." and ".Def:End". Comment lines
// start with "#" or "//", vector values are written "[1;2;3]" and
// quoting of property values is optional.
func Parse(input string) ([]*Statement, error) {
	scanner := bufio.NewScanner(strings.NewReader(input))

	var root []*Statement
	var defs []*Statement // stack of open .Def blocks

	lineNr := 0
	for scanner.Scan() {
		lineNr++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		stmt, err := parseLine(line, lineNr)
		if err != nil {
			return nil, err
		}

		if stmt.Type == "Def" && stmt.Instance == "End" {
			if len(defs) == 0 {
				return nil, fmt.Errorf("line %d: .Def:End without open definition", lineNr)
			}
			defs = defs[:len(defs)-1]
			continue
		}

		if len(defs) > 0 {
			parent := defs[len(defs)-1]
			parent.Sub = append(parent.Sub, stmt)
		} else {
			root = append(root, stmt)
		}
		if stmt.Type == "Def" {
			defs = append(defs, stmt)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading netlist: %v", err)
	}
	if len(defs) > 0 {
		return nil, fmt.Errorf("line %d: unterminated definition `Def:%s'",
			defs[len(defs)-1].Line, defs[len(defs)-1].Instance)
	}
	return root, nil
}

func parseLine(line string, lineNr int) (*Statement, error) {
	fields, err := splitFields(line)
	if err != nil {
		return nil, fmt.Errorf("line %d: %v", lineNr, err)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("line %d: empty statement", lineNr)
	}

	head := fields[0]
	action := strings.HasPrefix(head, ".")
	head = strings.TrimPrefix(head, ".")

	typeName, instance, ok := strings.Cut(head, ":")
	if !ok || typeName == "" || instance == "" {
		return nil, fmt.Errorf("line %d: malformed statement head `%s', expected Type:Instance", lineNr, fields[0])
	}
	// Def brackets a subcircuit body; it is a definition, not an action.
	if typeName == "Def" {
		action = false
	}

	stmt := &Statement{
		Type:     typeName,
		Instance: instance,
		Action:   action,
		Line:     lineNr,
	}

	for _, field := range fields[1:] {
		key, raw, isPair := strings.Cut(field, "=")
		if !isPair {
			stmt.Nodes = append(stmt.Nodes, &Node{Name: field})
			continue
		}
		if key == "" {
			return nil, fmt.Errorf("line %d: property without a key in `%s'", lineNr, field)
		}
		value, err := parseValue(raw)
		if err != nil {
			return nil, fmt.Errorf("line %d: property `%s': %v", lineNr, key, err)
		}
		stmt.Pairs = append(stmt.Pairs, &Pair{Key: key, Value: value})
	}
	return stmt, nil
}

// splitFields splits a statement line on whitespace while keeping
// double-quoted property values intact, so `R="1 kOhm"` stays one
// field (without the quotes).
func splitFields(line string) ([]string, error) {
	var fields []string
	var cur strings.Builder
	inQuote := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
		case !inQuote && (r == ' ' || r == '\t'):
			if cur.Len() > 0 {
				fields = append(fields, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteRune(r)
		}
	}
	if inQuote {
		return nil, fmt.Errorf("unterminated quote")
	}
	if cur.Len() > 0 {
		fields = append(fields, cur.String())
	}
	return fields, nil
}

// parseValue turns the raw text of a property value into a Value:
// a vector for "[v1;v2;...]", a scalar with raw scale suffix when the
// text starts with a number, an identifier otherwise.
func parseValue(raw string) (*Value, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("empty value")
	}

	if strings.HasPrefix(raw, "[") {
		if !strings.HasSuffix(raw, "]") {
			return nil, fmt.Errorf("unterminated vector `%s'", raw)
		}
		body := raw[1 : len(raw)-1]
		var elems []*Value
		for _, part := range strings.Split(body, ";") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			elem, err := parseScalar(part)
			if err != nil {
				return nil, err
			}
			elems = append(elems, elem)
		}
		if len(elems) == 0 {
			return nil, fmt.Errorf("empty vector `%s'", raw)
		}
		return &Value{Values: elems}, nil
	}
	return parseScalar(raw)
}

func parseScalar(raw string) (*Value, error) {
	m := numberRe.FindStringSubmatch(raw)
	if m == nil {
		// Not a number: a bare identifier.
		return &Value{Ident: raw}, nil
	}
	number, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number `%s': %v", raw, err)
	}
	return &Value{Number: number, Scale: m[2]}, nil
}
