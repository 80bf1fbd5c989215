package checker

import (
	"strings"

	"toy-qucs/pkg/netlist"
)

// buildSubcircuits lifts every `Def' statement out of the given list
// into the subcircuit registry, recursing into nested definition
// bodies. It returns the list with the definitions removed.
func (c *Checker) buildSubcircuits(root []*netlist.Statement) []*netlist.Statement {
	var out []*netlist.Statement
	for _, def := range root {
		if def.Type == "Def" {
			def.Sub = c.buildSubcircuits(def.Sub)
			c.Subcircuits = append(c.Subcircuits, def)
		} else {
			out = append(out, def)
		}
	}
	return out
}

// findSubcircuit returns the registered subcircuit definition with
// the given name, or nil.
func (c *Checker) findSubcircuit(name string) *netlist.Statement {
	for _, def := range c.Subcircuits {
		if def.Instance == name {
			return def
		}
	}
	return nil
}

// getSubcircuit returns the definition referenced by the `Type'
// property of a subcircuit instance, or nil.
func (c *Checker) getSubcircuit(def *netlist.Statement) *netlist.Statement {
	if val := def.FindReference("Type"); val != nil {
		return c.findSubcircuit(val.Ident)
	}
	return nil
}

// validateSubCycles detects cyclic subcircuit-type dependencies with
// a depth-first search carrying the current dependency path. On a
// clean branch the path is restored so sibling branches start from
// the caller's path; on errors it is kept for the report. It returns
// the number of cycles found.
func (c *Checker) validateSubCycles(root *netlist.Statement, typeName, instance string, deps *[]string) int {
	for _, dep := range *deps {
		if dep == typeName {
			c.errorf(0, "cyclic definition of `%s:%s' detected, involves: %s",
				typeName, instance, strings.Join(append(*deps, typeName), " "))
			return 1
		}
	}
	*deps = append(*deps, typeName)

	errors := 0
	checked := make(map[string]bool)
	for _, def := range root.Sub {
		if def.Type != "Sub" {
			continue
		}
		val := def.FindReference("Type")
		if val == nil || checked[val.Ident] {
			continue
		}
		checked[val.Ident] = true
		sub := c.findSubcircuit(val.Ident)
		if sub == nil {
			continue
		}
		saved := append([]string(nil), *deps...)
		if err := c.validateSubCycles(sub, sub.Instance, instance, deps); err != 0 {
			errors += err
		} else {
			*deps = saved
		}
	}
	return errors
}

// validateSubcircuits checks each subcircuit instance in the list:
// the `Type' reference must name a registered definition, node counts
// of instance and definition must agree, and the definition graph
// reached from it must be acyclic. The cycle count is published for
// the nonlinearity counter.
func (c *Checker) validateSubcircuits(root []*netlist.Statement) {
	for _, def := range root {
		if def.Type != "Sub" {
			continue
		}
		val := c.validateReference(def, "Type")
		if val == nil {
			continue
		}
		sub := c.findSubcircuit(val.Ident)
		if sub == nil {
			c.errorf(def.Line, "no such subcircuit `%s' found as referred in `%s:%s'",
				val.Ident, def.Type, def.Instance)
			continue
		}
		if n1, n2 := len(def.Nodes), len(sub.Nodes); n1 != n2 {
			c.errorf(def.Line, "subcircuit type `%s' requires %d nodes in `%s:%s', found %d",
				sub.Instance, n2, def.Type, def.Instance, n1)
		}
		var deps []string
		c.subCycles += c.validateSubCycles(sub, sub.Instance, def.Instance, &deps)
	}
}
