package checker

import (
	"strings"

	"toy-qucs/pkg/netlist"
)

// validateStrips checks every microstrip component: its `Subst'
// reference must resolve to exactly one SUBST definition in the same
// scope.
func (c *Checker) validateStrips(root []*netlist.Statement) {
	for _, def := range root {
		if def.Action || !isMicrostrip(def.Type) {
			continue
		}
		val := c.validateReference(def, "Subst")
		if val == nil {
			continue
		}
		if countDefinition(root, "SUBST", val.Ident) != 1 {
			c.errorf(def.Line, "no such substrate `%s' found as specified in `%s:%s'",
				val.Ident, def.Type, def.Instance)
		}
	}
}

// countNodeUses counts occurrences of the node name in component
// statements (not actions, not nodesets).
func countNodeUses(root []*netlist.Statement, name string) int {
	count := 0
	for _, def := range root {
		if def.Action || def.Nodeset {
			continue
		}
		for _, node := range def.Nodes {
			if node.Name == name {
				count++
			}
		}
	}
	return count
}

// countNodesets counts nodesets binding the given node, marking every
// binding past the first as a duplicate.
func countNodesets(root []*netlist.Statement, name string) int {
	count := 0
	for _, def := range root {
		if !def.Nodeset || def.Duplicate || len(def.Nodes) == 0 {
			continue
		}
		if def.Nodes[0].Name == name {
			count++
			if count > 1 {
				def.Duplicate = true
			}
		}
	}
	return count
}

// validateNodesets checks each nodeset in its scope: the referenced
// node must exist in some component and no other nodeset may target
// the same node. Subcircuit boundaries are not crossed.
func (c *Checker) validateNodesets(root []*netlist.Statement) {
	for _, def := range root {
		if !def.Nodeset || len(def.Nodes) != 1 {
			continue
		}
		node := def.Nodes[0].Name
		if countNodeUses(root, node) <= 0 {
			c.errorf(def.Line, "no such node `%s' found as referenced by `%s:%s'",
				node, def.Type, def.Instance)
		}
		if countNodesets(root, node) > 1 {
			c.errorf(def.Line, "the node `%s' is not uniquely defined by `%s:%s'",
				node, def.Type, def.Instance)
		}
	}
}

// validateParaCycles walks the Sim dependencies of parameter sweeps
// starting at the given instance. Revisiting an instance already on
// the path is a cyclic definition; the reported chain begins and ends
// with the revisited instance.
func (c *Checker) validateParaCycles(root []*netlist.Statement, instance string, deps []string) {
	for _, def := range root {
		if !def.Action || def.Instance != instance {
			continue
		}
		for _, dep := range deps {
			if dep == instance {
				c.errorf(0, "cyclic definition of `%s' detected, involves: %s",
					instance, strings.Join(append(deps, instance), " "))
				return
			}
		}
		deps = append(deps, instance)
		if def.Type == "SW" {
			if val := def.FindReference("Sim"); val != nil {
				c.validateParaCycles(root, val.Ident, deps)
				return
			}
		}
	}
}

// validatePara validates each parameter sweep: the Sim property must
// be an identifier naming exactly one action, a sweep must not refer
// to itself, and transitive Sim chains must be acyclic.
func (c *Checker) validatePara(root []*netlist.Statement) {
	for _, def := range root {
		if !def.Action || def.Type != "SW" {
			continue
		}
		val := c.validateReference(def, "Sim")
		if val == nil {
			continue
		}
		if def.Instance == val.Ident {
			c.errorf(def.Line, "definition `%s:%s' refers to itself",
				def.Type, def.Instance)
			continue
		}
		if countAction(root, val.Ident) != 1 {
			c.errorf(def.Line, "no such action `%s' found as referred in `%s:%s'",
				val.Ident, def.Type, def.Instance)
		}
		c.validateParaCycles(root, val.Ident, nil)
	}
}

// validatePorts checks that `Pac' port numbers are unique. Every
// unordered pair of ports is compared exactly once.
func (c *Checker) validatePorts(root []*netlist.Statement) {
	type port struct {
		def *netlist.Statement
		num int
	}
	var ports []port
	for _, def := range root {
		if def.Action || def.Type != "Pac" {
			continue
		}
		if val := def.FindPropValue("Num"); val != nil {
			ports = append(ports, port{def, int(val.Number)})
		}
	}
	for i := 0; i < len(ports); i++ {
		for j := i + 1; j < len(ports); j++ {
			if ports[i].num != ports[j].num {
				continue
			}
			a, b := ports[i].def, ports[j].def
			c.errorf(a.Line, "`%s' definitions with duplicate `Num=%d' property found: "+
				"`%s:%s' and `%s:%s'", a.Type, ports[i].num,
				a.Type, a.Instance, b.Type, b.Instance)
		}
	}
}

// validateLists checks the sweep-kind specific property sets of SW,
// AC and SP actions: const/list sweeps need Values (a singleton for
// const) and reject Start/Stop/Points; lin/log sweeps need
// Start/Stop/Points and reject Values.
func (c *Checker) validateLists(root []*netlist.Statement) {
	for _, def := range root {
		if !def.Action {
			continue
		}
		if def.Type != "SW" && def.Type != "AC" && def.Type != "SP" {
			continue
		}
		val := def.FindReference("Type")
		if val == nil {
			continue
		}
		switch val.Ident {
		case "const", "list":
			values := def.FindPropValue("Values")
			if values == nil {
				c.errorf(def.Line, "required property `Values' not found in `%s:%s'",
					def.Type, def.Instance)
			} else {
				if val.Ident == "const" && len(values.Scalars()) > 1 {
					c.errorf(def.Line, "value of `Values' needs to be a single constant "+
						"value in `%s:%s', no lists possible", def.Type, def.Instance)
				}
				values.Vector = true
				evaluateScale(values)
			}
			for _, key := range []string{"Start", "Stop", "Points"} {
				if def.FindPropValue(key) != nil {
					c.errorf(def.Line, "extraneous property `%s' is invalid in `%s:%s'",
						key, def.Type, def.Instance)
				}
			}
		case "lin", "log":
			for _, key := range []string{"Start", "Stop", "Points"} {
				if def.FindPropValue(key) == nil {
					c.errorf(def.Line, "required property `%s' not found in `%s:%s'",
						key, def.Type, def.Instance)
				}
			}
			if def.FindPropValue("Values") != nil {
				c.errorf(def.Line, "extraneous property `Values' is invalid in `%s:%s'",
					def.Type, def.Instance)
			}
		}
	}
}

// validateActions checks the simulation directives of the netlist:
// at least one action, S-parameter analyses need a Pac port, and a
// nonlinear netlist with an AC or SP analysis needs exactly one DC
// action.
func (c *Checker) validateActions(root []*netlist.Statement) {
	if countDefinitions(root, "", true) < 1 {
		c.errorf(0, "no actions .XX defined")
	} else {
		a := countDefinitions(root, "SP", true)
		if a >= 1 {
			if n := countDefinitions(root, "Pac", false); n < 1 {
				c.errorf(0, "%d `Pac' definitions found, at least 1 required", n)
			}
		}
		a += countDefinitions(root, "AC", true)
		nl := c.countNonlinearities(root)
		n := countDefinitions(root, "DC", true)
		if n > 1 {
			c.errorf(0, "the .DC action is defined %dx, single or none required", n)
		}
		if a >= 1 && nl >= 1 && n < 1 {
			c.errorf(0, "a .DC action is required for this circuit definition "+
				"(accounted %d non-linearities)", nl)
		}
	}
	c.validatePara(root)
	c.validatePorts(root)
	c.validateLists(root)
}
