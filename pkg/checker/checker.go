// Package checker validates a parsed netlist against the statement
// schema, resolves identifier references, detects cyclic sweep and
// subcircuit definitions and finally expands subcircuit instances
// into a flat netlist for the numerical engine.
package checker

import (
	"fmt"

	"toy-qucs/pkg/equation"
	"toy-qucs/pkg/netlist"
	"toy-qucs/pkg/schema"
)

// Checker owns the state of one netlist check: the root statement
// list, the lifted subcircuit definitions, the equation variable set
// and the accumulated diagnostics.
type Checker struct {
	Root        []*netlist.Statement
	Subcircuits []*netlist.Statement
	Diagnostics []*Diagnostic

	eqns      *equation.Set
	subCycles int
}

// New creates a checker for the given root statement list. eqns may
// be nil when no equation subsystem is present.
func New(root []*netlist.Statement, eqns *equation.Set) *Checker {
	return &Checker{Root: root, eqns: eqns}
}

// Run performs the full check and, when no errors were found, the
// subcircuit expansion. The pass order matters: schema checks run
// per list, then the action validation whose nonlinearity counting
// depends on the subcircuit cycle flag, then the sweep variable
// uniqueness pass. Expansion only happens on a clean netlist. After
// a successful Run, c.Root is the flat netlist.
func (c *Checker) Run() error {
	// lift subcircuit definitions out of the root netlist
	c.Root = c.buildSubcircuits(c.Root)

	c.checkList(c.Root)
	c.checkList(c.Subcircuits)
	for _, def := range c.Subcircuits {
		c.checkList(def.Sub)
	}

	c.validateActions(c.Root)
	c.checkVariables(c.Root)

	if len(c.Diagnostics) == 0 {
		c.Root = c.expandSubcircuits(c.Root)
		return nil
	}
	return fmt.Errorf("netlist check failed with %d error(s)", len(c.Diagnostics))
}

// checkList runs the per-statement schema checks and the
// cross-statement validators over one statement list (the root
// netlist, the subcircuit registry, or one subcircuit body). The
// list is also the resolution scope for identifier references.
func (c *Checker) checkList(root []*netlist.Statement) {
	for _, def := range root {
		available := schema.Find(def.Type, def.Action)
		if available == nil {
			c.errorf(def.Line, "invalid definition type `%s'", def.Type)
		} else {
			c.checkStatement(root, def, available)
		}
		n := countDefinition(root, def.Type, def.Instance)
		if n != 1 && !def.Duplicate {
			c.errorf(def.Line, "found %d definitions of `%s:%s'", n, def.Type, def.Instance)
		}
	}
	c.validateStrips(root)
	c.validateSubcircuits(root)
	c.validateNodesets(root)
}

// checkStatement validates one statement against its schema entry.
func (c *Checker) checkStatement(root []*netlist.Statement, def *netlist.Statement, available *schema.Define) {
	def.Nodeset = def.Type == "NodeSet"
	def.Nonlinear = available.Nonlinear
	def.Substrate = available.Substrate

	n := len(def.Nodes)
	if available.Nodes == schema.NodesVariable {
		if n < 1 {
			c.errorf(def.Line, "at least 1 node required in `%s:%s', found %d",
				def.Type, def.Instance, n)
		}
	} else if available.Nodes != n {
		c.errorf(def.Line, "%d node(s) required in `%s:%s', found %d",
			available.Nodes, def.Type, def.Instance, n)
	}

	for _, prop := range available.Required {
		if n := def.CountPairs(prop.Key); n != 1 {
			c.errorf(def.Line, "required property `%s' occurred %dx in `%s:%s'",
				prop.Key, n, def.Type, def.Instance)
		}
	}
	for _, prop := range available.Optional {
		if n := def.CountPairs(prop.Key); n >= 2 {
			c.errorf(def.Line, "optional property `%s' occurred %dx in `%s:%s'",
				prop.Key, n, def.Type, def.Instance)
		}
	}

	for _, pair := range def.Pairs {
		if !available.IsProperty(pair.Key) {
			c.errorf(def.Line, "extraneous property `%s' is invalid in `%s:%s'",
				pair.Key, def.Type, def.Instance)
		}
		evaluateScale(pair.Value)
		c.checkValueRange(def, available, pair)
		c.resolveVariable(root, def, pair.Value)
	}
}

// checkValueRange verifies a property value against the matching
// required/optional descriptors: scalar vs list, numeric range,
// integer fraction and the identifier requirement.
func (c *Checker) checkValueRange(def *netlist.Statement, available *schema.Define, pair *netlist.Pair) {
	for _, prop := range available.Required {
		if prop.Key == pair.Key {
			c.checkPropRange(def, pair, &prop)
		}
	}
	for _, prop := range available.Optional {
		if prop.Key == pair.Key {
			c.checkPropRange(def, pair, &prop)
		}
	}
}

func (c *Checker) checkPropRange(def *netlist.Statement, pair *netlist.Pair, prop *schema.Property) {
	if prop.Kind == schema.KindIdent {
		if !pair.Value.IsIdent() {
			c.errorf(def.Line, "value of `%s' (%g) needs to be an identifier in `%s:%s'",
				pair.Key, pair.Value.Number, def.Type, def.Instance)
		}
		return
	}
	// An identifier in a numeric property may name a swept variable;
	// the resolver decides whether it exists.
	if pair.Value.IsIdent() {
		return
	}
	if prop.Kind != schema.KindList && pair.Value.IsVector() {
		c.errorf(def.Line, "value of `%s' needs to be a single value in `%s:%s', no lists possible",
			pair.Key, def.Type, def.Instance)
	}
	if prop.Range != nil {
		for _, v := range pair.Value.Scalars() {
			if v.Number < prop.Range.Lo || v.Number > prop.Range.Hi {
				c.errorf(def.Line, "value of `%s' (%g) is out of range [%g,%g] in `%s:%s'",
					pair.Key, v.Number, prop.Range.Lo, prop.Range.Hi, def.Type, def.Instance)
			}
		}
	}
	if prop.Kind == schema.KindInt {
		v := pair.Value.Scalars()[0]
		if v.Number != float64(int64(v.Number)) {
			c.errorf(def.Line, "value of `%s' (%g) needs to be an integer in `%s:%s'",
				pair.Key, v.Number, def.Type, def.Instance)
		}
	}
}

// countDefinition counts statements with the given type and instance
// name, marking every match past the first as a duplicate.
func countDefinition(root []*netlist.Statement, typeName, instance string) int {
	count := 0
	for _, def := range root {
		if def.Type == typeName && def.Instance == instance {
			count++
			if count > 1 {
				def.Duplicate = true
			}
		}
	}
	return count
}

// countDefinitions counts statements with the given action flag,
// optionally restricted to one type (empty typeName counts all).
func countDefinitions(root []*netlist.Statement, typeName string, action bool) int {
	count := 0
	for _, def := range root {
		if def.Action != action {
			continue
		}
		if typeName == "" || def.Type == typeName {
			count++
		}
	}
	return count
}

// countAction counts action statements with the given instance name.
func countAction(root []*netlist.Statement, instance string) int {
	count := 0
	for _, def := range root {
		if def.Action && def.Instance == instance {
			count++
		}
	}
	return count
}

// findVariable returns the value bound to the given key of any
// statement of the given type whose value is the given identifier.
func findVariable(root []*netlist.Statement, typeName, key, ident string) *netlist.Value {
	for _, def := range root {
		if def.Type != typeName {
			continue
		}
		for _, pair := range def.Pairs {
			if pair.Key == key && pair.Value.Ident == ident {
				return pair.Value
			}
		}
	}
	return nil
}

// validateReference returns the value of the given property if it is
// an identifier, emitting a diagnostic otherwise.
func (c *Checker) validateReference(def *netlist.Statement, key string) *netlist.Value {
	val := def.FindReference(key)
	if val == nil {
		c.errorf(def.Line, "not a valid `%s' property found in `%s:%s'",
			key, def.Type, def.Instance)
	}
	return val
}

// countNonlinearities counts circuit instances requiring a DC
// solution, recursing into subcircuit bodies unless cyclic
// definitions were detected.
func (c *Checker) countNonlinearities(root []*netlist.Statement) int {
	count := 0
	for _, def := range root {
		if def.Nonlinear {
			count++
		}
		if c.subCycles <= 0 && def.Type == "Sub" {
			if sub := c.getSubcircuit(def); sub != nil {
				count += c.countNonlinearities(sub.Sub)
			}
		}
	}
	return count
}
