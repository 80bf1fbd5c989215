package checker

import (
	"toy-qucs/pkg/netlist"
	"toy-qucs/pkg/schema"
)

// stripAvailable lists the microstrip component types referencing a
// substrate definition through their `Subst' property.
var stripAvailable = []string{
	"MLIN", "MCORN", "MMBEND", "MSTEP", "MOPEN", "MGAP", "MCOUPLED", "MTEE",
	"MCROSS", "MVIA", "CLIN",
}

func isMicrostrip(typeName string) bool {
	for _, t := range stripAvailable {
		if t == typeName {
			return true
		}
	}
	return false
}

// resolveVariable resolves an identifier appearing as a property
// value of the given statement. An identifier is valid when it names
// at least one of: a sweep parameter, a sweep simulation reference, a
// substrate instance, a subcircuit definition, an allowed special
// identifier, an S-parameter data file, or an equation variable.
func (c *Checker) resolveVariable(root []*netlist.Statement, def *netlist.Statement, value *netlist.Value) bool {
	if !value.IsIdent() {
		return true
	}
	found := 0

	// variable swept by a parameter sweep; mark both ends as variables
	if val := findVariable(root, "SW", "Param", value.Ident); val != nil {
		val.Var = true
		value.Var = true
		found++
	}
	// analysis referenced by a parameter sweep
	if findVariable(root, "SW", "Sim", value.Ident) != nil {
		found++
	}
	// substrate referenced by a microstrip component
	if val := c.findSubstrate(def, value.Ident); val != nil {
		value.Subst = true
		found++
	}
	// subcircuit definition referenced by a subcircuit instance
	if findVariable(root, "Sub", "Type", value.Ident) != nil {
		found++
	}
	// enumerated special identifier
	if c.validateSpecial(root, def, value.Ident) {
		found++
	}
	// data file referenced by an S-parameter file component
	if findVariable(root, "SPfile", "File", value.Ident) != nil {
		found++
	}
	// equation variable
	if c.eqns.Contains(value.Ident) {
		found++
	}

	if found == 0 {
		c.errorf(def.Line, "no such variable `%s' used in a `%s:%s' property",
			value.Ident, def.Type, def.Instance)
		return false
	}
	return true
}

// findSubstrate returns the `Subst' reference of the given statement
// if it is a microstrip component and the reference equals the given
// identifier.
func (c *Checker) findSubstrate(def *netlist.Statement, ident string) *netlist.Value {
	if !isMicrostrip(def.Type) {
		return nil
	}
	if val := def.FindReference("Subst"); val != nil && val.Ident == ident {
		return val
	}
	return nil
}

// validateSpecial checks an identifier against the enumerated
// specials table: for every (type, key) combination binding this
// identifier somewhere in the current scope, the identifier must be
// one of the allowed values. It reports whether the identifier
// matched any allowed set.
func (c *Checker) validateSpecial(root []*netlist.Statement, def *netlist.Statement, ident string) bool {
	found := 0
	for _, special := range schema.Specials {
		if findVariable(root, special.Type, special.Key, ident) == nil {
			continue
		}
		for _, allowed := range special.Values {
			if allowed == ident {
				found++
			}
		}
		if found == 0 {
			c.errorf(def.Line, "`%s' is not a valid `%s' property as used in `%s:%s'",
				ident, special.Key, def.Type, def.Instance)
		}
	}
	return found > 0
}
