package checker

import "toy-qucs/pkg/netlist"

// checkVariables verifies that parameter sweep variables are unique:
// sweep parameters must not collide with equation variables, a
// parameter re-used by another sweep must target the same simulation
// (a legal same-order sweep), and two sweeps of the same simulation
// must sweep the same parameter.
func (c *Checker) checkVariables(root []*netlist.Statement) {
	var instances, vars, refs []string

	for _, def := range root {
		if !def.Action || def.Type != "SW" {
			continue
		}
		para := def.FindReference("Param")
		ref := def.FindReference("Sim")
		if para == nil || ref == nil {
			continue
		}

		if c.eqns.Contains(para.Ident) {
			c.errorf(0, "equation variable `%s' already defined by `%s:%s'",
				para.Ident, def.Type, def.Instance)
		}
		if pos := indexOf(vars, para.Ident); pos != -1 && refs[pos] != ref.Ident {
			c.errorf(0, "variable `%s' in `%s:%s' already defined by `%s:%s'",
				para.Ident, def.Type, def.Instance, def.Type, instances[pos])
		}
		if pos := indexOf(refs, ref.Ident); pos != -1 && vars[pos] != para.Ident {
			c.errorf(0, "conflicting variables `%s' in `%s:%s' and `%s' in `%s:%s' for `%s'",
				para.Ident, def.Type, def.Instance,
				vars[pos], def.Type, instances[pos], ref.Ident)
		}

		instances = append(instances, def.Instance)
		vars = append(vars, para.Ident)
		refs = append(refs, ref.Ident)
	}
}

func indexOf(list []string, s string) int {
	for i, e := range list {
		if e == s {
			return i
		}
	}
	return -1
}
