package checker

import (
	"strings"

	"toy-qucs/pkg/netlist"
)

// expandSubcircuits replaces every subcircuit instance in the given
// list with the clones of its definition body, recursing through
// nested subcircuits. The result contains no `Sub' statements and,
// since definitions were lifted beforehand, no `Def' statements.
func (c *Checker) expandSubcircuits(root []*netlist.Statement) []*netlist.Statement {
	var out []*netlist.Statement
	for _, def := range root {
		if def.Type != "Sub" {
			out = append(out, def)
			continue
		}
		sub := c.getSubcircuit(def)
		if sub == nil {
			continue
		}
		var instances []string
		out = append(out, c.copySubcircuits(sub, def, &instances)...)
	}
	return out
}

// copySubcircuits clones the body of the definition typeDef for the
// instance inst. The instances path qualifies names of elements
// cloned from nested expansions; one `<defType>.<instance>' segment
// pair is pushed per nesting level.
func (c *Checker) copySubcircuits(typeDef, inst *netlist.Statement, instances *[]string) []*netlist.Statement {
	var out []*netlist.Statement

	for _, el := range typeDef.Sub {
		xlatSubcircuitNodes(typeDef, inst, el)

		if el.Type == "Sub" {
			sub := c.getSubcircuit(el)
			saved := append([]string(nil), *instances...)
			*instances = append(*instances, typeDef.Instance, inst.Instance)
			clones := c.copySubcircuits(sub, el, instances)
			// resolve the node names the nested expansion left blank
			qualifier := strings.Join(saved, ".")
			for _, clone := range clones {
				resolveBlankNodes(typeDef, inst, el, clone, qualifier)
			}
			out = append(out, clones...)
			*instances = saved
		} else {
			qualifier := strings.Join(*instances, ".")
			clone := copyStatement(el)
			clone.Instance = mangledName(typeDef.Instance, qualifier, inst.Instance, el.Instance)
			clone.Subcircuit = typeDef.Instance
			clone.Nodes = copySubcircuitNodes(typeDef, inst, el, qualifier)
			out = append(out, clone)
		}

		cleanupXlatNodes(el)
	}
	return out
}

// xlatSubcircuitNodes records, on every node of the body element that
// names a definition port, the corresponding instance node name and
// the port position.
func xlatSubcircuitNodes(typeDef, inst, el *netlist.Statement) {
	for i, ntype := range typeDef.Nodes {
		if i >= len(inst.Nodes) {
			break
		}
		for _, n := range el.Nodes {
			if n.Name == ntype.Name {
				n.Xlate = inst.Nodes[i].Name
				n.XlateNr = i + 1
			}
		}
	}
}

// cleanupXlatNodes clears the translation annotations so the
// definition body can be instantiated again.
func cleanupXlatNodes(el *netlist.Statement) {
	for _, n := range el.Nodes {
		n.Xlate = ""
		n.XlateNr = 0
	}
}

// copyStatement clones a body element. The clone shares the property
// bag with its template and owns a fresh node list and instance name.
func copyStatement(el *netlist.Statement) *netlist.Statement {
	return &netlist.Statement{
		Type:      el.Type,
		Action:    el.Action,
		Pairs:     el.Pairs,
		Line:      el.Line,
		Nonlinear: el.Nonlinear,
		Substrate: el.Substrate,
		Nodeset:   el.Nodeset,
		Copy:      true,
	}
}

// mangledName builds an expansion-unique name
// `<typeName>.<qualifier>.<instName>.<base>'; the qualifier segment
// is omitted when the instance path is empty.
func mangledName(typeName, qualifier, instName, base string) string {
	if qualifier == "" {
		return typeName + "." + instName + "." + base
	}
	return typeName + "." + qualifier + "." + instName + "." + base
}

// copySubcircuitNodes builds the node list of a clone. Port nodes at
// the top level take the caller's node name; nested port nodes stay
// blank for an outer expansion step to resolve; `gnd' is preserved;
// internal nodes get a mangled unique name.
func copySubcircuitNodes(typeDef, inst, el *netlist.Statement, qualifier string) []*netlist.Node {
	nodes := make([]*netlist.Node, len(el.Nodes))
	for i, n := range el.Nodes {
		nc := &netlist.Node{XlateNr: n.XlateNr}
		switch {
		case n.Xlate != "":
			if qualifier == "" {
				nc.Name = n.Xlate
			}
		case n.Name == "gnd":
			nc.Name = "gnd"
		default:
			nc.Name = mangledName(typeDef.Instance, qualifier, inst.Instance, n.Name)
		}
		nodes[i] = nc
	}
	return nodes
}

// resolveBlankNodes assigns the nodes a nested expansion left blank.
// The blank node's recorded port index selects the enclosing `Sub'
// element's node: a translated node carries the outer caller name (or
// stays blank when still nested), `gnd' stays `gnd', and anything
// else gets a name mangled with the enclosing instance's path.
func resolveBlankNodes(typeDef, inst, el, clone *netlist.Statement, qualifier string) {
	for _, nc := range clone.Nodes {
		if nc.Name != "" {
			continue
		}
		n := el.Nodes[nc.XlateNr-1]
		nc.XlateNr = n.XlateNr
		switch {
		case n.Xlate != "":
			if qualifier == "" {
				nc.Name = n.Xlate
			}
		case n.Name == "gnd":
			nc.Name = "gnd"
		default:
			nc.Name = mangledName(typeDef.Instance, qualifier, inst.Instance, n.Name)
		}
	}
}
