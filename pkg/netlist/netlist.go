// Package netlist holds the parsed representation of a Qucs-style
// netlist: a flat list of statements, each with a type tag, an
// instance name, ordered nodes and key/value property pairs.
package netlist

import (
	"fmt"
	"strings"
)

// Node is a named port of a statement. Position matters: the k-th node
// of a subcircuit instance corresponds to the k-th port of its
// definition. Xlate and XlateNr are scratch fields written during
// subcircuit expansion.
type Node struct {
	Name    string `yaml:"name"`
	Xlate   string `yaml:"-"`
	XlateNr int    `yaml:"-"`
}

// Pair is a single key/value property of a statement.
type Pair struct {
	Key   string `yaml:"key"`
	Value *Value `yaml:"value"`
}

// Statement is one netlist line: a component, an action, a nodeset, a
// substrate, a subcircuit instance ("Sub") or a subcircuit definition
// ("Def"). Flag fields past Line are written by the checker.
type Statement struct {
	Type     string  `yaml:"type"`
	Instance string  `yaml:"instance"`
	Action   bool    `yaml:"action,omitempty"`
	Nodes    []*Node `yaml:"nodes,omitempty"`
	Pairs    []*Pair `yaml:"properties,omitempty"`
	Line     int     `yaml:"-"`

	Nonlinear  bool   `yaml:"-"`
	Substrate  bool   `yaml:"-"`
	Nodeset    bool   `yaml:"-"`
	Duplicate  bool   `yaml:"-"`
	Copy       bool   `yaml:"-"`
	Subcircuit string `yaml:"subcircuit,omitempty"`

	// Sub holds the body statements of a "Def" definition.
	Sub []*Statement `yaml:"body,omitempty"`
}

// FindPair returns the first property with the given key, or nil.
func (s *Statement) FindPair(key string) *Pair {
	for _, p := range s.Pairs {
		if p.Key == key {
			return p
		}
	}
	return nil
}

// CountPairs returns the number of properties with the given key.
func (s *Statement) CountPairs(key string) int {
	count := 0
	for _, p := range s.Pairs {
		if p.Key == key {
			count++
		}
	}
	return count
}

// FindReference returns the value of the given property if it is an
// identifier, or nil.
func (s *Statement) FindReference(key string) *Value {
	if p := s.FindPair(key); p != nil && p.Value.IsIdent() {
		return p.Value
	}
	return nil
}

// FindPropValue returns the value of the given property if it is not
// an identifier, or nil.
func (s *Statement) FindPropValue(key string) *Value {
	if p := s.FindPair(key); p != nil && !p.Value.IsIdent() {
		return p.Value
	}
	return nil
}

// NodeNames returns the node names in declaration order.
func (s *Statement) NodeNames() []string {
	names := make([]string, len(s.Nodes))
	for i, n := range s.Nodes {
		names[i] = n.Name
	}
	return names
}

// TypeCounts tallies the statements per type tag. Action types are
// prefixed with a dot so `.DC' and a `DC' component count apart.
func TypeCounts(root []*Statement) map[string]int {
	counts := make(map[string]int)
	for _, s := range root {
		key := s.Type
		if s.Action {
			key = "." + key
		}
		counts[key]++
	}
	return counts
}

// String renders the statement in netlist syntax, the way the
// qucsator lister prints it.
func (s *Statement) String() string {
	var b strings.Builder
	if s.Action || s.Type == "Def" {
		b.WriteByte('.')
	}
	fmt.Fprintf(&b, "%s:%s", s.Type, s.Instance)
	for _, n := range s.Nodes {
		b.WriteByte(' ')
		b.WriteString(n.Name)
	}
	for _, p := range s.Pairs {
		fmt.Fprintf(&b, " %s=\"%s\"", p.Key, p.Value)
	}
	return b.String()
}
