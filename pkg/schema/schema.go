// Package schema holds the static tables describing every legal
// netlist statement type: node counts, nonlinear/substrate flags and
// the required/optional property descriptors with value kinds and
// numeric ranges, plus the enumerated-specials table.
package schema

// NodesVariable marks statement types accepting any number of nodes
// (at least one).
const NodesVariable = -1

// Kind describes what a property value must be.
type Kind int

const (
	KindValue Kind = iota // single scalar number
	KindInt               // scalar with zero fractional part
	KindList              // scalar or vector of scalars
	KindIdent             // identifier
)

// Range is an inclusive numeric range for a property value.
type Range struct {
	Lo, Hi float64
}

// Property describes one required or optional property of a
// statement type.
type Property struct {
	Key   string
	Kind  Kind
	Range *Range
}

// Define describes one legal statement type.
type Define struct {
	Type      string
	Action    bool
	Nodes     int
	Nonlinear bool
	Substrate bool
	Required  []Property
	Optional  []Property
}

// IsProperty reports whether the key is a required or optional
// property of the statement type.
func (d *Define) IsProperty(key string) bool {
	for _, p := range d.Required {
		if p.Key == key {
			return true
		}
	}
	for _, p := range d.Optional {
		if p.Key == key {
			return true
		}
	}
	return false
}

// Find returns the definition for the given type and action flag, or
// nil if the type is unknown. Lookup is a linear scan; the table is
// small and checking is not performance-critical.
func Find(typeName string, action bool) *Define {
	for i := range Defines {
		if Defines[i].Type == typeName && Defines[i].Action == action {
			return &Defines[i]
		}
	}
	return nil
}

// Special describes an enumerated identifier set: the named property
// of the named statement type only accepts the listed identifiers.
type Special struct {
	Type   string
	Key    string
	Values []string
}
