package netlist

import (
	"fmt"
	"strings"
)

// Value is a property value: either an identifier, a scalar number
// with an optional raw SI scale suffix, or a vector of scalars. The
// checker's unit scaler folds Scale into Number and Unit. Var and
// Subst are annotations written during symbol resolution.
type Value struct {
	Ident  string  `yaml:"ident,omitempty"`
	Number float64 `yaml:"number"`
	Scale  string  `yaml:"-"`
	Unit   string  `yaml:"unit,omitempty"`

	// Values holds the elements of a vector value such as [1;2;3].
	// It is nil for scalars and identifiers.
	Values []*Value `yaml:"values,omitempty"`

	Var    bool `yaml:"-"`
	Subst  bool `yaml:"-"`
	Vector bool `yaml:"-"`
}

// IsIdent reports whether the value is an identifier.
func (v *Value) IsIdent() bool { return v.Ident != "" }

// IsVector reports whether the value is a vector of scalars.
func (v *Value) IsVector() bool { return v.Values != nil }

// Scalars returns the scalar elements of the value: the vector
// elements for a vector, or the value itself.
func (v *Value) Scalars() []*Value {
	if v.Values != nil {
		return v.Values
	}
	return []*Value{v}
}

func (v *Value) String() string {
	if v.IsIdent() {
		return v.Ident
	}
	if v.IsVector() {
		parts := make([]string, len(v.Values))
		for i, e := range v.Values {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ";") + "]"
	}
	return fmt.Sprintf("%g%s%s", v.Number, v.Scale, v.Unit)
}
