package checker

import (
	"math"
	"strings"

	"toy-qucs/pkg/netlist"
)

// evaluateScale folds the raw SI scale suffix of a property value
// into the number and assigns the remaining characters to the unit.
// Recognized prefixes are T G M k m u n p f a plus the two-character
// dB (10^(v/10)), itself optionally followed by m (additional 1e-3).
// A value without a scale is left untouched; scaling is idempotent.
func evaluateScale(value *netlist.Value) {
	for _, v := range value.Scalars() {
		scaleScalar(v)
	}
}

func scaleScalar(v *netlist.Value) {
	if v.Scale == "" {
		return
	}
	val, factor := v.Number, 1.0
	scale := v.Scale

	switch scale[0] {
	case 'T':
		scale, factor = scale[1:], 1e12
	case 'G':
		scale, factor = scale[1:], 1e9
	case 'M':
		scale, factor = scale[1:], 1e6
	case 'k':
		scale, factor = scale[1:], 1e3
	case 'm':
		scale, factor = scale[1:], 1e-3
	case 'u':
		scale, factor = scale[1:], 1e-6
	case 'n':
		scale, factor = scale[1:], 1e-9
	case 'p':
		scale, factor = scale[1:], 1e-12
	case 'f':
		scale, factor = scale[1:], 1e-15
	case 'a':
		scale, factor = scale[1:], 1e-18
	case 'd':
		scale = scale[1:]
		if strings.HasPrefix(scale, "B") {
			scale = scale[1:]
			val = math.Pow(10.0, val/10.0)
			if strings.HasPrefix(scale, "m") {
				scale = scale[1:]
				factor = 1e-3
			}
		}
	}

	if scale != "" {
		v.Unit = scale
	}
	v.Scale = ""
	v.Number = val * factor
}
