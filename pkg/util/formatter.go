package util

import (
	"fmt"
	"math"
)

// FormatValueFactor prints a value with an engineering prefix, matching
// the scale factors accepted on netlist properties.
func FormatValueFactor(value float64, unit string) string {
	absValue := math.Abs(value)
	switch {
	case absValue >= 1e9:
		return fmt.Sprintf("%.3f G%s", value/1e9, unit)
	case absValue >= 1e6:
		return fmt.Sprintf("%.3f M%s", value/1e6, unit)
	case absValue >= 1e3:
		return fmt.Sprintf("%.3f k%s", value/1e3, unit)
	case absValue >= 1:
		return fmt.Sprintf("%.3f %s", value, unit)
	case absValue >= 1e-3:
		return fmt.Sprintf("%.3f m%s", value*1e3, unit)
	case absValue >= 1e-6:
		return fmt.Sprintf("%.3f u%s", value*1e6, unit)
	case absValue >= 1e-9:
		return fmt.Sprintf("%.3f n%s", value*1e9, unit)
	case absValue >= 1e-12:
		return fmt.Sprintf("%.3f p%s", value*1e12, unit)
	case absValue == 0:
		return fmt.Sprintf("%.3f %s", value, unit)
	default:
		return fmt.Sprintf("%.3e %s", value, unit)
	}
}
