package checker

import (
	"math"
	"testing"

	"toy-qucs/pkg/netlist"
)

func TestEvaluateScale(t *testing.T) {
	tests := []struct {
		scale  string
		number float64
		want   float64
		unit   string
	}{
		{"", 1, 1, ""},
		{"Ohm", 50, 50, "Ohm"},
		{"kOhm", 1, 1000, "Ohm"},
		{"MHz", 2, 2e6, "Hz"},
		{"GHz", 1, 1e9, "Hz"},
		{"THz", 1, 1e12, "Hz"},
		{"mV", 5, 5e-3, "V"},
		{"uF", 2.2, 2.2e-6, "F"},
		{"nH", 10, 10e-9, "H"},
		{"pF", 1, 1e-12, "F"},
		{"fF", 3, 3e-15, "F"},
		{"aF", 3, 3e-18, "F"},
		{"V", 5, 5, "V"},
		{"dB", 10, 10, ""},
		{"dB", 0, 1, ""},
		{"dBm", 0, 1e-3, ""},
		{"dBm", 30, 1, ""},
	}
	for _, tt := range tests {
		v := &netlist.Value{Number: tt.number, Scale: tt.scale}
		evaluateScale(v)
		if math.Abs(v.Number-tt.want) > 1e-12*math.Abs(tt.want) {
			t.Errorf("%g %s: got %g, want %g", tt.number, tt.scale, v.Number, tt.want)
		}
		if v.Unit != tt.unit {
			t.Errorf("%g %s: got unit %q, want %q", tt.number, tt.scale, v.Unit, tt.unit)
		}
		if v.Scale != "" {
			t.Errorf("%g %s: scale %q not consumed", tt.number, tt.scale, v.Scale)
		}
	}
}

func TestEvaluateScaleIsExactProduct(t *testing.T) {
	// scaling multiplies value and factor; the result carries the
	// rounding of that product, bit for bit
	v := &netlist.Value{Number: 100, Scale: "nF"}
	evaluateScale(v)
	if v.Number != 100*1e-9 {
		t.Errorf("got %v, want the exact product 100*1e-9", v.Number)
	}
	if got := v.String(); got != "1.0000000000000001e-07F" {
		t.Errorf("rendered as %q, want the shortest unique form of the product", got)
	}
}

func TestEvaluateScaleIdempotent(t *testing.T) {
	v := &netlist.Value{Number: 1, Scale: "kOhm"}
	evaluateScale(v)
	evaluateScale(v)
	if v.Number != 1000 || v.Unit != "Ohm" {
		t.Errorf("got %g %s after double scaling, want 1000 Ohm", v.Number, v.Unit)
	}
}

func TestEvaluateScaleVector(t *testing.T) {
	v := &netlist.Value{Values: []*netlist.Value{
		{Number: 1, Scale: "kHz"},
		{Number: 2, Scale: "MHz"},
	}}
	evaluateScale(v)
	if v.Values[0].Number != 1e3 || v.Values[1].Number != 2e6 {
		t.Errorf("got [%g;%g], want [1000;2e+06]",
			v.Values[0].Number, v.Values[1].Number)
	}
	if v.Values[0].Unit != "Hz" || v.Values[1].Unit != "Hz" {
		t.Errorf("units not assigned: %q %q", v.Values[0].Unit, v.Values[1].Unit)
	}
}
