package engine

import (
	"math"
	"strings"
	"testing"

	"toy-qucs/pkg/checker"
	"toy-qucs/pkg/netlist"
)

// solve runs the checker over the netlist text, strips actions from
// the flat result and computes the operating point.
func solve(t *testing.T, input string) map[string]float64 {
	t.Helper()
	eng := build(t, input)
	result, err := eng.OperatingPoint()
	if err != nil {
		t.Fatalf("OperatingPoint failed: %v", err)
	}
	return result
}

func build(t *testing.T, input string) *Engine {
	t.Helper()
	stmts, err := netlist.Parse(input)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	ck := checker.New(stmts, nil)
	if err := ck.Run(); err != nil {
		t.Fatalf("netlist check failed: %v", err)
	}
	var components []*netlist.Statement
	for _, st := range ck.Root {
		if !st.Action {
			components = append(components, st)
		}
	}
	eng, err := New(components)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return eng
}

func near(t *testing.T, result map[string]float64, key string, want float64) {
	t.Helper()
	got, ok := result[key]
	if !ok {
		t.Fatalf("no %s in solution %v", key, result)
	}
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s = %g, want %g", key, got, want)
	}
}

func TestVoltageDivider(t *testing.T) {
	result := solve(t, `
Vdc:V1 in gnd U="10 V"
R:R1 in out R="1 kOhm"
R:R2 out gnd R="1 kOhm"
.DC:DC1
`)
	near(t, result, "V(in)", 10)
	near(t, result, "V(out)", 5)
	near(t, result, "I(V1)", 5e-3)
}

func TestCurrentSourceIntoResistor(t *testing.T) {
	result := solve(t, `
Idc:I1 a gnd I="1 mA"
R:R1 a gnd R="1 kOhm"
.DC:DC1
`)
	near(t, result, "V(a)", 1)
}

func TestInductorShortAtDC(t *testing.T) {
	result := solve(t, `
Vdc:V1 in gnd U="10 V"
L:L1 in mid L="1 mH"
R:R1 mid gnd R="1 kOhm"
.DC:DC1
`)
	near(t, result, "V(mid)", 10)
	near(t, result, "I(V1)", 10e-3)
}

func TestCapacitorOpenAtDC(t *testing.T) {
	result := solve(t, `
Vdc:V1 in gnd U="10 V"
R:R1 in out R="1 kOhm"
C:C1 out gnd C="1 uF"
R:R2 out gnd R="1 kOhm"
.DC:DC1
`)
	// same divider as without the capacitor
	near(t, result, "V(out)", 5)
}

func TestExpandedSubcircuitSolved(t *testing.T) {
	result := solve(t, `
.Def:TwoR p1 p2
R:Ra p1 n R="1 kOhm"
R:Rb n p2 R="1 kOhm"
.Def:End
Vdc:V1 a gnd U="10 V"
Sub:X1 a gnd Type="TwoR"
.DC:DC1
`)
	near(t, result, "V(TwoR.X1.n)", 5)
	near(t, result, "I(V1)", 5e-3)
}

func TestGroundAliases(t *testing.T) {
	eng := build(t, `
Vdc:V1 in 0 U="1 V"
R:R1 in gnd R="1 kOhm"
.DC:DC1
`)
	if eng.NumNodes() != 1 {
		t.Errorf("got %d nodes, want 1 (both ground spellings fold to index 0)", eng.NumNodes())
	}
}

func TestUnsupportedComponentType(t *testing.T) {
	eng := build(t, `
Vdc:V1 a gnd U="1 V"
Diode:D1 a gnd Is="1e-15" N="1"
.DC:DC1
`)
	_, err := eng.OperatingPoint()
	if err == nil {
		t.Fatal("OperatingPoint succeeded with a nonlinear device")
	}
	if !strings.Contains(err.Error(), "component type `Diode' not supported") {
		t.Errorf("got %q", err)
	}
}

func TestRejectsUnexpandedStatements(t *testing.T) {
	stmts, err := netlist.Parse(`Sub:X1 a gnd Type="Missing"`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if _, err := New(stmts); err == nil {
		t.Error("New accepted a subcircuit instance")
	}
}
