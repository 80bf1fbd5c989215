package checker

import (
	"strings"
	"testing"

	"toy-qucs/pkg/equation"
	"toy-qucs/pkg/netlist"
)

// check parses the netlist text and runs the full checker over it.
func check(t *testing.T, input string, eqnVars ...string) *Checker {
	t.Helper()
	stmts, err := netlist.Parse(input)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	ck := New(stmts, equation.NewSet(eqnVars...))
	ck.Run()
	return ck
}

// expectDiagnostics fails unless the checker produced exactly one
// diagnostic per wanted substring, in order.
func expectDiagnostics(t *testing.T, ck *Checker, want ...string) {
	t.Helper()
	if len(ck.Diagnostics) != len(want) {
		var got []string
		for _, d := range ck.Diagnostics {
			got = append(got, d.Error())
		}
		t.Fatalf("got %d diagnostics, want %d:\n%s", len(ck.Diagnostics), len(want),
			strings.Join(got, "\n"))
	}
	for i, substr := range want {
		if got := ck.Diagnostics[i].Error(); !strings.Contains(got, substr) {
			t.Errorf("diagnostic %d = %q, want it to contain %q", i, got, substr)
		}
	}
}

func TestCleanNetlist(t *testing.T) {
	ck := check(t, `
Vdc:V1 in gnd U="1 V"
R:R1 in out R="1 kOhm"
R:R2 out gnd R="1 kOhm"
.DC:DC1
`)
	expectDiagnostics(t, ck)
	if len(ck.Root) != 4 {
		t.Fatalf("got %d statements, want 4", len(ck.Root))
	}
	// unit scaling folded the suffix into number and unit
	val := ck.Root[1].FindPropValue("R")
	if val.Number != 1000 || val.Unit != "Ohm" || val.Scale != "" {
		t.Errorf("R = %g unit %q scale %q, want 1000 Ohm", val.Number, val.Unit, val.Scale)
	}
}

func TestInvalidDefinitionType(t *testing.T) {
	ck := check(t, `
Bogus:X1 a b
.DC:DC1
`)
	expectDiagnostics(t, ck, "invalid definition type `Bogus'")
}

func TestDuplicateInstanceReportedOnce(t *testing.T) {
	ck := check(t, `
R:R1 a gnd R="50"
R:R1 b gnd R="50"
.DC:DC1
`)
	expectDiagnostics(t, ck, "found 2 definitions of `R:R1'")
}

func TestNodeCountMismatch(t *testing.T) {
	ck := check(t, `
R:R1 a b c R="50"
.DC:DC1
`)
	expectDiagnostics(t, ck, "2 node(s) required in `R:R1', found 3")
}

func TestVariableNodeComponentNeedsANode(t *testing.T) {
	ck := check(t, `
SPfile:S1 File="data"
.DC:DC1
`)
	expectDiagnostics(t, ck, "at least 1 node required in `SPfile:S1', found 0")
}

func TestRequiredPropertyMissing(t *testing.T) {
	ck := check(t, `
R:R1 a gnd
.DC:DC1
`)
	expectDiagnostics(t, ck, "required property `R' occurred 0x in `R:R1'")
}

func TestOptionalPropertyRepeated(t *testing.T) {
	ck := check(t, `
R:R1 a gnd R="50" Temp="27" Temp="50"
.DC:DC1
`)
	expectDiagnostics(t, ck, "optional property `Temp' occurred 2x in `R:R1'")
}

func TestExtraneousProperty(t *testing.T) {
	ck := check(t, `
R:R1 a gnd R="50" Frequency="1 GHz"
.DC:DC1
`)
	expectDiagnostics(t, ck, "extraneous property `Frequency' is invalid in `R:R1'")
}

func TestValueOutOfRange(t *testing.T) {
	ck := check(t, `
R:R1 a gnd R="-50"
.DC:DC1
`)
	expectDiagnostics(t, ck, "value of `R' (-50) is out of range")
}

func TestIntegerPropertyRejectsFraction(t *testing.T) {
	ck := check(t, `
Pac:P1 in gnd Num="1.5"
.DC:DC1
`)
	expectDiagnostics(t, ck, "value of `Num' (1.5) needs to be an integer in `Pac:P1'")
}

func TestIdentPropertyRejectsNumber(t *testing.T) {
	ck := check(t, `
Vdc:V1 b gnd U="1"
BJT:T1 b c e s Type="1"
.DC:DC1
`)
	expectDiagnostics(t, ck, "value of `Type' (1) needs to be an identifier in `BJT:T1'")
}

func TestScalarPropertyRejectsVector(t *testing.T) {
	ck := check(t, `
R:R1 a gnd R="[1;2]"
.DC:DC1
`)
	expectDiagnostics(t, ck, "value of `R' needs to be a single value in `R:R1', no lists possible")
}

func TestVectorElementsAllRangeChecked(t *testing.T) {
	ck := check(t, `
Vdc:V1 b gnd U="1"
BJT:T1 b c e s Type="npn" Is="[1e-15;2;-1]"
.DC:DC1
`)
	expectDiagnostics(t, ck,
		"value of `Is' needs to be a single value in `BJT:T1'",
		"value of `Is' (2) is out of range",
		"value of `Is' (-1) is out of range")
}

func TestUnknownVariable(t *testing.T) {
	ck := check(t, `
R:R1 a gnd R="Runknown"
.DC:DC1
`)
	expectDiagnostics(t, ck, "no such variable `Runknown' used in a `R:R1' property")
}

func TestEquationVariableResolves(t *testing.T) {
	ck := check(t, `
R:R1 a gnd R="Rval"
.DC:DC1
`, "Rval")
	expectDiagnostics(t, ck)
}

func TestSweptVariableResolvesAndIsMarked(t *testing.T) {
	ck := check(t, `
Vdc:V1 a gnd U="1"
R:R1 a gnd R="Rval"
.DC:DC1
.SW:SW1 Sim="DC1" Type="lin" Param="Rval" Start="1" Stop="10" Points="10"
`)
	expectDiagnostics(t, ck)
	val := ck.Root[1].FindPair("R").Value
	if !val.Var {
		t.Error("swept property value not marked as variable")
	}
}

func TestSpecialIdentifierChecked(t *testing.T) {
	ck := check(t, `
Vdc:V1 b gnd U="1"
BJT:T1 b c e s Type="npnx"
.DC:DC1
`)
	expectDiagnostics(t, ck,
		"`npnx' is not a valid `Type' property as used in `BJT:T1'",
		"no such variable `npnx' used in a `BJT:T1' property")
}

func TestDiagnosticCarriesLineNumber(t *testing.T) {
	ck := check(t, "R:R1 a gnd R=\"50\"\nBogus:X1 a b\n.DC:DC1\n")
	expectDiagnostics(t, ck, "line 2: checker error, invalid definition type `Bogus'")
}

func TestRunReportsErrorCount(t *testing.T) {
	stmts, err := netlist.Parse("Bogus:X1 a b\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	ck := New(stmts, nil)
	err = ck.Run()
	if err == nil {
		t.Fatal("Run succeeded on a broken netlist")
	}
	if !strings.Contains(err.Error(), "netlist check failed with 2 error(s)") {
		t.Errorf("got %q", err)
	}
}
