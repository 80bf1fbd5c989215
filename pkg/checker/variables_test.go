package checker

import "testing"

func TestSweepParamCollidesWithEquationVariable(t *testing.T) {
	ck := check(t, `
R:R1 a gnd R="Rv"
.DC:DC1
.SW:SW1 Sim="DC1" Type="lin" Param="Rv" Start="1" Stop="10" Points="10"
`, "Rv")
	expectDiagnostics(t, ck, "equation variable `Rv' already defined by `SW:SW1'")
}

func TestSweepParamReboundToOtherSimulation(t *testing.T) {
	ck := check(t, `
R:R1 a gnd R="Rv"
.DC:DC1
.SW:SW1 Sim="DC1" Type="lin" Param="Rv" Start="1" Stop="10" Points="10"
.SW:SW2 Sim="SW1" Type="lin" Param="Rv" Start="1" Stop="10" Points="10"
`)
	expectDiagnostics(t, ck, "variable `Rv' in `SW:SW2' already defined by `SW:SW1'")
}

func TestConflictingVariablesForOneSimulation(t *testing.T) {
	ck := check(t, `
R:R1 a gnd R="Rv"
R:R2 a gnd R="Cv"
.DC:DC1
.SW:SW1 Sim="DC1" Type="lin" Param="Rv" Start="1" Stop="10" Points="10"
.SW:SW2 Sim="DC1" Type="lin" Param="Cv" Start="1" Stop="10" Points="10"
`)
	expectDiagnostics(t, ck,
		"conflicting variables `Cv' in `SW:SW2' and `Rv' in `SW:SW1' for `DC1'")
}

func TestSameParamSameSimulationAccepted(t *testing.T) {
	ck := check(t, `
R:R1 a gnd R="Rv"
.DC:DC1
.SW:SW1 Sim="DC1" Type="lin" Param="Rv" Start="1" Stop="10" Points="10"
.SW:SW2 Sim="DC1" Type="lin" Param="Rv" Start="1" Stop="20" Points="20"
`)
	expectDiagnostics(t, ck)
}
