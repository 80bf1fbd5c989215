package schema

// Specials lists the enumerated identifier sets. An identifier bound
// to one of these (type, key) combinations anywhere in the netlist is
// legal only if it appears in the allowed set.
var Specials = []Special{
	{"JFET", "Type", []string{"nfet", "pfet"}},
	{"BJT", "Type", []string{"npn", "pnp"}},
	{"MOSFET", "Type", []string{"nfet", "pfet"}},
	{"SP", "Noise", []string{"yes", "no"}},
	{"SP", "Type", []string{"lin", "log", "list", "const"}},
	{"AC", "Type", []string{"lin", "log", "list", "const"}},
	{"AC", "Noise", []string{"yes", "no"}},
	{"DC", "saveOPs", []string{"yes", "no"}},
	{"DC", "saveAll", []string{"yes", "no"}},
	{"DC", "convHelper", []string{"none", "SourceStepping", "gMinStepping",
		"LineSearch", "Attenuation", "SteepestDescent"}},
	{"TR", "Type", []string{"lin", "log"}},
	{"TR", "IntegrationMethod", []string{"Euler", "Trapezoidal", "Gear", "AdamsMoulton"}},
	{"MLIN", "DispModel", []string{"Kirschning", "Kobayashi", "Yamashita",
		"Getsinger", "Schneider", "Pramanick", "Hammerstad"}},
	{"MLIN", "Model", []string{"Wheeler", "Schneider", "Hammerstad"}},
	{"CLIN", "Backside", []string{"Metal", "Air"}},
	{"SW", "Type", []string{"lin", "log", "list", "const"}},
	{"SPfile", "Data", []string{"rectangular", "polar"}},
	{"MSTEP", "MSDispModel", []string{"Kirschning", "Kobayashi", "Yamashita",
		"Getsinger", "Schneider", "Pramanick", "Hammerstad"}},
	{"MSTEP", "MSModel", []string{"Wheeler", "Schneider", "Hammerstad"}},
	{"MOPEN", "MSDispModel", []string{"Kirschning", "Kobayashi", "Yamashita",
		"Getsinger", "Schneider", "Pramanick", "Hammerstad"}},
	{"MOPEN", "MSModel", []string{"Wheeler", "Schneider", "Hammerstad"}},
	{"MOPEN", "Model", []string{"Kirschning", "Hammerstad", "Alexopoulos"}},
	{"MGAP", "MSDispModel", []string{"Kirschning", "Kobayashi", "Yamashita",
		"Getsinger", "Schneider", "Pramanick", "Hammerstad"}},
	{"MGAP", "MSModel", []string{"Wheeler", "Schneider", "Hammerstad"}},
	{"MCOUPLED", "Model", []string{"Kirschning", "Hammerstad"}},
	{"MCOUPLED", "DispModel", []string{"Kirschning", "Getsinger"}},
}
