package schema

import "math"

func val(key string) Property { return Property{Key: key, Kind: KindValue} }
func lst(key string) Property { return Property{Key: key, Kind: KindList} }
func ref(key string) Property { return Property{Key: key, Kind: KindIdent} }

func pos(key string) Property {
	return Property{Key: key, Kind: KindValue, Range: &Range{0, math.MaxFloat64}}
}

func rng(key string, lo, hi float64) Property {
	return Property{Key: key, Kind: KindValue, Range: &Range{lo, hi}}
}

func num(key string, lo, hi float64) Property {
	return Property{Key: key, Kind: KindInt, Range: &Range{lo, hi}}
}

// Defines lists every statement type the checker accepts. Components
// carry Action false, simulation directives Action true.
var Defines = []Define{
	// lumped components
	{Type: "R", Nodes: 2,
		Required: []Property{pos("R")},
		Optional: []Property{rng("Temp", -273.15, 1e6), val("Tc1"), val("Tc2")}},
	{Type: "C", Nodes: 2,
		Required: []Property{pos("C")},
		Optional: []Property{val("V")}},
	{Type: "L", Nodes: 2,
		Required: []Property{pos("L")},
		Optional: []Property{val("I")}},

	// sources
	{Type: "Vdc", Nodes: 2, Required: []Property{val("U")}},
	{Type: "Idc", Nodes: 2, Required: []Property{val("I")}},
	{Type: "Vac", Nodes: 2,
		Required: []Property{val("U")},
		Optional: []Property{pos("f"), rng("Phase", -360, 360)}},
	{Type: "Iac", Nodes: 2,
		Required: []Property{val("I")},
		Optional: []Property{pos("f"), rng("Phase", -360, 360)}},

	// S-parameter port
	{Type: "Pac", Nodes: 2,
		Required: []Property{num("Num", 1, 256)},
		Optional: []Property{pos("Z"), val("P"), pos("f")}},

	// nonlinear devices
	{Type: "Diode", Nodes: 2, Nonlinear: true,
		Required: []Property{rng("Is", 0, 1), rng("N", 1, 100)},
		Optional: []Property{pos("Cj0"), rng("M", 0, 1), pos("Vj"), rng("Temp", -273.15, 1e6)}},
	{Type: "JFET", Nodes: 3, Nonlinear: true,
		Required: []Property{ref("Type")},
		Optional: []Property{val("Vt0"), pos("Beta"), rng("Temp", -273.15, 1e6)}},
	{Type: "BJT", Nodes: 4, Nonlinear: true,
		Required: []Property{ref("Type")},
		Optional: []Property{rng("Is", 0, 1), rng("Nf", 1, 100), pos("Bf"), rng("Temp", -273.15, 1e6)}},
	{Type: "MOSFET", Nodes: 4, Nonlinear: true,
		Required: []Property{ref("Type")},
		Optional: []Property{val("Vt0"), pos("W"), pos("L"), rng("Temp", -273.15, 1e6)}},

	// S-parameter data file
	{Type: "SPfile", Nodes: NodesVariable,
		Required: []Property{ref("File")},
		Optional: []Property{ref("Data")}},

	// microstrip substrate and components
	{Type: "SUBST", Nodes: 0, Substrate: true,
		Required: []Property{rng("er", 1, 100), pos("h"), pos("t"), pos("tand"), pos("rho"), pos("D")}},
	{Type: "MLIN", Nodes: 2,
		Required: []Property{ref("Subst"), pos("W"), pos("L")},
		Optional: []Property{ref("Model"), ref("DispModel"), rng("Temp", -273.15, 1e6)}},
	{Type: "MCORN", Nodes: 2,
		Required: []Property{ref("Subst"), pos("W")}},
	{Type: "MMBEND", Nodes: 2,
		Required: []Property{ref("Subst"), pos("W")}},
	{Type: "MSTEP", Nodes: 2,
		Required: []Property{ref("Subst"), pos("W1"), pos("W2")},
		Optional: []Property{ref("MSModel"), ref("MSDispModel")}},
	{Type: "MOPEN", Nodes: 1,
		Required: []Property{ref("Subst"), pos("W")},
		Optional: []Property{ref("Model"), ref("MSModel"), ref("MSDispModel")}},
	{Type: "MGAP", Nodes: 2,
		Required: []Property{ref("Subst"), pos("W1"), pos("W2"), pos("S")},
		Optional: []Property{ref("MSModel"), ref("MSDispModel")}},
	{Type: "MCOUPLED", Nodes: 4,
		Required: []Property{ref("Subst"), pos("W"), pos("L"), pos("S")},
		Optional: []Property{ref("Model"), ref("DispModel")}},
	{Type: "MTEE", Nodes: 3,
		Required: []Property{ref("Subst"), pos("W1"), pos("W2"), pos("W3")}},
	{Type: "MCROSS", Nodes: 4,
		Required: []Property{ref("Subst"), pos("W1"), pos("W2"), pos("W3"), pos("W4")}},
	{Type: "MVIA", Nodes: 1,
		Required: []Property{ref("Subst"), pos("D")},
		Optional: []Property{rng("Temp", -273.15, 1e6)}},
	{Type: "CLIN", Nodes: 4,
		Required: []Property{ref("Subst"), pos("W"), pos("S"), pos("L")},
		Optional: []Property{ref("Backside")}},

	// nodeset and subcircuits
	{Type: "NodeSet", Nodes: 1, Required: []Property{val("U")}},
	{Type: "Sub", Nodes: NodesVariable, Required: []Property{ref("Type")}},
	{Type: "Def", Nodes: NodesVariable},

	// simulation actions
	{Type: "DC", Action: true,
		Optional: []Property{rng("Temp", -273.15, 1e6), num("MaxIter", 2, 10000),
			pos("abstol"), pos("reltol"), pos("vntol"),
			ref("saveOPs"), ref("saveAll"), ref("convHelper")}},
	{Type: "AC", Action: true,
		Required: []Property{ref("Type")},
		Optional: []Property{pos("Start"), pos("Stop"), num("Points", 2, 1e9),
			lst("Values"), ref("Noise")}},
	{Type: "SP", Action: true,
		Required: []Property{ref("Type")},
		Optional: []Property{pos("Start"), pos("Stop"), num("Points", 2, 1e9),
			lst("Values"), ref("Noise")}},
	{Type: "TR", Action: true,
		Required: []Property{ref("Type"), val("Start"), val("Stop"), num("Points", 2, 1e9)},
		Optional: []Property{ref("IntegrationMethod"), num("Order", 1, 6),
			rng("Temp", -273.15, 1e6)}},
	{Type: "SW", Action: true,
		Required: []Property{ref("Sim"), ref("Type"), ref("Param")},
		Optional: []Property{val("Start"), val("Stop"), num("Points", 2, 1e9),
			lst("Values")}},
}
