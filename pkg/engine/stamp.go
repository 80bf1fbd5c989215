package engine

import (
	"fmt"

	"toy-qucs/pkg/netlist"
)

func (e *Engine) propNumber(st *netlist.Statement, key string) (float64, error) {
	value := st.FindPropValue(key)
	if value == nil {
		return 0, fmt.Errorf("missing `%s' property in `%s:%s'", key, st.Type, st.Instance)
	}
	return value.Number, nil
}

// stamp adds one component's DC contribution to the MNA system.
// Capacitors are open at DC and stamp nothing; inductors are shorts
// modeled as zero-volt sources so their current is available.
func (e *Engine) stamp(st *netlist.Statement) error {
	nodes := e.nodeIndices(st)

	switch st.Type {
	case "R":
		value, err := e.propNumber(st, "R")
		if err != nil {
			return err
		}
		if value == 0 {
			return fmt.Errorf("zero resistance in `R:%s'", st.Instance)
		}
		e.stampConductance(nodes[0], nodes[1], 1.0/value)
	case "C":
		// open at DC
	case "L":
		e.stampVoltageSource(nodes[0], nodes[1], e.branchMap[st.Instance], 0)
	case "Vdc":
		value, err := e.propNumber(st, "U")
		if err != nil {
			return err
		}
		e.stampVoltageSource(nodes[0], nodes[1], e.branchMap[st.Instance], value)
	case "Idc":
		value, err := e.propNumber(st, "I")
		if err != nil {
			return err
		}
		e.matrix.AddRHS(nodes[0], value)
		e.matrix.AddRHS(nodes[1], -value)
	default:
		return fmt.Errorf("component type `%s' not supported in DC analysis", st.Type)
	}
	return nil
}

func (e *Engine) stampConductance(n1, n2 int, g float64) {
	e.matrix.AddElement(n1, n1, g)
	e.matrix.AddElement(n2, n2, g)
	e.matrix.AddElement(n1, n2, -g)
	e.matrix.AddElement(n2, n1, -g)
}

func (e *Engine) stampVoltageSource(n1, n2, branch int, voltage float64) {
	e.matrix.AddElement(branch, n1, 1)
	e.matrix.AddElement(n1, branch, 1)
	e.matrix.AddElement(branch, n2, -1)
	e.matrix.AddElement(n2, branch, -1)
	e.matrix.AddRHS(branch, voltage)
}
