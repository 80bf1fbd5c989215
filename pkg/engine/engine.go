// Package engine computes DC operating points from a checked, expanded netlist.
package engine

import (
	"fmt"

	"toy-qucs/pkg/matrix"
	"toy-qucs/pkg/netlist"
)

// Engine holds the node and branch numbering for a flat netlist and
// solves the MNA system for the DC operating point.
type Engine struct {
	statements []*netlist.Statement
	nodeMap    map[string]int
	branchMap  map[string]int
	numNodes   int
	matrix     *matrix.Matrix
}

// New numbers the nodes and source branches of a flat netlist. The
// netlist must already be checked and expanded; subcircuit instances or
// definitions left in the list are rejected.
func New(statements []*netlist.Statement) (*Engine, error) {
	e := &Engine{
		statements: statements,
		nodeMap:    make(map[string]int),
		branchMap:  make(map[string]int),
	}
	if err := e.assignNodeBranchMaps(); err != nil {
		return nil, err
	}
	return e, nil
}

func isGround(nodeName string) bool {
	return nodeName == "0" || nodeName == "gnd"
}

// needsBranch reports whether a component gets an extra MNA branch row
// for its current. Voltage sources and inductors (shorts at DC) do.
func needsBranch(typeName string) bool {
	return typeName == "Vdc" || typeName == "L"
}

func (e *Engine) assignNodeBranchMaps() error {
	for _, st := range e.statements {
		if st.Action || st.Type == "Def" || st.Type == "Sub" {
			return fmt.Errorf("non-component `%s:%s' in flat netlist", st.Type, st.Instance)
		}
		for _, node := range st.Nodes {
			if isGround(node.Name) {
				continue
			}
			if _, exists := e.nodeMap[node.Name]; !exists {
				e.nodeMap[node.Name] = len(e.nodeMap) + 1
			}
		}
	}
	branchStart := len(e.nodeMap) + 1
	for _, st := range e.statements {
		if needsBranch(st.Type) {
			e.branchMap[st.Instance] = branchStart
			branchStart++
		}
	}
	e.numNodes = len(e.nodeMap)
	return nil
}

// nodeIndices maps a statement's node names to matrix indices, ground
// becoming index 0.
func (e *Engine) nodeIndices(st *netlist.Statement) []int {
	indices := make([]int, len(st.Nodes))
	for i, node := range st.Nodes {
		if isGround(node.Name) {
			indices[i] = 0
		} else {
			indices[i] = e.nodeMap[node.Name]
		}
	}
	return indices
}

// OperatingPoint stamps and solves the DC system once and returns node
// voltages as V(name) and source branch currents as I(name).
func (e *Engine) OperatingPoint() (map[string]float64, error) {
	size := len(e.nodeMap) + len(e.branchMap)
	if size == 0 {
		return nil, fmt.Errorf("empty netlist, nothing to solve")
	}

	m, err := matrix.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating MNA matrix: %v", err)
	}
	defer m.Destroy()
	e.matrix = m

	for _, st := range e.statements {
		if err := e.stamp(st); err != nil {
			return nil, err
		}
	}

	if err := m.Solve(); err != nil {
		return nil, fmt.Errorf("solving DC system: %v", err)
	}

	solution := m.Solution()
	result := make(map[string]float64)
	for name, idx := range e.nodeMap {
		result[fmt.Sprintf("V(%s)", name)] = solution[idx]
	}
	for name, idx := range e.branchMap {
		result[fmt.Sprintf("I(%s)", name)] = -solution[idx]
	}
	return result, nil
}

// NodeMap exposes the node numbering, mainly for tests and listings.
func (e *Engine) NodeMap() map[string]int {
	return e.nodeMap
}

// NumNodes returns the number of non-ground nodes.
func (e *Engine) NumNodes() int {
	return e.numNodes
}
