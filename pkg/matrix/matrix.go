// Package matrix wraps the sparse solver with the 1-based modified
// nodal analysis interface the DC engine stamps into.
package matrix

import (
	"fmt"

	"github.com/edp1096/sparse"
)

// Stamper is the interface devices stamp their contributions into.
type Stamper interface {
	AddElement(i, j int, value float64) // 1-based indexing
	AddRHS(i int, value float64)
}

type Matrix struct {
	Size     int
	matrix   *sparse.Matrix
	rhs      []float64
	solution []float64
	config   *sparse.Configuration
}

func New(size int) (*Matrix, error) {
	config := &sparse.Configuration{
		Real:           true,
		Expandable:     true,
		ModifiedNodal:  true,
		TiesMultiplier: 5,
		PrinterWidth:   140,
	}

	mat, err := sparse.Create(int64(size), config)
	if err != nil {
		return nil, fmt.Errorf("creating sparse matrix: %v", err)
	}

	return &Matrix{
		Size:     size,
		matrix:   mat,
		rhs:      make([]float64, size+1), // 1-based indexing
		solution: make([]float64, size+1),
		config:   config,
	}, nil
}

func (m *Matrix) AddElement(i, j int, value float64) {
	if i <= 0 || j <= 0 || i > m.Size || j > m.Size {
		return
	}
	m.matrix.GetElement(int64(i), int64(j)).Real += value
}

func (m *Matrix) AddRHS(i int, value float64) {
	if i <= 0 || i > m.Size {
		return
	}
	m.rhs[i] += value
}

// LoadGmin adds a small conductance on the diagonal to keep floating
// nodes solvable.
func (m *Matrix) LoadGmin(gmin float64) {
	for i := 1; i <= m.Size; i++ {
		m.matrix.GetElement(int64(i), int64(i)).Real += gmin
	}
}

func (m *Matrix) Clear() {
	m.matrix.Clear()
	for i := range m.rhs {
		m.rhs[i] = 0
	}
}

func (m *Matrix) Solve() error {
	if err := m.matrix.Factor(); err != nil {
		return fmt.Errorf("matrix factorization failed: %v", err)
	}
	solution, err := m.matrix.Solve(m.rhs)
	if err != nil {
		return fmt.Errorf("matrix solve failed: %v", err)
	}
	m.solution = solution
	return nil
}

// Solution returns the solution vector, 1-based like the stamps.
func (m *Matrix) Solution() []float64 {
	return m.solution
}

func (m *Matrix) Destroy() {
	if m.matrix != nil {
		m.matrix.Destroy()
	}
}
