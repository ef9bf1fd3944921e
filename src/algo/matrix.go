package algo

import "gonum.org/v1/gonum/mat"

// Matrix is the dense A×A per-character substitution cost table. It is
// built once by the cost-model builder and never mutated afterwards; all
// lookups are plain array indexing via gonum's *mat.Dense backing store.
type Matrix struct {
	dense *mat.Dense
	size  int
}

// NewMatrix returns a size×size Matrix with every entry set to fallback
// except the diagonal, which is always zero (M[a][a] = 0 per spec).
func NewMatrix(size int, fallback float64) *Matrix {
	dense := mat.NewDense(size, size, nil)
	for a := 0; a < size; a++ {
		for b := 0; b < size; b++ {
			if a != b {
				dense.Set(a, b, fallback)
			}
		}
	}
	return &Matrix{dense: dense, size: size}
}

// Set writes the cost of turning a into b. Later calls for the same (a, b)
// overwrite earlier ones, matching the cost-model builder's "last write
// wins" case-flip rule.
func (m *Matrix) Set(a, b CID, cost float64) {
	m.dense.Set(int(a), int(b), cost)
}

// At returns the cost of turning a into b.
func (m *Matrix) At(a, b CID) float64 {
	return m.dense.At(int(a), int(b))
}

// Size returns the alphabet size A the matrix was built for.
func (m *Matrix) Size() int {
	return m.size
}

// Symmetric reports whether M[a][b] == M[b][a] for every pair; not part of
// the hot path.
func (m *Matrix) Symmetric() bool {
	for a := 0; a < m.size; a++ {
		for b := a + 1; b < m.size; b++ {
			if m.dense.At(a, b) != m.dense.At(b, a) {
				return false
			}
		}
	}
	return true
}
