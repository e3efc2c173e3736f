// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication: each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.
//
// AI-Hints:
//   - Use NewFromRows for literal input, NewIdentity/NewZeros/NewOnes for explicit shapes.
//   - Reduction methods on *Dense (RowReduced, RREF, Rank) forward to the engine with default options.

package matrix

import "fmt"

const (
	ctxFromRows    = "NewFromRows"
	ctxFromVectors = "NewFromVectors"
	ctxIdentity    = "NewIdentity"
)

// ---------- Constructors (O(1) alloc + O(rc) fill) ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewOnes returns a rows×cols matrix with every entry set to 1.
func NewOnes(rows, cols int) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for k := range m.data {
		m.data[k] = 1.0
	}

	return m, nil
}

// NewIdentity returns the rows×cols identity (ones on the diagonal, zeros elsewhere).
// Only square shapes have an identity: rows != cols yields (nil, ErrNonSquare)
// rather than a guessed shape.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(rows, cols int) (*Dense, error) {
	if rows != cols {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxIdentity, rows, cols, ErrNonSquare)
	}
	I, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rows; i++ {
		I.data[i*cols+i] = 1.0
	}

	return I, nil
}

// NewFromRows builds a Dense from a literal rectangular array (data is copied).
// Errors:
//   - ErrInvalidDimensions when there are no rows or the first row is empty.
//   - ErrBadShape when rows have different lengths.
//   - ErrNaNInf when a value violates the default numeric policy.
func NewFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, err)
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", ctxFromRows, i, len(row), c, ErrBadShape)
		}
		for j, v := range row {
			if err = m.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("%s: %w", ctxFromRows, err)
			}
		}
	}

	return m, nil
}

// NewFromVectors stacks the given vectors as rows. All vectors must share a length.
func NewFromVectors(rows ...*Vector) (*Dense, error) {
	raw := make([][]float64, len(rows))
	for i, v := range rows {
		if v == nil {
			return nil, fmt.Errorf("%s: row %d: %w", ctxFromVectors, i, ErrNilMatrix)
		}
		raw[i] = v.data
	}

	return NewFromRows(raw)
}

// MustFromRows is NewFromRows for package-level literals and examples; it panics on error.
func MustFromRows(rows [][]float64) *Dense {
	m, err := NewFromRows(rows)
	if err != nil {
		panic(err)
	}

	return m
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
func CloneMatrix(m Matrix) Matrix {
	return m.Clone()
}

// ---------- Reduction methods on *Dense (facades over the engine; default options) ----------

// RowReduced returns a new matrix in row-echelon form (forward elimination only).
// The receiver is not modified.
func (m *Dense) RowReduced() (*Dense, error) { return RowReduce(m) }

// RowReducedVerbose returns every (step, snapshot) pair of the forward elimination.
func (m *Dense) RowReducedVerbose() ([]Snapshot, error) { return RowReduceVerbose(m) }

// RREF returns the reduced row-echelon form of the receiver.
func (m *Dense) RREF() (*Dense, error) { return RREF(m) }

// Rank returns the number of non-zero rows of the receiver's RREF.
func (m *Dense) Rank() (int, error) { return Rank(m) }

// ---------- Aliases ----------

// T is an alias for Transpose: returns mᵀ.
func T(m Matrix) (Matrix, error) { return Transpose(m) }

// Product is an alias for Mul: matrix product a × b.
func Product(a, b Matrix) (Matrix, error) { return Mul(a, b) }

// InverseOf is an alias for Inverse (Gauss–Jordan on [A | I]).
func InverseOf(m Matrix) (*Dense, error) { return Inverse(m) }
