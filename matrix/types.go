// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense storage and the elimination engine.
// This file intentionally contains ONLY the public Matrix interface and the small
// value types returned by reductions. Errors and options live in dedicated
// files (errors.go, options.go).
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}

// Snapshot pairs one elementary row operation with the matrix it produced.
// Matrix is an independent copy; mutating it never affects the engine.
type Snapshot struct {
	Step   Step   `json:"step"`
	Matrix *Dense `json:"matrix"`
}

// SolutionKind classifies a linear system A·x = b after reduction.
type SolutionKind uint8

const (
	// Inconsistent: the reduced augmented matrix has a row [0 … 0 | c] with c != 0.
	Inconsistent SolutionKind = iota
	// Unique: every variable column holds a pivot.
	Unique
	// Infinite: consistent, with at least one free variable.
	Infinite
)

// String returns a lowercase label used by the CLI and the HTTP API.
func (k SolutionKind) String() string {
	switch k {
	case Unique:
		return "unique"
	case Infinite:
		return "infinite"
	default:
		return "inconsistent"
	}
}

// Solution is the outcome of Solve.
//   - X holds a particular solution with every free variable set to zero (nil when Inconsistent).
//   - Free lists the free variable (column) indices in ascending order.
//   - Reduced is the RREF of the augmented matrix [A | b].
type Solution struct {
	Kind    SolutionKind
	X       []float64
	Free    []int
	Reduced *Dense
}
