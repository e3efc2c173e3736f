// SPDX-License-Identifier: MIT

// Package matrix - linear systems and inverses by Gauss–Jordan reduction.
//
// Both routines reduce an augmented matrix with RREF and read the answer off its
// pivot structure; no other factorization is involved.

package matrix

import (
	"fmt"
	"slices"
)

// Solve classifies and solves A·x = b.
// MAIN DESCRIPTION:
//   - Reduce [A | b] to RREF. A pivot in the last column means Inconsistent.
//     Otherwise every non-pivot variable column is free; X is the particular
//     solution with all free variables set to zero.
//
// Errors:
//   - ErrNilMatrix (nil A or nil b), ErrDimensionMismatch (len(b) != A.Rows()),
//     ErrBadShape when opts carry WithBounds, plus anything RREF reports.
//
// Complexity:
//   - Time O(r²·c), Space O(r*c).
func Solve(a Matrix, b []float64, opts ...Option) (*Solution, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, a.Rows()); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := rejectBounds(opts); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	rhs, err := NewDense(len(b), 1)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	for i, v := range b {
		if err = rhs.Set(i, 0, v); err != nil {
			return nil, matrixErrorf(opSolve, err)
		}
	}
	aug, err := Augment(a, rhs)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	R, err := RREF(aug, opts...)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	n := a.Cols()
	sol := &Solution{Reduced: R, Free: []int{}}
	pivots := PivotColumns(R, opts...)
	if slices.Contains(pivots, n) {
		sol.Kind = Inconsistent
		return sol, nil
	}

	isPivot := make([]bool, n)
	x := make([]float64, n)
	for row, col := range pivots {
		isPivot[col] = true
		x[col] = R.data[row*R.c+n]
	}
	for j := 0; j < n; j++ {
		if !isPivot[j] {
			sol.Free = append(sol.Free, j)
		}
	}
	sol.X = x
	sol.Kind = Unique
	if len(sol.Free) > 0 {
		sol.Kind = Infinite
	}

	return sol, nil
}

// Inverse returns A⁻¹ by reducing [A | I].
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular (some column of A has no pivot),
// ErrBadShape when opts carry WithBounds.
// Complexity: Time O(n³), Space O(n²).
func Inverse(a Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err := rejectBounds(opts); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := a.Rows()
	I, err := NewIdentity(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	aug, err := Augment(a, I)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	R, err := RREF(aug, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	pivots := PivotColumns(R, opts...)
	if len(pivots) < n {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}
	for i := 0; i < n; i++ {
		if pivots[i] != i {
			return nil, matrixErrorf(opInverse, fmt.Errorf("column %d: %w", i, ErrSingular))
		}
	}
	cols := make([]int, n)
	for j := range cols {
		cols[j] = n + j
	}

	return R.Induced(seq(n), cols)
}

// rejectBounds reports ErrBadShape when opts restrict elimination to a block.
// Solve and Inverse reduce an augmented copy whose extra columns a bound would cut off.
func rejectBounds(opts []Option) error {
	if o := gatherOptions(opts...); o.boundRows > 0 {
		return fmt.Errorf("WithBounds on an augmented system: %w", ErrBadShape)
	}

	return nil
}
