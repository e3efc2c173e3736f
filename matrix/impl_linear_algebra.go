// SPDX-License-Identifier: MIT
// Package matrix provides the supporting kernels the elimination engine and its
// callers compose: transpose, matrix product, column concatenation and tolerant
// comparison. All functions perform strict fail-fast validation and return clear
// errors on dimension mismatches.
//
// Purpose:
//   - Declare operation tags and shared constants for determinism and error reporting.
//   - Keep *Dense fast paths on the flat buffer with a generic At/Set fallback.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial accumulator value for products.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul        = "Mul"
	opTranspose  = "Transpose"
	opAugment    = "Augment"
	opAllClose   = "AllClose"
	opRowReduce  = "RowReduce"
	opRowVerbose = "RowReduceVerbose"
	opRREF       = "RREF"
	opRank       = "Rank"
	opReplay     = "Replay"
	opSolve      = "Solve"
	opInverse    = "Inverse"
	opEliminator = "NewEliminator"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// toDense returns an independent *Dense copy of m carrying the given numeric policy.
// Non-Dense inputs are read through At.
func toDense(m Matrix, validateNaNInf bool) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		cp := d.clone()
		cp.validateNaNInf = validateNaNInf
		return cp, nil
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := newDenseWithPolicy(rows, cols, validateNaNInf)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			res.data[i*cols+j] = v
		}
	}

	return res, nil
}

// Mul returns the matrix product a × b.
// Implementation:
//   - Stage 1: Validate a,b (not nil) and inner dimensions (a.Cols == b.Rows).
//   - Stage 2: If a and b are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k with a fixed order and zero-skip on a[i,k].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// AI-Hints:
//   - Permutation matrices times A reorder rows of A exactly (one non-zero per row).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}
			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
//
// AI-Hints:
//   - Rank(m) == Rank(Transpose(m)) is a cheap sanity check for the elimination engine.
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}
		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	return res, nil
}

// Augment returns the column concatenation [a | b].
// Errors: ErrNilMatrix; ErrDimensionMismatch when row counts differ.
// Complexity: O(r*(ca+cb)).
func Augment(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	if a.Rows() != b.Rows() {
		return nil, matrixErrorf(opAugment, ErrDimensionMismatch)
	}
	da, err := toDense(a, DefaultValidateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	db, err := toDense(b, DefaultValidateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opAugment, err)
	}

	rows, ca, cb := da.r, da.c, db.c
	res, err := NewDense(rows, ca+cb)
	if err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	w := ca + cb
	for i := 0; i < rows; i++ {
		copy(res.data[i*w:i*w+ca], da.data[i*ca:(i+1)*ca])
		copy(res.data[i*w+ca:(i+1)*w], db.data[i*cb:(i+1)*cb])
	}

	return res, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
//
// AI-Hints:
//   - AllClose with small atol/rtol is ideal for invariance tests on floating-point reductions.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	r, c := a.Rows(), a.Cols()
	var av, bv float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
