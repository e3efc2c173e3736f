// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// A typed nil *Dense stored in the interface is rejected as well.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape – Ensures matrices a and b are non-nil and have equal dimensions.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrNilMatrix if nil, ErrNonSquare if not square.
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBounds ensures a rows×cols window fits into m.
// Errors: ErrInvalidDimensions for non-positive sizes, ErrBadShape when the window exceeds m.
func ValidateBounds(m Matrix, rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return validatorErrorf("ValidateBounds", ErrInvalidDimensions)
	}
	if rows > m.Rows() || cols > m.Cols() {
		return validatorErrorf("ValidateBounds", ErrBadShape)
	}

	return nil
}
