// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All routines MUST return these sentinels (optionally wrapped with
// call-site context) and tests MUST check them via errors.Is. No routine
// panics on user-triggered error conditions; panics are reserved for
// nonsensical Option values (programmer error).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context is attached with fmt.Errorf("ctx: %w", ErrX)
// at the detection site; callers still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> index -> dimension mismatch -> numeric policy -> singular.

var (
	// ErrBadShape is returned when a requested shape or window is invalid
	// (ragged literal rows, bounds larger than the matrix).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row/SetRow/SwapRows) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Vector.Sub on different lengths, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square shape was required but the input wasn't.
	// NewIdentity(m, n) with m != n reports it instead of guessing a shape.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (Set, SetRow, elimination write-back).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix or Vector (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned by Inverse when the reduced left block is not the identity.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrInvalidDimensions indicates that requested dimensions are out of the legal range
	// (non-positive for matrices, negative for vectors).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrUnknownStep is returned when replaying a Step whose Kind is not Swap or Sub.
	ErrUnknownStep = errors.New("matrix: unknown elimination step")
)

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
// Keep it as an alias so errors.Is(err, ErrIndexOutOfBounds) remains true.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.
