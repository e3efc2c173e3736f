// SPDX-License-Identifier: MIT

// Package matrix - Vector: a resizable float64 sequence with elementwise arithmetic.
//
// Purpose:
//   - Model one matrix row as a value the caller may inspect or rebuild.
//   - Keep arithmetic pure: Sub/Mul/Div return fresh vectors, only Set/Resize mutate.
//
// Ownership:
//   - Dense never hands out its own storage; Row(i) copies and SetRow copies back.
//
// Complexity quicksheet:
//   - Sub/Mul/Div/Clone: O(n); At/Set/Len: O(1); Resize: O(max(n, Len())).

package matrix

import (
	"fmt"
	"strings"
)

const (
	ctxVecAt     = "At"
	ctxVecSet    = "Set"
	ctxVecSub    = "Sub"
	ctxVecResize = "Resize"
)

// vectorErrorf wraps err with a uniform Vector context.
func vectorErrorf(method string, err error) error {
	return fmt.Errorf("Vector.%s: %w", method, err)
}

// Vector is an ordered sequence of float64 values.
// The zero value is a legal empty vector.
type Vector struct {
	data []float64
}

var _ fmt.Stringer = (*Vector)(nil)

// NewVector returns a zero-filled vector of length n.
// Errors: ErrInvalidDimensions when n < 0. n == 0 is legal.
func NewVector(n int) (*Vector, error) {
	if n < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Vector{data: make([]float64, n)}, nil
}

// ZerosVector is an intention-revealing alias of NewVector.
func ZerosVector(n int) (*Vector, error) { return NewVector(n) }

// OnesVector returns a vector of length n filled with the multiplicative identity.
func OnesVector(n int) (*Vector, error) {
	v, err := NewVector(n)
	if err != nil {
		return nil, err
	}
	for i := range v.data {
		v.data[i] = 1.0
	}

	return v, nil
}

// VectorFrom copies vals into a new vector. A nil slice yields an empty vector.
func VectorFrom(vals []float64) *Vector {
	cp := make([]float64, len(vals))
	copy(cp, vals)

	return &Vector{data: cp}
}

// Len returns the number of entries.
func (v *Vector) Len() int { return len(v.data) }

// At returns entry i or ErrOutOfRange.
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, vectorErrorf(ctxVecAt, fmt.Errorf("index %d: %w", i, ErrOutOfRange))
	}

	return v.data[i], nil
}

// Set writes entry i or returns ErrOutOfRange.
func (v *Vector) Set(i int, x float64) error {
	if i < 0 || i >= len(v.data) {
		return vectorErrorf(ctxVecSet, fmt.Errorf("index %d: %w", i, ErrOutOfRange))
	}
	v.data[i] = x

	return nil
}

// Values returns a copy of the entries.
func (v *Vector) Values() []float64 {
	cp := make([]float64, len(v.data))
	copy(cp, v.data)

	return cp
}

// Sub returns v − w elementwise.
// Errors: ErrNilMatrix when w is nil; ErrDimensionMismatch when lengths differ.
// The result is never silently truncated or padded.
func (v *Vector) Sub(w *Vector) (*Vector, error) {
	if w == nil {
		return nil, vectorErrorf(ctxVecSub, ErrNilMatrix)
	}
	if len(v.data) != len(w.data) {
		return nil, vectorErrorf(ctxVecSub,
			fmt.Errorf("len %d vs %d: %w", len(v.data), len(w.data), ErrDimensionMismatch))
	}
	out := make([]float64, len(v.data))
	for i := range v.data {
		out[i] = v.data[i] - w.data[i]
	}

	return &Vector{data: out}, nil
}

// Mul returns alpha·v.
func (v *Vector) Mul(alpha float64) *Vector {
	out := make([]float64, len(v.data))
	for i, x := range v.data {
		out[i] = x * alpha
	}

	return &Vector{data: out}
}

// Div returns v/alpha elementwise. A zero divisor follows IEEE-754 (±Inf or NaN);
// guarding against it is the caller's job.
func (v *Vector) Div(alpha float64) *Vector {
	out := make([]float64, len(v.data))
	for i, x := range v.data {
		out[i] = x / alpha
	}

	return &Vector{data: out}
}

// Resize truncates to n entries or pads with fill.
// Errors: ErrInvalidDimensions when n < 0.
func (v *Vector) Resize(n int, fill float64) error {
	if n < 0 {
		return vectorErrorf(ctxVecResize, ErrInvalidDimensions)
	}
	if n <= len(v.data) {
		v.data = v.data[:n:n] // drop the tail; cap pinned so later appends reallocate
		return nil
	}
	grown := make([]float64, n)
	copy(grown, v.data)
	for i := len(v.data); i < n; i++ {
		grown[i] = fill
	}
	v.data = grown

	return nil
}

// Clone returns an independent copy.
func (v *Vector) Clone() *Vector { return VectorFrom(v.data) }

// IsZero reports whether every entry is exactly zero. An empty vector is zero.
func (v *Vector) IsZero() bool {
	for _, x := range v.data {
		if x != 0 {
			return false
		}
	}

	return true
}

// Equal reports exact elementwise equality with w (same length required).
func (v *Vector) Equal(w *Vector) bool {
	if w == nil || len(v.data) != len(w.data) {
		return false
	}
	for i := range v.data {
		if v.data[i] != w.data[i] {
			return false
		}
	}

	return true
}

// String renders the vector as "[a, b, c]".
func (v *Vector) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, x := range v.data {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(fmt.Sprintf("%g", x))
	}
	b.WriteString("]")

	return b.String()
}
