// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for the elimination tests.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gauss/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} to force the non-*Dense (At-based) paths in code under test.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// FromRows builds a *Dense from a literal or fails the test.
func FromRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		t.Fatalf("NewFromRows(%v): %v", rows, err)
	}

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustSet writes (i,j) or fails the test.
func MustSet(t testing.TB, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// CompareExact fails the test unless got and want match shape and every entry bit-for-bit.
func CompareExact(t testing.TB, got, want matrix.Matrix) {
	t.Helper()
	if got.Rows() != want.Rows() || got.Cols() != want.Cols() {
		t.Fatalf("shape mismatch: got %dx%d, want %dx%d", got.Rows(), got.Cols(), want.Rows(), want.Cols())
	}
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			g, w := MustAt(t, got, i, j), MustAt(t, want, i, j)
			if g != w {
				t.Fatalf("(%d,%d): got %v, want %v\ngot:\n%vwant:\n%v", i, j, g, w, got, want)
			}
		}
	}
}

// CompareClose fails the test unless got ≈ want (AllClose with rtol=1e-12, atol=1e-12).
func CompareClose(t testing.TB, got, want matrix.Matrix) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, 1e-12, 1e-12)
	if err != nil {
		t.Fatalf("AllClose: %v", err)
	}
	if !ok {
		t.Fatalf("matrices differ\ngot:\n%vwant:\n%v", got, want)
	}
}

// RandomFill fills m with small integers in [-9, 9] from a seeded source.
// Integer data keeps every intermediate close to representable.
func RandomFill(t testing.TB, m *matrix.Dense, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			MustSet(t, m, i, j, float64(rng.Intn(19)-9))
		}
	}
}

// RandomDense allocates and fills an r×c matrix.
func RandomDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	RandomFill(t, m, seed)

	return m
}

// IsEchelon reports whether every row's leading non-zero lies strictly right of the
// previous row's and all zero rows sit at the bottom.
func IsEchelon(t testing.TB, m matrix.Matrix) bool {
	t.Helper()
	prev := -1
	seenZero := false
	for i := 0; i < m.Rows(); i++ {
		lead := -1
		for j := 0; j < m.Cols(); j++ {
			if MustAt(t, m, i, j) != 0 {
				lead = j
				break
			}
		}
		if lead < 0 {
			seenZero = true
			continue
		}
		if seenZero || lead <= prev {
			return false
		}
		prev = lead
	}

	return true
}
