// SPDX-License-Identifier: MIT

// Package matrix - elementary row operations emitted by the elimination engine.
//
// A Step is a plain value: the engine produces it, callers render or replay it.
// Its semantic content (indices, scale) stays exported verbatim; String() is only
// a convenience rendering.

package matrix

import (
	"fmt"
	"strings"
)

// StepKind tags the Step variant.
type StepKind uint8

const (
	// StepSwap exchanges rows From and To.
	StepSwap StepKind = iota + 1
	// StepSub replaces row To with row[To] − Scale·row[From].
	StepSub
)

const (
	stepKindSwap = "swap"
	stepKindSub  = "sub"
)

// String returns "swap" or "sub" ("unknown" for the zero value).
func (k StepKind) String() string {
	switch k {
	case StepSwap:
		return stepKindSwap
	case StepSub:
		return stepKindSub
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind as its lowercase label.
func (k StepKind) MarshalText() ([]byte, error) {
	if k != StepSwap && k != StepSub {
		return nil, fmt.Errorf("StepKind(%d): %w", k, ErrUnknownStep)
	}

	return []byte(k.String()), nil
}

// UnmarshalText decodes "swap" or "sub" (case-insensitive).
func (k *StepKind) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case stepKindSwap:
		*k = StepSwap
	case stepKindSub:
		*k = StepSub
	default:
		return fmt.Errorf("StepKind %q: %w", b, ErrUnknownStep)
	}

	return nil
}

// NoColumn marks a Step that does not name its pivot column.
const NoColumn = -1

// Step is one elementary row operation.
//   - Swap: From and To are the exchanged row indices; Scale is zero.
//   - Sub : row To becomes row[To] − Scale·row[From].
//
// Col is the pivot column the operation works on (NoColumn when unknown). For a
// Sub step the entry (To, Col) is mathematically zero afterwards and Apply stores
// an exact 0 there instead of the rounded difference. Build steps with the
// constructors; a literal Step{} has Col 0.
type Step struct {
	Kind  StepKind `json:"kind"`
	From  int      `json:"from"`
	To    int      `json:"to"`
	Scale float64  `json:"scale,omitempty"`
	Col   int      `json:"col"`
}

// SwapStep builds a Swap{from, to} step.
func SwapStep(from, to int) Step {
	return Step{Kind: StepSwap, From: from, To: to, Col: NoColumn}
}

// SubStep builds a Sub{scale, from, to} step without a pivot column.
func SubStep(scale float64, from, to int) Step {
	return Step{Kind: StepSub, From: from, To: to, Scale: scale, Col: NoColumn}
}

// SubStepAt builds a Sub{scale, from, to} step eliminating column col.
func SubStepAt(scale float64, from, to, col int) Step {
	return Step{Kind: StepSub, From: from, To: to, Scale: scale, Col: col}
}

// swapStepAt is SwapStep recording the pivot column that triggered it.
func swapStepAt(from, to, col int) Step {
	return Step{Kind: StepSwap, From: from, To: to, Col: col}
}

// Equal compares the operation (Kind, From, To, Scale); Col is bookkeeping.
func (s Step) Equal(o Step) bool {
	return s.Kind == o.Kind && s.From == o.From && s.To == o.To && s.Scale == o.Scale
}

// IsSwap reports whether s exchanges two rows.
func (s Step) IsSwap() bool { return s.Kind == StepSwap }

// IsSub reports whether s subtracts a scaled row.
func (s Step) IsSub() bool { return s.Kind == StepSub }

// String renders the step for humans.
func (s Step) String() string {
	switch s.Kind {
	case StepSwap:
		return fmt.Sprintf("swap row %d with row %d", s.From, s.To)
	case StepSub:
		return fmt.Sprintf("multiply row %d by %g and subtract from row %d", s.From, s.Scale, s.To)
	default:
		return "unknown step"
	}
}

// Apply performs the step on m in place.
// Errors: ErrUnknownStep for a zero/invalid Kind; index and numeric-policy errors from Dense.
func (s Step) Apply(m *Dense) error {
	if m == nil {
		return fmt.Errorf("Step.Apply: %w", ErrNilMatrix)
	}
	switch s.Kind {
	case StepSwap:
		return m.SwapRows(s.From, s.To)
	case StepSub:
		return subScaledRow(m, s.From, s.To, s.Col, s.Scale)
	default:
		return fmt.Errorf("Step.Apply(%d): %w", s.Kind, ErrUnknownStep)
	}
}

// subScaledRow sets row[to] = row[to] − scale·row[from] through Vector arithmetic
// and, when col is a valid column, stores an exact 0 at (to, col).
// The engine, back-substitution and Replay all go through here, so replay is
// bit-for-bit identical.
func subScaledRow(m *Dense, from, to, col int, scale float64) error {
	pivot, err := m.Row(from)
	if err != nil {
		return err
	}
	target, err := m.Row(to)
	if err != nil {
		return err
	}
	next, err := target.Sub(pivot.Mul(scale))
	if err != nil {
		return err
	}
	if col >= 0 && col < next.Len() {
		next.data[col] = 0
	}

	return m.SetRow(to, next)
}
