// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the elimination engine and
// numeric policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Pivot tests are exact (x == 0) unless WithPivotTolerance is supplied.
//     The engine never introduces a tolerance on its own.
//   - Bounds are validated against the input when the engine starts, so a
//     window that does not fit surfaces as an error from NewEliminator rather
//     than a panic here.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotTolerance is the magnitude at or below which an entry counts as zero.
	// 0 means exact comparison against zero.
	DefaultPivotTolerance = 0.0

	// DefaultValidateNaNInf toggles strict finite-value validation on Set/SetRow and
	// on every row the engine writes back.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPivotToleranceInvalid = "matrix: WithPivotTolerance: tol must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (last-writer-wins).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and resolve them via gatherOptions.
type Options struct {
	pivotTol       float64            // >= 0; DefaultPivotTolerance
	validateNaNInf bool               // DefaultValidateNaNInf
	boundRows      int                // 0 = all rows
	boundCols      int                // 0 = all cols
	onStep         func(Step, *Dense) // nil = no hook
	onOp           func(Step)         // nil = no hook; never forces a snapshot
	err            error              // recorded option violation, surfaced by the engine
}

// WithPivotTolerance treats entries with |x| <= tol as zero during pivot search,
// elimination and back-substitution.
// Panics when tol is negative, NaN or Inf.
//
// AI-Hints:
//   - Leave unset for exact scalar data (integers, dyadic fractions); the default is exact.
func WithPivotTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *Options) {
		o.pivotTol = tol
	}
}

// WithBounds restricts elimination to the leading rows×cols block of the input.
// Non-positive sizes are recorded and reported as ErrInvalidDimensions when the
// engine starts; a block larger than the input is reported as ErrBadShape.
func WithBounds(rows, cols int) Option {
	return func(o *Options) {
		if rows <= 0 || cols <= 0 {
			o.err = validatorErrorf("WithBounds", ErrInvalidDimensions)
			return
		}
		o.boundRows, o.boundCols = rows, cols
	}
}

// WithValidateNaNInf enables strict rejection of NaN/Inf on the engine's working copy.
func WithValidateNaNInf() Option {
	return func(o *Options) {
		o.validateNaNInf = true
	}
}

// WithNoValidateNaNInf lets NaN/Inf flow through elimination (IEEE-754 semantics).
func WithNoValidateNaNInf() Option {
	return func(o *Options) {
		o.validateNaNInf = false
	}
}

// WithOnStep registers a hook called after every elementary operation with the
// step and the snapshot handed to the consumer. A nil fn is ignored.
func WithOnStep(fn func(s Step, snapshot *Dense)) Option {
	return func(o *Options) {
		if fn != nil {
			o.onStep = fn
		}
	}
}

// WithOnOperation registers a hook called after every elementary operation with
// the step only. Unlike WithOnStep it never makes RowReduce, RREF or Rank copy
// the working matrix, so it suits counters and loggers on large inputs.
// A nil fn is ignored.
func WithOnOperation(fn func(s Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.onOp = fn
		}
	}
}

// NewMatrixOptions resolves a sequence of setters into an Options snapshot.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		pivotTol:       DefaultPivotTolerance,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Nil setters are skipped; the first recorded violation wins.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	var firstErr error
	for _, set := range user {
		if set == nil {
			continue
		}
		set(&o)
		if firstErr == nil && o.err != nil {
			firstErr = o.err
		}
	}
	o.err = firstErr

	return o
}

// isZero is the single zero test used by the engine.
func (o *Options) isZero(x float64) bool {
	if o.pivotTol == 0 {
		return x == 0
	}

	return math.Abs(x) <= o.pivotTol
}
