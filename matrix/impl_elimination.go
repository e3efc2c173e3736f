// SPDX-License-Identifier: MIT

// Package matrix - forward Gaussian elimination as a pull-based state machine.
//
// Purpose:
//   - Produce the row-echelon form one elementary operation at a time so a caller
//     can render or audit every intermediate matrix.
//   - Serve as the single elimination routine: RowReduce, RowReduceVerbose, RREF
//     and Rank all drain an Eliminator.
//
// Algorithm (pivot position (row, col), both starting at 0):
//   - If entry (row, col) is zero, the first lower row with a non-zero entry in col
//     is swapped up (Swap{row, idx}). Without one, col advances and row stays put.
//   - Every lower row r with a non-zero entry in col becomes row[r] − scale·row[row],
//     scale = entry(r,col)/entry(row,col) (Sub{scale, row, r}).
//   - row and col advance; the sequence ends when either leaves the matrix.
//
// Determinism:
//   - First-nonzero pivoting, fixed top-to-bottom scans, exact zero tests by default.
//
// AI-Hints:
//   - Stop pulling whenever you like; the Eliminator holds no external resources.
//   - Snapshots are clones: keep them, mutate them, the engine never sees them again.

package matrix

import (
	"fmt"
	"iter"
	"math"
)

// Eliminator is a single-consumer, non-restartable step producer.
// It owns a private working copy of its input.
type Eliminator struct {
	m    *Dense
	opts Options

	row, col int  // current pivot position
	scan     int  // next row below the pivot to examine
	pivoted  bool // entry (row, col) is a usable pivot
	done     bool
	err      error
}

// NewEliminator prepares forward elimination over a private copy of m.
// MAIN DESCRIPTION:
//   - Validate the input, resolve options, and materialize the working copy
//     (the leading block when WithBounds is supplied).
//
// Errors:
//   - ErrNilMatrix; option violations (ErrInvalidDimensions from WithBounds);
//     ErrBadShape when bounds exceed m; ErrNaNInf when m holds NaN/Inf under the
//     default numeric policy.
//
// Complexity:
//   - Time O(r*c) for the copy, Space O(r*c).
func NewEliminator(m Matrix, opts ...Option) (*Eliminator, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opEliminator, err)
	}
	o := gatherOptions(opts...)
	if o.err != nil {
		return nil, matrixErrorf(opEliminator, o.err)
	}

	work, err := toDense(m, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opEliminator, err)
	}
	if o.boundRows > 0 {
		if err = ValidateBounds(work, o.boundRows, o.boundCols); err != nil {
			return nil, matrixErrorf(opEliminator, err)
		}
		if work, err = work.Leading(o.boundRows, o.boundCols); err != nil {
			return nil, matrixErrorf(opEliminator, err)
		}
	}
	if o.validateNaNInf {
		for k, v := range work.data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, matrixErrorf(opEliminator, denseErrorf(ctxAt, k/work.c, k%work.c, ErrNaNInf))
			}
		}
	}

	return &Eliminator{m: work, opts: o}, nil
}

// Next performs at most one elementary operation and returns it with a snapshot
// of the matrix right after it. ok is false once the sequence is exhausted or
// failed; check Err to tell the two apart.
func (e *Eliminator) Next() (step Step, snapshot *Dense, ok bool) {
	step, ok = e.advance()
	if !ok {
		return Step{}, nil, false
	}
	snapshot = e.m.clone()
	if e.opts.onOp != nil {
		e.opts.onOp(step)
	}
	if e.opts.onStep != nil {
		e.opts.onStep(step, snapshot)
	}

	return step, snapshot, true
}

// All exposes the remaining steps as a range-over-func sequence.
// Breaking out of the loop leaves the Eliminator where it stopped.
func (e *Eliminator) All() iter.Seq2[Step, *Dense] {
	return func(yield func(Step, *Dense) bool) {
		for {
			s, snap, ok := e.Next()
			if !ok || !yield(s, snap) {
				return
			}
		}
	}
}

// Err returns the error that stopped the sequence, if any.
func (e *Eliminator) Err() error { return e.err }

// Done reports whether the sequence is exhausted (or failed).
func (e *Eliminator) Done() bool { return e.done }

// Pivot returns the current pivot position (row, col).
func (e *Eliminator) Pivot() (row, col int) { return e.row, e.col }

// Result returns a copy of the working matrix in its current state.
// After the sequence is exhausted this is the row-echelon form.
func (e *Eliminator) Result() *Dense { return e.m.clone() }

// drain runs the remaining operations without taking per-step snapshots
// (a WithOnStep hook, when set, still receives one).
func (e *Eliminator) drain() error {
	for {
		s, ok := e.advance()
		if !ok {
			return e.err
		}
		if e.opts.onOp != nil {
			e.opts.onOp(s)
		}
		if e.opts.onStep != nil {
			e.opts.onStep(s, e.m.clone())
		}
	}
}

// advance is the state machine. It returns after the first performed operation.
func (e *Eliminator) advance() (Step, bool) {
	rows, cols := e.m.r, e.m.c
	data := e.m.data
	for !e.done {
		if e.row >= rows || e.col >= cols {
			e.done = true
			break
		}

		if !e.pivoted {
			if e.opts.isZero(data[e.row*cols+e.col]) {
				idx := e.findPivot()
				if idx < 0 {
					// No pivot in this column: rank deficiency, move right only.
					e.col++
					continue
				}
				if err := e.m.SwapRows(e.row, idx); err != nil {
					return e.fail(err)
				}
				e.pivoted, e.scan = true, e.row+1
				return swapStepAt(e.row, idx, e.col), true
			}
			e.pivoted, e.scan = true, e.row+1
		}

		pivot := data[e.row*cols+e.col]
		for e.scan < rows {
			r := e.scan
			e.scan++
			x := data[r*cols+e.col]
			if e.opts.isZero(x) {
				continue
			}
			scale := x / pivot
			if err := subScaledRow(e.m, e.row, r, e.col, scale); err != nil {
				return e.fail(err)
			}
			return SubStepAt(scale, e.row, r, e.col), true
		}

		e.row++
		e.col++
		e.pivoted = false
	}

	return Step{}, false
}

// findPivot returns the first row strictly below e.row with a non-zero entry in e.col, or -1.
func (e *Eliminator) findPivot() int {
	cols := e.m.c
	for r := e.row + 1; r < e.m.r; r++ {
		if !e.opts.isZero(e.m.data[r*cols+e.col]) {
			return r
		}
	}

	return -1
}

// fail records err and ends the sequence.
func (e *Eliminator) fail(err error) (Step, bool) {
	e.err = fmt.Errorf("pivot (%d,%d): %w", e.row, e.col, err)
	e.done = true

	return Step{}, false
}
