// SPDX-License-Identifier: MIT

// Package matrix - direct reduction routines built on the Eliminator.
//
// Purpose:
//   - RowReduce / RowReduceVerbose: drain forward elimination (final matrix or every snapshot).
//   - RREF: forward elimination, then back-substitution right-to-left.
//   - Rank: non-zero rows of the RREF.
//   - Replay: apply a recorded step list to a fresh copy.
//
// Determinism:
//   - Every routine is a pure function of its input and options; the input is never mutated.

package matrix

import "fmt"

// RowReduce returns the row-echelon form of m (forward elimination only).
// Errors: see NewEliminator; numeric-policy failures during elimination.
// Complexity: Time O(r²·c), Space O(r*c).
func RowReduce(m Matrix, opts ...Option) (*Dense, error) {
	e, err := NewEliminator(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opRowReduce, err)
	}
	if err = e.drain(); err != nil {
		return nil, matrixErrorf(opRowReduce, err)
	}

	return e.m, nil
}

// RowReduceVerbose returns every (step, snapshot) pair of the forward elimination in order.
// An input that is already in echelon form yields an empty, non-nil slice.
func RowReduceVerbose(m Matrix, opts ...Option) ([]Snapshot, error) {
	e, err := NewEliminator(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opRowVerbose, err)
	}
	out := make([]Snapshot, 0, m.Rows())
	for s, snap := range e.All() {
		out = append(out, Snapshot{Step: s, Matrix: snap})
	}
	if err = e.Err(); err != nil {
		return nil, matrixErrorf(opRowVerbose, err)
	}

	return out, nil
}

// RREF returns the reduced row-echelon form of m.
// MAIN DESCRIPTION:
//   - Forward elimination, then for each column i from the last to the first:
//     take the lowest row with a non-zero entry in column i; if that entry leads
//     its row, divide the row by it and subtract multiples of it from every row
//     above that has a non-zero entry in column i.
//
// Behavior highlights:
//   - Pivots become exactly 1 (x/x) and the rest of a pivot column exactly 0 (x − x·1).
//   - Columns without a pivot are skipped; a zero column stays zero.
//
// Complexity:
//   - Time O(r²·c), Space O(r*c).
func RREF(m Matrix, opts ...Option) (*Dense, error) {
	ref, err := RowReduce(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opRREF, err)
	}
	o := gatherOptions(opts...)
	if err = backSubstitute(ref, &o); err != nil {
		return nil, matrixErrorf(opRREF, err)
	}

	return ref, nil
}

// backSubstitute reduces an echelon matrix in place.
func backSubstitute(m *Dense, o *Options) error {
	rows, cols := m.r, m.c
	var i, r, p int
	for i = cols - 1; i >= 0; i-- {
		p = -1
		for r = rows - 1; r >= 0; r-- {
			if !o.isZero(m.data[r*cols+i]) {
				p = r
				break
			}
		}
		if p < 0 || leadingColumn(m, p, o) != i {
			continue // free column
		}

		pivotRow, err := m.Row(p)
		if err != nil {
			return err
		}
		normalized := pivotRow.Div(m.data[p*cols+i])
		for j := 0; j < i; j++ {
			normalized.data[j] = 0 // 0/negative would leave -0
		}
		if err = m.SetRow(p, normalized); err != nil {
			return fmt.Errorf("normalize row %d: %w", p, err)
		}
		for r = 0; r < p; r++ {
			x := m.data[r*cols+i]
			if o.isZero(x) {
				continue
			}
			if err = subScaledRow(m, p, r, i, x); err != nil {
				return fmt.Errorf("clear (%d,%d): %w", r, i, err)
			}
		}
	}

	return nil
}

// Rank returns the number of non-zero rows of the RREF of m.
// Rectangular inputs are fine; the result never exceeds min(Rows, Cols).
func Rank(m Matrix, opts ...Option) (int, error) {
	R, err := RREF(m, opts...)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	o := gatherOptions(opts...)

	return countNonZeroRows(R, &o), nil
}

// countNonZeroRows counts rows holding at least one entry that is not zero under o.
func countNonZeroRows(m *Dense, o *Options) int {
	n := 0
	for i := 0; i < m.r; i++ {
		for _, x := range m.data[i*m.c : (i+1)*m.c] {
			if !o.isZero(x) {
				n++
				break
			}
		}
	}

	return n
}

// leadingColumn returns the column of the first entry of row i that is not zero under o, or -1.
func leadingColumn(m *Dense, i int, o *Options) int {
	for j, x := range m.data[i*m.c : (i+1)*m.c] {
		if !o.isZero(x) {
			return j
		}
	}

	return -1
}

// PivotColumns returns, for each non-zero row of the (reduced) echelon matrix m,
// the column of its leading entry. Zero rows are skipped.
// Callers derive free columns as the complement. A nil m yields an empty slice.
func PivotColumns(m *Dense, opts ...Option) []int {
	if m == nil {
		return []int{}
	}
	o := gatherOptions(opts...)
	out := make([]int, 0, min(m.r, m.c))
	for i := 0; i < m.r; i++ {
		if j := leadingColumn(m, i, &o); j >= 0 {
			out = append(out, j)
		}
	}

	return out
}

// Replay applies steps in order to a copy of m and returns the result.
// Replaying the steps emitted for m reproduces RowReduce(m) exactly.
// Errors: ErrNilMatrix; ErrUnknownStep; index/numeric errors tagged with the step index.
func Replay(m Matrix, steps []Step) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opReplay, err)
	}
	work, err := toDense(m, DefaultValidateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opReplay, err)
	}
	for k, s := range steps {
		if err = s.Apply(work); err != nil {
			return nil, matrixErrorf(opReplay, fmt.Errorf("step %d (%s): %w", k, s, err))
		}
	}

	return work, nil
}
