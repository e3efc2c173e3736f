// Package matrix implements dense row-major matrices and a step-emitting
// Gaussian elimination engine.
//
// The package provides:
//
//   - Vector, a resizable float64 row with pure elementwise arithmetic
//     (Sub, Mul, Div) and in-place Resize.
//   - Dense, a row-major Matrix with bounds-checked access, whole-row
//     replacement (Row/SetRow), SwapRows and Resize.
//   - Step, the record of one elementary row operation: Swap{From, To} or
//     Sub{Scale, From, To} meaning row[To] = row[To] − Scale·row[From].
//   - Eliminator, a pull-based state machine that performs forward
//     elimination one operation per Next call and hands back a snapshot of
//     the matrix after each operation.
//   - RowReduce, RowReduceVerbose, RREF, Rank and Replay, all built on the
//     same Eliminator, plus Solve and Inverse by Gauss–Jordan reduction of an
//     augmented matrix.
//
// Pivoting takes the first non-zero entry at or below the pivot row. Zero
// tests are exact unless WithPivotTolerance is supplied; nothing in the
// package introduces a tolerance on its own. A column without a pivot is
// not an error: elimination moves right and the result simply has fewer
// pivots than min(rows, cols).
//
// Quick example:
//
//	A := matrix.MustFromRows([][]float64{{0, 2, 1}, {3, -7, -6}, {0, -1, -1}})
//	e, _ := matrix.NewEliminator(A)
//	for step, snapshot := range e.All() {
//		fmt.Println(step)
//		fmt.Print(snapshot)
//	}
//
// Nothing here is safe for concurrent mutation; every routine works on its
// own copy of the input and is safe to call from many goroutines at once.
package matrix
