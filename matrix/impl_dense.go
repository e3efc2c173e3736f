// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row/SetRow/SwapRows return errors instead of panicking.
//   - Expose rows as Vector values: the elimination engine swaps and replaces whole rows.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// AI-Hints:
//   - Hot loops (elimination scans) read data[] directly; public callers go through At/Row.
//   - Use Induced(rows, cols) or Leading(r, c) to materialize a submatrix with an independent lifetime.
//   - DefaultValidateNaNInf is on; insert only finite values unless you explicitly disable it.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Row/SetRow/SwapRows: O(c); Clone/Resize: O(r*c).

package matrix

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxApply    = "Apply"    // method tag used in error wrappers
	ctxRow      = "Row"      // method tag used in error wrappers
	ctxSetRow   = "SetRow"   // method tag used in error wrappers
	ctxSwapRows = "SwapRows" // method tag used in error wrappers
	ctxResize   = "Resize"   // method tag used in error wrappers
	ctxInduce   = "Induced"  // ctor/tag for Dense.Induced
	ctxLeading  = "Leading"  // ctor/tag for Dense.Leading
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf formats "Dense.<method>(row,col): <err>" keeping err matchable with errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set/SetRow (policy default from options.go).
type Dense struct {
	r, c           int       // row and column counts (>0 for every public constructor)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in writes when true
}

// Compile-time assertions for interface conformance.
var (
	_ Matrix           = (*Dense)(nil)
	_ fmt.Stringer     = (*Dense)(nil)
	_ json.Marshaler   = (*Dense)(nil)
	_ json.Unmarshaler = (*Dense)(nil)
)

// NewDense returns a rows×cols zero matrix under the default numeric policy.
// Errors: ErrInvalidDimensions when either size is not positive.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols), validateNaNInf: DefaultValidateNaNInf}, nil
}

// newDenseWithPolicy constructs Dense with strict shape validation, then sets validateNaNInf explicitly.
// Used by the elimination engine to honor WithNoValidateNaNInf on its working copy.
func newDenseWithPolicy(rows, cols int, validateNaNInf bool) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	m.validateNaNInf = validateNaNInf

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns the bare sentinel; public methods wrap it with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or a wrapped ErrOutOfRange.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
// Errors: ErrOutOfRange; ErrNaNInf for NaN/Inf under the finite-only policy.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Clone() Matrix { return m.clone() }

// clone is the typed form of Clone used by the engine for snapshots.
func (m *Dense) clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// Row returns a copy of row i as a Vector.
// Errors: ErrOutOfRange when i is outside [0, Rows()).
// Complexity: O(c).
func (m *Dense) Row(i int) (*Vector, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return VectorFrom(m.data[i*m.c : (i+1)*m.c]), nil
}

// SetRow replaces row i with the entries of v.
// MAIN DESCRIPTION:
//   - Whole-row replacement, the write primitive of every Sub step.
//
// Implementation:
//   - Stage 1: validate index, vector presence and length.
//   - Stage 2: enforce numeric policy on every entry before touching storage.
//   - Stage 3: copy into the row window of the flat buffer.
//
// Behavior highlights:
//   - All-or-nothing: a rejected entry leaves the row untouched.
//
// Errors:
//   - ErrOutOfRange, ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf.
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) SetRow(i int, v *Vector) error {
	if i < 0 || i >= m.r {
		return denseErrorf(ctxSetRow, i, 0, ErrOutOfRange)
	}
	if v == nil {
		return denseErrorf(ctxSetRow, i, 0, ErrNilMatrix)
	}
	if v.Len() != m.c {
		return denseErrorf(ctxSetRow, i, v.Len(), ErrDimensionMismatch)
	}
	if m.validateNaNInf {
		for j, x := range v.data {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return denseErrorf(ctxSetRow, i, j, ErrNaNInf)
			}
		}
	}
	copy(m.data[i*m.c:(i+1)*m.c], v.data)

	return nil
}

// SwapRows exchanges rows a and b in place. a == b is a no-op.
// Errors: ErrOutOfRange when either index is invalid (checked before any write).
// Complexity: O(c).
func (m *Dense) SwapRows(a, b int) error {
	if a < 0 || a >= m.r || b < 0 || b >= m.r {
		return denseErrorf(ctxSwapRows, a, b, ErrOutOfRange)
	}
	if a == b {
		return nil
	}
	ra := m.data[a*m.c : (a+1)*m.c]
	rb := m.data[b*m.c : (b+1)*m.c]
	for j := 0; j < m.c; j++ {
		ra[j], rb[j] = rb[j], ra[j]
	}

	return nil
}

// IsZeroRow reports whether every entry of row i is exactly zero.
// Out-of-range rows report false.
func (m *Dense) IsZeroRow(i int) bool {
	if i < 0 || i >= m.r {
		return false
	}
	for _, x := range m.data[i*m.c : (i+1)*m.c] {
		if x != 0 {
			return false
		}
	}

	return true
}

// Resize changes the shape to rows×cols in place.
// MAIN DESCRIPTION:
//   - Every existing row is padded with zeros or truncated to cols entries,
//     then the row list is padded with zero rows or truncated to rows.
//
// Errors:
//   - ErrInvalidDimensions when rows <= 0 or cols <= 0 (shape left unchanged).
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func (m *Dense) Resize(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return denseErrorf(ctxResize, rows, cols, ErrInvalidDimensions)
	}
	buf := make([]float64, rows*cols)
	keepRows := min(rows, m.r)
	keepCols := min(cols, m.c)
	for i := 0; i < keepRows; i++ {
		copy(buf[i*cols:i*cols+keepCols], m.data[i*m.c:i*m.c+keepCols])
	}
	m.r, m.c, m.data = rows, cols, buf

	return nil
}

// Equal reports exact elementwise equality and identical shape.
// A nil other is never equal.
func (m *Dense) Equal(other Matrix) bool {
	if other == nil || other.Rows() != m.r || other.Cols() != m.c {
		return false
	}
	if od, ok := other.(*Dense); ok {
		for k := range m.data {
			if m.data[k] != od.data[k] {
				return false
			}
		}
		return true
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			v, err := other.At(i, j)
			if err != nil || v != m.data[i*m.c+j] {
				return false
			}
		}
	}

	return true
}

// RowsData returns a copy of the matrix as a slice of rows.
// Handy for JSON/TOML encoding and table rendering.
func (m *Dense) RowsData() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// String renders one "[a, b, c]" line per row (%g formatting).
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j, v := range m.data[i*m.c : (i+1)*m.c] {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			fmt.Fprintf(&b, "%g", v)
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// MarshalJSON encodes the matrix as an array of rows.
func (m *Dense) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.RowsData())
}

// UnmarshalJSON decodes an array of equal-length rows (see NewFromRows).
func (m *Dense) UnmarshalJSON(b []byte) error {
	var rows [][]float64
	if err := json.Unmarshal(b, &rows); err != nil {
		return err
	}
	d, err := NewFromRows(rows)
	if err != nil {
		return err
	}
	*m = *d

	return nil
}

// Induced copies the submatrix at the given row and column index lists.
// Duplicate indices repeat rows/cols; the numeric policy is inherited.
// Errors: ErrInvalidDimensions (empty index list), ErrOutOfRange.
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	rp := len(rowsIdx)
	cp := len(colsIdx)
	res, err := NewDense(rp, cp)
	if err != nil {
		return nil, fmt.Errorf("Dense.%s: %w", ctxInduce, err)
	}
	res.validateNaNInf = m.validateNaNInf

	var i, j int
	var ri, cj int
	for i = 0; i < rp; i++ {
		ri = rowsIdx[i]
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
		for j = 0; j < cp; j++ {
			cj = colsIdx[j]
			if cj < 0 || cj >= m.c {
				return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
			}
			res.data[i*cp+j] = m.data[ri*m.c+cj]
		}
	}

	return res, nil
}

// Leading returns a copy of the top-left rows×cols block.
// Errors: ErrInvalidDimensions for non-positive sizes; ErrBadShape when the block exceeds the matrix.
func (m *Dense) Leading(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("Dense.%s(%d,%d): %w", ctxLeading, rows, cols, ErrInvalidDimensions)
	}
	if rows > m.r || cols > m.c {
		return nil, fmt.Errorf("Dense.%s(%d,%d): %w", ctxLeading, rows, cols, ErrBadShape)
	}

	return m.Induced(seq(rows), seq(cols))
}

// seq returns [0, 1, …, n-1].
func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only visitor; stops early when f returns false.
// Complexity: Time O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in row-major order.
// A NaN/Inf result under the finite-only policy stops with ErrNaNInf; earlier
// writes stay.
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j, base int
	var nv float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf && (math.IsNaN(nv) || math.IsInf(nv, 0)) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}
