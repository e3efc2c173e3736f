// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gauss/matrix"
)

// 1) TestDefaultOptions_Documented verifies that NewMatrixOptions() equals documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.NewMatrixOptionsSnapshot_TestOnly()

	if o.PivotTol != matrix.DefaultPivotTolerance {
		t.Fatalf("pivotTol default mismatch: got %v, want %v", o.PivotTol, matrix.DefaultPivotTolerance)
	}
	if o.ValidateNaNInf != matrix.DefaultValidateNaNInf {
		t.Fatalf("validateNaNInf default mismatch: got %v, want %v", o.ValidateNaNInf, matrix.DefaultValidateNaNInf)
	}
	if o.BoundRows != 0 || o.BoundCols != 0 {
		t.Fatalf("bounds default mismatch: got %dx%d, want unbounded", o.BoundRows, o.BoundCols)
	}
	if o.HasOnStep || o.Err != nil {
		t.Fatalf("unexpected hook/err in defaults: %+v", o)
	}
}

// 2) TestOptions_LastWriterWins ensures each Option toggles exactly its intended field.
func TestOptions_LastWriterWins(t *testing.T) {
	o1 := matrix.GatherOptionsSnapshot_TestOnly(matrix.WithValidateNaNInf(), matrix.WithNoValidateNaNInf())
	assert.False(t, o1.ValidateNaNInf)
	o2 := matrix.GatherOptionsSnapshot_TestOnly(matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf())
	assert.True(t, o2.ValidateNaNInf)

	o3 := matrix.GatherOptionsSnapshot_TestOnly(matrix.WithPivotTolerance(1e-3), matrix.WithPivotTolerance(1e-6))
	assert.Equal(t, 1e-6, o3.PivotTol)

	o4 := matrix.GatherOptionsSnapshot_TestOnly(matrix.WithBounds(2, 3), matrix.WithBounds(1, 1))
	assert.Equal(t, 1, o4.BoundRows)
	assert.Equal(t, 1, o4.BoundCols)

	// nil setters are skipped; a nil hook is ignored
	o5 := matrix.GatherOptionsSnapshot_TestOnly(nil, matrix.WithOnStep(nil))
	assert.False(t, o5.HasOnStep)
	o6 := matrix.GatherOptionsSnapshot_TestOnly(matrix.WithOnStep(func(matrix.Step, *matrix.Dense) {}))
	assert.True(t, o6.HasOnStep)
	o7 := matrix.GatherOptionsSnapshot_TestOnly(matrix.WithOnOperation(nil))
	assert.False(t, o7.HasOnOperation)
	o8 := matrix.GatherOptionsSnapshot_TestOnly(matrix.WithOnOperation(func(matrix.Step) {}))
	assert.True(t, o8.HasOnOperation)
	assert.False(t, o8.HasOnStep)
}

// 3) TestWithPivotTolerance_PanicsOnNonsense pins the panic contract.
func TestWithPivotTolerance_PanicsOnNonsense(t *testing.T) {
	for _, tol := range []float64{-1, math.NaN(), math.Inf(1)} {
		assert.PanicsWithValue(t, matrix.PanicPivotToleranceInvalid_TestOnly, func() {
			matrix.WithPivotTolerance(tol)
		}, "tol=%v", tol)
	}
	assert.NotPanics(t, func() { matrix.WithPivotTolerance(0) })
}

// 4) TestWithBounds_RecordsFirstError keeps the first violation even if later setters are valid.
func TestWithBounds_RecordsFirstError(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly(matrix.WithBounds(0, 3), matrix.WithBounds(1, 1))
	require.Error(t, o.Err)
	assert.ErrorIs(t, o.Err, matrix.ErrInvalidDimensions)
}

// 5) TestIsZero_ExactUnlessTolerance checks the single zero test.
func TestIsZero_ExactUnlessTolerance(t *testing.T) {
	assert.True(t, matrix.IsZero_TestOnly(0))
	assert.True(t, matrix.IsZero_TestOnly(math.Copysign(0, -1)))
	assert.False(t, matrix.IsZero_TestOnly(1e-300), "default is exact")

	tol := matrix.WithPivotTolerance(1e-9)
	assert.True(t, matrix.IsZero_TestOnly(1e-9, tol))
	assert.True(t, matrix.IsZero_TestOnly(-1e-10, tol))
	assert.False(t, matrix.IsZero_TestOnly(2e-9, tol))
}
