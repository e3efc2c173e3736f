// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gauss/matrix"
)

func TestSolve_Classification(t *testing.T) {
	tests := []struct {
		name     string
		a        [][]float64
		b        []float64
		wantKind matrix.SolutionKind
		wantX    []float64
		wantFree []int
	}{
		{
			name:     "unique",
			a:        [][]float64{{2, 4}, {1, 3}},
			b:        []float64{2, 1},
			wantKind: matrix.Unique,
			wantX:    []float64{1, 0},
			wantFree: []int{},
		},
		{
			name:     "infinite",
			a:        [][]float64{{1, 2}, {2, 4}},
			b:        []float64{3, 6},
			wantKind: matrix.Infinite,
			wantX:    []float64{3, 0},
			wantFree: []int{1},
		},
		{
			name:     "underdetermined",
			a:        [][]float64{{1, 0, 1}, {0, 1, 1}},
			b:        []float64{1, 2},
			wantKind: matrix.Infinite,
			wantX:    []float64{1, 2, 0},
			wantFree: []int{2},
		},
		{
			name:     "inconsistent",
			a:        [][]float64{{1, 2}, {2, 4}},
			b:        []float64{3, 7},
			wantKind: matrix.Inconsistent,
		},
		{
			name:     "needs a swap",
			a:        [][]float64{{0, 1}, {1, 0}},
			b:        []float64{5, 7},
			wantKind: matrix.Unique,
			wantX:    []float64{7, 5},
			wantFree: []int{},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			sol, err := matrix.Solve(FromRows(t, tc.a), tc.b)
			require.NoError(t, err)
			assert.Equal(t, tc.wantKind, sol.Kind)
			require.NotNil(t, sol.Reduced)
			assert.Equal(t, len(tc.a[0])+1, sol.Reduced.Cols())
			if tc.wantKind == matrix.Inconsistent {
				assert.Nil(t, sol.X)
				return
			}
			assert.Equal(t, tc.wantX, sol.X)
			assert.Equal(t, tc.wantFree, sol.Free)
		})
	}
}

func TestSolve_ResidualOnRandomSystems(t *testing.T) {
	for seed := int64(60); seed < 66; seed++ {
		A := RandomDense(t, 4, 4, seed)
		b := []float64{1, -2, 3, 4}
		sol, err := matrix.Solve(A, b, propTol)
		require.NoError(t, err)
		if sol.Kind != matrix.Unique {
			continue
		}
		for i := 0; i < 4; i++ {
			sum := 0.0
			for j := 0; j < 4; j++ {
				sum += MustAt(t, A, i, j) * sol.X[j]
			}
			assert.InDelta(t, b[i], sum, 1e-9, "seed %d row %d", seed, i)
		}
	}
}

func TestSolve_Errors(t *testing.T) {
	A := FromRows(t, [][]float64{{1, 2}, {3, 4}})

	_, err := matrix.Solve(nil, []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Solve(A, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Solve(A, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// bounds would cut the right-hand side off [A | b]
	I, err := matrix.NewIdentity(3, 3)
	require.NoError(t, err)
	for _, bounds := range [][2]int{{2, 2}, {3, 3}, {3, 2}} {
		assert.NotPanics(t, func() {
			_, err = matrix.Solve(I, []float64{1, 2, 3}, matrix.WithBounds(bounds[0], bounds[1]))
		})
		assert.ErrorIs(t, err, matrix.ErrBadShape, "bounds=%v", bounds)
	}
}

func TestSolutionKind_String(t *testing.T) {
	assert.Equal(t, "unique", matrix.Unique.String())
	assert.Equal(t, "infinite", matrix.Infinite.String())
	assert.Equal(t, "inconsistent", matrix.Inconsistent.String())
}

func TestInverse(t *testing.T) {
	inv, err := matrix.Inverse(FromRows(t, [][]float64{{2, 4}, {1, 3}}))
	require.NoError(t, err)
	CompareExact(t, inv, FromRows(t, [][]float64{{1.5, -2}, {-0.5, 1}}))

	inv, err = matrix.Inverse(FromRows(t, [][]float64{{0, 1}, {1, 0}}))
	require.NoError(t, err)
	CompareExact(t, inv, FromRows(t, [][]float64{{0, 1}, {1, 0}}))

	_, err = matrix.Inverse(FromRows(t, [][]float64{{1, 2}, {2, 4}}))
	assert.ErrorIs(t, err, matrix.ErrSingular)
	_, err = matrix.Inverse(FromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.Inverse(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	// a bounded [A | I] is not reported as singular
	_, err = matrix.Inverse(FromRows(t, [][]float64{{2, 4}, {1, 3}}), matrix.WithBounds(2, 2))
	assert.ErrorIs(t, err, matrix.ErrBadShape)
	assert.NotErrorIs(t, err, matrix.ErrSingular)
}

func TestInverse_ProductIsIdentity(t *testing.T) {
	I, err := matrix.NewIdentity(5, 5)
	require.NoError(t, err)
	for seed := int64(80); seed < 85; seed++ {
		A := RandomDense(t, 5, 5, seed)
		inv, err := matrix.Inverse(A, propTol)
		if err != nil {
			assert.ErrorIs(t, err, matrix.ErrSingular)
			continue
		}
		P, err := matrix.Mul(A, inv)
		require.NoError(t, err)
		ok, err := matrix.AllClose(P, I, 0, 1e-9)
		require.NoError(t, err)
		assert.True(t, ok, "seed %d:\n%v", seed, P)

		// the interface path agrees
		slow, err := matrix.Inverse(hide{A}, propTol)
		require.NoError(t, err)
		CompareExact(t, slow, inv)
	}
}
