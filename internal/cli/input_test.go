package cli

import (
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gauss/matrix"
)

func TestParseInline(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want [][]float64
	}{
		{"semicolons", "1 2; 3 4", [][]float64{{1, 2}, {3, 4}}},
		{"commas", "1,2;3,4", [][]float64{{1, 2}, {3, 4}}},
		{"newlines", "1 2\n3 4\n", [][]float64{{1, 2}, {3, 4}}},
		{"blank rows skipped", "1 -2.5;; ;3e2 0", [][]float64{{1, -2.5}, {300, 0}}},
		{"single value", "7", [][]float64{{7}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseInline(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := parseInline("1 x; 2 3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 0, entry 1")
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "m.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		f := inputFlags{file: writeFile(t, "rows = [[1, 2], [3, 4]]\nrhs = [5, 6]\ntolerance = 1e-9\n")}
		in, err := f.load(nil)
		require.NoError(t, err)
		assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, in.Rows)
		assert.Equal(t, []float64{5, 6}, in.RHS)
		assert.Equal(t, 1e-9, in.Tolerance)
	})

	t.Run("stdin", func(t *testing.T) {
		f := inputFlags{file: "-"}
		in, err := f.load(strings.NewReader("rows = [[1.5]]"))
		require.NoError(t, err)
		assert.Equal(t, [][]float64{{1.5}}, in.Rows)
	})

	t.Run("inline", func(t *testing.T) {
		f := inputFlags{inline: "1 0; 0 1"}
		in, err := f.load(nil)
		require.NoError(t, err)
		assert.Nil(t, in.RHS)
		assert.Len(t, in.Rows, 2)
	})

	t.Run("errors", func(t *testing.T) {
		_, err := (&inputFlags{}).load(nil)
		assert.ErrorIs(t, err, errNoInput)

		_, err = (&inputFlags{file: "a.toml", inline: "1"}).load(nil)
		assert.ErrorIs(t, err, errTwoInputs)

		_, err = (&inputFlags{file: writeFile(t, "rows = [[1]]\ncolz = 2\n")}).load(nil)
		assert.ErrorIs(t, err, errUnknownField)

		_, err = (&inputFlags{file: "-"}).load(strings.NewReader("rowz = [[1]]"))
		assert.ErrorIs(t, err, errUnknownField)

		_, err = (&inputFlags{file: filepath.Join(t.TempDir(), "missing.toml")}).load(nil)
		assert.Error(t, err)

		_, err = (&inputFlags{file: writeFile(t, "rows = [[1, 2")}).load(nil)
		assert.Error(t, err)
	})
}

func TestInputMatrix(t *testing.T) {
	m, err := (&Input{Rows: [][]float64{{1, 2}, {3, 4}}}).matrix()
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())

	_, err = (&Input{Rows: [][]float64{{1, 2}, {3}}}).matrix()
	assert.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = (&Input{}).matrix()
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestOptions(t *testing.T) {
	l := log.New(io.Discard)
	m := matrix.MustFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})

	opts, err := (&inputFlags{}).options(&Input{}, m, l)
	require.NoError(t, err)
	assert.Len(t, opts, 1) // step logger only

	opts, err = (&inputFlags{}).options(&Input{Tolerance: 1e-9}, m, l)
	require.NoError(t, err)
	assert.Len(t, opts, 2)

	// an explicit --tol 0 overrides the file
	opts, err = (&inputFlags{tolSet: true}).options(&Input{Tolerance: 1e-9}, m, l)
	require.NoError(t, err)
	assert.Len(t, opts, 1)

	for _, tol := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err = (&inputFlags{tol: tol, tolSet: true}).options(&Input{}, m, l)
		assert.ErrorIs(t, err, errNegativeTol, "tol=%v", tol)
	}
	_, err = (&inputFlags{}).options(&Input{Tolerance: -1}, m, l)
	assert.ErrorIs(t, err, errNegativeTol)

	for _, f := range []inputFlags{{rows: -1}, {cols: -2}, {rows: 1, cols: -1}} {
		_, err = f.options(&Input{}, m, l)
		assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "rows=%d cols=%d", f.rows, f.cols)
	}

	// one bound given: the other side spans the whole matrix
	opts, err = (&inputFlags{rows: 1}).options(&Input{}, m, l)
	require.NoError(t, err)
	ref, err := matrix.RowReduce(m, opts...)
	require.NoError(t, err)
	assert.Equal(t, 1, ref.Rows())
	assert.Equal(t, 3, ref.Cols())
}
