package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gauss/matrix"
)

// run executes the root command with args and returns everything it printed.
func run(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := New(io.Discard, LogInfo).RootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	if stdin != nil {
		root.SetIn(stdin)
	}
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootCommand_Subcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"ref", "rref", "rank", "steps", "solve", "inverse", "walk", "serve"} {
		assert.Contains(t, names, want)
	}
}

func TestVersion(t *testing.T) {
	SetVersion("1.2.3", "abc")
	defer SetVersion("dev", "")

	out, err := run(t, nil, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "1.2.3")
	assert.Contains(t, out, "abc")
}

func TestRefAndRREF(t *testing.T) {
	out, err := run(t, nil, "ref", "-m", "1 2 1 1; 3 -7 -6 1; 0 -1 -1 1")
	require.NoError(t, err)
	assert.Contains(t, out, "Row-echelon form")
	assert.Contains(t, out, "-13")

	out, err = run(t, nil, "rref", "-m", "0 0; 0 0")
	require.NoError(t, err)
	assert.Contains(t, out, "Reduced row-echelon form")
	assert.NotContains(t, out, "-0")
}

func TestRank(t *testing.T) {
	out, err := run(t, nil, "rank", "-m", "1 2; 3 4")
	require.NoError(t, err)
	assert.Contains(t, out, "2")
	assert.NotContains(t, out, "deficient")

	out, err = run(t, nil, "rank", "-m", "1 2; 2 4")
	require.NoError(t, err)
	assert.Contains(t, out, "rank deficient: 1 < 2")

	out, err = run(t, strings.NewReader("rows = [[1, 2], [3, 4]]"), "rank", "-f", "-", "--rows", "1")
	require.NoError(t, err)
	assert.NotContains(t, out, "deficient")

	_, err = run(t, nil, "rank", "-m", "1 2; 3 4", "--rows", "5")
	assert.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = run(t, nil, "rank", "-m", "1 2; 3 4", "--cols=-1")
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestSteps(t *testing.T) {
	out, err := run(t, nil, "steps", "-m", "0 2 1 1; 3 -7 -6 1; 0 -1 -1 1")
	require.NoError(t, err)
	assert.Contains(t, out, "swap row 0 with row 1")
	assert.Contains(t, out, "multiply row 1 by -0.5 and subtract from row 2")
	assert.Contains(t, out, "2 row operations")

	out, err = run(t, nil, "steps", "-m", "1 2; 0 1")
	require.NoError(t, err)
	assert.Contains(t, out, "already in row-echelon form")
}

func TestSolve(t *testing.T) {
	path := writeFile(t, "rows = [[1, 1], [1, -1]]\nrhs = [3, 1]\n")
	out, err := run(t, nil, "solve", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "unique solution")
	assert.Contains(t, out, "[2, 1]")

	out, err = run(t, nil, "solve", "-m", "1 1 3; 1 -1 1", "--augmented")
	require.NoError(t, err)
	assert.Contains(t, out, "[2, 1]")

	out, err = run(t, nil, "solve", "-m", "1 2 3; 2 4 6", "--augmented")
	require.NoError(t, err)
	assert.Contains(t, out, "infinitely many solutions")
	assert.Contains(t, out, "[x1]")

	out, err = run(t, nil, "solve", "-m", "1 2 3; 2 4 7", "--augmented")
	require.NoError(t, err)
	assert.Contains(t, out, "inconsistent")

	_, err = run(t, nil, "solve", "-m", "1 2; 3 4")
	assert.ErrorIs(t, err, errNoRHS)

	_, err = run(t, nil, "solve", "-m", "1; 2", "--augmented")
	assert.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestInverse(t *testing.T) {
	out, err := run(t, nil, "inverse", "-m", "2 0; 0 4")
	require.NoError(t, err)
	assert.Contains(t, out, "0.25")

	out, err = run(t, nil, "inverse", "-m", "1 2; 2 4")
	assert.ErrorIs(t, err, matrix.ErrSingular)
	assert.Contains(t, out, "matrix is singular")

	_, err = run(t, nil, "inverse", "-m", "1 2 3")
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestInputErrors(t *testing.T) {
	_, err := run(t, nil, "rref")
	assert.ErrorIs(t, err, errNoInput)

	_, err = run(t, nil, "rref", "-m", "1", "-f", "x.toml")
	assert.ErrorIs(t, err, errTwoInputs)

	_, err = run(t, nil, "rref", "-m", "1", "--tol=-1")
	assert.ErrorIs(t, err, errNegativeTol)

	_, err = run(t, nil, "solve", "-m", "1 2", "--rows", "1")
	assert.Error(t, err) // solve takes no bounds
}

func TestVerboseLogsSteps(t *testing.T) {
	var logs bytes.Buffer
	root := New(&logs, LogInfo).RootCommand()
	root.SetOut(io.Discard)
	root.SetArgs([]string{"-v", "ref", "-m", "0 1; 1 0"})
	require.NoError(t, root.Execute())
	assert.Contains(t, logs.String(), "matrix loaded")
	assert.Contains(t, logs.String(), "row operation")
}
