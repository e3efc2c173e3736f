package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gauss/matrix"
)

var errNoRHS = errors.New("no right-hand side: add rhs to the file or use --augmented")

// solveCommand classifies and solves A·x = b.
func (c *CLI) solveCommand() *cobra.Command {
	var (
		in        inputFlags
		augmented bool
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve A·x = b by reducing the augmented matrix [A | b]",
		Long: `Solve A·x = b by reducing the augmented matrix [A | b].

The right-hand side comes from the rhs key of the matrix file, or, with
--augmented, from the last column of the matrix. The system is reported as
unique, infinite (with its free variables) or inconsistent.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, m, opts, err := in.prepare(cmd)
			if err != nil {
				return err
			}
			a, b, err := splitSystem(input, m, augmented)
			if err != nil {
				return err
			}
			sol, err := matrix.Solve(a, b, opts...)
			if err != nil {
				return fmt.Errorf("solve: %w", err)
			}
			printSolution(cmd.OutOrStdout(), sol)
			return nil
		},
	}
	in.register(cmd)
	cmd.Flags().BoolVar(&augmented, "augmented", false, "treat the last column as the right-hand side")
	return cmd
}

// splitSystem separates A and b, either from the rhs key or the last column.
func splitSystem(in *Input, m *matrix.Dense, augmented bool) (*matrix.Dense, []float64, error) {
	if !augmented {
		if in.RHS == nil {
			return nil, nil, errNoRHS
		}
		return m, in.RHS, nil
	}
	if m.Cols() < 2 {
		return nil, nil, fmt.Errorf("--augmented needs at least 2 columns: %w", matrix.ErrBadShape)
	}
	rows := m.RowsData()
	b := make([]float64, len(rows))
	for i, row := range rows {
		b[i] = row[len(row)-1]
		rows[i] = row[:len(row)-1]
	}
	a, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

// printSolution prints the classification, the particular solution and the free variables.
func printSolution(w io.Writer, sol *matrix.Solution) {
	printMatrix(w, "Reduced [A | b]", sol.Reduced)
	switch sol.Kind {
	case matrix.Inconsistent:
		printWarning(w, "inconsistent: no solution")
	case matrix.Unique:
		printSuccess(w, "unique solution")
		printKeyValue(w, "x", formatValues(sol.X))
	case matrix.Infinite:
		printSuccess(w, "infinitely many solutions")
		printKeyValue(w, "x "+iconArrow, formatValues(sol.X))
		free := make([]string, len(sol.Free))
		for i, j := range sol.Free {
			free[i] = "x" + strconv.Itoa(j)
		}
		printKeyValue(w, "free", fmt.Sprint(free))
	}
}

// inverseCommand prints A⁻¹.
func (c *CLI) inverseCommand() *cobra.Command {
	var in inputFlags
	cmd := &cobra.Command{
		Use:   "inverse",
		Short: "Print the inverse by reducing [A | I]",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, m, opts, err := in.prepare(cmd)
			if err != nil {
				return err
			}
			inv, err := matrix.Inverse(m, opts...)
			if errors.Is(err, matrix.ErrSingular) {
				printError(cmd.OutOrStdout(), "matrix is singular")
				return err
			}
			if err != nil {
				return fmt.Errorf("inverse: %w", err)
			}
			printMatrix(cmd.OutOrStdout(), "Inverse", inv)
			return nil
		},
	}
	in.register(cmd)
	return cmd
}
