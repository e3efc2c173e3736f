package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gauss/matrix"
)

// refCommand prints the row-echelon form.
func (c *CLI) refCommand() *cobra.Command {
	var in inputFlags
	cmd := &cobra.Command{
		Use:   "ref",
		Short: "Print the row-echelon form (forward elimination only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, m, opts, err := in.prepare(cmd)
			if err != nil {
				return err
			}
			p := newProgress(loggerFromContext(cmd.Context()))
			ref, err := matrix.RowReduce(m, opts...)
			if err != nil {
				return fmt.Errorf("row reduce: %w", err)
			}
			p.done("forward elimination complete")
			printMatrix(cmd.OutOrStdout(), "Row-echelon form", ref)
			return nil
		},
	}
	in.register(cmd)
	in.registerBounds(cmd)
	return cmd
}

// rrefCommand prints the reduced row-echelon form.
func (c *CLI) rrefCommand() *cobra.Command {
	var in inputFlags
	cmd := &cobra.Command{
		Use:   "rref",
		Short: "Print the reduced row-echelon form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, m, opts, err := in.prepare(cmd)
			if err != nil {
				return err
			}
			p := newProgress(loggerFromContext(cmd.Context()))
			R, err := matrix.RREF(m, opts...)
			if err != nil {
				return fmt.Errorf("rref: %w", err)
			}
			p.done("reduction complete")
			printMatrix(cmd.OutOrStdout(), "Reduced row-echelon form", R)
			return nil
		},
	}
	in.register(cmd)
	in.registerBounds(cmd)
	return cmd
}

// rankCommand prints the rank.
func (c *CLI) rankCommand() *cobra.Command {
	var in inputFlags
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Print the rank (non-zero rows of the reduced form)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, m, opts, err := in.prepare(cmd)
			if err != nil {
				return err
			}
			rank, err := matrix.Rank(m, opts...)
			if err != nil {
				return fmt.Errorf("rank: %w", err)
			}
			w := cmd.OutOrStdout()
			printKeyValue(w, "rank", StyleNumber.Render(strconv.Itoa(rank)))
			rows, cols := in.window(m)
			if full := min(rows, cols); rank < full {
				printWarning(w, "rank deficient: %d < %d", rank, full)
			}
			return nil
		},
	}
	in.register(cmd)
	in.registerBounds(cmd)
	return cmd
}

// stepsCommand prints every row operation with the matrix after it.
func (c *CLI) stepsCommand() *cobra.Command {
	var in inputFlags
	cmd := &cobra.Command{
		Use:   "steps",
		Short: "Print every elementary row operation of the forward elimination",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, m, opts, err := in.prepare(cmd)
			if err != nil {
				return err
			}
			e, err := matrix.NewEliminator(m, opts...)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			printMatrix(w, "Input", e.Result())

			n := 0
			for s, snap := range e.All() {
				if err := cmd.Context().Err(); err != nil {
					return err
				}
				n++
				printStep(w, n, s, snap)
			}
			if err := e.Err(); err != nil {
				return fmt.Errorf("step %d: %w", n+1, err)
			}
			if n == 0 {
				printInfo(w, "already in row-echelon form")
				return nil
			}
			printSuccess(w, "%d row operations", n)
			return nil
		},
	}
	in.register(cmd)
	in.registerBounds(cmd)
	return cmd
}
