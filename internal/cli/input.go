package cli

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gauss/matrix"
)

var (
	errNoInput      = errors.New("no matrix given: use --file or --matrix")
	errTwoInputs    = errors.New("--file and --matrix are mutually exclusive")
	errNegativeTol  = errors.New("tolerance must be finite and >= 0")
	errUnknownField = errors.New("unknown field in matrix file")
)

// Input is the content of a matrix file.
//
//	rows = [[1, 2, 1], [3, -7, -6]]
//	rhs  = [1, 1]      # optional, used by solve
//	tolerance = 1e-9   # optional, overridden by --tol
type Input struct {
	Rows      [][]float64 `toml:"rows"`
	RHS       []float64   `toml:"rhs"`
	Tolerance float64     `toml:"tolerance"`
}

// inputFlags are the matrix source and engine flags shared by every reducing command.
type inputFlags struct {
	file   string
	inline string
	rows   int
	cols   int
	tol    float64
	tolSet bool // --tol given explicitly
}

// register adds the source and tolerance flags to cmd.
func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "TOML matrix file (\"-\" reads stdin)")
	cmd.Flags().StringVarP(&f.inline, "matrix", "m", "", `inline matrix, rows separated by ";" (e.g. "1 2; 3 4")`)
	cmd.Flags().Float64Var(&f.tol, "tol", 0, "pivot tolerance: |x| <= tol counts as zero (default exact)")
}

// registerBounds adds --rows and --cols. Only commands that eliminate the
// input matrix itself take them; solve and inverse work on augmented copies.
func (f *inputFlags) registerBounds(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.rows, "rows", 0, "restrict elimination to the first N rows")
	cmd.Flags().IntVar(&f.cols, "cols", 0, "restrict elimination to the first N columns")
}

// load reads the Input from the file, stdin or the inline literal.
func (f *inputFlags) load(stdin io.Reader) (*Input, error) {
	switch {
	case f.file != "" && f.inline != "":
		return nil, errTwoInputs
	case f.file == "-":
		return decodeInput(stdin)
	case f.file != "":
		var in Input
		md, err := toml.DecodeFile(f.file, &in)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f.file, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%s: %q: %w", f.file, undecoded[0].String(), errUnknownField)
		}
		return &in, nil
	case f.inline != "":
		rows, err := parseInline(f.inline)
		if err != nil {
			return nil, err
		}
		return &Input{Rows: rows}, nil
	default:
		return nil, errNoInput
	}
}

// decodeInput decodes a TOML Input from r.
func decodeInput(r io.Reader) (*Input, error) {
	var in Input
	md, err := toml.NewDecoder(r).Decode(&in)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("stdin: %q: %w", undecoded[0].String(), errUnknownField)
	}
	return &in, nil
}

// parseInline parses "1 2 3; 4 5 6" (commas and newlines also accepted as separators).
func parseInline(s string) ([][]float64, error) {
	var rows [][]float64
	for i, line := range strings.FieldsFunc(s, func(r rune) bool { return r == ';' || r == '\n' }) {
		fields := strings.FieldsFunc(line, func(r rune) bool { return unicode.IsSpace(r) || r == ',' })
		if len(fields) == 0 {
			continue
		}
		row := make([]float64, len(fields))
		for j, tok := range fields {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d, entry %d: %w", i, j, err)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// matrix builds the Dense from the loaded rows.
func (in *Input) matrix() (*matrix.Dense, error) {
	m, err := matrix.NewFromRows(in.Rows)
	if err != nil {
		return nil, fmt.Errorf("matrix: %w", err)
	}
	return m, nil
}

// options translates the flags (and file settings) into engine options for m.
// Every step is logged at debug level through l.
func (f *inputFlags) options(in *Input, m *matrix.Dense, l *log.Logger) ([]matrix.Option, error) {
	opts := []matrix.Option{stepLogger(l)}

	tol := in.Tolerance
	if f.tolSet {
		tol = f.tol
	}
	switch {
	case tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0):
		return nil, errNegativeTol
	case tol > 0:
		opts = append(opts, matrix.WithPivotTolerance(tol))
	}

	if f.rows < 0 || f.cols < 0 {
		return nil, fmt.Errorf("--rows %d --cols %d: %w", f.rows, f.cols, matrix.ErrInvalidDimensions)
	}
	if f.rows > 0 || f.cols > 0 {
		opts = append(opts, matrix.WithBounds(f.window(m)))
	}

	return opts, nil
}

// window returns the block of m the engine works on: --rows/--cols where
// given, the full extent otherwise.
func (f *inputFlags) window(m *matrix.Dense) (rows, cols int) {
	rows, cols = m.Rows(), m.Cols()
	if f.rows > 0 {
		rows = f.rows
	}
	if f.cols > 0 {
		cols = f.cols
	}
	return rows, cols
}

// prepare loads the input for cmd and returns it with its matrix and options.
func (f *inputFlags) prepare(cmd *cobra.Command) (*Input, *matrix.Dense, []matrix.Option, error) {
	l := loggerFromContext(cmd.Context())
	f.tolSet = cmd.Flags().Changed("tol")
	in, err := f.load(cmd.InOrStdin())
	if err != nil {
		return nil, nil, nil, err
	}
	m, err := in.matrix()
	if err != nil {
		return nil, nil, nil, err
	}
	opts, err := f.options(in, m, l)
	if err != nil {
		return nil, nil, nil, err
	}
	l.Debug("matrix loaded", "rows", m.Rows(), "cols", m.Cols())

	return in, m, opts, nil
}
