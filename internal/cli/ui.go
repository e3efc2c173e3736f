package cli

import (
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/gauss/matrix"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for emphasized values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)

	styleCell      = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	styleCellTouch = styleCell.Foreground(colorCyan).Bold(true)
	styleBorder    = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

// printError prints an error message.
func printError(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+msg)
}

// printWarning prints a warning message.
func printWarning(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+msg)
}

// printKeyValue prints a labeled value.
func printKeyValue(w io.Writer, key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Fprintln(w, keyStyle.Render(key)+" "+StyleValue.Render(value))
}

// =============================================================================
// Matrix Output
// =============================================================================

// formatValue renders one entry with up to six significant digits.
func formatValue(v float64) string {
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// formatValues renders a slice of entries as "[a, b, c]".
func formatValues(vs []float64) string {
	out := "["
	for i, v := range vs {
		if i > 0 {
			out += ", "
		}
		out += formatValue(v)
	}
	return out + "]"
}

// renderMatrix draws m as a bordered table. Rows listed in touched are highlighted.
func renderMatrix(m *matrix.Dense, touched ...int) string {
	data := m.RowsData()
	cells := make([][]string, len(data))
	for i, row := range data {
		cells[i] = make([]string, len(row))
		for j, v := range row {
			cells[i][j] = formatValue(v)
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if slices.Contains(touched, row) {
				return styleCellTouch
			}
			return styleCell
		})

	return t.Render()
}

// touchedRows returns the rows a step writes to.
func touchedRows(s matrix.Step) []int {
	if s.IsSwap() {
		return []int{s.From, s.To}
	}
	return []int{s.To}
}

// printMatrix prints a titled matrix table.
func printMatrix(w io.Writer, title string, m *matrix.Dense, touched ...int) {
	fmt.Fprintln(w, StyleTitle.Render(title))
	fmt.Fprintln(w, renderMatrix(m, touched...))
}

// printStep prints one numbered row operation and the matrix after it.
func printStep(w io.Writer, n int, s matrix.Step, m *matrix.Dense) {
	fmt.Fprintln(w, StyleNumber.Render(fmt.Sprintf("%d.", n))+" "+StyleValue.Render(s.String()))
	fmt.Fprintln(w, renderMatrix(m, touchedRows(s)...))
}
