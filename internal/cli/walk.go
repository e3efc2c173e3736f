package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gauss/matrix"
)

var walkHelpStyle = lipgloss.NewStyle().Foreground(colorDim)

// =============================================================================
// walkModel - Interactive step-by-step elimination
// =============================================================================

// frame is one position in the walk: the matrix after Step (the input when first).
type frame struct {
	Step   matrix.Step
	Matrix *matrix.Dense
	first  bool
}

// walkModel is the bubbletea model for the walk command. Frames are pulled
// from the Eliminator on demand and kept so the user can step back.
type walkModel struct {
	e      *matrix.Eliminator
	Frames []frame
	Cursor int
	Err    error
}

// newWalkModel creates a walk model positioned on the input matrix.
func newWalkModel(e *matrix.Eliminator) walkModel {
	return walkModel{
		e:      e,
		Frames: []frame{{Matrix: e.Result(), first: true}},
	}
}

func (m walkModel) Init() tea.Cmd {
	return nil
}

func (m walkModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "n", "right", "l", "enter", " ":
		m = m.forward()
	case "p", "left", "h":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "a":
		for !m.finished() {
			m = m.forward()
		}
	}
	return m, nil
}

// forward moves to the next frame, pulling a new step when the cursor is on the last one.
func (m walkModel) forward() walkModel {
	if m.Cursor < len(m.Frames)-1 {
		m.Cursor++
		return m
	}
	s, snap, ok := m.e.Next()
	if !ok {
		m.Err = m.e.Err()
		return m
	}
	m.Frames = append(m.Frames, frame{Step: s, Matrix: snap})
	m.Cursor++
	return m
}

// finished reports whether the cursor is on the last step of an exhausted elimination.
func (m walkModel) finished() bool {
	return m.e.Done() && m.Cursor == len(m.Frames)-1
}

func (m walkModel) View() string {
	var b strings.Builder
	f := m.Frames[m.Cursor]

	if f.first {
		b.WriteString(StyleTitle.Render("Input"))
	} else {
		b.WriteString(StyleTitle.Render(fmt.Sprintf("Step %d", m.Cursor)))
		b.WriteString("  ")
		b.WriteString(StyleValue.Render(f.Step.String()))
	}
	b.WriteString("\n")

	var touched []int
	if !f.first {
		touched = touchedRows(f.Step)
	}
	b.WriteString(renderMatrix(f.Matrix, touched...))
	b.WriteString("\n")

	switch {
	case m.Err != nil:
		b.WriteString(styleIconError.Render(iconError) + " " + m.Err.Error())
	case m.finished():
		b.WriteString(styleIconSuccess.Render(iconSuccess) + " " + StyleSuccess.Render("row-echelon form reached"))
	default:
		row, col := m.e.Pivot()
		b.WriteString(StyleDim.Render(fmt.Sprintf("pivot %s (%d,%d)", iconArrow, row, col)))
	}
	b.WriteString("\n\n")
	b.WriteString(walkHelpStyle.Render("→/n next  ←/p back  a all  q quit"))
	b.WriteString("\n")

	return b.String()
}

// walkCommand runs the interactive viewer.
func (c *CLI) walkCommand() *cobra.Command {
	var in inputFlags
	cmd := &cobra.Command{
		Use:   "walk",
		Short: "Step through the elimination interactively",
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

			p := tea.NewProgram(newWalkModel(e),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			final, err := p.Run()
			if err != nil {
				return err
			}
			if fm, ok := final.(walkModel); ok && fm.Err != nil {
				return fm.Err
			}
			return nil
		},
	}
	in.register(cmd)
	in.registerBounds(cmd)
	return cmd
}
