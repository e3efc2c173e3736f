// Package cli implements the gauss command-line interface.
//
// The commands read a matrix from a TOML file (--file) or an inline literal
// (--matrix "1 2; 3 4"), run the elimination engine from package matrix and
// print the result with lipgloss tables. The CLI is built using cobra and
// logs through charmbracelet/log; --verbose switches to debug level and logs
// every elementary row operation.
//
// # Commands
//
//   - ref, rref, rank: forward elimination, reduced form, rank
//   - steps: every row operation with the matrix after it
//   - solve, inverse: Gauss–Jordan on an augmented matrix
//   - walk: interactive step-by-step viewer (bubbletea)
//   - serve: the HTTP API from internal/server
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "gauss"

	// defaultAddr is the listen address of the serve command.
	defaultAddr = ":8080"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var (
	version = "dev" // semantic version, injected via ldflags
	commit  = ""    // git commit SHA
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c string) {
	version = v
	commit = c
}

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The --verbose flag raises the log level before any subcommand runs and the
// logger is attached to the command context.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           appName,
		Short:         "Gauss reduces matrices step by step",
		Long:          `Gauss performs Gaussian elimination on dense matrices and shows every elementary row operation it takes: row-echelon form, reduced row-echelon form, rank, linear systems and inverses.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := LogInfo
			if verbose {
				level = LogDebug
			}
			c.SetLogLevel(level)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\n", appName, version, commit))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	// Register all subcommands
	root.AddCommand(c.refCommand())
	root.AddCommand(c.rrefCommand())
	root.AddCommand(c.rankCommand())
	root.AddCommand(c.stepsCommand())
	root.AddCommand(c.solveCommand())
	root.AddCommand(c.inverseCommand())
	root.AddCommand(c.walkCommand())
	root.AddCommand(c.serveCommand())

	return root
}
