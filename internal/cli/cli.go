// Package cli implements the snakegrid command-line interface.
//
// Running snakegrid with no arguments performs a merge using snakegrid.toml
// from the working directory, or the built-in defaults when there is none.
//
// # Commands
//
//   - merge: paint the target dates onto every configured template
//   - window: show the current graph window and where each date lands
//   - completion: generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context as well as held on [CLI].
package cli

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/snakegrid/pkg/buildinfo"
	errs "github.com/matzehuels/snakegrid/pkg/errors"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "snakegrid"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// Process exit codes.
const (
	ExitOK          = 0
	ExitFailure     = 1   // I/O, parse or configuration failure
	ExitNoAnchor    = 2   // template has no </g></svg> anchor; nothing written
	ExitInterrupted = 130 // standard shell convention for SIGINT
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	opts   runOpts
}

// New creates a new CLI instance with a logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The root command itself runs a merge.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Snakegrid paints dates onto a contribution graph SVG",
		Long:         `Snakegrid overlays contribution markers for a list of dates onto a template SVG, placing each date on a week-by-weekday grid covering the trailing year.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if c.opts.verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runMerge(cmd)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	c.opts.register(root)

	root.AddCommand(c.mergeCommand())
	root.AddCommand(c.windowCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// ExitCode maps a command error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	case errs.IsStructural(err):
		return ExitNoAnchor
	default:
		return ExitFailure
	}
}
