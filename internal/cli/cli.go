// Package cli implements the anomiadeck command-line interface.
//
// The CLI is built with cobra and logs through charmbracelet/log. Status
// lines for the user (success, warnings, written files) are styled with
// lipgloss and printed to stdout; log records go to stderr.
//
// # Commands
//
//   - generate: Build a deck from a category file and a symbol folder
//   - completion: Print shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which adds
// per-stage timings from the generation pipeline.
//
// # Example
//
//	c := cli.New(os.Stderr, cli.LogInfo)
//	if err := c.RootCommand().ExecuteContext(ctx); err != nil {
//	    os.Exit(1)
//	}
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/anomiadeck/pkg/buildinfo"
	"github.com/matzehuels/anomiadeck/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = buildinfo.Name

	// defaultOutputDir is where cards are written when no folder is given.
	defaultOutputDir = "output"

	// bundledFontArg selects the bundled font in place of a font file.
	bundledFontArg = "-"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

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
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Anomiadeck generates printable Anomia card decks",
		Long: `Anomiadeck is a CLI tool for generating printable Anomia card decks.

Each category phrase becomes one card: a symbol in the centre, the phrase
along the bottom edge and again, upside down, along the top edge. Symbols are
spread evenly over the shuffled deck.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}
