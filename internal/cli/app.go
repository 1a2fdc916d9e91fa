// Package cli implements the bindery command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/bindery/internal/logging"
	"github.com/tsawler/bindery/schema"
)

// Version information set at build time.
var Version = "dev"

// App represents the CLI application.
type App struct {
	root   *cobra.Command
	stdout io.Writer
	stderr io.Writer

	configPath string
	logLevel   string
	logJSON    bool
}

// New creates a new CLI application.
func New() *App {
	app := &App{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	app.root = &cobra.Command{
		Use:   "bindery",
		Short: "Impose PDF pages onto printable sheets",
		Long: `bindery rearranges the pages of a PDF document onto larger sheets so
that, once printed, cut, folded and bound, the sheets read as the original
document.

Each subcommand is one imposition schema; run "bindery SCHEMA --help" for
the fold-and-bind instructions that go with it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Init(logging.Config{Level: app.logLevel, JSON: app.logJSON})
		},
	}

	pf := app.root.PersistentFlags()
	pf.StringVar(&app.configPath, "config", "", "path to a YAML defaults file")
	pf.StringVar(&app.logLevel, "log-level", "info", "minimum log level (trace, debug, info, warn, error)")
	pf.BoolVar(&app.logJSON, "log-json", false, "emit logs as JSON lines")

	app.root.AddCommand(
		app.newVersionCmd(),
		app.newImposeCmd(schema.Saddle,
			"Impose as saddle-stitched booklets",
			`Print two pages per sheet side, fold the stack of sheets in half and
staple through the fold. The workhorse schema for booklets and zines.`),
		app.newImposeCmd(schema.Cards,
			"Impose a grid of single-sided cards",
			`Tile pages onto sheet fronts in reading order and cut them apart.
Backs stay blank.`),
		app.newImposeCmd(schema.CutStackFold,
			"Impose for cut, stack and fold",
			`Tile fold pairs in a grid, cut the printed stack into piles, fold each
pile and stack the resulting booklet sections in reading order.`),
		app.newImposeCmd(schema.CopyCutFold,
			"Impose two copies of a booklet per sheet",
			`Print each sheet with two copies of the same fold pair side by side,
cut the stack down the middle, and fold each half into its own booklet.`),
		app.newImposeCmd(schema.OnePageZine,
			"Impose an eight-panel one-sheet zine",
			`Place up to eight pages on a single sheet front so that one cut and a
few accordion folds turn it into a tiny booklet. Nothing prints on the
back.`),
		app.newImposeCmd(schema.Hardcover,
			"Impose stacked signatures for hardcover binding",
			`Group sheets into signatures, fold each signature and sew the stack.
Collation marks on the spines (--bindmarks) reveal gathering mistakes.`),
		app.newImposeCmd(schema.Wire,
			"Impose sequential pairs for wire or spiral binding",
			`Place consecutive pages two-up; after cutting, the piles interleave
into a punchable stack. No folding involved.`),
	)

	return app
}

// WithOutput sets custom output writers.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)
	return a
}

// Execute runs the CLI application.
func (a *App) Execute(ctx context.Context) error {
	return a.root.ExecuteContext(ctx)
}

// ExecuteWithArgs runs the CLI with specific arguments (useful for testing).
func (a *App) ExecuteWithArgs(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.Execute(ctx)
}

// newVersionCmd creates the version command.
func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "bindery version %s\n", Version)
		},
	}
}
