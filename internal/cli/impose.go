package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/bindery"
	"github.com/tsawler/bindery/internal/logging"
	"github.com/tsawler/bindery/paper"
	"github.com/tsawler/bindery/schema"
)

// imposeFlags holds the flag values of one imposition subcommand.
type imposeFlags struct {
	output    string
	omargin   string
	imargin   string
	bleed     string
	creep     string
	paperSize string
	bind      string
	last      int
	rows      int
	cols      int
	group     int
	signature int
	mark      []string
}

// gridSchema reports whether a schema takes a rows/cols grid.
func gridSchema(id schema.ID) bool {
	switch id {
	case schema.Cards, schema.CutStackFold, schema.OnePageZine, schema.Wire:
		return true
	}
	return false
}

// foldedSchema reports whether a schema folds sheets, and so takes creep.
func foldedSchema(id schema.ID) bool {
	switch id {
	case schema.Saddle, schema.Hardcover, schema.CopyCutFold, schema.CutStackFold:
		return true
	}
	return false
}

// newImposeCmd creates one schema subcommand. All schemas share the
// geometry flags; grid, signature and creep flags appear only where the
// schema uses them.
func (a *App) newImposeCmd(id schema.ID, short, long string) *cobra.Command {
	opts := &imposeFlags{}

	cmd := &cobra.Command{
		Use:   string(id) + " FILE",
		Short: short,
		Long:  long,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runImpose(cmd, id, opts, args[0])
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.output, "output", "o", "", `destination file (default "FILE-impose.pdf")`)
	f.StringVar(&opts.omargin, "omargin", "0", "outer margins: one length, or four as top,right,bottom,left")
	f.StringVar(&opts.imargin, "imargin", "0", "margin between imposed pages")
	f.StringVar(&opts.bleed, "bleed", "0", "bleed drawn past the trim line on cut edges")
	f.StringVarP(&opts.bind, "bind", "b", "left", "binding edge: left, top, right or bottom")
	f.IntVarP(&opts.last, "last", "l", 0, "keep the final N pages last (after any padding blanks)")
	f.StringVar(&opts.paperSize, "paper", "", `fixed sheet size, named ("a4") or explicit ("210mmx297mm")`)

	markHelp := `marks to draw: "crop" for trim and cut lines`
	if id == schema.Hardcover {
		markHelp += `, "bind" for spine collation marks`
	}
	f.StringSliceVarP(&opts.mark, "mark", "k", nil, markHelp)

	if gridSchema(id) {
		f.IntVar(&opts.rows, "rows", 0, "grid rows per sheet side")
		f.IntVar(&opts.cols, "cols", 0, "grid columns per sheet side")
	}
	if foldedSchema(id) {
		f.StringVar(&opts.creep, "creep", "0", `spine gap per nesting depth, e.g. "0.1x+2mm"`)
	}
	if id == schema.Saddle {
		f.IntVar(&opts.signature, "signature", 0, "maximum pages per signature (a multiple of 4)")
	}
	if id == schema.Hardcover {
		f.IntVar(&opts.group, "group", 0, "sheets folded together per signature")
	}

	return cmd
}

// outputPath resolves the destination file name.
func outputPath(explicit, input string) string {
	if explicit != "" {
		return explicit
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + "-impose.pdf"
}

func (a *App) runImpose(cmd *cobra.Command, id schema.ID, opts *imposeFlags, input string) error {
	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}
	cfg.apply(cmd.Flags(), opts)

	im := bindery.Open(input).
		Schema(id).
		Rows(opts.rows).
		Cols(opts.cols).
		Last(opts.last).
		Group(opts.group).
		MaxSignature(opts.signature).
		Bind(schema.Edge(opts.bind))

	margin, err := paper.ParseMargins(opts.omargin)
	if err != nil {
		return fmt.Errorf("--omargin: %w", err)
	}
	im = im.Margin(margin)

	imargin, err := paper.ParseLength(opts.imargin)
	if err != nil {
		return fmt.Errorf("--imargin: %w", err)
	}
	im = im.InnerMargin(imargin)

	bleed, err := paper.ParseLength(opts.bleed)
	if err != nil {
		return fmt.Errorf("--bleed: %w", err)
	}
	im = im.Bleed(bleed)

	if opts.creep != "" && opts.creep != "0" {
		creep, err := paper.ParseCreep(opts.creep)
		if err != nil {
			return fmt.Errorf("--creep: %w", err)
		}
		im = im.Creep(creep)
	}
	if opts.paperSize != "" {
		sheet, err := paper.ParseSize(opts.paperSize)
		if err != nil {
			return fmt.Errorf("--paper: %w", err)
		}
		im = im.Paper(sheet)
	}
	for _, mark := range opts.mark {
		switch mark {
		case "crop":
			im = im.CropMarks()
		case "bind":
			im = im.BindMarks()
		default:
			return fmt.Errorf("--mark: unknown mark %q (want crop or bind)", mark)
		}
	}

	out := outputPath(opts.output, input)
	log := logging.Get()
	log.Info().Str("schema", string(id)).Str("input", input).Str("output", out).Msg("imposing")

	if err := im.Write(out); err != nil {
		return err
	}
	log.Info().Str("output", out).Msg("done")
	return nil
}
