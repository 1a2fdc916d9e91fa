package bindery

import (
	"errors"
	"io"

	"github.com/tsawler/bindery/marks"
	"github.com/tsawler/bindery/model"
	"github.com/tsawler/bindery/paper"
	"github.com/tsawler/bindery/render"
	"github.com/tsawler/bindery/schema"
)

// ErrNoSource is returned by terminal operations that need a source file
// when the Imposer was built without one.
var ErrNoSource = errors.New("bindery: no source file")

// Imposer provides a fluent interface for configuring and running an
// imposition. Each configuration method returns a new Imposer instance,
// making it safe for concurrent use and allowing method chaining.
type Imposer struct {
	// Source: a file, or a pre-probed descriptor.
	filename string
	doc      *model.Document

	// Configuration
	options imposeOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a copy of the Imposer. Each chain method returns a new
// instance.
func (im *Imposer) clone() *Imposer {
	return &Imposer{
		filename: im.filename,
		doc:      im.doc,
		options:  im.options.clone(),
		err:      im.err,
	}
}

// ============================================================================
// Configuration Methods (return new Imposer instance)
// ============================================================================

// Schema selects the imposition schema. The default is saddle.
func (im *Imposer) Schema(id schema.ID) *Imposer {
	n := im.clone()
	n.options.schema = id
	return n
}

// Rows sets the number of grid rows per sheet side, for the grid-based
// schemas.
func (im *Imposer) Rows(rows int) *Imposer {
	n := im.clone()
	n.options.params.Rows = rows
	return n
}

// Cols sets the number of grid columns per sheet side, for the grid-based
// schemas.
func (im *Imposer) Cols(cols int) *Imposer {
	n := im.clone()
	n.options.params.Cols = cols
	return n
}

// Last keeps the final count pages at the very end of the imposed document,
// inserting any padding blanks before them. Useful to keep a back cover a
// back cover.
func (im *Imposer) Last(count int) *Imposer {
	n := im.clone()
	n.options.params.Last = count
	return n
}

// Group sets the number of sheets folded together per hardcover signature.
func (im *Imposer) Group(sheets int) *Imposer {
	n := im.clone()
	n.options.params.Group = sheets
	return n
}

// MaxSignature caps the pages per saddle signature (a multiple of 4).
func (im *Imposer) MaxSignature(pages int) *Imposer {
	n := im.clone()
	n.options.params.MaxSignature = pages
	return n
}

// Bind sets the binding edge. The default is left.
func (im *Imposer) Bind(edge schema.Edge) *Imposer {
	n := im.clone()
	n.options.params.Bind = edge
	return n
}

// Margin sets the outer margins of the output sheets.
func (im *Imposer) Margin(m model.Margins) *Imposer {
	n := im.clone()
	n.options.geom.Margin = m
	return n
}

// InnerMargin sets the spacing between adjacent imposed pages, in points.
func (im *Imposer) InnerMargin(pts float64) *Imposer {
	n := im.clone()
	n.options.geom.InnerMargin = pts
	return n
}

// Bleed sets the bleed drawn beyond the trim line on cut edges, in points.
func (im *Imposer) Bleed(pts float64) *Imposer {
	n := im.clone()
	n.options.geom.Bleed = pts
	return n
}

// Creep sets the spine gap function of nesting depth for folded schemas.
func (im *Imposer) Creep(c paper.Creep) *Imposer {
	n := im.clone()
	n.options.geom.CreepPerSheet = c.Slope
	n.options.geom.CreepBase = c.Offset
	return n
}

// Paper fixes the output sheet size instead of deriving it from the page
// size and margins. Imposition fails if the content does not fit.
func (im *Imposer) Paper(size model.Size) *Imposer {
	n := im.clone()
	n.options.geom.Sheet = size
	return n
}

// CropMarks enables crop marks at trim and cut lines.
func (im *Imposer) CropMarks() *Imposer {
	n := im.clone()
	n.options.marks.CropMarks = true
	return n
}

// BindMarks enables collation marks on hardcover signature spines.
func (im *Imposer) BindMarks() *Imposer {
	n := im.clone()
	n.options.marks.BindMarks = true
	return n
}

// PageOrder sets how sheet sides are sequenced in the output file. The
// default is interleaved (front, back, front, back) for duplex printing.
func (im *Imposer) PageOrder(order render.Order) *Imposer {
	n := im.clone()
	n.options.render.Order = order
	return n
}

// ============================================================================
// Terminal Operations
// ============================================================================

// document resolves the source descriptor, probing the file if needed.
func (im *Imposer) document() (*model.Document, error) {
	if im.doc != nil {
		return im.doc, nil
	}
	if im.filename == "" {
		return nil, ErrNoSource
	}
	return render.Probe(im.filename)
}

// Plan computes the fully-annotated layout: pages placed per the schema's
// pagination law, draw rectangles and marks planned per the sheet geometry.
func (im *Imposer) Plan() (*model.Layout, error) {
	if im.err != nil {
		return nil, im.err
	}
	doc, err := im.document()
	if err != nil {
		return nil, err
	}
	layout, err := schema.Plan(doc.PageCount(), im.options.schema, im.options.params)
	if err != nil {
		return nil, err
	}
	return marks.Annotate(layout, doc.Size(), im.options.geom, im.options.marks)
}

// WriteTo plans the imposition and renders the resulting PDF to w.
func (im *Imposer) WriteTo(w io.Writer) error {
	layout, err := im.Plan()
	if err != nil {
		return err
	}
	if im.filename == "" {
		return ErrNoSource
	}
	return render.NewFPDF(im.filename, im.options.render).Render(w, layout)
}

// Write plans the imposition and renders the resulting PDF to the file at
// outputPath.
func (im *Imposer) Write(outputPath string) error {
	layout, err := im.Plan()
	if err != nil {
		return err
	}
	if im.filename == "" {
		return ErrNoSource
	}
	return render.NewFPDF(im.filename, im.options.render).RenderFile(outputPath, layout)
}
