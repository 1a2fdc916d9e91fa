package render

import (
	"errors"
	"fmt"
	"io"
	"os"

	gofpdf "github.com/lvillar/gofpdf"
	"github.com/lvillar/gofpdf/contrib/gofpdi"

	"github.com/tsawler/bindery/model"
)

// ErrRender is returned when a layout cannot be turned into a PDF.
var ErrRender = errors.New("render: cannot produce output")

// cropLineWidth is the stroke width of crop marks, in points.
const cropLineWidth = 0.3

// Order selects how sheet sides are sequenced in the output file.
type Order int

const (
	// Interleaved emits front, back, front, back - the order a duplex
	// printer wants.
	Interleaved Order = iota

	// SideGrouped emits every front, then every back in reverse sheet
	// order - two single-sided passes through the same paper stack.
	SideGrouped
)

// Options configures a renderer.
type Options struct {
	Order Order
}

// Renderer turns an annotated layout into an output document.
type Renderer interface {
	Render(w io.Writer, layout *model.Layout) error
}

// FPDF renders layouts with gofpdf, importing the source file's pages as
// templates.
type FPDF struct {
	inputPath string
	opts      Options
}

// NewFPDF creates a renderer reading page content from the PDF at
// inputPath.
func NewFPDF(inputPath string, opts Options) *FPDF {
	return &FPDF{inputPath: inputPath, opts: opts}
}

// Render writes the rendered layout to w. The layout must have been
// through the mark planner: every non-blank slot needs a draw rectangle
// and the sheet size must be set.
func (r *FPDF) Render(w io.Writer, layout *model.Layout) error {
	pdf, err := r.build(layout)
	if err != nil {
		return err
	}
	return pdf.Output(w)
}

// RenderFile writes the rendered layout to the file at outputPath.
func (r *FPDF) RenderFile(outputPath string, layout *model.Layout) error {
	pdf, err := r.build(layout)
	if err != nil {
		return err
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("render: creating %s: %w", outputPath, err)
	}
	defer f.Close()
	return pdf.Output(f)
}

// Write renders the layout to w with default options.
func Write(w io.Writer, layout *model.Layout, inputPath string) error {
	return NewFPDF(inputPath, Options{}).Render(w, layout)
}

// WriteFile renders the layout to the file at outputPath with default
// options.
func WriteFile(outputPath string, layout *model.Layout, inputPath string) error {
	return NewFPDF(inputPath, Options{}).RenderFile(outputPath, layout)
}

func (r *FPDF) build(layout *model.Layout) (*gofpdf.Fpdf, error) {
	if err := checkAnnotated(layout); err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	imp := gofpdi.NewImporter()
	templates := map[int]int{}

	size := gofpdf.SizeType{Wd: layout.SheetSize.Width, Ht: layout.SheetSize.Height}
	for _, side := range sides(layout, r.opts.Order) {
		pdf.AddPageFormat("P", size)
		for _, slot := range side.Slots {
			if slot.IsBlank() {
				continue
			}
			r.stamp(pdf, imp, templates, slot)
		}
		drawMarks(pdf, side)
	}

	if pdf.Err() {
		return nil, fmt.Errorf("render: %v: %w", pdf.Error(), ErrRender)
	}
	return pdf, nil
}

// sides sequences the sheet sides of a layout per the page-order
// convention.
func sides(layout *model.Layout, order Order) []model.Side {
	sheets := layout.Sheets()
	out := make([]model.Side, 0, 2*len(sheets))
	switch order {
	case SideGrouped:
		for _, sheet := range sheets {
			out = append(out, sheet.Front)
		}
		// Backs in reverse: after the front pass the stack is face up with
		// the last sheet on top.
		for i := len(sheets) - 1; i >= 0; i-- {
			out = append(out, sheets[i].Back)
		}
	default:
		for _, sheet := range sheets {
			out = append(out, sheet.Front, sheet.Back)
		}
	}
	return out
}

// checkAnnotated rejects layouts that skipped the mark planner.
func checkAnnotated(layout *model.Layout) error {
	if !layout.SheetSize.IsValid() {
		return fmt.Errorf("render: layout has no sheet size; annotate it first: %w", ErrRender)
	}
	var bad bool
	layout.EachSlot(func(s model.Slot) {
		if !s.IsBlank() && !s.Rect.IsValid() {
			bad = true
		}
	})
	if bad {
		return fmt.Errorf("render: layout has unplaced slots; annotate it first: %w", ErrRender)
	}
	return nil
}

// stamp draws one source page into its slot, rotating about the rectangle
// center. Templates are cached per source page: duplicate-copy schemas
// stamp the same page several times per sheet.
func (r *FPDF) stamp(pdf *gofpdf.Fpdf, imp *gofpdi.Importer, templates map[int]int, slot model.Slot) {
	tpl, ok := templates[slot.Source]
	if !ok {
		tpl = imp.ImportPage(pdf, r.inputPath, slot.Source+1, "/MediaBox")
		templates[slot.Source] = tpl
	}

	rect := slot.Rect
	switch slot.Rotation {
	case model.Rotate180:
		c := rect.Center()
		pdf.TransformBegin()
		pdf.TransformRotate(-180, c.X, c.Y)
		imp.UseImportedTemplate(pdf, tpl, rect.X, rect.Y, rect.Width, rect.Height)
		pdf.TransformEnd()
	case model.Rotate90, model.Rotate270:
		// The rectangle already has the swapped dimensions; the template is
		// drawn in its natural orientation around the same center, then
		// turned into place.
		angle := -90.0
		if slot.Rotation == model.Rotate270 {
			angle = -270.0
		}
		c := rect.Center()
		pdf.TransformBegin()
		pdf.TransformRotate(angle, c.X, c.Y)
		imp.UseImportedTemplate(pdf, tpl, c.X-rect.Height/2, c.Y-rect.Width/2, rect.Height, rect.Width)
		pdf.TransformEnd()
	default:
		imp.UseImportedTemplate(pdf, tpl, rect.X, rect.Y, rect.Width, rect.Height)
	}
}

func drawMarks(pdf *gofpdf.Fpdf, side model.Side) {
	if len(side.CropMarks) > 0 {
		pdf.SetDrawColor(0, 0, 0)
		pdf.SetLineWidth(cropLineWidth)
		for _, seg := range side.CropMarks {
			pdf.Line(seg.From.X, seg.From.Y, seg.To.X, seg.To.Y)
		}
	}
	if len(side.BindMarks) > 0 {
		pdf.SetFillColor(0, 0, 0)
		for _, mark := range side.BindMarks {
			pdf.Rect(mark.X, mark.Y, mark.Width, mark.Height, "F")
		}
	}
}
