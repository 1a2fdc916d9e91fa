package marks

import (
	"fmt"

	"github.com/tsawler/bindery/model"
	"github.com/tsawler/bindery/schema"
)

// cropGap is the standoff between a crop mark and the trim line.
const cropGap = 5.0

// bindMarkWidth is the thickness of a collation mark on a signature spine.
const bindMarkWidth = 2.0

// Options selects which marks the planner emits.
type Options struct {
	CropMarks bool
	BindMarks bool // collation ladder on hardcover spines
}

// Annotate returns a copy of the layout with every slot's draw rectangle
// computed and the requested marks planned. The input layout is not
// modified. The page argument is the trim size of one source page.
func Annotate(layout *model.Layout, page model.Size, geom model.SheetGeometry, opts Options) (*model.Layout, error) {
	if !page.IsValid() {
		return nil, fmt.Errorf("marks: page size %gx%g must be positive: %w",
			page.Width, page.Height, schema.ErrConfiguration)
	}
	if err := geom.Validate(); err != nil {
		return nil, fmt.Errorf("marks: %w", err)
	}

	out := cloneLayout(layout)
	out.PageSize = page

	p := newPlanner(out, page, geom)
	if err := p.validate(); err != nil {
		return nil, err
	}

	sheetSize := p.sheetSize()
	if geom.Sheet != (model.Size{}) {
		if sheetSize.Width > geom.Sheet.Width || sheetSize.Height > geom.Sheet.Height {
			return nil, fmt.Errorf("marks: imposed content %gx%g does not fit sheet %gx%g: %w",
				sheetSize.Width, sheetSize.Height, geom.Sheet.Width, geom.Sheet.Height,
				schema.ErrConfiguration)
		}
		sheetSize = geom.Sheet
	}
	out.SheetSize = sheetSize

	globalSheet := 0
	for si := range out.Signatures {
		sig := &out.Signatures[si]
		for depth := range sig.Sheets {
			sheet := &sig.Sheets[depth]
			p.placeSide(&sheet.Front, depth, len(sig.Sheets))
			p.placeSide(&sheet.Back, depth, len(sig.Sheets))
			if opts.CropMarks {
				p.cropMarks(&sheet.Front, sheetSize)
				p.cropMarks(&sheet.Back, sheetSize)
			}
			if opts.BindMarks && schema.ID(out.Schema) == schema.Hardcover {
				p.bindMark(&sheet.Front, globalSheet, out.SheetCount(), depth, len(sig.Sheets))
			}
			globalSheet++
		}
	}
	return out, nil
}

// planner carries the per-run placement parameters.
type planner struct {
	geom   model.SheetGeometry
	cell   model.Size // page cell size after any axis swap
	paired bool       // two-page fold units sharing a spine
	rows   int
	cols   int // page columns per side
	units  int // fold units per row (cols/2 when paired)
	depths int // deepest signature, for creep allowance
}

func newPlanner(layout *model.Layout, page model.Size, geom model.SheetGeometry) *planner {
	p := &planner{geom: geom, cell: page}

	switch schema.ID(layout.Schema) {
	case schema.Saddle, schema.Hardcover, schema.CopyCutFold, schema.CutStackFold:
		p.paired = true
	}

	if first := firstSide(layout); first != nil {
		p.rows, p.cols = first.Rows, first.Cols
		if len(first.Slots) > 0 && first.Slots[0].Rotation.SwapsAxes() {
			p.cell = page.Swapped()
		}
	}
	p.units = p.cols
	if p.paired {
		p.units = p.cols / 2
	}

	for _, sig := range layout.Signatures {
		if len(sig.Sheets) > p.depths {
			p.depths = len(sig.Sheets)
		}
	}
	return p
}

func firstSide(layout *model.Layout) *model.Side {
	for si := range layout.Signatures {
		for hi := range layout.Signatures[si].Sheets {
			return &layout.Signatures[si].Sheets[hi].Front
		}
	}
	return nil
}

// validate rejects geometry that would make bleed rectangles of adjacent
// cells overlap across a cut line, or bleed spill past the sheet edge.
func (p *planner) validate() error {
	g := p.geom
	if g.Bleed > 0 {
		if (p.units > 1 || p.rows > 1) && g.InnerMargin < 2*g.Bleed {
			return fmt.Errorf("marks: inner margin %g cannot absorb bleed %g on both sides of a cut: %w",
				g.InnerMargin, g.Bleed, schema.ErrConfiguration)
		}
		if g.Bleed > g.Margin.Left || g.Bleed > g.Margin.Right ||
			g.Bleed > g.Margin.Top || g.Bleed > g.Margin.Bottom {
			return fmt.Errorf("marks: bleed %g exceeds an outer margin: %w", g.Bleed, schema.ErrConfiguration)
		}
	}
	return nil
}

// spineAllowance is the widest spine gap any sheet of the run needs; sheet
// sizing uses it so every sheet of the run comes out the same size.
func (p *planner) spineAllowance() float64 {
	if !p.paired {
		return 0
	}
	a := p.geom.CreepBase
	if p.depths >= 2 {
		a += p.geom.CreepPerSheet * float64(p.depths-1)
	}
	return a
}

// spineGap is the gap a sheet at the given nesting depth gets between the
// two pages of its fold unit. The outermost sheet wraps the most paper, so
// it gets the widest gap; each sheet inward loses one creep increment.
func (p *planner) spineGap(depth, sigSheets int) float64 {
	if !p.paired {
		return 0
	}
	return p.geom.CreepBase + p.geom.CreepPerSheet*float64(sigSheets-1-depth)
}

// unitWidth is the horizontal space reserved for one fold unit (or one page
// column when there is no fold).
func (p *planner) unitWidth() float64 {
	if p.paired {
		return 2*p.cell.Width + p.spineAllowance()
	}
	return p.cell.Width
}

// sheetSize derives the output sheet size from the grid and geometry.
func (p *planner) sheetSize() model.Size {
	w := p.geom.Margin.Horizontal() +
		float64(p.units)*p.unitWidth() +
		float64(p.units-1)*p.geom.InnerMargin
	h := p.geom.Margin.Vertical() +
		float64(p.rows)*p.cell.Height +
		float64(p.rows-1)*p.geom.InnerMargin
	return model.Size{Width: w, Height: h}
}

// placeSide fills in the draw rectangle of every slot on one side.
//
// Creep compensation: the outermost sheet of a folded signature wraps the
// most paper, so it gets the full spine gap; each sheet inward loses one
// creep increment, pulling its pages toward the spine.
func (p *planner) placeSide(side *model.Side, depth, sigSheets int) {
	spineGap := p.spineGap(depth, sigSheets)

	for r := 0; r < side.Rows; r++ {
		y := p.geom.Margin.Top + float64(r)*(p.cell.Height+p.geom.InnerMargin)
		for c := 0; c < side.Cols; c++ {
			var x float64
			if p.paired {
				unit := c / 2
				unitX := p.geom.Margin.Left + float64(unit)*(p.unitWidth()+p.geom.InnerMargin)
				if c%2 == 0 {
					x = unitX
				} else {
					x = unitX + p.cell.Width + spineGap
				}
			} else {
				x = p.geom.Margin.Left + float64(c)*(p.cell.Width+p.geom.InnerMargin)
			}

			rect := model.NewRect(x, y, p.cell.Width, p.cell.Height)
			if p.geom.Bleed > 0 {
				rect = p.bleedRect(rect, c)
			}
			side.Slots[side.Index(r, c)].Rect = rect
		}
	}
}

// bleedRect expands a cell rectangle by the bleed on its cut edges. Fold
// (spine) edges keep their exact position: bleed across a fold would print
// onto the facing page.
func (p *planner) bleedRect(rect model.Rect, col int) model.Rect {
	b := p.geom.Bleed
	left, right := b, b
	if p.paired {
		if col%2 == 0 {
			right = 0 // spine on the right
		} else {
			left = 0 // spine on the left
		}
	}
	return model.Rect{
		X:      rect.X - left,
		Y:      rect.Y - b,
		Width:  rect.Width + left + right,
		Height: rect.Height + 2*b,
	}
}

// cropMarks emits trim/cut segments at every vertical and horizontal cut
// line, drawn from the sheet edge toward the content and stopped short of
// the trim line by a small standoff.
func (p *planner) cropMarks(side *model.Side, sheet model.Size) {
	topLen := p.geom.Margin.Top - cropGap
	bottomLen := p.geom.Margin.Bottom - cropGap
	leftLen := p.geom.Margin.Left - cropGap
	rightLen := p.geom.Margin.Right - cropGap

	var segs []model.Segment
	for u := 0; u < p.units; u++ {
		unitX := p.geom.Margin.Left + float64(u)*(p.unitWidth()+p.geom.InnerMargin)
		for _, x := range []float64{unitX, unitX + p.unitWidth()} {
			if topLen > 0 {
				segs = append(segs, model.Segment{
					From: model.Point{X: x, Y: 0},
					To:   model.Point{X: x, Y: topLen},
				})
			}
			if bottomLen > 0 {
				segs = append(segs, model.Segment{
					From: model.Point{X: x, Y: sheet.Height},
					To:   model.Point{X: x, Y: sheet.Height - bottomLen},
				})
			}
		}
	}
	for r := 0; r < p.rows; r++ {
		rowY := p.geom.Margin.Top + float64(r)*(p.cell.Height+p.geom.InnerMargin)
		for _, y := range []float64{rowY, rowY + p.cell.Height} {
			if leftLen > 0 {
				segs = append(segs, model.Segment{
					From: model.Point{X: 0, Y: y},
					To:   model.Point{X: leftLen, Y: y},
				})
			}
			if rightLen > 0 {
				segs = append(segs, model.Segment{
					From: model.Point{X: sheet.Width, Y: y},
					To:   model.Point{X: sheet.Width - rightLen, Y: y},
				})
			}
		}
	}
	side.CropMarks = segs
}

// bindMark plans one collation mark on the spine of a sheet front. The
// marks step down the spine sheet by sheet, so a mis-gathered book shows a
// broken ladder at a glance. The mark is centered on this sheet's own
// spine gap, which narrows toward inner sheets under creep.
func (p *planner) bindMark(side *model.Side, sheetIndex, totalSheets, depth, sigSheets int) {
	step := p.cell.Height / float64(totalSheets+2)
	if step > 28 {
		step = 28
	}
	spineX := p.geom.Margin.Left + p.cell.Width + p.spineGap(depth, sigSheets)/2
	y := p.geom.Margin.Top + step*float64(sheetIndex+1)
	side.BindMarks = append(side.BindMarks, model.NewRect(
		spineX-bindMarkWidth/2, y, bindMarkWidth, step/2,
	))
}

// cloneLayout deep-copies a layout so annotation never aliases the engine's
// output.
func cloneLayout(layout *model.Layout) *model.Layout {
	out := &model.Layout{
		Schema:    layout.Schema,
		PageSize:  layout.PageSize,
		SheetSize: layout.SheetSize,
	}
	out.Signatures = make([]model.Signature, len(layout.Signatures))
	for si, sig := range layout.Signatures {
		sheets := make([]model.Sheet, len(sig.Sheets))
		for hi, sheet := range sig.Sheets {
			sheets[hi] = model.Sheet{
				Front: cloneSide(sheet.Front),
				Back:  cloneSide(sheet.Back),
			}
		}
		out.Signatures[si] = model.Signature{Sheets: sheets}
	}
	return out
}

func cloneSide(side model.Side) model.Side {
	out := side
	out.Slots = make([]model.Slot, len(side.Slots))
	copy(out.Slots, side.Slots)
	out.CropMarks = nil
	out.BindMarks = nil
	return out
}
