package schema

import (
	"errors"
	"fmt"

	"github.com/tsawler/bindery/model"
)

// ID identifies an imposition schema.
type ID string

// The closed set of supported schemas.
const (
	Cards        ID = "cards"
	Saddle       ID = "saddle"
	CutStackFold ID = "cutstackfold"
	CopyCutFold  ID = "copycutfold"
	OnePageZine  ID = "onepagezine"
	Hardcover    ID = "hardcover"
	Wire         ID = "wire"
)

// IDs returns every supported schema identifier, in stable order.
func IDs() []ID {
	return []ID{Cards, CopyCutFold, CutStackFold, Hardcover, OnePageZine, Saddle, Wire}
}

// Valid returns true if id names a supported schema.
func (id ID) Valid() bool {
	switch id {
	case Cards, Saddle, CutStackFold, CopyCutFold, OnePageZine, Hardcover, Wire:
		return true
	}
	return false
}

// Edge is the binding edge of the finished document.
type Edge string

// Binding edges. The zero value defaults to BindLeft.
const (
	BindLeft   Edge = "left"
	BindTop    Edge = "top"
	BindRight  Edge = "right"
	BindBottom Edge = "bottom"
)

// Valid returns true if the edge is recognized (the empty edge counts as
// left).
func (e Edge) Valid() bool {
	switch e {
	case "", BindLeft, BindTop, BindRight, BindBottom:
		return true
	}
	return false
}

// Angle returns the whole-layout rotation a binding edge implies.
func (e Edge) Angle() model.Rotation {
	switch e {
	case BindTop:
		return model.Rotate90
	case BindRight:
		return model.Rotate180
	case BindBottom:
		return model.Rotate270
	default:
		return model.Rotate0
	}
}

// Sentinel errors for the failure taxonomy. Every error returned by this
// package wraps one of these.
var (
	ErrConfiguration       = errors.New("schema: invalid configuration")
	ErrUnsupportedGeometry = errors.New("schema: geometry cannot realize fold topology")
	ErrPageOverflow        = errors.New("schema: page count exceeds schema ceiling")
	ErrEmptyDocument       = errors.New("schema: document has no pages")
)

// Params holds the imposition parameters of a run. The zero value is usable:
// every schema fills in its own defaults.
type Params struct {
	// Rows and Cols give the grid of fold units per sheet side for the
	// grid-based schemas (cards, cutstackfold, onepagezine, wire). Saddle,
	// copycutfold and hardcover fix their own grid.
	Rows int
	Cols int

	// Last marks the final N source pages as a distinguished trailing group
	// (a back cover, typically). Padding blanks are inserted before this
	// group so it stays at the very end of the document.
	Last int

	// Group is the number of sheets folded together per hardcover
	// signature. 0 means a single signature holding the whole document.
	Group int

	// MaxSignature caps the pages per saddle signature (a multiple of 4).
	// 0 means one signature holding the whole document. The final signature
	// may be shorter: saddle supports partial signatures.
	MaxSignature int

	// Bind is the binding edge; the empty value means left.
	Bind Edge
}

// normalized returns a copy of p with schema defaults applied.
func (p Params) normalized(id ID) Params {
	switch id {
	case Saddle, CopyCutFold, Hardcover:
		p.Rows, p.Cols = 1, 1
	case OnePageZine:
		if p.Rows == 0 && p.Cols == 0 {
			p.Rows, p.Cols = 2, 4
		}
	default:
		if p.Rows == 0 {
			p.Rows = 1
		}
		if p.Cols == 0 {
			p.Cols = 1
		}
	}
	if p.Bind == "" {
		p.Bind = BindLeft
	}
	return p
}

// validate checks the normalized parameters against the schema's
// constraints.
func (p Params) validate(id ID, pageCount int) error {
	if p.Rows < 1 || p.Cols < 1 {
		return fmt.Errorf("schema %q: grid %dx%d must be at least 1x1: %w", id, p.Rows, p.Cols, ErrConfiguration)
	}
	if p.Last < 0 {
		return fmt.Errorf("schema %q: last-page group %d must be non-negative: %w", id, p.Last, ErrConfiguration)
	}
	if p.Last > pageCount {
		return fmt.Errorf("schema %q: last-page group %d exceeds page count %d: %w", id, p.Last, pageCount, ErrConfiguration)
	}
	if !p.Bind.Valid() {
		return fmt.Errorf("schema %q: unknown binding edge %q: %w", id, p.Bind, ErrConfiguration)
	}
	switch id {
	case Saddle:
		if p.MaxSignature != 0 && (p.MaxSignature < 4 || p.MaxSignature%4 != 0) {
			return fmt.Errorf("schema %q: signature cap %d must be a positive multiple of 4: %w",
				id, p.MaxSignature, ErrConfiguration)
		}
	case Hardcover:
		if p.Group < 0 {
			return fmt.Errorf("schema %q: group %d must be non-negative: %w", id, p.Group, ErrConfiguration)
		}
	case OnePageZine:
		if p.Cols < 2 {
			return fmt.Errorf("schema %q: accordion fold needs at least 2 columns, got %d: %w",
				id, p.Cols, ErrUnsupportedGeometry)
		}
		if (p.Rows*p.Cols)%2 != 0 {
			return fmt.Errorf("schema %q: %dx%d gives an odd panel count, which cannot fold closed: %w",
				id, p.Rows, p.Cols, ErrUnsupportedGeometry)
		}
		if pageCount > p.Rows*p.Cols {
			return fmt.Errorf("schema %q: %d pages exceed the %d panels of one sheet: %w",
				id, pageCount, p.Rows*p.Cols, ErrPageOverflow)
		}
	}
	return nil
}

// Plan pads the page count, splits it into signatures and applies the
// schema's placement law, producing a complete layout (without draw
// rectangles; see the marks package for those).
func Plan(pageCount int, id ID, p Params) (*model.Layout, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("unknown schema %q: %w", id, ErrConfiguration)
	}
	if pageCount <= 0 {
		return nil, fmt.Errorf("schema %q requires at least one page, got %d: %w", id, pageCount, ErrEmptyDocument)
	}
	p = p.normalized(id)
	if err := p.validate(id, pageCount); err != nil {
		return nil, err
	}

	var (
		layout *model.Layout
		err    error
	)
	switch id {
	case Cards:
		layout, err = placeCards(pageCount, p)
	case Saddle:
		layout, err = placeSaddle(pageCount, p)
	case CutStackFold:
		layout, err = placeCutStackFold(pageCount, p)
	case CopyCutFold:
		layout, err = placeCopyCutFold(pageCount, p)
	case OnePageZine:
		layout, err = placeOnePageZine(pageCount, p)
	case Hardcover:
		layout, err = placeHardcover(pageCount, p)
	case Wire:
		layout, err = placeWire(pageCount, p)
	}
	if err != nil {
		return nil, err
	}

	layout.Schema = string(id)
	if angle := p.Bind.Angle(); angle != model.Rotate0 {
		rotateLayout(layout, angle)
	}
	return layout, nil
}

// rotateLayout adds a whole-layout rotation to every slot, the way a
// binding edge other than left turns the imposition matrix.
func rotateLayout(layout *model.Layout, angle model.Rotation) {
	for si := range layout.Signatures {
		for hi := range layout.Signatures[si].Sheets {
			sheet := &layout.Signatures[si].Sheets[hi]
			for i := range sheet.Front.Slots {
				sheet.Front.Slots[i].Rotation = sheet.Front.Slots[i].Rotation.Add(angle)
			}
			for i := range sheet.Back.Slots {
				sheet.Back.Slots[i].Rotation = sheet.Back.Slots[i].Rotation.Add(angle)
			}
		}
	}
}

// pager maps padded page positions to source indexes, inserting the padding
// blanks just before the trailing last-page group.
type pager struct {
	cut    int // first padded position that belongs to the blank run
	blanks int
}

func newPager(pageCount, padded, last int) pager {
	return pager{cut: pageCount - last, blanks: padded - pageCount}
}

// page returns the source index at padded position i, or model.Blank.
func (p pager) page(i int) int {
	switch {
	case i < p.cut:
		return i
	case i < p.cut+p.blanks:
		return model.Blank
	default:
		return i - p.blanks
	}
}
