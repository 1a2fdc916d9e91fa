package model

import (
	"errors"
	"fmt"
)

// Point represents a 2D point.
type Point struct {
	X, Y float64
}

// Size represents a width/height pair in points.
type Size struct {
	Width  float64
	Height float64
}

// IsValid returns true if both dimensions are strictly positive.
func (s Size) IsValid() bool {
	return s.Width > 0 && s.Height > 0
}

// Swapped returns the size with width and height exchanged.
func (s Size) Swapped() Size {
	return Size{Width: s.Height, Height: s.Width}
}

// Rect represents an axis-aligned rectangle with a top-left origin.
type Rect struct {
	X      float64 // Left
	Y      float64 // Top
	Width  float64
	Height float64
}

// NewRect creates a rectangle from its top-left corner and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Left returns the left edge X coordinate.
func (r Rect) Left() float64 {
	return r.X
}

// Right returns the right edge X coordinate.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Top returns the top edge Y coordinate.
func (r Rect) Top() float64 {
	return r.Y
}

// Bottom returns the bottom edge Y coordinate.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Center returns the center point.
func (r Rect) Center() Point {
	return Point{
		X: r.X + r.Width/2,
		Y: r.Y + r.Height/2,
	}
}

// Intersects checks if two rectangles overlap with positive area.
// Rectangles that merely share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.Right() > other.Left() &&
		r.Left() < other.Right() &&
		r.Bottom() > other.Top() &&
		r.Top() < other.Bottom()
}

// IsValid returns true if the rectangle has positive dimensions.
func (r Rect) IsValid() bool {
	return r.Width > 0 && r.Height > 0
}

// Segment is a straight line segment, used for crop and fold marks.
type Segment struct {
	From Point
	To   Point
}

// Margins holds the four outer margins of a sheet.
type Margins struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// UniformMargins returns margins with the same value on all four sides.
func UniformMargins(v float64) Margins {
	return Margins{Top: v, Right: v, Bottom: v, Left: v}
}

// Horizontal returns the sum of the left and right margins.
func (m Margins) Horizontal() float64 {
	return m.Left + m.Right
}

// Vertical returns the sum of the top and bottom margins.
func (m Margins) Vertical() float64 {
	return m.Top + m.Bottom
}

// Rotation is a discrete page rotation in degrees.
type Rotation int

// The rotation set available to imposition schemas.
const (
	Rotate0   Rotation = 0
	Rotate90  Rotation = 90
	Rotate180 Rotation = 180
	Rotate270 Rotation = 270
)

// Add composes two rotations.
func (r Rotation) Add(other Rotation) Rotation {
	return ((r + other) % 360 + 360) % 360
}

// SwapsAxes returns true if the rotation exchanges a page's width and height.
func (r Rotation) SwapsAxes() bool {
	return r == Rotate90 || r == Rotate270
}

// IsValid returns true if the rotation is one of the four discrete values.
func (r Rotation) IsValid() bool {
	switch r {
	case Rotate0, Rotate90, Rotate180, Rotate270:
		return true
	}
	return false
}

// ErrGeometry is returned when sheet geometry parameters are out of range.
var ErrGeometry = errors.New("model: invalid sheet geometry")

// SheetGeometry holds the physical parameters of an output sheet.
//
// Sheet may be left zero, in which case the mark planner derives the sheet
// size from the page size, grid and margins. The spine gap of a sheet
// nested above x other sheets in a folded signature is
// CreepBase + CreepPerSheet*x, so the outermost sheet gets the widest gap.
type SheetGeometry struct {
	Sheet         Size    // physical sheet size; zero means derived
	Margin        Margins // outer margins
	InnerMargin   float64 // spacing between adjacent imposed pages
	Bleed         float64 // extra draw area beyond the trim line
	CreepPerSheet float64 // progressive shift per nested sheet
	CreepBase     float64 // constant part of the spine gap
}

// Validate checks the geometry invariants: all dimensions non-negative, an
// explicit sheet size strictly positive, and margins plus bleed no more than
// half the relevant sheet dimension.
func (g SheetGeometry) Validate() error {
	if g.Margin.Top < 0 || g.Margin.Right < 0 || g.Margin.Bottom < 0 || g.Margin.Left < 0 {
		return fmt.Errorf("margins must be non-negative: %w", ErrGeometry)
	}
	if g.InnerMargin < 0 {
		return fmt.Errorf("inner margin must be non-negative: %w", ErrGeometry)
	}
	if g.Bleed < 0 {
		return fmt.Errorf("bleed must be non-negative: %w", ErrGeometry)
	}
	if g.CreepPerSheet < 0 || g.CreepBase < 0 {
		return fmt.Errorf("creep must be non-negative: %w", ErrGeometry)
	}
	if g.Sheet != (Size{}) {
		if !g.Sheet.IsValid() {
			return fmt.Errorf("sheet size must be positive: %w", ErrGeometry)
		}
		if g.Margin.Horizontal()+2*g.Bleed > g.Sheet.Width ||
			g.Margin.Vertical()+2*g.Bleed > g.Sheet.Height {
			return fmt.Errorf("margins and bleed exceed sheet size: %w", ErrGeometry)
		}
		if g.Margin.Left+g.Bleed > g.Sheet.Width/2 ||
			g.Margin.Right+g.Bleed > g.Sheet.Width/2 ||
			g.Margin.Top+g.Bleed > g.Sheet.Height/2 ||
			g.Margin.Bottom+g.Bleed > g.Sheet.Height/2 {
			return fmt.Errorf("margins and bleed exceed half the sheet dimension: %w", ErrGeometry)
		}
	}
	return nil
}
