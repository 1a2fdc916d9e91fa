// Package model provides the intermediate representation (IR) shared by every
// stage of an imposition run.
//
// This package defines the value types that flow from the schema engine,
// through the mark planner, to the renderer. All placement operations
// ultimately produce these types, making them the primary API for consuming
// computed layouts.
//
// # Page/Slot Structure
//
// A [Layout] is the terminal artifact of a run: an ordered list of
// [Signature] groups, each holding the [Sheet] values that are cut, folded
// and bound together as one physical unit. Every sheet has a front and a
// back [Side], and every side is a fixed rows-by-columns grid of [Slot]
// values. A slot names the source page placed there (or [Blank]), its
// rotation, and - once the mark planner has run - the rectangle it is drawn
// into.
//
// # Geometry
//
// Geometric primitives support position and layout calculations:
//
//   - [Rect] - axis-aligned rectangle with intersection checks
//   - [Point] - 2D point
//   - [Size] - width/height pair
//   - [Margins] - four-sided page margins
//   - [SheetGeometry] - the physical parameters of an output sheet
//
// All lengths are PostScript points (1/72 inch). Coordinates use a top-left
// origin, matching the renderer's coordinate system.
//
// # Source Documents
//
// The [Document] type is an immutable descriptor of the source document:
// page count and natural page sizes. The engine never reads page content;
// copying content into slots is the renderer's job.
package model
