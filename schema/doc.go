// Package schema implements the imposition layout engine: one deterministic
// placement law per binding schema.
//
// A schema maps every printed-sheet position (sheet, side, row, column) to a
// source page index or a blank, so that cutting, folding and binding the
// printed sheets per the schema's physical topology reconstructs the
// document's reading order. The supported schemas are:
//
//   - [Cards] - independent cut cards, row-major, no fold
//   - [Saddle] - nested folded sheets, stapled through the spine
//   - [CutStackFold] - cut into stacks, each stack folded like a booklet
//   - [CopyCutFold] - two identical booklet copies per sheet, cut apart
//   - [OnePageZine] - single-sheet accordion fold, serpentine panel order
//   - [Hardcover] - stacked saddle signatures, glued spine
//   - [Wire] - two-up cut pages, spiral/wire bound, no fold
//
// Placement is a pure function of the padded page count and the imposition
// parameters: no randomness, no external state. Every real source index
// appears in exactly one slot per booklet copy; blanks fill the padding.
// Use [Plan] to run the padding/signature splitter and the placement law in
// one step:
//
//	layout, err := schema.Plan(12, schema.Saddle, schema.Params{})
//
// All failures are detected before any rendering is attempted and wrap one
// of the sentinel errors [ErrConfiguration], [ErrUnsupportedGeometry],
// [ErrPageOverflow] or [ErrEmptyDocument].
package schema
