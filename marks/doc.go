// Package marks plans the physical geometry of a computed layout: per-slot
// draw rectangles and crop/bind mark positions.
//
// [Annotate] takes the abstract layout produced by the schema engine and a
// sheet geometry, and fills in where on each output sheet every page cell
// is drawn, accounting for outer margins, inner margins between cut lines,
// bleed on cut edges, and progressive creep compensation inside folded
// signatures. It also derives the output sheet size when none is given.
//
// The planner emits positions and line segments only; drawing them is the
// renderer's job. Draw rectangles for distinct slots on the same sheet side
// never overlap - geometry that cannot satisfy this fails before any
// rectangle is produced.
package marks
