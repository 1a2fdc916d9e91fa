// Package render turns an annotated layout into a physical PDF.
//
// It imports source pages as templates and stamps each one into its slot's
// draw rectangle, applying the slot's rotation, then strokes the planned
// crop marks and fills the collation marks. Output sheets are emitted in
// print order: the front of each sheet immediately followed by its back, so
// the file prints directly on a duplex device.
//
// [Probe] is the companion entry point: it reads page count and page sizes
// from a source file without rendering anything.
package render
