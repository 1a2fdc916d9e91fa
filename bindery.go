// Package bindery provides a fluent API for PDF imposition: rearranging the
// pages of a document onto larger sheets so that, once printed, cut, folded
// and bound, the sheets read as the original document.
//
// Basic usage:
//
//	err := bindery.Open("zine.pdf").
//	    Schema(schema.Saddle).
//	    Write("zine-impose.pdf")
//
// With options:
//
//	err := bindery.Open("book.pdf").
//	    Schema(schema.Hardcover).
//	    Group(4).
//	    Margin(model.UniformMargins(20)).
//	    CropMarks().
//	    Write("book-impose.pdf")
//
// For lower-level control the schema, marks and render packages are also
// available.
package bindery

import (
	"github.com/tsawler/bindery/model"
)

// Open prepares an imposition of the PDF file at filename. Configuration
// methods return new Imposer instances; nothing is read until a terminal
// operation runs.
//
// Example:
//
//	layout, err := bindery.Open("doc.pdf").Schema(schema.Cards).Plan()
func Open(filename string) *Imposer {
	return &Imposer{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromDocument prepares an imposition of an already-probed document
// descriptor. Only Plan is available as a terminal operation: rendering
// needs the source file itself.
func FromDocument(doc *model.Document) *Imposer {
	return &Imposer{
		doc:     doc,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	layout := bindery.Must(bindery.Open("doc.pdf").Plan())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
