package render

import (
	"fmt"

	gofpdf "github.com/lvillar/gofpdf"
	"github.com/lvillar/gofpdf/contrib/gofpdi"
	"github.com/lvillar/gofpdf/reader"

	"github.com/tsawler/bindery/model"
)

// Probe reads the page count and per-page media box sizes of the PDF at
// path, without rendering anything.
func Probe(path string) (*model.Document, error) {
	doc, err := reader.Open(path)
	if err != nil {
		return nil, fmt.Errorf("render: reading %s: %w", path, err)
	}
	count := doc.NumPages()
	if count == 0 {
		return model.NewDocument(nil), nil
	}

	// Importing one page makes the importer parse every page's boxes.
	pdf := gofpdf.New("P", "pt", "A4", "")
	imp := gofpdi.NewImporter()
	imp.ImportPage(pdf, path, 1, "/MediaBox")
	sizes := imp.GetPageSizes()

	pages := make([]model.SourcePage, count)
	prev := model.Size{Width: 595.28, Height: 841.89}
	for i := 1; i <= count; i++ {
		size := prev
		if mb, ok := sizes[i]["/MediaBox"]; ok && mb["w"] > 0 && mb["h"] > 0 {
			size = model.Size{Width: mb["w"], Height: mb["h"]}
		}
		pages[i-1] = model.SourcePage{Index: i - 1, Width: size.Width, Height: size.Height}
		prev = size
	}
	return model.NewDocument(pages), nil
}
