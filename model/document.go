package model

// SourcePage describes one page of the source document: its 0-based index
// and natural size in points.
type SourcePage struct {
	Index  int
	Width  float64
	Height float64
}

// Document is an immutable descriptor of a source document. It carries page
// count and page sizes only; content stays with the renderer.
type Document struct {
	pages []SourcePage
}

// NewDocument creates a document descriptor from per-page sizes.
func NewDocument(pages []SourcePage) *Document {
	copied := make([]SourcePage, len(pages))
	copy(copied, pages)
	return &Document{pages: copied}
}

// UniformDocument creates a descriptor for a document whose pages all share
// the same size.
func UniformDocument(pageCount int, size Size) *Document {
	pages := make([]SourcePage, pageCount)
	for i := range pages {
		pages[i] = SourcePage{Index: i, Width: size.Width, Height: size.Height}
	}
	return &Document{pages: pages}
}

// PageCount returns the number of source pages.
func (d *Document) PageCount() int {
	return len(d.pages)
}

// Page returns the descriptor for a 0-based page index.
func (d *Document) Page(i int) SourcePage {
	return d.pages[i]
}

// Size returns the trim size shared by the document's pages. Imposition
// assumes a uniform page size; the first page is authoritative.
func (d *Document) Size() Size {
	if len(d.pages) == 0 {
		return Size{}
	}
	return Size{Width: d.pages[0].Width, Height: d.pages[0].Height}
}
