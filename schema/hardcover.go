package schema

import "github.com/tsawler/bindery/model"

// placeHardcover imposes for perfect/hardcover binding: the document is
// grouped into signatures of 4*Group pages, each signature folded like a
// saddle booklet, and the folded signatures stacked (not nested) in forward
// document order for spine gluing.
//
// Group 0 keeps everything in a single signature, which degenerates to a
// plain saddle fold.
func placeHardcover(pageCount int, p Params) (*model.Layout, error) {
	sigs, err := PadAndSplit(pageCount, Hardcover, p)
	if err != nil {
		return nil, err
	}
	padded := 0
	for _, n := range sigs {
		padded += n
	}
	pg := newPager(pageCount, padded, p.Last)

	layout := &model.Layout{}
	base := 0
	for _, n := range sigs {
		layout.Signatures = append(layout.Signatures, saddleSignature(pg, base, n))
		base += n
	}
	return layout, nil
}
