package schema

import "github.com/tsawler/bindery/model"

// saddleSignature builds the nested sheets of one folded signature covering
// n padded pages starting at position base.
//
// Sheet i of the signature carries, relative to the signature's page range,
// pages (n-1-2i, 2i) on the front and (2i+1, n-2-2i) on the back. Folding
// the nested stack in half puts page 0 on the outside front and restores
// reading order through the spine.
func saddleSignature(pg pager, base, n int) model.Signature {
	sheets := make([]model.Sheet, 0, n/4)
	for i := 0; i < n/4; i++ {
		front := model.NewSide(1, 2)
		back := model.NewSide(1, 2)
		front.Slots[0].Source = pg.page(base + n - 1 - 2*i)
		front.Slots[1].Source = pg.page(base + 2*i)
		back.Slots[0].Source = pg.page(base + 2*i + 1)
		back.Slots[1].Source = pg.page(base + n - 2 - 2*i)
		sheets = append(sheets, model.Sheet{Front: front, Back: back})
	}
	return model.Signature{Sheets: sheets}
}

// placeSaddle imposes a saddle-stitched booklet: nested folded sheets
// stapled through the spine. With MaxSignature set, the document is split
// into consecutive signatures that are folded separately and stacked; the
// final signature may be shorter.
func placeSaddle(pageCount int, p Params) (*model.Layout, error) {
	sigs, err := PadAndSplit(pageCount, Saddle, p)
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
