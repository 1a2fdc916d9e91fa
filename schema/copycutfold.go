package schema

import "github.com/tsawler/bindery/model"

// placeCopyCutFold imposes two identical booklet copies per sheet: each
// sheet holds the same saddle fold unit side by side, so cutting the
// printed stack down the middle yields two duplicate folded booklets.
//
// The back side repeats rather than mirrors its halves: under a duplex
// column flip the back of copy 0 lands behind the front of copy 1, which is
// harmless precisely because the copies are identical. Every source index
// therefore appears exactly twice in the layout, once per copy; the Copy
// field tells the halves apart.
func placeCopyCutFold(pageCount int, p Params) (*model.Layout, error) {
	padded := Pad(pageCount, Multiple(CopyCutFold, p))
	pg := newPager(pageCount, padded, p.Last)

	sheets := make([]model.Sheet, 0, padded/4)
	for j := 0; j < padded/4; j++ {
		front := model.NewSide(1, 4)
		back := model.NewSide(1, 4)
		for copyNum := 0; copyNum < 2; copyNum++ {
			off := 2 * copyNum
			front.Slots[off] = model.Slot{Source: pg.page(padded - 1 - 2*j), Copy: copyNum}
			front.Slots[off+1] = model.Slot{Source: pg.page(2 * j), Copy: copyNum}
			back.Slots[off] = model.Slot{Source: pg.page(2*j + 1), Copy: copyNum}
			back.Slots[off+1] = model.Slot{Source: pg.page(padded - 2 - 2*j), Copy: copyNum}
		}
		sheets = append(sheets, model.Sheet{Front: front, Back: back})
	}

	return &model.Layout{
		Signatures: []model.Signature{{Sheets: sheets}},
	}, nil
}
