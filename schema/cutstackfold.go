package schema

import "github.com/tsawler/bindery/model"

// placeCutStackFold imposes the cut-stack-fold schema: every sheet side is
// a rows-by-cols grid of two-page fold units (so 2*cols page columns).
// Cutting the printed stack along the grid lines yields rows*cols piles;
// pile i, taken across the sheets in print order, is a saddle signature
// covering pages [i*S, (i+1)*S) where S is the pile's page span. Each pile
// is then folded like a booklet and the folded piles are stacked (not
// nested) in row-major pile order.
func placeCutStackFold(pageCount int, p Params) (*model.Layout, error) {
	units := p.Rows * p.Cols
	m := Multiple(CutStackFold, p) // 4 pages per fold unit per sheet
	padded := Pad(pageCount, m)
	pg := newPager(pageCount, padded, p.Last)

	span := padded / units // pages per pile, a multiple of 4
	sheetCount := span / 4

	sheets := make([]model.Sheet, 0, sheetCount)
	for j := 0; j < sheetCount; j++ {
		front := model.NewSide(p.Rows, 2*p.Cols)
		back := model.NewSide(p.Rows, 2*p.Cols)
		for r := 0; r < p.Rows; r++ {
			for c := 0; c < p.Cols; c++ {
				base := (r*p.Cols + c) * span

				// Saddle pairing within the pile: sheet j carries
				// (span-1-2j, 2j) on the front of its fold unit.
				front.Slots[front.Index(r, 2*c)].Source = pg.page(base + span - 1 - 2*j)
				front.Slots[front.Index(r, 2*c+1)].Source = pg.page(base + 2*j)

				// The back mirrors the fold-unit columns so duplex printing
				// lines each front unit up with its own back.
				mc := p.Cols - 1 - c
				back.Slots[back.Index(r, 2*mc)].Source = pg.page(base + 2*j + 1)
				back.Slots[back.Index(r, 2*mc+1)].Source = pg.page(base + span - 2 - 2*j)
			}
		}
		sheets = append(sheets, model.Sheet{Front: front, Back: back})
	}

	// The sheets are cut as one unit; the piles only become independent
	// afterwards.
	return &model.Layout{
		Signatures: []model.Signature{{Sheets: sheets}},
	}, nil
}
