package schema

import "github.com/tsawler/bindery/model"

// placeCards imposes a cut grid of independent cards: each sheet front is a
// rows-by-cols grid filled row-major in source order, and the backs stay
// blank. There is no fold; cutting along the grid lines yields single-sided
// cards that read left-to-right, top-to-bottom.
func placeCards(pageCount int, p Params) (*model.Layout, error) {
	m := Multiple(Cards, p)
	padded := Pad(pageCount, m)
	pg := newPager(pageCount, padded, p.Last)

	sheets := make([]model.Sheet, 0, padded/m)
	for s := 0; s < padded/m; s++ {
		front := model.NewSide(p.Rows, p.Cols)
		for r := 0; r < p.Rows; r++ {
			for c := 0; c < p.Cols; c++ {
				front.Slots[front.Index(r, c)].Source = pg.page(s*m + r*p.Cols + c)
			}
		}
		sheets = append(sheets, model.Sheet{
			Front: front,
			Back:  model.NewSide(p.Rows, p.Cols),
		})
	}

	// No fold topology: all sheets form one cut-apart unit.
	return &model.Layout{
		Signatures: []model.Signature{{Sheets: sheets}},
	}, nil
}
