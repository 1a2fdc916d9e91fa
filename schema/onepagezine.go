package schema

import "github.com/tsawler/bindery/model"

// placeOnePageZine imposes a one-sheet accordion booklet: every page lands
// on the front of a single sheet, ordered along a boustrophedon path that
// starts at the bottom-left panel, runs left-to-right, then climbs one row
// and runs back right-to-left with the panels turned 180 degrees. A single
// accordion fold along the rows then yields correct reading order without
// any binding. The back of the sheet stays free, typically for a poster.
//
// The sheet is the hard ceiling: a document with more pages than panels
// fails with ErrPageOverflow during validation.
func placeOnePageZine(pageCount int, p Params) (*model.Layout, error) {
	padded := Pad(pageCount, Multiple(OnePageZine, p))
	pg := newPager(pageCount, padded, p.Last)

	front := model.NewSide(p.Rows, p.Cols)
	panel := 0
	for pass := 0; pass < p.Rows; pass++ {
		r := p.Rows - 1 - pass // bottom row first
		if pass%2 == 0 {
			for c := 0; c < p.Cols; c++ {
				front.Slots[front.Index(r, c)].Source = pg.page(panel)
				panel++
			}
		} else {
			for c := p.Cols - 1; c >= 0; c-- {
				front.Slots[front.Index(r, c)] = model.Slot{
					Source:   pg.page(panel),
					Rotation: model.Rotate180,
				}
				panel++
			}
		}
	}

	sheet := model.Sheet{
		Front: front,
		Back:  model.NewSide(p.Rows, p.Cols),
	}
	return &model.Layout{
		Signatures: []model.Signature{{Sheets: []model.Sheet{sheet}}},
	}, nil
}
