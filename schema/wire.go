package schema

import "github.com/tsawler/bindery/model"

// placeWire imposes for spiral/wire binding: pages are placed two per cut
// unit (front and back), row-major across a rows-by-cols grid, with a 180
// degree turn on odd columns so adjacent columns share their binding edge.
// The back side mirrors the columns so duplex printing lines each front up
// with its own back. After cutting, the piles stack into reading order with
// no fold involved.
func placeWire(pageCount int, p Params) (*model.Layout, error) {
	m := Multiple(Wire, p)
	padded := Pad(pageCount, m)
	pg := newPager(pageCount, padded, p.Last)

	sheets := make([]model.Sheet, 0, padded/m)
	for s := 0; s < padded/m; s++ {
		front := model.NewSide(p.Rows, p.Cols)
		back := model.NewSide(p.Rows, p.Cols)
		for r := 0; r < p.Rows; r++ {
			for c := 0; c < p.Cols; c++ {
				i := r*p.Cols + c
				front.Slots[front.Index(r, c)] = model.Slot{
					Source:   pg.page(s*m + 2*i),
					Rotation: columnTurn(c),
				}
				mc := p.Cols - 1 - c
				back.Slots[back.Index(r, mc)] = model.Slot{
					Source:   pg.page(s*m + 2*i + 1),
					Rotation: columnTurn(mc),
				}
			}
		}
		sheets = append(sheets, model.Sheet{Front: front, Back: back})
	}

	return &model.Layout{
		Signatures: []model.Signature{{Sheets: sheets}},
	}, nil
}

// columnTurn is the wire rotation law: odd columns turn 180 degrees.
func columnTurn(col int) model.Rotation {
	if col%2 == 1 {
		return model.Rotate180
	}
	return model.Rotate0
}
