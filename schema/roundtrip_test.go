package schema

import (
	"testing"

	"github.com/tsawler/bindery/model"
)

// These tests validate the pagination laws by simulating the physical
// transform each schema declares - folding nested sheets, cutting piles
// apart, stacking signatures - and checking that the simulated booklet
// reads 0..n-1.

// unfoldSaddle reads a nested folded signature back into linear order:
// down the fronts and inner-left pages, then back out through the
// inner-right and outer-left pages.
func unfoldSaddle(sig model.Signature) []int {
	var seq []int
	for _, sheet := range sig.Sheets {
		seq = append(seq, sheet.Front.Slots[1].Source, sheet.Back.Slots[0].Source)
	}
	for i := len(sig.Sheets) - 1; i >= 0; i-- {
		sheet := sig.Sheets[i]
		seq = append(seq, sheet.Back.Slots[1].Source, sheet.Front.Slots[0].Source)
	}
	return seq
}

// dropBlanks filters padding blanks out of a simulated reading order.
func dropBlanks(seq []int) []int {
	var out []int
	for _, n := range seq {
		if n != model.Blank {
			out = append(out, n)
		}
	}
	return out
}

func checkLinear(t *testing.T, seq []int, n int) {
	t.Helper()
	if len(seq) != n {
		t.Fatalf("simulated booklet has %d pages, want %d (%v)", len(seq), n, seq)
	}
	for i, got := range seq {
		if got != i {
			t.Fatalf("simulated page %d holds source %d (%v)", i, got, seq)
		}
	}
}

func TestSaddleRoundTrip(t *testing.T) {
	for _, pages := range []int{4, 5, 8, 12, 19, 20} {
		layout, err := Plan(pages, Saddle, Params{})
		if err != nil {
			t.Fatal(err)
		}
		if len(layout.Signatures) != 1 {
			t.Fatalf("%d pages: expected one signature, got %d", pages, len(layout.Signatures))
		}
		checkLinear(t, dropBlanks(unfoldSaddle(layout.Signatures[0])), pages)
	}
}

func TestSaddleCappedRoundTrip(t *testing.T) {
	// Signatures folded separately, then stacked in forward order.
	layout, err := Plan(20, Saddle, Params{MaxSignature: 8})
	if err != nil {
		t.Fatal(err)
	}
	var seq []int
	for _, sig := range layout.Signatures {
		seq = append(seq, unfoldSaddle(sig)...)
	}
	checkLinear(t, dropBlanks(seq), 20)
}

func TestHardcoverRoundTrip(t *testing.T) {
	for _, pages := range []int{16, 30, 32, 33} {
		layout, err := Plan(pages, Hardcover, Params{Group: 4})
		if err != nil {
			t.Fatal(err)
		}
		var seq []int
		for _, sig := range layout.Signatures {
			if got := len(sig.Sheets); got != 4 {
				t.Fatalf("%d pages: signature has %d sheets, want 4", pages, got)
			}
			seq = append(seq, unfoldSaddle(sig)...)
		}
		checkLinear(t, dropBlanks(seq), pages)
	}
}

func TestHardcoverWholeDocumentSignature(t *testing.T) {
	// Group 0 keeps everything in one signature: a plain saddle fold.
	for _, pages := range []int{4, 18, 32} {
		layout, err := Plan(pages, Hardcover, Params{Group: 0})
		if err != nil {
			t.Fatal(err)
		}
		if got := len(layout.Signatures); got != 1 {
			t.Fatalf("%d pages with group 0: %d signatures, want 1", pages, got)
		}
		checkLinear(t, dropBlanks(unfoldSaddle(layout.Signatures[0])), pages)
	}
}

// cutPile extracts the virtual saddle signature at grid cell (r, c) of a
// cut-stack-fold layout, accounting for the duplex column mirror on the
// back side.
func cutPile(sheets []model.Sheet, r, c, cols int) model.Signature {
	var sig model.Signature
	for _, sheet := range sheets {
		front := model.NewSide(1, 2)
		back := model.NewSide(1, 2)
		front.Slots[0] = sheet.Front.At(r, 2*c)
		front.Slots[1] = sheet.Front.At(r, 2*c+1)
		mc := cols - 1 - c
		back.Slots[0] = sheet.Back.At(r, 2*mc)
		back.Slots[1] = sheet.Back.At(r, 2*mc+1)
		sig.Sheets = append(sig.Sheets, model.Sheet{Front: front, Back: back})
	}
	return sig
}

func TestCutStackFoldRoundTrip(t *testing.T) {
	grids := []struct{ rows, cols int }{{1, 1}, {2, 1}, {1, 2}, {2, 2}}
	for _, g := range grids {
		for _, pages := range []int{4 * g.rows * g.cols, 8 * g.rows * g.cols, 8*g.rows*g.cols - 3} {
			layout, err := Plan(pages, CutStackFold, Params{Rows: g.rows, Cols: g.cols})
			if err != nil {
				t.Fatal(err)
			}
			sheets := layout.Sheets()

			// Cut into piles in row-major cell order, fold each pile, stack.
			var seq []int
			for r := 0; r < g.rows; r++ {
				for c := 0; c < g.cols; c++ {
					seq = append(seq, unfoldSaddle(cutPile(sheets, r, c, g.cols))...)
				}
			}
			checkLinear(t, dropBlanks(seq), pages)
		}
	}
}

func TestCopyCutFoldRoundTrip(t *testing.T) {
	for _, pages := range []int{4, 7, 12} {
		layout, err := Plan(pages, CopyCutFold, Params{})
		if err != nil {
			t.Fatal(err)
		}
		sheets := layout.Sheets()

		// Cutting down the middle yields two booklets; under the duplex
		// column flip the physical back of front half k is back half 1-k.
		for copyNum := 0; copyNum < 2; copyNum++ {
			var sig model.Signature
			for _, sheet := range sheets {
				front := model.NewSide(1, 2)
				back := model.NewSide(1, 2)
				front.Slots[0] = sheet.Front.Slots[2*copyNum]
				front.Slots[1] = sheet.Front.Slots[2*copyNum+1]
				back.Slots[0] = sheet.Back.Slots[2*(1-copyNum)]
				back.Slots[1] = sheet.Back.Slots[2*(1-copyNum)+1]
				sig.Sheets = append(sig.Sheets, model.Sheet{Front: front, Back: back})
			}
			checkLinear(t, dropBlanks(unfoldSaddle(sig)), pages)
		}
	}
}

func TestOnePageZineRoundTrip(t *testing.T) {
	for _, pages := range []int{5, 8} {
		layout, err := Plan(pages, OnePageZine, Params{})
		if err != nil {
			t.Fatal(err)
		}
		front := layout.Signatures[0].Sheets[0].Front

		// Accordion unfold: walk the serpentine path from the bottom-left
		// panel; right-to-left passes read upside-down panels.
		var seq []int
		for pass := 0; pass < front.Rows; pass++ {
			r := front.Rows - 1 - pass
			for i := 0; i < front.Cols; i++ {
				c := i
				wantRot := model.Rotate0
				if pass%2 == 1 {
					c = front.Cols - 1 - i
					wantRot = model.Rotate180
				}
				slot := front.At(r, c)
				if slot.Rotation != wantRot {
					t.Errorf("panel (%d,%d) rotation = %d, want %d", r, c, slot.Rotation, wantRot)
				}
				seq = append(seq, slot.Source)
			}
		}
		checkLinear(t, dropBlanks(seq), pages)
	}
}
