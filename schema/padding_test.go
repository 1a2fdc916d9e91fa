package schema

import (
	"errors"
	"testing"
)

func TestPad(t *testing.T) {
	tests := []struct {
		pages, m, want int
	}{
		{1, 4, 4},
		{4, 4, 4},
		{5, 4, 8},
		{10, 4, 12},
		{10, 16, 16},
		{17, 16, 32},
	}
	for _, tt := range tests {
		if got := Pad(tt.pages, tt.m); got != tt.want {
			t.Errorf("Pad(%d, %d) = %d, want %d", tt.pages, tt.m, got, tt.want)
		}
	}
}

func TestMultiple(t *testing.T) {
	tests := []struct {
		id   ID
		p    Params
		want int
	}{
		{Cards, Params{Rows: 2, Cols: 2}, 4},
		{Saddle, Params{}, 4},
		{CopyCutFold, Params{}, 4},
		{CutStackFold, Params{Rows: 1, Cols: 2}, 8},
		{OnePageZine, Params{Rows: 2, Cols: 4}, 8},
		{Hardcover, Params{Group: 4}, 16},
		{Hardcover, Params{Group: 0}, 4},
		{Wire, Params{Rows: 2, Cols: 2}, 8},
	}
	for _, tt := range tests {
		p := tt.p.normalized(tt.id)
		if got := Multiple(tt.id, p); got != tt.want {
			t.Errorf("Multiple(%s, %+v) = %d, want %d", tt.id, tt.p, got, tt.want)
		}
	}
}

// Padded page count is always the smallest valid multiple >= the original.
func TestPaddingMinimality(t *testing.T) {
	for _, id := range IDs() {
		for pages := 1; pages <= 40; pages++ {
			p := Params{Rows: 2, Cols: 2}.normalized(id)
			if id == OnePageZine && pages > p.Rows*p.Cols {
				continue
			}
			m := Multiple(id, p)
			padded, err := Padded(pages, id, p)
			if err != nil {
				t.Fatalf("%s/%d: %v", id, pages, err)
			}
			if padded < pages || padded%m != 0 || padded-pages >= m {
				t.Errorf("%s/%d: padded=%d is not the smallest multiple of %d", id, pages, padded, m)
			}
		}
	}
}

func TestPadAndSplitSaddleCap(t *testing.T) {
	// 20 pages with a 8-page cap: two full signatures plus a partial tail.
	sigs, err := PadAndSplit(20, Saddle, Params{MaxSignature: 8}.normalized(Saddle))
	if err != nil {
		t.Fatal(err)
	}
	want := []int{8, 8, 4}
	if len(sigs) != len(want) {
		t.Fatalf("got %v, want %v", sigs, want)
	}
	for i := range want {
		if sigs[i] != want[i] {
			t.Fatalf("got %v, want %v", sigs, want)
		}
	}
}

func TestPadAndSplitHardcoverExact(t *testing.T) {
	// Hardcover has no partial signatures: 18 pages with 4-sheet groups pad
	// up to two full 16-page signatures.
	sigs, err := PadAndSplit(18, Hardcover, Params{Group: 4}.normalized(Hardcover))
	if err != nil {
		t.Fatal(err)
	}
	if len(sigs) != 2 || sigs[0] != 16 || sigs[1] != 16 {
		t.Fatalf("got %v, want [16 16]", sigs)
	}
}

func TestPadAndSplitErrors(t *testing.T) {
	if _, err := PadAndSplit(0, Saddle, Params{}.normalized(Saddle)); !errors.Is(err, ErrEmptyDocument) {
		t.Errorf("zero pages: got %v, want ErrEmptyDocument", err)
	}
	if _, err := PadAndSplit(8, Saddle, Params{MaxSignature: 2}); !errors.Is(err, ErrConfiguration) {
		t.Errorf("cap below multiple: got %v, want ErrConfiguration", err)
	}
}

func TestPagerInsertsBlanksBeforeLastGroup(t *testing.T) {
	// 5 real pages padded to 8 with a 2-page trailing group: the blanks sit
	// between the body and the group, so the group stays at the very end.
	pg := newPager(5, 8, 2)
	want := []int{0, 1, 2, -1, -1, -1, 3, 4}
	for i, w := range want {
		if got := pg.page(i); got != w {
			t.Errorf("page(%d) = %d, want %d", i, got, w)
		}
	}
}
