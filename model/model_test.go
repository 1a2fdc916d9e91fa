package model

import "testing"

func TestRectIntersects(t *testing.T) {
	a := NewRect(0, 0, 100, 100)

	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlapping", NewRect(50, 50, 100, 100), true},
		{"contained", NewRect(25, 25, 50, 50), true},
		{"disjoint", NewRect(200, 200, 50, 50), false},
		{"edge touching", NewRect(100, 0, 50, 100), false},
		{"corner touching", NewRect(100, 100, 50, 50), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects(%v) = %v, want %v", tt.b, got, tt.want)
			}
		})
	}
}

func TestRotation(t *testing.T) {
	if got := Rotate270.Add(Rotate180); got != Rotate90 {
		t.Errorf("Rotate270.Add(Rotate180) = %d, want 90", got)
	}
	if got := Rotate0.Add(Rotate0); got != Rotate0 {
		t.Errorf("Rotate0.Add(Rotate0) = %d, want 0", got)
	}
	if !Rotate90.SwapsAxes() || Rotate180.SwapsAxes() {
		t.Error("SwapsAxes should hold for 90/270 only")
	}
	if Rotation(45).IsValid() {
		t.Error("45 degrees should not be a valid rotation")
	}
}

func TestSideIndexing(t *testing.T) {
	side := NewSide(2, 3)
	if len(side.Slots) != 6 {
		t.Fatalf("expected 6 slots, got %d", len(side.Slots))
	}
	for _, slot := range side.Slots {
		if !slot.IsBlank() {
			t.Error("new side should contain only blank slots")
		}
	}

	side.Set(1, 2, Slot{Source: 7})
	if got := side.At(1, 2).Source; got != 7 {
		t.Errorf("At(1,2).Source = %d, want 7", got)
	}
	if got := side.Index(1, 2); got != 5 {
		t.Errorf("Index(1,2) = %d, want 5 (row-major)", got)
	}
}

func TestLayoutTraversal(t *testing.T) {
	mk := func(front, back []int) Sheet {
		f := NewSide(1, len(front))
		b := NewSide(1, len(back))
		for i, n := range front {
			f.Slots[i].Source = n
		}
		for i, n := range back {
			b.Slots[i].Source = n
		}
		return Sheet{Front: f, Back: b}
	}

	layout := &Layout{
		Signatures: []Signature{
			{Sheets: []Sheet{mk([]int{7, 0}, []int{1, 6})}},
			{Sheets: []Sheet{mk([]int{5, 2}, []int{3, 4})}},
		},
	}

	if got := layout.SheetCount(); got != 2 {
		t.Errorf("SheetCount = %d, want 2", got)
	}
	if got := layout.SlotCount(); got != 8 {
		t.Errorf("SlotCount = %d, want 8", got)
	}

	var order []int
	layout.EachSlot(func(s Slot) { order = append(order, s.Source) })
	want := []int{7, 0, 1, 6, 5, 2, 3, 4}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("EachSlot order = %v, want %v", order, want)
		}
	}
}

func TestSheetGeometryValidate(t *testing.T) {
	good := SheetGeometry{
		Sheet:  Size{Width: 595, Height: 842},
		Margin: UniformMargins(20),
		Bleed:  3,
	}
	if err := good.Validate(); err != nil {
		t.Errorf("valid geometry rejected: %v", err)
	}

	tests := []struct {
		name string
		geom SheetGeometry
	}{
		{"negative margin", SheetGeometry{Margin: Margins{Left: -1}}},
		{"negative bleed", SheetGeometry{Bleed: -0.5}},
		{"zero sheet width", SheetGeometry{Sheet: Size{Width: 0, Height: 100}}},
		{"margin over half sheet", SheetGeometry{
			Sheet:  Size{Width: 100, Height: 100},
			Margin: Margins{Left: 60},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.geom.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestDocument(t *testing.T) {
	doc := UniformDocument(3, Size{Width: 595, Height: 842})
	if doc.PageCount() != 3 {
		t.Fatalf("PageCount = %d, want 3", doc.PageCount())
	}
	if doc.Page(2).Index != 2 {
		t.Errorf("Page(2).Index = %d, want 2", doc.Page(2).Index)
	}
	if doc.Size() != (Size{Width: 595, Height: 842}) {
		t.Errorf("unexpected Size: %+v", doc.Size())
	}
}
