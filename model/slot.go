package model

// Blank is the sentinel source index for an empty slot.
const Blank = -1

// Slot is one page-sized placement location on a sheet side.
//
// Source is a 0-based index into the source document, or Blank. Rect is the
// destination rectangle on the sheet, filled in by the mark planner; it is
// zero until then. Copy distinguishes duplicate booklet halves in schemas
// that print the same fold unit more than once per sheet; it is 0 for the
// first (or only) copy.
type Slot struct {
	Source   int
	Rotation Rotation
	Rect     Rect
	Copy     int
}

// IsBlank returns true if the slot holds no source page.
func (s Slot) IsBlank() bool {
	return s.Source == Blank
}

// Side is one printable face of a sheet: a fixed rows-by-columns grid of
// slots in row-major order, plus any planned marks.
type Side struct {
	Rows  int
	Cols  int
	Slots []Slot

	// CropMarks and BindMarks are planned by the marks package. Crop marks
	// are line segments at trim and cut lines; bind marks are small filled
	// rectangles used as collation marks on signature spines.
	CropMarks []Segment
	BindMarks []Rect
}

// NewSide creates a side with every slot blank.
func NewSide(rows, cols int) Side {
	slots := make([]Slot, rows*cols)
	for i := range slots {
		slots[i].Source = Blank
	}
	return Side{Rows: rows, Cols: cols, Slots: slots}
}

// Index returns the row-major slot index for a grid position.
func (s Side) Index(row, col int) int {
	return row*s.Cols + col
}

// At returns the slot at a grid position.
func (s Side) At(row, col int) Slot {
	return s.Slots[s.Index(row, col)]
}

// Set replaces the slot at a grid position.
func (s *Side) Set(row, col int, slot Slot) {
	s.Slots[s.Index(row, col)] = slot
}

// Sheet is one physical sheet of paper: a front and a back side.
type Sheet struct {
	Front Side
	Back  Side
}

// Signature is an ordered group of consecutive sheets that are cut, folded
// and bound together as one physical unit.
type Signature struct {
	Sheets []Sheet
}

// Layout is the terminal artifact of an imposition run: the ordered
// signatures covering a padded document, with every real source index placed
// per the schema's pagination law.
type Layout struct {
	Schema    string // identifier of the schema that produced the layout
	PageSize  Size   // trim size of one imposed page cell
	SheetSize Size   // output sheet size; zero until the mark planner runs
	Signatures []Signature
}

// Sheets returns the sheets of every signature in print order.
func (l *Layout) Sheets() []Sheet {
	var sheets []Sheet
	for _, sig := range l.Signatures {
		sheets = append(sheets, sig.Sheets...)
	}
	return sheets
}

// SheetCount returns the total number of physical sheets.
func (l *Layout) SheetCount() int {
	n := 0
	for _, sig := range l.Signatures {
		n += len(sig.Sheets)
	}
	return n
}

// SlotCount returns the total number of slots across all sides.
func (l *Layout) SlotCount() int {
	n := 0
	for _, sig := range l.Signatures {
		for _, sheet := range sig.Sheets {
			n += len(sheet.Front.Slots) + len(sheet.Back.Slots)
		}
	}
	return n
}

// EachSlot calls fn for every slot in print order: front of sheet 0, back of
// sheet 0, front of sheet 1, and so on across signatures.
func (l *Layout) EachSlot(fn func(slot Slot)) {
	for _, sig := range l.Signatures {
		for _, sheet := range sig.Sheets {
			for _, slot := range sheet.Front.Slots {
				fn(slot)
			}
			for _, slot := range sheet.Back.Slots {
				fn(slot)
			}
		}
	}
}
