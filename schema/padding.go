package schema

import "fmt"

// Multiple returns the page-count multiple a schema requires before
// placement: the number of source pages one indivisible imposition unit
// consumes. Params must already be normalized.
func Multiple(id ID, p Params) int {
	switch id {
	case Cards, OnePageZine:
		return p.Rows * p.Cols
	case Saddle, CopyCutFold:
		return 4
	case CutStackFold:
		return 4 * p.Rows * p.Cols
	case Hardcover:
		if p.Group > 0 {
			return 4 * p.Group
		}
		return 4
	case Wire:
		return 2 * p.Rows * p.Cols
	}
	return 0
}

// Pad returns the smallest multiple of m that is >= pageCount.
func Pad(pageCount, m int) int {
	if r := pageCount % m; r != 0 {
		return pageCount + m - r
	}
	return pageCount
}

// PadAndSplit pads a page count to the schema's required multiple and
// splits the padded sequence into per-signature page allotments.
//
// Saddle supports a partial final signature when MaxSignature caps the
// signature size: the tail keeps its own multiple of 4 without being raised
// to a full cap. Hardcover signatures are always exactly 4*Group pages, so
// padding targets that multiple instead. Every other schema produces a
// single signature holding the whole padded document.
func PadAndSplit(pageCount int, id ID, p Params) ([]int, error) {
	if pageCount <= 0 {
		return nil, fmt.Errorf("schema %q requires at least one page, got %d: %w", id, pageCount, ErrEmptyDocument)
	}
	m := Multiple(id, p)
	if m <= 0 {
		return nil, fmt.Errorf("unknown schema %q: %w", id, ErrConfiguration)
	}

	if id == Saddle && p.MaxSignature > 0 {
		if p.MaxSignature < m {
			return nil, fmt.Errorf("schema %q: signature cap %d is below the required multiple %d: %w",
				id, p.MaxSignature, m, ErrConfiguration)
		}
		padded := Pad(pageCount, m)
		var sigs []int
		for remaining := padded; remaining > 0; remaining -= p.MaxSignature {
			if remaining >= p.MaxSignature {
				sigs = append(sigs, p.MaxSignature)
			} else {
				sigs = append(sigs, remaining)
			}
		}
		return sigs, nil
	}

	padded := Pad(pageCount, m)
	if id == Hardcover && p.Group > 0 {
		sigs := make([]int, padded/m)
		for i := range sigs {
			sigs[i] = m
		}
		return sigs, nil
	}
	return []int{padded}, nil
}

// Padded returns the total padded page count implied by PadAndSplit.
func Padded(pageCount int, id ID, p Params) (int, error) {
	sigs, err := PadAndSplit(pageCount, id, p)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, n := range sigs {
		total += n
	}
	return total, nil
}
