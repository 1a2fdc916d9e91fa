package paper

import (
	"errors"
	"math"
	"testing"

	"github.com/tsawler/bindery/model"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"12", 12},
		{"10pt", 10},
		{"1in", 72},
		{"2pc", 24},
		{"25.4mm", 72},
		{"2.54cm", 72},
		{".5in", 36},
		{"-3pt", -3},
		{" 10 mm ", 10 * 72 / 25.4},
	}
	for _, tt := range tests {
		got, err := ParseLength(tt.in)
		if err != nil {
			t.Errorf("ParseLength(%q): %v", tt.in, err)
			continue
		}
		if !approx(got, tt.want) {
			t.Errorf("ParseLength(%q) = %g, want %g", tt.in, got, tt.want)
		}
	}

	for _, in := range []string{"", "abc", "10xy", "10 20", "mm"} {
		if _, err := ParseLength(in); !errors.Is(err, ErrParse) {
			t.Errorf("ParseLength(%q): got %v, want ErrParse", in, err)
		}
	}
}

func TestParseSize(t *testing.T) {
	a4, err := ParseSize("A4")
	if err != nil {
		t.Fatal(err)
	}
	if !approx(a4.Width, 595.28) || !approx(a4.Height, 841.89) {
		t.Errorf("a4 = %+v", a4)
	}

	land, err := ParseSize("a4:landscape")
	if err != nil {
		t.Fatal(err)
	}
	if land != a4.Swapped() {
		t.Errorf("a4:landscape = %+v, want %+v", land, a4.Swapped())
	}

	explicit, err := ParseSize("210mmx297mm")
	if err != nil {
		t.Fatal(err)
	}
	if !approx(explicit.Width, 210*72/25.4) || !approx(explicit.Height, 297*72/25.4) {
		t.Errorf("210mmx297mm = %+v", explicit)
	}

	for _, in := range []string{"a9", "a4x", "-10ptx20pt", "b5:landscape"} {
		if _, err := ParseSize(in); !errors.Is(err, ErrParse) {
			t.Errorf("ParseSize(%q): got %v, want ErrParse", in, err)
		}
	}
}

func TestParseCreep(t *testing.T) {
	tests := []struct {
		in    string
		atTwo float64
	}{
		{"0.1x", 0.2},
		{".5x", 1},
		{"2x+1pt", 5},
		{"-2x+3", -1},
		{"2x-5pc", 2*12*2 - 5*12}, // unit scales slope and offset alike
		{"7", 7},
		{"2mm", 2 * 72 / 25.4},
	}
	for _, tt := range tests {
		c, err := ParseCreep(tt.in)
		if err != nil {
			t.Errorf("ParseCreep(%q): %v", tt.in, err)
			continue
		}
		if got := c.At(2); !approx(got, tt.atTwo) {
			t.Errorf("ParseCreep(%q).At(2) = %g, want %g", tt.in, got, tt.atTwo)
		}
	}

	if c, _ := ParseCreep("0x"); !c.IsZero() {
		t.Errorf("0x should be the zero function, got %+v", c)
	}

	for _, in := range []string{"x", "2x+", "2x2", "ax+1", "2x+1zz"} {
		if _, err := ParseCreep(in); !errors.Is(err, ErrParse) {
			t.Errorf("ParseCreep(%q): got %v, want ErrParse", in, err)
		}
	}
}

func TestParseMargins(t *testing.T) {
	uniform, err := ParseMargins("10mm")
	if err != nil {
		t.Fatal(err)
	}
	mm10 := 10 * 72 / 25.4
	if !approx(uniform.Top, mm10) || uniform != model.UniformMargins(uniform.Top) {
		t.Errorf("uniform margins = %+v", uniform)
	}

	four, err := ParseMargins("1pt,2pt,3pt,4pt")
	if err != nil {
		t.Fatal(err)
	}
	want := model.Margins{Top: 1, Right: 2, Bottom: 3, Left: 4}
	if four != want {
		t.Errorf("four margins = %+v, want %+v", four, want)
	}

	for _, in := range []string{"1pt,2pt", "a,b,c,d", ""} {
		if _, err := ParseMargins(in); !errors.Is(err, ErrParse) {
			t.Errorf("ParseMargins(%q): got %v, want ErrParse", in, err)
		}
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatal("no paper names")
	}
	for _, name := range names {
		if _, err := ParseSize(name); err != nil {
			t.Errorf("named size %q does not parse: %v", name, err)
		}
	}
}
