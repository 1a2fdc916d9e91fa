package paper

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/tsawler/bindery/model"
)

// ErrParse is returned when a length, size or creep expression cannot be
// understood.
var ErrParse = errors.New("paper: cannot parse expression")

// unitPoints maps a unit suffix to its size in PostScript points.
var unitPoints = map[string]float64{
	"pt": 1,
	"mm": 72.0 / 25.4,
	"cm": 72.0 / 2.54,
	"in": 72,
	"pc": 12,
}

// sizes holds the named paper formats, in points, portrait orientation.
var sizes = map[string]model.Size{
	"a3":      {Width: 841.89, Height: 1190.55},
	"a4":      {Width: 595.28, Height: 841.89},
	"a5":      {Width: 419.53, Height: 595.28},
	"a6":      {Width: 297.64, Height: 419.53},
	"letter":  {Width: 612, Height: 792},
	"legal":   {Width: 612, Height: 1008},
	"tabloid": {Width: 792, Height: 1224},
}

// Names returns the recognized paper format names, unordered.
func Names() []string {
	names := make([]string, 0, len(sizes))
	for name := range sizes {
		names = append(names, name)
	}
	return names
}

var lengthRE = regexp.MustCompile(`^(-?(?:\d+(?:\.\d+)?|\.\d+))\s*([a-z]*)$`)

// ParseLength converts a length expression like "10mm", "0.5in" or "12"
// into points. A bare number is already in points.
func ParseLength(text string) (float64, error) {
	m := lengthRE.FindStringSubmatch(strings.ToLower(strings.TrimSpace(text)))
	if m == nil {
		return 0, fmt.Errorf("%q is not a length: %w", text, ErrParse)
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a length: %w", text, ErrParse)
	}
	if m[2] == "" {
		return value, nil
	}
	unit, ok := unitPoints[m[2]]
	if !ok {
		return 0, fmt.Errorf("unknown unit %q in %q: %w", m[2], text, ErrParse)
	}
	return value * unit, nil
}

// ParseSize resolves a paper size expression: either a named format such as
// "a4" (optionally suffixed with ":landscape"), or an explicit
// "WIDTHxHEIGHT" pair of lengths such as "210mmx297mm".
func ParseSize(text string) (model.Size, error) {
	name := strings.ToLower(strings.TrimSpace(text))

	landscape := false
	if base, ok := strings.CutSuffix(name, ":landscape"); ok {
		name, landscape = base, true
	}
	if size, ok := sizes[name]; ok {
		if landscape {
			size = size.Swapped()
		}
		return size, nil
	}
	if landscape {
		return model.Size{}, fmt.Errorf("unknown paper format %q: %w", text, ErrParse)
	}

	w, h, ok := strings.Cut(name, "x")
	if !ok {
		return model.Size{}, fmt.Errorf("unknown paper format %q: %w", text, ErrParse)
	}
	width, err := ParseLength(w)
	if err != nil {
		return model.Size{}, err
	}
	height, err := ParseLength(h)
	if err != nil {
		return model.Size{}, err
	}
	size := model.Size{Width: width, Height: height}
	if !size.IsValid() {
		return model.Size{}, fmt.Errorf("paper size %q must be positive: %w", text, ErrParse)
	}
	return size, nil
}

// Creep is a linear function of a sheet's nesting depth inside a folded
// signature, giving the extra spine width that sheet needs.
type Creep struct {
	Slope  float64 // points per nested sheet
	Offset float64 // constant part, in points
}

// At evaluates the creep function at nesting depth x.
func (c Creep) At(x int) float64 {
	return c.Slope*float64(x) + c.Offset
}

// IsZero reports whether the function is identically zero.
func (c Creep) IsZero() bool {
	return c.Slope == 0 && c.Offset == 0
}

var creepRE = regexp.MustCompile(
	`^(-?(?:\d+(?:\.\d+)?|\.\d+))x([+-](?:\d+(?:\.\d+)?|\.\d+))?([a-z]+)?$`,
)

// ParseCreep parses a creep expression: a linear function of the nesting
// depth with an optional unit, such as "0.1x", "2x+1mm" or ".5x-1pt", or a
// constant length such as "2mm".
func ParseCreep(text string) (Creep, error) {
	expr := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(text), " ", ""))

	if !strings.Contains(expr, "x") {
		offset, err := ParseLength(expr)
		if err != nil {
			return Creep{}, err
		}
		return Creep{Offset: offset}, nil
	}

	m := creepRE.FindStringSubmatch(expr)
	if m == nil {
		return Creep{}, fmt.Errorf("%q is not a linear creep function (e.g. \"2.3x-1mm\"): %w", text, ErrParse)
	}
	slope, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Creep{}, fmt.Errorf("%q is not a linear creep function: %w", text, ErrParse)
	}
	var offset float64
	if m[2] != "" {
		offset, err = strconv.ParseFloat(m[2], 64)
		if err != nil {
			return Creep{}, fmt.Errorf("%q is not a linear creep function: %w", text, ErrParse)
		}
	}
	unit := 1.0
	if m[3] != "" {
		u, ok := unitPoints[m[3]]
		if !ok {
			return Creep{}, fmt.Errorf("unknown unit %q in %q: %w", m[3], text, ErrParse)
		}
		unit = u
	}
	return Creep{Slope: slope * unit, Offset: offset * unit}, nil
}

// ParseMargins parses an outer-margin expression: one length for uniform
// margins, or four comma-separated lengths in top, right, bottom, left
// order.
func ParseMargins(text string) (model.Margins, error) {
	parts := strings.Split(text, ",")
	switch len(parts) {
	case 1:
		v, err := ParseLength(parts[0])
		if err != nil {
			return model.Margins{}, err
		}
		return model.UniformMargins(v), nil
	case 4:
		var vals [4]float64
		for i, part := range parts {
			v, err := ParseLength(part)
			if err != nil {
				return model.Margins{}, err
			}
			vals[i] = v
		}
		return model.Margins{Top: vals[0], Right: vals[1], Bottom: vals[2], Left: vals[3]}, nil
	default:
		return model.Margins{}, fmt.Errorf("margins %q must be one length or four: %w", text, ErrParse)
	}
}
