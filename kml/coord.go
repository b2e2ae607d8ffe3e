package kml

import (
	"reflect"
	"strconv"
	"strings"
)

// CoordValue is the scalar constraint for coordinate components. KML text
// carries decimal degrees; callers pick float32 or float64 precision per
// tree, and the codec renders and parses at exactly that width.
type CoordValue interface {
	~float32 | ~float64
}

// Coord is a single x,y[,z] triple. Z is optional: nil renders as "x,y",
// non-nil as "x,y,z".
type Coord[T CoordValue] struct {
	X, Y T
	Z    *T
}

// NewCoord returns a coordinate without an altitude component.
func NewCoord[T CoordValue](x, y T) Coord[T] {
	return Coord[T]{X: x, Y: y}
}

// NewCoordZ returns a coordinate with an explicit altitude component.
func NewCoordZ[T CoordValue](x, y, z T) Coord[T] {
	return Coord[T]{X: x, Y: y, Z: &z}
}

// String renders the canonical comma-joined form.
func (c Coord[T]) String() string {
	if c.Z != nil {
		return formatValue(c.X) + "," + formatValue(c.Y) + "," + formatValue(*c.Z)
	}
	return formatValue(c.X) + "," + formatValue(c.Y)
}

// ParseCoord parses one comma-separated coordinate token, "x,y" or "x,y,z".
// A token missing x or y, carrying extra fields, or holding a non-numeric
// field is a hard KindNumericParse error naming the token.
func ParseCoord[T CoordValue](token string) (Coord[T], error) {
	fields := strings.Split(strings.TrimSpace(token), ",")
	if len(fields) < 2 || len(fields) > 3 {
		return Coord[T]{}, numericErr(token, nil)
	}
	x, err := parseValue[T](fields[0])
	if err != nil {
		return Coord[T]{}, numericErr(token, err)
	}
	y, err := parseValue[T](fields[1])
	if err != nil {
		return Coord[T]{}, numericErr(token, err)
	}
	c := Coord[T]{X: x, Y: y}
	if len(fields) == 3 {
		z, err := parseValue[T](fields[2])
		if err != nil {
			return Coord[T]{}, numericErr(token, err)
		}
		c.Z = &z
	}
	return c, nil
}

// ParseCoords tokenizes coordinate text on whitespace and newlines and
// parses each token with ParseCoord. Empty text yields an empty sequence.
func ParseCoords[T CoordValue](text string) ([]Coord[T], error) {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return nil, nil
	}
	coords := make([]Coord[T], 0, len(tokens))
	for _, tok := range tokens {
		c, err := ParseCoord[T](tok)
		if err != nil {
			return nil, err
		}
		coords = append(coords, c)
	}
	return coords, nil
}

// coordsText newline-joins a coordinate sequence.
func coordsText[T CoordValue](coords []Coord[T]) string {
	parts := make([]string, len(coords))
	for i, c := range coords {
		parts[i] = c.String()
	}
	return strings.Join(parts, "\n")
}

// bitSize reports the strconv rounding width for T.
func bitSize[T CoordValue]() int {
	var zero T
	if reflect.TypeOf(zero).Kind() == reflect.Float32 {
		return 32
	}
	return 64
}

// formatValue renders v in the scalar's shortest decimal form: 2.0 -> "2".
func formatValue[T CoordValue](v T) string {
	return strconv.FormatFloat(float64(v), 'f', -1, bitSize[T]())
}

// parseValue parses one decimal field at T's precision.
func parseValue[T CoordValue](s string) (T, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), bitSize[T]())
	if err != nil {
		return 0, err
	}
	return T(f), nil
}

// formatFloat renders a non-generic schema field (style scales, link
// intervals) in the same shortest decimal form.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
