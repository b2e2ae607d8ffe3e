package kml

// AltitudeMode is the enumerated policy describing how a geometry's altitude
// relates to the terrain. The zero value is the schema default.
type AltitudeMode int

const (
	AltitudeModeClampToGround AltitudeMode = iota
	AltitudeModeRelativeToGround
	AltitudeModeAbsolute
)

// String returns the schema's lower-camel-case text form.
func (m AltitudeMode) String() string {
	switch m {
	case AltitudeModeRelativeToGround:
		return "relativeToGround"
	case AltitudeModeAbsolute:
		return "absolute"
	default:
		return "clampToGround"
	}
}

// ParseAltitudeMode parses the schema text form.
func ParseAltitudeMode(s string) (AltitudeMode, error) {
	switch s {
	case "clampToGround":
		return AltitudeModeClampToGround, nil
	case "relativeToGround":
		return AltitudeModeRelativeToGround, nil
	case "absolute":
		return AltitudeModeAbsolute, nil
	}
	return 0, enumErr("altitudeMode", s)
}

// Geometry is the closed set of shapes a Placemark may carry: Point,
// LineString, LinearRing, Polygon and MultiGeometry.
type Geometry interface {
	Node
	geometry()
}

// Point is a single coordinate. The zero value carries the schema defaults
// (no extrusion, clamped to ground, coordinate at the origin).
type Point[T CoordValue] struct {
	Coord        Coord[T]
	Extrude      bool
	AltitudeMode AltitudeMode
}

// LineString is an open sequence of coordinates.
type LineString[T CoordValue] struct {
	Coords       []Coord[T]
	Extrude      bool
	Tessellate   bool
	AltitudeMode AltitudeMode
}

// LinearRing is a closed sequence of coordinates.
type LinearRing[T CoordValue] struct {
	Coords       []Coord[T]
	Extrude      bool
	Tessellate   bool
	AltitudeMode AltitudeMode
}

// Polygon is exactly one outer ring plus zero or more inner rings. The
// innerBoundaryIs wrapper is emitted only when Inner is non-empty.
type Polygon[T CoordValue] struct {
	Outer        LinearRing[T]
	Inner        []LinearRing[T]
	Extrude      bool
	Tessellate   bool
	AltitudeMode AltitudeMode
	Attrs        map[string]string
}

// MultiGeometry is an ordered list of nested geometries.
type MultiGeometry[T CoordValue] struct {
	Geometries []Geometry
	Attrs      map[string]string
}

func (*Point[T]) node()         {}
func (*LineString[T]) node()    {}
func (*LinearRing[T]) node()    {}
func (*Polygon[T]) node()       {}
func (*MultiGeometry[T]) node() {}

func (*Point[T]) geometry()         {}
func (*LineString[T]) geometry()    {}
func (*LinearRing[T]) geometry()    {}
func (*Polygon[T]) geometry()       {}
func (*MultiGeometry[T]) geometry() {}
