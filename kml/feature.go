package kml

// Placemark is a named point of interest: optional name and description, an
// ordered list of arbitrary children, and at most one geometry.
type Placemark struct {
	Name        string // omitted from output when empty
	Description string // omitted from output when empty
	Children    []Node
	Geometry    Geometry
}

// Location positions a model or camera target.
type Location[T CoordValue] struct {
	Longitude T
	Latitude  T
	Altitude  T
}

// Orientation rotates a model around its axes, in degrees.
type Orientation[T CoordValue] struct {
	Roll    T
	Tilt    T
	Heading T
}

// Scale resizes a model along its axes. The schema default for every
// component is 1; use NewScale rather than a struct literal when defaults
// should apply.
type Scale[T CoordValue] struct {
	X, Y, Z T
}

// NewScale returns a Scale with the schema defaults applied.
func NewScale[T CoordValue]() *Scale[T] {
	return &Scale[T]{X: 1, Y: 1, Z: 1}
}

func (*Placemark) node()      {}
func (*Location[T]) node()    {}
func (*Orientation[T]) node() {}
func (*Scale[T]) node()       {}
