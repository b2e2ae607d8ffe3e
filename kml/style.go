package kml

// ColorMode selects between a fixed color and a random tint.
type ColorMode int

const (
	ColorModeNormal ColorMode = iota
	ColorModeRandom
)

func (m ColorMode) String() string {
	if m == ColorModeRandom {
		return "random"
	}
	return "normal"
}

// ParseColorMode parses the schema text form.
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "normal":
		return ColorModeNormal, nil
	case "random":
		return ColorModeRandom, nil
	}
	return 0, enumErr("colorMode", s)
}

// Units measures a hotSpot offset.
type Units int

const (
	UnitsFraction Units = iota
	UnitsPixels
	UnitsInsetPixels
)

func (u Units) String() string {
	switch u {
	case UnitsPixels:
		return "pixels"
	case UnitsInsetPixels:
		return "insetPixels"
	default:
		return "fraction"
	}
}

// ParseUnits parses the schema text form.
func ParseUnits(s string) (Units, error) {
	switch s {
	case "fraction":
		return UnitsFraction, nil
	case "pixels":
		return UnitsPixels, nil
	case "insetPixels":
		return UnitsInsetPixels, nil
	}
	return 0, enumErr("units", s)
}

// Style aggregates at most one of each sub-style under a shared id. The id
// renders as a tag attribute, not a child element.
type Style struct {
	ID      string
	Balloon *BalloonStyle
	Icon    *IconStyle
	Label   *LabelStyle
	Line    *LineStyle
	Poly    *PolyStyle
	List    *ListStyle
}

// StyleMap pairs style states (normal/highlight) with style URLs.
type StyleMap struct {
	ID    string
	Pairs []Pair
}

// Pair is one key/styleUrl entry of a StyleMap.
type Pair struct {
	Key      string
	StyleURL string
	Attrs    map[string]string
}

// BalloonStyle controls the description balloon. Display defaults to true;
// only a false value emits a displayMode element ("hide").
type BalloonStyle struct {
	ID        string
	BgColor   string // omitted when empty
	TextColor string
	Text      string // omitted when empty
	Display   bool
}

// NewBalloonStyle returns a BalloonStyle with the schema defaults applied.
func NewBalloonStyle() *BalloonStyle {
	return &BalloonStyle{TextColor: "ff000000", Display: true}
}

// HotSpot anchors an icon to a point, rendered entirely as tag attributes.
type HotSpot struct {
	X, Y   float64
	XUnits Units
	YUnits Units
}

// Icon is the image reference inside an IconStyle. The standalone link-type
// <Icon> element is LinkTypeIcon.
type Icon struct {
	Href string
}

// IconStyle controls placemark icon rendering.
type IconStyle struct {
	ID        string
	Scale     float64
	Heading   float64
	HotSpot   *HotSpot
	Color     string
	ColorMode ColorMode
	Icon      Icon
}

// NewIconStyle returns an IconStyle with the schema defaults applied.
func NewIconStyle() *IconStyle {
	return &IconStyle{Scale: 1, Color: "ffffffff"}
}

// LabelStyle controls placemark label rendering.
type LabelStyle struct {
	ID        string
	Color     string
	ColorMode ColorMode
	Scale     float64
}

// NewLabelStyle returns a LabelStyle with the schema defaults applied.
func NewLabelStyle() *LabelStyle {
	return &LabelStyle{Color: "ffffffff", Scale: 1}
}

// LineStyle controls line rendering.
type LineStyle struct {
	ID        string
	Color     string
	ColorMode ColorMode
	Width     float64
}

// NewLineStyle returns a LineStyle with the schema defaults applied.
func NewLineStyle() *LineStyle {
	return &LineStyle{Color: "ffffffff", Width: 1}
}

// PolyStyle controls polygon fill and outline rendering. Fill and Outline
// encode as "1"/"0" like every other boolean field.
type PolyStyle struct {
	ID        string
	Color     string
	ColorMode ColorMode
	Fill      bool
	Outline   bool
}

// NewPolyStyle returns a PolyStyle with the schema defaults applied.
func NewPolyStyle() *PolyStyle {
	return &PolyStyle{Color: "ffffffff", Fill: true, Outline: true}
}

// ListStyle controls how a feature appears in list views.
type ListStyle struct {
	ID              string
	BgColor         string
	MaxSnippetLines int
}

// NewListStyle returns a ListStyle with the schema defaults applied.
func NewListStyle() *ListStyle {
	return &ListStyle{BgColor: "ffffffff", MaxSnippetLines: 2}
}

func (*Style) node()        {}
func (*StyleMap) node()     {}
func (*Pair) node()         {}
func (*BalloonStyle) node() {}
func (*IconStyle) node()    {}
func (*Icon) node()         {}
func (*LabelStyle) node()   {}
func (*LineStyle) node()    {}
func (*PolyStyle) node()    {}
func (*ListStyle) node()    {}
