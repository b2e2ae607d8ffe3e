package kml

import (
	"strconv"
	"strings"
)

// finalize turns a popped builder into a concrete node, resolving every
// schema field the input never mentioned to its default. Unrecognized tags
// fold into the generic Element variant rather than failing.
func finalize[T CoordValue](b *builder) (Node, error) {
	switch b.name {
	case "kml":
		return &KmlDocument{Attrs: b.attrs, Children: b.children}, nil
	case "Document":
		return &Document{Attrs: b.attrs, Children: b.children}, nil
	case "Folder":
		return &Folder{Attrs: b.attrs, Children: b.children}, nil
	case "Placemark":
		return finalizePlacemark(b), nil
	case "Point":
		return finalizePoint[T](b)
	case "LineString":
		l, err := finalizeLineProps[T](b)
		if err != nil {
			return nil, err
		}
		return (*LineString[T])(l), nil
	case "LinearRing":
		l, err := finalizeLineProps[T](b)
		if err != nil {
			return nil, err
		}
		return l, nil
	case "Polygon":
		return finalizePolygon[T](b)
	case "MultiGeometry":
		return finalizeMultiGeometry[T](b), nil
	case "Location":
		return finalizeLocation[T](b)
	case "Orientation":
		return finalizeOrientation[T](b)
	case "Scale":
		return finalizeScale[T](b)
	case "Style":
		return finalizeStyle(b), nil
	case "StyleMap":
		return finalizeStyleMap(b), nil
	case "Pair":
		return finalizePair(b), nil
	case "BalloonStyle":
		return finalizeBalloonStyle(b), nil
	case "IconStyle":
		return finalizeIconStyle(b)
	case "LabelStyle":
		return finalizeLabelStyle(b)
	case "LineStyle":
		return finalizeLineStyle(b)
	case "PolyStyle":
		return finalizePolyStyle(b)
	case "ListStyle":
		return finalizeListStyle(b)
	case "Link":
		return finalizeLinkFields(b)
	case "Icon":
		// A bare Icon is the link-type element; an IconStyle parent reduces
		// it to the href-only form during its own finalize.
		l, err := finalizeLinkFields(b)
		if err != nil {
			return nil, err
		}
		return (*LinkTypeIcon)(l), nil
	case "ResourceMap":
		return finalizeResourceMap(b), nil
	case "Alias":
		return finalizeAlias(b), nil
	case "SchemaData":
		return finalizeSchemaData(b), nil
	case "SimpleData":
		return &SimpleData{Value: b.content(), Attrs: b.attrs}, nil
	case "SimpleArrayData":
		return finalizeSimpleArrayData(b), nil
	default:
		return b.genericElement(), nil
	}
}

func finalizePlacemark(b *builder) *Placemark {
	p := &Placemark{}
	for _, c := range b.children {
		if el, ok := c.(*Element); ok {
			switch el.Name {
			case "name":
				p.Name = el.Content
				continue
			case "description":
				p.Description = el.Content
				continue
			}
		}
		if g, ok := c.(Geometry); ok && p.Geometry == nil {
			p.Geometry = g
			continue
		}
		p.Children = append(p.Children, c)
	}
	return p
}

func finalizePoint[T CoordValue](b *builder) (Node, error) {
	p := &Point[T]{}
	var err error
	if p.Extrude, err = boolField(b, "extrude"); err != nil {
		return nil, err
	}
	if p.AltitudeMode, err = altitudeModeField(b); err != nil {
		return nil, err
	}
	coords, err := coordsField[T](b)
	if err != nil {
		return nil, err
	}
	if len(coords) > 0 {
		p.Coord = coords[0]
	}
	return p, nil
}

// finalizeLineProps decodes the shared LineString/LinearRing field set.
func finalizeLineProps[T CoordValue](b *builder) (*LinearRing[T], error) {
	l := &LinearRing[T]{}
	var err error
	if l.Extrude, err = boolField(b, "extrude"); err != nil {
		return nil, err
	}
	if l.Tessellate, err = boolField(b, "tessellate"); err != nil {
		return nil, err
	}
	if l.AltitudeMode, err = altitudeModeField(b); err != nil {
		return nil, err
	}
	if l.Coords, err = coordsField[T](b); err != nil {
		return nil, err
	}
	return l, nil
}

func finalizePolygon[T CoordValue](b *builder) (Node, error) {
	p := &Polygon[T]{Attrs: b.attrs}
	var err error
	if p.Extrude, err = boolField(b, "extrude"); err != nil {
		return nil, err
	}
	if p.Tessellate, err = boolField(b, "tessellate"); err != nil {
		return nil, err
	}
	if p.AltitudeMode, err = altitudeModeField(b); err != nil {
		return nil, err
	}
	// The boundary wrappers carry meaning only under a Polygon, so they
	// arrive as generic elements and are unwrapped here.
	haveOuter := false
	for _, c := range b.children {
		el, ok := c.(*Element)
		if !ok || (el.Name != "outerBoundaryIs" && el.Name != "innerBoundaryIs") {
			continue
		}
		for _, gc := range el.Children {
			r, ok := gc.(*LinearRing[T])
			if !ok {
				continue
			}
			if el.Name == "outerBoundaryIs" {
				if !haveOuter {
					p.Outer = *r
					haveOuter = true
				}
			} else {
				p.Inner = append(p.Inner, *r)
			}
		}
	}
	if !haveOuter {
		return nil, &Error{
			Kind:  KindUnexpectedElement,
			Msg:   "kml: Polygon requires an outerBoundaryIs with a LinearRing",
			Token: "Polygon",
		}
	}
	return p, nil
}

func finalizeMultiGeometry[T CoordValue](b *builder) *MultiGeometry[T] {
	m := &MultiGeometry[T]{Attrs: b.attrs}
	for _, c := range b.children {
		if g, ok := c.(Geometry); ok {
			m.Geometries = append(m.Geometries, g)
		}
	}
	return m
}

func finalizeLocation[T CoordValue](b *builder) (Node, error) {
	l := &Location[T]{}
	var err error
	if l.Longitude, err = valueField[T](b, "longitude", 0); err != nil {
		return nil, err
	}
	if l.Latitude, err = valueField[T](b, "latitude", 0); err != nil {
		return nil, err
	}
	if l.Altitude, err = valueField[T](b, "altitude", 0); err != nil {
		return nil, err
	}
	return l, nil
}

func finalizeOrientation[T CoordValue](b *builder) (Node, error) {
	o := &Orientation[T]{}
	var err error
	if o.Roll, err = valueField[T](b, "roll", 0); err != nil {
		return nil, err
	}
	if o.Tilt, err = valueField[T](b, "tilt", 0); err != nil {
		return nil, err
	}
	if o.Heading, err = valueField[T](b, "heading", 0); err != nil {
		return nil, err
	}
	return o, nil
}

func finalizeScale[T CoordValue](b *builder) (Node, error) {
	s := NewScale[T]()
	var err error
	if s.X, err = valueField[T](b, "x", 1); err != nil {
		return nil, err
	}
	if s.Y, err = valueField[T](b, "y", 1); err != nil {
		return nil, err
	}
	if s.Z, err = valueField[T](b, "z", 1); err != nil {
		return nil, err
	}
	return s, nil
}

func finalizeStyle(b *builder) *Style {
	s := &Style{ID: b.attrs["id"]}
	for _, c := range b.children {
		switch v := c.(type) {
		case *BalloonStyle:
			if s.Balloon == nil {
				s.Balloon = v
			}
		case *IconStyle:
			if s.Icon == nil {
				s.Icon = v
			}
		case *LabelStyle:
			if s.Label == nil {
				s.Label = v
			}
		case *LineStyle:
			if s.Line == nil {
				s.Line = v
			}
		case *PolyStyle:
			if s.Poly == nil {
				s.Poly = v
			}
		case *ListStyle:
			if s.List == nil {
				s.List = v
			}
		}
	}
	return s
}

func finalizeStyleMap(b *builder) *StyleMap {
	s := &StyleMap{ID: b.attrs["id"]}
	for _, c := range b.children {
		if p, ok := c.(*Pair); ok {
			s.Pairs = append(s.Pairs, *p)
		}
	}
	return s
}

func finalizePair(b *builder) *Pair {
	p := &Pair{Attrs: b.attrs}
	if v, ok := childText(b, "key"); ok {
		p.Key = v
	}
	if v, ok := childText(b, "styleUrl"); ok {
		p.StyleURL = v
	}
	return p
}

func finalizeBalloonStyle(b *builder) *BalloonStyle {
	s := NewBalloonStyle()
	s.ID = b.attrs["id"]
	if v, ok := childText(b, "bgColor"); ok {
		s.BgColor = v
	}
	if v, ok := childText(b, "textColor"); ok {
		s.TextColor = v
	}
	if v, ok := childText(b, "text"); ok {
		s.Text = v
	}
	if v, ok := childText(b, "displayMode"); ok {
		s.Display = v != "hide"
	}
	return s
}

func finalizeIconStyle(b *builder) (Node, error) {
	s := NewIconStyle()
	s.ID = b.attrs["id"]
	var err error
	if s.Scale, err = floatField(b, "scale", 1); err != nil {
		return nil, err
	}
	if s.Heading, err = floatField(b, "heading", 0); err != nil {
		return nil, err
	}
	if s.Color, s.ColorMode, err = colorFields(b, s.Color); err != nil {
		return nil, err
	}
	if el := childElement(b, "hotSpot"); el != nil {
		if s.HotSpot, err = finalizeHotSpot(el); err != nil {
			return nil, err
		}
	}
	for _, c := range b.children {
		if i, ok := c.(*LinkTypeIcon); ok {
			s.Icon = Icon{Href: i.Href}
			break
		}
	}
	return s, nil
}

func finalizeHotSpot(el *Element) (*HotSpot, error) {
	h := &HotSpot{}
	var err error
	if v, ok := el.Attrs["x"]; ok {
		if h.X, err = strconv.ParseFloat(v, 64); err != nil {
			return nil, numericErr(v, err)
		}
	}
	if v, ok := el.Attrs["y"]; ok {
		if h.Y, err = strconv.ParseFloat(v, 64); err != nil {
			return nil, numericErr(v, err)
		}
	}
	if v, ok := el.Attrs["xunits"]; ok {
		if h.XUnits, err = ParseUnits(v); err != nil {
			return nil, err
		}
	}
	if v, ok := el.Attrs["yunits"]; ok {
		if h.YUnits, err = ParseUnits(v); err != nil {
			return nil, err
		}
	}
	return h, nil
}

func finalizeLabelStyle(b *builder) (Node, error) {
	s := NewLabelStyle()
	s.ID = b.attrs["id"]
	var err error
	if s.Color, s.ColorMode, err = colorFields(b, s.Color); err != nil {
		return nil, err
	}
	if s.Scale, err = floatField(b, "scale", 1); err != nil {
		return nil, err
	}
	return s, nil
}

func finalizeLineStyle(b *builder) (Node, error) {
	s := NewLineStyle()
	s.ID = b.attrs["id"]
	var err error
	if s.Color, s.ColorMode, err = colorFields(b, s.Color); err != nil {
		return nil, err
	}
	if s.Width, err = floatField(b, "width", 1); err != nil {
		return nil, err
	}
	return s, nil
}

func finalizePolyStyle(b *builder) (Node, error) {
	s := NewPolyStyle()
	s.ID = b.attrs["id"]
	var err error
	if s.Color, s.ColorMode, err = colorFields(b, s.Color); err != nil {
		return nil, err
	}
	if v, ok := childText(b, "fill"); ok {
		if s.Fill, err = parseSchemaBool(v); err != nil {
			return nil, err
		}
	}
	if v, ok := childText(b, "outline"); ok {
		if s.Outline, err = parseSchemaBool(v); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func finalizeListStyle(b *builder) (Node, error) {
	s := NewListStyle()
	s.ID = b.attrs["id"]
	if v, ok := childText(b, "bgColor"); ok {
		s.BgColor = v
	}
	if v, ok := childText(b, "maxSnippetLines"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, numericErr(v, err)
		}
		s.MaxSnippetLines = n
	}
	return s, nil
}

// finalizeLinkFields decodes the shared Link/Icon field set, applying the
// hard defaults (refreshInterval=4, viewRefreshTime=4, viewBoundScale=1).
func finalizeLinkFields(b *builder) (*Link, error) {
	l := NewLink()
	l.Attrs = b.attrs
	var err error
	if v, ok := childText(b, "href"); ok {
		l.Href = v
	}
	if v, ok := childText(b, "refreshMode"); ok {
		m, err := ParseRefreshMode(strings.TrimSpace(v))
		if err != nil {
			return nil, err
		}
		l.RefreshMode = &m
	}
	if l.RefreshInterval, err = floatField(b, "refreshInterval", 4); err != nil {
		return nil, err
	}
	if v, ok := childText(b, "viewRefreshMode"); ok {
		m, err := ParseViewRefreshMode(strings.TrimSpace(v))
		if err != nil {
			return nil, err
		}
		l.ViewRefreshMode = &m
	}
	if l.ViewRefreshTime, err = floatField(b, "viewRefreshTime", 4); err != nil {
		return nil, err
	}
	if l.ViewBoundScale, err = floatField(b, "viewBoundScale", 1); err != nil {
		return nil, err
	}
	if v, ok := childText(b, "viewFormat"); ok {
		l.ViewFormat = v
	}
	if v, ok := childText(b, "httpQuery"); ok {
		l.HTTPQuery = v
	}
	return l, nil
}

func finalizeResourceMap(b *builder) *ResourceMap {
	r := &ResourceMap{Attrs: b.attrs}
	for _, c := range b.children {
		if a, ok := c.(*Alias); ok {
			r.Aliases = append(r.Aliases, *a)
		}
	}
	return r
}

func finalizeAlias(b *builder) *Alias {
	a := &Alias{Attrs: b.attrs}
	if v, ok := childText(b, "targetHref"); ok {
		a.TargetHref = v
	}
	if v, ok := childText(b, "sourceHref"); ok {
		a.SourceHref = v
	}
	return a
}

func finalizeSchemaData(b *builder) *SchemaData {
	s := &SchemaData{Attrs: b.attrs}
	for _, c := range b.children {
		switch v := c.(type) {
		case *SimpleData:
			s.Data = append(s.Data, *v)
		case *SimpleArrayData:
			s.Arrays = append(s.Arrays, *v)
		}
	}
	return s
}

func finalizeSimpleArrayData(b *builder) *SimpleArrayData {
	s := &SimpleArrayData{Attrs: b.attrs}
	for _, c := range b.children {
		if el, ok := c.(*Element); ok && el.Name == "value" {
			s.Values = append(s.Values, el.Content)
		}
	}
	return s
}

// childText returns the text content of the first generic child named tag.
func childText(b *builder, tag string) (string, bool) {
	if el := childElement(b, tag); el != nil {
		return el.Content, true
	}
	return "", false
}

// childElement returns the first generic child named tag, or nil.
func childElement(b *builder, tag string) *Element {
	for _, c := range b.children {
		if el, ok := c.(*Element); ok && el.Name == tag {
			return el
		}
	}
	return nil
}

// boolField reads a "0"/"1" child, defaulting to false when absent.
func boolField(b *builder, tag string) (bool, error) {
	v, ok := childText(b, tag)
	if !ok {
		return false, nil
	}
	return parseSchemaBool(v)
}

// parseSchemaBool accepts the schema's "0"/"1" tokens plus the lenient
// "true"/"false" spellings seen in the wild. Empty text means false.
func parseSchemaBool(s string) (bool, error) {
	switch strings.TrimSpace(s) {
	case "1", "true":
		return true, nil
	case "0", "false", "":
		return false, nil
	}
	return false, numericErr(s, nil)
}

// floatField reads a float64 child, returning def when absent.
func floatField(b *builder, tag string, def float64) (float64, error) {
	v, ok := childText(b, tag)
	if !ok {
		return def, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, numericErr(v, err)
	}
	return f, nil
}

// valueField reads a generic scalar child at T's precision, returning def
// when absent.
func valueField[T CoordValue](b *builder, tag string, def T) (T, error) {
	v, ok := childText(b, tag)
	if !ok {
		return def, nil
	}
	f, err := parseValue[T](v)
	if err != nil {
		return 0, numericErr(v, err)
	}
	return f, nil
}

// altitudeModeField reads the altitudeMode child, defaulting to
// clampToGround.
func altitudeModeField(b *builder) (AltitudeMode, error) {
	v, ok := childText(b, "altitudeMode")
	if !ok {
		return AltitudeModeClampToGround, nil
	}
	return ParseAltitudeMode(strings.TrimSpace(v))
}

// coordsField reads and tokenizes the coordinates child.
func coordsField[T CoordValue](b *builder) ([]Coord[T], error) {
	v, ok := childText(b, "coordinates")
	if !ok {
		return nil, nil
	}
	return ParseCoords[T](v)
}

// colorFields reads the color/colorMode pair shared by the sub-styles.
func colorFields(b *builder, defColor string) (string, ColorMode, error) {
	color := defColor
	if v, ok := childText(b, "color"); ok {
		color = v
	}
	mode := ColorModeNormal
	if v, ok := childText(b, "colorMode"); ok {
		var err error
		if mode, err = ParseColorMode(strings.TrimSpace(v)); err != nil {
			return "", 0, err
		}
	}
	return color, mode, nil
}
