package kml

import (
	"bytes"
	"io"
	"sort"
	"strconv"

	"github.com/joshuapare/kmlkit/internal/xmlenc"
)

// Encoder serializes a document tree as canonical, schema-ordered KML. The
// type parameter selects the coordinate precision the geometry dispatch
// matches on; geometry nodes built at a different precision are skipped (see
// OnSkip).
//
// The traversal is read-only and never retains the tree, so a single tree
// may be encoded concurrently by multiple encoders.
type Encoder[T CoordValue] struct {
	w *xmlenc.Writer

	// OnSkip, when non-nil, observes nodes the dispatcher has no case for,
	// which are omitted from the output rather than failing the encode.
	// In practice these are geometry variants of a foreign precision.
	OnSkip func(Node)
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder[T CoordValue](w io.Writer) *Encoder[T] {
	return &Encoder[T]{w: xmlenc.NewWriter(w)}
}

// Encode writes n and its subtree. The document model makes invalid trees
// unrepresentable, so the only failure mode is sink I/O, reported with
// KindIO. Partial output may have been written when an error is returned.
func (e *Encoder[T]) Encode(n Node) error {
	if err := e.encodeNode(n); err != nil {
		return ioErr(err)
	}
	if err := e.w.Flush(); err != nil {
		return ioErr(err)
	}
	return nil
}

// Marshal encodes n in memory at T's precision.
func Marshal[T CoordValue](n Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder[T](&buf).Encode(n); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalString encodes n into an in-memory string at float64 precision.
// Trees built at another precision use Marshal directly.
func MarshalString(n Node) (string, error) {
	b, err := Marshal[float64](n)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// encodeNode is the exhaustive variant dispatch: exactly one write routine
// per element type.
func (e *Encoder[T]) encodeNode(n Node) error {
	switch v := n.(type) {
	case *KmlDocument:
		return e.container("kml", v.Attrs, v.Children)
	case *Document:
		return e.container("Document", v.Attrs, v.Children)
	case *Folder:
		return e.container("Folder", v.Attrs, v.Children)
	case *Placemark:
		return e.placemark(v)
	case *Point[T]:
		return e.point(v)
	case *LineString[T]:
		return e.lineString(v)
	case *LinearRing[T]:
		return e.linearRing(v)
	case *Polygon[T]:
		return e.polygon(v)
	case *MultiGeometry[T]:
		return e.multiGeometry(v)
	case *Location[T]:
		return e.location(v)
	case *Orientation[T]:
		return e.orientation(v)
	case *Scale[T]:
		return e.scale(v)
	case *Style:
		return e.style(v)
	case *StyleMap:
		return e.styleMap(v)
	case *Pair:
		return e.pair(v)
	case *BalloonStyle:
		return e.balloonStyle(v)
	case *IconStyle:
		return e.iconStyle(v)
	case *Icon:
		return e.icon(v)
	case *LabelStyle:
		return e.labelStyle(v)
	case *LineStyle:
		return e.lineStyle(v)
	case *PolyStyle:
		return e.polyStyle(v)
	case *ListStyle:
		return e.listStyle(v)
	case *LinkTypeIcon:
		return e.linkTypeIcon(v)
	case *Link:
		return e.link(v)
	case *ResourceMap:
		return e.resourceMap(v)
	case *Alias:
		return e.alias(v)
	case *SchemaData:
		return e.schemaData(v)
	case *SimpleData:
		return e.simpleData(v)
	case *SimpleArrayData:
		return e.simpleArrayData(v)
	case *Element:
		return e.element(v)
	default:
		e.skip(n)
		return nil
	}
}

// encodeGeometry dispatches the geometry sub-union. An unmatched variant is
// skipped, not failed, preserving the tolerant write path; OnSkip lets
// callers observe the omission.
func (e *Encoder[T]) encodeGeometry(g Geometry) error {
	switch v := g.(type) {
	case *Point[T]:
		return e.point(v)
	case *LineString[T]:
		return e.lineString(v)
	case *LinearRing[T]:
		return e.linearRing(v)
	case *Polygon[T]:
		return e.polygon(v)
	case *MultiGeometry[T]:
		return e.multiGeometry(v)
	default:
		e.skip(g)
		return nil
	}
}

func (e *Encoder[T]) skip(n Node) {
	if e.OnSkip != nil {
		e.OnSkip(n)
	}
}

// container writes a generic container (kml, Document, Folder): tag
// attributes on the opening tag, then each child through the full dispatch.
func (e *Encoder[T]) container(tag string, attrs map[string]string, children []Node) error {
	if err := e.w.Start(tag, sortedAttrs(attrs)...); err != nil {
		return err
	}
	for _, c := range children {
		if err := e.encodeNode(c); err != nil {
			return err
		}
	}
	return e.w.End(tag)
}

func (e *Encoder[T]) placemark(p *Placemark) error {
	if err := e.w.Start("Placemark"); err != nil {
		return err
	}
	if p.Name != "" {
		if err := e.textElement("name", p.Name); err != nil {
			return err
		}
	}
	if p.Description != "" {
		if err := e.textElement("description", p.Description); err != nil {
			return err
		}
	}
	for _, c := range p.Children {
		if err := e.encodeNode(c); err != nil {
			return err
		}
	}
	if p.Geometry != nil {
		if err := e.encodeGeometry(p.Geometry); err != nil {
			return err
		}
	}
	return e.w.End("Placemark")
}

func (e *Encoder[T]) point(p *Point[T]) error {
	if err := e.w.Start("Point"); err != nil {
		return err
	}
	if err := e.boolElement("extrude", p.Extrude); err != nil {
		return err
	}
	if err := e.textElement("altitudeMode", p.AltitudeMode.String()); err != nil {
		return err
	}
	if err := e.textElement("coordinates", p.Coord.String()); err != nil {
		return err
	}
	return e.w.End("Point")
}

func (e *Encoder[T]) lineString(l *LineString[T]) error {
	if err := e.w.Start("LineString"); err != nil {
		return err
	}
	if err := e.geomProps(l.Extrude, l.Tessellate, l.AltitudeMode, l.Coords); err != nil {
		return err
	}
	return e.w.End("LineString")
}

func (e *Encoder[T]) linearRing(l *LinearRing[T]) error {
	if err := e.w.Start("LinearRing"); err != nil {
		return err
	}
	if err := e.geomProps(l.Extrude, l.Tessellate, l.AltitudeMode, l.Coords); err != nil {
		return err
	}
	return e.w.End("LinearRing")
}

func (e *Encoder[T]) polygon(p *Polygon[T]) error {
	if err := e.w.Start("Polygon", sortedAttrs(p.Attrs)...); err != nil {
		return err
	}
	if err := e.geomProps(p.Extrude, p.Tessellate, p.AltitudeMode, nil); err != nil {
		return err
	}
	if err := e.w.Start("outerBoundaryIs"); err != nil {
		return err
	}
	if err := e.linearRing(&p.Outer); err != nil {
		return err
	}
	if err := e.w.End("outerBoundaryIs"); err != nil {
		return err
	}
	if len(p.Inner) > 0 {
		if err := e.w.Start("innerBoundaryIs"); err != nil {
			return err
		}
		for i := range p.Inner {
			if err := e.linearRing(&p.Inner[i]); err != nil {
				return err
			}
		}
		if err := e.w.End("innerBoundaryIs"); err != nil {
			return err
		}
	}
	return e.w.End("Polygon")
}

func (e *Encoder[T]) multiGeometry(m *MultiGeometry[T]) error {
	if err := e.w.Start("MultiGeometry", sortedAttrs(m.Attrs)...); err != nil {
		return err
	}
	for _, g := range m.Geometries {
		if err := e.encodeGeometry(g); err != nil {
			return err
		}
	}
	return e.w.End("MultiGeometry")
}

// geomProps writes the shared geometry property bundle in its fixed order:
// extrude, tessellate, altitudeMode, coordinates. Coordinates are omitted
// when the sequence is empty.
func (e *Encoder[T]) geomProps(extrude, tessellate bool, mode AltitudeMode, coords []Coord[T]) error {
	if err := e.boolElement("extrude", extrude); err != nil {
		return err
	}
	if err := e.boolElement("tessellate", tessellate); err != nil {
		return err
	}
	if err := e.textElement("altitudeMode", mode.String()); err != nil {
		return err
	}
	if len(coords) > 0 {
		return e.textElement("coordinates", coordsText(coords))
	}
	return nil
}

func (e *Encoder[T]) location(l *Location[T]) error {
	if err := e.w.Start("Location"); err != nil {
		return err
	}
	if err := e.textElement("longitude", formatValue(l.Longitude)); err != nil {
		return err
	}
	if err := e.textElement("latitude", formatValue(l.Latitude)); err != nil {
		return err
	}
	if err := e.textElement("altitude", formatValue(l.Altitude)); err != nil {
		return err
	}
	return e.w.End("Location")
}

func (e *Encoder[T]) orientation(o *Orientation[T]) error {
	if err := e.w.Start("Orientation"); err != nil {
		return err
	}
	if err := e.textElement("roll", formatValue(o.Roll)); err != nil {
		return err
	}
	if err := e.textElement("tilt", formatValue(o.Tilt)); err != nil {
		return err
	}
	if err := e.textElement("heading", formatValue(o.Heading)); err != nil {
		return err
	}
	return e.w.End("Orientation")
}

func (e *Encoder[T]) scale(s *Scale[T]) error {
	if err := e.w.Start("Scale"); err != nil {
		return err
	}
	if err := e.textElement("x", formatValue(s.X)); err != nil {
		return err
	}
	if err := e.textElement("y", formatValue(s.Y)); err != nil {
		return err
	}
	if err := e.textElement("z", formatValue(s.Z)); err != nil {
		return err
	}
	return e.w.End("Scale")
}

func (e *Encoder[T]) style(s *Style) error {
	if err := e.w.Start("Style", idAttr(s.ID)...); err != nil {
		return err
	}
	if s.Balloon != nil {
		if err := e.balloonStyle(s.Balloon); err != nil {
			return err
		}
	}
	if s.Icon != nil {
		if err := e.iconStyle(s.Icon); err != nil {
			return err
		}
	}
	if s.Label != nil {
		if err := e.labelStyle(s.Label); err != nil {
			return err
		}
	}
	if s.Line != nil {
		if err := e.lineStyle(s.Line); err != nil {
			return err
		}
	}
	if s.Poly != nil {
		if err := e.polyStyle(s.Poly); err != nil {
			return err
		}
	}
	if s.List != nil {
		if err := e.listStyle(s.List); err != nil {
			return err
		}
	}
	return e.w.End("Style")
}

func (e *Encoder[T]) styleMap(s *StyleMap) error {
	if err := e.w.Start("StyleMap", idAttr(s.ID)...); err != nil {
		return err
	}
	for i := range s.Pairs {
		if err := e.pair(&s.Pairs[i]); err != nil {
			return err
		}
	}
	return e.w.End("StyleMap")
}

func (e *Encoder[T]) pair(p *Pair) error {
	if err := e.w.Start("Pair", sortedAttrs(p.Attrs)...); err != nil {
		return err
	}
	if err := e.textElement("key", p.Key); err != nil {
		return err
	}
	if err := e.textElement("styleUrl", p.StyleURL); err != nil {
		return err
	}
	return e.w.End("Pair")
}

func (e *Encoder[T]) balloonStyle(s *BalloonStyle) error {
	if err := e.w.Start("BalloonStyle", idAttr(s.ID)...); err != nil {
		return err
	}
	if s.BgColor != "" {
		if err := e.textElement("bgColor", s.BgColor); err != nil {
			return err
		}
	}
	if err := e.textElement("textColor", s.TextColor); err != nil {
		return err
	}
	if s.Text != "" {
		if err := e.textElement("text", s.Text); err != nil {
			return err
		}
	}
	if !s.Display {
		if err := e.textElement("displayMode", "hide"); err != nil {
			return err
		}
	}
	return e.w.End("BalloonStyle")
}

func (e *Encoder[T]) iconStyle(s *IconStyle) error {
	if err := e.w.Start("IconStyle", idAttr(s.ID)...); err != nil {
		return err
	}
	if err := e.textElement("scale", formatFloat(s.Scale)); err != nil {
		return err
	}
	if err := e.textElement("heading", formatFloat(s.Heading)); err != nil {
		return err
	}
	if s.HotSpot != nil {
		attrs := []xmlenc.Attr{
			{Key: "x", Value: formatFloat(s.HotSpot.X)},
			{Key: "y", Value: formatFloat(s.HotSpot.Y)},
			{Key: "xunits", Value: s.HotSpot.XUnits.String()},
			{Key: "yunits", Value: s.HotSpot.YUnits.String()},
		}
		if err := e.w.Start("hotSpot", attrs...); err != nil {
			return err
		}
		if err := e.w.End("hotSpot"); err != nil {
			return err
		}
	}
	if err := e.textElement("color", s.Color); err != nil {
		return err
	}
	if err := e.textElement("colorMode", s.ColorMode.String()); err != nil {
		return err
	}
	if err := e.icon(&s.Icon); err != nil {
		return err
	}
	return e.w.End("IconStyle")
}

func (e *Encoder[T]) icon(i *Icon) error {
	if err := e.w.Start("Icon"); err != nil {
		return err
	}
	if err := e.textElement("href", i.Href); err != nil {
		return err
	}
	return e.w.End("Icon")
}

func (e *Encoder[T]) labelStyle(s *LabelStyle) error {
	if err := e.w.Start("LabelStyle", idAttr(s.ID)...); err != nil {
		return err
	}
	if err := e.textElement("color", s.Color); err != nil {
		return err
	}
	if err := e.textElement("colorMode", s.ColorMode.String()); err != nil {
		return err
	}
	if err := e.textElement("scale", formatFloat(s.Scale)); err != nil {
		return err
	}
	return e.w.End("LabelStyle")
}

func (e *Encoder[T]) lineStyle(s *LineStyle) error {
	if err := e.w.Start("LineStyle", idAttr(s.ID)...); err != nil {
		return err
	}
	if err := e.textElement("color", s.Color); err != nil {
		return err
	}
	if err := e.textElement("colorMode", s.ColorMode.String()); err != nil {
		return err
	}
	if err := e.textElement("width", formatFloat(s.Width)); err != nil {
		return err
	}
	return e.w.End("LineStyle")
}

func (e *Encoder[T]) polyStyle(s *PolyStyle) error {
	if err := e.w.Start("PolyStyle", idAttr(s.ID)...); err != nil {
		return err
	}
	if err := e.textElement("color", s.Color); err != nil {
		return err
	}
	if err := e.textElement("colorMode", s.ColorMode.String()); err != nil {
		return err
	}
	if err := e.boolElement("fill", s.Fill); err != nil {
		return err
	}
	if err := e.boolElement("outline", s.Outline); err != nil {
		return err
	}
	return e.w.End("PolyStyle")
}

func (e *Encoder[T]) listStyle(s *ListStyle) error {
	if err := e.w.Start("ListStyle", idAttr(s.ID)...); err != nil {
		return err
	}
	if err := e.textElement("bgColor", s.BgColor); err != nil {
		return err
	}
	if err := e.textElement("maxSnippetLines", strconv.Itoa(s.MaxSnippetLines)); err != nil {
		return err
	}
	return e.w.End("ListStyle")
}

func (e *Encoder[T]) link(l *Link) error {
	if err := e.w.Start("Link", sortedAttrs(l.Attrs)...); err != nil {
		return err
	}
	if err := e.linkFields(l); err != nil {
		return err
	}
	return e.w.End("Link")
}

func (e *Encoder[T]) linkTypeIcon(i *LinkTypeIcon) error {
	if err := e.w.Start("Icon", sortedAttrs(i.Attrs)...); err != nil {
		return err
	}
	if err := e.linkFields((*Link)(i)); err != nil {
		return err
	}
	return e.w.End("Icon")
}

// linkFields writes the shared Link/Icon field run. The three interval
// fields carry hard defaults and are always emitted; the rest are
// presence-conditional.
func (e *Encoder[T]) linkFields(l *Link) error {
	if l.Href != "" {
		if err := e.textElement("href", l.Href); err != nil {
			return err
		}
	}
	if l.RefreshMode != nil {
		if err := e.textElement("refreshMode", l.RefreshMode.String()); err != nil {
			return err
		}
	}
	if err := e.textElement("refreshInterval", formatFloat(l.RefreshInterval)); err != nil {
		return err
	}
	if l.ViewRefreshMode != nil {
		if err := e.textElement("viewRefreshMode", l.ViewRefreshMode.String()); err != nil {
			return err
		}
	}
	if err := e.textElement("viewRefreshTime", formatFloat(l.ViewRefreshTime)); err != nil {
		return err
	}
	if err := e.textElement("viewBoundScale", formatFloat(l.ViewBoundScale)); err != nil {
		return err
	}
	if l.ViewFormat != "" {
		if err := e.textElement("viewFormat", l.ViewFormat); err != nil {
			return err
		}
	}
	if l.HTTPQuery != "" {
		if err := e.textElement("httpQuery", l.HTTPQuery); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encoder[T]) resourceMap(r *ResourceMap) error {
	if err := e.w.Start("ResourceMap", sortedAttrs(r.Attrs)...); err != nil {
		return err
	}
	for i := range r.Aliases {
		if err := e.alias(&r.Aliases[i]); err != nil {
			return err
		}
	}
	return e.w.End("ResourceMap")
}

func (e *Encoder[T]) alias(a *Alias) error {
	if err := e.w.Start("Alias", sortedAttrs(a.Attrs)...); err != nil {
		return err
	}
	if a.TargetHref != "" {
		if err := e.textElement("targetHref", a.TargetHref); err != nil {
			return err
		}
	}
	if a.SourceHref != "" {
		if err := e.textElement("sourceHref", a.SourceHref); err != nil {
			return err
		}
	}
	return e.w.End("Alias")
}

func (e *Encoder[T]) schemaData(s *SchemaData) error {
	if err := e.w.Start("SchemaData", sortedAttrs(s.Attrs)...); err != nil {
		return err
	}
	for i := range s.Data {
		if err := e.simpleData(&s.Data[i]); err != nil {
			return err
		}
	}
	for i := range s.Arrays {
		if err := e.simpleArrayData(&s.Arrays[i]); err != nil {
			return err
		}
	}
	return e.w.End("SchemaData")
}

func (e *Encoder[T]) simpleData(s *SimpleData) error {
	if err := e.w.Start("SimpleData", sortedAttrs(s.Attrs)...); err != nil {
		return err
	}
	if err := e.w.Text(s.Value); err != nil {
		return err
	}
	return e.w.End("SimpleData")
}

func (e *Encoder[T]) simpleArrayData(s *SimpleArrayData) error {
	if err := e.w.Start("SimpleArrayData", sortedAttrs(s.Attrs)...); err != nil {
		return err
	}
	for _, v := range s.Values {
		if err := e.textElement("value", v); err != nil {
			return err
		}
	}
	return e.w.End("SimpleArrayData")
}

func (e *Encoder[T]) element(el *Element) error {
	if err := e.w.Start(el.Name, sortedAttrs(el.Attrs)...); err != nil {
		return err
	}
	if el.Content != "" {
		if err := e.w.Text(el.Content); err != nil {
			return err
		}
	}
	for _, c := range el.Children {
		if err := e.encodeNode(c); err != nil {
			return err
		}
	}
	return e.w.End(el.Name)
}

func (e *Encoder[T]) textElement(tag, content string) error {
	if err := e.w.Start(tag); err != nil {
		return err
	}
	if err := e.w.Text(content); err != nil {
		return err
	}
	return e.w.End(tag)
}

// boolElement writes the schema's "0"/"1" boolean tokens, never true/false.
func (e *Encoder[T]) boolElement(tag string, v bool) error {
	if v {
		return e.textElement(tag, "1")
	}
	return e.textElement(tag, "0")
}

// sortedAttrs renders an attribute map in sorted key order so encoding is
// deterministic.
func sortedAttrs(attrs map[string]string) []xmlenc.Attr {
	if len(attrs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]xmlenc.Attr, len(keys))
	for i, k := range keys {
		out[i] = xmlenc.Attr{Key: k, Value: attrs[k]}
	}
	return out
}

// idAttr is the always-emitted id attribute of Style, StyleMap and the
// sub-styles.
func idAttr(id string) []xmlenc.Attr {
	return []xmlenc.Attr{{Key: "id", Value: id}}
}
