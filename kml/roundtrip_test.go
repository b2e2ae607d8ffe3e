package kml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// canonicalDoc is already in encoder output form: schema field order, sorted
// attributes, "0"/"1" booleans, newline-joined coordinates, no self-closing
// tags.
const canonicalDoc = `<kml xmlns="http://www.opengis.net/kml/2.2"><Document>` +
	`<Style id="trail">` +
	`<LineStyle id=""><color>7f0000ff</color><colorMode>normal</colorMode><width>4</width></LineStyle>` +
	`<PolyStyle id=""><color>7f00ff00</color><colorMode>normal</colorMode><fill>1</fill><outline>0</outline></PolyStyle>` +
	`</Style>` +
	`<Folder>` +
	`<Placemark><name>Ridge</name><description>Steep</description>` +
	`<styleUrl>#trail</styleUrl>` +
	`<MultiGeometry>` +
	`<Point><extrude>0</extrude><altitudeMode>clampToGround</altitudeMode><coordinates>-122.1,37.4</coordinates></Point>` +
	`<LineString><extrude>0</extrude><tessellate>1</tessellate><altitudeMode>clampToGround</altitudeMode>` +
	"<coordinates>-122.1,37.4,0\n-122.2,37.5,0</coordinates>" +
	`</LineString>` +
	`</MultiGeometry>` +
	`</Placemark>` +
	`<Placemark><ExtendedData><SchemaData schemaUrl="#t"><SimpleData name="length">5.3</SimpleData></SchemaData></ExtendedData></Placemark>` +
	`</Folder>` +
	`</Document></kml>`

func TestRoundTripBytesStable(t *testing.T) {
	tree, err := Parse(canonicalDoc)
	require.NoError(t, err)

	out, err := MarshalString(tree)
	require.NoError(t, err)
	require.Equal(t, canonicalDoc, out)
}

func TestRoundTripTreeStable(t *testing.T) {
	tree, err := Parse(canonicalDoc)
	require.NoError(t, err)

	out, err := MarshalString(tree)
	require.NoError(t, err)

	again, err := Parse(out)
	require.NoError(t, err)
	require.Equal(t, tree, again)
}

func TestRoundTripConstructedTree(t *testing.T) {
	orig := &KmlDocument{Children: []Node{
		&Document{Children: []Node{
			&Placemark{
				Name: "Summit",
				Geometry: &Point[float64]{
					Coord:        NewCoordZ[float64](-121.76, 46.85, 4392),
					AltitudeMode: AltitudeModeAbsolute,
				},
			},
			NewScale[float64](),
			func() *Link {
				l := NewLink()
				l.Href = "http://example.com/overlay.kml"
				return l
			}(),
		}},
	}}

	out, err := MarshalString(orig)
	require.NoError(t, err)

	decoded, err := Parse(out)
	require.NoError(t, err)
	require.Equal(t, orig, decoded)
}
