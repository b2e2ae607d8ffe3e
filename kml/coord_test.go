package kml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCoordString(t *testing.T) {
	require.Equal(t, "1,1,1", NewCoordZ[float64](1, 1, 1).String())
	require.Equal(t, "1,1", NewCoord[float64](1, 1).String())
	require.Equal(t, "-1.5,3,0", NewCoordZ[float64](-1.5, 3, 0).String())
}

func TestCoordStringSinglePrecision(t *testing.T) {
	// float32 values must render at 32-bit precision, not as widened
	// float64 garbage digits.
	require.Equal(t, "1.1,2.2", NewCoord[float32](1.1, 2.2).String())
}

func TestFormatValueShortestForm(t *testing.T) {
	require.Equal(t, "2", formatValue(2.0))
	require.Equal(t, "3.5", formatValue(3.5))
	require.Equal(t, "-170.279", formatValue(-170.279))
	require.Equal(t, "0", formatValue(0.0))
}

func TestParseCoord(t *testing.T) {
	c, err := ParseCoord[float64]("1,2,3")
	require.NoError(t, err)
	require.Equal(t, NewCoordZ[float64](1, 2, 3), c)

	c, err = ParseCoord[float64]("1.5,-2")
	require.NoError(t, err)
	require.Equal(t, NewCoord[float64](1.5, -2), c)
}

func TestParseCoordErrors(t *testing.T) {
	for _, token := range []string{"1", "1,a", "a,2", "1,2,z", "1,2,3,4", ""} {
		_, err := ParseCoord[float64](token)
		require.Error(t, err, "token %q", token)
		kind, ok := KindOf(err)
		require.True(t, ok)
		require.Equal(t, KindNumericParse, kind)
		require.Contains(t, err.Error(), token)
	}
}

func TestParseCoords(t *testing.T) {
	coords, err := ParseCoords[float64]("-1,2,0\n-1.5,3,0\n  -1.5,2,0 ")
	require.NoError(t, err)
	require.Equal(t, []Coord[float64]{
		NewCoordZ[float64](-1, 2, 0),
		NewCoordZ[float64](-1.5, 3, 0),
		NewCoordZ[float64](-1.5, 2, 0),
	}, coords)

	coords, err = ParseCoords[float64]("   \n ")
	require.NoError(t, err)
	require.Empty(t, coords)
}

func TestParseCoordsNamesOffendingToken(t *testing.T) {
	_, err := ParseCoords[float64]("1,2\nbogus,3\n4,5")
	require.Error(t, err)
	require.Contains(t, err.Error(), `"bogus,3"`)
}
