package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const squareGeoJSON = `{
	"type": "Polygon",
	"coordinates": [[[77.0, 28.0], [78.0, 28.0], [78.0, 29.0], [77.0, 29.0], [77.0, 28.0]]]
}`

const squareWithHoleGeoJSON = `{
	"type": "Polygon",
	"coordinates": [
		[[77.0, 28.0], [78.0, 28.0], [78.0, 29.0], [77.0, 29.0], [77.0, 28.0]],
		[[77.4, 28.4], [77.6, 28.4], [77.6, 28.6], [77.4, 28.6], [77.4, 28.4]]
	]
}`

func TestParseGeometry_Polygon(t *testing.T) {
	mp, err := ParseGeometry([]byte(squareGeoJSON))
	require.NoError(t, err)
	require.Len(t, mp, 1)
	require.Len(t, mp[0], 1)
	assert.Len(t, mp[0][0], 5)
}

func TestParseGeometry_MultiPolygon(t *testing.T) {
	raw := `{
		"type": "MultiPolygon",
		"coordinates": [
			[[[77.0, 28.0], [78.0, 28.0], [78.0, 29.0], [77.0, 28.0]]],
			[[[79.0, 28.0], [80.0, 28.0], [80.0, 29.0], [79.0, 28.0]]]
		]
	}`
	mp, err := ParseGeometry([]byte(raw))
	require.NoError(t, err)
	assert.Len(t, mp, 2)
}

func TestParseGeometry_Rejects(t *testing.T) {
	_, err := ParseGeometry([]byte(`{"type": "Point", "coordinates": [77, 28]}`))
	assert.Error(t, err)

	_, err = ParseGeometry([]byte(`{"type": "Polygon", "coordinates": [[[77, 28], [78, 28]]]}`))
	assert.Error(t, err)

	_, err = ParseGeometry([]byte(`not json`))
	assert.Error(t, err)
}

func TestContains(t *testing.T) {
	mp, err := ParseGeometry([]byte(squareGeoJSON))
	require.NoError(t, err)

	assert.True(t, mp.Contains(28.5, 77.5))
	assert.False(t, mp.Contains(29.5, 77.5))
	assert.False(t, mp.Contains(28.5, 76.5))
}

func TestContains_Hole(t *testing.T) {
	mp, err := ParseGeometry([]byte(squareWithHoleGeoJSON))
	require.NoError(t, err)

	assert.True(t, mp.Contains(28.2, 77.2))
	// Inside the hole counts as outside the boundary.
	assert.False(t, mp.Contains(28.5, 77.5))
}

func TestAreaKm2(t *testing.T) {
	mp, err := ParseGeometry([]byte(squareGeoJSON))
	require.NoError(t, err)

	// One square degree scaled by 111 km per degree.
	assert.InDelta(t, 111.0*111.0, mp.AreaKm2(), 1e-6)
}

func TestAreaKm2_HoleSubtracts(t *testing.T) {
	mp, err := ParseGeometry([]byte(squareWithHoleGeoJSON))
	require.NoError(t, err)

	expected := (1.0 - 0.2*0.2) * 111.0 * 111.0
	assert.InDelta(t, expected, mp.AreaKm2(), 1e-6)
}

func TestDensity(t *testing.T) {
	assert.Equal(t, 0.0, Density(10, 0))
	assert.Equal(t, 0.0, Density(10, -5))
	// Sliver areas are floored at 0.1 km².
	assert.InDelta(t, 100.0, Density(10, 0.05), 1e-9)
	assert.InDelta(t, 2.0, Density(10, 5), 1e-9)
	assert.Equal(t, 0.0, Density(0, 5))
}
