// Package geo implements the spatial side of the aggregation pass: parsing
// ward boundary GeoJSON, point-in-polygon ward assignment, and incident
// density over ward area.
package geo

import (
	"encoding/json"
	"fmt"
	"math"
)

// Ring is a closed linear ring of [longitude, latitude] positions.
type Ring [][2]float64

// Polygon is an outer ring followed by zero or more holes.
type Polygon []Ring

// MultiPolygon is a set of polygons forming one ward boundary.
type MultiPolygon []Polygon

// kmPerDegree approximates the length of one degree at Delhi's latitude.
// Ward polygons are small enough that planar math is adequate here.
const kmPerDegree = 111.0

type rawGeometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// ParseGeometry decodes a GeoJSON geometry object of type Polygon or
// MultiPolygon into a MultiPolygon. Extra position dimensions (altitude)
// are dropped.
func ParseGeometry(raw []byte) (MultiPolygon, error) {
	var g rawGeometry
	if err := json.Unmarshal(raw, &g); err != nil {
		return nil, fmt.Errorf("failed to decode geometry: %w", err)
	}

	switch g.Type {
	case "Polygon":
		var coords [][][]float64
		if err := json.Unmarshal(g.Coordinates, &coords); err != nil {
			return nil, fmt.Errorf("failed to decode polygon coordinates: %w", err)
		}
		p, err := toPolygon(coords)
		if err != nil {
			return nil, err
		}
		return MultiPolygon{p}, nil
	case "MultiPolygon":
		var coords [][][][]float64
		if err := json.Unmarshal(g.Coordinates, &coords); err != nil {
			return nil, fmt.Errorf("failed to decode multipolygon coordinates: %w", err)
		}
		mp := make(MultiPolygon, 0, len(coords))
		for _, pc := range coords {
			p, err := toPolygon(pc)
			if err != nil {
				return nil, err
			}
			mp = append(mp, p)
		}
		return mp, nil
	default:
		return nil, fmt.Errorf("unsupported geometry type %q", g.Type)
	}
}

func toPolygon(coords [][][]float64) (Polygon, error) {
	if len(coords) == 0 {
		return nil, fmt.Errorf("polygon has no rings")
	}
	p := make(Polygon, 0, len(coords))
	for _, rc := range coords {
		if len(rc) < 3 {
			return nil, fmt.Errorf("ring has fewer than 3 positions")
		}
		ring := make(Ring, 0, len(rc))
		for _, pos := range rc {
			if len(pos) < 2 {
				return nil, fmt.Errorf("position has fewer than 2 coordinates")
			}
			ring = append(ring, [2]float64{pos[0], pos[1]})
		}
		p = append(p, ring)
	}
	return p, nil
}

// Contains reports whether the point lies inside the boundary: inside any
// polygon's outer ring and outside its holes.
func (m MultiPolygon) Contains(lat, lon float64) bool {
	for _, p := range m {
		if len(p) == 0 {
			continue
		}
		if !ringContains(p[0], lon, lat) {
			continue
		}
		inHole := false
		for _, hole := range p[1:] {
			if ringContains(hole, lon, lat) {
				inHole = true
				break
			}
		}
		if !inHole {
			return true
		}
	}
	return false
}

// ringContains is a standard ray-casting test in lon/lat space.
func ringContains(ring Ring, x, y float64) bool {
	inside := false
	n := len(ring)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := ring[i][0], ring[i][1]
		xj, yj := ring[j][0], ring[j][1]
		if (yi > y) != (yj > y) &&
			x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}

// AreaKm2 returns the boundary area in square kilometres using the
// shoelace formula in degree space scaled by kmPerDegree squared.
// Holes subtract from the total.
func (m MultiPolygon) AreaKm2() float64 {
	total := 0.0
	for _, p := range m {
		if len(p) == 0 {
			continue
		}
		total += ringArea(p[0])
		for _, hole := range p[1:] {
			total -= ringArea(hole)
		}
	}
	return total * kmPerDegree * kmPerDegree
}

func ringArea(ring Ring) float64 {
	sum := 0.0
	n := len(ring)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += ring[i][0]*ring[j][1] - ring[j][0]*ring[i][1]
	}
	return math.Abs(sum) / 2
}

// Density converts an incident count over an area into incidents per km².
// A degenerate (zero or negative) area is a data error, not a fault: the
// caller logs it and the ward contributes density 0. Very small but valid
// areas are floored at 0.1 km² so a sliver ward cannot explode the score.
func Density(count int, areaKm2 float64) float64 {
	if areaKm2 <= 0 {
		return 0
	}
	return float64(count) / math.Max(areaKm2, 0.1)
}
