// Package risk computes the 0-100 water-logging risk score for a ward and
// maps scores to categories and preparedness recommendations.
package risk

// Factor weights. Terrain weights shift onto incident density when the
// corresponding feature is unavailable for a ward, so a ward with no
// elevation data is scored on density alone with weight 1.0.
const (
	weightElevation = 0.30
	weightSlope     = 0.25
	weightDensity   = 0.45
)

// Features holds the per-ward inputs to the scorer. ElevationAvg and
// SlopeAvg are nil when no terrain data exists for the ward.
type Features struct {
	IncidentDensity float64
	ElevationAvg    *float64
	SlopeAvg        *float64
}

// Score combines normalized incident density with terrain features into a
// score in [0,100]. It is deterministic and monotonic in density: holding
// the other features fixed, a higher density never lowers the score.
func Score(f Features) float64 {
	densityWeight := weightDensity
	score := 0.0

	if f.ElevationAvg != nil {
		score += elevationRisk(*f.ElevationAvg) * weightElevation
	} else {
		densityWeight += weightElevation
	}

	if f.SlopeAvg != nil {
		score += slopeRisk(*f.SlopeAvg) * weightSlope
	} else {
		densityWeight += weightSlope
	}

	score += densityRisk(f.IncidentDensity) * densityWeight

	return clamp(score, 0, 100)
}

// elevationRisk normalizes average elevation to a 0-100 risk contribution.
// The city floor sits between roughly 200m and 300m; lower ground floods first.
func elevationRisk(elevation float64) float64 {
	if elevation < 200 {
		return 100
	}
	if elevation > 300 {
		return 0
	}
	return 100 - (elevation - 200)
}

// slopeRisk normalizes average slope in degrees. Flat terrain accumulates
// water, steep terrain drains.
func slopeRisk(slope float64) float64 {
	if slope < 0.5 {
		return 90
	}
	if slope > 5.0 {
		return 10
	}
	return 90 - (slope/5.0)*80
}

// densityRisk normalizes incidents per square kilometre.
func densityRisk(density float64) float64 {
	switch {
	case density > 10:
		return 100
	case density > 5:
		return 70
	case density > 2:
		return 40
	case density > 0.5:
		return 20
	default:
		return 5
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
