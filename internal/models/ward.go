package models

import (
	"encoding/json"
)

// Ward is an administrative sub-area of the city used as the unit of
// spatial aggregation. Risk fields are recomputed by the aggregation pass
// and are never mutated directly by users.
type Ward struct {
	ID              int64    `json:"id"`
	WardNumber      string   `json:"ward_number"`
	WardName        string   `json:"ward_name"`
	RiskScore       float64  `json:"risk_score"`
	ElevationAvg    *float64 `json:"elevation_avg"`
	SlopeAvg        *float64 `json:"slope_avg"`
	IncidentDensity float64  `json:"incident_density"`

	// Boundary is the ward multipolygon as raw GeoJSON geometry.
	Boundary json.RawMessage `json:"-"`
}

// WardAnalytics wraps a ward with its report counters for the analytics view.
// AvgResolutionHours is nil when the ward has no resolved reports.
type WardAnalytics struct {
	Ward               *Ward    `json:"ward"`
	TotalReports       int      `json:"total_reports"`
	OpenReports        int      `json:"open_reports"`
	ResolvedReports    int      `json:"resolved_reports"`
	AvgResolutionHours *float64 `json:"avg_resolution_time_hours"`
}

// ReportPoint is the minimal projection of a report used by the
// aggregation snapshot.
type ReportPoint struct {
	ID        int64
	Latitude  float64
	Longitude float64
}
