package models

import (
	"encoding/json"
)

// Feature is a GeoJSON feature with free-form properties.
type Feature struct {
	Type       string          `json:"type"`
	Properties map[string]any  `json:"properties"`
	Geometry   json.RawMessage `json:"geometry"`
}

// FeatureCollection is a GeoJSON feature collection, the wire format of
// the hotspot and report map layers.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// NewFeatureCollection returns an empty collection with a non-nil feature
// slice so it serializes as [] rather than null.
func NewFeatureCollection() *FeatureCollection {
	return &FeatureCollection{
		Type:     "FeatureCollection",
		Features: make([]Feature, 0),
	}
}

// PointGeometry builds a GeoJSON point geometry from a coordinate pair.
func PointGeometry(lon, lat float64) json.RawMessage {
	geom, _ := json.Marshal(map[string]any{
		"type":        "Point",
		"coordinates": []float64{lon, lat},
	})
	return geom
}
