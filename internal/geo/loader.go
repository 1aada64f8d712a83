package geo

import (
	"encoding/json"
	"fmt"
	"os"
)

// WardFeature is one ward read from a boundary GeoJSON file.
type WardFeature struct {
	WardNumber string
	WardName   string
	Geometry   json.RawMessage
}

type featureCollection struct {
	Type     string `json:"type"`
	Features []struct {
		Properties map[string]any  `json:"properties"`
		Geometry   json.RawMessage `json:"geometry"`
	} `json:"features"`
}

// LoadWardFeatures reads ward boundaries from a GeoJSON FeatureCollection.
// Ward number and name are looked up under the property aliases the source
// datasets use; features without a number get a positional one.
func LoadWardFeatures(path string) ([]WardFeature, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ward geojson %s: %w", path, err)
	}

	var fc featureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to decode ward geojson: %w", err)
	}
	if fc.Type != "FeatureCollection" {
		return nil, fmt.Errorf("ward geojson root is %q, want FeatureCollection", fc.Type)
	}

	features := make([]WardFeature, 0, len(fc.Features))
	for i, f := range fc.Features {
		number := propString(f.Properties, "ward_no", "WARD_NO", "ward_number")
		if number == "" {
			number = fmt.Sprintf("%d", i+1)
		}
		name := propString(f.Properties, "ward_name", "WARD_NAME")
		if name == "" {
			name = fmt.Sprintf("Ward %s", number)
		}
		if _, err := ParseGeometry(f.Geometry); err != nil {
			return nil, fmt.Errorf("feature %d (%s): %w", i, number, err)
		}
		features = append(features, WardFeature{
			WardNumber: number,
			WardName:   name,
			Geometry:   f.Geometry,
		})
	}
	return features, nil
}

func propString(props map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := props[k]; ok {
			switch t := v.(type) {
			case string:
				return t
			case float64:
				return fmt.Sprintf("%.0f", t)
			}
		}
	}
	return ""
}
