package schema

// GeoJSON - mongo and map location format
type GeoJSON struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

func NewPoint(p GeoPoint) GeoJSON {
	return GeoJSON{
		Type:        "Point",
		Coordinates: []float64{p.Longitude(), p.Latitude()},
	}
}

type Feature struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties"`
	Geometry   GeoJSON                `json:"geometry"`
}

type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

func newFeatureCollection(size int) FeatureCollection {
	return FeatureCollection{
		Type:     "FeatureCollection",
		Features: make([]Feature, 0, size),
	}
}

// WeightedFeatures wraps heat samples as point features carrying an
// `intensity` property, the source format of a heat map layer.
func WeightedFeatures(samples []WeightedSample) FeatureCollection {
	fc := newFeatureCollection(len(samples))
	for _, s := range samples {
		fc.Features = append(fc.Features, Feature{
			Type:       "Feature",
			Properties: map[string]interface{}{"intensity": s.Intensity},
			Geometry:   NewPoint(s.Coordinates),
		})
	}
	return fc
}

// SymptomFeatures wraps symptom samples as point features for markers.
func SymptomFeatures(samples []SymptomSample) FeatureCollection {
	fc := newFeatureCollection(len(samples))
	for _, s := range samples {
		fc.Features = append(fc.Features, Feature{
			Type: "Feature",
			Properties: map[string]interface{}{
				"symptom":  s.Symptom,
				"severity": s.Severity,
				"color":    s.Color,
			},
			Geometry: NewPoint(s.Coordinates),
		})
	}
	return fc
}
