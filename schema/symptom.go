package schema

type Severity string

const (
	Low    Severity = "Low"
	Medium Severity = "Medium"
	High   Severity = "High"
)

// Severities is indexed by the severity draw of a symptom sample.
var Severities = [3]Severity{Low, Medium, High}

var severityColors = map[Severity]string{
	Low:    "#4ade80",
	Medium: "#facc15",
	High:   "#ef4444",
}

// Color returns the marker color of a severity. Unknown values are drawn
// like Low.
func (s Severity) Color() string {
	if c, ok := severityColors[s]; ok {
		return c
	}
	return severityColors[Low]
}

// WeightedSample is one point of a heat map density layer.
type WeightedSample struct {
	Coordinates GeoPoint `json:"coordinates"`
	Intensity   int      `json:"intensity"`
}

// SymptomSample is one simulated symptom report marker.
type SymptomSample struct {
	Coordinates GeoPoint `json:"coordinates"`
	Symptom     string   `json:"symptom"`
	Severity    Severity `json:"severity"`
	Color       string   `json:"color"`
}
