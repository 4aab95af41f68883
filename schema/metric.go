package schema

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// LegendBand describes one row of the map legend.
type LegendBand struct {
	Level RiskLevel `json:"level"`
	Label string    `json:"label"`
	Range IntRange  `json:"range"`
}

var RiskLegend = []LegendBand{
	{RiskLow, "Low Risk", IntRange{0, 4}},
	{RiskMedium, "Moderate Risk", IntRange{5, 8}},
	{RiskHigh, "High Risk", IntRange{9, 10}},
}

// RiskKPI is the set of dashboard numbers for a category and city.
type RiskKPI struct {
	EnvironmentalRisk int  `json:"environmental_risk"`
	ReportCount       int  `json:"report_count"`
	OutbreakRisk      int  `json:"outbreak_risk"`
	AQI               *int `json:"aqi,omitempty"`
}
