package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/healthradar-api/schema"
	"github.com/bitmark-inc/healthradar-api/score"
	"github.com/bitmark-inc/healthradar-api/simulate"
	"github.com/bitmark-inc/healthradar-api/utils"
)

const outbreakWarningMessage = "High outbreak risk detected"

type riskValue struct {
	Value int              `json:"value"`
	Level schema.RiskLevel `json:"level"`
	Label string           `json:"label"`
}

type kpiResponse struct {
	Seed                int64               `json:"seed"`
	City                string              `json:"city"`
	Disease             schema.Category     `json:"disease"`
	EnvironmentalFactor string              `json:"environmental_factor"`
	EnvironmentalRisk   riskValue           `json:"environmental_risk"`
	ReportCount         int                 `json:"report_count"`
	OutbreakRisk        riskValue           `json:"outbreak_risk"`
	OutbreakWarning     bool                `json:"outbreak_warning"`
	WarningMessage      string              `json:"warning_message,omitempty"`
	AQI                 *int                `json:"aqi,omitempty"`
	Legend              []schema.LegendBand `json:"legend"`
}

// airQuality returns the measured AQI of a city, or -1 when the category
// does not follow air pollution or no reading is available.
func (s *Server) airQuality(category schema.Category, city schema.City) int {
	if s.aqiClient == nil || !schema.ProfileOf(category).AirPollution {
		return -1
	}

	v, err := s.aqiClient.Get(city.Center.Latitude(), city.Center.Longitude())
	if err != nil {
		log.WithField("city", city.Name).Warnf("air quality unavailable: %s", err)
		return -1
	}
	return v
}

func (s *Server) getKPI(c *gin.Context) {
	req, ok := s.parseSampleQuery(c)
	if !ok {
		return
	}

	kpi := score.Assess(simulate.NewSource(req.seed), req.category, req.city.Name, s.airQuality(req.category, req.city))

	loc := s.localizer(c)
	label := func(v int) riskValue {
		level := score.Level(v)
		return riskValue{
			Value: v,
			Level: level,
			Label: utils.Localize(loc, "risk."+string(level), legendLabel(level)),
		}
	}

	legend := make([]schema.LegendBand, 0, len(schema.RiskLegend))
	for _, band := range schema.RiskLegend {
		band.Label = utils.Localize(loc, "risk."+string(band.Level), band.Label)
		legend = append(legend, band)
	}

	warning := score.OutbreakWarning(kpi.OutbreakRisk)
	var warningMessage string
	if warning {
		warningMessage = utils.Localize(loc, "risk.outbreak_warning", outbreakWarningMessage)
	}

	profile := schema.ProfileOf(req.category)
	c.JSON(http.StatusOK, kpiResponse{
		Seed:    req.seed,
		City:    req.city.Name,
		Disease: req.category,
		EnvironmentalFactor: utils.Localize(loc,
			"diseases."+diseaseMessageKey(req.category)+".environmental_factor", profile.EnvironmentalFactor),
		EnvironmentalRisk: label(kpi.EnvironmentalRisk),
		ReportCount:       kpi.ReportCount,
		OutbreakRisk:      label(kpi.OutbreakRisk),
		OutbreakWarning:   warning,
		WarningMessage:    warningMessage,
		AQI:               kpi.AQI,
		Legend:            legend,
	})
}

func legendLabel(level schema.RiskLevel) string {
	for _, band := range schema.RiskLegend {
		if band.Level == level {
			return band.Label
		}
	}
	return string(level)
}
