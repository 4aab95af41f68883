package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bitmark-inc/healthradar-api/geo"
	"github.com/bitmark-inc/healthradar-api/schema"
	"github.com/bitmark-inc/healthradar-api/simulate"
)

type mapResponse struct {
	ID       string                   `json:"id"`
	Seed     int64                    `json:"seed"`
	City     schema.City              `json:"city"`
	Disease  schema.Category          `json:"disease"`
	Radius   float64                  `json:"radius"`
	RadiusKm float64                  `json:"radius_km"`
	Heatmap  schema.FeatureCollection `json:"heatmap"`
	Reports  schema.FeatureCollection `json:"reports"`
}

func (s *Server) getMap(c *gin.Context) {
	req, ok := s.parseSampleQuery(c)
	if !ok {
		return
	}

	g := simulate.NewGenerator(simulate.NewSource(req.seed))
	snapshot, err := g.Snapshot(req.city.Center, req.category, req.options)
	if err != nil {
		abortWithGeneratorError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapResponse{
		ID:       uuid.New().String(),
		Seed:     req.seed,
		City:     req.city,
		Disease:  req.category,
		Radius:   req.options.Radius,
		RadiusKm: geo.RadiusKm(req.city.Center, req.options.Radius),
		Heatmap:  schema.WeightedFeatures(snapshot.Heat),
		Reports:  schema.SymptomFeatures(snapshot.Reports),
	})
}

func (s *Server) getWeightedSamples(c *gin.Context) {
	req, ok := s.parseSampleQuery(c)
	if !ok {
		return
	}

	g := simulate.NewGenerator(simulate.NewSource(req.seed))
	samples, err := g.WeightedSamples(req.city.Center, req.options.HeatCount, req.options.Radius, req.category)
	if err != nil {
		abortWithGeneratorError(c, err)
		return
	}

	c.JSON(http.StatusOK, samples)
}

func (s *Server) getSymptomSamples(c *gin.Context) {
	req, ok := s.parseSampleQuery(c)
	if !ok {
		return
	}

	g := simulate.NewGenerator(simulate.NewSource(req.seed))
	samples, err := g.SymptomSamples(req.city.Center, req.options.ReportCount, req.options.Radius, req.category)
	if err != nil {
		abortWithGeneratorError(c, err)
		return
	}

	c.JSON(http.StatusOK, samples)
}
