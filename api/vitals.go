package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/healthradar-api/consts"
	"github.com/bitmark-inc/healthradar-api/schema"
	"github.com/bitmark-inc/healthradar-api/simulate"
)

type vitalsQuery struct {
	Seed      *int64   `form:"seed"`
	Patients  *int     `form:"patients"`
	Hours     *int     `form:"hours"`
	Normalize bool     `form:"normalize"`
	OutlierZ  *float64 `form:"outlier_z"`
}

type vitalsResponse struct {
	Seed       int64                  `json:"seed"`
	Patients   []schema.PatientVitals `json:"patients"`
	Features   []string               `json:"features,omitempty"`
	Normalized [][][]float64          `json:"normalized,omitempty"`
}

func (s *Server) getVitals(c *gin.Context) {
	var q vitalsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	seed := simulate.TimeSeed()
	if q.Seed != nil {
		seed = *q.Seed
	}

	opts := simulate.DefaultVitalsOptions()
	if q.Patients != nil {
		opts.Patients = *q.Patients
	}
	if q.Hours != nil {
		opts.Hours = *q.Hours
	}
	if opts.Patients > consts.MaxVitalsPatients || opts.Hours > consts.MaxVitalsHours {
		abortWithEncoding(c, http.StatusBadRequest, errorTooManySamples)
		return
	}

	outlierZ := consts.DefaultOutlierZ
	if q.OutlierZ != nil {
		outlierZ = *q.OutlierZ
	}

	patients, err := simulate.GenerateVitals(seed, opts)
	if err != nil {
		abortWithGeneratorError(c, err)
		return
	}

	resp := vitalsResponse{
		Seed:     seed,
		Patients: patients,
	}

	if q.Normalize {
		resp.Features = schema.VitalsFeatures
		resp.Normalized = make([][][]float64, 0, len(patients))
		for _, p := range patients {
			cleaned, err := simulate.Preprocess(p.FeatureMatrix(), outlierZ)
			if err != nil {
				abortWithGeneratorError(c, err)
				return
			}
			resp.Normalized = append(resp.Normalized, cleaned)
		}
	}

	c.Header(seedHeader, strconv.FormatInt(seed, 10))
	c.JSON(http.StatusOK, resp)
}
