package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/bitmark-inc/healthradar-api/consts"
	"github.com/bitmark-inc/healthradar-api/geo"
	"github.com/bitmark-inc/healthradar-api/schema"
	"github.com/bitmark-inc/healthradar-api/simulate"
	"github.com/bitmark-inc/healthradar-api/utils"
)

// seedHeader carries the seed of a generated response so the same samples
// can be requested again.
const seedHeader = "X-Sample-Seed"

type sampleQuery struct {
	Disease     string   `form:"disease"`
	City        string   `form:"city"`
	Seed        *int64   `form:"seed"`
	HeatCount   *int     `form:"heat_count"`
	ReportCount *int     `form:"report_count"`
	Radius      *float64 `form:"radius"`
}

type sampleRequest struct {
	category schema.Category
	city     schema.City
	seed     int64
	options  simulate.Options
}

// parseSampleQuery reads the generator arguments of a request. It aborts the
// request and returns false when the query is unusable.
func (s *Server) parseSampleQuery(c *gin.Context) (sampleRequest, bool) {
	var q sampleQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return sampleRequest{}, false
	}

	req := sampleRequest{
		category: parseCategory(q.Disease),
		city:     s.resolveCity(q.City),
		seed:     simulate.TimeSeed(),
		options:  s.defaults,
	}

	if q.Seed != nil {
		req.seed = *q.Seed
	}
	if q.HeatCount != nil {
		req.options.HeatCount = *q.HeatCount
	}
	if q.ReportCount != nil {
		req.options.ReportCount = *q.ReportCount
	}
	if q.Radius != nil {
		req.options.Radius = *q.Radius
	}

	if req.options.HeatCount > consts.MaxSampleCount || req.options.ReportCount > consts.MaxSampleCount {
		abortWithEncoding(c, http.StatusBadRequest, errorTooManySamples)
		return sampleRequest{}, false
	}

	c.Header(seedHeader, strconv.FormatInt(req.seed, 10))
	return req, true
}

// parseCategory matches a category case-insensitively. Names outside the
// known set are kept as given and get the default disease profile.
func parseCategory(disease string) schema.Category {
	disease = strings.TrimSpace(disease)
	if disease == "" {
		return schema.Categories[0]
	}

	for _, c := range schema.Categories {
		if strings.EqualFold(string(c), disease) {
			return c
		}
	}
	return schema.Category(disease)
}

func (s *Server) resolveCity(name string) schema.City {
	if strings.TrimSpace(name) == "" || s.resolver == nil {
		return schema.DefaultCity
	}

	city, err := s.resolver.Resolve(name)
	if err != nil {
		entry := log.WithField("city", name)
		if cityNotFound(err) {
			entry.Warnf("unknown city, fall back to %s", schema.DefaultCity.Name)
		} else {
			entry.Errorf("resolve city with error, fall back to %s: %s", schema.DefaultCity.Name, err)
		}
		return schema.DefaultCity
	}
	return city
}

// cityNotFound tells a name no resolver knows apart from a failing backend.
func cityNotFound(err error) bool {
	if err == geo.ErrNoCityFound {
		return true
	}
	if merr, ok := err.(*geo.MultipleResolverErrors); ok {
		return merr.NotFound()
	}
	return false
}

func abortWithGeneratorError(c *gin.Context, err error) {
	if errors.Is(err, simulate.ErrInvalidParameter) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
}

func (s *Server) localizer(c *gin.Context) *i18n.Localizer {
	return utils.NewLocalizer(s.bundle, c.Query("lang"), c.GetHeader("Accept-Language"))
}

// diseaseMessageKey is the message id segment of a category's texts.
func diseaseMessageKey(category schema.Category) string {
	if !category.Known() {
		return "default"
	}
	return utils.MessageKey(string(category))
}
