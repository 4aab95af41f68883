package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/healthradar-api/external/aqi"
	"github.com/bitmark-inc/healthradar-api/geo"
	"github.com/bitmark-inc/healthradar-api/logmodule"
	"github.com/bitmark-inc/healthradar-api/simulate"
	"github.com/bitmark-inc/healthradar-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance, guarded by mu since Shutdown comes from a signal handler
	mu     sync.Mutex
	server *http.Server
	closed bool

	// city lookup
	resolver geo.CityResolver

	// Stores, both optional
	catalog store.CityCatalog
	pinger  store.Pinger

	// External services, optional
	aqiClient aqi.AQI

	// localized texts, optional
	bundle *i18n.Bundle

	// snapshot sizes used when a request does not give its own
	defaults simulate.Options
}

// NewServer new instance of server. mongoStore, aqiClient and bundle may be nil.
func NewServer(
	resolver geo.CityResolver,
	mongoStore store.MongoStore,
	aqiClient aqi.AQI,
	bundle *i18n.Bundle,
	defaults simulate.Options) *Server {
	s := &Server{
		resolver:  resolver,
		aqiClient: aqiClient,
		bundle:    bundle,
		defaults:  defaults,
	}

	if mongoStore != nil {
		s.catalog = mongoStore
		s.pinger = mongoStore
	}

	return s
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return http.ErrServerClosed
	}
	server := &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}
	s.server = server
	s.mu.Unlock()

	return server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(cors.New(cors.Config{
		AllowMethods:    []string{"GET"},
		AllowHeaders:    []string{"Origin", "Accept-Language"},
		ExposeHeaders:   []string{"Content-Length", seedHeader},
		AllowAllOrigins: true,
		MaxAge:          12 * time.Hour,
	}))
	{
		apiRoute.GET("/diseases", s.getDiseases)
		apiRoute.GET("/cities", s.getCities)
		apiRoute.GET("/map", s.getMap)
		apiRoute.GET("/kpi", s.getKPI)
		apiRoute.GET("/vitals", s.getVitals)
	}

	sampleRoute := apiRoute.Group("/samples")
	{
		sampleRoute.GET("/weighted", s.getWeightedSamples)
		sampleRoute.GET("/symptoms", s.getSymptomSamples)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	server := s.server
	s.mu.Unlock()

	if server == nil {
		return nil
	}
	return server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	if s.pinger != nil {
		err := s.pinger.Ping()
		if shouldInterupt(err, c) {
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
