package logmodule

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Ginrus("API"))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	r.GET("/fail", func(c *gin.Context) {
		_ = c.Error(fmt.Errorf("boom"))
		c.Status(http.StatusInternalServerError)
	})
	return r
}

func TestGinrusLevels(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	r := newRouter()

	cases := []struct {
		path  string
		level logrus.Level
	}{
		{"/ok?city=Oulu", logrus.InfoLevel},
		{"/bad", logrus.WarnLevel},
		{"/fail", logrus.ErrorLevel},
	}

	for _, tc := range cases {
		hook.Reset()
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", tc.path, nil))

		entry := hook.LastEntry()
		if assert.NotNil(t, entry, tc.path) {
			assert.Equal(t, tc.level, entry.Level, tc.path)
			assert.Equal(t, "API", entry.Data["prefix"])
			assert.Equal(t, tc.path, entry.Data["path"])
		}
	}

	assert.Contains(t, hook.LastEntry().Message, "boom")
}
