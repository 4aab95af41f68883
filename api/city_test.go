package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/healthradar-api/mocks"
	"github.com/bitmark-inc/healthradar-api/schema"
)

func TestCitiesBuiltIn(t *testing.T) {
	w := serve(newTestServer(nil), "/api/cities")
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Cities []schema.City `json:"cities"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, schema.Cities, resp.Cities)
}

func TestCitiesWithCatalog(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	kuopio := schema.City{Name: "Kuopio", Center: schema.GeoPoint{27.6782, 62.8924}, Zoom: schema.DefaultZoom}
	duplicate := schema.City{Name: "HELSINKI", Center: schema.GeoPoint{25, 60}, Zoom: 9}

	catalog := mocks.NewMockCityCatalog(ctl)
	catalog.EXPECT().ListCities().Return([]schema.City{duplicate, kuopio}, nil).Times(1)

	s := newTestServer(nil)
	s.catalog = catalog

	w := serve(s, "/api/cities")
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Cities []schema.City `json:"cities"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	if assert.Len(t, resp.Cities, len(schema.Cities)+1) {
		assert.Equal(t, kuopio, resp.Cities[len(schema.Cities)])
		assert.Equal(t, schema.CityFromName[schema.Helsinki], resp.Cities[1])
	}
}

func TestCitiesCatalogError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	catalog := mocks.NewMockCityCatalog(ctl)
	catalog.EXPECT().ListCities().Return(nil, fmt.Errorf("server selection timeout")).Times(1)

	s := newTestServer(nil)
	s.catalog = catalog

	w := serve(s, "/api/cities")
	assert.Equal(t, http.StatusInternalServerError, w.Code, "wrong status code")
	assert.Equal(t, int64(999), decodeError(t, w).Code)
}
