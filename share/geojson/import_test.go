package geojson

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/healthradar-api/mocks"
	"github.com/bitmark-inc/healthradar-api/schema"
)

const cityCollection = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {"name": "Kuopio", "zoom": 12}, "geometry": {"type": "Point", "coordinates": [27.6782, 62.8924]}},
    {"type": "Feature", "properties": {"name": " Vaasa "}, "geometry": {"type": "Point", "coordinates": [21.6165, 63.0951]}}
  ]
}`

var expectedCities = []schema.City{
	{Name: "Kuopio", Center: schema.GeoPoint{27.6782, 62.8924}, Zoom: 12},
	{Name: "Vaasa", Center: schema.GeoPoint{21.6165, 63.0951}, Zoom: schema.DefaultZoom},
}

func TestDecodeCities(t *testing.T) {
	cities, err := DecodeCities(strings.NewReader(cityCollection))
	assert.NoError(t, err)
	assert.Equal(t, expectedCities, cities)
}

func TestDecodeCitiesInvalid(t *testing.T) {
	cases := map[string]string{
		"not json":    `{`,
		"wrong type":  `{"type": "Feature"}`,
		"no name":     `{"type": "FeatureCollection", "features": [{"properties": {}, "geometry": {"type": "Point", "coordinates": [1, 2]}}]}`,
		"not a point": `{"type": "FeatureCollection", "features": [{"properties": {"name": "A"}, "geometry": {"type": "LineString", "coordinates": [1, 2]}}]}`,
		"bad lat":     `{"type": "FeatureCollection", "features": [{"properties": {"name": "A"}, "geometry": {"type": "Point", "coordinates": [25, 95]}}]}`,
	}

	for name, input := range cases {
		_, err := DecodeCities(strings.NewReader(input))
		assert.Error(t, err, name)
	}
}

func writeTempFile(t *testing.T, content string) (string, func()) {
	dir, err := ioutil.TempDir("", "cities")
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(dir, "cities.json")
	if err := ioutil.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path, func() { os.RemoveAll(dir) }
}

func TestImportCities(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	path, cleanup := writeTempFile(t, cityCollection)
	defer cleanup()

	catalog := mocks.NewMockCityCatalog(ctl)
	catalog.EXPECT().SaveCities(expectedCities).Return(nil).Times(1)

	n, err := ImportCities(catalog, path)
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestImportCitiesSaveError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	path, cleanup := writeTempFile(t, cityCollection)
	defer cleanup()

	catalog := mocks.NewMockCityCatalog(ctl)
	catalog.EXPECT().SaveCities(gomock.Any()).Return(fmt.Errorf("write conflict")).Times(1)

	n, err := ImportCities(catalog, path)
	assert.EqualError(t, err, "write conflict")
	assert.Equal(t, 0, n)
}

func TestImportCitiesEmptyCollection(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	path, cleanup := writeTempFile(t, `{"type": "FeatureCollection", "features": []}`)
	defer cleanup()

	catalog := mocks.NewMockCityCatalog(ctl)
	catalog.EXPECT().SaveCities(gomock.Any()).Times(0)

	n, err := ImportCities(catalog, path)
	assert.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestImportCitiesMissingFile(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	_, err := ImportCities(mocks.NewMockCityCatalog(ctl), "/nonexistent/cities.json")
	assert.Error(t, err)
}
