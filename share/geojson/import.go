package geojson

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bitmark-inc/healthradar-api/schema"
	"github.com/bitmark-inc/healthradar-api/store"
)

type CityProperties struct {
	Name string `json:"name"`
	Zoom int    `json:"zoom"`
}

type CityFeature struct {
	Type       string         `json:"type"`
	Properties CityProperties `json:"properties"`
	Geometry   schema.GeoJSON `json:"geometry"`
}

type CityFeatureCollection struct {
	Type     string        `json:"type"`
	Features []CityFeature `json:"features"`
}

// DecodeCities reads a FeatureCollection of named Point features.
func DecodeCities(r io.Reader) ([]schema.City, error) {
	var result CityFeatureCollection
	if err := json.NewDecoder(r).Decode(&result); err != nil {
		return nil, err
	}

	if result.Type != "FeatureCollection" {
		return nil, fmt.Errorf("invalid geojson type, %s", result.Type)
	}

	cities := make([]schema.City, 0, len(result.Features))
	for i, f := range result.Features {
		name := strings.TrimSpace(f.Properties.Name)
		if name == "" {
			return nil, fmt.Errorf("feature #%d: missing name", i)
		}

		if f.Geometry.Type != "Point" || len(f.Geometry.Coordinates) != 2 {
			return nil, fmt.Errorf("feature #%d (%s): geometry is not a point", i, name)
		}

		lng, lat := f.Geometry.Coordinates[0], f.Geometry.Coordinates[1]
		if lng < -180 || lng > 180 || lat < -90 || lat > 90 {
			return nil, fmt.Errorf("feature #%d (%s): invalid coordinates %v", i, name, f.Geometry.Coordinates)
		}

		zoom := f.Properties.Zoom
		if zoom <= 0 {
			zoom = schema.DefaultZoom
		}

		cities = append(cities, schema.City{
			Name:   name,
			Center: schema.GeoPoint{lng, lat},
			Zoom:   zoom,
		})
	}

	return cities, nil
}

// ImportCities saves every city of a geojson file into the catalog and
// returns how many were saved.
func ImportCities(catalog store.CityCatalog, geoJSONFile string) (int, error) {
	file, err := os.Open(geoJSONFile)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	cities, err := DecodeCities(file)
	if err != nil {
		return 0, err
	}

	if len(cities) == 0 {
		return 0, nil
	}

	if err := catalog.SaveCities(cities); err != nil {
		return 0, err
	}
	return len(cities), nil
}
