package geo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"googlemaps.github.io/maps"

	"github.com/bitmark-inc/healthradar-api/consts"
	"github.com/bitmark-inc/healthradar-api/schema"
	"github.com/bitmark-inc/healthradar-api/store"
)

var ErrNoCityFound = fmt.Errorf("no city found")

// CityResolver - interface for resolving a city name into a map location
type CityResolver interface {
	Resolve(name string) (schema.City, error)
}

type MultipleResolverErrors struct {
	errors []error
}

func (e *MultipleResolverErrors) Error() string {
	errorStrings := make([]string, len(e.errors))
	for i, err := range e.errors {
		errorStrings[i] = fmt.Sprintf("#%d: %s", i, err.Error())
	}
	return strings.Join(errorStrings, "\n")
}

// NotFound reports whether every resolver only failed to find the city.
func (e *MultipleResolverErrors) NotFound() bool {
	for _, err := range e.errors {
		if err != ErrNoCityFound {
			return false
		}
	}
	return true
}

func NewMultipleResolverErrors(errors []error) *MultipleResolverErrors {
	return &MultipleResolverErrors{
		errors: errors,
	}
}

// StaticCityResolver resolves the built-in city list, accepting Swedish
// names and spellings without diacritics.
type StaticCityResolver struct{}

func NewStaticCityResolver() *StaticCityResolver {
	return &StaticCityResolver{}
}

func (StaticCityResolver) Resolve(name string) (schema.City, error) {
	key, err := consts.FiCityKey(name)
	if err != nil {
		return schema.City{}, ErrNoCityFound
	}

	city, ok := schema.CityFromName[key]
	if !ok {
		return schema.City{}, ErrNoCityFound
	}
	return city, nil
}

type CatalogCityResolver struct {
	catalog store.CityCatalog
}

func NewCatalogCityResolver(catalog store.CityCatalog) *CatalogCityResolver {
	return &CatalogCityResolver{
		catalog: catalog,
	}
}

func (r *CatalogCityResolver) Resolve(name string) (schema.City, error) {
	city, err := r.catalog.FindCity(name)
	if err != nil {
		if err == store.ErrCityNotFound || err == store.ErrEmptyCity {
			return schema.City{}, ErrNoCityFound
		}
		return schema.City{}, err
	}
	return city, nil
}

type GeocodingCityResolver struct {
	client *maps.Client
	region string
}

// NewGeocodingCityResolver geocodes names within region, a ccTLD such as "fi".
// An empty region searches everywhere.
func NewGeocodingCityResolver(client *maps.Client, region string) *GeocodingCityResolver {
	return &GeocodingCityResolver{
		client: client,
		region: region,
	}
}

func (g *GeocodingCityResolver) Resolve(name string) (schema.City, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return schema.City{}, ErrNoCityFound
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	geos, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		Address:  name,
		Region:   g.region,
		Language: "en",
	})
	if nil != err {
		if strings.Contains(err.Error(), "ZERO_RESULTS") {
			return schema.City{}, ErrNoCityFound
		}
		return schema.City{}, err
	}

	if len(geos) == 0 {
		return schema.City{}, ErrNoCityFound
	}

	city := schema.City{
		Name: name,
		Center: schema.GeoPoint{
			geos[0].Geometry.Location.Lng,
			geos[0].Geometry.Location.Lat,
		},
		Zoom: schema.DefaultZoom,
	}

	for _, a := range geos[0].AddressComponents {
		if len(a.Types) > 0 && a.Types[0] == "locality" {
			city.Name = a.LongName
			break
		}
	}

	return city, nil
}

type MultipleCityResolver struct {
	resolvers []CityResolver
}

func NewMultipleCityResolver(resolvers ...CityResolver) *MultipleCityResolver {
	return &MultipleCityResolver{
		resolvers: resolvers,
	}
}

func (r *MultipleCityResolver) Resolve(name string) (schema.City, error) {
	var errors []error
	for _, resolver := range r.resolvers {
		result, err := resolver.Resolve(name)
		if err != nil {
			errors = append(errors, err)
		} else {
			return result, nil
		}
	}

	return schema.City{}, NewMultipleResolverErrors(errors)
}
