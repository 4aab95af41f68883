package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/healthradar-api/consts"
	"github.com/bitmark-inc/healthradar-api/schema"
)

// getCities lists the built-in cities followed by catalog cities that are
// not already built in.
func (s *Server) getCities(c *gin.Context) {
	cities := make([]schema.City, 0, len(schema.Cities))
	seen := make(map[string]bool)
	for _, city := range schema.Cities {
		cities = append(cities, city)
		seen[consts.FoldName(city.Name)] = true
	}

	if s.catalog != nil {
		stored, err := s.catalog.ListCities()
		if shouldInterupt(err, c) {
			return
		}

		for _, city := range stored {
			key := consts.FoldName(city.Name)
			if seen[key] {
				continue
			}
			seen[key] = true
			cities = append(cities, city)
		}
	}

	c.JSON(http.StatusOK, gin.H{"cities": cities})
}
