package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/healthradar-api/schema"
	"github.com/bitmark-inc/healthradar-api/utils"
)

type symptomLabel struct {
	Symptom string `json:"symptom"`
	Label   string `json:"label"`
}

type diseaseResponse struct {
	Category            schema.Category `json:"category"`
	Name                string          `json:"name"`
	EnvironmentalFactor string          `json:"environmental_factor"`
	Intensity           schema.IntRange `json:"intensity"`
	Vocabulary          []symptomLabel  `json:"vocabulary"`
}

func (s *Server) getDiseases(c *gin.Context) {
	loc := s.localizer(c)

	diseases := make([]diseaseResponse, 0, len(schema.Categories))
	for _, category := range schema.Categories {
		profile := schema.ProfileOf(category)
		key := diseaseMessageKey(category)

		vocabulary := make([]symptomLabel, 0, len(profile.Vocabulary))
		for _, symptom := range profile.Vocabulary {
			vocabulary = append(vocabulary, symptomLabel{
				Symptom: symptom,
				Label:   utils.Localize(loc, "symptoms."+utils.MessageKey(symptom), symptom),
			})
		}

		diseases = append(diseases, diseaseResponse{
			Category:            category,
			Name:                utils.Localize(loc, "diseases."+key+".name", string(category)),
			EnvironmentalFactor: utils.Localize(loc, "diseases."+key+".environmental_factor", profile.EnvironmentalFactor),
			Intensity:           profile.Intensity,
			Vocabulary:          vocabulary,
		})
	}

	c.JSON(http.StatusOK, gin.H{"diseases": diseases})
}
