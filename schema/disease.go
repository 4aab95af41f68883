package schema

type Category string

const (
	Influenza  Category = "Influenza"
	Norovirus  Category = "Norovirus"
	COVID19    Category = "COVID-19"
	Heatstroke Category = "Heatstroke"
)

// Categories lists the disease types in selector order.
var Categories = []Category{Influenza, Norovirus, COVID19, Heatstroke}

// IntRange is a closed integer interval [Min, Max].
type IntRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func (r IntRange) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// RiskModel drives the simulated dashboard numbers of a category.
// A non-zero FixedOutbreakRisk replaces the weighted outbreak formula.
type RiskModel struct {
	EnvironmentalRisk IntRange `json:"environmental_risk"`
	Reports           IntRange `json:"reports"`
	EnvironmentWeight float64  `json:"environment_weight"`
	ReportWeight      float64  `json:"report_weight"`
	FixedOutbreakRisk int      `json:"-"`
}

// DiseaseProfile holds everything a category parameterizes.
type DiseaseProfile struct {
	Category            Category  `json:"category"`
	Intensity           IntRange  `json:"intensity"`
	Vocabulary          [4]string `json:"vocabulary"`
	EnvironmentalFactor string    `json:"environmental_factor"`
	AirPollution        bool      `json:"-"`
	Risk                RiskModel `json:"-"`
}

// DiseaseProfiles is keyed by Category
var DiseaseProfiles = map[Category]DiseaseProfile{
	Influenza: {
		Category:            Influenza,
		Intensity:           IntRange{3, 10},
		Vocabulary:          [4]string{"Fever", "Cough", "Sore Throat", "Nasal Congestion"},
		EnvironmentalFactor: "Air Pollution & Temperature",
		AirPollution:        true,
		Risk:                RiskModel{IntRange{4, 7}, IntRange{8, 22}, 0.7, 0.3, 0},
	},
	Norovirus: {
		Category:            Norovirus,
		Intensity:           IntRange{4, 9},
		Vocabulary:          [4]string{"Nausea", "Vomiting", "Diarrhea", "Headache"},
		EnvironmentalFactor: "Soil Moisture",
		Risk:                RiskModel{IntRange{6, 8}, IntRange{2, 11}, 0.6, 0.4, 0},
	},
	COVID19: {
		Category:            COVID19,
		Intensity:           IntRange{3, 9},
		Vocabulary:          [4]string{"Fever", "Cough", "Nasal Congestion", "Fatigue"},
		EnvironmentalFactor: "Air Pollution & Population Density",
		AirPollution:        true,
		Risk:                RiskModel{IntRange{5, 8}, IntRange{5, 24}, 0.5, 0.5, 0},
	},
	Heatstroke: {
		Category:            Heatstroke,
		Intensity:           IntRange{5, 9},
		Vocabulary:          [4]string{"Headache", "Nausea", "Dizziness", "Confusion"},
		EnvironmentalFactor: "Land Surface Temperature",
		Risk:                RiskModel{IntRange{5, 9}, IntRange{1, 6}, 0.8, 0.2, 0},
	},
}

// DefaultDiseaseProfile applies to any category outside the closed set.
var DefaultDiseaseProfile = DiseaseProfile{
	Intensity:           IntRange{1, 10},
	Vocabulary:          DiseaseProfiles[Influenza].Vocabulary,
	EnvironmentalFactor: "Environmental Risk",
	Risk:                RiskModel{IntRange{5, 5}, IntRange{10, 10}, 0, 0, 5},
}

// ProfileOf returns the profile of c, falling back to DefaultDiseaseProfile.
func ProfileOf(c Category) DiseaseProfile {
	if p, ok := DiseaseProfiles[c]; ok {
		return p
	}
	p := DefaultDiseaseProfile
	p.Category = c
	return p
}

// Known reports whether c is one of the closed set of categories.
func (c Category) Known() bool {
	_, ok := DiseaseProfiles[c]
	return ok
}
