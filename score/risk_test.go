package score

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/healthradar-api/schema"
)

// extremeIntn always draws the lowest or the highest value.
type extremeIntn struct {
	highest bool
}

func (e extremeIntn) Intn(n int) int {
	if e.highest {
		return n - 1
	}
	return 0
}

type simulateTestCase struct {
	category schema.Category
	city     string
	highest  bool
	expected schema.RiskKPI
}

func TestSimulate(t *testing.T) {
	cases := []simulateTestCase{
		{schema.Influenza, schema.Oulu, false, schema.RiskKPI{EnvironmentalRisk: 4, ReportCount: 8, OutbreakRisk: 5}},
		{schema.Influenza, schema.Oulu, true, schema.RiskKPI{EnvironmentalRisk: 7, ReportCount: 22, OutbreakRisk: 10}},
		{schema.Norovirus, schema.Tampere, false, schema.RiskKPI{EnvironmentalRisk: 6, ReportCount: 2, OutbreakRisk: 4}},
		{schema.Norovirus, schema.Helsinki, false, schema.RiskKPI{EnvironmentalRisk: 6, ReportCount: 7, OutbreakRisk: 5}},
		{schema.COVID19, schema.Turku, false, schema.RiskKPI{EnvironmentalRisk: 5, ReportCount: 5, OutbreakRisk: 5}},
		{schema.COVID19, schema.Helsinki, true, schema.RiskKPI{EnvironmentalRisk: 8, ReportCount: 29, OutbreakRisk: 10}},
		{schema.Heatstroke, schema.Jyvaskyla, true, schema.RiskKPI{EnvironmentalRisk: 9, ReportCount: 6, OutbreakRisk: 8}},
		{"Measles", schema.Oulu, true, schema.RiskKPI{EnvironmentalRisk: 5, ReportCount: 10, OutbreakRisk: 5}},
		{"Measles", schema.Helsinki, false, schema.RiskKPI{EnvironmentalRisk: 5, ReportCount: 15, OutbreakRisk: 6}},
	}

	for _, c := range cases {
		actual := Simulate(extremeIntn{c.highest}, c.category, c.city)
		assert.Equal(t, c.expected, actual, "wrong kpi for %s in %s", c.category, c.city)
	}
}

func TestSimulateStaysInModelRanges(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for _, c := range schema.Categories {
		model := schema.ProfileOf(c).Risk
		for i := 0; i < 1000; i++ {
			kpi := Simulate(rnd, c, schema.Oulu)
			assert.True(t, model.EnvironmentalRisk.Contains(kpi.EnvironmentalRisk), "environmental risk of %s", c)
			assert.True(t, model.Reports.Contains(kpi.ReportCount), "report count of %s", c)
			assert.True(t, kpi.OutbreakRisk >= 0 && kpi.OutbreakRisk <= 10, "outbreak risk of %s", c)
			assert.Nil(t, kpi.AQI)
		}
	}
}

func TestAssessWithAQI(t *testing.T) {
	kpi := Assess(extremeIntn{true}, schema.Influenza, schema.Oulu, 60)
	assert.Equal(t, 4, kpi.EnvironmentalRisk)
	assert.Equal(t, 22, kpi.ReportCount)
	assert.Equal(t, 9, kpi.OutbreakRisk)
	if assert.NotNil(t, kpi.AQI) {
		assert.Equal(t, 60, *kpi.AQI)
	}

	kpi = Assess(extremeIntn{}, schema.COVID19, schema.Helsinki, 20)
	assert.Equal(t, 2, kpi.EnvironmentalRisk)
	assert.Equal(t, 10, kpi.ReportCount)
	assert.Equal(t, 4, kpi.OutbreakRisk)
}

func TestAssessIgnoresAQI(t *testing.T) {
	expected := Simulate(extremeIntn{}, schema.Norovirus, schema.Oulu)
	assert.Equal(t, expected, Assess(extremeIntn{}, schema.Norovirus, schema.Oulu, 300), "soil moisture does not follow air quality")

	expected = Simulate(extremeIntn{}, schema.Influenza, schema.Oulu)
	assert.Equal(t, expected, Assess(extremeIntn{}, schema.Influenza, schema.Oulu, -1), "negative aqi means no reading")
}

func TestEnvironmentalRiskFromAQI(t *testing.T) {
	cases := map[int]int{
		0:   2,
		50:  2,
		51:  4,
		100: 4,
		150: 6,
		151: 8,
		200: 8,
		300: 9,
		301: 10,
		999: 10,
	}
	for aqi, expected := range cases {
		assert.Equal(t, expected, EnvironmentalRiskFromAQI(aqi), "aqi %d", aqi)
	}
}

func TestLevel(t *testing.T) {
	cases := map[int]schema.RiskLevel{
		0:  schema.RiskLow,
		4:  schema.RiskLow,
		5:  schema.RiskMedium,
		8:  schema.RiskMedium,
		9:  schema.RiskHigh,
		10: schema.RiskHigh,
	}
	for v, expected := range cases {
		if Level(v) != expected {
			t.Fatalf("wrong level of %d: %s", v, Level(v))
		}
	}
}

func TestOutbreakWarning(t *testing.T) {
	assert.False(t, OutbreakWarning(7))
	assert.True(t, OutbreakWarning(8))
	assert.True(t, OutbreakWarning(10))
}
