package score

import (
	"math"

	"github.com/bitmark-inc/healthradar-api/consts"
	"github.com/bitmark-inc/healthradar-api/schema"
)

// Intn is the randomness the risk simulation needs. *rand.Rand satisfies it.
type Intn interface {
	Intn(n int) int
}

func drawIn(rnd Intn, r schema.IntRange) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rnd.Intn(r.Max-r.Min+1)
}

func outbreakRisk(model schema.RiskModel, env, reports int) int {
	if model.FixedOutbreakRisk != 0 {
		return model.FixedOutbreakRisk
	}
	v := int(math.Floor(float64(env)*model.EnvironmentWeight + float64(reports)*model.ReportWeight))
	return minInt(consts.MaxRiskScore, v)
}

func assess(rnd Intn, category schema.Category, city string, measuredEnv *int) schema.RiskKPI {
	model := schema.ProfileOf(category).Risk

	env := drawIn(rnd, model.EnvironmentalRisk)
	if measuredEnv != nil {
		env = *measuredEnv
	}
	reports := drawIn(rnd, model.Reports)
	outbreak := outbreakRisk(model, env, reports)

	if city == schema.Helsinki {
		reports = minInt(consts.MaxReportCount, reports+5)
		outbreak = minInt(consts.MaxRiskScore, outbreak+1)
	}

	return schema.RiskKPI{
		EnvironmentalRisk: env,
		ReportCount:       reports,
		OutbreakRisk:      outbreak,
	}
}

// Simulate draws the dashboard numbers of a category in a city. The capital
// gets more reports and one more point of outbreak risk.
func Simulate(rnd Intn, category schema.Category, city string) schema.RiskKPI {
	return assess(rnd, category, city, nil)
}

// Assess is Simulate with a measured air quality index. For categories whose
// environmental factor is air pollution, a valid AQI replaces the simulated
// environmental risk and the outbreak risk follows it. A negative aqi means
// no reading.
func Assess(rnd Intn, category schema.Category, city string, aqi int) schema.RiskKPI {
	if aqi < 0 || !schema.ProfileOf(category).AirPollution {
		return assess(rnd, category, city, nil)
	}

	env := EnvironmentalRiskFromAQI(aqi)
	kpi := assess(rnd, category, city, &env)
	kpi.AQI = &aqi
	return kpi
}

// EnvironmentalRiskFromAQI maps the US AQI bands onto the 0-10 risk scale.
func EnvironmentalRiskFromAQI(aqi int) int {
	switch {
	case aqi <= 50:
		return 2
	case aqi <= 100:
		return 4
	case aqi <= 150:
		return 6
	case aqi <= 200:
		return 8
	case aqi <= 300:
		return 9
	default:
		return consts.MaxRiskScore
	}
}

// Level returns the risk band of a 0-10 risk number.
func Level(value int) schema.RiskLevel {
	if value <= 4 {
		return schema.RiskLow
	}
	if value <= 8 {
		return schema.RiskMedium
	}
	return schema.RiskHigh
}

func OutbreakWarning(outbreakRisk int) bool {
	return outbreakRisk >= consts.OutbreakWarningThreshold
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
