package simulate

import (
	"math"

	"github.com/bitmark-inc/healthradar-api/consts"
	"github.com/bitmark-inc/healthradar-api/schema"
)

// ReportRadiusFactor keeps symptom markers closer to the center than the
// heat cloud.
const ReportRadiusFactor = 0.7

func checkParameters(center schema.GeoPoint, count int, radius float64) error {
	if count < 0 {
		return &ParameterError{"count", count, "must not be negative"}
	}
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0 {
		return &ParameterError{"radius", radius, "must be a positive finite number"}
	}
	for i, v := range center {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			name := "center.longitude"
			if i == 1 {
				name = "center.latitude"
			}
			return &ParameterError{name, v, "must be finite"}
		}
	}
	return nil
}

// pointInDisc draws a point uniformly over the area of the disc. The square
// root of the radius draw keeps the density flat towards the rim.
func pointInDisc(rnd Source, center schema.GeoPoint, radius float64) schema.GeoPoint {
	angle := rnd.Float64() * 2 * math.Pi
	r := radius * math.Sqrt(rnd.Float64())

	return schema.GeoPoint{
		center.Longitude() + r*math.Cos(angle),
		center.Latitude() + r*math.Sin(angle),
	}
}

func weightedSamples(rnd Source, center schema.GeoPoint, count int, radius float64, category schema.Category) []schema.WeightedSample {
	intensity := schema.ProfileOf(category).Intensity
	span := intensity.Max - intensity.Min + 1

	samples := make([]schema.WeightedSample, 0, count)
	for i := 0; i < count; i++ {
		p := pointInDisc(rnd, center, radius)
		samples = append(samples, schema.WeightedSample{
			Coordinates: p,
			Intensity:   intensity.Min + rnd.Intn(span),
		})
	}
	return samples
}

func symptomSamples(rnd Source, center schema.GeoPoint, count int, radius float64, category schema.Category) []schema.SymptomSample {
	vocabulary := schema.ProfileOf(category).Vocabulary
	radius = radius * ReportRadiusFactor

	samples := make([]schema.SymptomSample, 0, count)
	for i := 0; i < count; i++ {
		p := pointInDisc(rnd, center, radius)
		symptom := vocabulary[rnd.Intn(len(vocabulary))]
		severity := schema.Severities[rnd.Intn(len(schema.Severities))]

		samples = append(samples, schema.SymptomSample{
			Coordinates: p,
			Symptom:     symptom,
			Severity:    severity,
			Color:       severity.Color(),
		})
	}
	return samples
}

// GenerateWeightedSamples returns count heat map points drawn uniformly
// from the disc of the given radius around center, each with an intensity
// from the category's range.
func GenerateWeightedSamples(rnd Source, center schema.GeoPoint, count int, radius float64, category schema.Category) ([]schema.WeightedSample, error) {
	if err := checkParameters(center, count, radius); err != nil {
		return nil, err
	}
	return weightedSamples(rnd, center, count, radius, category), nil
}

// GenerateSymptomSamples returns count symptom markers drawn from the disc of
// ReportRadiusFactor × radius around center.
func GenerateSymptomSamples(rnd Source, center schema.GeoPoint, count int, radius float64, category schema.Category) ([]schema.SymptomSample, error) {
	if err := checkParameters(center, count, radius); err != nil {
		return nil, err
	}
	return symptomSamples(rnd, center, count, radius, category), nil
}

// Options sizes a snapshot.
type Options struct {
	HeatCount   int
	ReportCount int
	Radius      float64
}

var DefaultOptions = Options{
	HeatCount:   consts.DefaultHeatCount,
	ReportCount: consts.DefaultReportCount,
	Radius:      consts.DefaultRadius,
}

// Snapshot is one heat cloud and one report set generated together.
type Snapshot struct {
	Heat    []schema.WeightedSample
	Reports []schema.SymptomSample
}

// Generator binds the generator operations to a randomness source. It is
// not safe for concurrent use; give every goroutine its own Generator.
type Generator struct {
	rnd Source
}

// NewGenerator returns a generator drawing from rnd, or from a clock-seeded
// source when rnd is nil.
func NewGenerator(rnd Source) *Generator {
	if rnd == nil {
		rnd = NewTimeSource()
	}
	return &Generator{rnd: rnd}
}

func (g *Generator) WeightedSamples(center schema.GeoPoint, count int, radius float64, category schema.Category) ([]schema.WeightedSample, error) {
	return GenerateWeightedSamples(g.rnd, center, count, radius, category)
}

func (g *Generator) SymptomSamples(center schema.GeoPoint, count int, radius float64, category schema.Category) ([]schema.SymptomSample, error) {
	return GenerateSymptomSamples(g.rnd, center, count, radius, category)
}

// Snapshot generates the heat cloud first, then the reports. Both counts
// are checked up front so a rejected snapshot draws nothing.
func (g *Generator) Snapshot(center schema.GeoPoint, category schema.Category, opts Options) (Snapshot, error) {
	if err := checkParameters(center, opts.HeatCount, opts.Radius); err != nil {
		return Snapshot{}, err
	}
	if opts.ReportCount < 0 {
		return Snapshot{}, &ParameterError{"report_count", opts.ReportCount, "must not be negative"}
	}

	return Snapshot{
		Heat:    weightedSamples(g.rnd, center, opts.HeatCount, opts.Radius, category),
		Reports: symptomSamples(g.rnd, center, opts.ReportCount, opts.Radius, category),
	}, nil
}
