package simulate

import (
	"math"
	"time"

	"github.com/aquilax/go-perlin"

	"github.com/bitmark-inc/healthradar-api/consts"
	"github.com/bitmark-inc/healthradar-api/schema"
)

// A single octave keeps |noise| below 1, so every channel stays within
// base ± variation.
const (
	noiseAlpha   = 2
	noiseBeta    = 2
	noiseOctaves = 1
)

// VitalsStart is the first reading time when none is given.
var VitalsStart = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

type VitalsOptions struct {
	Patients int
	Hours    int
	Start    time.Time
}

func DefaultVitalsOptions() VitalsOptions {
	return VitalsOptions{
		Patients: consts.DefaultVitalsPatients,
		Hours:    consts.DefaultVitalsHours,
		Start:    VitalsStart,
	}
}

// vitalChannel is a smooth noise series around base. scale sets how fast
// the series drifts from one hour to the next.
type vitalChannel struct {
	base      float64
	variation float64
	scale     float64
}

var (
	bodyTemperatureChannel = vitalChannel{36.5, 0.4, 0.03}
	pulseChannel           = vitalChannel{70, 10, 0.04}
	bloodOxygenChannel     = vitalChannel{98, 1.5, 0.02}
	respiratoryChannel     = vitalChannel{16, 3, 0.05}
	stepsChannel           = vitalChannel{500, 400, 0.06}
	sleepChannel           = vitalChannel{1, 1, 0.01}
)

func (c vitalChannel) series(noise *perlin.Perlin, offset float64, hours int) []float64 {
	values := make([]float64, hours)
	for i := range values {
		values[i] = c.base + c.variation*noise.Noise1D(float64(i)*c.scale+offset)
	}
	return values
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

func sleepStateOf(v float64) schema.SleepState {
	switch {
	case v < 0.5:
		return schema.SleepAwake
	case v < 1.5:
		return schema.SleepLight
	default:
		return schema.SleepDeep
	}
}

// GenerateVitals returns hourly wearable readings for opts.Patients users.
// Each patient and channel reads its own stretch of the noise line, so
// equal seeds give equal readings.
func GenerateVitals(seed int64, opts VitalsOptions) ([]schema.PatientVitals, error) {
	if opts.Patients < 0 {
		return nil, &ParameterError{"patients", opts.Patients, "must not be negative"}
	}
	if opts.Hours < 0 {
		return nil, &ParameterError{"hours", opts.Hours, "must not be negative"}
	}
	if opts.Start.IsZero() {
		opts.Start = VitalsStart
	}

	noise := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)

	patients := make([]schema.PatientVitals, 0, opts.Patients)
	for id := 0; id < opts.Patients; id++ {
		offset := float64(id * 10)
		temperature := bodyTemperatureChannel.series(noise, offset+1, opts.Hours)
		pulse := pulseChannel.series(noise, offset+2, opts.Hours)
		oxygen := bloodOxygenChannel.series(noise, offset+3, opts.Hours)
		respiration := respiratoryChannel.series(noise, offset+4, opts.Hours)
		steps := stepsChannel.series(noise, offset+5, opts.Hours)
		sleep := sleepChannel.series(noise, offset+6, opts.Hours)

		readings := make([]schema.VitalsReading, 0, opts.Hours)
		for i := 0; i < opts.Hours; i++ {
			readings = append(readings, schema.VitalsReading{
				Timestamp:       opts.Start.Add(time.Duration(i) * time.Hour),
				BodyTemperature: roundTo(temperature[i], 2),
				Pulse:           int(math.Round(pulse[i])),
				BloodOxygen:     roundTo(oxygen[i], 1),
				RespiratoryRate: roundTo(respiration[i], 1),
				Steps:           int(math.Max(0, steps[i])),
				SleepState:      sleepStateOf(sleep[i]),
			})
		}

		patients = append(patients, schema.PatientVitals{
			PatientID: id,
			Readings:  readings,
		})
	}

	return patients, nil
}
