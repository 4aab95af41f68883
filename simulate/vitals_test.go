package simulate

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/healthradar-api/schema"
)

func TestGenerateVitalsShape(t *testing.T) {
	start := time.Date(2025, time.March, 3, 6, 0, 0, 0, time.UTC)
	patients, err := GenerateVitals(1, VitalsOptions{Patients: 3, Hours: 48, Start: start})
	assert.NoError(t, err)
	assert.Len(t, patients, 3)

	for id, p := range patients {
		assert.Equal(t, id, p.PatientID)
		assert.Len(t, p.Readings, 48)
		for i, r := range p.Readings {
			assert.Equal(t, start.Add(time.Duration(i)*time.Hour), r.Timestamp)
		}
	}
}

func TestGenerateVitalsDefaults(t *testing.T) {
	patients, err := GenerateVitals(1, DefaultVitalsOptions())
	assert.NoError(t, err)
	assert.Len(t, patients, 5)
	assert.Len(t, patients[0].Readings, 168)
	assert.Equal(t, VitalsStart, patients[0].Readings[0].Timestamp)

	// a zero start falls back to the default start
	patients, err = GenerateVitals(1, VitalsOptions{Patients: 1, Hours: 1})
	assert.NoError(t, err)
	assert.Equal(t, VitalsStart, patients[0].Readings[0].Timestamp)
}

func TestGenerateVitalsRanges(t *testing.T) {
	for _, seed := range []int64{0, 1, 42, 20250101} {
		patients, err := GenerateVitals(seed, VitalsOptions{Patients: 4, Hours: 24 * 14})
		assert.NoError(t, err)

		for _, p := range patients {
			for _, r := range p.Readings {
				assert.True(t, r.BodyTemperature >= 36.1 && r.BodyTemperature <= 36.9, "temperature %v", r.BodyTemperature)
				assert.True(t, r.Pulse >= 60 && r.Pulse <= 80, "pulse %v", r.Pulse)
				assert.True(t, r.BloodOxygen >= 96.5 && r.BloodOxygen <= 99.5, "blood oxygen %v", r.BloodOxygen)
				assert.True(t, r.RespiratoryRate >= 13 && r.RespiratoryRate <= 19, "respiratory rate %v", r.RespiratoryRate)
				assert.True(t, r.Steps >= 0 && r.Steps <= 900, "steps %v", r.Steps)
				assert.Contains(t, []schema.SleepState{schema.SleepAwake, schema.SleepLight, schema.SleepDeep}, r.SleepState)
			}
		}
	}
}

func TestGenerateVitalsIsReproducible(t *testing.T) {
	opts := VitalsOptions{Patients: 2, Hours: 72}

	a, err := GenerateVitals(7, opts)
	assert.NoError(t, err)
	b, err := GenerateVitals(7, opts)
	assert.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := GenerateVitals(8, opts)
	assert.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestGenerateVitalsPatientsDiffer(t *testing.T) {
	patients, err := GenerateVitals(3, VitalsOptions{Patients: 2, Hours: 72})
	assert.NoError(t, err)
	assert.NotEqual(t, patients[0].Readings, patients[1].Readings)
}

func TestGenerateVitalsEmpty(t *testing.T) {
	patients, err := GenerateVitals(1, VitalsOptions{Patients: 0, Hours: 24})
	assert.NoError(t, err)
	assert.Empty(t, patients)

	patients, err = GenerateVitals(1, VitalsOptions{Patients: 2, Hours: 0})
	assert.NoError(t, err)
	assert.Len(t, patients, 2)
	assert.Empty(t, patients[0].Readings)
}

func TestGenerateVitalsInvalidParameters(t *testing.T) {
	for _, opts := range []VitalsOptions{
		{Patients: -1, Hours: 24},
		{Patients: 1, Hours: -24},
	} {
		patients, err := GenerateVitals(1, opts)
		assert.Nil(t, patients)
		assert.True(t, errors.Is(err, ErrInvalidParameter), "expected invalid parameter for %+v", opts)
	}
}

func TestSleepStateOf(t *testing.T) {
	testCases := []struct {
		value float64
		state schema.SleepState
	}{
		{-0.2, schema.SleepAwake},
		{0.49, schema.SleepAwake},
		{0.5, schema.SleepLight},
		{1.49, schema.SleepLight},
		{1.5, schema.SleepDeep},
		{2, schema.SleepDeep},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.state, sleepStateOf(tc.value), "sleep state of %v", tc.value)
	}
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 36.57, roundTo(36.5666, 2))
	assert.Equal(t, 97.1, roundTo(97.06, 1))
	assert.Equal(t, 16.0, roundTo(15.96, 1))
}

func TestFeatureMatrixFollowsFeatureNames(t *testing.T) {
	patients, err := GenerateVitals(5, VitalsOptions{Patients: 1, Hours: 3})
	assert.NoError(t, err)

	matrix := patients[0].FeatureMatrix()
	assert.Len(t, matrix, 3)
	for i, row := range matrix {
		r := patients[0].Readings[i]
		assert.Len(t, row, len(schema.VitalsFeatures))
		assert.Equal(t, r.BodyTemperature, row[0])
		assert.Equal(t, float64(r.Pulse), row[1])
		assert.Equal(t, float64(r.Steps), row[4])
		assert.Equal(t, float64(r.SleepState), row[5])
	}
}
