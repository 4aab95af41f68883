package schema

import "time"

type SleepState int

const (
	SleepAwake SleepState = iota
	SleepLight
	SleepDeep
)

// VitalsReading is one hour of wearable measurements of a patient.
type VitalsReading struct {
	Timestamp       time.Time  `json:"timestamp"`
	BodyTemperature float64    `json:"body_temperature_c"`
	Pulse           int        `json:"pulse_bpm"`
	BloodOxygen     float64    `json:"blood_oxygen_percent"`
	RespiratoryRate float64    `json:"respiratory_rate"`
	Steps           int        `json:"steps_per_hour"`
	SleepState      SleepState `json:"sleep_state"`
}

// VitalsFeatures names the columns returned by VitalsReading.Features.
var VitalsFeatures = []string{
	"body_temperature_c",
	"pulse_bpm",
	"blood_oxygen_percent",
	"respiratory_rate",
	"steps_per_hour",
	"sleep_state",
}

func (r VitalsReading) Features() []float64 {
	return []float64{
		r.BodyTemperature,
		float64(r.Pulse),
		r.BloodOxygen,
		r.RespiratoryRate,
		float64(r.Steps),
		float64(r.SleepState),
	}
}

type PatientVitals struct {
	PatientID int             `json:"patient_id"`
	Readings  []VitalsReading `json:"readings"`
}

// FeatureMatrix returns the readings as rows of VitalsFeatures.
func (p PatientVitals) FeatureMatrix() [][]float64 {
	rows := make([][]float64, 0, len(p.Readings))
	for _, r := range p.Readings {
		rows = append(rows, r.Features())
	}
	return rows
}
