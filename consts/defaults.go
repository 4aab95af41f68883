package consts

const (
	// DefaultHeatCount is the number of heat map points per snapshot
	DefaultHeatCount = 100
	// DefaultReportCount is the number of symptom markers per snapshot
	DefaultReportCount = 15
	// DefaultRadius is the sampling disc radius in degrees
	DefaultRadius = 0.05

	MaxSampleCount = 10000

	// OutbreakWarningThreshold is the outbreak risk from which a warning is shown
	OutbreakWarningThreshold = 8
	MaxRiskScore             = 10
	MaxReportCount           = 30
)

const (
	// DefaultVitalsPatients is the number of simulated wearable users
	DefaultVitalsPatients = 5
	// DefaultVitalsHours is one week of hourly readings
	DefaultVitalsHours = 168

	MaxVitalsPatients = 100
	MaxVitalsHours    = 24 * 90

	// DefaultOutlierZ is the z-score above which a reading is dropped
	DefaultOutlierZ = 3.0
)
