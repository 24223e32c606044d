package confidence

import "github.com/uyouii/confidence-interval/model"

const (
	DefaultConfidenceLevel = 0.95
	DefaultDistribution    = model.StudentsT

	// significant digits kept by the batch helpers
	ReportSignificantDigits = 6
)

var (
	AllConfidenceLevels = []float64{0.8, 0.9, 0.95, 0.98, 0.99, 0.999}
)
