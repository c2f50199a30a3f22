package risk

import (
	"safespace/client/internal/models"
)

// Thresholds holds the safety-score cut points for classification. Low is the
// minimum score that still counts as low risk; High is the minimum score that
// avoids high risk. Both views of the app use the same pair, they only
// arrived at it independently, so the pair stays configurable instead of
// being baked in twice.
type Thresholds struct {
	Low  float64
	High float64
}

// DefaultThresholds matches the production scoring model.
var DefaultThresholds = Thresholds{Low: 8.5, High: 7}

// FromScore classifies a numeric safety score on the 0-10 scale.
// [Low, inf) -> low risk, [High, Low) -> medium, below High -> high.
func (t Thresholds) FromScore(score float64) models.RiskLevel {
	switch {
	case score >= t.Low:
		return models.RiskLow
	case score >= t.High:
		return models.RiskMedium
	default:
		return models.RiskHigh
	}
}

// FromLevel classifies a neighborhood safety level. Safety and risk run in
// opposite directions: a "high" safety level is low risk. Unrecognized values
// classify as high risk, the conservative bucket.
func (t Thresholds) FromLevel(safetyLevel string) models.RiskLevel {
	switch safetyLevel {
	case "high":
		return models.RiskLow
	case "medium":
		return models.RiskMedium
	default:
		return models.RiskHigh
	}
}

// FromScore classifies with the default thresholds.
func FromScore(score float64) models.RiskLevel {
	return DefaultThresholds.FromScore(score)
}

// FromLevel classifies with the default thresholds.
func FromLevel(safetyLevel string) models.RiskLevel {
	return DefaultThresholds.FromLevel(safetyLevel)
}
