package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"safespace/client/internal/models"
)

func TestFromScoreBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		score    float64
		expected models.RiskLevel
	}{
		{"At low threshold", 8.5, models.RiskLow},
		{"Just below low threshold", 8.49999, models.RiskMedium},
		{"At high threshold", 7, models.RiskMedium},
		{"Just below high threshold", 6.9999, models.RiskHigh},
		{"Top of scale", 10, models.RiskLow},
		{"Bottom of scale", 0, models.RiskHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FromScore(tt.score))
		})
	}
}

func TestFromLevel(t *testing.T) {
	// High safety means low risk; the mapping is inverted on purpose.
	assert.Equal(t, models.RiskLow, FromLevel("high"))
	assert.Equal(t, models.RiskMedium, FromLevel("medium"))
	assert.Equal(t, models.RiskHigh, FromLevel("low"))
	assert.Equal(t, models.RiskHigh, FromLevel("unknown"))
	assert.Equal(t, models.RiskHigh, FromLevel(""))
}

func TestCustomThresholds(t *testing.T) {
	strict := Thresholds{Low: 9.5, High: 8}

	assert.Equal(t, models.RiskMedium, strict.FromScore(9))
	assert.Equal(t, models.RiskLow, strict.FromScore(9.5))
	assert.Equal(t, models.RiskHigh, strict.FromScore(7.5))
}

func TestRiskLevelRank(t *testing.T) {
	assert.Less(t, models.RiskLow.Rank(), models.RiskMedium.Rank())
	assert.Less(t, models.RiskMedium.Rank(), models.RiskHigh.Rank())
}
