package stubapi

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"safespace/client/internal/models"
)

func TestSeedPropertiesInvariants(t *testing.T) {
	seen := make(map[int]bool)
	for _, p := range SeedProperties() {
		assert.False(t, seen[p.ID], "duplicate property id %d", p.ID)
		seen[p.ID] = true

		assert.GreaterOrEqual(t, p.SafetyScore, 0.0)
		assert.LessOrEqual(t, p.SafetyScore, 10.0)
		assert.Positive(t, p.Price)
		assert.Positive(t, p.Sqft)
		assert.Contains(t, models.PropertyTypes, p.PropertyType)

		if p.HdiScore != nil {
			assert.GreaterOrEqual(t, *p.HdiScore, 0.0)
			assert.LessOrEqual(t, *p.HdiScore, 1.0)
		}
	}
}

func TestSeedNeighborhoodsInvariants(t *testing.T) {
	seen := make(map[int]bool)
	for _, n := range SeedNeighborhoods() {
		assert.False(t, seen[n.ID], "duplicate neighborhood id %d", n.ID)
		seen[n.ID] = true

		assert.GreaterOrEqual(t, n.HdiScore, 0.0)
		assert.LessOrEqual(t, n.HdiScore, 1.0)
		assert.Contains(t, []string{"low", "medium", "high"}, n.SafetyLevel)
	}
}
