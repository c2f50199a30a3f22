package maps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safespace/client/internal/models"
)

func TestFromPropertiesCountAndOrder(t *testing.T) {
	properties := []models.Property{
		{ID: 1, Title: "A", SafetyScore: 9, Latitude: 45.52, Longitude: -122.67},
		{ID: 2, Title: "B", SafetyScore: 7.5, Latitude: 45.53, Longitude: -122.66},
		{ID: 3, Title: "C", SafetyScore: 5, Latitude: 45.54, Longitude: -122.65},
	}

	locations := NewProjector().FromProperties(properties)

	require.Len(t, locations, len(properties))
	assert.Equal(t, "A", locations[0].Name)
	assert.Equal(t, "B", locations[1].Name)
	assert.Equal(t, "C", locations[2].Name)

	assert.Equal(t, models.RiskLow, locations[0].RiskLevel)
	assert.Equal(t, models.RiskMedium, locations[1].RiskLevel)
	assert.Equal(t, models.RiskHigh, locations[2].RiskLevel)

	assert.Equal(t, [2]float64{45.52, -122.67}, locations[0].Position)
}

func TestFromPropertiesBackReference(t *testing.T) {
	properties := []models.Property{
		{ID: 1, Title: "A", SafetyScore: 9},
		{ID: 2, Title: "B", SafetyScore: 9},
	}

	locations := NewProjector().FromProperties(properties)

	require.NotNil(t, locations[0].Property)
	assert.Equal(t, 1, locations[0].Property.ID)
	assert.Equal(t, 2, locations[1].Property.ID)
	assert.Nil(t, locations[0].Neighborhood)
}

func TestFromPropertiesEmpty(t *testing.T) {
	assert.Empty(t, NewProjector().FromProperties(nil))
}

func TestFromNeighborhood(t *testing.T) {
	n := models.Neighborhood{ID: 4, Name: "Cully", SafetyLevel: "low", Latitude: 45.563, Longitude: -122.596}

	loc := NewProjector().FromNeighborhood(n)

	assert.Equal(t, "Cully", loc.Name)
	assert.Equal(t, models.RiskHigh, loc.RiskLevel)
	require.NotNil(t, loc.Neighborhood)
	assert.Equal(t, 4, loc.Neighborhood.ID)
	assert.Nil(t, loc.Property)
}
