package maps

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"safespace/client/internal/models"
)

func TestFitViewportFallsBackToDefault(t *testing.T) {
	viewport := FitViewport(nil)

	assert.Equal(t, DefaultCenter, viewport.Center)
	assert.Equal(t, DefaultZoom, viewport.Zoom)
}

func TestFitViewportCentersOnPins(t *testing.T) {
	locations := []models.MapLocation{
		{Position: [2]float64{45.50, -122.70}},
		{Position: [2]float64{45.60, -122.60}},
	}

	viewport := FitViewport(locations)

	assert.InDelta(t, 45.55, viewport.Center[0], 1e-9)
	assert.InDelta(t, -122.65, viewport.Center[1], 1e-9)
	assert.Equal(t, DefaultZoom, viewport.Zoom)
}

func TestFitViewportSinglePin(t *testing.T) {
	viewport := FitViewport([]models.MapLocation{{Position: [2]float64{45.523, -122.675}}})

	assert.InDelta(t, 45.523, viewport.Center[0], 1e-9)
	assert.InDelta(t, -122.675, viewport.Center[1], 1e-9)
}
