package maps

import (
	"safespace/client/internal/models"
	"safespace/client/internal/risk"
)

// Projector turns domain records into map pins, classifying each one with
// its configured risk thresholds.
type Projector struct {
	Thresholds risk.Thresholds
}

// NewProjector returns a projector using the default thresholds.
func NewProjector() Projector {
	return Projector{Thresholds: risk.DefaultThresholds}
}

// FromProperties projects one pin per property, in input order. Pins carry a
// back-reference to their source listing for popup rendering. The input is
// never modified.
func (pr Projector) FromProperties(properties []models.Property) []models.MapLocation {
	locations := make([]models.MapLocation, 0, len(properties))
	for i := range properties {
		p := properties[i]
		locations = append(locations, models.MapLocation{
			Name:      p.Title,
			Position:  [2]float64{p.Latitude, p.Longitude},
			RiskLevel: pr.Thresholds.FromScore(p.SafetyScore),
			Property:  &p,
		})
	}
	return locations
}

// FromNeighborhood projects a single neighborhood pin. Neighborhoods are
// classified by their categorical safety level rather than a numeric score.
func (pr Projector) FromNeighborhood(n models.Neighborhood) models.MapLocation {
	return models.MapLocation{
		Name:         n.Name,
		Position:     [2]float64{n.Latitude, n.Longitude},
		RiskLevel:    pr.Thresholds.FromLevel(n.SafetyLevel),
		Neighborhood: &n,
	}
}
