package listings

import (
	"safespace/client/internal/geo"
	"safespace/client/internal/models"
)

// Detail is the derived data for one property page: the listing itself, the
// neighborhood it falls in (if any), and the pins for both.
type Detail struct {
	Property     models.Property      `json:"property"`
	Neighborhood *models.Neighborhood `json:"neighborhood,omitempty"`
	MapLocations []models.MapLocation `json:"mapLocations"`
}

// DeriveDetail builds the detail view for a property. The map gets the
// property pin, classified by safety score, plus the associated
// neighborhood's pin classified by its safety level.
func (pl Pipeline) DeriveDetail(p models.Property, neighborhoods []models.Neighborhood) Detail {
	d := Detail{
		Property:     p,
		MapLocations: pl.projector.FromProperties([]models.Property{p}),
	}

	if n := geo.AssociateNeighborhood(p, neighborhoods, pl.maxDistance); n != nil {
		d.Neighborhood = n
		d.MapLocations = append(d.MapLocations, pl.projector.FromNeighborhood(*n))
	}
	return d
}
