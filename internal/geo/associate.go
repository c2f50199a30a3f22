package geo

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"safespace/client/internal/models"
)

// DefaultMaxDistance is the association radius in decimal degrees,
// roughly 2 km at the app's latitudes.
const DefaultMaxDistance = 0.02

// AssociateNeighborhood finds the neighborhood a property belongs to: same
// city and planar coordinate distance below maxDistance degrees. Returns nil
// when nothing is close enough.
//
// The first neighborhood in slice order wins when several are within range;
// no better tie-break is defined for the proximity heuristic.
func AssociateNeighborhood(p models.Property, neighborhoods []models.Neighborhood, maxDistance float64) *models.Neighborhood {
	point := orb.Point{p.Longitude, p.Latitude}
	for i := range neighborhoods {
		n := &neighborhoods[i]
		if n.City != p.City {
			continue
		}
		if planar.Distance(point, orb.Point{n.Longitude, n.Latitude}) < maxDistance {
			return n
		}
	}
	return nil
}
