package listings

import (
	"safespace/client/internal/geo"
	"safespace/client/internal/maps"
	"safespace/client/internal/models"
	"safespace/client/internal/risk"
)

// View is everything the home page renders from one recomputation: the
// filtered and sorted listing column, the map pins, and the neighborhood
// aggregates for the HDI chart and emergency-services table.
type View struct {
	List          []models.Property     `json:"list"`
	MapLocations  []models.MapLocation  `json:"mapLocations"`
	Neighborhoods []models.Neighborhood `json:"neighborhoods"`
}

// Pipeline derives views from raw API data. It holds no state between calls;
// the only configuration is the risk-threshold pair and the neighborhood
// association radius.
type Pipeline struct {
	projector   maps.Projector
	maxDistance float64
}

// NewPipeline builds a pipeline classifying with the given thresholds.
func NewPipeline(thresholds risk.Thresholds) Pipeline {
	return Pipeline{
		projector:   maps.Projector{Thresholds: thresholds},
		maxDistance: geo.DefaultMaxDistance,
	}
}

// WithNeighborhoodRadius returns a copy using the given association radius
// in decimal degrees.
func (pl Pipeline) WithNeighborhoodRadius(maxDistance float64) Pipeline {
	pl.maxDistance = maxDistance
	return pl
}

// Thresholds returns the risk-threshold pair the pipeline classifies with.
func (pl Pipeline) Thresholds() risk.Thresholds {
	return pl.projector.Thresholds
}

// Derive recomputes the home view from its inputs. The listing column is
// filtered then sorted; the map deliberately shows every known property
// regardless of active filters, matching the product behavior where pins
// stay put while the list narrows.
func (pl Pipeline) Derive(
	properties []models.Property,
	neighborhoods []models.Neighborhood,
	filters models.FilterParams,
	searchQuery string,
	sortMode models.SortMode,
) View {
	return View{
		List:          Sort(Filter(properties, filters, searchQuery), sortMode),
		MapLocations:  pl.projector.FromProperties(properties),
		Neighborhoods: neighborhoods,
	}
}

// Derive recomputes the home view with the default risk thresholds.
func Derive(
	properties []models.Property,
	neighborhoods []models.Neighborhood,
	filters models.FilterParams,
	searchQuery string,
	sortMode models.SortMode,
) View {
	return NewPipeline(risk.DefaultThresholds).Derive(properties, neighborhoods, filters, searchQuery, sortMode)
}
