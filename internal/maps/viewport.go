package maps

import (
	"github.com/paulmach/orb"

	"safespace/client/internal/models"
)

// The app's fallback view: Portland, OR.
var (
	DefaultCenter = [2]float64{45.523, -122.675}
	DefaultZoom   = 12
)

// Viewport is the initial map framing: a center point and zoom level.
// Tile rendering itself belongs to the mapping library, not to us.
type Viewport struct {
	Center [2]float64 `json:"center"`
	Zoom   int        `json:"zoom"`
}

// FitViewport centers the map on the bounding box of the given pins. With no
// pins it falls back to the default center.
func FitViewport(locations []models.MapLocation) Viewport {
	if len(locations) == 0 {
		return Viewport{Center: DefaultCenter, Zoom: DefaultZoom}
	}

	// orb points are (lon, lat); pin positions are (lat, lon).
	points := make(orb.MultiPoint, 0, len(locations))
	for _, loc := range locations {
		points = append(points, orb.Point{loc.Position[1], loc.Position[0]})
	}
	center := points.Bound().Center()

	return Viewport{
		Center: [2]float64{center.Y(), center.X()},
		Zoom:   DefaultZoom,
	}
}
