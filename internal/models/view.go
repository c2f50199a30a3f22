package models

// RiskLevel is the three-tier classification used for map-marker coloring.
// It is always derived from a safety metric, never supplied by the API.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Rank orders risk levels for display: Low < Medium < High.
func (r RiskLevel) Rank() int {
	switch r {
	case RiskLow:
		return 0
	case RiskMedium:
		return 1
	case RiskHigh:
		return 2
	default:
		return 3
	}
}

// SortMode selects the ordering applied to a filtered listing view.
type SortMode string

const (
	SortRecommended SortMode = "recommended"
	SortPriceLow    SortMode = "price_low"
	SortPriceHigh   SortMode = "price_high"
	SortSafety      SortMode = "safety"
	SortHdi         SortMode = "hdi"
)

// FilterParams carries one application of the filter sidebar. Every field is
// independently optional; a zero value imposes no constraint. A new value
// replaces the previous one wholesale on every apply.
//
// DisasterRisk, MinAqi and AccessibilityFeatures are part of the sidebar
// contract but are not evaluated by the predicate yet; they are accepted and
// ignored until the corresponding predicates ship.
type FilterParams struct {
	City                  string   `json:"city,omitempty"`
	State                 string   `json:"state,omitempty"`
	PropertyType          string   `json:"propertyType,omitempty"`
	MinPrice              float64  `json:"minPrice,omitempty"`
	MaxPrice              float64  `json:"maxPrice,omitempty"`
	MinHdi                float64  `json:"minHdi,omitempty"`
	DisasterRisk          float64  `json:"disasterRisk,omitempty"`
	MinAqi                string   `json:"minAqi,omitempty"`
	AccessibilityFeatures []string `json:"accessibilityFeatures,omitempty"`
}

// MapLocation is one map pin. Exactly one of Property/Neighborhood is set,
// matching the record the pin was projected from.
type MapLocation struct {
	Name         string        `json:"name"`
	Position     [2]float64    `json:"position"`
	RiskLevel    RiskLevel     `json:"riskLevel"`
	Property     *Property     `json:"property,omitempty"`
	Neighborhood *Neighborhood `json:"neighborhood,omitempty"`
}
