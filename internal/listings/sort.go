package listings

import (
	"sort"

	"safespace/client/internal/models"
)

// Comparator returns the three-way ordering function for a sort mode:
// negative puts a first, positive puts b first, zero keeps the current
// order. Unrecognized modes (including "recommended") compare everything
// equal, which under a stable sort leaves the list untouched.
func Comparator(mode models.SortMode) func(a, b models.Property) int {
	switch mode {
	case models.SortPriceLow:
		return func(a, b models.Property) int {
			return sign(a.Price - b.Price)
		}
	case models.SortPriceHigh:
		return func(a, b models.Property) int {
			return sign(b.Price - a.Price)
		}
	case models.SortSafety:
		return func(a, b models.Property) int {
			return sign(b.SafetyScore - a.SafetyScore)
		}
	case models.SortHdi:
		return func(a, b models.Property) int {
			return sign(hdiOrZero(b) - hdiOrZero(a))
		}
	default:
		return func(a, b models.Property) int {
			return 0
		}
	}
}

// Sort returns a sorted copy of the properties. The sort is stable so that
// ties (common on safety score) keep their fetched order across re-renders.
func Sort(properties []models.Property, mode models.SortMode) []models.Property {
	sorted := make([]models.Property, len(properties))
	copy(sorted, properties)

	cmp := Comparator(mode)
	sort.SliceStable(sorted, func(i, j int) bool {
		return cmp(sorted[i], sorted[j]) < 0
	})
	return sorted
}

func hdiOrZero(p models.Property) float64 {
	if p.HdiScore == nil {
		return 0
	}
	return *p.HdiScore
}

func sign(d float64) int {
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	default:
		return 0
	}
}
