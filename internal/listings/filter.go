package listings

import (
	"strings"

	"safespace/client/internal/models"
)

// Matches reports whether a property survives the active filters and search
// query. Pure predicate; every unset filter field is vacuously true.
func Matches(p models.Property, filters models.FilterParams, searchQuery string) bool {
	if searchQuery != "" {
		q := strings.ToLower(searchQuery)
		if !strings.Contains(strings.ToLower(p.Address), q) &&
			!strings.Contains(strings.ToLower(p.City), q) &&
			!strings.Contains(strings.ToLower(p.Title), q) {
			return false
		}
	}

	if filters.PropertyType != "" && p.PropertyType != filters.PropertyType {
		return false
	}

	if filters.MinPrice != 0 && p.Price < filters.MinPrice {
		return false
	}

	if filters.MaxPrice != 0 && p.Price > filters.MaxPrice {
		return false
	}

	// A positive HDI floor cannot be satisfied by a listing with no HDI data.
	if filters.MinHdi != 0 && (p.HdiScore == nil || *p.HdiScore < filters.MinHdi) {
		return false
	}

	// DisasterRisk, MinAqi and AccessibilityFeatures are accepted but not
	// evaluated yet; see models.FilterParams.

	return true
}

// Filter returns the properties matching the filters and search query,
// preserving input order. The input slice is never modified.
func Filter(properties []models.Property, filters models.FilterParams, searchQuery string) []models.Property {
	matched := make([]models.Property, 0, len(properties))
	for _, p := range properties {
		if Matches(p, filters, searchQuery) {
			matched = append(matched, p)
		}
	}
	return matched
}
