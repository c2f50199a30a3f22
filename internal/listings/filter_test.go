package listings

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"safespace/client/internal/models"
)

func hdi(v float64) *float64 { return &v }

func sampleProperty() models.Property {
	return models.Property{
		ID:           1,
		Title:        "Modern Craftsman in Irvington",
		Address:      "2134 NE Thompson St",
		City:         "Portland",
		State:        "OR",
		PropertyType: "House",
		Price:        685000,
		SafetyScore:  9.1,
		HdiScore:     hdi(0.91),
	}
}

func TestMatchesVacuousFilter(t *testing.T) {
	properties := []models.Property{
		sampleProperty(),
		{ID: 2, Title: "Lot", PropertyType: "Land", Price: 1},
		{ID: 3},
	}

	for _, p := range properties {
		assert.True(t, Matches(p, models.FilterParams{}, ""))
	}
}

func TestMatchesSearchQuery(t *testing.T) {
	p := sampleProperty()

	// Matches any of address, city or title, case-insensitively.
	assert.True(t, Matches(p, models.FilterParams{}, "thompson"))
	assert.True(t, Matches(p, models.FilterParams{}, "PORTLAND"))
	assert.True(t, Matches(p, models.FilterParams{}, "craftsman"))
	assert.False(t, Matches(p, models.FilterParams{}, "seattle"))

	// State is not searched.
	assert.False(t, Matches(p, models.FilterParams{}, "OR"))
}

func TestMatchesPropertyType(t *testing.T) {
	p := sampleProperty()

	assert.True(t, Matches(p, models.FilterParams{PropertyType: "House"}, ""))
	assert.False(t, Matches(p, models.FilterParams{PropertyType: "Apartment"}, ""))

	// The match is exact and case-sensitive over the closed type set.
	assert.False(t, Matches(p, models.FilterParams{PropertyType: "house"}, ""))
}

func TestMatchesPriceBounds(t *testing.T) {
	p := sampleProperty()

	// Bounds are inclusive: min = max = price still matches.
	exact := models.FilterParams{MinPrice: p.Price, MaxPrice: p.Price}
	assert.True(t, Matches(p, exact, ""))

	assert.False(t, Matches(p, models.FilterParams{MinPrice: p.Price + 1}, ""))
	assert.False(t, Matches(p, models.FilterParams{MaxPrice: p.Price - 1}, ""))
	assert.True(t, Matches(p, models.FilterParams{MinPrice: 100000, MaxPrice: 700000}, ""))
}

func TestMatchesMinHdi(t *testing.T) {
	p := sampleProperty()

	assert.True(t, Matches(p, models.FilterParams{MinHdi: 0.9}, ""))
	assert.False(t, Matches(p, models.FilterParams{MinHdi: 0.95}, ""))

	// A listing without HDI data can never satisfy a positive floor.
	p.HdiScore = nil
	assert.False(t, Matches(p, models.FilterParams{MinHdi: 0.1}, ""))
	assert.True(t, Matches(p, models.FilterParams{}, ""))
}

func TestMatchesReservedFieldsAreNoOps(t *testing.T) {
	p := sampleProperty()
	filters := models.FilterParams{
		DisasterRisk:          3,
		MinAqi:                "good",
		AccessibilityFeatures: []string{"ada", "senior"},
	}

	assert.True(t, Matches(p, filters, ""))
}

func TestFilterPreservesOrderAndInput(t *testing.T) {
	properties := []models.Property{
		{ID: 1, Price: 300000},
		{ID: 2, Price: 100000},
		{ID: 3, Price: 500000},
	}

	matched := Filter(properties, models.FilterParams{MinPrice: 200000}, "")

	assert.Len(t, matched, 2)
	assert.Equal(t, 1, matched[0].ID)
	assert.Equal(t, 3, matched[1].ID)

	// Input untouched.
	assert.Equal(t, 2, properties[1].ID)
	assert.Len(t, properties, 3)
}
