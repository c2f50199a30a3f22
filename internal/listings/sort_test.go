package listings

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"safespace/client/internal/models"
)

func ids(properties []models.Property) []int {
	out := make([]int, len(properties))
	for i, p := range properties {
		out[i] = p.ID
	}
	return out
}

func TestSortPriceModesReverseEachOther(t *testing.T) {
	properties := []models.Property{
		{ID: 1, Price: 500000},
		{ID: 2, Price: 200000},
		{ID: 3, Price: 350000},
	}

	ascending := Sort(properties, models.SortPriceLow)
	descending := Sort(properties, models.SortPriceHigh)

	assert.Equal(t, []int{2, 3, 1}, ids(ascending))
	assert.Equal(t, []int{1, 3, 2}, ids(descending))
}

func TestSortSafetyDescending(t *testing.T) {
	properties := []models.Property{
		{ID: 1, SafetyScore: 6.2},
		{ID: 2, SafetyScore: 9.4},
		{ID: 3, SafetyScore: 7.7},
	}

	sorted := Sort(properties, models.SortSafety)
	assert.Equal(t, []int{2, 3, 1}, ids(sorted))
}

func TestSortHdiTreatsAbsentAsZero(t *testing.T) {
	properties := []models.Property{
		{ID: 1},
		{ID: 2, HdiScore: hdi(0.65)},
		{ID: 3, HdiScore: hdi(0.9)},
	}

	sorted := Sort(properties, models.SortHdi)
	assert.Equal(t, []int{3, 2, 1}, ids(sorted))
}

func TestSortUnknownModeKeepsOrder(t *testing.T) {
	properties := []models.Property{
		{ID: 3, Price: 1},
		{ID: 1, Price: 3},
		{ID: 2, Price: 2},
	}

	assert.Equal(t, []int{3, 1, 2}, ids(Sort(properties, models.SortRecommended)))
	assert.Equal(t, []int{3, 1, 2}, ids(Sort(properties, models.SortMode("bogus"))))
}

func TestSortIsStableOnTies(t *testing.T) {
	properties := []models.Property{
		{ID: 1, SafetyScore: 8},
		{ID: 2, SafetyScore: 9},
		{ID: 3, SafetyScore: 8},
		{ID: 4, SafetyScore: 8},
	}

	sorted := Sort(properties, models.SortSafety)

	// Tied scores keep their fetched order.
	assert.Equal(t, []int{2, 1, 3, 4}, ids(sorted))
}

func TestSortDoesNotModifyInput(t *testing.T) {
	properties := []models.Property{
		{ID: 1, Price: 3},
		{ID: 2, Price: 1},
	}

	Sort(properties, models.SortPriceLow)
	assert.Equal(t, []int{1, 2}, ids(properties))
}

func TestComparatorSignConvention(t *testing.T) {
	cheap := models.Property{Price: 100}
	pricey := models.Property{Price: 200}

	cmp := Comparator(models.SortPriceLow)
	assert.Negative(t, cmp(cheap, pricey))
	assert.Positive(t, cmp(pricey, cheap))
	assert.Zero(t, cmp(cheap, cheap))
}
