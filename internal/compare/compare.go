package compare

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"safespace/client/internal/models"
)

// MaxProperties is the display cap: the comparison table shows at most two
// listings side by side.
const MaxProperties = 2

var printer = message.NewPrinter(language.AmericanEnglish)

// Resolve maps compare-list entries to their listings, preserving list order
// and dropping entries whose property is no longer known, then applies the
// display cap.
func Resolve(items []models.CompareListItem, properties []models.Property) []models.Property {
	byID := make(map[int]models.Property, len(properties))
	for _, p := range properties {
		byID[p.ID] = p
	}

	resolved := make([]models.Property, 0, MaxProperties)
	for _, item := range items {
		p, ok := byID[item.PropertyID]
		if !ok {
			continue
		}
		resolved = append(resolved, p)
		if len(resolved) == MaxProperties {
			break
		}
	}
	return resolved
}

// ItemFor finds the compare-list entry referencing a property, used to turn
// a "remove this property" action into a DELETE by entry id.
func ItemFor(items []models.CompareListItem, propertyID int) (models.CompareListItem, bool) {
	for _, item := range items {
		if item.PropertyID == propertyID {
			return item, true
		}
	}
	return models.CompareListItem{}, false
}

// Row is one attribute line of the side-by-side table.
type Row struct {
	Label  string
	Values []string
}

// Rows builds the comparison table for the given listings.
func Rows(properties []models.Property) []Row {
	rows := []Row{
		{Label: "Price"},
		{Label: "Price per Sqft"},
		{Label: "Beds"},
		{Label: "Baths"},
		{Label: "Sqft"},
		{Label: "Property Type"},
		{Label: "Safety Score"},
		{Label: "HDI Score"},
		{Label: "Emergency Response"},
		{Label: "Air Quality"},
		{Label: "Flood Risk"},
	}

	for _, p := range properties {
		rows[0].Values = append(rows[0].Values, FormatPrice(p.Price))
		rows[1].Values = append(rows[1].Values, FormatPricePerSqft(p.Price, p.Sqft))
		rows[2].Values = append(rows[2].Values, fmt.Sprintf("%d", p.Beds))
		rows[3].Values = append(rows[3].Values, fmt.Sprintf("%d", p.Baths))
		rows[4].Values = append(rows[4].Values, printer.Sprintf("%d", p.Sqft))
		rows[5].Values = append(rows[5].Values, p.PropertyType)
		rows[6].Values = append(rows[6].Values, fmt.Sprintf("%.1f/10", p.SafetyScore))
		rows[7].Values = append(rows[7].Values, formatOptional(p.HdiScore, "%.2f"))
		rows[8].Values = append(rows[8].Values, formatResponseTime(p.EmergencyResponseTime))
		rows[9].Values = append(rows[9].Values, formatAirQuality(p))
		rows[10].Values = append(rows[10].Values, stringOrNA(p.FloodRisk))
	}
	return rows
}

// FormatPrice renders a whole-dollar USD amount with digit grouping.
func FormatPrice(price float64) string {
	return printer.Sprintf("$%d", int64(math.Round(price)))
}

// FormatPricePerSqft renders the rounded price per square foot.
func FormatPricePerSqft(price float64, sqft int) string {
	if sqft <= 0 {
		return "N/A"
	}
	return printer.Sprintf("$%d", int64(math.Round(price/float64(sqft))))
}

func formatOptional(v *float64, format string) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf(format, *v)
}

func formatResponseTime(minutes *float64) string {
	if minutes == nil {
		return "N/A"
	}
	return fmt.Sprintf("%g min", *minutes)
}

func formatAirQuality(p models.Property) string {
	if p.AirQuality == nil {
		return "N/A"
	}
	if p.AirQualityText != nil {
		return fmt.Sprintf("%d (%s)", *p.AirQuality, *p.AirQualityText)
	}
	return fmt.Sprintf("%d", *p.AirQuality)
}

func stringOrNA(s *string) string {
	if s == nil || *s == "" {
		return "N/A"
	}
	return *s
}
