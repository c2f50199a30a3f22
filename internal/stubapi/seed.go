package stubapi

import (
	"time"

	"safespace/client/internal/models"
)

func ptrInt(v int) *int           { return &v }
func ptrFloat(v float64) *float64 { return &v }
func ptrString(v string) *string  { return &v }

var seedCreatedAt = time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC)

// SeedProperties returns the sample Portland listings served by the stub.
func SeedProperties() []models.Property {
	return []models.Property{
		{
			ID:                    1,
			Title:                 "Modern Craftsman in Irvington",
			Address:               "2134 NE Thompson St",
			City:                  "Portland",
			State:                 "OR",
			ZipCode:               "97212",
			Price:                 685000,
			Beds:                  4,
			Baths:                 2,
			Sqft:                  2450,
			PropertyType:          "House",
			SafetyScore:           9.1,
			Latitude:              45.5347,
			Longitude:             -122.6440,
			AirQuality:            ptrInt(42),
			AirQualityText:        ptrString("Good"),
			HdiScore:              ptrFloat(0.91),
			EmergencyResponseTime: ptrFloat(4),
			FloodRisk:             ptrString("low"),
			CreatedAt:             seedCreatedAt,
		},
		{
			ID:                    2,
			Title:                 "Alberta Arts Bungalow",
			Address:               "5016 NE 22nd Ave",
			City:                  "Portland",
			State:                 "OR",
			ZipCode:               "97211",
			Price:                 519000,
			Beds:                  3,
			Baths:                 1,
			Sqft:                  1680,
			PropertyType:          "House",
			SafetyScore:           7.8,
			Latitude:              45.5570,
			Longitude:             -122.6430,
			AirQuality:            ptrInt(55),
			AirQualityText:        ptrString("Moderate"),
			HdiScore:              ptrFloat(0.83),
			EmergencyResponseTime: ptrFloat(6),
			FloodRisk:             ptrString("low"),
			CreatedAt:             seedCreatedAt,
		},
		{
			ID:                    3,
			Title:                 "Lloyd District Apartment",
			Address:               "1133 NE Holladay St",
			City:                  "Portland",
			State:                 "OR",
			ZipCode:               "97232",
			Price:                 329000,
			Beds:                  2,
			Baths:                 2,
			Sqft:                  980,
			PropertyType:          "Apartment",
			SafetyScore:           6.4,
			Latitude:              45.5300,
			Longitude:             -122.6530,
			AirQuality:            ptrInt(68),
			AirQualityText:        ptrString("Moderate"),
			EmergencyResponseTime: ptrFloat(3),
			FloodRisk:             ptrString("medium"),
			FloodZone:             ptrString("AE"),
			CreatedAt:             seedCreatedAt,
		},
		{
			ID:           4,
			Title:        "Buildable Lot near Cully",
			Address:      "6710 NE Killingsworth St",
			City:         "Portland",
			State:        "OR",
			ZipCode:      "97218",
			Price:        210000,
			Beds:         0,
			Baths:        0,
			Sqft:         5200,
			PropertyType: "Land",
			SafetyScore:  6.9,
			Latitude:     45.5625,
			Longitude:    -122.5950,
			HdiScore:     ptrFloat(0.72),
			CreatedAt:    seedCreatedAt,
		},
	}
}

// SeedNeighborhoods returns the sample neighborhood aggregates.
func SeedNeighborhoods() []models.Neighborhood {
	return []models.Neighborhood{
		{
			ID:               1,
			Name:             "Irvington",
			City:             "Portland",
			State:            "OR",
			HdiScore:         0.90,
			PoliceResponse:   5,
			FireResponse:     4,
			MedicalResponse:  6,
			HospitalDistance: 1.8,
			ShelterDistance:  2.5,
			SafetyLevel:      "high",
			Latitude:         45.5360,
			Longitude:        -122.6420,
			AQI:              ptrInt(42),
			AQIText:          ptrString("Good"),
			FloodRisk:        ptrString("Low"),
			EarthquakeRisk:   ptrString("Medium"),
		},
		{
			ID:               2,
			Name:             "Lloyd District",
			City:             "Portland",
			State:            "OR",
			HdiScore:         0.77,
			PoliceResponse:   4,
			FireResponse:     3,
			MedicalResponse:  4,
			HospitalDistance: 0.9,
			ShelterDistance:  1.2,
			SafetyLevel:      "medium",
			Latitude:         45.5310,
			Longitude:        -122.6520,
			AQI:              ptrInt(68),
			AQIText:          ptrString("Moderate"),
			FloodRisk:        ptrString("Medium"),
			EarthquakeRisk:   ptrString("Medium"),
		},
		{
			ID:               3,
			Name:             "Cully",
			City:             "Portland",
			State:            "OR",
			HdiScore:         0.71,
			PoliceResponse:   8,
			FireResponse:     7,
			MedicalResponse:  9,
			HospitalDistance: 3.4,
			ShelterDistance:  4.1,
			SafetyLevel:      "low",
			Latitude:         45.5630,
			Longitude:        -122.5960,
			FloodRisk:        ptrString("Low"),
			EarthquakeRisk:   ptrString("High"),
		},
	}
}
