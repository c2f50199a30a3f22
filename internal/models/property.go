package models

import "time"

// Property is one listing as served by the SafeSpace API. Field names follow
// the API's camelCase wire format. Safety and environment metrics may be
// absent for listings that have not been scored yet.
type Property struct {
	ID                    int       `json:"id"`
	Title                 string    `json:"title"`
	Address               string    `json:"address"`
	City                  string    `json:"city"`
	State                 string    `json:"state"`
	ZipCode               string    `json:"zipCode"`
	Price                 float64   `json:"price"`
	Beds                  int       `json:"beds"`
	Baths                 int       `json:"baths"`
	Sqft                  int       `json:"sqft"`
	PropertyType          string    `json:"propertyType"`
	ImageURL              *string   `json:"imageUrl,omitempty"`
	SafetyScore           float64   `json:"safetyScore"`
	Latitude              float64   `json:"latitude"`
	Longitude             float64   `json:"longitude"`
	AirQuality            *int      `json:"airQuality,omitempty"`
	AirQualityText        *string   `json:"airQualityText,omitempty"`
	HdiScore              *float64  `json:"hdiScore,omitempty"`
	EmergencyResponseTime *float64  `json:"emergencyResponseTime,omitempty"`
	FloodRisk             *string   `json:"floodRisk,omitempty"`
	FloodZone             *string   `json:"floodZone,omitempty"`
	CreatedAt             time.Time `json:"createdAt"`
}

// Neighborhood is an area aggregate. It is not keyed to any property; the
// association is derived by proximity (see internal/geo).
type Neighborhood struct {
	ID               int     `json:"id"`
	Name             string  `json:"name"`
	City             string  `json:"city"`
	State            string  `json:"state"`
	HdiScore         float64 `json:"hdiScore"`
	PoliceResponse   float64 `json:"policeResponse"`
	FireResponse     float64 `json:"fireResponse"`
	MedicalResponse  float64 `json:"medicalResponse"`
	HospitalDistance float64 `json:"hospitalDistance"`
	ShelterDistance  float64 `json:"shelterDistance"`
	SafetyLevel      string  `json:"safetyLevel"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	AQI              *int    `json:"aqi,omitempty"`
	AQIText          *string `json:"aqiText,omitempty"`
	FloodRisk        *string `json:"floodRisk,omitempty"`
	EarthquakeRisk   *string `json:"earthquakeRisk,omitempty"`
}

// PropertyTypes is the closed set of recognized listing types.
var PropertyTypes = []string{"House", "Apartment", "Land"}
