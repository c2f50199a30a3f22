package models

import "time"

// CompareListItem is one entry in a user's server-side compare list.
type CompareListItem struct {
	ID         int       `json:"id"`
	UserID     int       `json:"userId"`
	PropertyID int       `json:"propertyId"`
	AddedAt    time.Time `json:"addedAt"`
}

// CompareRequest is the POST /api/compare body.
type CompareRequest struct {
	UserID     int       `json:"userId"`
	PropertyID int       `json:"propertyId"`
	AddedAt    time.Time `json:"addedAt"`
}
