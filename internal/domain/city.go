// Package domain contains the core data types for the city-trail engine.
// This package has zero external dependencies and is imported by every other
// internal package (repo, trip, reconcile, nav, handler).
package domain

// City is a destination a traveler can pick. Cities are loaded from the
// catalog and never mutated afterwards.
type City struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Country     string  `json:"country"`
	Description string  `json:"description,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	IsDefault   bool    `json:"isDefault"`
}

// Coord returns the city's coordinate.
func (c City) Coord() LatLng {
	return LatLng{Lat: c.Latitude, Lng: c.Longitude}
}
