package domain

import "strings"

// Location is a fully described point of interest eligible for map rendering.
//
// A Location can originate from three places, told apart by its ID prefix:
// catalog rows carry a bare UUID, locations synthesized from an itinerary
// stop are prefixed "itinerary-", and external place-search results are
// prefixed "osm-". Name doubles as the secondary key used for cross-source
// de-duplication.
type Location struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"shortDescription,omitempty"`
	Category         Category `json:"category"`
	CityID           string   `json:"cityId"`
	Latitude         float64  `json:"latitude"`
	Longitude        float64  `json:"longitude"`
	ImageURL         string   `json:"imageUrl,omitempty"`
	Gallery          []string `json:"gallery,omitempty"`
	Rating           float64  `json:"rating,omitempty"`
	ReviewCount      int      `json:"reviewCount,omitempty"`
	OpeningHours     string   `json:"openingHours,omitempty"`
	ClosingHours     string   `json:"closingHours,omitempty"`
	EntryFee         string   `json:"entryFee,omitempty"`
	Address          string   `json:"address,omitempty"`
	Phone            string   `json:"phone,omitempty"`
	Website          string   `json:"website,omitempty"`
	Tags             []string `json:"tags,omitempty"`
	IsFeatured       bool     `json:"isFeatured"`

	// PlannerDay is set on locations synthesized by the day-plan wizard so
	// the map can filter the curated list to the active day. Zero means the
	// location is not bound to a particular day.
	PlannerDay int `json:"plannerDay,omitempty"`

	// DurationMinutes is the suggested visit length carried over from an
	// itinerary stop, when known.
	DurationMinutes int `json:"durationMinutes,omitempty"`
}

// ID prefixes marking location provenance.
const (
	ItineraryIDPrefix = "itinerary-"
	PlannerIDPrefix   = "planner-"
	DiscoveryIDPrefix = "osm-"
)

// FromDiscovery reports whether the location came from the external
// place-search provider. Discovery locations are transient: they are never
// persisted and never participate in de-duplication.
func (l Location) FromDiscovery() bool {
	return strings.HasPrefix(l.ID, DiscoveryIDPrefix)
}

// Coord returns the location's coordinate.
func (l Location) Coord() LatLng {
	return LatLng{Lat: l.Latitude, Lng: l.Longitude}
}
