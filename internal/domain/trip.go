package domain

// ExploreMode selects which stop source drives the map and the route engine.
type ExploreMode string

const (
	// ModeBrowse is free browsing over raw catalog locations.
	ModeBrowse ExploreMode = "map"
	// ModeItinerary follows the static schedule template for the trip duration.
	ModeItinerary ExploreMode = "itinerary"
	// ModeCustom follows the day plan hand-built in the wizard.
	ModeCustom ExploreMode = "custom"
)

// Valid reports whether m is a known explore mode.
func (m ExploreMode) Valid() bool {
	switch m {
	case ModeBrowse, ModeItinerary, ModeCustom:
		return true
	}
	return false
}

// TripState is the aggregate root for one traveler session. All fields are
// owned by trip.Store; nothing outside that package mutates them directly.
//
// City, Days, Interests, Mode, Curated and DayPlan survive a reload through
// the persistence port. Position and ActiveCategory are ephemeral and
// deliberately excluded from persistence.
type TripState struct {
	City      *City       `json:"city"`
	Days      int         `json:"days,omitempty"` // 0 = not chosen yet
	Interests []string    `json:"interests"`
	Mode      ExploreMode `json:"mode"`

	// Curated is the flat, denormalized copy of every wizard-selected stop
	// across all days, kept for quick map rendering.
	Curated []Location   `json:"curated"`
	DayPlan []PlannedDay `json:"dayPlan"`

	ActiveCategory *Category `json:"activeCategory,omitempty"`
	Position       *LatLng   `json:"position,omitempty"`
}
