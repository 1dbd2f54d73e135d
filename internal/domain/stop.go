package domain

// Stop is a lightweight itinerary entry belonging to a day plan. It is
// distinct from a Location: a Stop has no coordinate of its own and is lifted
// into a full Location (via the title→coordinate lookup) before it can be
// rendered on a map.
type Stop struct {
	Title       string `json:"title"`
	Time        string `json:"time,omitempty"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type,omitempty"`
	Area        string `json:"area,omitempty"`
	// DurationMinutes is the suggested visit length, zero when unknown.
	DurationMinutes int `json:"durationMinutes,omitempty"`
}

// PlannedDay is one day of a day plan: an ordered list of stops with a title
// and optional narrative overview. Day numbers are contiguous starting at 1
// and run up to the trip duration.
type PlannedDay struct {
	Day      int    `json:"day"`
	Title    string `json:"title"`
	Stops    []Stop `json:"stops"`
	Overview string `json:"overview,omitempty"`
}
