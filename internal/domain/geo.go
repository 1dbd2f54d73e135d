package domain

// LatLng is a WGS84 coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// BoundingBox is a geographic viewport. South < North and West < East for any
// box this system produces; callers constructing one by hand should keep that
// ordering.
type BoundingBox struct {
	South float64 `json:"south"`
	West  float64 `json:"west"`
	North float64 `json:"north"`
	East  float64 `json:"east"`
}

// Contains reports whether p falls inside the box (edges inclusive).
func (b BoundingBox) Contains(p LatLng) bool {
	return p.Lat >= b.South && p.Lat <= b.North && p.Lng >= b.West && p.Lng <= b.East
}

// Center returns the midpoint of the box.
func (b BoundingBox) Center() LatLng {
	return LatLng{Lat: (b.South + b.North) / 2, Lng: (b.West + b.East) / 2}
}

// Path is a road-following route returned by the routing provider:
// an ordered coordinate sequence plus totals for the whole route.
type Path struct {
	Points          []LatLng `json:"points"`
	DistanceMeters  float64  `json:"distanceMeters"`
	DurationSeconds float64  `json:"durationSeconds"`
}

// Empty reports whether the path has no geometry (e.g. after a failed fetch).
func (p Path) Empty() bool {
	return len(p.Points) == 0
}
