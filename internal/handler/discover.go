package handler

import (
	"net/http"
	"strconv"

	"github.com/CHAITANYA-2002/city-trail/internal/domain"
)

// DiscoverArea handles GET /api/discover/area?q=&bbox=.
// Without a bbox the search covers the whole selected city.
func (s *Server) DiscoverArea(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var box *domain.BoundingBox
	if raw := q.Get("bbox"); raw != "" {
		parsed, err := parseBBox(raw)
		if err != nil {
			badRequest(w, err.Error())
			return
		}
		box = &parsed
	}

	locs, err := s.trips.Discover(r.Context(), sessionID(r), q.Get("q"), box)
	if err != nil {
		writeError(w, err)
		return
	}
	respond(w, http.StatusOK, locs)
}

// DiscoverNearby handles GET /api/discover/nearby?q=&lat=&lon=&radius=.
// Without lat/lon the search centers on the traveler's stored position.
func (s *Server) DiscoverNearby(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var origin *domain.LatLng
	if q.Get("lat") != "" || q.Get("lon") != "" {
		lat, latErr := strconv.ParseFloat(q.Get("lat"), 64)
		lon, lonErr := strconv.ParseFloat(q.Get("lon"), 64)
		if latErr != nil || lonErr != nil {
			badRequest(w, "lat and lon must both be numbers")
			return
		}
		origin = &domain.LatLng{Lat: lat, Lng: lon}
	}

	var radius float64
	if raw := q.Get("radius"); raw != "" {
		var err error
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil || radius < 0 {
			badRequest(w, "radius must be a non-negative number of meters")
			return
		}
	}

	locs, err := s.trips.DiscoverNearby(r.Context(), sessionID(r), q.Get("q"), origin, radius)
	if err != nil {
		writeError(w, err)
		return
	}
	respond(w, http.StatusOK, locs)
}

// ClearDiscovery handles DELETE /api/discover.
func (s *Server) ClearDiscovery(w http.ResponseWriter, r *http.Request) {
	s.trips.ClearDiscovery(r.Context(), sessionID(r))
	w.WriteHeader(http.StatusNoContent)
}
