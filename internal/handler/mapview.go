package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/CHAITANYA-2002/city-trail/internal/domain"
)

// GetMap handles GET /api/map.
//
// Without parameters it returns the full reconciled map state. With
// ?bbox=south,west,north,east it returns only the locations inside the
// viewport; with ?radius= it returns the locations near the traveler's
// position, closest first.
func (s *Server) GetMap(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sid := sessionID(r)
	q := r.URL.Query()

	if raw := q.Get("bbox"); raw != "" {
		box, err := parseBBox(raw)
		if err != nil {
			badRequest(w, err.Error())
			return
		}
		locs, err := s.trips.Viewport(ctx, sid, box)
		if err != nil {
			writeError(w, err)
			return
		}
		respond(w, http.StatusOK, locs)
		return
	}

	if raw := q.Get("radius"); raw != "" {
		radius, err := strconv.ParseFloat(raw, 64)
		if err != nil || radius <= 0 {
			badRequest(w, "radius must be a positive number of meters")
			return
		}
		locs, err := s.trips.Nearby(ctx, sid, radius)
		if err != nil {
			writeError(w, err)
			return
		}
		respond(w, http.StatusOK, locs)
		return
	}

	state, err := s.trips.MapState(ctx, sid)
	if err != nil {
		writeError(w, err)
		return
	}
	respond(w, http.StatusOK, state)
}

// parseBBox parses "south,west,north,east" into a BoundingBox.
func parseBBox(raw string) (domain.BoundingBox, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return domain.BoundingBox{}, errBBox
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return domain.BoundingBox{}, errBBox
		}
		vals[i] = v
	}
	return domain.BoundingBox{South: vals[0], West: vals[1], North: vals[2], East: vals[3]}, nil
}

var errBBox = errors.New("bbox must be south,west,north,east")
