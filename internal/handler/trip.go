package handler

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/CHAITANYA-2002/city-trail/internal/domain"
)

// GetTrip handles GET /api/trip.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, s.trips.State(r.Context(), sessionID(r)))
}

// patchTripRequest carries the optional trip-state setters. Only present
// fields are applied; each field maps to one atomic store mutation.
type patchTripRequest struct {
	CityID         *string   `json:"cityId,omitempty"`
	Days           *int      `json:"days,omitempty"`
	Interests      *[]string `json:"interests,omitempty"`
	Mode           *string   `json:"mode,omitempty"`
	ActiveCategory *string   `json:"activeCategory,omitempty"`
}

// PatchTrip handles PATCH /api/trip.
func (s *Server) PatchTrip(w http.ResponseWriter, r *http.Request) {
	var req patchTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	ctx := r.Context()
	sid := sessionID(r)

	if req.CityID != nil {
		if _, err := s.trips.SelectCity(ctx, sid, *req.CityID); err != nil {
			writeError(w, err)
			return
		}
	}
	if req.Days != nil {
		if err := s.trips.SetDays(ctx, sid, *req.Days); err != nil {
			writeError(w, err)
			return
		}
	}
	if req.Interests != nil {
		s.trips.SetInterests(ctx, sid, *req.Interests)
	}
	if req.Mode != nil {
		if err := s.trips.SetMode(ctx, sid, domain.ExploreMode(*req.Mode)); err != nil {
			writeError(w, err)
			return
		}
	}
	if req.ActiveCategory != nil {
		if err := s.trips.SetActiveCategory(ctx, sid, *req.ActiveCategory); err != nil {
			writeError(w, err)
			return
		}
	}

	respond(w, http.StatusOK, s.trips.State(ctx, sid))
}

// ClearTrip handles DELETE /api/trip.
func (s *Server) ClearTrip(w http.ResponseWriter, r *http.Request) {
	s.trips.ClearTrip(r.Context(), sessionID(r))
	w.WriteHeader(http.StatusNoContent)
}

// addLocationRequest adds one catalog location to the trip, optionally into a
// specific planned day.
type addLocationRequest struct {
	LocationID string `json:"locationId"`
	Day        int    `json:"day,omitempty"`
}

// AddTripLocation handles POST /api/trip/locations.
func (s *Server) AddTripLocation(w http.ResponseWriter, r *http.Request) {
	var req addLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.LocationID == "" {
		badRequest(w, "locationId is required")
		return
	}
	if err := s.trips.AddLocation(r.Context(), sessionID(r), req.LocationID, req.Day); err != nil {
		writeError(w, err)
		return
	}
	respond(w, http.StatusOK, s.trips.State(r.Context(), sessionID(r)))
}

// RemoveTripLocation handles DELETE /api/trip/locations/{name}.
func (s *Server) RemoveTripLocation(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil {
		badRequest(w, "invalid location name")
		return
	}
	if err := s.trips.RemoveLocation(r.Context(), sessionID(r), name); err != nil {
		writeError(w, err)
		return
	}
	respond(w, http.StatusOK, s.trips.State(r.Context(), sessionID(r)))
}

// reorderRequest moves a stop within one day.
type reorderRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// ReorderDay handles POST /api/trip/days/{day}/reorder.
func (s *Server) ReorderDay(w http.ResponseWriter, r *http.Request) {
	day, err := strconv.Atoi(chi.URLParam(r, "day"))
	if err != nil {
		badRequest(w, "day must be an integer")
		return
	}
	var req reorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if err := s.trips.ReorderStops(r.Context(), sessionID(r), day, req.From, req.To); err != nil {
		writeError(w, err)
		return
	}
	respond(w, http.StatusOK, s.trips.State(r.Context(), sessionID(r)))
}

// positionRequest is a live geolocation fix. AccuracyM is the reported
// accuracy radius in meters, zero when the device does not report one.
type positionRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	AccuracyM float64 `json:"accuracyM,omitempty"`
}

// positionResponse reports whether the fix was accepted. Dropped fixes are
// normal operation (rate limiting, poor accuracy), not errors.
type positionResponse struct {
	Accepted bool `json:"accepted"`
}

// PutPosition handles PUT /api/trip/position.
func (s *Server) PutPosition(w http.ResponseWriter, r *http.Request) {
	var req positionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	accepted := s.trips.UpdatePosition(r.Context(), sessionID(r),
		domain.LatLng{Lat: req.Latitude, Lng: req.Longitude}, req.AccuracyM)
	respond(w, http.StatusOK, positionResponse{Accepted: accepted})
}
