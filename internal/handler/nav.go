package handler

import (
	"encoding/json"
	"net/http"
)

// GetNavigation handles GET /api/navigation.
func (s *Server) GetNavigation(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, s.trips.Navigation(r.Context(), sessionID(r)))
}

// routeRequest targets one location for routing.
type routeRequest struct {
	LocationID string `json:"locationId"`
}

// PostRoute handles POST /api/route: fetch a route from the traveler to one
// destination.
func (s *Server) PostRoute(w http.ResponseWriter, r *http.Request) {
	var req routeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.LocationID == "" {
		badRequest(w, "locationId is required")
		return
	}
	snap, err := s.trips.SelectDestination(r.Context(), sessionID(r), req.LocationID)
	if err != nil {
		writeError(w, err)
		return
	}
	respond(w, http.StatusOK, snap)
}

// navDayRequest selects which planned day to navigate.
type navDayRequest struct {
	Day int `json:"day"`
}

// SetNavigationDay handles POST /api/navigation/day.
func (s *Server) SetNavigationDay(w http.ResponseWriter, r *http.Request) {
	var req navDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	snap, err := s.trips.SetNavigationDay(r.Context(), sessionID(r), req.Day)
	if err != nil {
		writeError(w, err)
		return
	}
	respond(w, http.StatusOK, snap)
}

// StartNavigation handles POST /api/navigation/start.
func (s *Server) StartNavigation(w http.ResponseWriter, r *http.Request) {
	snap, err := s.trips.StartNavigation(r.Context(), sessionID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	respond(w, http.StatusOK, snap)
}

// AdvanceNavigation handles POST /api/navigation/advance.
func (s *Server) AdvanceNavigation(w http.ResponseWriter, r *http.Request) {
	snap, err := s.trips.AdvanceNavigation(r.Context(), sessionID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	respond(w, http.StatusOK, snap)
}

// ResetNavigation handles POST /api/navigation/reset.
func (s *Server) ResetNavigation(w http.ResponseWriter, r *http.Request) {
	s.trips.ResetNavigation(r.Context(), sessionID(r))
	w.WriteHeader(http.StatusNoContent)
}
