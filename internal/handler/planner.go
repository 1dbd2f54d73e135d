package handler

import (
	"encoding/json"
	"net/http"

	"github.com/CHAITANYA-2002/city-trail/internal/domain"
)

// GetPlanner handles GET /api/planner.
func (s *Server) GetPlanner(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, s.trips.PlannerState(r.Context(), sessionID(r)))
}

// choosePlannerDaysRequest starts a wizard draft with a trip duration.
type choosePlannerDaysRequest struct {
	Days int `json:"days"`
}

// ChoosePlannerDays handles POST /api/planner.
func (s *Server) ChoosePlannerDays(w http.ResponseWriter, r *http.Request) {
	var req choosePlannerDaysRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	view, err := s.trips.PlannerChooseDays(r.Context(), sessionID(r), req.Days)
	if err != nil {
		writeError(w, err)
		return
	}
	respond(w, http.StatusOK, view)
}

// PlannerStops handles GET /api/planner/stops?q=&type=.
func (s *Server) PlannerStops(w http.ResponseWriter, r *http.Request) {
	stops := s.trips.PlannerOptions(r.Context(),
		r.URL.Query().Get("q"), r.URL.Query().Get("type"))
	respond(w, http.StatusOK, stops)
}

// TogglePlannerStop handles POST /api/planner/stops/toggle.
func (s *Server) TogglePlannerStop(w http.ResponseWriter, r *http.Request) {
	var stop domain.Stop
	if err := json.NewDecoder(r.Body).Decode(&stop); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	view, err := s.trips.PlannerToggle(r.Context(), sessionID(r), stop)
	if err != nil {
		writeError(w, err)
		return
	}
	respond(w, http.StatusOK, view)
}

// PlannerNext handles POST /api/planner/next.
func (s *Server) PlannerNext(w http.ResponseWriter, r *http.Request) {
	view, err := s.trips.PlannerNext(r.Context(), sessionID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	respond(w, http.StatusOK, view)
}

// PlannerBack handles POST /api/planner/back.
func (s *Server) PlannerBack(w http.ResponseWriter, r *http.Request) {
	view, err := s.trips.PlannerBack(r.Context(), sessionID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	respond(w, http.StatusOK, view)
}

// ConfirmPlanner handles POST /api/planner/confirm.
func (s *Server) ConfirmPlanner(w http.ResponseWriter, r *http.Request) {
	state, err := s.trips.PlannerConfirm(r.Context(), sessionID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	respond(w, http.StatusOK, state)
}
