package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// ListCities handles GET /api/cities.
func (s *Server) ListCities(w http.ResponseWriter, r *http.Request) {
	cities, err := s.catalog.ListCities(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	respond(w, http.StatusOK, cities)
}

// GetCity handles GET /api/cities/{id}.
func (s *Server) GetCity(w http.ResponseWriter, r *http.Request) {
	city, err := s.catalog.GetCity(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	respond(w, http.StatusOK, city)
}

// ListCategories handles GET /api/categories.
func (s *Server) ListCategories(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, s.catalog.ListCategories(r.Context()))
}

// ListLocations handles GET /api/locations?cityId=&category=.
func (s *Server) ListLocations(w http.ResponseWriter, r *http.Request) {
	locs, err := s.catalog.ListLocations(r.Context(),
		r.URL.Query().Get("cityId"), r.URL.Query().Get("category"))
	if err != nil {
		writeError(w, err)
		return
	}
	respond(w, http.StatusOK, locs)
}

// GetLocation handles GET /api/locations/{id}.
func (s *Server) GetLocation(w http.ResponseWriter, r *http.Request) {
	loc, err := s.catalog.GetLocation(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	respond(w, http.StatusOK, loc)
}

// SearchLocations handles GET /api/search?cityId=&q=.
func (s *Server) SearchLocations(w http.ResponseWriter, r *http.Request) {
	locs, err := s.catalog.Search(r.Context(),
		r.URL.Query().Get("cityId"), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, err)
		return
	}
	respond(w, http.StatusOK, locs)
}

// GetItinerary handles GET /api/itinerary?days=.
func (s *Server) GetItinerary(w http.ResponseWriter, r *http.Request) {
	days, err := strconv.Atoi(r.URL.Query().Get("days"))
	if err != nil {
		badRequest(w, "days must be an integer")
		return
	}
	plan, err := s.catalog.Itinerary(r.Context(), days)
	if err != nil {
		writeError(w, err)
		return
	}
	respond(w, http.StatusOK, plan)
}
