// Package service contains the business logic for the city-trail API.
// Services validate inputs, enforce business rules, and orchestrate the trip
// store, catalog, route engine, and place search. No SQL lives here.
package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/CHAITANYA-2002/city-trail/internal/domain"
	"github.com/CHAITANYA-2002/city-trail/internal/itinerary"
	"github.com/CHAITANYA-2002/city-trail/internal/nav"
	"github.com/CHAITANYA-2002/city-trail/internal/planner"
	"github.com/CHAITANYA-2002/city-trail/internal/repo"
	"github.com/CHAITANYA-2002/city-trail/internal/trip"
)

// PlaceSearcher finds external places for the discovery layer.
type PlaceSearcher interface {
	SearchArea(ctx context.Context, query, cityID string, box domain.BoundingBox) ([]domain.Location, error)
	SearchNearby(ctx context.Context, query, cityID string, origin domain.LatLng, radiusM float64) ([]domain.Location, error)
}

// session bundles the per-traveler moving parts: the persistent trip store,
// the navigation machine, the wizard draft, and the transient discovery layer.
type session struct {
	store  *trip.Store
	nav    *nav.Machine
	wizard *planner.Wizard

	mu        sync.Mutex
	discovery []domain.Location
}

// setDiscovery replaces the discovery layer.
func (s *session) setDiscovery(locs []domain.Location) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.discovery = locs
}

// discoveryLayer returns the current discovery layer.
func (s *session) discoveryLayer() []domain.Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.discovery
}

// TripService implements every session-scoped operation: trip state, map
// assembly, navigation, discovery, and the day-plan wizard.
type TripService struct {
	catalog repo.CatalogRepo
	router  nav.Router
	places  PlaceSearcher
	coords  itinerary.CoordIndex
	manager *trip.Manager
	logger  *slog.Logger

	mu       sync.Mutex
	sessions map[string]*session
}

// NewTripService constructs a TripService wired to its ports.
func NewTripService(catalog repo.CatalogRepo, router nav.Router, places PlaceSearcher, manager *trip.Manager, logger *slog.Logger) *TripService {
	return &TripService{
		catalog:  catalog,
		router:   router,
		places:   places,
		coords:   itinerary.Jaipur(),
		manager:  manager,
		logger:   logger,
		sessions: make(map[string]*session),
	}
}

// sessionFor returns the live session for the ID, creating it on first use.
func (s *TripService) sessionFor(ctx context.Context, sessionID string) *session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[sessionID]; ok {
		return sess
	}
	sess := &session{
		store:  s.manager.Get(ctx, sessionID),
		nav:    nav.NewMachine(s.router, s.logger),
		wizard: planner.New(),
	}
	s.sessions[sessionID] = sess
	return sess
}

// contextChanged handles everything a trip-context change invalidates: the
// active route and the discovery layer.
func (s *TripService) contextChanged(sess *session) {
	sess.nav.Reset()
	sess.setDiscovery(nil)
}
