package service

import (
	"context"
	"fmt"

	"github.com/CHAITANYA-2002/city-trail/internal/domain"
	"github.com/CHAITANYA-2002/city-trail/internal/planner"
)

// State returns the session's trip state.
func (s *TripService) State(ctx context.Context, sessionID string) domain.TripState {
	return s.sessionFor(ctx, sessionID).store.Snapshot()
}

// SelectCity sets the trip's city. Changing city invalidates the active
// route and the discovery layer.
func (s *TripService) SelectCity(ctx context.Context, sessionID, cityID string) (domain.City, error) {
	city, err := s.catalog.GetCity(ctx, cityID)
	if err != nil {
		return domain.City{}, fmt.Errorf("service.TripService.SelectCity: %w", err)
	}
	sess := s.sessionFor(ctx, sessionID)
	sess.store.SetCity(ctx, city)
	s.contextChanged(sess)
	return city, nil
}

// SetDays sets the trip duration.
func (s *TripService) SetDays(ctx context.Context, sessionID string, days int) error {
	if days < 1 {
		return fmt.Errorf("service.TripService.SetDays: days must be positive: %w", domain.ErrValidation)
	}
	sess := s.sessionFor(ctx, sessionID)
	sess.store.SetDays(ctx, days)
	s.contextChanged(sess)
	return nil
}

// SetInterests records the traveler's interest tags. Interests do not change
// what is on the map, so the route and discovery layer survive.
func (s *TripService) SetInterests(ctx context.Context, sessionID string, interests []string) {
	s.sessionFor(ctx, sessionID).store.SetInterests(ctx, interests)
}

// SetMode switches the explore mode, invalidating route and discovery.
func (s *TripService) SetMode(ctx context.Context, sessionID string, mode domain.ExploreMode) error {
	if !mode.Valid() {
		return fmt.Errorf("service.TripService.SetMode: unknown mode %q: %w", mode, domain.ErrValidation)
	}
	sess := s.sessionFor(ctx, sessionID)
	sess.store.SetMode(ctx, mode)
	s.contextChanged(sess)
	return nil
}

// SetActiveCategory sets or clears the map's category filter. An empty name
// clears it; an unknown name is a validation error. Changing the filter drops
// the discovery layer: its results were searched under the old view.
func (s *TripService) SetActiveCategory(ctx context.Context, sessionID, category string) error {
	sess := s.sessionFor(ctx, sessionID)
	if category == "" {
		sess.store.SetActiveCategory(nil)
		sess.setDiscovery(nil)
		return nil
	}
	cat := domain.Category(category)
	if !cat.Valid() {
		return fmt.Errorf("service.TripService.SetActiveCategory: unknown category %q: %w", category, domain.ErrValidation)
	}
	sess.store.SetActiveCategory(&cat)
	sess.setDiscovery(nil)
	return nil
}

// UpdatePosition records a position fix. The returned flag reports whether
// the fix was accepted; rate-limited or inaccurate fixes are dropped silently
// because geolocation noise is expected, not exceptional.
func (s *TripService) UpdatePosition(ctx context.Context, sessionID string, p domain.LatLng, accuracyM float64) bool {
	return s.sessionFor(ctx, sessionID).store.SetPosition(p, accuracyM)
}

// AddLocation adds a catalog location to the curated list and optionally to
// one planned day.
func (s *TripService) AddLocation(ctx context.Context, sessionID, locationID string, day int) error {
	loc, err := s.catalog.GetLocation(ctx, locationID)
	if err != nil {
		return fmt.Errorf("service.TripService.AddLocation: %w", err)
	}
	s.sessionFor(ctx, sessionID).store.AddLocation(ctx, loc, day)
	return nil
}

// RemoveLocation removes a location by name from the curated list and every
// planned day.
func (s *TripService) RemoveLocation(ctx context.Context, sessionID, name string) error {
	if name == "" {
		return fmt.Errorf("service.TripService.RemoveLocation: name is required: %w", domain.ErrValidation)
	}
	s.sessionFor(ctx, sessionID).store.RemoveLocation(ctx, name)
	return nil
}

// ReorderStops moves one stop within a planned day.
func (s *TripService) ReorderStops(ctx context.Context, sessionID string, day, from, to int) error {
	if err := s.sessionFor(ctx, sessionID).store.ReorderStops(ctx, day, from, to); err != nil {
		return fmt.Errorf("service.TripService.ReorderStops: %w", err)
	}
	return nil
}

// ClearTrip resets the session: trip state, route, discovery, and the wizard
// draft all go.
func (s *TripService) ClearTrip(ctx context.Context, sessionID string) {
	sess := s.sessionFor(ctx, sessionID)
	sess.store.ClearTrip(ctx)
	s.contextChanged(sess)
	sess.mu.Lock()
	sess.wizard = planner.New()
	sess.mu.Unlock()
}
