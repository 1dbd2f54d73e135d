package service

import (
	"context"
	"fmt"

	"github.com/CHAITANYA-2002/city-trail/internal/domain"
	"github.com/CHAITANYA-2002/city-trail/internal/spatial"
)

// cityRadiusM bounds a city-wide discovery search.
const cityRadiusM = 25000

// defaultNearbyRadiusM is used when a nearby search gives no radius.
const defaultNearbyRadiusM = 3000

// Discover searches the external place provider inside the given box, or
// across the whole selected city when box is nil, and installs the results as
// the session's discovery layer, replacing any previous layer. Only one
// search per session runs at a time; a second trigger while one is in flight
// fails with ErrSearchPending.
func (s *TripService) Discover(ctx context.Context, sessionID, query string, box *domain.BoundingBox) ([]domain.Location, error) {
	sess := s.sessionFor(ctx, sessionID)
	state := sess.store.Snapshot()
	if state.City == nil {
		return nil, fmt.Errorf("service.TripService.Discover: no city selected: %w", domain.ErrPrecondition)
	}

	area := spatial.BoxAround(state.City.Coord(), cityRadiusM)
	if box != nil {
		area = *box
	}
	locs, err := s.places.SearchArea(ctx, query, state.City.ID, area)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.Discover: %w", err)
	}
	sess.setDiscovery(locs)
	return locs, nil
}

// DiscoverNearby searches around origin, or around the traveler's stored
// position when origin is nil. It requires a selected city and, absent an
// explicit origin, a position fix. A zero radius uses the default.
func (s *TripService) DiscoverNearby(ctx context.Context, sessionID, query string, origin *domain.LatLng, radiusM float64) ([]domain.Location, error) {
	sess := s.sessionFor(ctx, sessionID)
	state := sess.store.Snapshot()
	if state.City == nil {
		return nil, fmt.Errorf("service.TripService.DiscoverNearby: no city selected: %w", domain.ErrPrecondition)
	}
	if origin == nil {
		origin = state.Position
	}
	if origin == nil {
		return nil, fmt.Errorf("service.TripService.DiscoverNearby: position unknown: %w", domain.ErrPrecondition)
	}
	if radiusM <= 0 {
		radiusM = defaultNearbyRadiusM
	}

	locs, err := s.places.SearchNearby(ctx, query, state.City.ID, *origin, radiusM)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.DiscoverNearby: %w", err)
	}
	sess.setDiscovery(locs)
	return locs, nil
}

// ClearDiscovery drops the discovery layer without touching anything else.
func (s *TripService) ClearDiscovery(ctx context.Context, sessionID string) {
	s.sessionFor(ctx, sessionID).setDiscovery(nil)
}
