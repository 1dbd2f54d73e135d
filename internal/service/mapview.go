package service

import (
	"context"
	"fmt"

	"github.com/CHAITANYA-2002/city-trail/internal/domain"
	"github.com/CHAITANYA-2002/city-trail/internal/itinerary"
	"github.com/CHAITANYA-2002/city-trail/internal/reconcile"
)

// MapState is everything the map view renders: the center, the reconciled
// location set after category filtering, and the trip context it was built
// from.
type MapState struct {
	Center    domain.LatLng      `json:"center"`
	Mode      domain.ExploreMode `json:"mode"`
	Days      int                `json:"days"`
	Locations []domain.Location  `json:"locations"`
}

// MapState assembles the map for a session. The display set is derived fresh
// on every call from trip state, catalog, and the discovery layer; it is
// never stored, so it cannot drift from its sources.
func (s *TripService) MapState(ctx context.Context, sessionID string) (MapState, error) {
	sess := s.sessionFor(ctx, sessionID)
	locs, state, err := s.displaySet(ctx, sess)
	if err != nil {
		return MapState{}, fmt.Errorf("service.TripService.MapState: %w", err)
	}

	center := s.mapCenter(state)
	return MapState{
		Center:    center,
		Mode:      state.Mode,
		Days:      state.Days,
		Locations: reconcile.FilterCategory(locs, state.ActiveCategory),
	}, nil
}

// Viewport returns the session's display set restricted to a bounding box.
func (s *TripService) Viewport(ctx context.Context, sessionID string, box domain.BoundingBox) ([]domain.Location, error) {
	sess := s.sessionFor(ctx, sessionID)
	locs, state, err := s.displaySet(ctx, sess)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.Viewport: %w", err)
	}
	locs = reconcile.FilterCategory(locs, state.ActiveCategory)
	return reconcile.NewIndex(locs).InBox(box), nil
}

// Nearby returns the display-set locations within radiusM meters of the
// traveler, closest first. It requires a known position.
func (s *TripService) Nearby(ctx context.Context, sessionID string, radiusM float64) ([]domain.Location, error) {
	sess := s.sessionFor(ctx, sessionID)
	locs, state, err := s.displaySet(ctx, sess)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.Nearby: %w", err)
	}
	if state.Position == nil {
		return nil, fmt.Errorf("service.TripService.Nearby: position unknown: %w", domain.ErrPrecondition)
	}
	locs = reconcile.FilterCategory(locs, state.ActiveCategory)
	return reconcile.NewIndex(locs).Near(*state.Position, radiusM), nil
}

// mapCenter resolves the map center: the selected city's coordinates, then
// the first routable stop of the schedule template for the trip duration,
// then the default city center.
func (s *TripService) mapCenter(state domain.TripState) domain.LatLng {
	if state.City != nil {
		return state.City.Coord()
	}
	if coord, ok := s.firstTemplateCoord(state.Days); ok {
		return coord
	}
	return itinerary.DefaultCoord
}

// firstTemplateCoord finds the first template stop with a known coordinate.
func (s *TripService) firstTemplateCoord(days int) (domain.LatLng, bool) {
	if !itinerary.HasTemplate(days) {
		return domain.LatLng{}, false
	}
	for _, planned := range itinerary.Template(days) {
		for _, stop := range planned.Stops {
			if coord, ok := s.coords.Lookup(stop.Title); ok {
				return coord, true
			}
		}
	}
	return domain.LatLng{}, false
}

// displaySet runs one reconciliation pass for the session.
func (s *TripService) displaySet(ctx context.Context, sess *session) ([]domain.Location, domain.TripState, error) {
	state := sess.store.Snapshot()

	var catalog []domain.Location
	var cityID string
	if state.City != nil {
		cityID = state.City.ID
		var err error
		catalog, err = s.catalog.ListLocations(ctx, cityID, nil)
		if err != nil {
			return nil, state, err
		}
	}

	locs := reconcile.Build(reconcile.Input{
		CityID:    cityID,
		Catalog:   catalog,
		Mode:      state.Mode,
		Days:      state.Days,
		Curated:   state.Curated,
		Discovery: sess.discoveryLayer(),
		Coords:    s.coords,
	})
	return locs, state, nil
}
