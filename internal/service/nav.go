package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/CHAITANYA-2002/city-trail/internal/domain"
	"github.com/CHAITANYA-2002/city-trail/internal/itinerary"
	"github.com/CHAITANYA-2002/city-trail/internal/nav"
	"github.com/CHAITANYA-2002/city-trail/internal/reconcile"
)

// Navigation returns the session's navigation state.
func (s *TripService) Navigation(ctx context.Context, sessionID string) nav.Snapshot {
	return s.sessionFor(ctx, sessionID).nav.Snapshot()
}

// SelectDestination routes the traveler to one location. The location may be
// a catalog row or anything on the current display set (planner or discovery
// locations). Without a position fix the route starts at the map center.
func (s *TripService) SelectDestination(ctx context.Context, sessionID, locationID string) (nav.Snapshot, error) {
	sess := s.sessionFor(ctx, sessionID)

	dest, err := s.catalog.GetLocation(ctx, locationID)
	if errors.Is(err, domain.ErrNotFound) {
		dest, err = s.displaySetLocation(ctx, sess, locationID)
	}
	if err != nil {
		return nav.Snapshot{}, fmt.Errorf("service.TripService.SelectDestination: %w", err)
	}

	state := sess.store.Snapshot()
	origin := itinerary.DefaultCoord
	switch {
	case state.Position != nil:
		origin = *state.Position
	case state.City != nil:
		origin = state.City.Coord()
	}
	return sess.nav.SelectDestination(ctx, origin, dest), nil
}

// SetNavigationDay installs one day's stops as the navigation target and
// returns the machine to idle. In custom mode the stops come from the wizard
// plan; otherwise from the schedule template for the trip duration. Switching
// days drops the discovery layer along with the old route.
func (s *TripService) SetNavigationDay(ctx context.Context, sessionID string, day int) (nav.Snapshot, error) {
	sess := s.sessionFor(ctx, sessionID)
	stops, err := s.dayStops(sess, day)
	if err != nil {
		return nav.Snapshot{}, fmt.Errorf("service.TripService.SetNavigationDay: %w", err)
	}
	sess.nav.SetStops(stops)
	sess.setDiscovery(nil)
	return sess.nav.Snapshot(), nil
}

// StartNavigation begins navigating the installed stop list. It requires a
// known traveler position.
func (s *TripService) StartNavigation(ctx context.Context, sessionID string) (nav.Snapshot, error) {
	sess := s.sessionFor(ctx, sessionID)
	state := sess.store.Snapshot()
	snap, err := sess.nav.Start(ctx, state.Position)
	if err != nil {
		return snap, fmt.Errorf("service.TripService.StartNavigation: %w", err)
	}
	return snap, nil
}

// AdvanceNavigation marks the current stop reached and moves on, or completes
// the trip at the final stop.
func (s *TripService) AdvanceNavigation(ctx context.Context, sessionID string) (nav.Snapshot, error) {
	sess := s.sessionFor(ctx, sessionID)
	state := sess.store.Snapshot()

	// Advancing is driven by the traveler's live position when known; the
	// current path's last known point is not a substitute, so fall back to
	// the map center the same way SelectDestination does.
	origin := itinerary.DefaultCoord
	switch {
	case state.Position != nil:
		origin = *state.Position
	case state.City != nil:
		origin = state.City.Coord()
	}

	snap, err := sess.nav.Advance(ctx, origin)
	if err != nil {
		return snap, fmt.Errorf("service.TripService.AdvanceNavigation: %w", err)
	}
	return snap, nil
}

// ResetNavigation returns the session's machine to idle.
func (s *TripService) ResetNavigation(ctx context.Context, sessionID string) {
	s.sessionFor(ctx, sessionID).nav.Reset()
}

// dayStops resolves the routable stop list for one 1-based day.
func (s *TripService) dayStops(sess *session, day int) ([]domain.Location, error) {
	state := sess.store.Snapshot()

	if state.Mode == domain.ModeCustom {
		if day < 1 || day > len(state.DayPlan) {
			return nil, fmt.Errorf("day %d out of range: %w", day, domain.ErrValidation)
		}
		var stops []domain.Location
		for _, loc := range state.Curated {
			if loc.PlannerDay == day {
				stops = append(stops, loc)
			}
		}
		return stops, nil
	}

	days := state.Days
	if !itinerary.HasTemplate(days) {
		days = itinerary.MaxDays
	}
	if day < 1 || day > days {
		return nil, fmt.Errorf("day %d out of range: %w", day, domain.ErrValidation)
	}

	var cityID string
	if state.City != nil {
		cityID = state.City.ID
	}
	var stops []domain.Location
	for _, planned := range itinerary.Template(days) {
		if planned.Day != day {
			continue
		}
		for idx, stop := range planned.Stops {
			coord, ok := s.coords.Lookup(stop.Title)
			if !ok {
				// Unroutable stops stay in the list view only.
				continue
			}
			stops = append(stops, reconcile.LiftStop(stop, planned.Day, idx, cityID, coord))
		}
	}
	return stops, nil
}

// displaySetLocation finds a non-catalog location (planner or discovery) on
// the current display set by ID.
func (s *TripService) displaySetLocation(ctx context.Context, sess *session, id string) (domain.Location, error) {
	locs, _, err := s.displaySet(ctx, sess)
	if err != nil {
		return domain.Location{}, err
	}
	for _, loc := range locs {
		if loc.ID == id {
			return loc, nil
		}
	}
	return domain.Location{}, domain.ErrNotFound
}
