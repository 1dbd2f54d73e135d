package service

import (
	"context"
	"fmt"

	"github.com/CHAITANYA-2002/city-trail/internal/domain"
	"github.com/CHAITANYA-2002/city-trail/internal/planner"
)

// PlannerView is the wizard state rendered to the traveler: the current step,
// the chosen duration, and the selections for every day so far.
type PlannerView struct {
	Step       planner.Step    `json:"step"`
	Days       int             `json:"days"`
	Selections [][]domain.Stop `json:"selections"`
}

// PlannerState returns the session's wizard state.
func (s *TripService) PlannerState(ctx context.Context, sessionID string) PlannerView {
	sess := s.sessionFor(ctx, sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return plannerView(sess.wizard)
}

// PlannerChooseDays fixes the wizard's trip duration and starts day picking.
func (s *TripService) PlannerChooseDays(ctx context.Context, sessionID string, days int) (PlannerView, error) {
	sess := s.sessionFor(ctx, sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if err := sess.wizard.ChooseDuration(days); err != nil {
		return PlannerView{}, fmt.Errorf("service.TripService.PlannerChooseDays: %w", err)
	}
	return plannerView(sess.wizard), nil
}

// PlannerToggle adds or removes a stop on the day being edited.
func (s *TripService) PlannerToggle(ctx context.Context, sessionID string, stop domain.Stop) (PlannerView, error) {
	if stop.Title == "" {
		return PlannerView{}, fmt.Errorf("service.TripService.PlannerToggle: stop title is required: %w", domain.ErrValidation)
	}
	sess := s.sessionFor(ctx, sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if err := sess.wizard.Toggle(stop); err != nil {
		return PlannerView{}, fmt.Errorf("service.TripService.PlannerToggle: %w", err)
	}
	return plannerView(sess.wizard), nil
}

// PlannerNext advances the wizard one step.
func (s *TripService) PlannerNext(ctx context.Context, sessionID string) (PlannerView, error) {
	sess := s.sessionFor(ctx, sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if err := sess.wizard.Next(); err != nil {
		return PlannerView{}, fmt.Errorf("service.TripService.PlannerNext: %w", err)
	}
	return plannerView(sess.wizard), nil
}

// PlannerBack steps the wizard backwards, keeping selections.
func (s *TripService) PlannerBack(ctx context.Context, sessionID string) (PlannerView, error) {
	sess := s.sessionFor(ctx, sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if err := sess.wizard.Back(); err != nil {
		return PlannerView{}, fmt.Errorf("service.TripService.PlannerBack: %w", err)
	}
	return plannerView(sess.wizard), nil
}

// PlannerOptions returns candidate stops matching a free-text query and an
// optional stop type.
func (s *TripService) PlannerOptions(_ context.Context, query, stopType string) []domain.Stop {
	return planner.Filter(query, stopType)
}

// PlannerConfirm materializes the wizard draft into the trip: the day plan
// and curated list are written to the store, the trip switches to custom
// mode, and the wizard resets for the next draft. This is the only operation
// that moves wizard state into the trip; abandoning the wizard at any earlier
// step leaves the trip untouched.
func (s *TripService) PlannerConfirm(ctx context.Context, sessionID string) (domain.TripState, error) {
	sess := s.sessionFor(ctx, sessionID)
	state := sess.store.Snapshot()

	var cityID string
	var catalog []domain.Location
	if state.City != nil {
		cityID = state.City.ID
		var err error
		catalog, err = s.catalog.ListLocations(ctx, cityID, nil)
		if err != nil {
			return domain.TripState{}, fmt.Errorf("service.TripService.PlannerConfirm: %w", err)
		}
	}

	sess.mu.Lock()
	res, err := sess.wizard.Confirm(cityID, s.coords, catalog)
	if err != nil {
		sess.mu.Unlock()
		return domain.TripState{}, fmt.Errorf("service.TripService.PlannerConfirm: %w", err)
	}
	days := sess.wizard.Days()
	sess.wizard = planner.New()
	sess.mu.Unlock()

	sess.store.SetDays(ctx, days)
	sess.store.SetDayPlan(ctx, res.DayPlan)
	sess.store.SetCurated(ctx, res.Curated)
	sess.store.SetMode(ctx, domain.ModeCustom)
	s.contextChanged(sess)

	return sess.store.Snapshot(), nil
}

func plannerView(w *planner.Wizard) PlannerView {
	view := PlannerView{Step: w.Step(), Days: w.Days()}
	for d := 1; d <= w.Days(); d++ {
		view.Selections = append(view.Selections, w.Selections(d))
	}
	return view
}
