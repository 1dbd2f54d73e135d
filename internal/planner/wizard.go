// Package planner implements the custom day-plan wizard: a small step
// machine where the traveler picks a duration, fills each day with stops, and
// confirms. Nothing outside the wizard's own draft changes until Confirm.
package planner

import (
	"fmt"
	"strings"

	"github.com/CHAITANYA-2002/city-trail/internal/domain"
	"github.com/CHAITANYA-2002/city-trail/internal/itinerary"
	"github.com/CHAITANYA-2002/city-trail/internal/reconcile"
)

// StepKind discriminates the wizard's current step.
type StepKind string

const (
	// StepChooseDuration asks how many days the trip runs.
	StepChooseDuration StepKind = "choose-days"
	// StepPickDay fills one day with stops.
	StepPickDay StepKind = "pick-day"
	// StepReview shows the full draft before confirming.
	StepReview StepKind = "review"
)

// Step is the wizard's position: the kind plus, for StepPickDay, which day
// (1-based) is being edited.
type Step struct {
	Kind StepKind `json:"kind"`
	Day  int      `json:"day,omitempty"`
}

// Wizard is one traveler's in-progress day plan. It is a draft: Confirm is
// the only operation that produces anything for the trip store, and an
// abandoned wizard leaves the trip untouched.
type Wizard struct {
	step       Step
	days       int
	selections [][]domain.Stop // selections[d] holds day d+1, in pick order
}

// New returns a wizard at the duration step.
func New() *Wizard {
	return &Wizard{step: Step{Kind: StepChooseDuration}}
}

// Step returns the wizard's current position.
func (w *Wizard) Step() Step { return w.step }

// Days returns the chosen duration, zero before ChooseDuration.
func (w *Wizard) Days() int { return w.days }

// Selections returns the stops picked for the given 1-based day.
func (w *Wizard) Selections(day int) []domain.Stop {
	if day < 1 || day > len(w.selections) {
		return nil
	}
	return w.selections[day-1]
}

// ChooseDuration fixes the trip length and moves to picking day 1. Choosing
// again restarts the draft: previous selections are dropped.
func (w *Wizard) ChooseDuration(days int) error {
	if days < itinerary.MinDays || days > itinerary.MaxDays {
		return fmt.Errorf("planner.Wizard.ChooseDuration: days must be %d to %d: %w",
			itinerary.MinDays, itinerary.MaxDays, domain.ErrValidation)
	}
	w.days = days
	w.selections = make([][]domain.Stop, days)
	w.step = Step{Kind: StepPickDay, Day: 1}
	return nil
}

// Toggle adds the stop to the day being edited, or removes it if it is
// already picked. Toggling twice restores the previous selection, minus the
// stop's original position when it was re-added.
func (w *Wizard) Toggle(stop domain.Stop) error {
	if w.step.Kind != StepPickDay {
		return fmt.Errorf("planner.Wizard.Toggle: not picking a day: %w", domain.ErrPrecondition)
	}
	d := w.step.Day - 1
	for i, s := range w.selections[d] {
		if s.Title == stop.Title {
			w.selections[d] = append(w.selections[d][:i:i], w.selections[d][i+1:]...)
			return nil
		}
	}
	w.selections[d] = append(w.selections[d], stop)
	return nil
}

// Next advances the wizard: from picking the last day it moves to review,
// otherwise to the next day. It is invalid at the duration step (choose
// first) and at review (confirm or go back).
func (w *Wizard) Next() error {
	switch w.step.Kind {
	case StepPickDay:
		if w.step.Day >= w.days {
			w.step = Step{Kind: StepReview}
		} else {
			w.step = Step{Kind: StepPickDay, Day: w.step.Day + 1}
		}
		return nil
	default:
		return fmt.Errorf("planner.Wizard.Next: no next step from %q: %w", w.step.Kind, domain.ErrPrecondition)
	}
}

// Back steps the wizard backwards, from review to the last day, from day N to
// day N-1, and from day 1 to the duration step. Selections survive going back.
func (w *Wizard) Back() error {
	switch w.step.Kind {
	case StepReview:
		w.step = Step{Kind: StepPickDay, Day: w.days}
		return nil
	case StepPickDay:
		if w.step.Day > 1 {
			w.step = Step{Kind: StepPickDay, Day: w.step.Day - 1}
		} else {
			w.step = Step{Kind: StepChooseDuration}
		}
		return nil
	default:
		return fmt.Errorf("planner.Wizard.Back: no previous step from %q: %w", w.step.Kind, domain.ErrPrecondition)
	}
}

// Filter returns the candidate stops matching a free-text query and an
// optional type. The candidate pool is every distinct stop across the
// built-in templates. Empty query and type pass everything.
func Filter(query, stopType string) []domain.Stop {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []domain.Stop
	for _, stop := range itinerary.AllStops() {
		if stopType != "" && stop.Type != stopType {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(stop.Title), q) &&
			!strings.Contains(strings.ToLower(stop.Description), q) {
			continue
		}
		out = append(out, stop)
	}
	return out
}

// Result is the confirmed output of the wizard: the day plan and its flat
// location projection for the map.
type Result struct {
	DayPlan []domain.PlannedDay
	Curated []domain.Location
}

// Confirm materializes the draft. Each day becomes a PlannedDay titled
// "Day N"; each selected stop becomes a planner location, positioned through
// the coordinate index with a central-city fallback for unknown titles, and
// enriched with image metadata from any catalog location of the same name.
// Days with no selections still appear, empty, so the map's day tabs stay
// aligned with the chosen duration.
func (w *Wizard) Confirm(cityID string, coords itinerary.CoordIndex, catalog []domain.Location) (Result, error) {
	if w.step.Kind != StepReview {
		return Result{}, fmt.Errorf("planner.Wizard.Confirm: not at review: %w", domain.ErrPrecondition)
	}

	byName := make(map[string]domain.Location, len(catalog))
	for _, loc := range catalog {
		byName[loc.Name] = loc
	}

	res := Result{DayPlan: make([]domain.PlannedDay, w.days)}
	for d := 0; d < w.days; d++ {
		day := d + 1
		res.DayPlan[d] = domain.PlannedDay{
			Day:   day,
			Title: fmt.Sprintf("Day %d", day),
			Stops: append([]domain.Stop(nil), w.selections[d]...),
		}
		for idx, stop := range w.selections[d] {
			res.Curated = append(res.Curated, liftSelection(stop, day, idx, cityID, coords, byName))
		}
	}
	return res, nil
}

func liftSelection(stop domain.Stop, day, idx int, cityID string, coords itinerary.CoordIndex, byName map[string]domain.Location) domain.Location {
	coord, ok := coords.Lookup(stop.Title)
	if !ok {
		coord = itinerary.DefaultCoord
	}

	category := domain.Category(stop.Type)
	if !category.Valid() {
		category = reconcile.InferCategory(stop.Title)
	}

	loc := domain.Location{
		ID:               fmt.Sprintf("%s%d-%d", domain.PlannerIDPrefix, day, idx),
		Name:             stop.Title,
		Description:      stop.Description,
		ShortDescription: stop.Description,
		Category:         category,
		CityID:           cityID,
		Latitude:         coord.Lat,
		Longitude:        coord.Lng,
		Address:          stop.Area,
		DurationMinutes:  stop.DurationMinutes,
		PlannerDay:       day,
	}

	if src, ok := byName[stop.Title]; ok {
		loc.ImageURL = src.ImageURL
		loc.Gallery = src.Gallery
		loc.IsFeatured = src.IsFeatured
	}
	return loc
}
