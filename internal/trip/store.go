package trip

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/CHAITANYA-2002/city-trail/internal/domain"
)

// minPositionInterval is the shortest gap between two accepted position
// updates. Updates arriving faster than this are dropped, keeping noisy
// geolocation hardware from thrashing downstream route recomputation.
const minPositionInterval = 5 * time.Second

// maxPositionAccuracy rejects fixes whose reported accuracy radius is worse
// than this, in meters. Zero accuracy means "not reported" and is accepted.
const maxPositionAccuracy = 500.0

// Store owns the trip state for one session. All reads and writes go through
// its methods; callers never hold a reference into the state.
//
// Every persisted-field setter writes through to the Persister best-effort:
// a storage failure is logged and the in-memory update still happens, so a
// broken disk degrades to session-only state rather than a hard error.
type Store struct {
	mu        sync.RWMutex
	state     domain.TripState
	sessionID string
	persister Persister
	logger    *slog.Logger

	lastPositionAt time.Time
	now            func() time.Time
}

// NewStore returns an empty store for the session. The persister and logger
// are required.
func NewStore(sessionID string, p Persister, logger *slog.Logger) *Store {
	return &Store{
		sessionID: sessionID,
		persister: p,
		logger:    logger,
		now:       time.Now,
	}
}

// Restore loads whatever the persister has for this session into the store.
// Keys that fail to decode are skipped with a warning; a half-restored state
// beats losing the session.
func (s *Store) Restore(ctx context.Context) error {
	saved, err := s.persister.Load(ctx, s.sessionID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for key, raw := range saved {
		switch key {
		case KeyCity:
			var c domain.City
			if s.decode(key, raw, &c) {
				s.state.City = &c
			}
		case KeyDays:
			n, err := strconv.Atoi(raw)
			if err != nil {
				s.logger.Warn("skipping unreadable session key", "key", key, "error", err)
				continue
			}
			s.state.Days = n
		case KeyMode:
			if m := domain.ExploreMode(raw); m.Valid() {
				s.state.Mode = m
			}
		case KeyCurated:
			var locs []domain.Location
			if s.decode(key, raw, &locs) {
				s.state.Curated = locs
			}
		case KeyDayPlan:
			var plan []domain.PlannedDay
			if s.decode(key, raw, &plan) {
				s.state.DayPlan = plan
			}
		case KeyInterests:
			var in []string
			if s.decode(key, raw, &in) {
				s.state.Interests = in
			}
		}
	}
	return nil
}

func (s *Store) decode(key, raw string, v any) bool {
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		s.logger.Warn("skipping unreadable session key", "key", key, "error", err)
		return false
	}
	return true
}

// Snapshot returns a copy of the current state. Slices are shared read-only
// with the store, which replaces them on mutation rather than editing their
// elements, so a snapshot never changes after it is taken.
func (s *Store) Snapshot() domain.TripState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SetCity selects the trip's city.
func (s *Store) SetCity(ctx context.Context, c domain.City) {
	s.mu.Lock()
	s.state.City = &c
	s.mu.Unlock()
	s.persistJSON(ctx, KeyCity, c)
}

// SetDays records the trip duration in days.
func (s *Store) SetDays(ctx context.Context, days int) {
	s.mu.Lock()
	s.state.Days = days
	s.mu.Unlock()
	s.persistRaw(ctx, KeyDays, strconv.Itoa(days))
}

// SetInterests records the traveler's interest tags.
func (s *Store) SetInterests(ctx context.Context, interests []string) {
	s.mu.Lock()
	s.state.Interests = interests
	s.mu.Unlock()
	s.persistJSON(ctx, KeyInterests, interests)
}

// SetMode switches the explore mode. Unknown modes are ignored.
func (s *Store) SetMode(ctx context.Context, mode domain.ExploreMode) {
	if !mode.Valid() {
		return
	}
	s.mu.Lock()
	s.state.Mode = mode
	s.mu.Unlock()
	s.persistRaw(ctx, KeyMode, string(mode))
}

// SetCurated replaces the flat curated location list.
func (s *Store) SetCurated(ctx context.Context, locs []domain.Location) {
	s.mu.Lock()
	s.state.Curated = locs
	s.mu.Unlock()
	s.persistJSON(ctx, KeyCurated, locs)
}

// SetDayPlan replaces the per-day plan.
func (s *Store) SetDayPlan(ctx context.Context, plan []domain.PlannedDay) {
	s.mu.Lock()
	s.state.DayPlan = plan
	s.mu.Unlock()
	s.persistJSON(ctx, KeyDayPlan, plan)
}

// SetActiveCategory sets the map's category filter. Nil clears it. The filter
// is ephemeral and never persisted.
func (s *Store) SetActiveCategory(cat *domain.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ActiveCategory = cat
}

// SetPosition records a traveler position fix. It returns false when the fix
// is dropped: either it arrived within minPositionInterval of the last
// accepted fix, or its accuracy radius (meters, 0 = unreported) exceeds
// maxPositionAccuracy. Position is ephemeral and never persisted.
func (s *Store) SetPosition(p domain.LatLng, accuracyM float64) bool {
	if accuracyM > maxPositionAccuracy {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	if !s.lastPositionAt.IsZero() && now.Sub(s.lastPositionAt) < minPositionInterval {
		return false
	}
	s.lastPositionAt = now
	s.state.Position = &p
	return true
}

// AddLocation appends a location to the curated list and, when day addresses
// an existing planned day (1-based), appends a matching stop to that day.
// An out-of-range day updates the curated list only.
func (s *Store) AddLocation(ctx context.Context, loc domain.Location, day int) {
	s.mu.Lock()
	s.state.Curated = append(s.state.Curated, loc)
	planChanged := false
	if day >= 1 && day <= len(s.state.DayPlan) {
		plan := clonePlan(s.state.DayPlan)
		d := &plan[day-1]
		stops := make([]domain.Stop, 0, len(d.Stops)+1)
		stops = append(stops, d.Stops...)
		stops = append(stops, domain.Stop{
			Title:       loc.Name,
			Description: loc.ShortDescription,
			Type:        string(loc.Category),
		})
		d.Stops = stops
		s.state.DayPlan = plan
		planChanged = true
	}
	curated := s.state.Curated
	plan := s.state.DayPlan
	s.mu.Unlock()

	s.persistJSON(ctx, KeyCurated, curated)
	if planChanged {
		s.persistJSON(ctx, KeyDayPlan, plan)
	}
}

// RemoveLocation removes every curated location and every day-plan stop whose
// name matches. Removing a name that appears nowhere is a no-op.
func (s *Store) RemoveLocation(ctx context.Context, name string) {
	s.mu.Lock()
	kept := make([]domain.Location, 0, len(s.state.Curated))
	for _, loc := range s.state.Curated {
		if loc.Name != name {
			kept = append(kept, loc)
		}
	}
	s.state.Curated = kept

	plan := clonePlan(s.state.DayPlan)
	for i := range plan {
		day := &plan[i]
		stops := make([]domain.Stop, 0, len(day.Stops))
		for _, st := range day.Stops {
			if st.Title != name {
				stops = append(stops, st)
			}
		}
		day.Stops = stops
	}
	s.state.DayPlan = plan
	curated := s.state.Curated
	s.mu.Unlock()

	s.persistJSON(ctx, KeyCurated, curated)
	s.persistJSON(ctx, KeyDayPlan, plan)
}

// ReorderStops moves the stop at position from to position to within one day
// (dayIndex is 1-based). to may equal the stop count, meaning "move to end".
// Other days are untouched. Out-of-range indices return ErrValidation and
// leave the plan unchanged.
func (s *Store) ReorderStops(ctx context.Context, dayIndex, from, to int) error {
	s.mu.Lock()
	if dayIndex < 1 || dayIndex > len(s.state.DayPlan) {
		s.mu.Unlock()
		return domain.ErrValidation
	}
	plan := clonePlan(s.state.DayPlan)
	day := &plan[dayIndex-1]
	n := len(day.Stops)
	if from < 0 || from >= n || to < 0 || to > n {
		s.mu.Unlock()
		return domain.ErrValidation
	}

	moved := day.Stops[from]
	rest := append(day.Stops[:from:from], day.Stops[from+1:]...)
	if to > len(rest) {
		to = len(rest)
	}
	stops := make([]domain.Stop, 0, n)
	stops = append(stops, rest[:to]...)
	stops = append(stops, moved)
	stops = append(stops, rest[to:]...)
	day.Stops = stops

	s.state.DayPlan = plan
	s.mu.Unlock()

	s.persistJSON(ctx, KeyDayPlan, plan)
	return nil
}

// ClearTrip resets the session to a blank state and wipes persisted keys.
func (s *Store) ClearTrip(ctx context.Context) {
	s.mu.Lock()
	s.state = domain.TripState{}
	s.lastPositionAt = time.Time{}
	s.mu.Unlock()

	if err := s.persister.Clear(ctx, s.sessionID); err != nil {
		s.logger.Warn("clearing persisted trip state failed", "session", s.sessionID, "error", err)
	}
}

// clonePlan copies the day-plan slice so element writes never reach the
// backing array an escaped snapshot may share.
func clonePlan(plan []domain.PlannedDay) []domain.PlannedDay {
	out := make([]domain.PlannedDay, len(plan))
	copy(out, plan)
	return out
}

func (s *Store) persistJSON(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		s.logger.Warn("encoding trip state failed", "key", key, "error", err)
		return
	}
	s.persistRaw(ctx, key, string(raw))
}

func (s *Store) persistRaw(ctx context.Context, key, value string) {
	if err := s.persister.Put(ctx, s.sessionID, key, value); err != nil {
		s.logger.Warn("persisting trip state failed", "key", key, "error", err)
	}
}
