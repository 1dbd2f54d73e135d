// Package nav drives turn-by-turn trip navigation as an explicit state
// machine over an external route provider.
package nav

import (
	"context"
	"log/slog"
	"sync"

	"github.com/CHAITANYA-2002/city-trail/internal/domain"
	"github.com/CHAITANYA-2002/city-trail/internal/spatial"
)

// State is the navigation machine's phase.
type State string

const (
	// StateIdle means no destination or stop list is active.
	StateIdle State = "idle"
	// StateRouteLoading means a route fetch is in flight.
	StateRouteLoading State = "routeLoading"
	// StateRouteReady means a route (possibly without geometry, after a
	// fetch failure) is available but navigation has not started.
	StateRouteReady State = "routeReady"
	// StateNavigating means the traveler is moving through the stop list.
	StateNavigating State = "navigating"
	// StateCompleted means the final stop has been reached.
	StateCompleted State = "completed"
)

// Router produces a path visiting waypoints in order.
type Router interface {
	Route(ctx context.Context, waypoints []domain.LatLng) (domain.Path, error)
}

// Snapshot is a point-in-time copy of the machine for rendering.
type Snapshot struct {
	State        State            `json:"state"`
	Destination  *domain.Location `json:"destination,omitempty"`
	Stops        []domain.Location `json:"stops"`
	CurrentIndex int              `json:"currentIndex"`
	Path         domain.Path      `json:"path"`
}

// Machine is the navigation state machine for one session. Route fetches run
// while the lock is released; every fetch captures a sequence number and its
// result is discarded if the machine moved on in the meantime, so a slow
// response can never overwrite newer state.
type Machine struct {
	mu     sync.Mutex
	router Router
	logger *slog.Logger

	state   State
	seq     uint64
	dest    *domain.Location
	stops   []domain.Location
	current int
	path    domain.Path
}

// NewMachine returns an idle machine.
func NewMachine(router Router, logger *slog.Logger) *Machine {
	return &Machine{router: router, logger: logger, state: StateIdle}
}

// Snapshot returns a copy of the current machine state.
func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{
		State:        m.state,
		Destination:  m.dest,
		Stops:        m.stops,
		CurrentIndex: m.current,
		Path:         m.path,
	}
}

// SetStops installs the ordered stop list navigation will follow and returns
// the machine to idle. The authored order is authoritative: the machine never
// re-sorts stops by distance or any other criterion.
func (m *Machine) SetStops(stops []domain.Location) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	m.state = StateIdle
	m.stops = stops
	m.dest = nil
	m.current = 0
	m.path = domain.Path{}
}

// SelectDestination targets a single location and fetches a route to it from
// origin. The fetch runs synchronously; if the machine is reset or retargeted
// while it runs, the late result is dropped. A fetch failure still lands in
// StateRouteReady: the traveler sees the destination pin without a line,
// with a straight-line distance as the estimate.
func (m *Machine) SelectDestination(ctx context.Context, origin domain.LatLng, dest domain.Location) Snapshot {
	m.mu.Lock()
	m.seq++
	seq := m.seq
	m.state = StateRouteLoading
	m.dest = &dest
	m.stops = nil
	m.current = 0
	m.path = domain.Path{}
	m.mu.Unlock()

	path := m.fetch(ctx, []domain.LatLng{origin, dest.Coord()})

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.seq != seq {
		// A newer selection or reset superseded this fetch.
		return m.snapshotLocked()
	}
	m.state = StateRouteReady
	m.path = path
	return m.snapshotLocked()
}

// Start begins navigating the installed stop list from the traveler's
// position. It requires a known position and a non-empty stop list;
// otherwise it returns ErrPrecondition and changes nothing.
func (m *Machine) Start(ctx context.Context, origin *domain.LatLng) (Snapshot, error) {
	m.mu.Lock()
	if origin == nil || len(m.stops) == 0 {
		snap := m.snapshotLocked()
		m.mu.Unlock()
		return snap, domain.ErrPrecondition
	}
	m.seq++
	seq := m.seq
	m.state = StateRouteLoading
	m.current = 0
	waypoints := m.remainingWaypoints(*origin)
	m.mu.Unlock()

	path := m.fetch(ctx, waypoints)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.seq != seq {
		return m.snapshotLocked(), nil
	}
	m.state = StateNavigating
	m.path = path
	return m.snapshotLocked(), nil
}

// Advance marks the current stop reached. At the final stop it completes the
// trip; otherwise it moves to the next stop and refetches the route covering
// only the remaining stops. Advancing outside StateNavigating returns
// ErrPrecondition; advancing past completion is not possible because the
// completed machine is no longer navigating.
func (m *Machine) Advance(ctx context.Context, origin domain.LatLng) (Snapshot, error) {
	m.mu.Lock()
	if m.state != StateNavigating {
		snap := m.snapshotLocked()
		m.mu.Unlock()
		return snap, domain.ErrPrecondition
	}
	if m.current >= len(m.stops)-1 {
		m.seq++
		m.state = StateCompleted
		m.path = domain.Path{}
		snap := m.snapshotLocked()
		m.mu.Unlock()
		return snap, nil
	}
	m.seq++
	seq := m.seq
	m.current++
	waypoints := m.remainingWaypoints(origin)
	m.mu.Unlock()

	path := m.fetch(ctx, waypoints)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.seq != seq {
		return m.snapshotLocked(), nil
	}
	m.path = path
	return m.snapshotLocked(), nil
}

// Reset returns the machine to idle, dropping destination, stops, and path.
// Any in-flight route fetch becomes stale and its result is discarded.
func (m *Machine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	m.state = StateIdle
	m.dest = nil
	m.stops = nil
	m.current = 0
	m.path = domain.Path{}
}

// remainingWaypoints builds origin followed by the stops not yet reached.
// Callers must hold the lock.
func (m *Machine) remainingWaypoints(origin domain.LatLng) []domain.LatLng {
	waypoints := make([]domain.LatLng, 0, len(m.stops)-m.current+1)
	waypoints = append(waypoints, origin)
	for _, stop := range m.stops[m.current:] {
		waypoints = append(waypoints, stop.Coord())
	}
	return waypoints
}

// fetch asks the router for a path. On failure it degrades to a path with no
// points but a straight-line distance over the waypoints, so the traveler
// still sees a rough estimate when the route provider is down.
func (m *Machine) fetch(ctx context.Context, waypoints []domain.LatLng) domain.Path {
	path, err := m.router.Route(ctx, waypoints)
	if err != nil {
		m.logger.Warn("route fetch failed", "error", err)
		return domain.Path{DistanceMeters: spatial.PathLength(waypoints)}
	}
	return path
}

func (m *Machine) snapshotLocked() Snapshot {
	return Snapshot{
		State:        m.state,
		Destination:  m.dest,
		Stops:        m.stops,
		CurrentIndex: m.current,
		Path:         m.path,
	}
}
