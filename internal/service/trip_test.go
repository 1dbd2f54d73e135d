package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CHAITANYA-2002/city-trail/internal/domain"
	"github.com/CHAITANYA-2002/city-trail/internal/nav"
	"github.com/CHAITANYA-2002/city-trail/internal/repo"
	"github.com/CHAITANYA-2002/city-trail/internal/service"
	"github.com/CHAITANYA-2002/city-trail/internal/trip"
)

// ---- mocks -----------------------------------------------------------------

// mockCatalogRepo is a hand-written test double for repo.CatalogRepo.
type mockCatalogRepo struct {
	listCities    func(ctx context.Context) ([]domain.City, error)
	getCity       func(ctx context.Context, id string) (domain.City, error)
	listLocations func(ctx context.Context, cityID string, category *domain.Category) ([]domain.Location, error)
	getLocation   func(ctx context.Context, id string) (domain.Location, error)
	search        func(ctx context.Context, cityID, query string) ([]domain.Location, error)
}

func (m *mockCatalogRepo) ListCities(ctx context.Context) ([]domain.City, error) {
	return m.listCities(ctx)
}
func (m *mockCatalogRepo) GetCity(ctx context.Context, id string) (domain.City, error) {
	return m.getCity(ctx, id)
}
func (m *mockCatalogRepo) ListLocations(ctx context.Context, cityID string, category *domain.Category) ([]domain.Location, error) {
	return m.listLocations(ctx, cityID, category)
}
func (m *mockCatalogRepo) GetLocation(ctx context.Context, id string) (domain.Location, error) {
	return m.getLocation(ctx, id)
}
func (m *mockCatalogRepo) Search(ctx context.Context, cityID, query string) ([]domain.Location, error) {
	return m.search(ctx, cityID, query)
}

var _ repo.CatalogRepo = (*mockCatalogRepo)(nil)

// mockRouter returns the waypoints straight back as the path.
type mockRouter struct {
	err error
}

func (m *mockRouter) Route(_ context.Context, waypoints []domain.LatLng) (domain.Path, error) {
	if m.err != nil {
		return domain.Path{}, m.err
	}
	return domain.Path{Points: waypoints, DistanceMeters: 5000, DurationSeconds: 600}, nil
}

var _ nav.Router = (*mockRouter)(nil)

// mockPlaces is a hand-written test double for service.PlaceSearcher.
type mockPlaces struct {
	searchArea   func(ctx context.Context, query, cityID string, box domain.BoundingBox) ([]domain.Location, error)
	searchNearby func(ctx context.Context, query, cityID string, origin domain.LatLng, radiusM float64) ([]domain.Location, error)
}

func (m *mockPlaces) SearchArea(ctx context.Context, query, cityID string, box domain.BoundingBox) ([]domain.Location, error) {
	return m.searchArea(ctx, query, cityID, box)
}
func (m *mockPlaces) SearchNearby(ctx context.Context, query, cityID string, origin domain.LatLng, radiusM float64) ([]domain.Location, error) {
	return m.searchNearby(ctx, query, cityID, origin, radiusM)
}

var _ service.PlaceSearcher = (*mockPlaces)(nil)

// ---- helpers ---------------------------------------------------------------

var jaipur = domain.City{
	ID: "jaipur-001", Name: "Jaipur", Country: "India",
	Latitude: 26.9124, Longitude: 75.7873, IsDefault: true,
}

func jaipurCatalog() []domain.Location {
	return []domain.Location{
		{ID: "loc-jaipur-001", Name: "Amber Fort", Category: domain.CategoryHistory,
			CityID: jaipur.ID, Latitude: 26.9855, Longitude: 75.8513,
			ImageURL: "https://img.example/amber.jpg", Rating: 4.7, IsFeatured: true},
		{ID: "loc-jaipur-002", Name: "Hawa Mahal", Category: domain.CategoryHistory,
			CityID: jaipur.ID, Latitude: 26.9239, Longitude: 75.8267, Rating: 4.5},
		{ID: "loc-jaipur-008", Name: "Laxmi Mishthan Bhandar (LMB)", Category: domain.CategoryFood,
			CityID: jaipur.ID, Latitude: 26.9227, Longitude: 75.8245, Rating: 4.5},
	}
}

func defaultCatalog() *mockCatalogRepo {
	return &mockCatalogRepo{
		getCity: func(_ context.Context, id string) (domain.City, error) {
			if id == jaipur.ID {
				return jaipur, nil
			}
			return domain.City{}, domain.ErrNotFound
		},
		listLocations: func(_ context.Context, cityID string, _ *domain.Category) ([]domain.Location, error) {
			if cityID == jaipur.ID {
				return jaipurCatalog(), nil
			}
			return nil, nil
		},
		getLocation: func(_ context.Context, id string) (domain.Location, error) {
			for _, l := range jaipurCatalog() {
				if l.ID == id {
					return l, nil
				}
			}
			return domain.Location{}, domain.ErrNotFound
		},
	}
}

func newTripService(t *testing.T, catalog repo.CatalogRepo, router nav.Router, places service.PlaceSearcher) *service.TripService {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := trip.NewManager(trip.NewMemoryPersister(), logger)
	return service.NewTripService(catalog, router, places, manager, logger)
}

const sid = "11111111-1111-1111-1111-111111111111"

// ---- trip state ------------------------------------------------------------

func TestTripService_SelectCity(t *testing.T) {
	svc := newTripService(t, defaultCatalog(), &mockRouter{}, nil)

	city, err := svc.SelectCity(context.Background(), sid, jaipur.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jaipur", city.Name)

	state := svc.State(context.Background(), sid)
	require.NotNil(t, state.City)
	assert.Equal(t, jaipur.ID, state.City.ID)

	_, err = svc.SelectCity(context.Background(), sid, "atlantis-001")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripService_SetDaysValidation(t *testing.T) {
	svc := newTripService(t, defaultCatalog(), &mockRouter{}, nil)
	assert.ErrorIs(t, svc.SetDays(context.Background(), sid, 0), domain.ErrValidation)
	assert.NoError(t, svc.SetDays(context.Background(), sid, 3))
	assert.Equal(t, 3, svc.State(context.Background(), sid).Days)
}

func TestTripService_SetModeValidation(t *testing.T) {
	svc := newTripService(t, defaultCatalog(), &mockRouter{}, nil)
	assert.ErrorIs(t, svc.SetMode(context.Background(), sid, "teleport"), domain.ErrValidation)
	assert.NoError(t, svc.SetMode(context.Background(), sid, domain.ModeItinerary))
}

// ---- map assembly ----------------------------------------------------------

func TestTripService_MapStateMergesSources(t *testing.T) {
	ctx := context.Background()
	svc := newTripService(t, defaultCatalog(), &mockRouter{}, nil)

	_, err := svc.SelectCity(ctx, sid, jaipur.ID)
	require.NoError(t, err)
	require.NoError(t, svc.SetDays(ctx, sid, 1))
	require.NoError(t, svc.SetMode(ctx, sid, domain.ModeItinerary))

	ms, err := svc.MapState(ctx, sid)
	require.NoError(t, err)
	assert.InDelta(t, jaipur.Latitude, ms.Center.Lat, 1e-9)

	byName := map[string]domain.Location{}
	for _, l := range ms.Locations {
		byName[l.Name] = l
	}
	// Catalog metadata wins for names shared with the schedule.
	assert.Equal(t, "loc-jaipur-001", byName["Amber Fort"].ID)
	// Schedule-only stops are lifted with synthetic IDs.
	if jal, ok := byName["Jal Mahal"]; ok {
		assert.Contains(t, jal.ID, domain.ItineraryIDPrefix)
	}
	// Names never repeat outside the discovery layer.
	counts := map[string]int{}
	for _, l := range ms.Locations {
		if !l.FromDiscovery() {
			counts[l.Name]++
		}
	}
	for name, n := range counts {
		assert.Equal(t, 1, n, "duplicate name %q", name)
	}
}

func TestTripService_MapStateCenterWithoutCity(t *testing.T) {
	ctx := context.Background()
	svc := newTripService(t, defaultCatalog(), &mockRouter{}, nil)

	// No city and no schedule: center falls back to the default city center.
	ms, err := svc.MapState(ctx, sid)
	require.NoError(t, err)
	assert.InDelta(t, 26.9124, ms.Center.Lat, 1e-9)
	assert.InDelta(t, 75.7873, ms.Center.Lng, 1e-9)

	// A trip duration with a schedule template centers on its first stop.
	require.NoError(t, svc.SetDays(ctx, sid, 1))
	ms, err = svc.MapState(ctx, sid)
	require.NoError(t, err)
	assert.InDelta(t, 26.9855, ms.Center.Lat, 1e-9, "first schedule stop (Amber Fort)")
	assert.InDelta(t, 75.8513, ms.Center.Lng, 1e-9)

	// A selected city always wins.
	_, err = svc.SelectCity(ctx, sid, jaipur.ID)
	require.NoError(t, err)
	ms, err = svc.MapState(ctx, sid)
	require.NoError(t, err)
	assert.InDelta(t, jaipur.Latitude, ms.Center.Lat, 1e-9)
}

func TestTripService_MapStateCategoryFilterKeepsDiscovery(t *testing.T) {
	ctx := context.Background()
	places := &mockPlaces{
		searchArea: func(_ context.Context, _, cityID string, _ domain.BoundingBox) ([]domain.Location, error) {
			return []domain.Location{{ID: "osm-1", Name: "Roadside Chai", CityID: cityID,
				Category: domain.CategoryFood, Latitude: 26.92, Longitude: 75.81}}, nil
		},
	}
	svc := newTripService(t, defaultCatalog(), &mockRouter{}, places)

	_, err := svc.SelectCity(ctx, sid, jaipur.ID)
	require.NoError(t, err)

	// A search run while a filter is already active still renders: the layer
	// is filtered by its own query, not by the category chips.
	require.NoError(t, svc.SetActiveCategory(ctx, sid, "history"))
	_, err = svc.Discover(ctx, sid, "chai", nil)
	require.NoError(t, err)

	ms, err := svc.MapState(ctx, sid)
	require.NoError(t, err)

	var sawFood, sawDiscovery bool
	for _, l := range ms.Locations {
		if l.FromDiscovery() {
			sawDiscovery = true
			continue
		}
		if l.Category == domain.CategoryFood {
			sawFood = true
		}
	}
	assert.False(t, sawFood, "category filter must drop non-matching permanent locations")
	assert.True(t, sawDiscovery, "discovery layer ignores the category filter")
}

func TestTripService_DiscoveryClearedOnFilterChange(t *testing.T) {
	ctx := context.Background()
	places := &mockPlaces{
		searchArea: func(_ context.Context, _, cityID string, _ domain.BoundingBox) ([]domain.Location, error) {
			return []domain.Location{{ID: "osm-99", Name: "Hidden Haveli", CityID: cityID,
				Latitude: 26.93, Longitude: 75.82}}, nil
		},
	}
	svc := newTripService(t, defaultCatalog(), &mockRouter{}, places)

	_, err := svc.SelectCity(ctx, sid, jaipur.ID)
	require.NoError(t, err)
	_, err = svc.Discover(ctx, sid, "haveli", nil)
	require.NoError(t, err)

	require.NoError(t, svc.SetActiveCategory(ctx, sid, "history"))

	ms, err := svc.MapState(ctx, sid)
	require.NoError(t, err)
	for _, l := range ms.Locations {
		assert.False(t, l.FromDiscovery(), "filter change must clear the discovery layer")
	}

	// Clearing the filter drops the layer the same way.
	_, err = svc.Discover(ctx, sid, "haveli", nil)
	require.NoError(t, err)
	require.NoError(t, svc.SetActiveCategory(ctx, sid, ""))

	ms, err = svc.MapState(ctx, sid)
	require.NoError(t, err)
	for _, l := range ms.Locations {
		assert.False(t, l.FromDiscovery())
	}
}

func TestTripService_DiscoveryClearedOnDayChange(t *testing.T) {
	ctx := context.Background()
	places := &mockPlaces{
		searchArea: func(_ context.Context, _, cityID string, _ domain.BoundingBox) ([]domain.Location, error) {
			return []domain.Location{{ID: "osm-7", Name: "Corner Kulfi", CityID: cityID,
				Latitude: 26.91, Longitude: 75.80}}, nil
		},
	}
	svc := newTripService(t, defaultCatalog(), &mockRouter{}, places)

	_, err := svc.SelectCity(ctx, sid, jaipur.ID)
	require.NoError(t, err)
	require.NoError(t, svc.SetDays(ctx, sid, 1))
	require.NoError(t, svc.SetMode(ctx, sid, domain.ModeItinerary))
	_, err = svc.Discover(ctx, sid, "kulfi", nil)
	require.NoError(t, err)

	_, err = svc.SetNavigationDay(ctx, sid, 1)
	require.NoError(t, err)

	ms, err := svc.MapState(ctx, sid)
	require.NoError(t, err)
	for _, l := range ms.Locations {
		assert.False(t, l.FromDiscovery(), "day change must clear the discovery layer")
	}
}

func TestTripService_NearbyRequiresPosition(t *testing.T) {
	ctx := context.Background()
	svc := newTripService(t, defaultCatalog(), &mockRouter{}, nil)
	_, err := svc.SelectCity(ctx, sid, jaipur.ID)
	require.NoError(t, err)

	_, err = svc.Nearby(ctx, sid, 2000)
	assert.ErrorIs(t, err, domain.ErrPrecondition)

	accepted := svc.UpdatePosition(ctx, sid, domain.LatLng{Lat: 26.9239, Lng: 75.8267}, 0)
	require.True(t, accepted)

	locs, err := svc.Nearby(ctx, sid, 2000)
	require.NoError(t, err)
	require.NotEmpty(t, locs)
	assert.Equal(t, "Hawa Mahal", locs[0].Name, "closest first")
}

// ---- navigation ------------------------------------------------------------

func TestTripService_FreeBrowseRouteLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newTripService(t, defaultCatalog(), &mockRouter{}, nil)

	_, err := svc.SelectCity(ctx, sid, jaipur.ID)
	require.NoError(t, err)
	require.NoError(t, svc.SetMode(ctx, sid, domain.ModeBrowse))

	assert.Equal(t, nav.StateIdle, svc.Navigation(ctx, sid).State)

	snap, err := svc.SelectDestination(ctx, sid, "loc-jaipur-001")
	require.NoError(t, err)
	assert.Equal(t, nav.StateRouteReady, snap.State)
	require.NotNil(t, snap.Destination)
	assert.Equal(t, "Amber Fort", snap.Destination.Name)
	assert.False(t, snap.Path.Empty())

	// Changing mode tears the route down.
	require.NoError(t, svc.SetMode(ctx, sid, domain.ModeItinerary))
	assert.Equal(t, nav.StateIdle, svc.Navigation(ctx, sid).State)
}

func TestTripService_NavigationThroughTemplateDay(t *testing.T) {
	ctx := context.Background()
	svc := newTripService(t, defaultCatalog(), &mockRouter{}, nil)

	_, err := svc.SelectCity(ctx, sid, jaipur.ID)
	require.NoError(t, err)
	require.NoError(t, svc.SetDays(ctx, sid, 1))
	require.NoError(t, svc.SetMode(ctx, sid, domain.ModeItinerary))

	snap, err := svc.SetNavigationDay(ctx, sid, 1)
	require.NoError(t, err)
	assert.Equal(t, nav.StateIdle, snap.State)
	require.NotEmpty(t, snap.Stops)

	// Starting without a position fails and leaves the machine idle.
	_, err = svc.StartNavigation(ctx, sid)
	assert.ErrorIs(t, err, domain.ErrPrecondition)

	require.True(t, svc.UpdatePosition(ctx, sid, domain.LatLng{Lat: 26.9124, Lng: 75.7873}, 0))
	snap, err = svc.StartNavigation(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, nav.StateNavigating, snap.State)

	// Advance through every stop; the machine must complete exactly once.
	for i := 1; i < len(snap.Stops); i++ {
		snap, err = svc.AdvanceNavigation(ctx, sid)
		require.NoError(t, err)
		assert.Equal(t, nav.StateNavigating, snap.State)
		assert.Equal(t, i, snap.CurrentIndex)
	}
	snap, err = svc.AdvanceNavigation(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, nav.StateCompleted, snap.State)

	_, err = svc.AdvanceNavigation(ctx, sid)
	assert.ErrorIs(t, err, domain.ErrPrecondition)

	_, err = svc.SetNavigationDay(ctx, sid, 9)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ---- discovery -------------------------------------------------------------

func TestTripService_DiscoverRequiresCity(t *testing.T) {
	svc := newTripService(t, defaultCatalog(), &mockRouter{}, &mockPlaces{})
	_, err := svc.Discover(context.Background(), sid, "chai", nil)
	assert.ErrorIs(t, err, domain.ErrPrecondition)
}

func TestTripService_DiscoverNearbyRequiresPosition(t *testing.T) {
	ctx := context.Background()
	svc := newTripService(t, defaultCatalog(), &mockRouter{}, &mockPlaces{})
	_, err := svc.SelectCity(ctx, sid, jaipur.ID)
	require.NoError(t, err)

	_, err = svc.DiscoverNearby(ctx, sid, "chai", nil, 0)
	assert.ErrorIs(t, err, domain.ErrPrecondition)
}

func TestTripService_DiscoveryClearedOnContextChange(t *testing.T) {
	ctx := context.Background()
	places := &mockPlaces{
		searchArea: func(_ context.Context, _, cityID string, _ domain.BoundingBox) ([]domain.Location, error) {
			return []domain.Location{{ID: "osm-7", Name: "Hidden Haveli", CityID: cityID,
				Latitude: 26.93, Longitude: 75.82}}, nil
		},
	}
	svc := newTripService(t, defaultCatalog(), &mockRouter{}, places)
	_, err := svc.SelectCity(ctx, sid, jaipur.ID)
	require.NoError(t, err)

	locs, err := svc.Discover(ctx, sid, "haveli", nil)
	require.NoError(t, err)
	require.Len(t, locs, 1)

	ms, err := svc.MapState(ctx, sid)
	require.NoError(t, err)
	assert.True(t, containsID(ms.Locations, "osm-7"))

	require.NoError(t, svc.SetMode(ctx, sid, domain.ModeItinerary))
	ms, err = svc.MapState(ctx, sid)
	require.NoError(t, err)
	assert.False(t, containsID(ms.Locations, "osm-7"), "mode change clears the discovery layer")
}

func containsID(locs []domain.Location, id string) bool {
	for _, l := range locs {
		if l.ID == id {
			return true
		}
	}
	return false
}

// ---- planner ---------------------------------------------------------------

func TestTripService_WizardConfirmTwoDayPlan(t *testing.T) {
	ctx := context.Background()
	svc := newTripService(t, defaultCatalog(), &mockRouter{}, nil)
	_, err := svc.SelectCity(ctx, sid, jaipur.ID)
	require.NoError(t, err)

	_, err = svc.PlannerChooseDays(ctx, sid, 2)
	require.NoError(t, err)
	_, err = svc.PlannerToggle(ctx, sid, domain.Stop{Title: "Amber Fort", Type: "history"})
	require.NoError(t, err)
	_, err = svc.PlannerNext(ctx, sid)
	require.NoError(t, err)
	_, err = svc.PlannerToggle(ctx, sid, domain.Stop{Title: "Hawa Mahal", Type: "history"})
	require.NoError(t, err)
	_, err = svc.PlannerNext(ctx, sid)
	require.NoError(t, err)

	// Nothing lands in the trip before Confirm.
	assert.Empty(t, svc.State(ctx, sid).DayPlan)

	state, err := svc.PlannerConfirm(ctx, sid)
	require.NoError(t, err)

	assert.Equal(t, domain.ModeCustom, state.Mode)
	assert.Equal(t, 2, state.Days)
	require.Len(t, state.DayPlan, 2)
	assert.Equal(t, "Day 1", state.DayPlan[0].Title)
	assert.Equal(t, "Amber Fort", state.DayPlan[0].Stops[0].Title)
	assert.Equal(t, "Hawa Mahal", state.DayPlan[1].Stops[0].Title)

	require.Len(t, state.Curated, 2)
	assert.Equal(t, 1, state.Curated[0].PlannerDay)
	assert.InDelta(t, 26.9855, state.Curated[0].Latitude, 1e-9)
	assert.Equal(t, "https://img.example/amber.jpg", state.Curated[0].ImageURL,
		"catalog image metadata backfilled by name")

	// The wizard is fresh for the next draft.
	view := svc.PlannerState(ctx, sid)
	assert.Equal(t, "choose-days", string(view.Step.Kind))
}

func TestTripService_RemoveLocationAcrossDays(t *testing.T) {
	ctx := context.Background()
	svc := newTripService(t, defaultCatalog(), &mockRouter{}, nil)
	_, err := svc.SelectCity(ctx, sid, jaipur.ID)
	require.NoError(t, err)

	_, err = svc.PlannerChooseDays(ctx, sid, 3)
	require.NoError(t, err)
	_, err = svc.PlannerToggle(ctx, sid, domain.Stop{Title: "Hawa Mahal", Type: "history"})
	require.NoError(t, err)
	_, err = svc.PlannerNext(ctx, sid)
	require.NoError(t, err)
	_, err = svc.PlannerToggle(ctx, sid, domain.Stop{Title: "Amber Fort", Type: "history"})
	require.NoError(t, err)
	_, err = svc.PlannerNext(ctx, sid)
	require.NoError(t, err)
	_, err = svc.PlannerToggle(ctx, sid, domain.Stop{Title: "Hawa Mahal", Type: "history"})
	require.NoError(t, err)
	_, err = svc.PlannerNext(ctx, sid)
	require.NoError(t, err)
	_, err = svc.PlannerConfirm(ctx, sid)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveLocation(ctx, sid, "Hawa Mahal"))

	state := svc.State(ctx, sid)
	assert.Empty(t, state.DayPlan[0].Stops)
	require.Len(t, state.DayPlan[1].Stops, 1)
	assert.Empty(t, state.DayPlan[2].Stops)
	require.Len(t, state.Curated, 1)
	assert.Equal(t, "Amber Fort", state.Curated[0].Name)

	// Removing again changes nothing.
	require.NoError(t, svc.RemoveLocation(ctx, sid, "Hawa Mahal"))
	assert.Len(t, svc.State(ctx, sid).Curated, 1)
}
