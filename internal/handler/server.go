// Package handler implements the HTTP handlers for the city-trail API.
// All handlers are methods on Server; they are split into domain-specific
// files (catalog.go, trip.go, nav.go, etc.) but share the same Server struct
// so they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/CHAITANYA-2002/city-trail/internal/domain"
	"github.com/CHAITANYA-2002/city-trail/internal/nav"
	"github.com/CHAITANYA-2002/city-trail/internal/service"
)

// CatalogServicer defines the catalog operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type CatalogServicer interface {
	ListCities(ctx context.Context) ([]domain.City, error)
	GetCity(ctx context.Context, id string) (domain.City, error)
	ListCategories(ctx context.Context) []domain.CategoryInfo
	ListLocations(ctx context.Context, cityID, category string) ([]domain.Location, error)
	GetLocation(ctx context.Context, id string) (domain.Location, error)
	Search(ctx context.Context, cityID, query string) ([]domain.Location, error)
	Itinerary(ctx context.Context, days int) ([]domain.PlannedDay, error)
}

// TripServicer defines the session-scoped operations the handlers depend on.
type TripServicer interface {
	State(ctx context.Context, sessionID string) domain.TripState
	SelectCity(ctx context.Context, sessionID, cityID string) (domain.City, error)
	SetDays(ctx context.Context, sessionID string, days int) error
	SetInterests(ctx context.Context, sessionID string, interests []string)
	SetMode(ctx context.Context, sessionID string, mode domain.ExploreMode) error
	SetActiveCategory(ctx context.Context, sessionID, category string) error
	UpdatePosition(ctx context.Context, sessionID string, p domain.LatLng, accuracyM float64) bool
	AddLocation(ctx context.Context, sessionID, locationID string, day int) error
	RemoveLocation(ctx context.Context, sessionID, name string) error
	ReorderStops(ctx context.Context, sessionID string, day, from, to int) error
	ClearTrip(ctx context.Context, sessionID string)

	MapState(ctx context.Context, sessionID string) (service.MapState, error)
	Viewport(ctx context.Context, sessionID string, box domain.BoundingBox) ([]domain.Location, error)
	Nearby(ctx context.Context, sessionID string, radiusM float64) ([]domain.Location, error)

	Navigation(ctx context.Context, sessionID string) nav.Snapshot
	SelectDestination(ctx context.Context, sessionID, locationID string) (nav.Snapshot, error)
	SetNavigationDay(ctx context.Context, sessionID string, day int) (nav.Snapshot, error)
	StartNavigation(ctx context.Context, sessionID string) (nav.Snapshot, error)
	AdvanceNavigation(ctx context.Context, sessionID string) (nav.Snapshot, error)
	ResetNavigation(ctx context.Context, sessionID string)

	Discover(ctx context.Context, sessionID, query string, box *domain.BoundingBox) ([]domain.Location, error)
	DiscoverNearby(ctx context.Context, sessionID, query string, origin *domain.LatLng, radiusM float64) ([]domain.Location, error)
	ClearDiscovery(ctx context.Context, sessionID string)

	PlannerState(ctx context.Context, sessionID string) service.PlannerView
	PlannerChooseDays(ctx context.Context, sessionID string, days int) (service.PlannerView, error)
	PlannerToggle(ctx context.Context, sessionID string, stop domain.Stop) (service.PlannerView, error)
	PlannerNext(ctx context.Context, sessionID string) (service.PlannerView, error)
	PlannerBack(ctx context.Context, sessionID string) (service.PlannerView, error)
	PlannerOptions(ctx context.Context, query, stopType string) []domain.Stop
	PlannerConfirm(ctx context.Context, sessionID string) (domain.TripState, error)
}

// Server holds the handler dependencies for all API endpoints.
type Server struct {
	catalog CatalogServicer
	trips   TripServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(catalog CatalogServicer, trips TripServicer) *Server {
	return &Server{catalog: catalog, trips: trips}
}

// Routes mounts every endpoint on a fresh chi router. Catalog endpoints are
// session-free; everything else requires an X-Session-ID header.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/cities", s.ListCities)
		r.Get("/cities/{id}", s.GetCity)
		r.Get("/categories", s.ListCategories)
		r.Get("/locations", s.ListLocations)
		r.Get("/locations/{id}", s.GetLocation)
		r.Get("/search", s.SearchLocations)
		r.Get("/itinerary", s.GetItinerary)

		r.Group(func(r chi.Router) {
			r.Use(RequireSession)

			r.Route("/trip", func(r chi.Router) {
				r.Get("/", s.GetTrip)
				r.Patch("/", s.PatchTrip)
				r.Delete("/", s.ClearTrip)
				r.Post("/locations", s.AddTripLocation)
				r.Delete("/locations/{name}", s.RemoveTripLocation)
				r.Post("/days/{day}/reorder", s.ReorderDay)
				r.Put("/position", s.PutPosition)
			})

			r.Get("/map", s.GetMap)
			r.Post("/route", s.PostRoute)

			r.Route("/navigation", func(r chi.Router) {
				r.Get("/", s.GetNavigation)
				r.Post("/day", s.SetNavigationDay)
				r.Post("/start", s.StartNavigation)
				r.Post("/advance", s.AdvanceNavigation)
				r.Post("/reset", s.ResetNavigation)
			})

			r.Route("/discover", func(r chi.Router) {
				r.Get("/area", s.DiscoverArea)
				r.Get("/nearby", s.DiscoverNearby)
				r.Delete("/", s.ClearDiscovery)
			})

			r.Route("/planner", func(r chi.Router) {
				r.Get("/", s.GetPlanner)
				r.Post("/", s.ChoosePlannerDays)
				r.Get("/stops", s.PlannerStops)
				r.Post("/stops/toggle", s.TogglePlannerStop)
				r.Post("/next", s.PlannerNext)
				r.Post("/back", s.PlannerBack)
				r.Post("/confirm", s.ConfirmPlanner)
			})
		})
	})

	return r
}

// GetHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) GetHealth(w http.ResponseWriter, _ *http.Request) {
	respond(w, http.StatusOK, map[string]string{"status": "ok"})
}
