package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/CHAITANYA-2002/city-trail/internal/domain"
	"github.com/CHAITANYA-2002/city-trail/internal/itinerary"
	"github.com/CHAITANYA-2002/city-trail/internal/repo"
)

// CatalogService implements read operations over the travel catalog.
type CatalogService struct {
	repo repo.CatalogRepo
}

// NewCatalogService constructs a CatalogService backed by the provided repo.
func NewCatalogService(r repo.CatalogRepo) *CatalogService {
	return &CatalogService{repo: r}
}

// ListCities returns every city.
func (s *CatalogService) ListCities(ctx context.Context) ([]domain.City, error) {
	return s.repo.ListCities(ctx)
}

// GetCity returns a single city by ID.
func (s *CatalogService) GetCity(ctx context.Context, id string) (domain.City, error) {
	return s.repo.GetCity(ctx, id)
}

// ListCategories returns the fixed category display records.
func (s *CatalogService) ListCategories(_ context.Context) []domain.CategoryInfo {
	return domain.CategoryInfos
}

// ListLocations returns a city's locations, optionally filtered to one
// category. An empty cityID returns every location across all cities; an
// unknown category name is a validation error, not an empty list.
func (s *CatalogService) ListLocations(ctx context.Context, cityID, category string) ([]domain.Location, error) {
	var cat *domain.Category
	if category != "" {
		c := domain.Category(category)
		if !c.Valid() {
			return nil, fmt.Errorf("service.CatalogService.ListLocations: unknown category %q: %w", category, domain.ErrValidation)
		}
		cat = &c
	}
	return s.repo.ListLocations(ctx, cityID, cat)
}

// GetLocation returns a single location by ID.
func (s *CatalogService) GetLocation(ctx context.Context, id string) (domain.Location, error) {
	return s.repo.GetLocation(ctx, id)
}

// Search returns a city's locations matching the query.
func (s *CatalogService) Search(ctx context.Context, cityID, query string) ([]domain.Location, error) {
	if cityID == "" {
		return nil, fmt.Errorf("service.CatalogService.Search: cityId is required: %w", domain.ErrValidation)
	}
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("service.CatalogService.Search: query is required: %w", domain.ErrValidation)
	}
	return s.repo.Search(ctx, cityID, query)
}

// Itinerary returns the built-in schedule template for the given duration.
func (s *CatalogService) Itinerary(_ context.Context, days int) ([]domain.PlannedDay, error) {
	if !itinerary.HasTemplate(days) {
		return nil, fmt.Errorf("service.CatalogService.Itinerary: no template for %d days: %w", days, domain.ErrNotFound)
	}
	return itinerary.Template(days), nil
}
