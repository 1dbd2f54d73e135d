// Package repo contains all database access logic for the city-trail API.
// The catalog (cities and their locations) lives in Postgres; no business
// logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/CHAITANYA-2002/city-trail/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CatalogRepo defines read access to the travel catalog. The service layer
// depends on this interface, not the Postgres implementation, which allows
// the service to be unit-tested with a mock.
type CatalogRepo interface {
	// ListCities returns every city, default city first, then by name.
	ListCities(ctx context.Context) ([]domain.City, error)

	// GetCity retrieves a single city by ID.
	// Returns domain.ErrNotFound if no city with that ID exists.
	GetCity(ctx context.Context, id string) (domain.City, error)

	// ListLocations returns a city's locations, optionally restricted to one
	// category. An empty cityID matches every city. Ordered featured first,
	// then by rating descending.
	ListLocations(ctx context.Context, cityID string, category *domain.Category) ([]domain.Location, error)

	// GetLocation retrieves a single location by ID.
	// Returns domain.ErrNotFound if no location with that ID exists.
	GetLocation(ctx context.Context, id string) (domain.Location, error)

	// Search returns a city's locations whose name, description, address, or
	// tags match the query, case-insensitively.
	Search(ctx context.Context, cityID, query string) ([]domain.Location, error)
}

// pgCatalogRepo is the Postgres implementation of CatalogRepo.
type pgCatalogRepo struct {
	db db
}

// NewCatalogRepo constructs a CatalogRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewCatalogRepo(db db) CatalogRepo {
	return &pgCatalogRepo{db: db}
}

const cityColumns = `id, name, country, description, image_url, latitude, longitude, is_default`

const locationColumns = `id, name, description, short_description, category, city_id,
	latitude, longitude, image_url, gallery, rating, review_count,
	opening_hours, closing_hours, entry_fee, address, phone, website,
	tags, is_featured`

// ListCities returns every city, default city first.
func (r *pgCatalogRepo) ListCities(ctx context.Context) ([]domain.City, error) {
	q := `
		SELECT ` + cityColumns + `
		FROM cities
		ORDER BY is_default DESC, name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.CatalogRepo.ListCities: %w", err)
	}
	defer rows.Close()

	var cities []domain.City
	for rows.Next() {
		c, err := scanCity(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.CatalogRepo.ListCities: scan: %w", err)
		}
		cities = append(cities, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.CatalogRepo.ListCities: rows: %w", err)
	}
	return cities, nil
}

// GetCity retrieves a city by primary key.
func (r *pgCatalogRepo) GetCity(ctx context.Context, id string) (domain.City, error) {
	q := `
		SELECT ` + cityColumns + `
		FROM cities
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	c, err := scanCity(row)
	if err != nil {
		return domain.City{}, fmt.Errorf("repo.CatalogRepo.GetCity: %w", err)
	}
	return c, nil
}

// ListLocations returns a city's locations, optionally filtered by category.
func (r *pgCatalogRepo) ListLocations(ctx context.Context, cityID string, category *domain.Category) ([]domain.Location, error) {
	q := `
		SELECT ` + locationColumns + `
		FROM locations
		WHERE (@city_id::text = '' OR city_id = @city_id)
		  AND (@category::text IS NULL OR category = @category)
		ORDER BY is_featured DESC, rating DESC, name`

	var cat *string
	if category != nil {
		s := string(*category)
		cat = &s
	}
	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"city_id": cityID, "category": cat})
	if err != nil {
		return nil, fmt.Errorf("repo.CatalogRepo.ListLocations: %w", err)
	}
	defer rows.Close()

	locs, err := collectLocations(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.CatalogRepo.ListLocations: %w", err)
	}
	return locs, nil
}

// GetLocation retrieves a location by primary key.
func (r *pgCatalogRepo) GetLocation(ctx context.Context, id string) (domain.Location, error) {
	q := `
		SELECT ` + locationColumns + `
		FROM locations
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	l, err := scanLocation(row)
	if err != nil {
		return domain.Location{}, fmt.Errorf("repo.CatalogRepo.GetLocation: %w", err)
	}
	return l, nil
}

// Search matches the query against name, description, address, and tags.
func (r *pgCatalogRepo) Search(ctx context.Context, cityID, query string) ([]domain.Location, error) {
	q := `
		SELECT ` + locationColumns + `
		FROM locations
		WHERE city_id = @city_id
		  AND (name ILIKE @pattern
		       OR description ILIKE @pattern
		       OR address ILIKE @pattern
		       OR EXISTS (SELECT 1 FROM unnest(tags) t WHERE t ILIKE @pattern))
		ORDER BY is_featured DESC, rating DESC, name`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{
		"city_id": cityID,
		"pattern": "%" + query + "%",
	})
	if err != nil {
		return nil, fmt.Errorf("repo.CatalogRepo.Search: %w", err)
	}
	defer rows.Close()

	locs, err := collectLocations(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.CatalogRepo.Search: %w", err)
	}
	return locs, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan
// helpers to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

func scanCity(s scanner) (domain.City, error) {
	var c domain.City
	err := s.Scan(&c.ID, &c.Name, &c.Country, &c.Description, &c.ImageURL,
		&c.Latitude, &c.Longitude, &c.IsDefault)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.City{}, domain.ErrNotFound
		}
		return domain.City{}, err
	}
	return c, nil
}

func scanLocation(s scanner) (domain.Location, error) {
	var (
		l   domain.Location
		cat string
	)
	err := s.Scan(&l.ID, &l.Name, &l.Description, &l.ShortDescription, &cat,
		&l.CityID, &l.Latitude, &l.Longitude, &l.ImageURL, &l.Gallery,
		&l.Rating, &l.ReviewCount, &l.OpeningHours, &l.ClosingHours,
		&l.EntryFee, &l.Address, &l.Phone, &l.Website, &l.Tags, &l.IsFeatured)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Location{}, domain.ErrNotFound
		}
		return domain.Location{}, err
	}
	l.Category = domain.Category(cat)
	return l, nil
}

func collectLocations(rows pgx.Rows) ([]domain.Location, error) {
	var locs []domain.Location
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		locs = append(locs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return locs, nil
}
