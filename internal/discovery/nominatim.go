// Package discovery finds places through the OpenStreetMap Nominatim search
// API. Results form a transient map layer: they are never persisted, never
// de-duplicated against catalog locations, and are cleared whenever the trip
// context changes.
package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/CHAITANYA-2002/city-trail/internal/domain"
	"github.com/CHAITANYA-2002/city-trail/internal/reconcile"
	"github.com/CHAITANYA-2002/city-trail/internal/spatial"
)

// DefaultBaseURL is the public Nominatim instance.
const DefaultBaseURL = "https://nominatim.openstreetmap.org"

// maxResults caps one search. Nominatim's public instance caps at 50.
const maxResults = 20

// Client searches Nominatim. Only one search per client may be in flight at a
// time: a second trigger while the first is running is rejected with
// ErrSearchPending instead of queueing, matching the single search box it
// serves.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	pending   atomic.Bool
}

// NewClient returns a client for the given Nominatim base URL. An empty
// baseURL falls back to the public instance.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: "city-trail/1.0",
		http:      &http.Client{Timeout: 15 * time.Second},
	}
}

// nominatimPlace is the subset of a Nominatim result we consume.
type nominatimPlace struct {
	PlaceID     int64  `json:"place_id"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
	Class       string `json:"class"`
	Type        string `json:"type"`
}

// SearchArea looks up query within the bounding box and returns the matches
// as discovery locations. cityID is stamped onto each result for rendering.
func (c *Client) SearchArea(ctx context.Context, query, cityID string, box domain.BoundingBox) ([]domain.Location, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("discovery.Client.SearchArea: empty query: %w", domain.ErrValidation)
	}
	if !c.pending.CompareAndSwap(false, true) {
		return nil, domain.ErrSearchPending
	}
	defer c.pending.Store(false)

	params := url.Values{
		"q":       {query},
		"format":  {"json"},
		"limit":   {strconv.Itoa(maxResults)},
		"bounded": {"1"},
		// Nominatim viewbox order is west,north,east,south.
		"viewbox": {fmt.Sprintf("%f,%f,%f,%f", box.West, box.North, box.East, box.South)},
	}
	return c.search(ctx, cityID, params)
}

// SearchNearby looks up query within radiusM meters of origin.
func (c *Client) SearchNearby(ctx context.Context, query, cityID string, origin domain.LatLng, radiusM float64) ([]domain.Location, error) {
	return c.SearchArea(ctx, query, cityID, spatial.BoxAround(origin, radiusM))
}

func (c *Client) search(ctx context.Context, cityID string, params url.Values) ([]domain.Location, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("discovery.Client.search: build request: %w", err)
	}
	// Nominatim's usage policy requires an identifying User-Agent.
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("discovery.Client.search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("discovery.Client.search: unexpected status %d", resp.StatusCode)
	}

	var places []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, fmt.Errorf("discovery.Client.search: decode: %w", err)
	}

	out := make([]domain.Location, 0, len(places))
	for _, p := range places {
		loc, ok := toLocation(p, cityID)
		if !ok {
			continue
		}
		out = append(out, loc)
	}
	return out, nil
}

// toLocation maps a Nominatim result onto a discovery Location. The display
// name's first comma segment becomes the short name; the full display name is
// kept as the description.
func toLocation(p nominatimPlace, cityID string) (domain.Location, bool) {
	lat, err := strconv.ParseFloat(p.Lat, 64)
	if err != nil {
		return domain.Location{}, false
	}
	lng, err := strconv.ParseFloat(p.Lon, 64)
	if err != nil {
		return domain.Location{}, false
	}

	name := p.DisplayName
	if i := strings.Index(name, ","); i >= 0 {
		name = strings.TrimSpace(name[:i])
	}

	var tags []string
	if p.Class != "" {
		tags = append(tags, p.Class)
	}
	if p.Type != "" {
		tags = append(tags, p.Type)
	}

	return domain.Location{
		ID:          fmt.Sprintf("%s%d", domain.DiscoveryIDPrefix, p.PlaceID),
		Name:        name,
		Description: p.DisplayName,
		Category:    reconcile.InferCategory(name),
		CityID:      cityID,
		Latitude:    lat,
		Longitude:   lng,
		Tags:        tags,
	}, true
}
