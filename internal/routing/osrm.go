// Package routing fetches driving paths between waypoints from an OSRM
// ("Open Source Routing Machine") endpoint.
package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/CHAITANYA-2002/city-trail/internal/domain"
)

// DefaultBaseURL is the public OSRM demo server.
const DefaultBaseURL = "https://router.project-osrm.org"

// OSRMClient talks to one OSRM instance. The zero value is not usable; build
// it with NewOSRMClient.
type OSRMClient struct {
	baseURL string
	http    *http.Client
}

// NewOSRMClient returns a client for the given base URL. An empty baseURL
// falls back to the public demo server.
func NewOSRMClient(baseURL string) *OSRMClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &OSRMClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// osrmResponse is the subset of the OSRM route response we consume.
type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"` // [lng, lat] pairs
		} `json:"geometry"`
	} `json:"routes"`
}

// Route returns the driving path visiting the waypoints in order. At least
// two waypoints are required.
func (c *OSRMClient) Route(ctx context.Context, waypoints []domain.LatLng) (domain.Path, error) {
	if len(waypoints) < 2 {
		return domain.Path{}, fmt.Errorf("routing.OSRMClient.Route: need at least 2 waypoints, got %d: %w",
			len(waypoints), domain.ErrValidation)
	}

	coords := make([]string, len(waypoints))
	for i, wp := range waypoints {
		// OSRM wants lon,lat order.
		coords[i] = fmt.Sprintf("%f,%f", wp.Lng, wp.Lat)
	}
	url := fmt.Sprintf("%s/route/v1/driving/%s?overview=full&geometries=geojson",
		c.baseURL, strings.Join(coords, ";"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.Path{}, fmt.Errorf("routing.OSRMClient.Route: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.Path{}, fmt.Errorf("routing.OSRMClient.Route: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Path{}, fmt.Errorf("routing.OSRMClient.Route: unexpected status %d", resp.StatusCode)
	}

	var body osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.Path{}, fmt.Errorf("routing.OSRMClient.Route: decode: %w", err)
	}
	if body.Code != "Ok" || len(body.Routes) == 0 {
		return domain.Path{}, fmt.Errorf("routing.OSRMClient.Route: no route (code %q)", body.Code)
	}

	route := body.Routes[0]
	points := make([]domain.LatLng, 0, len(route.Geometry.Coordinates))
	for _, pair := range route.Geometry.Coordinates {
		if len(pair) < 2 {
			continue
		}
		points = append(points, domain.LatLng{Lat: pair[1], Lng: pair[0]})
	}
	return domain.Path{
		Points:          points,
		DistanceMeters:  route.Distance,
		DurationSeconds: route.Duration,
	}, nil
}
