// Package reconcile merges catalog, schedule, curated, and discovery
// locations into the single de-duplicated set rendered on the map.
package reconcile

import (
	"fmt"

	"github.com/CHAITANYA-2002/city-trail/internal/domain"
	"github.com/CHAITANYA-2002/city-trail/internal/itinerary"
)

// Input carries everything one reconciliation pass needs. Discovery results
// are layered on top of the permanent set without de-duplication; everything
// else merges by name with catalog metadata taking precedence.
type Input struct {
	CityID  string
	Catalog []domain.Location
	Mode    domain.ExploreMode
	Days    int

	// Curated is the flat location list produced by the day-plan wizard.
	Curated []domain.Location

	// Discovery is the transient layer from the place-search adapter.
	Discovery []domain.Location

	// Coords resolves schedule stop titles to coordinates. Required.
	Coords itinerary.CoordIndex
}

// Build produces the ordered display set: catalog locations first
// (authoritative metadata), then schedule stops lifted into synthetic
// locations where the name is not already taken, then curated locations not
// already present, then the discovery layer verbatim.
//
// Stops whose title has no entry in the coordinate index are dropped from the
// result; they still appear in list-only itinerary views, so the miss is not
// an error.
func Build(in Input) []domain.Location {
	byName := make(map[string]bool, len(in.Catalog))
	out := make([]domain.Location, 0, len(in.Catalog))

	for _, loc := range in.Catalog {
		if byName[loc.Name] {
			continue
		}
		byName[loc.Name] = true
		out = append(out, loc)
	}

	for _, day := range scheduleDays(in.Mode, in.Days) {
		for idx, stop := range day.Stops {
			if byName[stop.Title] {
				// Catalog metadata wins; the stop's own time and notes live
				// on the day plan, not here.
				continue
			}
			coord, ok := in.Coords.Lookup(stop.Title)
			if !ok {
				continue
			}
			byName[stop.Title] = true
			out = append(out, LiftStop(stop, day.Day, idx, in.CityID, coord))
		}
	}

	for _, loc := range in.Curated {
		if byName[loc.Name] {
			continue
		}
		byName[loc.Name] = true
		out = append(out, loc)
	}

	// Discovery results stay a distinct layer: no de-dup against the
	// permanent set, cleared by the caller on any context change.
	out = append(out, in.Discovery...)

	return out
}

// scheduleDays returns the schedule source for the mode. Free browsing still
// surfaces every known template stop so travelers can search them; custom
// mode contributes through the curated list instead.
func scheduleDays(mode domain.ExploreMode, days int) []domain.PlannedDay {
	if mode == domain.ModeCustom {
		return nil
	}
	if itinerary.HasTemplate(days) {
		return itinerary.Template(days)
	}
	var all []domain.PlannedDay
	for d := itinerary.MinDays; d <= itinerary.MaxDays; d++ {
		all = append(all, itinerary.Template(d)...)
	}
	return all
}

// LiftStop synthesizes a map-renderable Location from a schedule stop.
func LiftStop(stop domain.Stop, day, idx int, cityID string, coord domain.LatLng) domain.Location {
	return domain.Location{
		ID:               fmt.Sprintf("%s%d-%d", domain.ItineraryIDPrefix, day, idx),
		Name:             stop.Title,
		Description:      stop.Description,
		ShortDescription: stop.Description,
		Category:         InferCategory(stop.Title),
		CityID:           cityID,
		Latitude:         coord.Lat,
		Longitude:        coord.Lng,
		Rating:           4,
		OpeningHours:     stop.Time,
		Address:          stop.Area,
		DurationMinutes:  stop.DurationMinutes,
		PlannerDay:       day,
	}
}

// FilterCategory returns the subset of locs in the given category.
// A nil category passes everything through. Discovery locations are always
// kept: the discovery layer is filtered by its own search, not by the
// category chips.
func FilterCategory(locs []domain.Location, cat *domain.Category) []domain.Location {
	if cat == nil {
		return locs
	}
	out := make([]domain.Location, 0, len(locs))
	for _, l := range locs {
		if l.Category == *cat || l.FromDiscovery() {
			out = append(out, l)
		}
	}
	return out
}
