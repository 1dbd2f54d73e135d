// Package itinerary holds the static schedule templates and the
// title→coordinate lookup used to place schedule stops on a map.
package itinerary

import "github.com/CHAITANYA-2002/city-trail/internal/domain"

// CoordIndex resolves a stop title to a map coordinate. It is a port so that
// alternate content sets (other cities) can be plugged in without code
// changes; Jaipur() returns the built-in table.
type CoordIndex interface {
	// Lookup returns the coordinate for a stop title and whether one exists.
	// A miss is not an error: the stop is simply omitted from map rendering.
	Lookup(title string) (domain.LatLng, bool)
}

// StaticCoords is a CoordIndex backed by a fixed in-memory table.
type StaticCoords map[string]domain.LatLng

// Lookup implements CoordIndex.
func (c StaticCoords) Lookup(title string) (domain.LatLng, bool) {
	ll, ok := c[title]
	return ll, ok
}

// DefaultCoord is the fallback coordinate (central Jaipur, by the Albert Hall
// Museum) used when a wizard-confirmed stop has no entry in the lookup table.
var DefaultCoord = domain.LatLng{Lat: 26.9124, Lng: 75.7873}

// jaipurCoords maps every known Jaipur stop title to its coordinate.
var jaipurCoords = StaticCoords{
	"Amber Fort":                {Lat: 26.9855, Lng: 75.8513},
	"Panna Meena Ka Kund":       {Lat: 26.9902, Lng: 75.8523},
	"Jal Mahal":                 {Lat: 26.9535, Lng: 75.8466},
	"City Palace":               {Lat: 26.9258, Lng: 75.8237},
	"Jantar Mantar":             {Lat: 26.9249, Lng: 75.8246},
	"Hawa Mahal":                {Lat: 26.9239, Lng: 75.8267},
	"Nahargarh Fort":            {Lat: 26.9446, Lng: 75.812},
	"Jaigarh Fort":              {Lat: 26.9859, Lng: 75.8463},
	"Sisodia Rani Ka Bagh":      {Lat: 26.8728, Lng: 75.8469},
	"Galta Ji":                  {Lat: 26.9149, Lng: 75.856},
	"Albert Hall Museum":        {Lat: 26.9124, Lng: 75.7873},
	"Patrika Gate":              {Lat: 26.8059, Lng: 75.8227},
	"Chokhi Dhani":              {Lat: 26.7745, Lng: 75.8443},
	"Masala Chowk":              {Lat: 26.9167, Lng: 75.8301},
	"Bapu Bazaar":               {Lat: 26.9239, Lng: 75.8256},
	"World Trade Park":          {Lat: 26.9139, Lng: 75.7966},
	"Gaurav Tower":              {Lat: 26.9151, Lng: 75.7995},
	"Jawahar Circle":            {Lat: 26.9126, Lng: 75.8085},
	"City Palace & Jantar Mantar": {Lat: 26.9258, Lng: 75.8237},
}

// Jaipur returns the built-in coordinate index for Jaipur.
func Jaipur() CoordIndex {
	return jaipurCoords
}
