package reconcile

import (
	"sort"

	"github.com/asim/quadtree"

	"github.com/CHAITANYA-2002/city-trail/internal/domain"
	"github.com/CHAITANYA-2002/city-trail/internal/spatial"
)

// Index is a quadtree over one reconciled display set, supporting viewport
// and radius queries for map rendering. It is derived data: rebuild it from
// Build's output whenever the set changes, never store it back into trip state.
type Index struct {
	tree *quadtree.QuadTree
}

// NewIndex builds a quadtree covering the whole world and inserts every
// location with a usable coordinate.
func NewIndex(locs []domain.Location) *Index {
	center := quadtree.NewPoint(0, 0, nil)
	half := quadtree.NewPoint(90, 180, nil)
	tree := quadtree.New(quadtree.NewAABB(center, half), 0, nil)

	for i := range locs {
		loc := locs[i]
		tree.Insert(quadtree.NewPoint(loc.Latitude, loc.Longitude, loc))
	}
	return &Index{tree: tree}
}

// InBox returns the locations inside the viewport, in no particular order.
func (ix *Index) InBox(box domain.BoundingBox) []domain.Location {
	c := box.Center()
	center := quadtree.NewPoint(c.Lat, c.Lng, nil)
	half := quadtree.NewPoint((box.North-box.South)/2, (box.East-box.West)/2, nil)
	points := ix.tree.Search(quadtree.NewAABB(center, half))

	out := make([]domain.Location, 0, len(points))
	for _, pt := range points {
		loc, ok := pt.Data().(domain.Location)
		if !ok {
			continue
		}
		// The quadtree cell is an approximation of the box; re-check.
		if box.Contains(loc.Coord()) {
			out = append(out, loc)
		}
	}
	return out
}

// Near returns the locations within radiusM meters of origin, closest first.
func (ix *Index) Near(origin domain.LatLng, radiusM float64) []domain.Location {
	candidates := ix.InBox(spatial.BoxAround(origin, radiusM))

	type ranked struct {
		loc  domain.Location
		dist float64
	}
	var kept []ranked
	for _, loc := range candidates {
		d := spatial.Distance(origin, loc.Coord())
		if d > radiusM {
			continue
		}
		kept = append(kept, ranked{loc, d})
	}
	sort.Slice(kept, func(i, j int) bool { return kept[i].dist < kept[j].dist })

	out := make([]domain.Location, len(kept))
	for i, r := range kept {
		out[i] = r.loc
	}
	return out
}
