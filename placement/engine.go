package placement

import (
	"log"
	"math/rand"
	"sort"

	"github.com/gravenhold/roomgen/assetpack"
	"github.com/gravenhold/roomgen/grid"
)

// Engine fills the unoccupied cells of a surface with weighted random
// placements. One engine instance serves one generation pass and draws
// every random number from the single stream it was built with.
type Engine struct {
	rng      *rand.Rand
	resolver assetpack.Resolver
}

// NewEngine returns an engine over the generation's random stream.
func NewEngine(rng *rand.Rand, resolver assetpack.Resolver) *Engine {
	return &Engine{rng: rng, resolver: resolver}
}

// FillSurface runs both fill passes over the store.
//
// Pass 1 walks every unoccupied cell in grid order and tries the
// multi-cell specs largest-first: a spec places when its footprint
// fits and a draw lands under selectionWeight/100. Pass 2 covers the
// remaining cells with 1×1 specs chosen by cumulative weight. Cells
// that no spec fits or weights out stay Unoccupied; with a non-empty
// 1×1 pool Pass 2 leaves none behind.
func (e *Engine) FillSurface(store *grid.Store, pool []assetpack.Spec, surface assetpack.Surface, zOffset float64) []SpawnRequest {
	if len(pool) == 0 {
		log.Printf("Warning: no %s specs supplied, surface left unfilled", surface)
		return nil
	}

	var multi, singles []assetpack.Spec
	for _, s := range pool {
		if s.Area() > 1 {
			multi = append(multi, s)
		} else {
			singles = append(singles, s)
		}
	}
	// Largest first; ties break on asset ref so the attempt order is
	// stable run to run.
	sort.SliceStable(multi, func(i, j int) bool {
		if multi[i].Area() != multi[j].Area() {
			return multi[i].Area() > multi[j].Area()
		}
		return multi[i].AssetRef < multi[j].AssetRef
	})

	var requests []SpawnRequest
	requests = e.fillMulti(store, multi, surface, zOffset, requests)
	requests = e.fillSingles(store, singles, surface, zOffset, requests)
	return requests
}

func (e *Engine) fillMulti(store *grid.Store, multi []assetpack.Spec, surface assetpack.Surface, zOffset float64, requests []SpawnRequest) []SpawnRequest {
	if len(multi) == 0 {
		return requests
	}
	for _, coord := range store.SortedCoords() {
		// A cell can be claimed under an earlier anchor's footprint;
		// re-check before attempting anything here.
		if store.Get(coord).State != grid.Unoccupied {
			continue
		}
		for _, spec := range multi {
			w, h := spec.CellsX, spec.CellsY
			rotated := false
			if !store.FootprintFits(coord, w, h) {
				if !spec.AllowRotation90 || w == h {
					continue
				}
				if !store.FootprintFits(coord, h, w) {
					continue
				}
				w, h = h, w
				rotated = true
			}
			// The weight draw only happens once a footprint fits.
			if e.rng.Float64() >= spec.SelectionWeight/100 {
				continue
			}

			store.Claim(coord, w, h)
			rotation := 0.0
			if rotated {
				rotation = 90
			}
			if spec.AllowRotation180 && e.rng.Intn(2) == 1 {
				rotation += 180
			}
			requests = e.appendRequest(requests, store, spec, surface, coord, w, h, rotation, zOffset)
			break
		}
	}
	return requests
}

func (e *Engine) fillSingles(store *grid.Store, singles []assetpack.Spec, surface assetpack.Surface, zOffset float64, requests []SpawnRequest) []SpawnRequest {
	unfilled := 0
	for _, coord := range store.SortedCoords() {
		if store.Get(coord).State != grid.Unoccupied {
			continue
		}
		spec, ok := PickWeighted(e.rng, singles)
		if !ok {
			unfilled++
			continue
		}

		store.Claim(coord, 1, 1)
		rotation := 0.0
		if spec.AllowRotation180 && e.rng.Intn(2) == 1 {
			rotation = 180
		}
		requests = e.appendRequest(requests, store, spec, surface, coord, 1, 1, rotation, zOffset)
	}
	if unfilled > 0 {
		log.Printf("Warning: %d %s cells left unfilled, pool has no selectable 1x1 specs", unfilled, surface)
	}
	return requests
}

func (e *Engine) appendRequest(requests []SpawnRequest, store *grid.Store, spec assetpack.Spec, surface assetpack.Surface, anchor grid.Coord, w, h int, rotation, zOffset float64) []SpawnRequest {
	asset, err := e.resolver.Resolve(spec.AssetRef)
	if err != nil {
		// The footprint stays claimed; only the visual is missing.
		log.Printf("Warning: %s placement at %v claimed without spawn: %v", surface, anchor, err)
		return requests
	}
	pos := store.Get(anchor).WorldPos.
		Add(PivotOffset(spec.Pivot, spec.CustomOffset, w, h, store.CellSize())).
		Add(grid.Vec3{Z: zOffset})
	return append(requests, SpawnRequest{
		Surface:  surface,
		Asset:    asset,
		Anchor:   anchor,
		CellsX:   w,
		CellsY:   h,
		Rotation: rotation,
		Position: pos,
	})
}

// PickWeighted draws one spec from the pool by cumulative selection
// weight. It reports false when the pool is empty or the weights sum
// to zero.
func PickWeighted(rng *rand.Rand, specs []assetpack.Spec) (assetpack.Spec, bool) {
	total := 0.0
	for _, s := range specs {
		total += s.SelectionWeight
	}
	if total <= 0 {
		return assetpack.Spec{}, false
	}

	r := rng.Float64() * total
	cum := 0.0
	for _, s := range specs {
		cum += s.SelectionWeight
		if r < cum {
			return s, true
		}
	}
	// Float accumulation can land r on the boundary; the last spec
	// with any weight takes it.
	for i := len(specs) - 1; i >= 0; i-- {
		if specs[i].SelectionWeight > 0 {
			return specs[i], true
		}
	}
	return assetpack.Spec{}, false
}
