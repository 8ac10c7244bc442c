package placement

import (
	"log"
	"sort"

	"github.com/gravenhold/roomgen/assetpack"
	"github.com/gravenhold/roomgen/grid"
)

// Forced maps an anchor coordinate (bottom-left cell of the footprint)
// to the spec placed there. Supplied by the caller before generation
// and never mutated here.
type Forced map[grid.Coord]assetpack.Spec

// ResolveForced applies every forced placement for one surface.
// Entries resolve in anchor order (Y, then X) so runs are
// reproducible. A placement whose footprint leaves the room or covers
// a non-Unoccupied cell is rejected with a warning and skipped; the
// rest continue. The returned flag is true only when nothing was
// rejected, and is informational only.
//
// A placement whose asset fails to resolve still claims its footprint
// but emits no spawn request, keeping occupancy bookkeeping consistent
// when assets are missing.
func ResolveForced(store *grid.Store, forced Forced, surface assetpack.Surface, resolver assetpack.Resolver, zOffset float64) ([]SpawnRequest, bool) {
	if len(forced) == 0 {
		return nil, true
	}

	anchors := make([]grid.Coord, 0, len(forced))
	for a := range forced {
		anchors = append(anchors, a)
	}
	sort.Slice(anchors, func(i, j int) bool {
		if anchors[i].Y != anchors[j].Y {
			return anchors[i].Y < anchors[j].Y
		}
		return anchors[i].X < anchors[j].X
	})

	var requests []SpawnRequest
	allPlaced := true
	for _, anchor := range anchors {
		spec := forced[anchor]
		w, h := spec.CellsX, spec.CellsY

		if !store.FootprintFits(anchor, w, h) {
			log.Printf("Warning: forced %s placement %q at %v rejected, %dx%d footprint conflicts",
				surface, spec.AssetRef, anchor, w, h)
			allPlaced = false
			continue
		}

		store.Reserve(anchor, w, h)
		asset, err := resolver.Resolve(spec.AssetRef)
		store.Commit(anchor, w, h)

		if err != nil {
			log.Printf("Warning: forced %s placement at %v claimed without spawn: %v",
				surface, anchor, err)
			continue
		}

		pos := store.Get(anchor).WorldPos.
			Add(PivotOffset(spec.Pivot, spec.CustomOffset, w, h, store.CellSize())).
			Add(grid.Vec3{Z: zOffset})
		requests = append(requests, SpawnRequest{
			Surface:  surface,
			Asset:    asset,
			Anchor:   anchor,
			CellsX:   w,
			CellsY:   h,
			Position: pos,
		})
	}
	return requests, allPlaced
}
