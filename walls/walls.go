// Package walls derives boundary wall flags from cell adjacency and
// plans the wall-segment spawns along the room perimeter. It runs after
// all floor placement is final: walls depend on final occupancy, not on
// the shape alone, so compound and custom silhouettes need no special
// casing.
package walls

import (
	"log"
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"github.com/gravenhold/roomgen/assetpack"
	"github.com/gravenhold/roomgen/grid"
	"github.com/gravenhold/roomgen/placement"
)

// Derive recomputes every occupied cell's four wall flags: a wall faces
// each direction whose neighbor is absent from the store or not
// Occupied. Non-occupied cells have their flags cleared.
func Derive(store *grid.Store) {
	for _, coord := range store.SortedCoords() {
		cell := store.Get(coord)
		if cell.State != grid.Occupied {
			cell.Walls = [grid.DirectionCount]bool{}
			continue
		}
		for d := grid.Direction(0); d < grid.DirectionCount; d++ {
			neighbor := store.Get(coord.Add(d.Offset()))
			cell.Walls[d] = neighbor == nil || neighbor.State != grid.Occupied
		}
	}
}

// PlanSpawns emits one spawn request per walled cell edge, choosing a
// straight segment from the pool by selection weight. Cells iterate in
// grid order and directions in declaration order, so a fixed stream
// reproduces the same segment list.
//
// A doorway edge keeps its wall flag but suppresses the segment spawn;
// a door frame from the set's frame pool spawns there instead.
func PlanSpawns(store *grid.Store, set assetpack.WallSet, rng *rand.Rand, resolver assetpack.Resolver) []placement.SpawnRequest {
	if len(set.Segments) == 0 {
		log.Printf("Warning: no wall segment specs supplied, perimeter left unfilled")
		return nil
	}

	var requests []placement.SpawnRequest
	doorways := mapset.New[edge]()
	for _, coord := range store.SortedCoords() {
		cell := store.Get(coord)
		if cell.State != grid.Occupied {
			continue
		}
		for d := grid.Direction(0); d < grid.DirectionCount; d++ {
			if !cell.Walls[d] {
				continue
			}
			if cell.Doorways[d] {
				doorways.Put(edge{coord: coord, dir: d})
				continue
			}
			spec, ok := placement.PickWeighted(rng, set.Segments)
			if !ok {
				log.Printf("Warning: wall segment pool has no selectable specs, edge %v %s left unfilled", coord, d)
				continue
			}
			if req, ok := edgeRequest(store, cell, d, spec, resolver); ok {
				requests = append(requests, req)
			}
		}
	}

	requests = append(requests, planDoorFrames(store, set, doorways, resolver)...)
	return requests
}

// edge identifies one walled cell edge.
type edge struct {
	coord grid.Coord
	dir   grid.Direction
}

// planDoorFrames places a frame on every doorway edge. Frame selection
// is a placeholder: the first frame spec always wins.
// TODO: pick frames by doorway width once multi-cell doorways land.
func planDoorFrames(store *grid.Store, set assetpack.WallSet, doorways mapset.Set[edge], resolver assetpack.Resolver) []placement.SpawnRequest {
	if doorways.Size() == 0 {
		return nil
	}
	if len(set.DoorFrames) == 0 {
		log.Printf("Warning: %d doorway edges but no door frame specs, frames skipped", doorways.Size())
		return nil
	}
	spec := set.DoorFrames[0]

	var requests []placement.SpawnRequest
	for _, coord := range store.SortedCoords() {
		cell := store.Get(coord)
		for d := grid.Direction(0); d < grid.DirectionCount; d++ {
			if !doorways.Has(edge{coord: coord, dir: d}) {
				continue
			}
			if req, ok := edgeRequest(store, cell, d, spec, resolver); ok {
				req.Surface = assetpack.SurfaceDoor
				requests = append(requests, req)
			}
		}
	}
	return requests
}

// edgeRequest builds the spawn request for one segment or frame on the
// cell edge facing d. The asset sits at the edge midpoint, yawed to
// face out of the room; its back face lands flush with the
// interior-facing cell edge, matching the bottom-back-center pivot the
// wall meshes are authored with.
func edgeRequest(store *grid.Store, cell *grid.Cell, d grid.Direction, spec assetpack.Spec, resolver assetpack.Resolver) (placement.SpawnRequest, bool) {
	asset, err := resolver.Resolve(spec.AssetRef)
	if err != nil {
		log.Printf("Warning: wall edge %v %s skipped: %v", cell.Coord, d, err)
		return placement.SpawnRequest{}, false
	}

	half := store.CellSize() / 2
	step := d.Offset()
	pos := cell.WorldPos.Add(grid.Vec3{X: float64(step.X) * half, Y: float64(step.Y) * half})
	if spec.Pivot == assetpack.PivotCustom {
		pos = pos.Add(spec.CustomOffset)
	}

	return placement.SpawnRequest{
		Surface:  assetpack.SurfaceWall,
		Asset:    asset,
		Anchor:   cell.Coord,
		CellsX:   spec.CellsX,
		CellsY:   spec.CellsY,
		Rotation: d.Angle(),
		Position: pos,
	}, true
}
