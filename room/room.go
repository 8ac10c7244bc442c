// Package room runs one full generation pass: shape, forced
// placements, weighted random fill, wall derivation. A pass is
// single-threaded and synchronous; every random draw comes from one
// seeded stream created at the start of the call, so a fixed seed
// reproduces the layout exactly.
package room

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/gravenhold/roomgen/assetpack"
	"github.com/gravenhold/roomgen/config"
	"github.com/gravenhold/roomgen/grid"
	"github.com/gravenhold/roomgen/placement"
	"github.com/gravenhold/roomgen/seeds"
	"github.com/gravenhold/roomgen/shape"
	"github.com/gravenhold/roomgen/walls"
)

// Params configures one generation pass.
type Params struct {
	Shape    shape.Descriptor
	CellSize float64   // world units per cell edge; clamped into range
	Origin   grid.Vec3 // world position of the room's (0,0) cell corner

	// Seed drives every random draw of the pass. With UseRandomSeed
	// set the seed is taken from the wall clock instead; the resolved
	// value lands in the result's seed record either way.
	Seed          int64
	UseRandomSeed bool

	// Anchor and Rotation are echoed into the seed record for the
	// floor planner; the pass itself generates in local space.
	Anchor   grid.Coord
	Rotation int

	Pack     *assetpack.Pack
	Resolver assetpack.Resolver // defaults to the pack's mesh table

	ForcedFloor   placement.Forced
	ForcedWall    placement.Forced
	ForcedCeiling placement.Forced

	// Doorways marks cell edges whose wall segment is suppressed in
	// favor of a door frame. Supplied by the doorway planner.
	Doorways map[grid.Coord][]grid.Direction
}

// Result is the output of one generation pass.
type Result struct {
	// Grid is the final floor occupancy snapshot, queryable for
	// doorway planning, minimaps, or debugging.
	Grid *grid.Store

	// Ceiling mirrors the silhouette with its own occupancy, filled by
	// the ceiling pool. Ceiling tiles never contend with floor tiles.
	Ceiling *grid.Store

	// Spawns is the ordered spawn-request list for the sink.
	Spawns []placement.SpawnRequest

	// Record reproduces this exact room.
	Record seeds.RoomSeedRecord

	// ForcedAllPlaced is false when any forced placement was rejected.
	// Informational only; rejections never abort a pass.
	ForcedAllPlaced bool
}

// Generate runs one pass. It returns an error only for structural
// problems (a malformed shape descriptor); every localized failure is
// logged and absorbed, leaving a valid, possibly partially empty grid.
func Generate(p Params) (*Result, error) {
	start := time.Now()

	seed := p.Seed
	if p.UseRandomSeed {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	coords, err := shape.Build(p.Shape)
	if err != nil {
		log.Printf("Error: room generation failed: %v", err)
		return nil, fmt.Errorf("room: build shape: %w", err)
	}

	cellSize := config.ClampCellSize(p.CellSize)
	store := grid.NewStore(cellSize, p.Origin)
	ceiling := grid.NewStore(cellSize, p.Origin)
	for _, c := range coords {
		store.AddCell(c)
		ceiling.AddCell(c)
	}
	for coord, dirs := range p.Doorways {
		for _, d := range dirs {
			store.SetDoorway(coord, d)
		}
	}

	pack := p.Pack
	if pack == nil {
		log.Printf("Warning: no asset pack supplied, all surfaces left unfilled")
		pack = &assetpack.Pack{}
	}
	resolver := p.Resolver
	if resolver == nil {
		resolver = assetpack.NewPackResolver(pack)
	}

	result := &Result{
		Grid:    store,
		Ceiling: ceiling,
		Record: seeds.RoomSeedRecord{
			Seed:           seed,
			AnchorLocation: p.Anchor,
			Rotation:       p.Rotation,
			ShapeID:        p.Shape.ID(),
		},
		ForcedAllPlaced: true,
	}

	// Forced placements first: designer intent beats random fill.
	// Forced wall pieces (pillars, braziers) occupy floor cells.
	for _, f := range []struct {
		forced  placement.Forced
		store   *grid.Store
		surface assetpack.Surface
		z       float64
	}{
		{p.ForcedFloor, store, assetpack.SurfaceFloor, 0},
		{p.ForcedWall, store, assetpack.SurfaceWall, 0},
		{p.ForcedCeiling, ceiling, assetpack.SurfaceCeiling, pack.Ceiling.HeightOffset},
	} {
		requests, ok := placement.ResolveForced(f.store, f.forced, f.surface, resolver, f.z)
		result.Spawns = append(result.Spawns, requests...)
		if !ok {
			result.ForcedAllPlaced = false
		}
	}

	engine := placement.NewEngine(rng, resolver)
	result.Spawns = append(result.Spawns,
		engine.FillSurface(store, pack.Floor.Tiles, assetpack.SurfaceFloor, 0)...)
	result.Spawns = append(result.Spawns,
		engine.FillSurface(ceiling, pack.Ceiling.Tiles, assetpack.SurfaceCeiling, pack.Ceiling.HeightOffset)...)

	walls.Derive(store)
	result.Spawns = append(result.Spawns, walls.PlanSpawns(store, pack.Wall, rng, resolver)...)

	log.Printf("Generated %s room: %d cells, %d spawns, seed %d (%s)",
		p.Shape.Kind, store.Size(), len(result.Spawns), seed, time.Since(start).Round(time.Microsecond))
	return result, nil
}
