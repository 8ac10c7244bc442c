package room

import (
	"errors"
	"reflect"
	"testing"

	"github.com/gravenhold/roomgen/assetpack"
	"github.com/gravenhold/roomgen/grid"
	"github.com/gravenhold/roomgen/placement"
	"github.com/gravenhold/roomgen/shape"
)

func testPack() *assetpack.Pack {
	p := &assetpack.Pack{
		Name: "test",
		Floor: assetpack.FloorSet{
			Tiles: []assetpack.Spec{
				{AssetRef: "floor.big", Pivot: assetpack.PivotCenterXY, CellsX: 2, CellsY: 2, SelectionWeight: 1},
				{AssetRef: "floor.small", Pivot: assetpack.PivotCenterXY, CellsX: 1, CellsY: 1, SelectionWeight: 1},
			},
		},
		Wall: assetpack.WallSet{
			Segments: []assetpack.Spec{
				{AssetRef: "wall.plain", Pivot: assetpack.PivotBottomBackCenter, CellsX: 1, CellsY: 1, SelectionWeight: 1},
			},
		},
		Ceiling: assetpack.CeilingSet{
			Tiles: []assetpack.Spec{
				{AssetRef: "ceiling.plain", Pivot: assetpack.PivotCenterXY, CellsX: 1, CellsY: 1, SelectionWeight: 1},
			},
			HeightOffset: 300,
		},
		Meshes: map[string]string{
			"floor.big":     "meshes/floor_big",
			"floor.small":   "meshes/floor_small",
			"wall.plain":    "meshes/wall_plain",
			"ceiling.plain": "meshes/ceiling_plain",
		},
	}
	p.Normalize()
	return p
}

func baseParams(seed int64) Params {
	return Params{
		Shape:    shape.NewRectangle(5, 5),
		CellSize: 100,
		Seed:     seed,
		Pack:     testPack(),
	}
}

func TestGenerateFillsEveryFloorCell(t *testing.T) {
	result, err := Generate(baseParams(42))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if result.Grid.Size() != 25 {
		t.Fatalf("grid has %d cells, want 25", result.Grid.Size())
	}
	for _, coord := range result.Grid.SortedCoords() {
		if state := result.Grid.Get(coord).State; state != grid.Occupied {
			t.Errorf("cell %v = %s, want Occupied", coord, state)
		}
	}
	for _, coord := range result.Ceiling.SortedCoords() {
		if state := result.Ceiling.Get(coord).State; state != grid.Occupied {
			t.Errorf("ceiling cell %v = %s, want Occupied", coord, state)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	first, err := Generate(baseParams(42))
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := Generate(baseParams(42))
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	if !reflect.DeepEqual(first.Spawns, second.Spawns) {
		t.Fatalf("same seed produced different spawn lists: %d vs %d requests",
			len(first.Spawns), len(second.Spawns))
	}
	for _, coord := range first.Grid.SortedCoords() {
		a, b := first.Grid.Get(coord), second.Grid.Get(coord)
		if a.State != b.State || a.Walls != b.Walls {
			t.Fatalf("cell %v diverged: %+v vs %+v", coord, a, b)
		}
	}
}

func TestGenerateNoOverlap(t *testing.T) {
	result, err := Generate(baseParams(42))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claimed := make(map[grid.Coord]int)
	for i, req := range result.Spawns {
		if req.Surface != assetpack.SurfaceFloor {
			continue
		}
		for dy := 0; dy < req.CellsY; dy++ {
			for dx := 0; dx < req.CellsX; dx++ {
				c := grid.Coord{X: req.Anchor.X + dx, Y: req.Anchor.Y + dy}
				if prev, ok := claimed[c]; ok {
					t.Fatalf("cell %v claimed by spawns %d and %d", c, prev, i)
				}
				claimed[c] = i
			}
		}
	}
	if len(claimed) != 25 {
		t.Fatalf("floor spawns cover %d cells, want 25", len(claimed))
	}
}

func TestGenerateForcedPrecedence(t *testing.T) {
	p := baseParams(42)
	p.ForcedFloor = placement.Forced{
		{X: 1, Y: 1}: {AssetRef: "floor.big", Pivot: assetpack.PivotCenterXY, CellsX: 2, CellsY: 2, SelectionWeight: 1},
	}
	result, err := Generate(p)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !result.ForcedAllPlaced {
		t.Fatalf("forced placement reported rejected")
	}

	// The first spawn is the forced one; random fill never displaces it.
	forced := result.Spawns[0]
	if forced.Anchor != (grid.Coord{X: 1, Y: 1}) || forced.Asset.Ref != "floor.big" {
		t.Fatalf("first spawn = %+v, want forced floor.big at (1,1)", forced)
	}
	handle := result.Grid.Get(grid.Coord{X: 1, Y: 1}).Occupant
	for _, c := range []grid.Coord{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}} {
		cell := result.Grid.Get(c)
		if cell.State != grid.Occupied || cell.Occupant != handle {
			t.Errorf("forced footprint cell %v = %s occupant %d, want shared occupant %d",
				c, cell.State, cell.Occupant, handle)
		}
	}
}

func TestGenerateForcedConflictRejected(t *testing.T) {
	p := baseParams(42)
	p.ForcedFloor = placement.Forced{
		{X: 0, Y: 0}: {AssetRef: "floor.big", CellsX: 2, CellsY: 2, SelectionWeight: 1},
		{X: 1, Y: 1}: {AssetRef: "floor.big", CellsX: 2, CellsY: 2, SelectionWeight: 1},
		{X: 4, Y: 4}: {AssetRef: "floor.big", CellsX: 2, CellsY: 2, SelectionWeight: 1},
	}
	result, err := Generate(p)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	// (0,0) wins in anchor order, (1,1) overlaps it, (4,4) leaves the
	// grid. Rejections are localized; the rest of the pass completes.
	if result.ForcedAllPlaced {
		t.Fatalf("conflicting forced placements reported all placed")
	}
	for _, coord := range result.Grid.SortedCoords() {
		if result.Grid.Get(coord).State != grid.Occupied {
			t.Errorf("cell %v left unoccupied after rejected forced placements", coord)
		}
	}
}

func TestGenerateStructuralErrorAbortsEmpty(t *testing.T) {
	p := baseParams(1)
	p.Shape = shape.NewCustom([]int{1, 1, 1}, 2, 2)
	result, err := Generate(p)
	if !errors.Is(err, shape.ErrLayoutSizeMismatch) {
		t.Fatalf("error = %v, want layout size mismatch", err)
	}
	if result != nil {
		t.Fatalf("structural failure still returned a result")
	}
}

func TestGenerateRandomSeedRecorded(t *testing.T) {
	p := baseParams(0)
	p.UseRandomSeed = true
	p.Anchor = grid.Coord{X: 2, Y: 3}
	p.Rotation = 90

	result, err := Generate(p)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	rec := result.Record
	if rec.Seed == 0 {
		t.Errorf("random seed not resolved into record")
	}
	if rec.AnchorLocation != (grid.Coord{X: 2, Y: 3}) || rec.Rotation != 90 {
		t.Errorf("record did not echo anchor/rotation: %+v", rec)
	}
	if rec.ShapeID != "rectangle-5x5" {
		t.Errorf("record shape id = %q", rec.ShapeID)
	}

	// The resolved seed reproduces the run exactly.
	replay := baseParams(rec.Seed)
	replayed, err := Generate(replay)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if !reflect.DeepEqual(result.Spawns, replayed.Spawns) {
		t.Fatalf("recorded seed did not reproduce the spawn list")
	}
}

func TestGenerateNilPackLeavesCellsUnfilled(t *testing.T) {
	p := Params{Shape: shape.NewRectangle(2, 2), CellSize: 100, Seed: 1}
	result, err := Generate(p)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(result.Spawns) != 0 {
		t.Fatalf("no pack but %d spawns", len(result.Spawns))
	}
	for _, coord := range result.Grid.SortedCoords() {
		if result.Grid.Get(coord).State != grid.Unoccupied {
			t.Errorf("cell %v filled without any specs", coord)
		}
	}
}

func TestGenerateCeilingHeightOffset(t *testing.T) {
	result, err := Generate(baseParams(42))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	found := false
	for _, req := range result.Spawns {
		if req.Surface != assetpack.SurfaceCeiling {
			continue
		}
		found = true
		if req.Position.Z != 300 {
			t.Fatalf("ceiling spawn at z=%v, want 300", req.Position.Z)
		}
	}
	if !found {
		t.Fatalf("no ceiling spawns emitted")
	}
}

func TestGenerateDoorwayFrames(t *testing.T) {
	p := baseParams(42)
	p.Pack.Wall.DoorFrames = []assetpack.Spec{
		{AssetRef: "wall.plain", Pivot: assetpack.PivotBottomBackCenter, CellsX: 1, CellsY: 1, SelectionWeight: 1},
	}
	p.Doorways = map[grid.Coord][]grid.Direction{
		{X: 2, Y: 0}: {grid.South},
	}
	result, err := Generate(p)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	frames := 0
	for _, req := range result.Spawns {
		if req.Surface == assetpack.SurfaceDoor {
			frames++
			if req.Anchor != (grid.Coord{X: 2, Y: 0}) {
				t.Errorf("door frame at %v, want (2,0)", req.Anchor)
			}
		}
	}
	if frames != 1 {
		t.Fatalf("got %d door frames, want 1", frames)
	}
	if !result.Grid.Get(grid.Coord{X: 2, Y: 0}).Walls[grid.South] {
		t.Fatalf("doorway edge lost its wall flag")
	}
}
