package roomlayout

import (
	"errors"
	"os"
	"testing"

	"github.com/gravenhold/roomgen/grid"
	"github.com/gravenhold/roomgen/shape"
)

func TestLoadCrossLayout(t *testing.T) {
	layout, err := Load(os.DirFS("testdata"), "cross.tmx")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	coords, err := shape.Build(layout.Descriptor)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(coords) != 5 {
		t.Fatalf("got %d cells, want 5", len(coords))
	}

	// TMX rows flip: the map's middle row is grid row 1, the cross
	// arms land on the grid's vertical axis.
	want := map[grid.Coord]bool{
		{X: 1, Y: 0}: true,
		{X: 0, Y: 1}: true,
		{X: 1, Y: 1}: true,
		{X: 2, Y: 1}: true,
		{X: 1, Y: 2}: true,
	}
	for _, c := range coords {
		if !want[c] {
			t.Errorf("unexpected cell %v", c)
		}
	}
}

func TestLoadForcedPlacements(t *testing.T) {
	layout, err := Load(os.DirFS("testdata"), "cross.tmx")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	// Object at (32,32) on a 3-high map sits in cell (1,1).
	spec, ok := layout.ForcedFloor[grid.Coord{X: 1, Y: 1}]
	if !ok {
		t.Fatalf("forced floor placement missing; map = %v", layout.ForcedFloor)
	}
	if spec.AssetRef != "floor.statue" || spec.CellsX != 1 || spec.CellsY != 1 {
		t.Fatalf("forced spec = %+v", spec)
	}

	// The ceiling object has no properties; its name becomes the ref
	// and the footprint defaults to 1x1.
	ceiling, ok := layout.ForcedCeiling[grid.Coord{X: 1, Y: 2}]
	if !ok {
		t.Fatalf("forced ceiling placement missing; map = %v", layout.ForcedCeiling)
	}
	if ceiling.AssetRef != "chandelier" || ceiling.CellsX != 1 || ceiling.CellsY != 1 {
		t.Fatalf("ceiling spec = %+v", ceiling)
	}
	if layout.ForcedWall != nil {
		t.Fatalf("unexpected forced wall placements: %v", layout.ForcedWall)
	}
}

func TestLoadEmptyLayout(t *testing.T) {
	if _, err := Load(os.DirFS("testdata"), "empty.tmx"); !errors.Is(err, ErrEmptyLayout) {
		t.Fatalf("error = %v, want empty layout", err)
	}
}

func TestLoadNoCellLayer(t *testing.T) {
	if _, err := Load(os.DirFS("testdata"), "nolayer.tmx"); !errors.Is(err, ErrNoCellLayer) {
		t.Fatalf("error = %v, want no cell layer", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(os.DirFS("testdata"), "nope.tmx"); err == nil {
		t.Fatalf("missing file did not error")
	}
}
