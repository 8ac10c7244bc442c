package shape

import (
	"errors"
	"testing"

	"github.com/gravenhold/roomgen/grid"
)

func coordSet(coords []grid.Coord) map[grid.Coord]bool {
	m := make(map[grid.Coord]bool, len(coords))
	for _, c := range coords {
		m[c] = true
	}
	return m
}

func TestBuildRectangle(t *testing.T) {
	coords, err := Build(NewRectangle(5, 3))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(coords) != 15 {
		t.Fatalf("got %d cells, want 15", len(coords))
	}

	set := coordSet(coords)
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			if !set[grid.Coord{X: x, Y: y}] {
				t.Fatalf("missing cell (%d,%d)", x, y)
			}
		}
	}
	if set[grid.Coord{X: 5, Y: 0}] || set[grid.Coord{X: 0, Y: 3}] {
		t.Fatalf("rectangle emitted cells outside its bounds")
	}
}

func TestBuildRectangleRejectsBadDims(t *testing.T) {
	if _, err := Build(NewRectangle(0, 4)); !errors.Is(err, ErrBadDimensions) {
		t.Fatalf("zero width error = %v", err)
	}
	if _, err := Build(NewRectangle(3, -1)); !errors.Is(err, ErrBadDimensions) {
		t.Fatalf("negative height error = %v", err)
	}
}

func TestBuildCustomLayout(t *testing.T) {
	// Diagonal with a hole in the middle row.
	layout := []int{
		1, 0, 0,
		0, 0, 0,
		0, 0, 1,
	}
	coords, err := Build(NewCustom(layout, 3, 3))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(coords) != 2 {
		t.Fatalf("got %d cells, want 2", len(coords))
	}

	set := coordSet(coords)
	if !set[grid.Coord{X: 0, Y: 0}] || !set[grid.Coord{X: 2, Y: 2}] {
		t.Fatalf("wrong cells emitted: %v", coords)
	}
}

func TestBuildCustomLayoutCardinality(t *testing.T) {
	layout := []int{
		1, 1, 0, 1,
		0, 1, 1, 0,
	}
	coords, err := Build(NewCustom(layout, 4, 2))
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	live := 0
	for _, v := range layout {
		if v == 1 {
			live++
		}
	}
	if len(coords) != live {
		t.Fatalf("emitted %d cells, layout has %d live entries", len(coords), live)
	}
}

func TestBuildCustomLayoutSizeMismatch(t *testing.T) {
	_, err := Build(NewCustom([]int{1, 1, 1}, 2, 2))
	if !errors.Is(err, ErrLayoutSizeMismatch) {
		t.Fatalf("error = %v, want ErrLayoutSizeMismatch", err)
	}
}

func TestBuildCompoundExtensionCounts(t *testing.T) {
	tpl := Template{ExtensionWidth: 2, ExtensionHeight: 2, Attach: AttachStart}
	main := 6 * 4

	// One 2x2 extension for L, start+end for T, all three slots for U;
	// the slots are disjoint on a 6-wide main.
	tests := []struct {
		kind Kind
		want int
	}{
		{LShape, main + 4},
		{TShape, main + 2*4},
		{UShape, main + 3*4},
	}
	for _, tt := range tests {
		coords, err := Build(NewCompound(tt.kind, 6, 4, tpl))
		if err != nil {
			t.Fatalf("%v: %v", tt.kind, err)
		}
		if len(coords) != tt.want {
			t.Errorf("%v: got %d cells, want %d", tt.kind, len(coords), tt.want)
		}
	}
}

func TestBuildCompoundAttachPoints(t *testing.T) {
	tpl := Template{ExtensionWidth: 2, ExtensionHeight: 1}

	tests := []struct {
		attach AttachPoint
		wantX  int
	}{
		{AttachStart, 0},
		{AttachMiddle, 2}, // (6-2)/2
		{AttachEnd, 4},
	}
	for _, tt := range tests {
		tpl.Attach = tt.attach
		coords, err := Build(NewCompound(LShape, 6, 3, tpl))
		if err != nil {
			t.Fatalf("attach %d: %v", tt.attach, err)
		}
		set := coordSet(coords)
		if !set[grid.Coord{X: tt.wantX, Y: 3}] || !set[grid.Coord{X: tt.wantX + 1, Y: 3}] {
			t.Errorf("attach %d: extension not at x=%d: %v", tt.attach, tt.wantX, coords)
		}
	}
}

func TestBuildCompoundOverlapDedup(t *testing.T) {
	// Extensions wider than the slot spacing overlap on a narrow main;
	// the union must not double-count cells.
	tpl := Template{ExtensionWidth: 3, ExtensionHeight: 2}
	coords, err := Build(NewCompound(UShape, 4, 3, tpl))
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	seen := make(map[grid.Coord]int)
	for _, c := range coords {
		seen[c]++
		if seen[c] > 1 {
			t.Fatalf("cell %v emitted twice", c)
		}
	}
}

func TestBuildOrderedByYThenX(t *testing.T) {
	coords, err := Build(NewCompound(TShape, 5, 2, DefaultTemplate()))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for i := 1; i < len(coords); i++ {
		a, b := coords[i-1], coords[i]
		if a.Y > b.Y || (a.Y == b.Y && a.X >= b.X) {
			t.Fatalf("coords out of order at %d: %v then %v", i, a, b)
		}
	}
}

func TestDescriptorID(t *testing.T) {
	if got := NewRectangle(5, 5).ID(); got != "rectangle-5x5" {
		t.Errorf("rectangle id = %q", got)
	}
	if got := NewCustom(nil, 7, 2).ID(); got != "custom-7x2" {
		t.Errorf("custom id = %q", got)
	}
	if got := NewCompound(UShape, 8, 4, DefaultTemplate()).ID(); got != "u-8x4-ext3x3" {
		t.Errorf("compound id = %q", got)
	}
}
