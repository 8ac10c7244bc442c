// Package assetpack defines the placeable-asset pools a room draws
// from: per-surface placement specs plus wall and ceiling set data.
// Packs are plain data loaded from JSON; the placement engine consumes
// them read-only.
package assetpack

import (
	"fmt"
	"log"

	"github.com/gravenhold/roomgen/config"
	"github.com/gravenhold/roomgen/grid"
)

// Surface labels which pool a placement came from.
type Surface int

const (
	SurfaceFloor Surface = iota
	SurfaceWall
	SurfaceCeiling
	SurfaceDoor
)

var surfaceNames = [...]string{"floor", "wall", "ceiling", "door"}

func (s Surface) String() string {
	if s < 0 || int(s) >= len(surfaceNames) {
		return fmt.Sprintf("Surface(%d)", int(s))
	}
	return surfaceNames[s]
}

// Pivot names where an asset's origin sits relative to its footprint.
type Pivot string

const (
	// PivotCenterXY centers the asset over its full footprint, used
	// for floor and ceiling tiles.
	PivotCenterXY Pivot = "centerXY"
	// PivotBottomBackCenter centers on X with the back face flush to
	// the interior-facing cell edge, used for walls and door frames.
	PivotBottomBackCenter Pivot = "bottomBackCenter"
	// PivotBottomCenter computes the same offset as PivotCenterXY.
	// The name is kept distinct for asset authoring.
	PivotBottomCenter Pivot = "bottomCenter"
	// PivotCustom uses the spec's CustomOffset verbatim.
	PivotCustom Pivot = "custom"
)

// Spec describes one placeable visual unit.
type Spec struct {
	AssetRef     string    `json:"assetRef"`
	Pivot        Pivot     `json:"pivot"`
	CustomOffset grid.Vec3 `json:"customOffset"`

	CellsX int `json:"cellsX"`
	CellsY int `json:"cellsY"`

	SelectionWeight float64 `json:"selectionWeight"`

	AllowRotation90  bool `json:"allowRotation90"`
	AllowRotation180 bool `json:"allowRotation180"`
}

// Area returns the footprint cell count.
func (s Spec) Area() int {
	return s.CellsX * s.CellsY
}

// FloorSet is the floor tile pool.
type FloorSet struct {
	Tiles           []Spec `json:"tiles"`
	DefaultMaterial string `json:"defaultMaterial"`
}

// WallSet carries straight segments plus the corner and door-frame
// pools. Corners and door frames are selected by a later pass; the
// pools are validated and carried here so packs author them up front.
type WallSet struct {
	Segments     []Spec `json:"segments"`
	InnerCorners []Spec `json:"innerCorners"`
	OuterCorners []Spec `json:"outerCorners"`
	DoorFrames   []Spec `json:"doorFrames"`

	DefaultMaterial string `json:"defaultMaterial"`
}

// CeilingSet is the ceiling tile pool with its height offset.
type CeilingSet struct {
	Tiles []Spec `json:"tiles"`

	// HeightOffset is the floor-to-ceiling distance in world units.
	HeightOffset float64 `json:"heightOffset"`

	DefaultMaterial string `json:"defaultMaterial"`
}

// Pack bundles every pool one room generation draws from.
type Pack struct {
	Name string `json:"name"`

	Floor   FloorSet   `json:"floor"`
	Wall    WallSet    `json:"wall"`
	Ceiling CeilingSet `json:"ceiling"`

	// Meshes maps asset refs to mesh resource paths for the registry
	// resolver.
	Meshes map[string]string `json:"meshes"`
}

// Normalize clamps every spec into its legal ranges and fills
// defaults. Out-of-range values are pulled to the nearest bound, the
// way the authoring surface would.
func (p *Pack) Normalize() {
	normalizePool(p.Name, "floor", p.Floor.Tiles)
	normalizePool(p.Name, "wall segment", p.Wall.Segments)
	normalizePool(p.Name, "inner corner", p.Wall.InnerCorners)
	normalizePool(p.Name, "outer corner", p.Wall.OuterCorners)
	normalizePool(p.Name, "door frame", p.Wall.DoorFrames)
	normalizePool(p.Name, "ceiling", p.Ceiling.Tiles)

	p.Ceiling.HeightOffset = config.ClampCeilingHeight(p.Ceiling.HeightOffset)
}

func normalizePool(pack, pool string, specs []Spec) {
	for i := range specs {
		s := &specs[i]
		if s.AssetRef == "" {
			log.Printf("Warning: pack %q %s spec %d has no asset ref", pack, pool, i)
		}
		if s.Pivot == "" {
			s.Pivot = PivotCenterXY
		}
		switch s.Pivot {
		case PivotCenterXY, PivotBottomBackCenter, PivotBottomCenter, PivotCustom:
		default:
			log.Printf("Warning: pack %q %s spec %q has unknown pivot %q, using centerXY",
				pack, pool, s.AssetRef, s.Pivot)
			s.Pivot = PivotCenterXY
		}
		s.CellsX = config.ClampFootprint(s.CellsX)
		s.CellsY = config.ClampFootprint(s.CellsY)
		s.SelectionWeight = config.ClampWeight(s.SelectionWeight)
	}
}
