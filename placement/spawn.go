// Package placement fills a room grid: forced placements first, then
// weighted random fill, emitting the spawn requests a sink consumes.
package placement

import (
	"github.com/gravenhold/roomgen/assetpack"
	"github.com/gravenhold/roomgen/grid"
)

// SpawnRequest asks the spawn sink to place one resolved asset. It is
// created during generation, never mutated, and discarded once the
// sink has consumed it.
type SpawnRequest struct {
	Surface assetpack.Surface
	Asset   assetpack.Asset

	// Anchor is the bottom-left cell of the claimed footprint.
	Anchor grid.Coord

	// CellsX and CellsY are the footprint as placed, after any
	// rotation.
	CellsX int
	CellsY int

	// Rotation is the asset yaw in degrees: 0, 90, 180, or 270.
	Rotation float64

	// Position is the world transform origin: the anchor cell's world
	// position plus the pivot offset.
	Position grid.Vec3
}
