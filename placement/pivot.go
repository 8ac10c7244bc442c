package placement

import (
	"github.com/gravenhold/roomgen/assetpack"
	"github.com/gravenhold/roomgen/grid"
)

// PivotOffset converts a pivot convention and a placed footprint into
// the world-space offset added to the anchor cell's position. cellsX
// and cellsY are the footprint as placed, after any rotation.
func PivotOffset(pivot assetpack.Pivot, custom grid.Vec3, cellsX, cellsY int, cellSize float64) grid.Vec3 {
	switch pivot {
	case assetpack.PivotBottomBackCenter:
		// Centered on X, back face flush with the interior-facing
		// cell edge.
		return grid.Vec3{X: float64(cellsX) * cellSize / 2}
	case assetpack.PivotCustom:
		return custom
	default:
		// CenterXY and BottomCenter share the footprint-centering
		// offset.
		return grid.Vec3{
			X: float64(cellsX) * cellSize / 2,
			Y: float64(cellsY) * cellSize / 2,
		}
	}
}
