package components

import (
	"github.com/yohamta/donburi"

	"github.com/gravenhold/roomgen/assetpack"
	"github.com/gravenhold/roomgen/grid"
)

// PlacementData records which layout placement produced an entity:
// the resolved asset, the surface it fills, and the claimed footprint.
type PlacementData struct {
	AssetRef string
	Mesh     string // mesh resource path
	Surface  assetpack.Surface

	Anchor grid.Coord // bottom-left cell of the footprint
	CellsX int
	CellsY int
}

var Placement = donburi.NewComponentType[PlacementData]()
