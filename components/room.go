package components

import (
	"github.com/yohamta/donburi"

	"github.com/gravenhold/roomgen/grid"
)

// RoomData summarizes one generated room for queries against the
// world: its reproduction seed, silhouette, and cell accounting.
type RoomData struct {
	ShapeID  string
	Seed     int64
	CellSize float64

	Cells    int // silhouette cell count
	MinCoord grid.Coord
	MaxCoord grid.Coord
}

var Room = donburi.NewComponentType[RoomData]()
