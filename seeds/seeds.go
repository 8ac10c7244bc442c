// Package seeds defines the seed records that make a generated layout
// reproducible: one record per room, plus the floor and dungeon
// containers a save file persists. Records are pure data echoes of the
// inputs a generation actually used, after random-seed resolution.
package seeds

import (
	"time"

	"github.com/gravenhold/roomgen/grid"
)

// SaveVersion is stamped on every dungeon record so later loaders can
// migrate old saves.
const SaveVersion = 1

// RoomSeedRecord reproduces one room exactly: feed the same seed and
// shape back through generation and the layout comes out identical.
type RoomSeedRecord struct {
	Seed           int64      `json:"seed"`
	AnchorLocation grid.Coord `json:"anchorLocation"` // room position on the floor grid
	Rotation       int        `json:"rotation"`       // 0, 90, 180, or 270 degrees
	ShapeID        string     `json:"shapeId"`
}

// FloorSeedRecord reproduces one floor: its rooms, hallways, and the
// doorway cells that connect them.
type FloorSeedRecord struct {
	FloorIndex       int              `json:"floorIndex"`
	FloorSeed        int64            `json:"floorSeed"`
	RoomSeeds        []RoomSeedRecord `json:"roomSeeds"`
	HallwaySeeds     []int64          `json:"hallwaySeeds"`
	DoorwayPositions []grid.Coord     `json:"doorwayPositions"`
}

// DungeonSeedRecord is the top-level save container.
type DungeonSeedRecord struct {
	MasterSeed  int64             `json:"masterSeed"`
	FloorSeeds  []FloorSeedRecord `json:"floorSeeds"`
	GeneratedAt time.Time         `json:"generatedAt"`
	SaveVersion int               `json:"saveVersion"`
}

// NewDungeonRecord returns a versioned, timestamped container for one
// master seed.
func NewDungeonRecord(masterSeed int64) DungeonSeedRecord {
	return DungeonSeedRecord{
		MasterSeed:  masterSeed,
		GeneratedAt: time.Now().UTC(),
		SaveVersion: SaveVersion,
	}
}
