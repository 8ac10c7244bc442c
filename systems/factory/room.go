package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/gravenhold/roomgen/archetypes"
	"github.com/gravenhold/roomgen/components"
	"github.com/gravenhold/roomgen/grid"
	"github.com/gravenhold/roomgen/seeds"
)

// CreateRoom spawns the summary entity for one generated room.
func CreateRoom(ecs *ecs.ECS, store *grid.Store, record seeds.RoomSeedRecord) *donburi.Entry {
	room := archetypes.Room.Spawn(ecs)

	min, max, _ := store.Bounds()
	components.Room.SetValue(room, components.RoomData{
		ShapeID:  record.ShapeID,
		Seed:     record.Seed,
		CellSize: store.CellSize(),
		Cells:    store.Size(),
		MinCoord: min,
		MaxCoord: max,
	})
	return room
}
