// Package systems wires generation output into the spawn-sink world:
// entity materialization from spawn requests and seed-record
// persistence.
package systems

import (
	"log"
	"math"

	"github.com/yohamta/donburi/ecs"

	"github.com/gravenhold/roomgen/assetpack"
	"github.com/gravenhold/roomgen/grid"
	"github.com/gravenhold/roomgen/room"
	"github.com/gravenhold/roomgen/systems/factory"
)

// ApplySpawns materializes one generation result: a collision space
// sized to the room, a room summary entity, one entity per spawn
// request, and solid colliders over excluded cells. It is the only
// consumer of the result's spawn queue.
func ApplySpawns(e *ecs.ECS, result *room.Result) {
	store := result.Grid
	min, max, ok := store.Bounds()
	if !ok {
		log.Printf("Warning: empty room result, nothing to spawn")
		return
	}

	cellSize := store.CellSize()
	spaceCell := int(math.Ceil(cellSize))
	factory.CreateSpace(e,
		(max.X-min.X+2)*spaceCell, (max.Y-min.Y+2)*spaceCell, spaceCell, spaceCell)
	factory.CreateRoom(e, store, result.Record)

	for _, req := range result.Spawns {
		switch req.Surface {
		case assetpack.SurfaceFloor:
			factory.CreateFloorTile(e, req)
		case assetpack.SurfaceCeiling:
			factory.CreateCeilingTile(e, req)
		case assetpack.SurfaceWall:
			factory.CreateWallSegment(e, req, cellSize)
		case assetpack.SurfaceDoor:
			factory.CreateDoorFrame(e, req, cellSize)
		default:
			log.Printf("Warning: spawn request with unknown surface %v skipped", req.Surface)
		}
	}

	for _, coord := range store.SortedCoords() {
		cell := store.Get(coord)
		if cell.State == grid.Excluded {
			factory.CreateBlockedCell(e, cell, cellSize)
		}
	}
}
