package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/gravenhold/roomgen/archetypes"
	"github.com/gravenhold/roomgen/components"
	"github.com/gravenhold/roomgen/grid"
	"github.com/gravenhold/roomgen/placement"
	"github.com/gravenhold/roomgen/tags"
)

// CreateWallSegment spawns one wall segment entity with a solid
// collision object along its cell edge.
func CreateWallSegment(ecs *ecs.ECS, req placement.SpawnRequest, cellSize float64) *donburi.Entry {
	wall := archetypes.WallSegment.Spawn(ecs)
	setTransform(wall, req)
	setPlacement(wall, req)
	attachEdgeObject(ecs, wall, req, cellSize, tags.ResolvSolid)
	return wall
}

// CreateDoorFrame spawns a door frame on a doorway edge. The frame's
// object carries the doorway tag so movement queries can pass through.
func CreateDoorFrame(ecs *ecs.ECS, req placement.SpawnRequest, cellSize float64) *donburi.Entry {
	frame := archetypes.DoorFrame.Spawn(ecs)
	setTransform(frame, req)
	setPlacement(frame, req)
	attachEdgeObject(ecs, frame, req, cellSize, tags.ResolvDoorway)
	return frame
}

// CreateBlockedCell registers a solid collider over an excluded cell.
func CreateBlockedCell(ecs *ecs.ECS, cell *grid.Cell, cellSize float64) *donburi.Entry {
	blocked := archetypes.BlockedCell.Spawn(ecs)

	obj := resolv.NewObject(cell.WorldPos.X-cellSize/2, cell.WorldPos.Y-cellSize/2,
		cellSize, cellSize, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, cellSize, cellSize))
	obj.Data = blocked

	components.Object.SetValue(blocked, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)
	return blocked
}

// attachEdgeObject builds the thin collision rectangle for a wall or
// frame edge. The rectangle runs the full cell edge and sits centered
// on the request position, long side perpendicular to the facing.
func attachEdgeObject(ecs *ecs.ECS, entry *donburi.Entry, req placement.SpawnRequest, cellSize float64, tag string) {
	const thickness = 8.0

	w, h := cellSize, thickness
	if req.Rotation == 90 || req.Rotation == 270 {
		w, h = thickness, cellSize
	}
	obj := resolv.NewObject(req.Position.X-w/2, req.Position.Y-h/2, w, h, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = entry

	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)
}
