package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/gravenhold/roomgen/archetypes"
	"github.com/gravenhold/roomgen/components"
	"github.com/gravenhold/roomgen/placement"
)

func CreateFloorTile(ecs *ecs.ECS, req placement.SpawnRequest) *donburi.Entry {
	tile := archetypes.FloorTile.Spawn(ecs)
	setTransform(tile, req)
	setPlacement(tile, req)
	return tile
}

func CreateCeilingTile(ecs *ecs.ECS, req placement.SpawnRequest) *donburi.Entry {
	tile := archetypes.CeilingTile.Spawn(ecs)
	setTransform(tile, req)
	setPlacement(tile, req)
	return tile
}

func setTransform(entry *donburi.Entry, req placement.SpawnRequest) {
	components.Transform.SetValue(entry, components.TransformData{
		Position: req.Position,
		Rotation: req.Rotation,
		Scale:    1,
	})
}

func setPlacement(entry *donburi.Entry, req placement.SpawnRequest) {
	components.Placement.SetValue(entry, components.PlacementData{
		AssetRef: req.Asset.Ref,
		Mesh:     req.Asset.Mesh,
		Surface:  req.Surface,
		Anchor:   req.Anchor,
		CellsX:   req.CellsX,
		CellsY:   req.CellsY,
	})
}
