package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/gravenhold/roomgen/components"
	cfg "github.com/gravenhold/roomgen/config"
	"github.com/gravenhold/roomgen/tags"
)

var (
	Room = newArchetype(
		tags.Room,
		components.Room,
	)
	Space = newArchetype(
		components.Space,
	)
	FloorTile = newArchetype(
		tags.Floor,
		components.Transform,
		components.Placement,
	)
	CeilingTile = newArchetype(
		tags.Ceiling,
		components.Transform,
		components.Placement,
	)
	WallSegment = newArchetype(
		tags.Wall,
		components.Transform,
		components.Placement,
		components.Object,
	)
	DoorFrame = newArchetype(
		tags.Doorway,
		components.Transform,
		components.Placement,
		components.Object,
	)
	BlockedCell = newArchetype(
		tags.Blocked,
		components.Object,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
