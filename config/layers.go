package config

import "github.com/yohamta/donburi/ecs"

// ECS layers for the spawn-sink world.
const (
	Default ecs.LayerID = iota
)
