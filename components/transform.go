package components

import (
	"github.com/yohamta/donburi"

	"github.com/gravenhold/roomgen/grid"
)

// TransformData is an entity's world transform.
type TransformData struct {
	Position grid.Vec3
	Rotation float64 // yaw in degrees
	Scale    float64
}

var Transform = donburi.NewComponentType[TransformData]()
