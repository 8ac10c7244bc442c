package tags

import "github.com/yohamta/donburi"

var (
	Room    = donburi.NewTag().SetName("Room")
	Floor   = donburi.NewTag().SetName("Floor")
	Wall    = donburi.NewTag().SetName("Wall")
	Ceiling = donburi.NewTag().SetName("Ceiling")
	Doorway = donburi.NewTag().SetName("Doorway")
	Blocked = donburi.NewTag().SetName("Blocked")
)

// Resolv tags for collision queries against the room space.
const (
	ResolvSolid   = "solid"
	ResolvFloor   = "floor"
	ResolvDoorway = "doorway"
)
