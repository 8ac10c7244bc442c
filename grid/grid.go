// Package grid owns the coordinate→cell map for one room generation
// pass. It is pure data: no dependencies on the placement engine or any
// spawn-side package.
package grid

import "fmt"

// Coord is a cell's grid coordinate, the unique key within a room.
type Coord struct {
	X, Y int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns c shifted by o.
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

// Vec3 is a world-space position or offset.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Direction is a cardinal wall direction.
// North = +Y, East = +X, South = -Y, West = -X.
type Direction int

const (
	North Direction = iota
	East
	South
	West

	DirectionCount = 4
)

var directionNames = [DirectionCount]string{"North", "East", "South", "West"}

func (d Direction) String() string {
	if d < 0 || d >= DirectionCount {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Offset returns the coordinate delta of one step in this direction.
func (d Direction) Offset() Coord {
	switch d {
	case North:
		return Coord{X: 0, Y: 1}
	case East:
		return Coord{X: 1, Y: 0}
	case South:
		return Coord{X: 0, Y: -1}
	default:
		return Coord{X: -1, Y: 0}
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return (d + 2) % DirectionCount
}

// Angle returns the direction's yaw in degrees, used when orienting
// wall segments. North faces 0, angles increase clockwise.
func (d Direction) Angle() float64 {
	return float64(d) * 90
}

// CellState is the occupancy state of one cell.
type CellState int

const (
	// Unoccupied cells are empty and available for placement.
	Unoccupied CellState = iota
	// Occupied is terminal for a successful fill.
	Occupied
	// Reserved marks a footprint claimed but not yet finalized, used
	// while a forced placement is validated.
	Reserved
	// Excluded cells are deliberately blocked and never filled.
	Excluded
)

var stateNames = [...]string{"Unoccupied", "Occupied", "Reserved", "Excluded"}

func (s CellState) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("CellState(%d)", int(s))
	}
	return stateNames[s]
}

// Handle identifies the placement occupying a cell. Zero means none.
// It is an opaque ticket, not a pointer: the store never owns whatever
// the handle refers to.
type Handle uint32

// NoOccupant is the zero Handle.
const NoOccupant Handle = 0

// Cell is one grid square.
type Cell struct {
	Coord    Coord
	State    CellState
	WorldPos Vec3 // cell center at floor height, cached at creation

	Walls    [DirectionCount]bool
	Doorways [DirectionCount]bool

	Occupant Handle
}
