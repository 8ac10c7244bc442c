package grid

import (
	"fmt"
	"sort"
)

// Store holds the cells of one room. No entry for a coordinate means
// "outside the room", which blocks adjacency and footprint checks the
// same way a non-Unoccupied cell does.
//
// A Store is not safe for concurrent use; one room generates at a time.
type Store struct {
	cells    map[Coord]*Cell
	cellSize float64
	origin   Vec3

	nextOccupant Handle
}

// NewStore returns an empty store. cellSize is the edge length of one
// cell in world units; origin is the world position of the room anchor.
func NewStore(cellSize float64, origin Vec3) *Store {
	return &Store{
		cells:    make(map[Coord]*Cell),
		cellSize: cellSize,
		origin:   origin,
	}
}

// CellSize returns the edge length of one cell in world units.
func (s *Store) CellSize() float64 {
	return s.cellSize
}

// Origin returns the room anchor world position.
func (s *Store) Origin() Vec3 {
	return s.origin
}

// AddCell creates an Unoccupied cell at the coordinate, computing its
// world position once. Adding the same coordinate twice is a no-op and
// returns the existing cell.
func (s *Store) AddCell(c Coord) *Cell {
	if cell, ok := s.cells[c]; ok {
		return cell
	}
	cell := &Cell{
		Coord:    c,
		State:    Unoccupied,
		WorldPos: s.cellWorldPos(c),
	}
	s.cells[c] = cell
	return cell
}

// cellWorldPos places the cell center half a cell in from the corner.
func (s *Store) cellWorldPos(c Coord) Vec3 {
	return Vec3{
		X: s.origin.X + float64(c.X)*s.cellSize + s.cellSize*0.5,
		Y: s.origin.Y + float64(c.Y)*s.cellSize + s.cellSize*0.5,
		Z: s.origin.Z,
	}
}

// Get returns the cell at the coordinate, or nil if the coordinate is
// outside the room.
func (s *Store) Get(c Coord) *Cell {
	return s.cells[c]
}

// Size returns the number of cells in the room.
func (s *Store) Size() int {
	return len(s.cells)
}

// SortedCoords returns every cell coordinate ordered by Y then X.
// Iteration over the grid must use this order so that a fixed seed
// reproduces the same placement sequence.
func (s *Store) SortedCoords() []Coord {
	coords := make([]Coord, 0, len(s.cells))
	for c := range s.cells {
		coords = append(coords, c)
	}
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Y != coords[j].Y {
			return coords[i].Y < coords[j].Y
		}
		return coords[i].X < coords[j].X
	})
	return coords
}

// Bounds returns the inclusive min and max coordinates of the room,
// and false if the store is empty.
func (s *Store) Bounds() (min, max Coord, ok bool) {
	first := true
	for c := range s.cells {
		if first {
			min, max = c, c
			first = false
			continue
		}
		if c.X < min.X {
			min.X = c.X
		}
		if c.Y < min.Y {
			min.Y = c.Y
		}
		if c.X > max.X {
			max.X = c.X
		}
		if c.Y > max.Y {
			max.Y = c.Y
		}
	}
	return min, max, !first
}

// FootprintFits reports whether every cell covered by a w×h footprint
// anchored at the bottom-left coordinate exists and is Unoccupied.
func (s *Store) FootprintFits(anchor Coord, w, h int) bool {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			cell := s.cells[Coord{X: anchor.X + dx, Y: anchor.Y + dy}]
			if cell == nil || cell.State != Unoccupied {
				return false
			}
		}
	}
	return true
}

// Claim transitions every covered cell to Occupied and stamps a fresh
// occupant handle on each, returning the handle. All cells of one
// footprint transition together; callers must have checked
// FootprintFits first. A claim over a non-fitting footprint is a
// programming error and panics.
func (s *Store) Claim(anchor Coord, w, h int) Handle {
	if !s.FootprintFits(anchor, w, h) {
		panic(fmt.Sprintf("grid: claim of %dx%d footprint at %v violates occupancy", w, h, anchor))
	}
	handle := s.allocOccupant()
	s.stamp(anchor, w, h, Occupied, handle)
	return handle
}

// Reserve transitions every covered cell to Reserved. Same
// precondition as Claim.
func (s *Store) Reserve(anchor Coord, w, h int) {
	if !s.FootprintFits(anchor, w, h) {
		panic(fmt.Sprintf("grid: reserve of %dx%d footprint at %v violates occupancy", w, h, anchor))
	}
	s.stamp(anchor, w, h, Reserved, NoOccupant)
}

// Release returns a Reserved footprint to Unoccupied.
func (s *Store) Release(anchor Coord, w, h int) {
	s.eachReserved("release", anchor, w, h, func(cell *Cell) {
		cell.State = Unoccupied
		cell.Occupant = NoOccupant
	})
}

// Commit finalizes a Reserved footprint to Occupied with a fresh
// occupant handle.
func (s *Store) Commit(anchor Coord, w, h int) Handle {
	handle := s.allocOccupant()
	s.eachReserved("commit", anchor, w, h, func(cell *Cell) {
		cell.State = Occupied
		cell.Occupant = handle
	})
	return handle
}

// Exclude blocks the cell from any placement. Excluding a coordinate
// outside the room is a no-op.
func (s *Store) Exclude(c Coord) {
	if cell := s.cells[c]; cell != nil {
		cell.State = Excluded
		cell.Occupant = NoOccupant
	}
}

// SetDoorway flags a doorway edge on the cell. Doorway edges keep
// their wall flag but suppress the wall-segment spawn for that edge.
func (s *Store) SetDoorway(c Coord, d Direction) {
	if cell := s.cells[c]; cell != nil {
		cell.Doorways[d] = true
	}
}

// Clear resets every cell to Unoccupied and drops occupants, wall
// flags, and doorway flags. The silhouette itself is kept.
func (s *Store) Clear() {
	for _, cell := range s.cells {
		cell.State = Unoccupied
		cell.Occupant = NoOccupant
		cell.Walls = [DirectionCount]bool{}
		cell.Doorways = [DirectionCount]bool{}
	}
	s.nextOccupant = NoOccupant
}

func (s *Store) allocOccupant() Handle {
	s.nextOccupant++
	return s.nextOccupant
}

func (s *Store) stamp(anchor Coord, w, h int, state CellState, handle Handle) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			cell := s.cells[Coord{X: anchor.X + dx, Y: anchor.Y + dy}]
			cell.State = state
			cell.Occupant = handle
		}
	}
}

func (s *Store) eachReserved(op string, anchor Coord, w, h int, fn func(*Cell)) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			cell := s.cells[Coord{X: anchor.X + dx, Y: anchor.Y + dy}]
			if cell == nil || cell.State != Reserved {
				panic(fmt.Sprintf("grid: %s of %dx%d footprint at %v covers a non-reserved cell", op, w, h, anchor))
			}
			fn(cell)
		}
	}
}
