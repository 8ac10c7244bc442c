// Package config carries the designer-facing generation defaults and
// their legal ranges. Out-of-range values are clamped, not rejected.
package config

// GridConfig contains cell sizing for the room grid
type GridConfig struct {
	CellSize    float64 // world units per cell edge (100 = 1 meter)
	MinCellSize float64
	MaxCellSize float64
}

// ShapeConfig contains defaults for shape descriptors
type ShapeConfig struct {
	RectWidth  int // default main section width in cells
	RectHeight int // default main section height in cells
	MinDim     int
	MaxDim     int

	ExtensionWidth  int // default compound extension width
	ExtensionHeight int // default compound extension height
}

// PlacementConfig contains selection-weight and footprint ranges
type PlacementConfig struct {
	SelectionWeight float64 // default weight for specs that omit one
	MinWeight       float64
	MaxWeight       float64

	MinFootprintCells int
	MaxFootprintCells int
}

// CeilingConfig contains ceiling placement values
type CeilingConfig struct {
	HeightOffset float64 // floor-to-ceiling distance in world units
	MinHeight    float64
	MaxHeight    float64
}

// MinimapConfig contains minimap export values
type MinimapConfig struct {
	CellPixels int // output pixels per cell edge
	MaxPixels  int // cap on either output dimension
}

// Global configuration instances
var Grid GridConfig
var Shape ShapeConfig
var Placement PlacementConfig
var Ceiling CeilingConfig
var Minimap MinimapConfig

func init() {
	Grid = GridConfig{
		CellSize:    100.0,
		MinCellSize: 10.0,
		MaxCellSize: 1000.0,
	}

	Shape = ShapeConfig{
		RectWidth:  5,
		RectHeight: 5,
		MinDim:     1,
		MaxDim:     50,

		ExtensionWidth:  3,
		ExtensionHeight: 3,
	}

	Placement = PlacementConfig{
		SelectionWeight: 1.0,
		MinWeight:       0.0,
		MaxWeight:       100.0,

		MinFootprintCells: 1,
		MaxFootprintCells: 10,
	}

	Ceiling = CeilingConfig{
		HeightOffset: 300.0,
		MinHeight:    100.0,
		MaxHeight:    1000.0,
	}

	Minimap = MinimapConfig{
		CellPixels: 8,
		MaxPixels:  2048,
	}
}

// ClampCellSize clamps a cell size into the grid range, falling back
// to the default for non-positive input.
func ClampCellSize(v float64) float64 {
	if v <= 0 {
		return Grid.CellSize
	}
	return clampF(v, Grid.MinCellSize, Grid.MaxCellSize)
}

// ClampShapeDim clamps a shape dimension, falling back to the given
// default for non-positive input.
func ClampShapeDim(v, def int) int {
	if v <= 0 {
		return def
	}
	return clampI(v, Shape.MinDim, Shape.MaxDim)
}

// ClampWeight clamps a selection weight into its legal range.
func ClampWeight(v float64) float64 {
	return clampF(v, Placement.MinWeight, Placement.MaxWeight)
}

// ClampFootprint clamps a footprint cell count.
func ClampFootprint(v int) int {
	return clampI(v, Placement.MinFootprintCells, Placement.MaxFootprintCells)
}

// ClampCeilingHeight clamps a ceiling height offset, falling back to
// the default for non-positive input.
func ClampCeilingHeight(v float64) float64 {
	if v <= 0 {
		return Ceiling.HeightOffset
	}
	return clampF(v, Ceiling.MinHeight, Ceiling.MaxHeight)
}

func clampF(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampI(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
