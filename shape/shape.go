// Package shape turns a room shape descriptor into the set of grid
// coordinates that exist in the room.
package shape

import (
	"errors"
	"fmt"

	"github.com/gravenhold/roomgen/grid"
)

// Kind selects the silhouette family of a room.
type Kind int

const (
	// Rectangle is a plain width×height room.
	Rectangle Kind = iota
	// LShape adds one extension to the main section.
	LShape
	// TShape adds two extensions to the main section.
	TShape
	// UShape adds three extensions to the main section.
	UShape
	// Custom takes the silhouette from a row-major 0/1 layout.
	Custom
)

var kindNames = [...]string{"rectangle", "l", "t", "u", "custom"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ErrLayoutSizeMismatch is returned when a custom layout's cell array
// does not match its declared width×height. It aborts generation.
var ErrLayoutSizeMismatch = errors.New("shape: custom layout does not match declared size")

// ErrBadDimensions is returned for non-positive shape dimensions.
var ErrBadDimensions = errors.New("shape: dimensions must be positive")

// Descriptor describes one room silhouette. Width and Height are the
// main section for every kind except Custom, which reads Layout
// instead.
type Descriptor struct {
	Kind   Kind
	Width  int
	Height int

	// Custom layout, row-major with y*LayoutWidth+x indexing.
	// A value of 1 emits a cell, 0 leaves a hole.
	Layout       []int
	LayoutWidth  int
	LayoutHeight int

	// Extension sizing for the compound kinds.
	Template Template
}

// NewRectangle returns a rectangle descriptor.
func NewRectangle(w, h int) Descriptor {
	return Descriptor{Kind: Rectangle, Width: w, Height: h}
}

// NewCustom returns a custom-layout descriptor.
func NewCustom(layout []int, w, h int) Descriptor {
	return Descriptor{Kind: Custom, Layout: layout, LayoutWidth: w, LayoutHeight: h}
}

// NewCompound returns an L, T, or U descriptor over a main section and
// an extension template.
func NewCompound(kind Kind, mainW, mainH int, tpl Template) Descriptor {
	return Descriptor{Kind: kind, Width: mainW, Height: mainH, Template: tpl}
}

// ID returns a short identifier for seed records.
func (d Descriptor) ID() string {
	switch d.Kind {
	case Custom:
		return fmt.Sprintf("custom-%dx%d", d.LayoutWidth, d.LayoutHeight)
	case Rectangle:
		return fmt.Sprintf("rectangle-%dx%d", d.Width, d.Height)
	default:
		return fmt.Sprintf("%s-%dx%d-ext%dx%d", d.Kind, d.Width, d.Height,
			d.Template.ExtensionWidth, d.Template.ExtensionHeight)
	}
}

// Build emits the room's cell coordinates, ordered by Y then X.
// Every emitted cell starts Unoccupied once added to a grid store.
func Build(d Descriptor) ([]grid.Coord, error) {
	switch d.Kind {
	case Rectangle:
		return buildRectangle(d.Width, d.Height)
	case Custom:
		return buildCustom(d.Layout, d.LayoutWidth, d.LayoutHeight)
	case LShape, TShape, UShape:
		return buildCompound(d)
	default:
		return nil, fmt.Errorf("shape: unknown kind %d", int(d.Kind))
	}
}

func buildRectangle(w, h int) ([]grid.Coord, error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("%w: rectangle %dx%d", ErrBadDimensions, w, h)
	}
	coords := make([]grid.Coord, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			coords = append(coords, grid.Coord{X: x, Y: y})
		}
	}
	return coords, nil
}

func buildCustom(layout []int, w, h int) ([]grid.Coord, error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("%w: custom layout %dx%d", ErrBadDimensions, w, h)
	}
	if len(layout) != w*h {
		return nil, fmt.Errorf("%w: %d cells declared %dx%d", ErrLayoutSizeMismatch, len(layout), w, h)
	}
	var coords []grid.Coord
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if layout[y*w+x] == 1 {
				coords = append(coords, grid.Coord{X: x, Y: y})
			}
		}
	}
	return coords, nil
}
