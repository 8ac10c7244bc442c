package shape

import (
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/gravenhold/roomgen/grid"
)

// AttachPoint positions an extension along the main section's north
// edge.
type AttachPoint int

const (
	AttachStart AttachPoint = iota
	AttachMiddle
	AttachEnd
)

// Template sizes the extension rectangles of a compound shape.
type Template struct {
	ExtensionWidth  int
	ExtensionHeight int

	// Attach positions the single L extension. T and U place their
	// extensions at fixed slots and ignore it.
	Attach AttachPoint
}

// DefaultTemplate returns the stock 3×3 extension, attached at the
// middle.
func DefaultTemplate() Template {
	return Template{ExtensionWidth: 3, ExtensionHeight: 3, Attach: AttachMiddle}
}

// buildCompound unions the main rectangle with one (L), two (T), or
// three (U) extension rectangles attached flush along the north edge.
// The L extension sits at the template's attach point; T uses the
// start and end slots; U uses all three. Extensions may overlap each
// other on narrow rooms; the union deduplicates.
func buildCompound(d Descriptor) ([]grid.Coord, error) {
	if d.Width < 1 || d.Height < 1 {
		return nil, fmt.Errorf("%w: %s main section %dx%d", ErrBadDimensions, d.Kind, d.Width, d.Height)
	}
	tpl := d.Template
	if tpl.ExtensionWidth < 1 || tpl.ExtensionHeight < 1 {
		return nil, fmt.Errorf("%w: %s extension %dx%d", ErrBadDimensions, d.Kind, tpl.ExtensionWidth, tpl.ExtensionHeight)
	}

	var slots []AttachPoint
	switch d.Kind {
	case LShape:
		slots = []AttachPoint{tpl.Attach}
	case TShape:
		slots = []AttachPoint{AttachStart, AttachEnd}
	case UShape:
		slots = []AttachPoint{AttachStart, AttachMiddle, AttachEnd}
	}

	cells := mapset.New[grid.Coord]()
	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			cells.Put(grid.Coord{X: x, Y: y})
		}
	}
	for _, slot := range slots {
		x0 := attachX(slot, d.Width, tpl.ExtensionWidth)
		for y := d.Height; y < d.Height+tpl.ExtensionHeight; y++ {
			for x := x0; x < x0+tpl.ExtensionWidth; x++ {
				cells.Put(grid.Coord{X: x, Y: y})
			}
		}
	}

	coords := make([]grid.Coord, 0, cells.Size())
	cells.Each(func(c grid.Coord) {
		coords = append(coords, c)
	})
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Y != coords[j].Y {
			return coords[i].Y < coords[j].Y
		}
		return coords[i].X < coords[j].X
	})
	return coords, nil
}

// attachX maps an attach slot to the extension's west column. An
// extension wider than the main section overhangs to the west rather
// than clamping.
func attachX(p AttachPoint, mainW, extW int) int {
	switch p {
	case AttachMiddle:
		return (mainW - extW) / 2
	case AttachEnd:
		return mainW - extW
	default:
		return 0
	}
}
