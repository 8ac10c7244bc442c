// Package minimap renders a room occupancy snapshot into a PNG or an
// ASCII dump. It is the headless replacement for in-engine debug
// boxes: one color per cell state, darkened wall edges, doorway marks.
package minimap

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	xdraw "golang.org/x/image/draw"

	"github.com/gravenhold/roomgen/config"
	"github.com/gravenhold/roomgen/grid"
)

// ErrEmptyGrid is returned when the store has no cells to draw.
var ErrEmptyGrid = errors.New("minimap: grid has no cells")

// Cell colors, one per state.
var (
	occupiedColor   = color.RGBA{R: 0xb0, G: 0x30, B: 0x30, A: 0xff}
	unoccupiedColor = color.RGBA{R: 0x30, G: 0x60, B: 0xb0, A: 0xff}
	reservedColor   = color.RGBA{R: 0xd0, G: 0xb0, B: 0x30, A: 0xff}
	excludedColor   = color.RGBA{R: 0x50, G: 0x50, B: 0x50, A: 0xff}
	wallColor       = color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff}
	doorwayColor    = color.RGBA{R: 0x30, G: 0xb0, B: 0x50, A: 0xff}
)

func stateColor(s grid.CellState) color.RGBA {
	switch s {
	case grid.Occupied:
		return occupiedColor
	case grid.Reserved:
		return reservedColor
	case grid.Excluded:
		return excludedColor
	default:
		return unoccupiedColor
	}
}

// Image renders the store at cellPixels output pixels per cell edge.
// Non-positive or oversized values clamp to the configured defaults.
// Grid north points up: the top pixel row is the highest Y row.
func Image(store *grid.Store, cellPixels int) (*image.RGBA, error) {
	min, max, ok := store.Bounds()
	if !ok {
		return nil, ErrEmptyGrid
	}
	w := max.X - min.X + 1
	h := max.Y - min.Y + 1

	if cellPixels < 1 {
		cellPixels = config.Minimap.CellPixels
	}
	for w*cellPixels > config.Minimap.MaxPixels || h*cellPixels > config.Minimap.MaxPixels {
		cellPixels /= 2
		if cellPixels <= 1 {
			cellPixels = 1
			break
		}
	}

	// One pixel per cell, then a nearest-neighbor upscale keeps the
	// cell edges crisp.
	base := image.NewRGBA(image.Rect(0, 0, w, h))
	for _, coord := range store.SortedCoords() {
		cell := store.Get(coord)
		px := coord.X - min.X
		py := max.Y - coord.Y
		base.SetRGBA(px, py, stateColor(cell.State))
	}

	out := image.NewRGBA(image.Rect(0, 0, w*cellPixels, h*cellPixels))
	xdraw.NearestNeighbor.Scale(out, out.Bounds(), base, base.Bounds(), xdraw.Src, nil)

	if cellPixels > 1 {
		for _, coord := range store.SortedCoords() {
			drawEdges(out, store.Get(coord), min, max, cellPixels)
		}
	}
	return out, nil
}

// drawEdges strokes each walled edge of the cell one pixel thick, in
// the doorway color where a doorway suppresses the wall segment.
func drawEdges(img *image.RGBA, cell *grid.Cell, min, max grid.Coord, cellPixels int) {
	x0 := (cell.Coord.X - min.X) * cellPixels
	y0 := (max.Y - cell.Coord.Y) * cellPixels
	x1 := x0 + cellPixels - 1
	y1 := y0 + cellPixels - 1

	for d := grid.Direction(0); d < grid.DirectionCount; d++ {
		if !cell.Walls[d] {
			continue
		}
		c := wallColor
		if cell.Doorways[d] {
			c = doorwayColor
		}
		switch d {
		case grid.North:
			hline(img, x0, x1, y0, c)
		case grid.South:
			hline(img, x0, x1, y1, c)
		case grid.East:
			vline(img, x1, y0, y1, c)
		case grid.West:
			vline(img, x0, y0, y1, c)
		}
	}
}

func hline(img *image.RGBA, x0, x1, y int, c color.RGBA) {
	for x := x0; x <= x1; x++ {
		img.SetRGBA(x, y, c)
	}
}

func vline(img *image.RGBA, x, y0, y1 int, c color.RGBA) {
	for y := y0; y <= y1; y++ {
		img.SetRGBA(x, y, c)
	}
}

// WritePNG encodes the rendered store to w.
func WritePNG(w io.Writer, store *grid.Store, cellPixels int) error {
	img, err := Image(store, cellPixels)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("minimap: encode: %w", err)
	}
	return nil
}

// ASCII dumps the store one rune per cell for log output: '#' for
// occupied, '.' unoccupied, 'r' reserved, 'x' excluded, space outside
// the silhouette. Rows print north-first.
func ASCII(store *grid.Store) string {
	min, max, ok := store.Bounds()
	if !ok {
		return ""
	}

	var b strings.Builder
	for y := max.Y; y >= min.Y; y-- {
		for x := min.X; x <= max.X; x++ {
			cell := store.Get(grid.Coord{X: x, Y: y})
			switch {
			case cell == nil:
				b.WriteByte(' ')
			case cell.State == grid.Occupied:
				b.WriteByte('#')
			case cell.State == grid.Reserved:
				b.WriteByte('r')
			case cell.State == grid.Excluded:
				b.WriteByte('x')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
