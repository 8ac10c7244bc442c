// Package roomlayout loads designer-authored room layouts from Tiled
// TMX maps: a tile layer carves the room silhouette and object groups
// pin forced placements to exact cells. It takes an fs.FS so callers
// can pass embed.FS or os.DirFS.
package roomlayout

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"

	"github.com/gravenhold/roomgen/assetpack"
	"github.com/gravenhold/roomgen/grid"
	"github.com/gravenhold/roomgen/placement"
	"github.com/gravenhold/roomgen/shape"
)

// CellLayerName is the tile layer read for the room silhouette. When
// no layer carries this name the first tile layer is used.
const CellLayerName = "room-cells"

// Forced-placement object group names, one per surface.
const (
	FloorGroupName   = "ForcedFloor"
	WallGroupName    = "ForcedWall"
	CeilingGroupName = "ForcedCeiling"
)

// Structural layout problems. Both abort generation the same way a
// custom-layout size mismatch does.
var (
	ErrNoCellLayer = errors.New("roomlayout: map has no tile layer")
	ErrEmptyLayout = errors.New("roomlayout: cell layer has no live cells")
)

// Layout is a parsed TMX room.
type Layout struct {
	Descriptor shape.Descriptor

	ForcedFloor   placement.Forced
	ForcedWall    placement.Forced
	ForcedCeiling placement.Forced
}

// Load parses one TMX room layout. Any non-zero GID in the cell layer
// becomes a live cell. TMX rows grow downward while grid rows grow
// upward, so rows flip during conversion: the bottom TMX row becomes
// grid row zero.
func Load(fsys fs.FS, path string) (*Layout, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("roomlayout: load TMX %s: %w", path, err)
	}

	layer := cellLayer(levelMap)
	if layer == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoCellLayer, path)
	}

	w, h := levelMap.Width, levelMap.Height
	bitmap := make([]int, w*h)
	live := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if layer.Tiles[y*w+x].IsNil() {
				continue
			}
			bitmap[(h-1-y)*w+x] = 1
			live++
		}
	}
	if live == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyLayout, path)
	}

	layout := &Layout{
		Descriptor: shape.NewCustom(bitmap, w, h),
	}
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case FloorGroupName:
			layout.ForcedFloor = parseForced(og, levelMap)
		case WallGroupName:
			layout.ForcedWall = parseForced(og, levelMap)
		case CeilingGroupName:
			layout.ForcedCeiling = parseForced(og, levelMap)
		}
	}
	return layout, nil
}

func cellLayer(m *tiled.Map) *tiled.Layer {
	for _, layer := range m.Layers {
		if layer.Name == CellLayerName {
			return layer
		}
	}
	if len(m.Layers) > 0 {
		return m.Layers[0]
	}
	return nil
}

// parseForced converts one object group into a forced-placement map.
// The object's position picks the anchor cell; its properties carry
// the spec fields. Later objects on the same anchor overwrite earlier
// ones, mirroring how Tiled stacks objects.
func parseForced(og *tiled.ObjectGroup, m *tiled.Map) placement.Forced {
	forced := make(placement.Forced, len(og.Objects))
	for _, o := range og.Objects {
		anchor := grid.Coord{
			X: int(o.X) / m.TileWidth,
			Y: m.Height - 1 - int(o.Y)/m.TileHeight,
		}

		assetRef := o.Properties.GetString("assetRef")
		if assetRef == "" {
			assetRef = o.Name
		}
		spec := assetpack.Spec{
			AssetRef:        assetRef,
			Pivot:           assetpack.Pivot(o.Properties.GetString("pivot")),
			CellsX:          o.Properties.GetInt("cellsX"),
			CellsY:          o.Properties.GetInt("cellsY"),
			SelectionWeight: o.Properties.GetFloat("selectionWeight"),
		}
		if spec.CellsX == 0 {
			spec.CellsX = 1
		}
		if spec.CellsY == 0 {
			spec.CellsY = 1
		}
		if spec.Pivot == "" {
			spec.Pivot = assetpack.PivotCenterXY
		}
		forced[anchor] = spec
	}
	return forced
}
