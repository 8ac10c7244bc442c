// Command roomgen generates a single dungeon room layout and writes
// its artifacts: a minimap PNG, an ASCII dump, and a saved seed
// record for exact reproduction.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/gravenhold/roomgen/assetpack"
	"github.com/gravenhold/roomgen/assets"
	"github.com/gravenhold/roomgen/grid"
	"github.com/gravenhold/roomgen/minimap"
	"github.com/gravenhold/roomgen/room"
	"github.com/gravenhold/roomgen/roomlayout"
	"github.com/gravenhold/roomgen/seeds"
	"github.com/gravenhold/roomgen/shape"
	"github.com/gravenhold/roomgen/systems"
)

func main() {
	shapeKind := flag.String("shape", "rectangle", "Room shape: rectangle, l, t, u")
	width := flag.Int("width", 5, "Main section width in cells")
	height := flag.Int("height", 5, "Main section height in cells")
	extWidth := flag.Int("extwidth", 3, "Compound extension width in cells")
	extHeight := flag.Int("extheight", 3, "Compound extension height in cells")
	cellSize := flag.Float64("cellsize", 100, "World units per cell edge")
	seed := flag.Int64("seed", 0, "Generation seed (0 = random)")
	rotation := flag.Int("rotation", 0, "Room rotation recorded in the seed record (0/90/180/270)")
	packPath := flag.String("pack", "", "Asset pack JSON path (empty = embedded default)")
	layoutPath := flag.String("layout", "", "TMX room layout path (overrides -shape)")
	minimapPath := flag.String("minimap", "", "Minimap PNG output path")
	cellPixels := flag.Int("cellpixels", 8, "Minimap pixels per cell edge")
	ascii := flag.Bool("ascii", false, "Print an ASCII occupancy dump")
	saveName := flag.String("save", "", "Seed record name to persist via local app data")
	loadName := flag.String("load", "", "Seed record name to replay (overrides -seed)")
	flag.Parse()

	pack := loadPack(*packPath)

	params := room.Params{
		CellSize:      *cellSize,
		Seed:          *seed,
		UseRandomSeed: *seed == 0,
		Rotation:      *rotation,
		Pack:          pack,
	}

	if *loadName != "" {
		rec := loadRecord(*loadName)
		params.Seed = rec.Seed
		params.UseRandomSeed = false
		params.Rotation = rec.Rotation
		log.Printf("Replaying room seed %d from record %q (shape %s)", rec.Seed, *loadName, rec.ShapeID)
	}

	if *layoutPath != "" {
		layout, err := roomlayout.Load(os.DirFS(filepath.Dir(*layoutPath)), filepath.Base(*layoutPath))
		if err != nil {
			log.Fatalf("Failed to load layout: %v", err)
		}
		params.Shape = layout.Descriptor
		params.ForcedFloor = layout.ForcedFloor
		params.ForcedWall = layout.ForcedWall
		params.ForcedCeiling = layout.ForcedCeiling
	} else {
		params.Shape = parseShape(*shapeKind, *width, *height, *extWidth, *extHeight)
	}

	start := time.Now()
	result, err := room.Generate(params)
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}

	world := ecs.NewECS(donburi.NewWorld())
	systems.ApplySpawns(world, result)

	log.Printf("Room %s: %d cells, %d spawn requests, seed %d, forced ok=%v (%s)",
		result.Record.ShapeID, result.Grid.Size(), len(result.Spawns),
		result.Record.Seed, result.ForcedAllPlaced, time.Since(start).Round(time.Millisecond))

	if *ascii {
		fmt.Print(minimap.ASCII(result.Grid))
	}
	if *minimapPath != "" {
		writeMinimap(*minimapPath, result.Grid, *cellPixels)
	}
	if *saveName != "" {
		saveRecord(*saveName, result.Record)
	}
}

func loadPack(path string) *assetpack.Pack {
	if path == "" {
		return assets.DefaultPack()
	}
	pack, err := assets.LoadPack(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if err != nil {
		log.Fatalf("Failed to load pack: %v", err)
	}
	return pack
}

func parseShape(kind string, w, h, extW, extH int) shape.Descriptor {
	tpl := shape.Template{ExtensionWidth: extW, ExtensionHeight: extH, Attach: shape.AttachMiddle}
	switch kind {
	case "rectangle":
		return shape.NewRectangle(w, h)
	case "l":
		return shape.NewCompound(shape.LShape, w, h, tpl)
	case "t":
		return shape.NewCompound(shape.TShape, w, h, tpl)
	case "u":
		return shape.NewCompound(shape.UShape, w, h, tpl)
	default:
		log.Fatalf("Unknown shape %q (want rectangle, l, t, or u)", kind)
		return shape.Descriptor{}
	}
}

func writeMinimap(path string, store *grid.Store, cellPixels int) {
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("Failed to create minimap file: %v", err)
	}
	defer f.Close()
	if err := minimap.WritePNG(f, store, cellPixels); err != nil {
		log.Fatalf("Failed to write minimap: %v", err)
	}
	log.Printf("Minimap written to %s", path)
}

func loadRecord(name string) seeds.RoomSeedRecord {
	if err := systems.InitPersistence("roomgen"); err != nil {
		log.Fatalf("Failed to open persistence: %v", err)
	}
	dungeon, err := systems.LoadDungeonRecord(name)
	if err != nil || dungeon == nil {
		log.Fatalf("No seed record %q", name)
	}
	if len(dungeon.FloorSeeds) == 0 || len(dungeon.FloorSeeds[0].RoomSeeds) == 0 {
		log.Fatalf("Seed record %q has no room seeds", name)
	}
	return dungeon.FloorSeeds[0].RoomSeeds[0]
}

func saveRecord(name string, rec seeds.RoomSeedRecord) {
	if err := systems.InitPersistence("roomgen"); err != nil {
		return
	}
	dungeon := seeds.NewDungeonRecord(rec.Seed)
	dungeon.FloorSeeds = []seeds.FloorSeedRecord{
		{FloorIndex: 0, FloorSeed: rec.Seed, RoomSeeds: []seeds.RoomSeedRecord{rec}},
	}
	if err := systems.SaveDungeonRecord(name, dungeon); err == nil {
		log.Printf("Seed record saved as %q", name)
	}
}
