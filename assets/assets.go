// Package assets embeds the stock asset-pack definitions and loads
// pack JSON from any filesystem. Loaded packs come back normalized:
// clamped weights, footprints, and ceiling heights.
package assets

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"

	"github.com/gravenhold/roomgen/assetpack"
)

//go:embed packs
var packFS embed.FS

// DefaultPackName is the pack used when the caller names none.
const DefaultPackName = "stone_keep"

// LoadPack reads and normalizes one pack definition from fsys.
func LoadPack(fsys fs.FS, path string) (*assetpack.Pack, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("assets: read pack %s: %w", path, err)
	}
	var pack assetpack.Pack
	if err := json.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("assets: parse pack %s: %w", path, err)
	}
	pack.Normalize()
	return &pack, nil
}

// MustLoadPack loads an embedded pack by name, panicking when the
// name is unknown. Embedded packs ship with the binary; a missing one
// is a build defect, not a runtime condition.
func MustLoadPack(name string) *assetpack.Pack {
	pack, err := LoadPack(packFS, fmt.Sprintf("packs/%s.json", name))
	if err != nil {
		panic(fmt.Sprintf("Failed to load embedded pack %q: %v", name, err))
	}
	return pack
}

// DefaultPack returns the stock embedded pack.
func DefaultPack() *assetpack.Pack {
	return MustLoadPack(DefaultPackName)
}

// PackNames lists the embedded pack names.
func PackNames() []string {
	entries, err := packFS.ReadDir("packs")
	if err != nil {
		panic(fmt.Sprintf("Failed to read embedded packs: %v", err))
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name()[:len(e.Name())-len(".json")])
		}
	}
	return names
}
