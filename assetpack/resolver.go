package assetpack

import (
	"errors"
	"fmt"
)

// ErrUnknownAsset is returned when a resolver has no entry for a ref.
var ErrUnknownAsset = errors.New("assetpack: unknown asset ref")

// Asset is a resolved placeable asset.
type Asset struct {
	Ref  string
	Mesh string // mesh resource path
}

// Resolver turns an opaque asset ref into a loadable asset. Resolution
// is synchronous from the caller's point of view.
type Resolver interface {
	Resolve(ref string) (Asset, error)
}

// RegistryResolver resolves refs from an in-memory table.
type RegistryResolver struct {
	assets map[string]Asset
}

// NewRegistryResolver returns an empty registry.
func NewRegistryResolver() *RegistryResolver {
	return &RegistryResolver{assets: make(map[string]Asset)}
}

// NewPackResolver returns a registry preloaded with the pack's mesh
// table.
func NewPackResolver(p *Pack) *RegistryResolver {
	r := NewRegistryResolver()
	for ref, mesh := range p.Meshes {
		r.Register(ref, mesh)
	}
	return r
}

// Register adds or replaces a ref→mesh entry.
func (r *RegistryResolver) Register(ref, mesh string) {
	r.assets[ref] = Asset{Ref: ref, Mesh: mesh}
}

// Resolve implements Resolver.
func (r *RegistryResolver) Resolve(ref string) (Asset, error) {
	asset, ok := r.assets[ref]
	if !ok {
		return Asset{}, fmt.Errorf("%w: %q", ErrUnknownAsset, ref)
	}
	return asset, nil
}
