package memory

import (
	"sort"
	"sync"

	portsout "rollupbridge/internal/application/ports/out"
	"rollupbridge/internal/domain/entities"
	valueobjects "rollupbridge/internal/domain/value_objects"
)

// Repository is the in-memory asset registry. Assets are immutable, so the
// map only ever grows and Put for a known identity is a no-op.
type Repository struct {
	mu     sync.RWMutex
	assets map[valueobjects.AssetIdentity]entities.Asset
}

var _ portsout.AssetRepository = (*Repository)(nil)

func NewRepository() *Repository {
	return &Repository{assets: map[valueobjects.AssetIdentity]entities.Asset{}}
}

func (r *Repository) Put(asset entities.Asset) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.assets[asset.Identity]; exists {
		return
	}
	r.assets[asset.Identity] = asset
}

func (r *Repository) Get(identity valueobjects.AssetIdentity) (entities.Asset, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	asset, found := r.assets[identity]
	return asset, found
}

func (r *Repository) List() []entities.Asset {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Asset, 0, len(r.assets))
	for _, asset := range r.assets {
		out = append(out, asset)
	}
	sort.Slice(out, func(i, j int) bool {
		// Native first, tokens by identity.
		if out[i].IsNative() != out[j].IsNative() {
			return out[i].IsNative()
		}
		return out[i].Identity < out[j].Identity
	})
	return out
}
