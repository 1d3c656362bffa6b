package out

import (
	"rollupbridge/internal/domain/entities"
	valueobjects "rollupbridge/internal/domain/value_objects"
)

// AssetRepository owns registered asset metadata. Assets are immutable once
// stored; Put is idempotent for an identity already present.
type AssetRepository interface {
	Put(asset entities.Asset)
	Get(identity valueobjects.AssetIdentity) (entities.Asset, bool)
	List() []entities.Asset
}
