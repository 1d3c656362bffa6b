package out

import (
	"context"

	"rollupbridge/internal/application/dto"
	valueobjects "rollupbridge/internal/domain/value_objects"
	apperrors "rollupbridge/internal/shared_kernel/errors"
)

// AssetMetadataGateway resolves a token contract to its metadata. A contract
// that does not resolve to a valid asset yields a not_found error.
type AssetMetadataGateway interface {
	LookupAssetMetadata(
		ctx context.Context,
		identity valueobjects.AssetIdentity,
	) (dto.AssetMetadata, *apperrors.AppError)
}
