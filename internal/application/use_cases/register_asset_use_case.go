package use_cases

import (
	"context"

	"rollupbridge/internal/application/dto"
	portsin "rollupbridge/internal/application/ports/in"
	portsout "rollupbridge/internal/application/ports/out"
	"rollupbridge/internal/domain/entities"
	valueobjects "rollupbridge/internal/domain/value_objects"
	apperrors "rollupbridge/internal/shared_kernel/errors"
)

type registerAssetUseCase struct {
	assets    portsout.AssetRepository
	metadata  portsout.AssetMetadataGateway
	snapshots portsout.BalanceSnapshotRepository
}

func NewRegisterAssetUseCase(
	assets portsout.AssetRepository,
	metadata portsout.AssetMetadataGateway,
	snapshots portsout.BalanceSnapshotRepository,
) portsin.RegisterAssetUseCase {
	return &registerAssetUseCase{assets: assets, metadata: metadata, snapshots: snapshots}
}

func (u *registerAssetUseCase) Execute(
	ctx context.Context,
	command dto.RegisterAssetCommand,
) (dto.RegisterAssetOutput, *apperrors.AppError) {
	if u.assets == nil || u.snapshots == nil {
		return dto.RegisterAssetOutput{}, apperrors.NewInternal(
			"asset_registry_dependencies_missing",
			"asset repository and snapshot repository are required",
			nil,
		)
	}
	if u.metadata == nil {
		return dto.RegisterAssetOutput{}, apperrors.NewInternal(
			"asset_metadata_gateway_missing",
			"asset metadata gateway is required",
			nil,
		)
	}

	identity, identityErr := valueobjects.NormalizeAssetIdentity(command.Identity)
	if identityErr != nil {
		return dto.RegisterAssetOutput{}, identityErr
	}

	// Idempotent: a known identity returns the stored asset untouched.
	if existing, found := u.assets.Get(identity); found {
		return dto.RegisterAssetOutput{Asset: assetResource(existing)}, nil
	}

	metadata, lookupErr := u.metadata.LookupAssetMetadata(ctx, identity)
	if lookupErr != nil {
		if lookupErr.Type == apperrors.TypeNotFound {
			return dto.RegisterAssetOutput{}, apperrors.NewNotFound(
				"unknown_asset",
				"identity does not resolve to a valid asset contract",
				map[string]any{"identity": identity.String()},
			)
		}
		return dto.RegisterAssetOutput{}, lookupErr
	}

	asset, assetErr := entities.NewAsset(entities.NewAssetInput{
		Identity: identity,
		Symbol:   metadata.Symbol,
		Decimals: metadata.Decimals,
		Name:     metadata.Name,
	})
	if assetErr != nil {
		return dto.RegisterAssetOutput{}, assetErr
	}

	u.assets.Put(asset)
	// Registration seeds the unknown snapshot placeholder; refreshing it is
	// the caller's responsibility.
	u.snapshots.Seed(identity)

	return dto.RegisterAssetOutput{Asset: assetResource(asset)}, nil
}

func assetResource(asset entities.Asset) dto.AssetResource {
	return dto.AssetResource{
		Identity: asset.Identity.String(),
		Symbol:   asset.Symbol,
		Decimals: asset.Decimals,
		Name:     asset.Name,
		Native:   asset.IsNative(),
	}
}
