package entities

import (
	valueobjects "rollupbridge/internal/domain/value_objects"
	apperrors "rollupbridge/internal/shared_kernel/errors"
)

// Asset is immutable once registered; the registry hands out copies by value
// so no caller can mutate shared metadata.
type Asset struct {
	Identity valueobjects.AssetIdentity
	Symbol   string
	Decimals int
	Name     string
}

type NewAssetInput struct {
	Identity valueobjects.AssetIdentity
	Symbol   string
	Decimals int
	Name     string
}

func NewAsset(input NewAssetInput) (Asset, *apperrors.AppError) {
	if input.Identity == "" {
		return Asset{}, apperrors.NewInternal(
			"asset_identity_missing",
			"asset identity is required",
			nil,
		)
	}
	if input.Symbol == "" {
		return Asset{}, apperrors.NewInternal(
			"asset_symbol_missing",
			"asset symbol is required",
			map[string]any{"identity": input.Identity.String()},
		)
	}
	if input.Decimals < 0 {
		return Asset{}, apperrors.NewInternal(
			"asset_decimals_invalid",
			"asset decimals must be non-negative",
			map[string]any{"identity": input.Identity.String(), "decimals": input.Decimals},
		)
	}

	name := input.Name
	if name == "" {
		name = input.Symbol
	}

	return Asset{
		Identity: input.Identity,
		Symbol:   input.Symbol,
		Decimals: input.Decimals,
		Name:     name,
	}, nil
}

func (a Asset) IsNative() bool {
	return a.Identity.IsNative()
}
