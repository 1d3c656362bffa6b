package use_cases

import (
	"context"

	"rollupbridge/internal/application/dto"
	portsin "rollupbridge/internal/application/ports/in"
	portsout "rollupbridge/internal/application/ports/out"
	apperrors "rollupbridge/internal/shared_kernel/errors"
)

type listAssetsUseCase struct {
	assets portsout.AssetRepository
}

func NewListAssetsUseCase(assets portsout.AssetRepository) portsin.ListAssetsUseCase {
	return &listAssetsUseCase{assets: assets}
}

func (u *listAssetsUseCase) Execute(_ context.Context, _ dto.ListAssetsQuery) (dto.ListAssetsOutput, *apperrors.AppError) {
	if u.assets == nil {
		return dto.ListAssetsOutput{}, apperrors.NewInternal(
			"asset_repository_missing",
			"asset repository is required",
			nil,
		)
	}

	registered := u.assets.List()
	resources := make([]dto.AssetResource, 0, len(registered))
	for _, asset := range registered {
		resources = append(resources, assetResource(asset))
	}

	return dto.ListAssetsOutput{Assets: resources}, nil
}
