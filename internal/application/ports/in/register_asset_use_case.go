package in

import (
	"context"

	"rollupbridge/internal/application/dto"
	apperrors "rollupbridge/internal/shared_kernel/errors"
)

type RegisterAssetUseCase interface {
	Execute(
		ctx context.Context,
		command dto.RegisterAssetCommand,
	) (dto.RegisterAssetOutput, *apperrors.AppError)
}
