package in

import (
	"context"

	"rollupbridge/internal/application/dto"
	apperrors "rollupbridge/internal/shared_kernel/errors"
)

type ListAssetsUseCase interface {
	Execute(
		ctx context.Context,
		query dto.ListAssetsQuery,
	) (dto.ListAssetsOutput, *apperrors.AppError)
}
