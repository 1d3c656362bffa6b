package in

import (
	"context"

	"rollupbridge/internal/application/dto"
	apperrors "rollupbridge/internal/shared_kernel/errors"
)

type GetBalancesUseCase interface {
	Execute(
		ctx context.Context,
		query dto.GetBalancesQuery,
	) (dto.GetBalancesOutput, *apperrors.AppError)
}
