package in

import (
	"context"

	"rollupbridge/internal/application/dto"
	apperrors "rollupbridge/internal/shared_kernel/errors"
)

type RefreshBalancesUseCase interface {
	Execute(
		ctx context.Context,
		command dto.RefreshBalancesCommand,
	) (dto.RefreshBalancesOutput, *apperrors.AppError)
}
