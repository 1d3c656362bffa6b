package in

import (
	"context"

	"rollupbridge/internal/application/dto"
	apperrors "rollupbridge/internal/shared_kernel/errors"
)

type GetFundsMessageUseCase interface {
	Execute(
		ctx context.Context,
		query dto.GetFundsMessageQuery,
	) (dto.FundsMessageOutput, *apperrors.AppError)
}
