package in

import (
	"context"

	"rollupbridge/internal/application/dto"
	apperrors "rollupbridge/internal/shared_kernel/errors"
)

type EvaluateFundsMessageUseCase interface {
	Execute(
		ctx context.Context,
		command dto.EvaluateFundsMessageCommand,
	) (dto.EvaluateFundsMessageOutput, *apperrors.AppError)
}
