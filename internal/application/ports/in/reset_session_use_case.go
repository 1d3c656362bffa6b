package in

import (
	"context"

	"rollupbridge/internal/application/dto"
	apperrors "rollupbridge/internal/shared_kernel/errors"
)

type ResetSessionUseCase interface {
	Execute(
		ctx context.Context,
		command dto.ResetSessionCommand,
	) (dto.ResetSessionOutput, *apperrors.AppError)
}
