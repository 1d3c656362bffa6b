package in

import (
	"context"

	"rollupbridge/internal/application/dto"
	apperrors "rollupbridge/internal/shared_kernel/errors"
)

type ReleaseLockboxUseCase interface {
	Execute(
		ctx context.Context,
		command dto.ReleaseLockboxCommand,
	) (dto.ReleaseLockboxOutput, *apperrors.AppError)
}
