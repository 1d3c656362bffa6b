package in

import (
	"context"

	"rollupbridge/internal/application/dto"
	apperrors "rollupbridge/internal/shared_kernel/errors"
)

type ExecuteTransferUseCase interface {
	Execute(
		ctx context.Context,
		command dto.ExecuteTransferCommand,
	) (dto.ExecuteTransferOutput, *apperrors.AppError)
}
