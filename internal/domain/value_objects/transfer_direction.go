package valueobjects

import (
	"strings"

	apperrors "rollupbridge/internal/shared_kernel/errors"
)

type TransferDirection string

const (
	TransferDirectionToRollup TransferDirection = "to_rollup"
	TransferDirectionToBase   TransferDirection = "to_base"
)

func ParseTransferDirection(raw string) (TransferDirection, *apperrors.AppError) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(TransferDirectionToRollup):
		return TransferDirectionToRollup, nil
	case string(TransferDirectionToBase):
		return TransferDirectionToBase, nil
	default:
		return "", apperrors.NewValidation(
			"invalid_request",
			"direction must be to_rollup or to_base",
			map[string]any{"field": "direction", "direction": raw},
		)
	}
}

func (d TransferDirection) String() string {
	return string(d)
}
