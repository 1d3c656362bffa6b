package out

import (
	"context"

	apperrors "rollupbridge/internal/shared_kernel/errors"
)

// OpenAPISpecReadModel serves the API description document for the inbound
// HTTP surface.
type OpenAPISpecReadModel interface {
	Read(ctx context.Context) ([]byte, string, *apperrors.AppError)
}
