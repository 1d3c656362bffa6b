package out

import (
	"context"
	"math/big"

	valueobjects "rollupbridge/internal/domain/value_objects"
	apperrors "rollupbridge/internal/shared_kernel/errors"
)

// LedgerTransferGateway submits bridge transactions against the underlying
// ledgers. Every call is asynchronous from the ledger's point of view but
// blocks the caller until the bridge accepts or rejects the submission; this
// core never cancels a call mid-flight.
type LedgerTransferGateway interface {
	DepositNative(ctx context.Context, amount *big.Int) *apperrors.AppError
	DepositToken(ctx context.Context, token valueobjects.AssetIdentity, amount *big.Int) *apperrors.AppError
	WithdrawNative(ctx context.Context, amount *big.Int) *apperrors.AppError
	WithdrawToken(ctx context.Context, token valueobjects.AssetIdentity, amount *big.Int) *apperrors.AppError
	Approve(ctx context.Context, token valueobjects.AssetIdentity) *apperrors.AppError
	WithdrawLockboxNative(ctx context.Context) *apperrors.AppError
	WithdrawLockboxToken(ctx context.Context, token valueobjects.AssetIdentity) *apperrors.AppError
}
