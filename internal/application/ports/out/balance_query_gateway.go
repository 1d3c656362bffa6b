package out

import (
	"context"
	"math/big"

	valueobjects "rollupbridge/internal/domain/value_objects"
	apperrors "rollupbridge/internal/shared_kernel/errors"
)

// BalanceQueryGateway reads balances from the ledgers. One call per
// (asset, location) pair; the refresh use case fans these out and commits
// snapshots atomically per identity.
type BalanceQueryGateway interface {
	QueryBalance(
		ctx context.Context,
		identity valueobjects.AssetIdentity,
		location valueobjects.LedgerLocation,
	) (*big.Int, *apperrors.AppError)

	// QueryApproved reports the bridge allowance flag for a token on the
	// base ledger. Meaningless for the native asset; callers must not ask.
	QueryApproved(
		ctx context.Context,
		identity valueobjects.AssetIdentity,
	) (bool, *apperrors.AppError)
}
