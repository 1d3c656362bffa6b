package entities

import (
	"math/big"
	"time"

	valueobjects "rollupbridge/internal/domain/value_objects"
	apperrors "rollupbridge/internal/shared_kernel/errors"
)

// BalanceSnapshot is the last committed view of one asset across both ledgers
// and the lockbox. A snapshot only exists after a refresh has completed for
// the asset; "never refreshed" is the absence of a snapshot, not a snapshot
// full of zeroes.
//
// Version is assigned by the store before the balance queries are issued and
// checked again at commit time, so a refresh that completes after a newer one
// cannot clobber fresher data.
type BalanceSnapshot struct {
	Identity            valueobjects.AssetIdentity
	BaseLedgerBalance   *big.Int
	RollupLedgerBalance *big.Int
	LockboxBalance      *big.Int
	Approved            bool
	Version             uint64
	RefreshedAt         time.Time
}

type NewBalanceSnapshotInput struct {
	Identity            valueobjects.AssetIdentity
	BaseLedgerBalance   *big.Int
	RollupLedgerBalance *big.Int
	LockboxBalance      *big.Int
	Approved            bool
	Version             uint64
	RefreshedAt         time.Time
}

func NewBalanceSnapshot(input NewBalanceSnapshotInput) (BalanceSnapshot, *apperrors.AppError) {
	if input.Identity == "" {
		return BalanceSnapshot{}, apperrors.NewInternal(
			"balance_snapshot_identity_missing",
			"balance snapshot identity is required",
			nil,
		)
	}
	for field, balance := range map[string]*big.Int{
		"base_ledger_balance":   input.BaseLedgerBalance,
		"rollup_ledger_balance": input.RollupLedgerBalance,
		"lockbox_balance":       input.LockboxBalance,
	} {
		if balance == nil {
			return BalanceSnapshot{}, apperrors.NewInternal(
				"balance_snapshot_field_missing",
				"balance snapshot field is required once refreshed",
				map[string]any{"identity": input.Identity.String(), "field": field},
			)
		}
		if balance.Sign() < 0 {
			return BalanceSnapshot{}, apperrors.NewInternal(
				"balance_snapshot_field_negative",
				"balance snapshot field must be non-negative",
				map[string]any{"identity": input.Identity.String(), "field": field},
			)
		}
	}

	return BalanceSnapshot{
		Identity:            input.Identity,
		BaseLedgerBalance:   new(big.Int).Set(input.BaseLedgerBalance),
		RollupLedgerBalance: new(big.Int).Set(input.RollupLedgerBalance),
		LockboxBalance:      new(big.Int).Set(input.LockboxBalance),
		Approved:            input.Approved,
		Version:             input.Version,
		RefreshedAt:         input.RefreshedAt,
	}, nil
}

func (s BalanceSnapshot) RollupBalanceIsZero() bool {
	return s.RollupLedgerBalance == nil || s.RollupLedgerBalance.Sign() == 0
}
