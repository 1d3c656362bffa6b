package policies

import (
	"rollupbridge/internal/domain/entities"
)

// FundsNeedInput carries the two snapshots the verdict depends on. A nil
// snapshot pointer means the asset has never completed a refresh; that
// "unknown" state is deliberately distinct from a zero balance.
type FundsNeedInput struct {
	Native          *entities.BalanceSnapshot
	ReferenceToken  *entities.BalanceSnapshot
	ReferenceListed bool
}

// NeedsFunds is the pure predicate behind the funds-message prompt: the user
// lacks usable rollup funds when the native rollup balance is zero (or still
// unknown), or when the configured reference token is listed but its rollup
// balance is unknown or zero. No I/O, deterministic, trivially unit-testable.
func NeedsFunds(input FundsNeedInput) bool {
	if input.Native == nil || input.Native.RollupBalanceIsZero() {
		return true
	}
	if input.ReferenceListed {
		if input.ReferenceToken == nil || input.ReferenceToken.RollupBalanceIsZero() {
			return true
		}
	}
	return false
}
