package dto

import "time"

type RefreshBalancesCommand struct {
	// Identities limits the refresh to the named assets. Empty means every
	// registered asset.
	Identities []string `json:"identities,omitempty"`
}

type RefreshBalancesOutput struct {
	Snapshots []BalanceSnapshotResource `json:"snapshots"`
	Failures  []RefreshFailure          `json:"failures,omitempty"`
}

// RefreshFailure reports one identity whose balance queries failed. Sibling
// identities in the same batch are unaffected.
type RefreshFailure struct {
	Identity string         `json:"identity"`
	Code     string         `json:"code"`
	Message  string         `json:"message"`
	Details  map[string]any `json:"details,omitempty"`
}

type GetBalancesQuery struct {
	// Identity narrows the read to one asset. Empty returns all.
	Identity string `json:"identity,omitempty"`
}

type GetBalancesOutput struct {
	Balances []BalanceSnapshotResource `json:"balances"`
	// Unknown lists registered assets that have not completed a refresh yet.
	Unknown []string `json:"unknown,omitempty"`
}

type BalanceSnapshotResource struct {
	Identity            string    `json:"identity"`
	BaseLedgerBalance   string    `json:"base_ledger_balance"`
	RollupLedgerBalance string    `json:"rollup_ledger_balance"`
	LockboxBalance      string    `json:"lockbox_balance"`
	Approved            bool      `json:"approved"`
	Version             uint64    `json:"version"`
	RefreshedAt         time.Time `json:"refreshed_at"`
}
