package valueobjects

// LedgerLocation names one of the three balance locations a single asset can
// occupy: the base ledger, the rollup ledger, or the base-ledger lockbox
// holding withdrawn-but-unclaimed funds.
type LedgerLocation string

const (
	LedgerLocationBase    LedgerLocation = "base"
	LedgerLocationRollup  LedgerLocation = "rollup"
	LedgerLocationLockbox LedgerLocation = "lockbox"
)

func (l LedgerLocation) String() string {
	return string(l)
}

func BalanceLocations() []LedgerLocation {
	return []LedgerLocation{LedgerLocationBase, LedgerLocationRollup, LedgerLocationLockbox}
}
