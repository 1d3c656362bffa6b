package out

import (
	"rollupbridge/internal/domain/entities"
	valueobjects "rollupbridge/internal/domain/value_objects"
)

// BalanceSnapshotRepository owns the committed balance snapshots. A tracked
// identity with no committed snapshot is in the "unknown" state.
//
// Writes are guarded optimistically: a refresh reserves a version before
// issuing its balance queries and the commit is rejected when a snapshot with
// an equal or higher version has landed in the meantime. Stale results are
// dropped instead of overwriting fresher data.
type BalanceSnapshotRepository interface {
	// Seed tracks an identity in the unknown state. Idempotent; an existing
	// snapshot is left untouched.
	Seed(identity valueobjects.AssetIdentity)

	// Identities lists every tracked identity, committed or unknown.
	Identities() []valueobjects.AssetIdentity

	// Current returns the last committed snapshot. ok is false while the
	// identity is unknown (never refreshed, or invalidated).
	Current(identity valueobjects.AssetIdentity) (entities.BalanceSnapshot, bool)

	// ReserveVersion hands out the next write version for an identity and
	// tracks the identity as a side effect.
	ReserveVersion(identity valueobjects.AssetIdentity) uint64

	// CommitIfFresh installs the snapshot unless a commit with an equal or
	// higher version already happened. Reports whether the write landed.
	CommitIfFresh(snapshot entities.BalanceSnapshot) bool

	// InvalidateAll drops every committed snapshot and rejects any commit
	// whose version was reserved before the invalidation. Tracked identities
	// remain tracked (registration outlives a session). Only a session reset
	// may call it.
	InvalidateAll()
}
