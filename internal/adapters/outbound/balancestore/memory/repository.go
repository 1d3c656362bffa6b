package memory

import (
	"sort"
	"sync"

	portsout "rollupbridge/internal/application/ports/out"
	"rollupbridge/internal/domain/entities"
	valueobjects "rollupbridge/internal/domain/value_objects"
)

type identityState struct {
	snapshot    entities.BalanceSnapshot
	committed   bool
	nextVersion uint64
	// floorVersion rejects commits reserved before the last invalidation;
	// a refresh in flight across a session reset must not leak its result
	// into the new session.
	floorVersion uint64
}

// Repository holds the committed balance snapshots for one process. It is
// the only writer of snapshots; everything else reads through Current.
type Repository struct {
	mu     sync.RWMutex
	states map[valueobjects.AssetIdentity]*identityState
}

var _ portsout.BalanceSnapshotRepository = (*Repository)(nil)

func NewRepository() *Repository {
	return &Repository{states: map[valueobjects.AssetIdentity]*identityState{}}
}

func (r *Repository) Seed(identity valueobjects.AssetIdentity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stateFor(identity)
}

func (r *Repository) Identities() []valueobjects.AssetIdentity {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]valueobjects.AssetIdentity, 0, len(r.states))
	for identity := range r.states {
		out = append(out, identity)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (r *Repository) Current(identity valueobjects.AssetIdentity) (entities.BalanceSnapshot, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	state, tracked := r.states[identity]
	if !tracked || !state.committed {
		return entities.BalanceSnapshot{}, false
	}
	return state.snapshot, true
}

func (r *Repository) ReserveVersion(identity valueobjects.AssetIdentity) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	state := r.stateFor(identity)
	state.nextVersion++
	return state.nextVersion
}

func (r *Repository) CommitIfFresh(snapshot entities.BalanceSnapshot) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	state := r.stateFor(snapshot.Identity)
	if snapshot.Version <= state.floorVersion {
		return false
	}
	if state.committed && snapshot.Version <= state.snapshot.Version {
		return false
	}
	state.snapshot = snapshot
	state.committed = true
	return true
}

func (r *Repository) InvalidateAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, state := range r.states {
		state.committed = false
		state.snapshot = entities.BalanceSnapshot{}
		state.floorVersion = state.nextVersion
	}
}

// stateFor must be called with the write lock held.
func (r *Repository) stateFor(identity valueobjects.AssetIdentity) *identityState {
	state, tracked := r.states[identity]
	if !tracked {
		state = &identityState{}
		r.states[identity] = state
	}
	return state
}
