package use_cases

import "sync"

// AccountGate is the genuine mutual exclusion for ledger-submitting
// operations. Transfers and lockbox releases both submit transactions from
// the same account, so they share one gate; an overlapping pair would race on
// nonce ordering at the ledger layer.
//
// TryAcquire never blocks: a second caller while one operation is outstanding
// is rejected, not queued. InFlight is the advisory read the UI uses to
// disable its buttons; it is not a lock.
type AccountGate struct {
	mu       sync.Mutex
	inFlight bool
}

func NewAccountGate() *AccountGate {
	return &AccountGate{}
}

func (g *AccountGate) TryAcquire() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.inFlight {
		return false
	}
	g.inFlight = true
	return true
}

func (g *AccountGate) Release() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.inFlight = false
}

func (g *AccountGate) InFlight() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.inFlight
}
