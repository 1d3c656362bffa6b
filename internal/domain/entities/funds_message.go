package entities

type FundsMessageState string

const (
	FundsMessageLoading      FundsMessageState = "loading"
	FundsMessageShowRequest  FundsMessageState = "show_request"
	FundsMessageShowReceived FundsMessageState = "show_received"
	FundsMessageShowNone     FundsMessageState = "show_none"
)

func (s FundsMessageState) String() string {
	return string(s)
}

// Terminal reports whether no further transition can leave the state. The
// machine is one-directional past LOADING so a racing balance query can never
// flap the prompt: the request prompt and the received confirmation are each
// shown at most once per session.
func (s FundsMessageState) Terminal() bool {
	return s == FundsMessageShowNone || s == FundsMessageShowReceived
}

type FundsMessageEffect string

const (
	// FundsMessageEffectNone means the evaluation is complete.
	FundsMessageEffectNone FundsMessageEffect = "none"
	// FundsMessageEffectRefresh instructs the caller to refresh balances and
	// evaluate again on the refreshed snapshot before any state is committed.
	FundsMessageEffectRefresh FundsMessageEffect = "refresh_and_reevaluate"
)

// FundsMessage is the per-session prompt state machine. It is a plain object
// with explicit transitions; callers serialize access and run the effects it
// asks for. Not safe for concurrent use.
type FundsMessage struct {
	state FundsMessageState
}

func NewFundsMessage() *FundsMessage {
	return &FundsMessage{state: FundsMessageLoading}
}

func (m *FundsMessage) State() FundsMessageState {
	return m.state
}

// Reset returns the machine to LOADING. The only legitimate caller is a
// session reset on identity change.
func (m *FundsMessage) Reset() {
	m.state = FundsMessageLoading
}

// Evaluate advances the machine given the funds-need verdict for the current
// snapshot. snapshotFresh must be true only when the verdict was computed on
// a snapshot refreshed during this evaluation; a stale zero balance at
// session start is not enough to commit to SHOW_REQUEST.
func (m *FundsMessage) Evaluate(identityEstablished, needsFunds, snapshotFresh bool) (FundsMessageState, FundsMessageEffect) {
	if !identityEstablished {
		return m.state, FundsMessageEffectNone
	}

	switch m.state {
	case FundsMessageLoading:
		if !needsFunds {
			m.state = FundsMessageShowNone
			return m.state, FundsMessageEffectNone
		}
		if !snapshotFresh {
			return m.state, FundsMessageEffectRefresh
		}
		m.state = FundsMessageShowRequest
		return m.state, FundsMessageEffectNone
	case FundsMessageShowRequest:
		if !needsFunds {
			m.state = FundsMessageShowReceived
		}
		return m.state, FundsMessageEffectNone
	default:
		// SHOW_NONE and SHOW_RECEIVED are terminal.
		return m.state, FundsMessageEffectNone
	}
}
