package use_cases

import (
	"sync"

	"rollupbridge/internal/domain/entities"
)

// BridgeSession is the explicit handle for per-session state: the bridge
// identity and the funds message machine tied to it. Use cases receive the
// session instead of reaching into ambient globals, and its lifecycle follows
// BridgeIdentity assignment.
type BridgeSession struct {
	mu           sync.Mutex
	identity     entities.BridgeIdentity
	fundsMessage *entities.FundsMessage
	evaluating   bool
}

func NewBridgeSession(rollupEndpointID, walletAddress string) *BridgeSession {
	return &BridgeSession{
		identity:     entities.NewBridgeIdentity(rollupEndpointID, walletAddress),
		fundsMessage: entities.NewFundsMessage(),
	}
}

func (s *BridgeSession) Identity() entities.BridgeIdentity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

func (s *BridgeSession) FundsMessageState() entities.FundsMessageState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fundsMessage.State()
}

// Reset assigns a fresh identity and returns the funds message to LOADING.
// The caller is responsible for invalidating balance snapshots alongside.
func (s *BridgeSession) Reset(rollupEndpointID, walletAddress string) entities.BridgeIdentity {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = entities.NewBridgeIdentity(rollupEndpointID, walletAddress)
	s.fundsMessage.Reset()
	return s.identity
}

// EvaluateFundsMessage runs one machine transition under the session lock.
func (s *BridgeSession) EvaluateFundsMessage(needsFunds, snapshotFresh bool) (entities.FundsMessageState, entities.FundsMessageEffect) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fundsMessage.Evaluate(s.identity.Established(), needsFunds, snapshotFresh)
}

// EvaluateFundsMessageIfCurrent runs one machine transition only while the
// session id still matches the one captured before a suspension point. A
// reset landing mid-evaluation changes the id, and the stale evaluation must
// not commit into the new session's machine.
func (s *BridgeSession) EvaluateFundsMessageIfCurrent(
	sessionID string,
	needsFunds, snapshotFresh bool,
) (entities.FundsMessageState, entities.FundsMessageEffect, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity.SessionID != sessionID {
		return s.fundsMessage.State(), entities.FundsMessageEffectNone, false
	}
	state, effect := s.fundsMessage.Evaluate(s.identity.Established(), needsFunds, snapshotFresh)
	return state, effect, true
}

// BeginEvaluation admits at most one in-flight funds message evaluation per
// session. Callers that get true must call EndEvaluation on every exit path.
func (s *BridgeSession) BeginEvaluation() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.evaluating {
		return false
	}
	s.evaluating = true
	return true
}

func (s *BridgeSession) EndEvaluation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evaluating = false
}
