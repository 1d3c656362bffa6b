package entities

import (
	"strings"

	"github.com/google/uuid"
)

// BridgeIdentity describes the logical connection a session is bound to: the
// rollup endpoint being bridged to and the wallet address submitting from.
// It is immutable; reassigning the identity means starting a new session,
// which invalidates every balance snapshot and resets the funds message.
type BridgeIdentity struct {
	SessionID        string
	RollupEndpointID string
	WalletAddress    string
}

func NewBridgeIdentity(rollupEndpointID, walletAddress string) BridgeIdentity {
	return BridgeIdentity{
		SessionID:        uuid.NewString(),
		RollupEndpointID: strings.TrimSpace(rollupEndpointID),
		WalletAddress:    strings.TrimSpace(walletAddress),
	}
}

// Established reports whether both halves of the identity are known. The
// funds message machine stays in LOADING until this is true.
func (i BridgeIdentity) Established() bool {
	return i.RollupEndpointID != "" && i.WalletAddress != ""
}
