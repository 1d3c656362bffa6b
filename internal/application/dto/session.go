package dto

type ResetSessionCommand struct {
	WalletAddress    string `json:"wallet_address"`
	RollupEndpointID string `json:"rollup_endpoint_id,omitempty"`
}

type ResetSessionOutput struct {
	SessionID          string `json:"session_id"`
	RollupEndpointID   string `json:"rollup_endpoint_id"`
	WalletAddress      string `json:"wallet_address"`
	SessionEstablished bool   `json:"session_established"`
	FundsMessageState  string `json:"funds_message_state"`
}
