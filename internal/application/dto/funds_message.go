package dto

type GetFundsMessageQuery struct{}

type FundsMessageOutput struct {
	State     string `json:"state"`
	SessionID string `json:"session_id"`
	// TransferInFlight is the advisory busy flag: a transfer or lockbox
	// release holds the account right now, so the UI should disable both.
	TransferInFlight bool `json:"transfer_in_flight"`
}

type EvaluateFundsMessageCommand struct{}

type EvaluateFundsMessageOutput struct {
	State string `json:"state"`
	// Refreshed reports whether this evaluation had to refresh balances
	// before committing to a state.
	Refreshed bool `json:"refreshed"`
}
