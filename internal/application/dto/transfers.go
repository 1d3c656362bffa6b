package dto

type ExecuteTransferCommand struct {
	Direction   string `json:"direction"`
	Asset       string `json:"asset"`
	AmountMinor string `json:"amount_minor"`
}

type ExecuteTransferOutput struct {
	Direction   string `json:"direction"`
	Asset       string `json:"asset"`
	AmountMinor string `json:"amount_minor"`
	// ApprovalPerformed reports whether an approve step ran before the
	// deposit in this invocation.
	ApprovalPerformed bool `json:"approval_performed"`
}

type ReleaseLockboxCommand struct {
	Asset string `json:"asset"`
}

type ReleaseLockboxOutput struct {
	Asset string `json:"asset"`
}
