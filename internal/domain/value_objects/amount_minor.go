package valueobjects

import (
	"math/big"
	"regexp"
	"strings"

	apperrors "rollupbridge/internal/shared_kernel/errors"
)

var amountMinorPattern = regexp.MustCompile(`^[0-9]{1,78}$`)

// NormalizeAmountMinor parses a transfer amount given as a decimal string in
// the asset's smallest unit. Zero is rejected: a zero-amount ledger call is
// always a caller mistake.
func NormalizeAmountMinor(raw string) (*big.Int, *apperrors.AppError) {
	value := strings.TrimSpace(raw)
	if !amountMinorPattern.MatchString(value) {
		return nil, apperrors.NewValidation(
			"invalid_request",
			"amount_minor must be an integer string with 1 to 78 digits",
			map[string]any{"field": "amount_minor"},
		)
	}

	amount := new(big.Int)
	if _, ok := amount.SetString(value, 10); !ok {
		return nil, apperrors.NewValidation(
			"invalid_request",
			"amount_minor is not a valid integer",
			map[string]any{"field": "amount_minor"},
		)
	}
	if amount.Sign() == 0 {
		return nil, apperrors.NewValidation(
			"invalid_request",
			"amount_minor must be greater than zero",
			map[string]any{"field": "amount_minor"},
		)
	}

	return amount, nil
}
