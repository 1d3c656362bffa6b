package devtest

import (
	"encoding/json"
	"math/big"
	"strings"

	apperrors "rollupbridge/internal/shared_kernel/errors"
)

// Standard ERC-20 function selectors.
const (
	selectorBalanceOf = "0x70a08231"
	selectorAllowance = "0xdd62ed3e"
	selectorDecimals  = "0x313ce567"
	selectorSymbol    = "0x95d89b41"
	selectorName      = "0x06fdde03"
)

func paddedAddress(address string) (string, *apperrors.AppError) {
	normalized := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(address)), "0x")
	if len(normalized) != 40 {
		return "", apperrors.NewInternal(
			"ledger_bridge_call_failed",
			"invalid address for contract call data",
			map[string]any{"address": address},
		)
	}
	return strings.Repeat("0", 24) + normalized, nil
}

func buildBalanceOfData(holder string) (string, *apperrors.AppError) {
	padded, appErr := paddedAddress(holder)
	if appErr != nil {
		return "", appErr
	}
	return selectorBalanceOf + padded, nil
}

func buildAllowanceData(owner, spender string) (string, *apperrors.AppError) {
	paddedOwner, appErr := paddedAddress(owner)
	if appErr != nil {
		return "", appErr
	}
	paddedSpender, appErr := paddedAddress(spender)
	if appErr != nil {
		return "", appErr
	}
	return selectorAllowance + paddedOwner + paddedSpender, nil
}

func parseHexQuantity(raw json.RawMessage) (*big.Int, *apperrors.AppError) {
	var hexValue string
	if err := json.Unmarshal(raw, &hexValue); err != nil {
		return nil, apperrors.NewInternal(
			"ledger_bridge_call_failed",
			"failed to parse hex quantity",
			map[string]any{"error": err.Error()},
		)
	}

	trimmed := strings.TrimSpace(hexValue)
	if trimmed == "" {
		return nil, apperrors.NewInternal(
			"ledger_bridge_call_failed",
			"hex quantity is empty",
			nil,
		)
	}

	value := new(big.Int)
	if strings.HasPrefix(trimmed, "0x") || strings.HasPrefix(trimmed, "0X") {
		trimmed = trimmed[2:]
	}
	if trimmed == "" {
		trimmed = "0"
	}
	if _, ok := value.SetString(trimmed, 16); !ok {
		return nil, apperrors.NewInternal(
			"ledger_bridge_call_failed",
			"invalid hex quantity",
			map[string]any{"value": hexValue},
		)
	}

	return value, nil
}

// parseABIString decodes the single-string return of an eth_call: a 32-byte
// offset word, a 32-byte length word, then the UTF-8 bytes.
func parseABIString(raw json.RawMessage) (string, *apperrors.AppError) {
	var hexValue string
	if err := json.Unmarshal(raw, &hexValue); err != nil {
		return "", apperrors.NewInternal(
			"ledger_bridge_call_failed",
			"failed to parse contract string return",
			map[string]any{"error": err.Error()},
		)
	}

	body := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(hexValue), "0x"), "0X")
	if len(body) < 128 {
		return "", apperrors.NewInternal(
			"ledger_bridge_call_failed",
			"contract string return is too short",
			map[string]any{"value": hexValue},
		)
	}

	length := new(big.Int)
	if _, ok := length.SetString(body[64:128], 16); !ok {
		return "", apperrors.NewInternal(
			"ledger_bridge_call_failed",
			"contract string length is not hex",
			map[string]any{"value": hexValue},
		)
	}
	// The length word is attacker-sized input: converting before bounds
	// checking can truncate or overflow, so cap it against the payload first.
	if !length.IsInt64() || length.Int64() > int64(len(body)/2) {
		return "", apperrors.NewInternal(
			"ledger_bridge_call_failed",
			"contract string length out of range",
			map[string]any{"value": hexValue, "length": length.String()},
		)
	}
	byteLen := int(length.Int64())
	if 128+byteLen*2 > len(body) {
		return "", apperrors.NewInternal(
			"ledger_bridge_call_failed",
			"contract string length out of range",
			map[string]any{"value": hexValue, "length": byteLen},
		)
	}

	decoded := make([]byte, 0, byteLen)
	for i := 0; i < byteLen; i++ {
		chunk := body[128+i*2 : 130+i*2]
		b := new(big.Int)
		if _, ok := b.SetString(chunk, 16); !ok {
			return "", apperrors.NewInternal(
				"ledger_bridge_call_failed",
				"contract string byte is not hex",
				map[string]any{"value": hexValue},
			)
		}
		decoded = append(decoded, byte(b.Int64()))
	}

	return string(decoded), nil
}
