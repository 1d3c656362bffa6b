package valueobjects

import (
	"strings"

	"rollupbridge/internal/shared_kernel/addresscodec"
	apperrors "rollupbridge/internal/shared_kernel/errors"
)

// NativeAssetIdentity is the sentinel identity of the ledger's native asset.
// Every other identity is a token contract address on the base ledger.
const NativeAssetIdentity = "ETH"

type AssetIdentity string

// NormalizeAssetIdentity accepts the native sentinel (any casing) or a hex
// contract address. Addresses are canonicalized to EIP-55 mixed case so the
// same contract never appears under two identities.
func NormalizeAssetIdentity(raw string) (AssetIdentity, *apperrors.AppError) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", apperrors.NewValidation(
			"invalid_request",
			"asset identity is required",
			map[string]any{"field": "asset"},
		)
	}

	if strings.EqualFold(trimmed, NativeAssetIdentity) {
		return NativeAssetIdentity, nil
	}

	if err := addresscodec.VerifyChecksum(trimmed); err != nil {
		return "", apperrors.NewValidation(
			"invalid_request",
			"asset identity must be ETH or a valid contract address",
			map[string]any{"field": "asset", "reason": string(err.Code)},
		)
	}
	checksummed, err := addresscodec.ChecksumAddress(trimmed)
	if err != nil {
		return "", apperrors.NewValidation(
			"invalid_request",
			"asset identity must be ETH or a valid contract address",
			map[string]any{"field": "asset", "reason": string(err.Code)},
		)
	}

	return AssetIdentity(checksummed), nil
}

func (i AssetIdentity) IsNative() bool {
	return string(i) == NativeAssetIdentity
}

func (i AssetIdentity) String() string {
	return string(i)
}
