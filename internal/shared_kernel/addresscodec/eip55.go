package addresscodec

import (
	"strings"

	"golang.org/x/crypto/sha3"
)

type ErrorCode string

const (
	CodeInvalidAddressFormat ErrorCode = "invalid_address_format"
	CodeChecksumMismatch     ErrorCode = "address_checksum_mismatch"
)

type AddressError struct {
	Code    ErrorCode
	Message string
}

func (e *AddressError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func legacyKeccak256(input []byte) [32]byte {
	hash := sha3.NewLegacyKeccak256()
	_, _ = hash.Write(input)
	sum := hash.Sum(nil)

	var out [32]byte
	copy(out[:], sum[:32])
	return out
}

func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	default:
		return false
	}
}

// ChecksumAddress renders a 20-byte hex address in EIP-55 mixed-case form.
// The input may be any-cased and may carry a 0x prefix.
func ChecksumAddress(raw string) (string, *AddressError) {
	trimmed := strings.TrimSpace(raw)
	trimmed = strings.TrimPrefix(strings.TrimPrefix(trimmed, "0x"), "0X")
	if len(trimmed) != 40 {
		return "", &AddressError{
			Code:    CodeInvalidAddressFormat,
			Message: "address must be 20 bytes of hex",
		}
	}
	lower := strings.ToLower(trimmed)
	for i := 0; i < len(lower); i++ {
		if !isHexDigit(lower[i]) {
			return "", &AddressError{
				Code:    CodeInvalidAddressFormat,
				Message: "address contains a non-hex character",
			}
		}
	}

	digest := legacyKeccak256([]byte(lower))
	out := make([]byte, 40)
	for i := 0; i < 40; i++ {
		c := lower[i]
		if c >= 'a' && c <= 'f' {
			nibble := digest[i/2]
			if i%2 == 0 {
				nibble >>= 4
			}
			if nibble&0x0f >= 8 {
				c = c - 'a' + 'A'
			}
		}
		out[i] = c
	}

	return "0x" + string(out), nil
}

// VerifyChecksum accepts all-lower and all-upper addresses but rejects a
// mixed-case address whose casing does not match its EIP-55 checksum.
func VerifyChecksum(raw string) *AddressError {
	trimmed := strings.TrimSpace(raw)
	body := strings.TrimPrefix(strings.TrimPrefix(trimmed, "0x"), "0X")

	checksummed, err := ChecksumAddress(trimmed)
	if err != nil {
		return err
	}

	if body == strings.ToLower(body) || body == strings.ToUpper(body) {
		return nil
	}
	if "0x"+body != checksummed {
		return &AddressError{
			Code:    CodeChecksumMismatch,
			Message: "mixed-case address fails EIP-55 checksum",
		}
	}

	return nil
}
