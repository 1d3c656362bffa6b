//go:build !integration

package addresscodec

import "testing"

func TestChecksumAddressKnownVectors(t *testing.T) {
	vectors := []string{
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		"0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359",
		"0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB",
		"0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb",
	}
	for _, expected := range vectors {
		got, appErr := ChecksumAddress(expected)
		if appErr != nil {
			t.Fatalf("expected no error for %s, got %+v", expected, appErr)
		}
		if got != expected {
			t.Fatalf("checksum of %s came back %s", expected, got)
		}
	}
}

func TestChecksumAddressFromLowercase(t *testing.T) {
	got, appErr := ChecksumAddress("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed")
	if appErr != nil {
		t.Fatalf("expected no error, got %+v", appErr)
	}
	if got != "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed" {
		t.Fatalf("unexpected checksum form: %s", got)
	}
}

func TestChecksumAddressRejectsBadInput(t *testing.T) {
	for _, raw := range []string{"", "0x1234", "5aaeb6053f3e94c9b9a09f33669435e7ef1beae", "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaeZ"} {
		_, appErr := ChecksumAddress(raw)
		if appErr == nil {
			t.Fatalf("expected error for %q", raw)
		}
		if appErr.Code != CodeInvalidAddressFormat {
			t.Fatalf("expected invalid format code for %q, got %s", raw, appErr.Code)
		}
	}
}

func TestVerifyChecksumAcceptsUniformCase(t *testing.T) {
	for _, raw := range []string{
		"0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed",
		"0x5AAEB6053F3E94C9B9A09F33669435E7EF1BEAED",
	} {
		if appErr := VerifyChecksum(raw); appErr != nil {
			t.Fatalf("expected uniform-case address to pass, got %+v", appErr)
		}
	}
}

func TestVerifyChecksumRejectsWrongMixedCase(t *testing.T) {
	appErr := VerifyChecksum("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAeD")
	if appErr == nil {
		t.Fatalf("expected checksum mismatch")
	}
	if appErr.Code != CodeChecksumMismatch {
		t.Fatalf("expected checksum mismatch code, got %s", appErr.Code)
	}
}
