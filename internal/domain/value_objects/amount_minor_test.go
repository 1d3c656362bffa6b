//go:build !integration

package valueobjects

import "testing"

func TestNormalizeAmountMinorAcceptsLargeIntegers(t *testing.T) {
	amount, appErr := NormalizeAmountMinor("1000000000000000000")
	if appErr != nil {
		t.Fatalf("expected no error, got %+v", appErr)
	}
	if amount.String() != "1000000000000000000" {
		t.Fatalf("unexpected amount: %s", amount)
	}
}

func TestNormalizeAmountMinorTrimsWhitespace(t *testing.T) {
	amount, appErr := NormalizeAmountMinor("  42  ")
	if appErr != nil {
		t.Fatalf("expected no error, got %+v", appErr)
	}
	if amount.Int64() != 42 {
		t.Fatalf("unexpected amount: %s", amount)
	}
}

func TestNormalizeAmountMinorRejectsZero(t *testing.T) {
	for _, raw := range []string{"0", "000"} {
		if _, appErr := NormalizeAmountMinor(raw); appErr == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestNormalizeAmountMinorRejectsNonIntegers(t *testing.T) {
	for _, raw := range []string{"", "-5", "1.5", "1e18", "0x10", "abc"} {
		_, appErr := NormalizeAmountMinor(raw)
		if appErr == nil {
			t.Fatalf("expected error for %q", raw)
		}
		if appErr.Code != "invalid_request" {
			t.Fatalf("expected invalid_request for %q, got %s", raw, appErr.Code)
		}
	}
}
