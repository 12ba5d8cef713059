package model

import "testing"

func TestParseMovementType(t *testing.T) {
	valid := []string{"stock_in", "sell", "remove"}
	for _, s := range valid {
		kind, err := ParseMovementType(s)
		if err != nil {
			t.Errorf("ParseMovementType(%q) returned error: %v", s, err)
		}
		if kind.String() != s {
			t.Errorf("ParseMovementType(%q) = %q", s, kind)
		}
	}

	invalid := []string{"", "stockin", "SELL", "transfer", "stock_in "}
	for _, s := range invalid {
		if _, err := ParseMovementType(s); err == nil {
			t.Errorf("ParseMovementType(%q) should have failed", s)
		}
	}
}
