package payroll

import "testing"

func TestRunStatusTransitions(t *testing.T) {
	cases := []struct {
		from RunStatus
		to   RunStatus
		ok   bool
	}{
		{StatusDraft, StatusProcessing, true},
		{StatusProcessing, StatusFinalized, true},
		{StatusFinalized, StatusPaid, true},
		{StatusDraft, StatusFinalized, false},
		{StatusDraft, StatusPaid, false},
		{StatusProcessing, StatusDraft, false},
		{StatusFinalized, StatusDraft, false},
		{StatusPaid, StatusDraft, false},
		{StatusPaid, StatusPaid, false},
	}
	for _, c := range cases {
		if got := c.from.CanTransitionTo(c.to); got != c.ok {
			t.Errorf("%s -> %s = %v, want %v", c.from, c.to, got, c.ok)
		}
	}
}

func TestRunStatusValid(t *testing.T) {
	for _, s := range []RunStatus{StatusDraft, StatusProcessing, StatusFinalized, StatusPaid} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if RunStatus("reviewed").Valid() {
		t.Error("unknown status should be invalid")
	}
}
