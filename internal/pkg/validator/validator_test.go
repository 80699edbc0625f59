package validator

import "testing"

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"asha@payease.in", true},
		{"asha.rao+payroll@payease.co.in", true},
		{"asha@", false},
		{"@payease.in", false},
		{"asha payease.in", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsValidEmail(tt.email); got != tt.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	tests := []struct {
		date string
		want bool
	}{
		{"2026-04-30", true},
		{"2026-02-29", false},
		{"30-04-2026", false},
		{"2026/04/30", false},
		{"", false},
	}
	for _, tt := range tests {
		if _, got := IsValidDate(tt.date); got != tt.want {
			t.Errorf("IsValidDate(%q) = %v, want %v", tt.date, got, tt.want)
		}
	}
}

func TestIsValidClockTime(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"09:30", true},
		{"23:59", true},
		{"24:00", false},
		{"9:3", false},
		{"", false},
	}
	for _, tt := range tests {
		if _, got := IsValidClockTime(tt.in); got != tt.want {
			t.Errorf("IsValidClockTime(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsEmpty(t *testing.T) {
	if !IsEmpty("   ") {
		t.Error("expected whitespace-only string to be empty")
	}
	if IsEmpty(" x ") {
		t.Error("expected non-blank string to not be empty")
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "is required"},
		{Field: "annual_ctc", Message: "must be non-negative"},
	}
	if errs.Error() != "email: is required; annual_ctc: must be non-negative" {
		t.Errorf("unexpected Error(): %s", errs.Error())
	}
	m := errs.ToMap()
	if m["email"] != "is required" || m["annual_ctc"] != "must be non-negative" {
		t.Errorf("unexpected ToMap(): %v", m)
	}
}
