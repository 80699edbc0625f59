package salary

import "testing"

func TestProfessionalTax(t *testing.T) {
	cases := []struct {
		state string
		gross int64
		want  int64
	}{
		{"Karnataka", 15000, 0},
		{"Karnataka", 15001, 200},
		{"Maharashtra", 7500, 0},
		{"Maharashtra", 7501, 175},
		{"Maharashtra", 10001, 200},
		{"Tamil Nadu", 12500, 0},
		{"Tamil Nadu", 12501, 115},
		{"Tamil Nadu", 15001, 180},
		{"Tamil Nadu", 21001, 208},
		{"Telangana", 20000, 200},
		{"Gujarat", 100000, 0},
		{"Rajasthan", 100000, 0},
		{"Delhi", 100000, 0},
		{"karnataka", 20000, 200}, // case-sensitive miss, Karnataka fallback
		{"Punjab", 14000, 0},      // fallback below Karnataka threshold
	}
	for _, c := range cases {
		if got := ProfessionalTax(c.gross, c.state); got != c.want {
			t.Errorf("ProfessionalTax(%d, %q) = %d, want %d", c.gross, c.state, got, c.want)
		}
	}
}

func TestLookupRuleReportsUnrecognizedStates(t *testing.T) {
	if _, ok := LookupRule("Karnataka"); !ok {
		t.Error("Karnataka should be recognized")
	}
	if _, ok := LookupRule("Kerala"); ok {
		t.Error("Kerala is not in the table and should report a fallback")
	}
}

func TestRegisterState(t *testing.T) {
	RegisterState("Kerala", slabRule(slab{12000, 125}))
	defer delete(stateRules, "Kerala")

	if got := ProfessionalTax(12001, "Kerala"); got != 125 {
		t.Errorf("registered state rule not applied, got %d", got)
	}
	if _, ok := LookupRule("Kerala"); !ok {
		t.Error("registered state should be recognized")
	}
}
