package salary

// TaxRule maps a monthly gross salary to the professional tax for one state.
type TaxRule func(gross int64) int64

type slab struct {
	above int64
	tax   int64
}

// slabRule builds a step function. Slabs must be listed highest first.
func slabRule(slabs ...slab) TaxRule {
	return func(gross int64) int64 {
		for _, s := range slabs {
			if gross > s.above {
				return s.tax
			}
		}
		return 0
	}
}

func noTax(int64) int64 { return 0 }

// stateRules keys are case-sensitive exact state names. States without a
// professional tax are listed explicitly so their companies don't fall back
// to Karnataka's slab.
var stateRules = map[string]TaxRule{
	"Karnataka":   slabRule(slab{15000, 200}),
	"Maharashtra": slabRule(slab{10000, 200}, slab{7500, 175}),
	"Tamil Nadu":  slabRule(slab{21000, 208}, slab{15000, 180}, slab{12500, 115}),
	"Telangana":   slabRule(slab{15000, 200}),
	"Gujarat":     noTax,
	"Rajasthan":   noTax,
	"Delhi":       noTax,
}

// LookupRule returns the rule for state, falling back to Karnataka's when the
// state is unrecognized. The second return reports whether the state matched,
// so callers can flag typos in company data instead of failing the run.
func LookupRule(state string) (TaxRule, bool) {
	if rule, ok := stateRules[state]; ok {
		return rule, true
	}
	return stateRules[DefaultState], false
}

// ProfessionalTax returns the monthly professional tax for the given gross
// salary and state.
func ProfessionalTax(gross int64, state string) int64 {
	rule, _ := LookupRule(state)
	return rule(gross)
}

// RegisterState adds or replaces a state's rule. Not safe to call while
// calculations are running; register during startup.
func RegisterState(state string, rule TaxRule) {
	stateRules[state] = rule
}

// States lists the recognized state names.
func States() []string {
	names := make([]string, 0, len(stateRules))
	for name := range stateRules {
		names = append(names, name)
	}
	return names
}
