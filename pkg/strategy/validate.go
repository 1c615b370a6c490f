package strategy

import (
	"fmt"

	"github.com/scorelens/scorelens/pkg/credit"
)

func init() {
	if err := ValidateCatalogs(); err != nil {
		panic(fmt.Sprintf("strategy: invalid reference data: %v", err))
	}
}

// ValidateCatalogs checks the static reference data for enum coverage
// and internal consistency. It runs at package load so a broken table
// fails at startup instead of mid-request.
func ValidateCatalogs() error {
	for _, it := range credit.AllItemTypes() {
		strat, ok := itemStrategies[it]
		if !ok {
			return fmt.Errorf("item type %q has no playbook entry", it)
		}
		if strat.ItemType != it {
			return fmt.Errorf("item type %q playbook entry is keyed as %q", it, strat.ItemType)
		}
		if strat.Primary == "" {
			return fmt.Errorf("item type %q has no primary strategy", it)
		}
		if len(strat.Alternatives) == 0 {
			return fmt.Errorf("item type %q has no alternative strategy", it)
		}
		if strat.Impact.Min <= 0 || strat.Impact.Max < strat.Impact.Min {
			return fmt.Errorf("item type %q has invalid impact range %d-%d", it, strat.Impact.Min, strat.Impact.Max)
		}
	}
	for _, b := range credit.AllBureaus() {
		p, ok := bureauProfiles[b]
		if !ok {
			return fmt.Errorf("bureau %q has no tactics profile", b)
		}
		if len(p.Weaknesses) == 0 || len(p.Tactics) == 0 {
			return fmt.Errorf("bureau %q profile is incomplete", b)
		}
	}
	if len(rounds) != 4 {
		return fmt.Errorf("escalation ladder must have 4 rounds, has %d", len(rounds))
	}
	for i, r := range rounds {
		if r.Round != i+1 {
			return fmt.Errorf("round %d out of order at position %d", r.Round, i)
		}
		if r.Name == "" || r.NextAction == "" || r.WaitDays <= 0 {
			return fmt.Errorf("round %d is missing guidance", r.Round)
		}
	}
	if !rounds[len(rounds)-1].Terminal {
		return fmt.Errorf("final round must be terminal")
	}
	return nil
}
