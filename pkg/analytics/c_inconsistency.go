package analytics

import "fmt"

// InconsistencyCheck flags disagreement between bureaus' latest
// readings. It reads the full history: a bureau's latest score counts
// even when it predates the scan window. Needs at least two bureaus
// reporting.
type InconsistencyCheck struct {
	WarningSpread  int // flag spreads larger than this
	CriticalSpread int // escalate spreads larger than this
}

func (c *InconsistencyCheck) Key() string  { return "bureau_inconsistency" }
func (c *InconsistencyCheck) Name() string { return "Bureau inconsistency" }

func (c *InconsistencyCheck) Evaluate(in Input) []Alert {
	latest := latestScores(in.Observations)
	if len(latest) < 2 {
		return nil
	}

	first := true
	var max, min int
	for _, o := range latest {
		if first {
			max, min = o.Score, o.Score
			first = false
			continue
		}
		if o.Score > max {
			max = o.Score
		}
		if o.Score < min {
			min = o.Score
		}
	}

	spread := max - min
	if spread <= c.WarningSpread {
		return nil
	}
	severity := SeverityWarning
	if spread > c.CriticalSpread {
		severity = SeverityCritical
	}

	return []Alert{{
		Type:           AlertBureauInconsistency,
		Severity:       severity,
		Message:        fmt.Sprintf("latest scores disagree by %d points across %d bureaus", spread, len(latest)),
		Recommendation: "Compare the bureau reports side by side and dispute the items misreported at the lowest-scoring bureau",
		Value:          float64(spread),
	}}
}
