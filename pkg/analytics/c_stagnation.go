package analytics

import (
	"fmt"

	"github.com/scorelens/scorelens/pkg/credit"
)

// StagnationCheck flags bureaus whose score barely moves while the
// client is actively disputing. A flat score with no disputes in
// flight is unremarkable; a flat score during a dispute campaign means
// the campaign is not landing.
type StagnationCheck struct {
	MaxRange   int // flag when the in-window score range stays below this
	MinSamples int // minimum readings required in the window
}

func (c *StagnationCheck) Key() string  { return "stagnation" }
func (c *StagnationCheck) Name() string { return "Score stagnation" }

func (c *StagnationCheck) Evaluate(in Input) []Alert {
	from := in.Now.AddDate(0, 0, -in.WindowDays)

	disputing := false
	for _, d := range in.Disputes {
		if !d.CreatedAt.Before(from) && !d.CreatedAt.After(in.Now) {
			disputing = true
			break
		}
	}
	if !disputing {
		return nil
	}

	var alerts []Alert
	for _, bureau := range credit.AllBureaus() {
		series := inWindow(byBureau(in.Observations, bureau), from, in.Now)
		if len(series) < c.MinSamples {
			continue
		}

		min, max := series[0].Score, series[0].Score
		for _, o := range series[1:] {
			if o.Score < min {
				min = o.Score
			}
			if o.Score > max {
				max = o.Score
			}
		}

		if max-min >= c.MaxRange {
			continue
		}
		alerts = append(alerts, Alert{
			Type:     AlertStagnation,
			Severity: SeverityInfo,
			Bureau:   bureau,
			Message: fmt.Sprintf("%s moved only %d points across %d readings despite active disputes",
				bureau.DisplayName(), max-min, len(series)),
			Recommendation: "Escalate the open disputes to the next round; the current arguments are not moving this bureau",
			Value:          float64(max - min),
		})
	}

	return alerts
}
