package analytics

import (
	"fmt"

	"github.com/scorelens/scorelens/pkg/credit"
)

// SuddenDropCheck flags sharp falls between consecutive readings at
// the same bureau inside the scan window.
type SuddenDropCheck struct {
	WarningDrop  int // flag drops larger than this
	CriticalDrop int // escalate drops larger than this
}

func (c *SuddenDropCheck) Key() string  { return "sudden_drop" }
func (c *SuddenDropCheck) Name() string { return "Sudden score drop" }

func (c *SuddenDropCheck) Evaluate(in Input) []Alert {
	var alerts []Alert
	from := in.Now.AddDate(0, 0, -in.WindowDays)

	for _, bureau := range credit.AllBureaus() {
		series := inWindow(byBureau(in.Observations, bureau), from, in.Now)
		for i := 1; i < len(series); i++ {
			drop := series[i-1].Score - series[i].Score
			if drop <= c.WarningDrop {
				continue
			}
			severity := SeverityWarning
			if drop > c.CriticalDrop {
				severity = SeverityCritical
			}
			alerts = append(alerts, Alert{
				Type:     AlertSuddenDrop,
				Severity: severity,
				Bureau:   bureau,
				Message: fmt.Sprintf("%s score fell %d points between %s and %s",
					bureau.DisplayName(), drop,
					series[i-1].ObservedAt.Format("2006-01-02"),
					series[i].ObservedAt.Format("2006-01-02")),
				Recommendation: fmt.Sprintf("Pull the full %s report and identify the new derogatory or balance change behind the fall",
					bureau.DisplayName()),
				Value: float64(drop),
			})
		}
	}

	return alerts
}
