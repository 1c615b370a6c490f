package analytics

import (
	"fmt"

	"github.com/scorelens/scorelens/pkg/credit"
)

// ExpirationCheck flags active items old enough that the seven-year
// reporting limit is within reach, where an outdated-information
// dispute becomes the strongest play. Bankruptcies are excluded; they
// run on a ten-year clock.
type ExpirationCheck struct {
	InfoMonths     int // surface items at this age
	CriticalMonths int // escalate items at this age
}

func (c *ExpirationCheck) Key() string  { return "item_expiration" }
func (c *ExpirationCheck) Name() string { return "Item nearing expiration" }

func (c *ExpirationCheck) Evaluate(in Input) []Alert {
	var alerts []Alert

	for _, item := range in.Items {
		if !item.Active() || item.Type == credit.ItemBankruptcy {
			continue
		}
		months, ok := item.AgeMonths(in.Now)
		if !ok || months < c.InfoMonths {
			continue
		}

		severity := SeverityInfo
		if months >= c.CriticalMonths {
			severity = SeverityCritical
		}
		creditor := item.CreditorName
		if creditor == "" {
			creditor = "an unnamed creditor"
		}
		alerts = append(alerts, Alert{
			Type:     AlertItemExpiration,
			Severity: severity,
			Bureau:   item.Bureau,
			ItemID:   item.ID,
			Message: fmt.Sprintf("%s from %s is %d months old and approaching the seven-year reporting limit",
				item.Type, creditor, months),
			Recommendation: "Dispute as outdated information under FCRA §605 rather than waiting out the clock",
			Value:          float64(months),
		})
	}

	return alerts
}
