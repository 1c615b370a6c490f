package analytics

import (
	"math"
	"sort"

	"github.com/scorelens/scorelens/pkg/credit"
	"github.com/scorelens/scorelens/pkg/strategy"
)

// timelineDepth is how many top items the projected timeline walks.
const timelineDepth = 3

// ProjectImprovement ranks a client's active items by adjusted upside
// and projects the score path from resolving the best ones first.
// Estimates come from the shared strategy estimator, so the numbers
// here always agree with the per-item recommendations.
func ProjectImprovement(items []credit.NegativeItem, currentScore int) *ProjectionReport {
	var active []credit.NegativeItem
	for _, item := range items {
		if item.Active() {
			active = append(active, item)
		}
	}

	report := &ProjectionReport{
		CurrentScore:    currentScore,
		ActiveItemCount: len(active),
		BestCase:        currentScore,
		Conservative:    currentScore,
	}
	// No observed scores means no band, matching CompareBureaus.
	if currentScore > 0 {
		report.CurrentBand = ScoreBandFromScore(currentScore)
	}

	for _, item := range active {
		est := strategy.EstimateImprovement(item.Type, currentScore, len(active))
		report.Items = append(report.Items, ItemImpact{
			ItemID:       item.ID,
			ItemType:     item.Type,
			CreditorName: item.CreditorName,
			Bureau:       item.Bureau,
			Estimate:     est,
			Priority:     priorityFor(est),
		})
		report.BestCase += est.Max
		report.Conservative += est.Min
	}

	sort.SliceStable(report.Items, func(i, j int) bool {
		return report.Items[i].Estimate.Max > report.Items[j].Estimate.Max
	})

	if n := len(report.Items); n > 0 {
		if n > timelineDepth {
			n = timelineDepth
		}
		report.TopPriorities = report.Items[:n:n]
	}

	if report.BestCase > credit.ScoreCeiling {
		report.BestCase = credit.ScoreCeiling
	}
	if report.Conservative > credit.ScoreCeiling {
		report.Conservative = credit.ScoreCeiling
	}

	score := currentScore
	for i, impact := range report.Items {
		if i == timelineDepth {
			break
		}
		gain := int(math.Round(float64(impact.Estimate.Min+impact.Estimate.Max) / 2))
		score += gain
		if score > credit.ScoreCeiling {
			score = credit.ScoreCeiling
		}
		report.Timeline = append(report.Timeline, TimelineStep{
			Step:           i + 1,
			ItemID:         impact.ItemID,
			Gain:           gain,
			ProjectedScore: score,
		})
	}

	return report
}

// priorityFor maps an adjusted estimate to a dispute priority.
func priorityFor(est strategy.Range) Priority {
	switch {
	case est.Max > 80:
		return PriorityCritical
	case est.Max > 40:
		return PriorityHigh
	default:
		return PriorityMedium
	}
}
