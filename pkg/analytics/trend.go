package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/scorelens/scorelens/pkg/credit"
)

// DefaultTrendWindowMonths is the lookback used when no window is
// configured.
const DefaultTrendWindowMonths = 6

// ComputeTrend compares a bureau's most recent reading inside the
// window against its last reading from before the window opened. The
// boundary sits windowMonths before now: the current reading must fall
// in (boundary, now], the past reading at or before the boundary.
// Missing either side yields insufficient_data with whichever side was
// found attached for display.
func ComputeTrend(observations []credit.ScoreObservation, bureau credit.Bureau, now time.Time, windowMonths int) TrendResult {
	if windowMonths <= 0 {
		windowMonths = DefaultTrendWindowMonths
	}
	result := TrendResult{
		Bureau:       bureau,
		Direction:    TrendInsufficientData,
		WindowMonths: windowMonths,
	}

	series := byBureau(observations, bureau)
	sort.SliceStable(series, func(i, j int) bool {
		return series[i].ObservedAt.Before(series[j].ObservedAt)
	})

	boundary := now.AddDate(0, -windowMonths, 0)

	var current, past *credit.ScoreObservation
	for i := range series {
		o := series[i]
		switch {
		case o.ObservedAt.After(now):
			// Future-dated readings never participate.
		case o.ObservedAt.After(boundary):
			current = &o
		default:
			past = &o
		}
	}

	result.Current = current
	result.Past = past
	if current == nil || past == nil {
		return result
	}

	change := current.Score - past.Score
	result.Change = change
	result.ChangePercent = math.Round(float64(change)/float64(past.Score)*10000) / 100

	switch {
	case change > 0:
		result.Direction = TrendImproving
	case change < 0:
		result.Direction = TrendDeclining
	default:
		result.Direction = TrendStable
	}

	return result
}
