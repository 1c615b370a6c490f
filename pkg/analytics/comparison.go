package analytics

import (
	"math"

	"github.com/scorelens/scorelens/pkg/credit"
)

// CompareBureaus lines up the latest reading from each bureau. Bureaus
// with no readings are skipped; an empty history returns a zeroed
// result with no band rather than an error.
func CompareBureaus(observations []credit.ScoreObservation) ComparisonResult {
	latest := latestScores(observations)

	var result ComparisonResult
	sum := 0
	for _, bureau := range credit.AllBureaus() {
		o, ok := latest[bureau]
		if !ok {
			continue
		}
		result.Scores = append(result.Scores, BureauScore{
			Bureau:     bureau,
			Score:      o.Score,
			ObservedAt: o.ObservedAt,
		})
		sum += o.Score
		if result.Max == 0 || o.Score > result.Max {
			result.Max = o.Score
		}
		if result.Min == 0 || o.Score < result.Min {
			result.Min = o.Score
		}
	}

	if len(result.Scores) == 0 {
		return result
	}

	result.Average = int(math.Round(float64(sum) / float64(len(result.Scores))))
	result.Spread = result.Max - result.Min
	result.Band = ScoreBandFromScore(result.Average)
	return result
}
