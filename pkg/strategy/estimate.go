package strategy

import (
	"math"

	"github.com/scorelens/scorelens/pkg/credit"
)

// EstimateImprovement returns the adjusted point gain expected from
// resolving one item of the given type, scaled by the client's current
// score and the total number of active negative items. Every consumer
// of an improvement estimate goes through this function.
func EstimateImprovement(itemType credit.ItemType, currentScore, activeItemCount int) Range {
	base := StrategyFor(itemType).Impact
	factor := bandFactor(currentScore) * dilutionFactor(activeItemCount)
	return Range{
		Min: int(math.Round(float64(base.Min) * factor)),
		Max: int(math.Round(float64(base.Max) * factor)),
	}
}

// bandFactor scales gains by the client's current score band.
func bandFactor(score int) float64 {
	switch {
	case score < 580:
		return 1.3
	case score < 650:
		return 1.1
	case score >= 740:
		return 0.7
	default:
		return 1.0
	}
}

// dilutionFactor shrinks per-item gains as the active item count grows.
func dilutionFactor(count int) float64 {
	switch {
	case count > 10:
		return 0.7
	case count > 5:
		return 0.85
	default:
		return 1.0
	}
}
