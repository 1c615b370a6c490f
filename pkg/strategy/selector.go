package strategy

import "github.com/scorelens/scorelens/pkg/credit"

// StrategyRecommendation is the full output of strategy selection for
// one (item type, bureau, round) request.
type StrategyRecommendation struct {
	ItemType       credit.ItemType  `json:"item_type"`
	Strategy       ItemTypeStrategy `json:"strategy"`
	Recommended    DisputeType      `json:"recommended_dispute_type"`
	Round          RoundDefinition  `json:"round"`
	PreviousResult RoundOutcome     `json:"previous_result"`
	Bureau         *BureauProfile   `json:"bureau_profile,omitempty"`
}

// SelectStrategy resolves the dispute recommendation for an item type
// at a bureau in a given round.
//
// The default recommendation is the item type's primary strategy. Once
// the bureau has verified (round 2 onward), the first alternative takes
// over. From round 3 the recommendation is forced to inaccurate_info:
// escalation always challenges accuracy. Unknown item types resolve
// through the "other" playbook entry; an unknown bureau yields a nil
// profile rather than an error.
func SelectStrategy(itemType credit.ItemType, bureau credit.Bureau, round int, previousResult RoundOutcome) StrategyRecommendation {
	if previousResult == "" {
		previousResult = OutcomeNone
	}
	strat := StrategyFor(itemType)

	recommended := strat.Primary
	if round >= 2 && previousResult == OutcomeVerified && len(strat.Alternatives) > 0 {
		recommended = strat.Alternatives[0]
	}
	if round >= 3 {
		recommended = DisputeInaccurateInfo
	}

	if round < 1 {
		round = 1
	}
	if round > len(rounds) {
		round = len(rounds)
	}
	def, _ := RoundDefinitionFor(round)

	return StrategyRecommendation{
		ItemType:       itemType,
		Strategy:       strat,
		Recommended:    recommended,
		Round:          def,
		PreviousResult: previousResult,
		Bureau:         ProfileFor(bureau),
	}
}
