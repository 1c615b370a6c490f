package strategy

import "github.com/scorelens/scorelens/pkg/credit"

// RoundOutcome is the assumed result of the round before the current
// one.
type RoundOutcome string

const (
	OutcomeNone     RoundOutcome = "none"
	OutcomeResolved RoundOutcome = "resolved"
	OutcomeVerified RoundOutcome = "verified"
)

// RoundDefinition describes one stage of the escalation ladder.
type RoundDefinition struct {
	Round      int    `json:"round"`
	Name       string `json:"name"`
	WaitDays   int    `json:"wait_days"`
	NextAction string `json:"next_action"`
	Terminal   bool   `json:"terminal"`
}

// RoundState pairs the round a dispute has reached with the outcome
// assumed from the previous round.
type RoundState struct {
	Round          int          `json:"round"`
	PreviousResult RoundOutcome `json:"previous_result"`
}

// rounds is the fixed four-stage escalation ladder.
var rounds = []RoundDefinition{
	{
		Round:      1,
		Name:       "Initial Dispute",
		WaitDays:   30,
		NextAction: "Mail the dispute letter and start the bureau's 30-day investigation clock.",
	},
	{
		Round:      2,
		Name:       "Verification Challenge",
		WaitDays:   30,
		NextAction: "Demand the method of verification for every item the bureau claims to have verified.",
	},
	{
		Round:      3,
		Name:       "Escalation & Warning",
		WaitDays:   15,
		NextAction: "Send an escalation letter documenting the procedural failures and warning of regulatory complaints.",
	},
	{
		Round:      4,
		Name:       "Regulatory Complaint",
		WaitDays:   15,
		NextAction: "File CFPB and state attorney general complaints and weigh an FCRA attorney consultation.",
		Terminal:   true,
	},
}

// transition maps a prior attempt count to the round entered and the
// outcome assumed from the round before it.
type transition struct {
	round   int
	outcome func(last credit.DisputeStatus) RoundOutcome
}

// transitions is indexed by min(priorAttempts, 3). Only the round 2
// entry reads the last attempt's status; deeper rounds assume the
// bureau verified.
var transitions = [4]transition{
	{round: 1, outcome: func(credit.DisputeStatus) RoundOutcome { return OutcomeNone }},
	{round: 2, outcome: func(last credit.DisputeStatus) RoundOutcome {
		if last == credit.DisputeResolved {
			return OutcomeResolved
		}
		return OutcomeVerified
	}},
	{round: 3, outcome: func(credit.DisputeStatus) RoundOutcome { return OutcomeVerified }},
	{round: 4, outcome: func(credit.DisputeStatus) RoundOutcome { return OutcomeVerified }},
}

// DetermineRound maps the number of prior dispute attempts against one
// (item, bureau) pair, plus the status of the most recent attempt, to
// the escalation round to run next. Intermediate attempt statuses are
// never examined. Round 4 is terminal: further attempts stay there.
func DetermineRound(priorAttempts int, lastStatus credit.DisputeStatus) RoundState {
	idx := priorAttempts
	if idx < 0 {
		idx = 0
	}
	if idx > 3 {
		idx = 3
	}
	tr := transitions[idx]
	return RoundState{Round: tr.round, PreviousResult: tr.outcome(lastStatus)}
}

// Rounds returns a copy of the escalation ladder in order.
func Rounds() []RoundDefinition {
	out := make([]RoundDefinition, len(rounds))
	copy(out, rounds)
	return out
}

// RoundDefinitionFor returns the ladder entry for a round number.
func RoundDefinitionFor(round int) (RoundDefinition, bool) {
	for _, r := range rounds {
		if r.Round == round {
			return r, true
		}
	}
	return RoundDefinition{}, false
}
