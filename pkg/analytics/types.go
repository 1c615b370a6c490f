// Package analytics implements the scorelens credit analytics engine.
// It evaluates score history and negative items and produces
// explainable, evidence-backed findings.
package analytics

import (
	"time"

	"github.com/scorelens/scorelens/pkg/credit"
	"github.com/scorelens/scorelens/pkg/strategy"
)

// Severity indicates how concerning a finding is.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// AlertType classifies what kind of anomaly was found.
type AlertType string

const (
	AlertSuddenDrop          AlertType = "sudden_drop"
	AlertBureauInconsistency AlertType = "bureau_inconsistency"
	AlertStagnation          AlertType = "stagnation"
	AlertItemExpiration      AlertType = "item_expiration"
)

// Alert is a single anomaly finding with the evidence behind it.
type Alert struct {
	Type           AlertType     `json:"type"`
	Severity       Severity      `json:"severity"`
	Message        string        `json:"message"`           // human-readable explanation
	Recommendation string        `json:"recommendation"`    // what to do about it
	Bureau         credit.Bureau `json:"bureau,omitempty"`  // set when the finding is bureau-specific
	ItemID         string        `json:"item_id,omitempty"` // set when the finding points at one item
	Value          float64       `json:"value,omitempty"`   // numeric evidence (points, months, spread)
}

// SeverityCounts tallies alerts per severity.
type SeverityCounts struct {
	Info     int `json:"info"`
	Warning  int `json:"warning"`
	Critical int `json:"critical"`
}

// AnomalyReport is the complete output of an anomaly scan.
// Immutable once computed.
type AnomalyReport struct {
	GeneratedAt time.Time      `json:"generated_at"`
	WindowDays  int            `json:"window_days"`
	Alerts      []Alert        `json:"alerts"`
	Counts      SeverityCounts `json:"counts"`
}

// TrendDirection summarizes which way a bureau's score is moving.
type TrendDirection string

const (
	TrendImproving        TrendDirection = "improving"
	TrendDeclining        TrendDirection = "declining"
	TrendStable           TrendDirection = "stable"
	TrendInsufficientData TrendDirection = "insufficient_data"
)

// TrendResult compares a bureau's latest reading against its last
// reading from before the analysis window.
type TrendResult struct {
	Bureau        credit.Bureau            `json:"bureau"`
	Direction     TrendDirection           `json:"direction"`
	Change        int                      `json:"change"`
	ChangePercent float64                  `json:"change_percent"`
	Current       *credit.ScoreObservation `json:"current,omitempty"`
	Past          *credit.ScoreObservation `json:"past,omitempty"`
	WindowMonths  int                      `json:"window_months"`
}

// BureauScore is one bureau's latest reading inside a comparison.
type BureauScore struct {
	Bureau     credit.Bureau `json:"bureau"`
	Score      int           `json:"score"`
	ObservedAt time.Time     `json:"observed_at"`
}

// ComparisonResult summarizes the latest scores across bureaus.
type ComparisonResult struct {
	Scores  []BureauScore `json:"scores"` // fixed bureau order
	Average int           `json:"average"`
	Max     int           `json:"max"`
	Min     int           `json:"min"`
	Spread  int           `json:"spread"`
	Band    ScoreBand     `json:"band"`
}

// ScoreBand is the conventional label for a score range.
type ScoreBand string

const (
	BandExcellent ScoreBand = "Excellent"
	BandVeryGood  ScoreBand = "Very Good"
	BandGood      ScoreBand = "Good"
	BandFair      ScoreBand = "Fair"
	BandPoor      ScoreBand = "Poor"
)

// ScoreBandFromScore maps a score to its conventional band.
func ScoreBandFromScore(score int) ScoreBand {
	switch {
	case score >= 800:
		return BandExcellent
	case score >= 740:
		return BandVeryGood
	case score >= 670:
		return BandGood
	case score >= 580:
		return BandFair
	default:
		return BandPoor
	}
}

// Priority ranks how urgently an item is worth disputing.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
)

// ItemImpact is one active item's adjusted score upside.
type ItemImpact struct {
	ItemID       string          `json:"item_id"`
	ItemType     credit.ItemType `json:"item_type"`
	CreditorName string          `json:"creditor_name,omitempty"`
	Bureau       credit.Bureau   `json:"bureau"`
	Estimate     strategy.Range  `json:"estimate"`
	Priority     Priority        `json:"priority"`
}

// TimelineStep is the projected score after resolving one more item.
type TimelineStep struct {
	Step           int    `json:"step"`
	ItemID         string `json:"item_id"`
	Gain           int    `json:"gain"`
	ProjectedScore int    `json:"projected_score"`
}

// ProjectionReport ranks active items by adjusted upside and projects
// the score path from resolving the top ones.
type ProjectionReport struct {
	CurrentScore    int            `json:"current_score"`
	CurrentBand     ScoreBand      `json:"current_band"`
	ActiveItemCount int            `json:"active_item_count"`
	Items           []ItemImpact   `json:"items"` // sorted by descending adjusted max
	TopPriorities   []ItemImpact   `json:"top_priorities"`
	Timeline        []TimelineStep `json:"timeline"`
	BestCase        int            `json:"best_case"`
	Conservative    int            `json:"conservative"`
}
