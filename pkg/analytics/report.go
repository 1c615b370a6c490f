package analytics

import (
	"time"

	"github.com/scorelens/scorelens/pkg/credit"
	"github.com/scorelens/scorelens/pkg/strategy"
)

// ClientReport is the full analysis output for one client: trends,
// bureau comparison, anomalies, projection, and a dispute plan per
// active item. Assembled by the report builder; rendered by surface.
type ClientReport struct {
	ReportID    string              `json:"report_id"`
	ClientID    string              `json:"client_id"`
	GeneratedAt time.Time           `json:"generated_at"`
	Stats       credit.DossierStats `json:"stats"`
	Comparison  ComparisonResult    `json:"comparison"`
	Trends      []TrendResult       `json:"trends"` // fixed bureau order
	Anomalies   *AnomalyReport      `json:"anomalies"`
	Projection  *ProjectionReport   `json:"projection"`
	Strategies  []ItemStrategy      `json:"strategies"`
}

// ItemStrategy is the dispute plan for one active item: where its
// dispute history puts it on the escalation ladder and what to argue
// next.
type ItemStrategy struct {
	ItemID         string                          `json:"item_id"`
	CreditorName   string                          `json:"creditor_name,omitempty"`
	Balance        float64                         `json:"balance,omitempty"`
	Attempts       int                             `json:"attempts"`
	Recommendation strategy.StrategyRecommendation `json:"recommendation"`
	Estimate       strategy.Range                  `json:"estimate"`
}
