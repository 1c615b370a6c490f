// Package report assembles full client reports: bureau comparison,
// per-bureau trends, the anomaly scan, the improvement projection, and
// a dispute plan for every active item, all derived from one dossier.
package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/scorelens/scorelens/pkg/analytics"
	"github.com/scorelens/scorelens/pkg/config"
	"github.com/scorelens/scorelens/pkg/credit"
	"github.com/scorelens/scorelens/pkg/strategy"
)

// Builder runs the analysis pipeline. The zero value uses default
// thresholds, the default trend window, and the wall clock.
type Builder struct {
	TrendWindowMonths int
	Thresholds        analytics.Thresholds
	Concurrency       int              // parallel dossier loads in BuildDir
	Clock             func() time.Time // injectable for reproducible reports
}

// NewBuilder maps a loaded config onto a report pipeline.
func NewBuilder(cfg *config.Config) *Builder {
	a := cfg.Analytics
	return &Builder{
		TrendWindowMonths: a.TrendWindowMonths,
		Thresholds: analytics.Thresholds{
			WindowDays:               a.AnomalyWindowDays,
			DropWarning:              a.DropWarning,
			DropCritical:             a.DropCritical,
			SpreadWarning:            a.SpreadWarning,
			SpreadCritical:           a.SpreadCritical,
			StagnationRange:          a.StagnationRange,
			StagnationMinSamples:     a.StagnationMinSamples,
			ExpirationInfoMonths:     a.ExpirationInfoMonths,
			ExpirationCriticalMonths: a.ExpirationCriticalMonths,
		},
		Clock: time.Now,
	}
}

func (b *Builder) now() time.Time {
	if b.Clock != nil {
		return b.Clock().UTC()
	}
	return time.Now().UTC()
}

func (b *Builder) windowMonths() int {
	if b.TrendWindowMonths > 0 {
		return b.TrendWindowMonths
	}
	return analytics.DefaultTrendWindowMonths
}

func (b *Builder) thresholds() analytics.Thresholds {
	if b.Thresholds == (analytics.Thresholds{}) {
		return analytics.DefaultThresholds()
	}
	return b.Thresholds
}

// Build runs every analysis stage over one dossier.
func (b *Builder) Build(d *credit.Dossier) *analytics.ClientReport {
	now := b.now()
	th := b.thresholds()

	comparison := analytics.CompareBureaus(d.Observations)

	trends := make([]analytics.TrendResult, 0, 3)
	for _, bureau := range credit.AllBureaus() {
		trends = append(trends,
			analytics.ComputeTrend(d.Observations, bureau, now, b.windowMonths()))
	}

	detector := analytics.NewDetector(analytics.ChecksFrom(th)...)
	anomalies := detector.Scan(analytics.Input{
		Observations: d.Observations,
		Items:        d.Items,
		Disputes:     d.Disputes,
		Now:          now,
		WindowDays:   th.WindowDays,
	})

	projection := analytics.ProjectImprovement(d.Items, comparison.Average)

	strategies := b.planDisputes(d, comparison.Average, projection.ActiveItemCount)

	report := &analytics.ClientReport{
		ReportID:    uuid.New().String(),
		ClientID:    d.ClientID,
		GeneratedAt: now,
		Stats:       d.Stats,
		Comparison:  comparison,
		Trends:      trends,
		Anomalies:   anomalies,
		Projection:  projection,
		Strategies:  strategies,
	}

	log.Info().
		Str("client", d.ClientID).
		Int("observations", d.Stats.ObservationCount).
		Int("alerts", len(anomalies.Alerts)).
		Int("plans", len(strategies)).
		Msg("client report built")

	return report
}

// planDisputes picks the next dispute move for each active item, using
// the item's attempt history at its own bureau to place it on the
// escalation ladder.
func (b *Builder) planDisputes(d *credit.Dossier, currentScore, activeCount int) []analytics.ItemStrategy {
	var plans []analytics.ItemStrategy
	for _, item := range d.Items {
		if !item.Active() {
			continue
		}

		attempts := d.AttemptsFor(item.ID, item.Bureau)
		var lastStatus credit.DisputeStatus
		if len(attempts) > 0 {
			lastStatus = attempts[len(attempts)-1].Status
		}
		state := strategy.DetermineRound(len(attempts), lastStatus)
		rec := strategy.SelectStrategy(item.Type, item.Bureau, state.Round, state.PreviousResult)

		plans = append(plans, analytics.ItemStrategy{
			ItemID:         item.ID,
			CreditorName:   item.CreditorName,
			Balance:        item.Balance,
			Attempts:       len(attempts),
			Recommendation: rec,
			Estimate:       strategy.EstimateImprovement(item.Type, currentScore, activeCount),
		})
	}
	return plans
}
