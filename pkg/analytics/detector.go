package analytics

import (
	"sort"
	"time"

	"github.com/scorelens/scorelens/pkg/credit"
)

// Check is the interface that all anomaly checks implement.
type Check interface {
	// Key returns the machine-readable check identifier.
	Key() string
	// Name returns the human-readable check name.
	Name() string
	// Evaluate returns the alerts the check found, possibly none.
	Evaluate(in Input) []Alert
}

// Input is the record set an anomaly scan runs over. Now anchors every
// time calculation so scans are reproducible; a zero Now means the
// wall clock.
type Input struct {
	Observations []credit.ScoreObservation
	Items        []credit.NegativeItem
	Disputes     []credit.DisputeAttempt
	Now          time.Time
	WindowDays   int
}

// Detector runs all configured checks over a record set and produces
// an AnomalyReport.
type Detector struct {
	checks []Check
}

// NewDetector creates a detector with the given checks.
func NewDetector(checks ...Check) *Detector {
	return &Detector{checks: checks}
}

// Scan evaluates all checks and assembles the report. Alerts keep
// check order, then evidence order within a check.
func (d *Detector) Scan(in Input) *AnomalyReport {
	if in.Now.IsZero() {
		in.Now = time.Now().UTC()
	}
	if in.WindowDays <= 0 {
		in.WindowDays = DefaultThresholds().WindowDays
	}

	report := &AnomalyReport{
		GeneratedAt: in.Now,
		WindowDays:  in.WindowDays,
	}

	for _, c := range d.checks {
		report.Alerts = append(report.Alerts, c.Evaluate(in)...)
	}

	for _, a := range report.Alerts {
		switch a.Severity {
		case SeverityInfo:
			report.Counts.Info++
		case SeverityWarning:
			report.Counts.Warning++
		case SeverityCritical:
			report.Counts.Critical++
		}
	}

	return report
}

// byBureau filters observations to one bureau, preserving order.
func byBureau(observations []credit.ScoreObservation, b credit.Bureau) []credit.ScoreObservation {
	var out []credit.ScoreObservation
	for _, o := range observations {
		if o.Bureau == b {
			out = append(out, o)
		}
	}
	return out
}

// inWindow keeps observations with (from, to] timestamps, sorted
// ascending.
func inWindow(observations []credit.ScoreObservation, from, to time.Time) []credit.ScoreObservation {
	var out []credit.ScoreObservation
	for _, o := range observations {
		if o.ObservedAt.After(from) && !o.ObservedAt.After(to) {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ObservedAt.Before(out[j].ObservedAt)
	})
	return out
}

// latestScores returns each bureau's most recent observation over the
// full history. Ties keep the later record.
func latestScores(observations []credit.ScoreObservation) map[credit.Bureau]credit.ScoreObservation {
	latest := make(map[credit.Bureau]credit.ScoreObservation)
	for _, o := range observations {
		cur, ok := latest[o.Bureau]
		if !ok || !o.ObservedAt.Before(cur.ObservedAt) {
			latest[o.Bureau] = o
		}
	}
	return latest
}
