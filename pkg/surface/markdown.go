package surface

import (
	"fmt"
	"io"
	"strings"

	"github.com/scorelens/scorelens/pkg/analytics"
)

// MarkdownRenderer produces a Markdown report suitable for sharing
// with a client or attaching to a case file.
type MarkdownRenderer struct {
	Locale string // BCP 47 tag for number formatting; empty means en-US
}

func (r *MarkdownRenderer) Render(w io.Writer, report *analytics.ClientReport) error {
	_, err := io.WriteString(w, r.BuildMarkdown(report))
	return err
}

// BuildMarkdown creates the Markdown body from a ClientReport.
func (r *MarkdownRenderer) BuildMarkdown(report *analytics.ClientReport) string {
	p := printerFor(r.Locale)
	var sb strings.Builder

	band := string(report.Comparison.Band)
	if band == "" {
		band = "No scores on file"
	}
	sb.WriteString(fmt.Sprintf("## Credit analysis: %s\n\n", report.ClientID))
	sb.WriteString(fmt.Sprintf("**%s (%d)** — generated %s\n\n",
		band, report.Comparison.Average, report.GeneratedAt.Format("2006-01-02")))

	// Bureau scores
	if len(report.Comparison.Scores) > 0 {
		sb.WriteString("### Bureau scores\n\n")
		sb.WriteString("| Bureau | Score | Observed |\n|--------|-------|----------|\n")
		for _, bs := range report.Comparison.Scores {
			sb.WriteString(fmt.Sprintf("| %s | %d | %s |\n",
				bs.Bureau.DisplayName(), bs.Score, bs.ObservedAt.Format("2006-01-02")))
		}
		if len(report.Comparison.Scores) > 1 {
			sb.WriteString(fmt.Sprintf("\nSpread: %d points\n", report.Comparison.Spread))
		}
		sb.WriteString("\n")
	}

	// Trends
	if len(report.Trends) > 0 {
		sb.WriteString("### Trends\n\n")
		for _, tr := range report.Trends {
			if tr.Direction == analytics.TrendInsufficientData {
				sb.WriteString(fmt.Sprintf("- %s: insufficient data\n", tr.Bureau.DisplayName()))
				continue
			}
			sb.WriteString(fmt.Sprintf("- %s: %s %+d (%+.2f%%)\n",
				tr.Bureau.DisplayName(), tr.Direction, tr.Change, tr.ChangePercent))
		}
		sb.WriteString("\n")
	}

	// Alerts
	sb.WriteString("### Alerts\n\n")
	if report.Anomalies == nil || len(report.Anomalies.Alerts) == 0 {
		sb.WriteString("None.\n\n")
	} else {
		for _, a := range report.Anomalies.Alerts {
			sb.WriteString(fmt.Sprintf("- %s **%s** — %s\n",
				severityIcon(a.Severity), a.Severity, a.Message))
			if a.Recommendation != "" {
				sb.WriteString(fmt.Sprintf("  - %s\n", a.Recommendation))
			}
		}
		sb.WriteString("\n")
	}

	// Projection
	if report.Projection != nil && len(report.Projection.Items) > 0 {
		proj := report.Projection
		sb.WriteString("### Projection\n\n")
		sb.WriteString("| # | Item | Estimate | Priority |\n|---|------|----------|----------|\n")
		for i, impact := range proj.Items {
			name := impact.CreditorName
			if name == "" {
				name = string(impact.ItemType)
			}
			sb.WriteString(fmt.Sprintf("| %d | %s | +%d-%d | %s |\n",
				i+1, name, impact.Estimate.Min, impact.Estimate.Max, impact.Priority))
		}
		if len(proj.Timeline) > 0 {
			path := fmt.Sprintf("%d", proj.CurrentScore)
			for _, step := range proj.Timeline {
				path += fmt.Sprintf(" -> %d", step.ProjectedScore)
			}
			sb.WriteString(fmt.Sprintf("\nTimeline: %s\n", path))
		}
		sb.WriteString(fmt.Sprintf("\nBest case %d, conservative %d.\n\n", proj.BestCase, proj.Conservative))
	}

	// Dispute plans
	if len(report.Strategies) > 0 {
		sb.WriteString("### Next disputes\n\n")
		for _, st := range report.Strategies {
			name := st.CreditorName
			if name == "" {
				name = st.Recommendation.Strategy.Name
			}
			if st.Balance > 0 {
				name = fmt.Sprintf("%s (%s)", name, p.Sprintf("$%.2f", st.Balance))
			}
			sb.WriteString(fmt.Sprintf("- **%s** — %s (round %d: %s)\n",
				name, st.Recommendation.Recommended.Label(),
				st.Recommendation.Round.Round, st.Recommendation.Round.Name))
			sb.WriteString(fmt.Sprintf("  - %s\n", st.Recommendation.Round.NextAction))
		}
	}

	return sb.String()
}

func severityIcon(sev analytics.Severity) string {
	switch sev {
	case analytics.SeverityCritical:
		return ":red_circle:"
	case analytics.SeverityWarning:
		return ":orange_circle:"
	default:
		return ":blue_circle:"
	}
}
