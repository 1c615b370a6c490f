package surface

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/scorelens/scorelens/pkg/analytics"
)

// TerminalRenderer renders a ClientReport as colored terminal output.
type TerminalRenderer struct {
	Locale string // BCP 47 tag for number formatting; empty means en-US
}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

func bandColor(band analytics.ScoreBand) string {
	if noColor() {
		return ""
	}
	switch band {
	case analytics.BandExcellent, analytics.BandVeryGood:
		return colorGreen
	case analytics.BandGood, analytics.BandFair:
		return colorYellow
	case analytics.BandPoor:
		return colorRed
	default:
		return ""
	}
}

func severityColor(sev analytics.Severity) string {
	if noColor() {
		return ""
	}
	switch sev {
	case analytics.SeverityCritical:
		return colorRed
	case analytics.SeverityWarning:
		return colorYellow
	default:
		return ""
	}
}

func trendColor(dir analytics.TrendDirection) string {
	if noColor() {
		return ""
	}
	switch dir {
	case analytics.TrendImproving:
		return colorGreen
	case analytics.TrendDeclining:
		return colorRed
	default:
		return ""
	}
}

func noColor() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

func bold(s string) string {
	if noColor() {
		return s
	}
	return colorBold + s + colorReset
}

func dim(s string) string {
	if noColor() {
		return s
	}
	return colorDim + s + colorReset
}

func colored(s, color string) string {
	if noColor() || color == "" {
		return s
	}
	return color + s + colorReset
}

// printerFor builds a locale-aware number printer. Unknown or empty
// locales fall back to American English.
func printerFor(locale string) *message.Printer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	return message.NewPrinter(tag)
}

func (r *TerminalRenderer) Render(w io.Writer, report *analytics.ClientReport) error {
	p := printerFor(r.Locale)
	bc := bandColor(report.Comparison.Band)

	// Header
	band := string(report.Comparison.Band)
	if band == "" {
		band = "No scores on file"
	}
	fmt.Fprintf(w, "%s\n\n",
		bold(fmt.Sprintf("Scorelens: %s — %s (%d)",
			report.ClientID, colored(band, bc), report.Comparison.Average)))

	// Record counts
	fmt.Fprintf(w, "Records: %d observations / %d items / %d disputes\n\n",
		report.Stats.ObservationCount, report.Stats.ItemCount, report.Stats.DisputeCount)

	// Bureau scores
	if len(report.Comparison.Scores) > 0 {
		fmt.Fprintln(w, "Bureau scores:")
		for _, bs := range report.Comparison.Scores {
			fmt.Fprintf(w, "  %-12s %d  %s\n",
				bs.Bureau.DisplayName(), bs.Score, dim(bs.ObservedAt.Format("2006-01-02")))
		}
		if len(report.Comparison.Scores) > 1 {
			fmt.Fprintf(w, "  Spread: %d points\n", report.Comparison.Spread)
		}
		fmt.Fprintln(w)
	}

	// Trends
	if len(report.Trends) > 0 {
		window := report.Trends[0].WindowMonths
		fmt.Fprintf(w, "Trends (%d month window):\n", window)
		for _, tr := range report.Trends {
			if tr.Direction == analytics.TrendInsufficientData {
				fmt.Fprintf(w, "  %-12s %s\n", tr.Bureau.DisplayName(), dim("insufficient data"))
				continue
			}
			fmt.Fprintf(w, "  %-12s %s  %+d (%+.2f%%)\n",
				tr.Bureau.DisplayName(), colored(string(tr.Direction), trendColor(tr.Direction)),
				tr.Change, tr.ChangePercent)
		}
		fmt.Fprintln(w)
	}

	// Alerts
	if report.Anomalies != nil && len(report.Anomalies.Alerts) > 0 {
		fmt.Fprintf(w, "Alerts (%d day window):\n", report.Anomalies.WindowDays)
		for _, a := range report.Anomalies.Alerts {
			fmt.Fprintf(w, "  %s %s %s\n",
				colored("●", severityColor(a.Severity)),
				bold(fmt.Sprintf("[%s]", a.Severity)), a.Message)
			if a.Recommendation != "" {
				for _, line := range wrapText(a.Recommendation, 70) {
					fmt.Fprintf(w, "    %s\n", dim(line))
				}
			}
		}
		fmt.Fprintln(w)
	} else {
		fmt.Fprintln(w, "No alerts.")
		fmt.Fprintln(w)
	}

	// Projection
	if report.Projection != nil && len(report.Projection.Items) > 0 {
		proj := report.Projection
		fmt.Fprintf(w, "Projection (%d active items):\n", proj.ActiveItemCount)
		for i, impact := range proj.Items {
			name := impact.CreditorName
			if name == "" {
				name = string(impact.ItemType)
			}
			fmt.Fprintf(w, "  %d. %s  +%d-%d pts  %s\n",
				i+1, bold(name), impact.Estimate.Min, impact.Estimate.Max,
				colored(fmt.Sprintf("[%s]", impact.Priority), priorityColor(impact.Priority)))
		}
		if len(proj.Timeline) > 0 {
			path := fmt.Sprintf("%d", proj.CurrentScore)
			for _, step := range proj.Timeline {
				path += fmt.Sprintf(" -> %d", step.ProjectedScore)
			}
			fmt.Fprintf(w, "  Timeline: %s\n", path)
		}
		fmt.Fprintf(w, "  Best case: %d   Conservative: %d\n\n", proj.BestCase, proj.Conservative)
	}

	// Per-item dispute plans
	if len(report.Strategies) > 0 {
		fmt.Fprintln(w, "Next disputes:")
		for _, st := range report.Strategies {
			name := st.CreditorName
			if name == "" {
				name = st.Recommendation.Strategy.Name
			}
			line := fmt.Sprintf("%s — %s", name, st.Recommendation.Recommended.Label())
			if st.Balance > 0 {
				line = fmt.Sprintf("%s (%s) — %s",
					name, p.Sprintf("$%.2f", st.Balance), st.Recommendation.Recommended.Label())
			}
			fmt.Fprintf(w, "  • %s\n", bold(line))
			fmt.Fprintf(w, "    %s\n", dim(fmt.Sprintf("round %d: %s — wait %d days",
				st.Recommendation.Round.Round, st.Recommendation.Round.Name, st.Recommendation.Round.WaitDays)))
			for _, l := range wrapText(st.Recommendation.Round.NextAction, 70) {
				fmt.Fprintf(w, "    %s\n", dim(l))
			}
		}
		fmt.Fprintln(w)
	}

	return nil
}

func priorityColor(pr analytics.Priority) string {
	if noColor() {
		return ""
	}
	switch pr {
	case analytics.PriorityCritical:
		return colorRed
	case analytics.PriorityHigh:
		return colorYellow
	default:
		return ""
	}
}

// wrapText wraps a string at the given width, returning lines.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]

	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
		} else {
			current += " " + word
		}
	}
	lines = append(lines, current)
	return lines
}
