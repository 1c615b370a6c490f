package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scorelens/scorelens/internal/report"
	"github.com/scorelens/scorelens/pkg/analytics"
	"github.com/scorelens/scorelens/pkg/credit"
)

func newAnomaliesCmd() *cobra.Command {
	var (
		dossierPath string
		windowDays  int
		asOf        string
		outputFmt   string
	)

	cmd := &cobra.Command{
		Use:   "anomalies",
		Short: "Scan a dossier for score anomalies and aging items",
		Long: `Runs every anomaly check: sudden drops, cross-bureau inconsistency,
stagnation during active disputes, and items nearing the seven-year
reporting limit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnomalies(anomaliesOpts{
				dossierPath: dossierPath,
				windowDays:  windowDays,
				asOf:        asOf,
				outputFmt:   outputFmt,
			})
		},
	}

	cmd.Flags().StringVar(&dossierPath, "dossier", "", "Path to the client dossier JSON (required)")
	cmd.Flags().IntVar(&windowDays, "window", 0, "Scan window in days (default: from config)")
	cmd.Flags().StringVar(&asOf, "as-of", "", "Anchor date (YYYY-MM-DD or RFC3339, default: now)")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")
	_ = cmd.MarkFlagRequired("dossier")

	return cmd
}

type anomaliesOpts struct {
	dossierPath string
	windowDays  int
	asOf        string
	outputFmt   string
}

func runAnomalies(opts anomaliesOpts) error {
	cfg := loadCLIConfig()

	asOf, err := parseAsOf(opts.asOf)
	if err != nil {
		return err
	}

	d, err := credit.LoadDossier(opts.dossierPath)
	if err != nil {
		return fmt.Errorf("loading dossier: %w", err)
	}

	th := report.NewBuilder(cfg).Thresholds
	if opts.windowDays > 0 {
		th.WindowDays = opts.windowDays
	}

	detector := analytics.NewDetector(analytics.ChecksFrom(th)...)
	result := detector.Scan(analytics.Input{
		Observations: d.Observations,
		Items:        d.Items,
		Disputes:     d.Disputes,
		Now:          asOf,
		WindowDays:   th.WindowDays,
	})

	if opts.outputFmt == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printAnomalies(d.ClientID, result)
	return nil
}

func printAnomalies(clientID string, result *analytics.AnomalyReport) {
	if len(result.Alerts) == 0 {
		fmt.Printf("No anomalies found for %s (%d day window)\n", clientID, result.WindowDays)
		return
	}

	fmt.Printf("Anomalies for %s (%d day window):\n", clientID, result.WindowDays)
	for _, a := range result.Alerts {
		fmt.Printf("  [%s] %s\n", a.Severity, a.Message)
		if a.Recommendation != "" {
			fmt.Printf("        %s\n", a.Recommendation)
		}
	}
	fmt.Printf("\n  %d info / %d warning / %d critical\n",
		result.Counts.Info, result.Counts.Warning, result.Counts.Critical)
}
