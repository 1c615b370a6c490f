package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scorelens/scorelens/pkg/analytics"
	"github.com/scorelens/scorelens/pkg/credit"
)

func newTrendCmd() *cobra.Command {
	var (
		dossierPath string
		bureauName  string
		months      int
		asOf        string
		outputFmt   string
	)

	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Score trend per bureau over a rolling window",
		Long:  `Compares the latest in-window reading against the newest reading at or before the window boundary.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrend(trendOpts{
				dossierPath: dossierPath,
				bureauName:  bureauName,
				months:      months,
				asOf:        asOf,
				outputFmt:   outputFmt,
			})
		},
	}

	cmd.Flags().StringVar(&dossierPath, "dossier", "", "Path to the client dossier JSON (required)")
	cmd.Flags().StringVar(&bureauName, "bureau", "", "Limit to one bureau: experian, equifax, or transunion")
	cmd.Flags().IntVar(&months, "months", 0, "Trend window in months (default: from config)")
	cmd.Flags().StringVar(&asOf, "as-of", "", "Anchor date (YYYY-MM-DD or RFC3339, default: now)")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")
	_ = cmd.MarkFlagRequired("dossier")

	return cmd
}

type trendOpts struct {
	dossierPath string
	bureauName  string
	months      int
	asOf        string
	outputFmt   string
}

func runTrend(opts trendOpts) error {
	cfg := loadCLIConfig()

	asOf, err := parseAsOf(opts.asOf)
	if err != nil {
		return err
	}

	d, err := credit.LoadDossier(opts.dossierPath)
	if err != nil {
		return fmt.Errorf("loading dossier: %w", err)
	}

	months := opts.months
	if months <= 0 {
		months = cfg.Analytics.TrendWindowMonths
	}

	bureaus := credit.AllBureaus()
	if opts.bureauName != "" {
		b, err := credit.ParseBureau(opts.bureauName)
		if err != nil {
			return err
		}
		bureaus = []credit.Bureau{b}
	}

	trends := make([]analytics.TrendResult, 0, len(bureaus))
	for _, b := range bureaus {
		trends = append(trends, analytics.ComputeTrend(d.Observations, b, asOf, months))
	}

	if opts.outputFmt == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(trends)
	}

	printTrends(d.ClientID, months, trends)
	return nil
}

func printTrends(clientID string, months int, trends []analytics.TrendResult) {
	fmt.Printf("Trends for %s (%d month window):\n", clientID, months)
	for _, tr := range trends {
		if tr.Direction == analytics.TrendInsufficientData {
			fmt.Printf("  %-12s insufficient data\n", tr.Bureau.DisplayName())
			continue
		}
		fmt.Printf("  %-12s %-10s %+d (%+.2f%%)  %d -> %d\n",
			tr.Bureau.DisplayName(), tr.Direction, tr.Change, tr.ChangePercent,
			tr.Past.Score, tr.Current.Score)
	}
}
