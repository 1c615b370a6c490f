package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scorelens/scorelens/pkg/analytics"
	"github.com/scorelens/scorelens/pkg/credit"
)

func newCompareCmd() *cobra.Command {
	var (
		dossierPath string
		outputFmt   string
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Line up the latest score from each bureau",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(compareOpts{
				dossierPath: dossierPath,
				outputFmt:   outputFmt,
			})
		},
	}

	cmd.Flags().StringVar(&dossierPath, "dossier", "", "Path to the client dossier JSON (required)")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")
	_ = cmd.MarkFlagRequired("dossier")

	return cmd
}

type compareOpts struct {
	dossierPath string
	outputFmt   string
}

func runCompare(opts compareOpts) error {
	d, err := credit.LoadDossier(opts.dossierPath)
	if err != nil {
		return fmt.Errorf("loading dossier: %w", err)
	}

	result := analytics.CompareBureaus(d.Observations)

	if opts.outputFmt == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printComparison(d.ClientID, result)
	return nil
}

func printComparison(clientID string, result analytics.ComparisonResult) {
	if len(result.Scores) == 0 {
		fmt.Printf("No score observations on file for %s\n", clientID)
		return
	}

	fmt.Printf("Bureau comparison for %s:\n", clientID)
	for _, bs := range result.Scores {
		fmt.Printf("  %-12s %d  (%s)\n",
			bs.Bureau.DisplayName(), bs.Score, bs.ObservedAt.Format("2006-01-02"))
	}
	fmt.Printf("  Average: %d (%s)\n", result.Average, result.Band)
	fmt.Printf("  Spread:  %d points (max %d, min %d)\n", result.Spread, result.Max, result.Min)
}
