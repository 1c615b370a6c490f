package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scorelens/scorelens/pkg/analytics"
	"github.com/scorelens/scorelens/pkg/credit"
)

func newProjectCmd() *cobra.Command {
	var (
		dossierPath string
		outputFmt   string
	)

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project score improvement from removing negative items",
		Long: `Estimates the score gain for removing each active negative item,
ranks items by best-case impact, and builds a step-by-step removal
timeline from the current cross-bureau average.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProject(projectOpts{
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

type projectOpts struct {
	dossierPath string
	outputFmt   string
}

func runProject(opts projectOpts) error {
	d, err := credit.LoadDossier(opts.dossierPath)
	if err != nil {
		return fmt.Errorf("loading dossier: %w", err)
	}

	comparison := analytics.CompareBureaus(d.Observations)
	result := analytics.ProjectImprovement(d.Items, comparison.Average)

	if opts.outputFmt == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printProjection(d.ClientID, result)
	return nil
}

func printProjection(clientID string, result *analytics.ProjectionReport) {
	if len(result.Items) == 0 {
		fmt.Printf("No active negative items for %s\n", clientID)
		return
	}

	current := fmt.Sprintf("current %d", result.CurrentScore)
	if result.CurrentBand != "" {
		current = fmt.Sprintf("current %d %s", result.CurrentScore, result.CurrentBand)
	}
	fmt.Printf("Projection for %s (%s, %d active items):\n",
		clientID, current, result.ActiveItemCount)
	for i, impact := range result.Items {
		name := impact.CreditorName
		if name == "" {
			name = string(impact.ItemType)
		}
		fmt.Printf("  %d. %-28s +%d-%d pts  [%s]\n",
			i+1, name, impact.Estimate.Min, impact.Estimate.Max, impact.Priority)
	}

	if len(result.Timeline) > 0 {
		fmt.Println("\nRemoval timeline:")
		for _, step := range result.Timeline {
			fmt.Printf("  Step %d: remove %s  +%d -> %d\n",
				step.Step, step.ItemID, step.Gain, step.ProjectedScore)
		}
	}

	fmt.Printf("\n  Best case:    %d\n", result.BestCase)
	fmt.Printf("  Conservative: %d\n", result.Conservative)
}
