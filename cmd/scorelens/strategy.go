package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scorelens/scorelens/pkg/analytics"
	"github.com/scorelens/scorelens/pkg/credit"
	"github.com/scorelens/scorelens/pkg/strategy"
)

func newStrategyCmd() *cobra.Command {
	var (
		dossierPath string
		itemID      string
		itemType    string
		bureauName  string
		round       int
		previous    string
		outputFmt   string
	)

	cmd := &cobra.Command{
		Use:   "strategy",
		Short: "Recommend the next dispute move for a negative item",
		Long: `Selects a dispute strategy from the item-type playbook, adjusted for
the escalation round and for how the bureau answered the last attempt.
The round comes from a dossier's attempt history (--dossier with
--item) or directly from flags (--type with --round).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStrategy(strategyOpts{
				dossierPath: dossierPath,
				itemID:      itemID,
				itemType:    itemType,
				bureauName:  bureauName,
				round:       round,
				previous:    previous,
				outputFmt:   outputFmt,
			})
		},
	}

	cmd.Flags().StringVar(&dossierPath, "dossier", "", "Path to the client dossier JSON")
	cmd.Flags().StringVar(&itemID, "item", "", "Item ID inside the dossier")
	cmd.Flags().StringVar(&itemType, "type", "", "Negative item type (e.g. collection, charge_off)")
	cmd.Flags().StringVar(&bureauName, "bureau", "", "Bureau the item reports at: experian, equifax, or transunion")
	cmd.Flags().IntVar(&round, "round", 1, "Escalation round (1-4)")
	cmd.Flags().StringVar(&previous, "previous", "", "Outcome of the previous round: resolved or verified")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")

	return cmd
}

type strategyOpts struct {
	dossierPath string
	itemID      string
	itemType    string
	bureauName  string
	round       int
	previous    string
	outputFmt   string
}

func runStrategy(opts strategyOpts) error {
	if opts.dossierPath != "" {
		return runStrategyFromDossier(opts)
	}
	if opts.itemType == "" {
		return fmt.Errorf("either --dossier with --item or --type is required")
	}

	// Unknown types fall through to the generic playbook; an empty or
	// unknown bureau simply carries no bureau notes.
	rec := strategy.SelectStrategy(
		credit.ItemType(opts.itemType),
		credit.Bureau(opts.bureauName),
		opts.round,
		strategy.RoundOutcome(opts.previous),
	)
	return outputStrategy(opts.outputFmt, rec, nil)
}

func runStrategyFromDossier(opts strategyOpts) error {
	if opts.itemID == "" {
		return fmt.Errorf("--item is required with --dossier")
	}

	d, err := credit.LoadDossier(opts.dossierPath)
	if err != nil {
		return fmt.Errorf("loading dossier: %w", err)
	}

	var item *credit.NegativeItem
	for i := range d.Items {
		if d.Items[i].ID == opts.itemID {
			item = &d.Items[i]
			break
		}
	}
	if item == nil {
		return fmt.Errorf("no item %q in dossier for %s", opts.itemID, d.ClientID)
	}

	attempts := d.AttemptsFor(item.ID, item.Bureau)
	var lastStatus credit.DisputeStatus
	if len(attempts) > 0 {
		lastStatus = attempts[len(attempts)-1].Status
	}
	state := strategy.DetermineRound(len(attempts), lastStatus)
	rec := strategy.SelectStrategy(item.Type, item.Bureau, state.Round, state.PreviousResult)

	comparison := analytics.CompareBureaus(d.Observations)
	est := strategy.EstimateImprovement(item.Type, comparison.Average, len(d.ActiveItems()))

	return outputStrategy(opts.outputFmt, rec, &est)
}

func outputStrategy(format string, rec strategy.StrategyRecommendation, est *strategy.Range) error {
	if format == "json" {
		out := struct {
			Recommendation strategy.StrategyRecommendation `json:"recommendation"`
			Estimate       *strategy.Range                 `json:"estimate,omitempty"`
		}{rec, est}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	printStrategy(rec, est)
	return nil
}

func printStrategy(rec strategy.StrategyRecommendation, est *strategy.Range) {
	fmt.Printf("%s (round %d)\n", rec.Strategy.Name, rec.Round.Round)
	fmt.Printf("  Dispute as: %s\n", rec.Recommended.Label())
	if len(rec.Strategy.Alternatives) > 0 {
		labels := make([]string, 0, len(rec.Strategy.Alternatives))
		for _, alt := range rec.Strategy.Alternatives {
			labels = append(labels, alt.Label())
		}
		fmt.Printf("  Fallbacks:  %s\n", strings.Join(labels, ", "))
	}
	if est != nil {
		fmt.Printf("  Estimated gain: %d-%d points\n", est.Min, est.Max)
	}

	fmt.Printf("\n%s — wait %d days for a response\n", rec.Round.Name, rec.Round.WaitDays)
	fmt.Printf("  %s\n", rec.Round.NextAction)

	if rec.Bureau != nil {
		fmt.Printf("\n%s notes:\n", rec.Bureau.Name)
		for _, t := range rec.Bureau.Tactics {
			fmt.Printf("  - %s\n", t)
		}
	}

	if len(rec.Strategy.Tips) > 0 {
		fmt.Println("\nTips:")
		for _, t := range rec.Strategy.Tips {
			fmt.Printf("  - %s\n", t)
		}
	}

	if len(rec.Strategy.Citations) > 0 {
		fmt.Println("\nCite:")
		for _, c := range rec.Strategy.Citations {
			fmt.Printf("  - %s\n", c)
		}
	}
}
