package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scorelens/scorelens/pkg/strategy"
)

func newRoundsCmd() *cobra.Command {
	var outputFmt string

	cmd := &cobra.Command{
		Use:   "rounds",
		Short: "Show the dispute escalation ladder",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRounds(outputFmt)
		},
	}

	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")

	return cmd
}

func runRounds(format string) error {
	ladder := strategy.Rounds()

	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(ladder)
	}

	fmt.Println("Dispute escalation ladder:")
	for _, r := range ladder {
		terminal := ""
		if r.Terminal {
			terminal = "  (final)"
		}
		fmt.Printf("\nRound %d: %s — wait %d days%s\n", r.Round, r.Name, r.WaitDays, terminal)
		fmt.Printf("  %s\n", r.NextAction)
	}
	return nil
}
