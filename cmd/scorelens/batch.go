package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/scorelens/scorelens/internal/report"
	"github.com/scorelens/scorelens/pkg/config"
)

func newBatchCmd() *cobra.Command {
	var (
		dirPath     string
		outputDir   string
		asOf        string
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Analyze every dossier in a directory",
		Long: `Builds a full report for each dossier JSON in a directory, writes the
reports out, and prints a one-line summary per client.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd.Context(), batchOpts{
				dirPath:     dirPath,
				outputDir:   outputDir,
				asOf:        asOf,
				concurrency: concurrency,
			})
		},
	}

	cmd.Flags().StringVar(&dirPath, "dir", "", "Directory of dossier JSON files (required)")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "Where to write report JSONs (default: workspace cache)")
	cmd.Flags().StringVar(&asOf, "as-of", "", "Anchor date (YYYY-MM-DD or RFC3339, default: now)")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "Parallel dossier loads (default 4)")
	_ = cmd.MarkFlagRequired("dir")

	return cmd
}

type batchOpts struct {
	dirPath     string
	outputDir   string
	asOf        string
	concurrency int
}

func runBatch(ctx context.Context, opts batchOpts) error {
	cfg := loadCLIConfig()

	asOf, err := parseAsOf(opts.asOf)
	if err != nil {
		return err
	}

	builder := report.NewBuilder(cfg)
	builder.Clock = func() time.Time { return asOf }
	builder.Concurrency = opts.concurrency

	reports, err := builder.BuildDir(ctx, opts.dirPath)
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		return fmt.Errorf("no dossier files (*.json) in %s", opts.dirPath)
	}

	outDir := opts.outputDir
	if outDir == "" {
		if cwd, err := os.Getwd(); err == nil {
			if wsRoot, wsErr := config.FindWorkspaceRoot(cwd); wsErr == nil {
				outDir = config.ReportDir(wsRoot)
			}
		}
	}
	if outDir != "" {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	fmt.Printf("%-12s %-10s %-6s %-7s %s\n", "CLIENT", "BAND", "AVG", "ALERTS", "BEST CASE")
	for _, r := range reports {
		if outDir != "" {
			data, err := json.MarshalIndent(r, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling report for %s: %w", r.ClientID, err)
			}
			path := filepath.Join(outDir, r.ClientID+".json")
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("writing report for %s: %w", r.ClientID, err)
			}
		}

		band := string(r.Comparison.Band)
		if band == "" {
			band = "-"
		}
		alerts := 0
		if r.Anomalies != nil {
			alerts = len(r.Anomalies.Alerts)
		}
		best := r.Comparison.Average
		if r.Projection != nil {
			best = r.Projection.BestCase
		}
		fmt.Printf("%-12s %-10s %-6d %-7d %d\n", r.ClientID, band, r.Comparison.Average, alerts, best)
	}

	if outDir != "" {
		fmt.Fprintf(os.Stderr, "\n%d reports written to %s\n", len(reports), outDir)
	}
	return nil
}
