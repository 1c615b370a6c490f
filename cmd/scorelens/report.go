package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/scorelens/scorelens/internal/report"
	"github.com/scorelens/scorelens/pkg/analytics"
	"github.com/scorelens/scorelens/pkg/config"
	"github.com/scorelens/scorelens/pkg/credit"
	"github.com/scorelens/scorelens/pkg/surface"
)

func newReportCmd() *cobra.Command {
	var (
		dossierPath string
		outputFmt   string
		asOf        string
		noSave      bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Full analysis pipeline for one client dossier",
		Long: `Runs bureau comparison, trend analysis, anomaly detection, improvement
projection, and dispute planning over a dossier, then renders the
combined report.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(reportOpts{
				dossierPath: dossierPath,
				outputFmt:   outputFmt,
				asOf:        asOf,
				noSave:      noSave,
			})
		},
	}

	cmd.Flags().StringVar(&dossierPath, "dossier", "", "Path to the client dossier JSON (required)")
	cmd.Flags().StringVar(&outputFmt, "output", "", "Output format: text, json, or markdown (default: from config)")
	cmd.Flags().StringVar(&asOf, "as-of", "", "Anchor date for time-based analysis (YYYY-MM-DD or RFC3339, default: now)")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "Skip writing the report to the workspace cache")
	_ = cmd.MarkFlagRequired("dossier")

	return cmd
}

type reportOpts struct {
	dossierPath string
	outputFmt   string
	asOf        string
	noSave      bool
}

func runReport(opts reportOpts) error {
	cfg := loadCLIConfig()

	asOf, err := parseAsOf(opts.asOf)
	if err != nil {
		return err
	}

	d, err := credit.LoadDossier(opts.dossierPath)
	if err != nil {
		return fmt.Errorf("loading dossier: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Analyzing %s: %d observations / %d items / %d disputes\n",
		d.ClientID, d.Stats.ObservationCount, d.Stats.ItemCount, d.Stats.DisputeCount)

	builder := report.NewBuilder(cfg)
	builder.Clock = func() time.Time { return asOf }

	result := builder.Build(d)

	if !opts.noSave {
		saveReportResult(result)
	}

	format := firstNonEmpty(opts.outputFmt, cfg.Output.Format, "text")
	renderer, err := surface.ForFormat(format, cfg.Output.Locale)
	if err != nil {
		return err
	}
	if err := renderer.Render(os.Stdout, result); err != nil {
		return fmt.Errorf("rendering: %w", err)
	}

	return nil
}

// saveReportResult persists a built report into the workspace cache so
// later runs can compare against it. Best effort: analysis output never
// fails because the cache does.
func saveReportResult(result *analytics.ClientReport) {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}
	wsRoot, err := config.FindWorkspaceRoot(cwd)
	if err != nil {
		return // not inside a practice workspace, nothing to persist into
	}

	reportDir := config.ReportDir(wsRoot)
	if err := os.MkdirAll(reportDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to create report dir: %v\n", err)
		return
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to marshal report: %v\n", err)
		return
	}

	path := filepath.Join(reportDir,
		fmt.Sprintf("%s_%s.json", result.ClientID, result.GeneratedAt.Format("2006-01-02")))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to save report: %v\n", err)
		return
	}
	fmt.Fprintf(os.Stderr, "Report saved: %s\n", path)
}
