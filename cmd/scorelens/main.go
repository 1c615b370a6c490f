// Package main provides the scorelens CLI entry point.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/scorelens/scorelens/pkg/config"
)

var version = "dev"

var (
	cfgPath string
	verbose bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "scorelens",
		Short: "Credit score analytics and dispute strategy",
		Long: `Scorelens analyzes per-bureau credit score histories: trends, cross-bureau
comparison, anomaly detection, improvement projections, and the next
dispute move for every negative item on file.`,
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(verbose)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to config file (default: .scorelens/config.yaml in workspace)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newReportCmd(),
		newTrendCmd(),
		newCompareCmd(),
		newAnomaliesCmd(),
		newProjectCmd(),
		newStrategyCmd(),
		newRoundsCmd(),
		newBatchCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogging(verbose bool) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}

// loadCLIConfig resolves the config file (explicit flag, then workspace
// discovery) and loads it. Errors fall back to defaults with a warning;
// a missing file is not an error.
func loadCLIConfig() *config.Config {
	path := cfgPath
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return config.DefaultConfig()
		}
		path = config.FindConfigFile(cwd)
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		return config.DefaultConfig()
	}
	return cfg
}

// parseAsOf turns an --as-of value into the analysis anchor time.
// Empty means now.
func parseAsOf(s string) (time.Time, error) {
	if s == "" {
		return time.Now().UTC(), nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing --as-of %q (want YYYY-MM-DD or RFC3339): %w", s, err)
	}
	return t.UTC(), nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
