// Package main provides the dcatqa binary entry point.
// Dcatqa assesses open-data catalog metadata: SHACL validation against
// DCAT-AP, DCAT-AP-ES and NTI-RISP shape sets plus weighted FAIR+C quality
// scoring per the MQA methodology.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/dcatqa/config"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "dcatqa"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Metadata quality assessment for open-data catalogs",
		Long: `Dcatqa validates catalog metadata against the DCAT-AP, DCAT-AP-ES and
NTI-RISP application profiles and scores it on the FAIR+C quality
dimensions of the MQA methodology.

It provides:
- SHACL validation with normalized, documented violation reports
- Weighted quality scoring with per-dimension rollups and ratings
- Turtle, CSV and DQV (JSON-LD) report exports`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	setup := func() (*config.Config, *slog.Logger, error) {
		logger := newLogger(logLevel)
		cfg, err := loadConfig(configPath, logger)
		if err != nil {
			return nil, nil, err
		}
		return cfg, logger, nil
	}

	cmd.AddCommand(
		newValidateCmd(setup),
		newQualityCmd(setup),
		newExportCmd(setup),
		newUpdateShapesCmd(setup),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
			},
		},
	)
	return cmd
}

func newLogger(level string) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	return logger
}

func loadConfig(path string, logger *slog.Logger) (*config.Config, error) {
	if path != "" {
		cfg, err := config.LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		return cfg, nil
	}
	cfg, err := config.NewLoader(logger).Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
