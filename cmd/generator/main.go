package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/palemoky/pokedex-data/internal/config"
	"github.com/palemoky/pokedex-data/internal/logger"
	"github.com/palemoky/pokedex-data/internal/processor"
	"github.com/palemoky/pokedex-data/internal/source"
)

var (
	configPath string
	outputDir  string
	sourceURL  string
)

func main() {
	// Initialize logger (always debug mode for the generator)
	logger.Init(true)
	defer logger.Sync()

	rootCmd := &cobra.Command{
		Use:   "generator",
		Short: "Pokédex dataset generator",
		Long:  "Fetch the PokeAPI CSV tables and generate the localized pokedex.json and encounters.json documents",
		RunE:  run,
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (YAML)")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (overrides output.dir)")
	rootCmd.Flags().StringVarP(&sourceURL, "source", "s", "", "Base URL or local directory of the CSV tables (overrides source.base_url)")

	// Interrupts cancel the in-flight fetch
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Fatal("Command execution failed", zap.Error(err))
	}
}

func run(cmd *cobra.Command, args []string) error {
	if !config.LoadDotEnv() {
		logger.Debug("No .env file found, continuing")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if outputDir != "" {
		cfg.Output.Dir = outputDir
	}
	if sourceURL != "" {
		cfg.Source.BaseURL = sourceURL
	}

	loc := cfg.ResolvedLocale()
	logger.Info("Generating dataset",
		zap.String("source", cfg.Source.BaseURL),
		zap.String("output", cfg.Output.Dir),
		zap.String("locale", loc.Tag),
	)

	fetcher := source.New(cfg.Source.BaseURL, source.Options{
		Timeout:           cfg.Source.Timeout,
		RequestsPerSecond: cfg.Source.RequestsPerSecond,
	})

	proc := processor.NewProcessor(fetcher, loc, cfg.Output.Dir)
	proc.SetProgressOutput(cmd.ErrOrStderr())

	res, err := proc.Process(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to generate dataset: %w", err)
	}

	if err := printSummary(cmd.OutOrStdout(), res.Summary); err != nil {
		logger.Warn("Failed to print summary", zap.Error(err))
	}

	return nil
}

func printSummary(w io.Writer, s processor.Summary) error {
	_, _ = color.New(color.FgCyan, color.Bold).Fprintln(w, "\n=== Dataset Summary ===")

	table := tablewriter.NewWriter(w)
	table.Header("Item", "Count")
	rows := [][]string{
		{"Source tables", strconv.Itoa(s.Tables)},
		{"Source rows", strconv.Itoa(s.Rows)},
		{"Games (version groups)", strconv.Itoa(s.Games)},
		{"Pokemon", strconv.Itoa(s.Pokemon)},
		{"Species with encounters", strconv.Itoa(s.EncounterSpecies)},
		{"Species × version entries", strconv.Itoa(s.Versions)},
	}
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}
