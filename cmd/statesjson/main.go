// Package main provides the CLI entry point for statesjson.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/statesjson/internal/config"
	"github.com/ukaji3/statesjson/internal/logger"
	"github.com/ukaji3/statesjson/pkg/statesjson"
	"github.com/ukaji3/statesjson/pkg/statesjson/output"
	"github.com/ukaji3/statesjson/pkg/statesjson/parser"
	"github.com/ukaji3/statesjson/pkg/statesjson/publish"
)

var (
	inputPath   string
	outputPath  string
	pretty      bool
	quiet       bool
	onDuplicate string
	publishTo   string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "statesjson",
		Short: "Convert the 50-states workbook to JSON",
		Long: `statesjson reads the State Overview, Economic Data, Health Data, Industry Data,
Fun Facts and Source Links sheets and writes one JSON document with a merged
entry per state and the source catalog.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVarP(&inputPath, "input", "i", statesjson.DefaultInputPath, "Input workbook path")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", statesjson.DefaultOutputPath, "Output JSON path")
	rootCmd.Flags().BoolVar(&pretty, "pretty", true, "Indent JSON output")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Omit the state preview from the report")
	rootCmd.Flags().StringVar(&onDuplicate, "on-duplicate", string(statesjson.DuplicateWarn), "Repeated state rows: last, warn, or reject")
	rootCmd.Flags().StringVar(&publishTo, "publish", "", "Also upload the document: none, s3, or minio (default from STATESJSON_PUBLISH_DRIVER)")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cmd.ErrOrStderr(), "statesjson", cfg.LogLevel)

	dup, err := parser.ParseDuplicatePolicy(onDuplicate)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("publish") {
		if cfg.Publish.Driver, err = publish.ParseDriver(publishTo); err != nil {
			return err
		}
	}

	// Extract data
	doc, err := statesjson.Extract(inputPath, statesjson.Options{Duplicates: dup, Logger: log})
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	// Serialize to JSON
	jsonData, err := output.ToJSON(doc, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	// Write output
	if err := output.WriteFile(outputPath, jsonData); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	location, err := publishDocument(cmd.Context(), cfg.Publish, jsonData)
	if err != nil {
		return fmt.Errorf("publish failed: %w", err)
	}
	if location != "" {
		log.Info("document published", "location", location, "bytes", len(jsonData))
	}

	return output.Report(cmd.OutOrStdout(), doc, output.Summary{
		OutputPath:  outputPath,
		PublishedTo: location,
		Quiet:       quiet,
	})
}

func publishDocument(ctx context.Context, cfg publish.Config, data []byte) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	p, err := publish.New(ctx, cfg)
	if err != nil || p == nil {
		return "", err
	}
	return p.Publish(ctx, cfg.Key, data)
}
