// Package main provides the CLI entry point for csvmend.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/csvmend-go/pkg/csvmend"
	"github.com/ukaji3/csvmend-go/pkg/csvmend/models"
	"github.com/ukaji3/csvmend-go/pkg/csvmend/output"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configPath string
	workbook   bool
	report     bool
	verbose    bool

	logger *zap.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error while processing: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "csvmend [input.csv]",
		Short: "Merge wrapped continuation rows back into their records",
		Long: `csvmend repairs delimited exports where a record spilled onto a new row
with an empty first column. Each continuation row is moved into the row above
it, at a column chosen from its content, and then removed.

The result is written next to the input as <name>_LIMPA.csv (UTF-8).`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if logger != nil {
				return nil
			}
			config := zap.NewProductionConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML options file (delimiter, columns, encodings)")
	rootCmd.Flags().BoolVar(&workbook, "xlsx", false, "Also write an .xlsx copy of the repaired table")
	rootCmd.Flags().BoolVar(&report, "report", false, "Print a JSON repair report")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	// Resolve options
	opts := csvmend.DefaultOptions()
	if configPath != "" {
		var err error
		opts, err = csvmend.LoadOptions(configPath)
		if err != nil {
			return fmt.Errorf("failed to load options: %w", err)
		}
	}
	if workbook {
		opts.WriteWorkbook = true
	}
	opts.Logger = logger

	// Repair and write
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Processing: %s\n", inputPath)

	result, err := csvmend.Repair(inputPath, opts)
	if err != nil {
		return err
	}

	// Log summary
	if logger != nil {
		fields := []zap.Field{
			zap.String("input", result.Input),
			zap.String("output", result.Output),
			zap.String("encoding", result.Encoding),
			zap.Int("rows_in", result.RowsIn),
			zap.Int("rows_out", result.RowsOut),
			zap.Int("merged", result.Merged),
		}
		for _, slot := range models.Slots {
			fields = append(fields, zap.Int("merged_"+string(slot), result.BySlot[slot]))
		}
		logger.Info("repair finished", fields...)
	}

	fmt.Fprintf(out, "Written: %s\n", result.Output)
	if result.Workbook != "" {
		fmt.Fprintf(out, "Written: %s\n", result.Workbook)
	}

	// Serialize report
	if report {
		jsonData, err := output.ToJSON(result, true)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Fprintln(out, string(jsonData))
	}

	return nil
}
