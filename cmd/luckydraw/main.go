// Package main provides the CLI entry point for luckydraw.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/luckydraw-go/internal/config"
	"github.com/ukaji3/luckydraw-go/internal/logging"
	"github.com/ukaji3/luckydraw-go/pkg/luckydraw"
	"github.com/ukaji3/luckydraw-go/pkg/luckydraw/models"
	"github.com/ukaji3/luckydraw-go/pkg/luckydraw/output"
	"go.uber.org/zap"
)

var (
	configPath string
	inputPath  string
	outputPath string
	pretty     bool
	jsonOutput bool
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "luckydraw [column names...]",
		Short: "Extract lucky draw groups from an Excel workbook",
		Long: `luckydraw reads the ticket generation sheet and the eligible agent sheet
of a lucky draw workbook and writes the drawing page's group data as JSON.

Without column names it lists the workbook's sheets, headers and first rows.
With 8 or 9 column names it runs the extraction:

  ticket name, ticket group, prize amount,
  roster group, family, [agent code,] agent name, agency code, district`,
		Example: "  luckydraw -i draw.xlsm " + quoteArgs(luckydraw.UsageColumns),
		Args:    validateArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
			if inputPath != "" {
				cfg.Input = inputPath
			}
			if outputPath != "" {
				cfg.Output = outputPath
			}
			logger, err = logging.New(cfg.Logging, verbose)
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
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Config file path")
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Workbook path (overrides config)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output JSON path (overrides config)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", true, "Pretty-print JSON output")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the workbook summary as JSON (no column names only)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return rootCmd
}

func validateArgs(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 0, luckydraw.ArgsWithoutAgentCode, luckydraw.ArgsWithAgentCode:
		return nil
	}
	return fmt.Errorf("expected 0, %d or %d column names, got %d",
		luckydraw.ArgsWithoutAgentCode, luckydraw.ArgsWithAgentCode, len(args))
}

func run(cmd *cobra.Command, args []string) error {
	if cfg.Input == "" {
		return fmt.Errorf("no workbook given: use --input or set input in %s", configPath)
	}

	if len(args) == 0 {
		return runInspect(cmd.OutOrStdout(), cfg.Input)
	}
	return runExtract(cmd.OutOrStdout(), cfg.Input, cfg.Output, args)
}

func runInspect(w io.Writer, path string) error {
	summary, err := luckydraw.Inspect(path)
	if err != nil {
		return fmt.Errorf("inspection failed: %w", err)
	}

	if jsonOutput {
		jsonData, err := output.ToJSON(summary, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Fprintln(w, string(jsonData))
		return nil
	}

	printSummary(w, summary)
	return nil
}

func runExtract(w io.Writer, path, outPath string, args []string) error {
	opts, err := luckydraw.ColumnsFromArgs(args)
	if err != nil {
		return err
	}
	opts.Logger = logger

	data, err := luckydraw.Extract(path, opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	jsonData, err := output.ToJSON(data, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Fprintln(w, string(jsonData))

	if outPath != "" {
		if err := output.WriteFile(outPath, jsonData); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		logger.Info("data saved", zap.String("path", outPath))
	}
	return nil
}

func printSummary(w io.Writer, s *models.WorkbookSummary) {
	fmt.Fprintf(w, "Workbook: %s\n", s.BookName)
	names := make([]string, len(s.Sheets))
	for i, sheet := range s.Sheets {
		names[i] = sheet.Name
	}
	fmt.Fprintf(w, "Available sheets: %s\n", strings.Join(names, ", "))

	for _, sheet := range s.Sheets {
		fmt.Fprintf(w, "\n%s sheet:\n", sheet.Name)
		fmt.Fprintf(w, "Max row: %d, Max col: %d", sheet.MaxRow, sheet.MaxCol)
		if sheet.DataRange != "" {
			fmt.Fprintf(w, ", Data range: %s", sheet.DataRange)
		}
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Headers: %s\n", quoteArgs(sheet.Headers))
		if len(sheet.Rows) > 0 {
			fmt.Fprintf(w, "First %d data rows:\n", len(sheet.Rows))
		}
		for _, row := range sheet.Rows {
			fmt.Fprintf(w, "Row %d: %s\n", row.R, quoteArgs(row.C))
		}
	}

	fmt.Fprintln(w)
	if s.TicketSheet != "" {
		fmt.Fprintf(w, "Ticket sheet: %s\n", s.TicketSheet)
	} else {
		fmt.Fprintln(w, "Ticket sheet: none (need a \"value only\" or \"Generation\" sheet)")
	}
	if s.EligibilitySheet != "" {
		fmt.Fprintf(w, "Eligible agent sheet: %s\n", s.EligibilitySheet)
	} else {
		fmt.Fprintln(w, "Eligible agent sheet: none (groups will not be enriched)")
	}

	fmt.Fprintln(w, "\nTo extract data, run with column names:")
	fmt.Fprintf(w, "luckydraw -i %q %s\n", s.BookName, quoteArgs(luckydraw.UsageColumns))
}

func quoteArgs(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + v + "'"
	}
	return strings.Join(quoted, " ")
}
