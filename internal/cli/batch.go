package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"
	"unicode"

	"github.com/ppiankov/fakenews/internal/model"
	"github.com/ppiankov/fakenews/internal/pipeline"
	"github.com/ppiankov/fakenews/internal/validate"
	"github.com/ppiankov/fakenews/internal/worker"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	batchMode    string
	outputDir    string
	batchFormat  string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Analyze many inputs from a file in parallel",
	Long: `Batch analyzes one input per line:
- Blank lines and lines starting with # are skipped
- Duplicate lines are analyzed once
- Lines starting with http:// or https:// use URL mode unless --mode is set
- Each input gets its own report file in the output directory

Example:
  fakenews batch inputs.txt
  fakenews batch urls.txt --mode url --concurrency 8 --output-dir ./reports
  fakenews batch inputs.txt --format md`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	defaults := model.DefaultConfig()

	batchCmd.Flags().Int("concurrency", defaults.Concurrency.Workers, "number of concurrent workers")
	batchCmd.Flags().StringVar(&batchMode, "mode", worker.ModeAuto, "input mode (auto, text, url)")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./fakenews-reports", "output directory for reports")
	batchCmd.Flags().StringVar(&batchFormat, "format", pipeline.FormatJSON, "report format (text, json, yaml, md)")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 5*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "omit the disclaimer footer")

	_ = viper.BindPFlag("concurrency.workers", batchCmd.Flags().Lookup("concurrency"))
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if noFooter {
		cfg.Output.IncludeFooter = false
	}

	format, err := pipeline.ParseFormat(batchFormat)
	if err != nil {
		return err
	}

	p, _, cleanup, err := buildPipeline(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	processor, err := worker.NewBatchProcessor(p, cfg.Concurrency.Workers, batchMode)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  FakeNews Detector Batch Analysis\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input file:   %s\n", file)
	fmt.Fprintf(os.Stderr, "  Mode:         %s\n", batchMode)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", cfg.Concurrency.Workers)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, batchTimeout)
	defer cancel()

	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	renderer := p.Renderer()
	successCount := 0
	failureCount := 0

	for _, result := range results {
		label := truncate(result.Input, 60)

		if result.Error != nil {
			failureCount++
			msg := result.Error.Error()
			if validate.IsValidationError(result.Error) {
				msg = validate.UserMessage(result.Error, cfg.Input)
			}
			fmt.Fprintln(os.Stderr, failureLine(result.Index, label, msg))
			continue
		}

		path := filepath.Join(outputDir, reportFilename(result.Index, result.Input, format))
		if err := renderer.WriteFile(path, result.Report, format); err != nil {
			failureCount++
			fmt.Fprintln(os.Stderr, failureLine(result.Index, label, "failed to write report: "+err.Error()))
			continue
		}

		successCount++
		fmt.Fprintf(os.Stderr, "✓ %s [%s] %d/100 %s\n", label, result.Mode, result.Report.Result.ReliabilityScore, result.Report.Result.RiskLevel)
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:     %d inputs\n", len(results))
	fmt.Fprintf(os.Stderr, "  Success:   %d\n", successCount)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	if failureCount > 0 {
		return fmt.Errorf("%d of %d inputs failed", failureCount, len(results))
	}
	return nil
}

// reportFilename builds a stable, filesystem-safe name for one batch line
func reportFilename(index int, input, format string) string {
	ext := format
	if format == pipeline.FormatText {
		ext = "txt"
	}
	return fmt.Sprintf("%03d-%s.%s", index+1, sanitizeFilename(input), ext)
}

// sanitizeFilename reduces a string to a short slug usable as a filename
func sanitizeFilename(s string) string {
	s = strings.ToLower(s)
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")

	var b strings.Builder
	dash := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
		} else if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
		if b.Len() >= 40 {
			break
		}
	}

	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return "input"
	}
	return slug
}

// truncate shortens s to at most n runes for display
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// failureLine reports a failed input by its 1-based position among the
// inputs actually analyzed (comments, blanks and duplicates are not counted)
func failureLine(index int, label, msg string) string {
	return fmt.Sprintf("✗ input %d (%s): %s", index+1, label, msg)
}
