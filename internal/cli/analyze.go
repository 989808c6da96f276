package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ppiankov/fakenews/internal/model"
	"github.com/ppiankov/fakenews/internal/pipeline"
	"github.com/ppiankov/fakenews/internal/validate"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	analyzeURL  bool
	analyzeHTML bool
	outFile     string
	noFooter    bool
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <text|url|->",
	Short: "Score a single article text or URL",
	Long: `Analyze classifies one input and prints a reliability report.

Text mode looks for sensational, clickbait, sourcing and credibility
keywords. URL mode only inspects the URL string; nothing is fetched.
Use "-" to read the input from stdin.

Example:
  fakenews analyze "According to a study published by researchers..."
  fakenews analyze --url https://www.reuters.com/world/
  curl -s https://example.com/story | fakenews analyze --html -
  fakenews analyze --format json --out report.json - < article.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	defaults := model.DefaultConfig()

	analyzeCmd.Flags().BoolVar(&analyzeURL, "url", false, "treat the input as a URL")
	analyzeCmd.Flags().BoolVar(&analyzeHTML, "html", false, "input is HTML; analyze its visible text")
	analyzeCmd.Flags().StringP("format", "f", defaults.Output.Format, "output format (text, json, yaml, md)")
	analyzeCmd.Flags().StringVarP(&outFile, "out", "o", "", "write the report to a file instead of stdout")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "omit the disclaimer footer")

	_ = viper.BindPFlag("output.format", analyzeCmd.Flags().Lookup("format"))
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	input, err := readInput(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if noFooter {
		cfg.Output.IncludeFooter = false
	}

	format, err := pipeline.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	mode := model.ModeText
	if analyzeURL {
		mode = model.ModeURL
	}

	p, _, cleanup, err := buildPipeline(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing %s input (%d bytes)\n", mode, len(input))
	}

	report, err := p.Analyze(ctx, pipeline.Request{Input: input, Mode: mode, HTML: analyzeHTML})
	if err != nil {
		if validate.IsValidationError(err) {
			return errors.New(validate.UserMessage(err, cfg.Input))
		}
		return fmt.Errorf("analysis failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Selected %s reliability template\n", report.Result.Archetype)
		fmt.Fprintf(os.Stderr, "✓ Score %d/100 (%s)\n", report.Result.ReliabilityScore, report.Result.RiskLevel)
		if report.Cached {
			fmt.Fprintf(os.Stderr, "✓ Served from cache\n")
		}
		fmt.Fprintln(os.Stderr)
	}

	renderer := p.Renderer()
	if outFile != "" {
		if err := renderer.WriteFile(outFile, report, format); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Fprintf(os.Stderr, "✓ Report written to %s\n", outFile)
		return nil
	}

	return renderer.Write(cmd.OutOrStdout(), report, format)
}

// readInput returns the argument, or all of stdin when the argument is "-"
func readInput(arg string, stdin io.Reader) (string, error) {
	if arg != "-" {
		return arg, nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
