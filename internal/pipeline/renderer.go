package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ppiankov/fakenews/internal/model"
	"gopkg.in/yaml.v3"
)

// Output formats
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatMarkdown = "md"
)

// Renderer renders reports in the supported output formats
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// ParseFormat validates an output format name
func ParseFormat(format string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(format)); f {
	case FormatText, FormatJSON, FormatYAML, FormatMarkdown:
		return f, nil
	case "markdown":
		return FormatMarkdown, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format %q (supported: text, json, yaml, md)", format)
	}
}

// Write renders the report in the given format
func (r *Renderer) Write(w io.Writer, report *model.Report, format string) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	case FormatMarkdown:
		_, err := io.WriteString(w, r.Markdown(report))
		return err
	default:
		_, err := io.WriteString(w, r.Summary(report)+"\n")
		return err
	}
}

// WriteFile renders the report to a file
func (r *Renderer) WriteFile(path string, report *model.Report, format string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()

	return r.Write(f, report, format)
}

// Summary formats the plain-text results block used for copy/export
func (r *Renderer) Summary(report *model.Report) string {
	res := report.Result

	var b strings.Builder
	fmt.Fprintf(&b, "FakeNews Detector Analysis Results (%s)\n", report.Mode.Label())
	b.WriteString("=============================================\n\n")
	fmt.Fprintf(&b, "Reliability Score: %d%%\n", res.ReliabilityScore)
	fmt.Fprintf(&b, "Risk Level: %s\n\n", res.RiskLevel)
	b.WriteString("Sentiment Analysis:\n")
	fmt.Fprintf(&b, "- Bias Detection: %s\n", res.SentimentAnalysis.Bias)
	fmt.Fprintf(&b, "- Emotional Tone: %s\n\n", res.SentimentAnalysis.EmotionalTone)
	fmt.Fprintf(&b, "Source Verification: %s\n\n", res.FactChecking.SourceVerification)
	fmt.Fprintf(&b, "Analysis Date: %s\n", report.AnalyzedAt.Format("2006-01-02 15:04:05 MST"))
	b.WriteString("Generated by FakeNews Detector - Verify Before You Share")
	if r.includeFooter {
		b.WriteString("\n")
		b.WriteString(model.Disclaimer)
	}

	return b.String()
}

// Markdown renders the full report as Markdown
func (r *Renderer) Markdown(report *model.Report) string {
	res := report.Result

	var b strings.Builder
	fmt.Fprintf(&b, "# Reliability Report (%s)\n\n", report.Mode.Label())
	if report.Input != "" {
		fmt.Fprintf(&b, "**Input:** %s  \n", report.Input)
	}
	fmt.Fprintf(&b, "**Analyzed:** %s  \n", report.AnalyzedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&b, "**Run ID:** `%s`\n\n", report.ID)

	fmt.Fprintf(&b, "## Score: %d/100\n\n", res.ReliabilityScore)
	fmt.Fprintf(&b, "**%s**\n\n", res.RiskLevel)

	b.WriteString("## Sentiment Analysis\n\n")
	fmt.Fprintf(&b, "- **Bias:** %s\n", res.SentimentAnalysis.Bias)
	fmt.Fprintf(&b, "- **Emotional tone:** %s\n", res.SentimentAnalysis.EmotionalTone)
	fmt.Fprintf(&b, "- **Language patterns:** %s\n\n", res.SentimentAnalysis.LanguagePatterns)

	b.WriteString("## Fact Checking\n\n")
	b.WriteString("Claims detected:\n\n")
	for _, claim := range res.FactChecking.ClaimsDetected {
		fmt.Fprintf(&b, "- %s\n", claim)
	}
	fmt.Fprintf(&b, "\n- **Source verification:** %s\n", res.FactChecking.SourceVerification)
	fmt.Fprintf(&b, "- **Similar articles:** %s\n\n", res.FactChecking.SimilarArticles)

	b.WriteString("## Source Credibility\n\n")
	b.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Domain authority | %d |\n", res.SourceCredibility.DomainAuthority)
	fmt.Fprintf(&b, "| Transparency | %d |\n", res.SourceCredibility.TransparencyScore)
	fmt.Fprintf(&b, "| Editorial standards | %s |\n", res.SourceCredibility.EditorialStandards)
	fmt.Fprintf(&b, "| Publication history | %s |\n", res.SourceCredibility.PublicationHistory)

	if r.includeFooter {
		b.WriteString("\n---\n\n")
		fmt.Fprintf(&b, "_%s_\n", model.Disclaimer)
	}

	return b.String()
}
