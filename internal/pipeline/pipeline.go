package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/ppiankov/fakenews/internal/cache"
	"github.com/ppiankov/fakenews/internal/classify"
	"github.com/ppiankov/fakenews/internal/extract"
	"github.com/ppiankov/fakenews/internal/model"
	"github.com/ppiankov/fakenews/internal/validate"
)

// Request is one analysis submission
type Request struct {
	Input string
	Mode  model.Mode
	HTML  bool // Input is HTML markup; analyze its visible text
}

// Pipeline orchestrates validation, classification and caching
type Pipeline struct {
	classifier *classify.Classifier
	cache      cache.Cache // nil when caching is disabled
	renderer   *Renderer
	config     *model.Config
	warnings   io.Writer // nil means os.Stderr
	now        func() time.Time
}

// NewPipeline creates a pipeline. c may be nil to disable result caching.
func NewPipeline(cfg *model.Config, c cache.Cache, opts ...classify.Option) *Pipeline {
	if cfg == nil {
		cfg = model.DefaultConfig()
	}

	urlCfg := cfg.URL
	opts = append([]classify.Option{classify.WithURLConfig(&urlCfg)}, opts...)

	return &Pipeline{
		classifier: classify.New(opts...),
		cache:      c,
		renderer:   NewRenderer(cfg.Output.IncludeFooter),
		config:     cfg,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Config returns the pipeline configuration
func (p *Pipeline) Config() *model.Config {
	return p.config
}

// SetWarningOutput redirects verbose warnings, which go to stderr by default
func (p *Pipeline) SetWarningOutput(w io.Writer) {
	p.warnings = w
}

func (p *Pipeline) warnf(format string, args ...any) {
	if !p.config.Output.Verbose {
		return
	}
	w := p.warnings
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, "Warning: "+format+"\n", args...)
}

// Renderer returns the pipeline's renderer
func (p *Pipeline) Renderer() *Renderer {
	return p.renderer
}

// Validate normalizes and validates a request without classifying it.
// It returns the mode and the trimmed input the classifier would see.
func (p *Pipeline) Validate(req Request) (model.Mode, string, error) {
	mode := req.Mode
	if mode == "" {
		mode = model.ModeText
	}

	raw := req.Input
	if req.HTML {
		text, err := extract.VisibleText(raw)
		if err != nil {
			return mode, "", fmt.Errorf("extract html text: %w", err)
		}
		raw = text
	}

	input, err := validate.Input(raw, mode, p.config.Input)
	if err != nil {
		return mode, "", err
	}
	return mode, input, nil
}

// Analyze validates the request and classifies it.
// Validation errors are returned unwrapped so callers can use errors.Is.
func (p *Pipeline) Analyze(ctx context.Context, req Request) (*model.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mode, input, err := p.Validate(req)
	if err != nil {
		return nil, err
	}

	key := cache.Key(string(mode), input)
	if p.cache != nil {
		if data, found := p.cache.Get(key); found {
			var result model.Result
			if err := json.Unmarshal(data, &result); err == nil {
				report := p.newReport(mode, input, result)
				report.Cached = true
				return report, nil
			}
			// Corrupt entry: drop it and classify afresh
			_ = p.cache.Delete(key)
		}
	}

	result := p.classifier.Classify(input, mode)

	if p.cache != nil {
		if data, err := json.Marshal(result); err == nil {
			if err := p.cache.Set(key, data, p.config.Cache.TTL); err != nil {
				p.warnf("failed to cache result: %v", err)
			}
		}
	}

	return p.newReport(mode, input, result), nil
}

func (p *Pipeline) newReport(mode model.Mode, input string, result model.Result) *model.Report {
	report := &model.Report{
		ID:          uuid.NewString(),
		Mode:        mode,
		InputLength: utf8.RuneCountInString(input),
		AnalyzedAt:  p.now(),
		Result:      result,
		Disclaimer:  model.Disclaimer,
	}
	if mode == model.ModeURL {
		report.Input = input
	}
	return report
}
