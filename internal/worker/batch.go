package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ppiankov/fakenews/internal/model"
	"github.com/ppiankov/fakenews/internal/pipeline"
)

// ModeAuto infers the mode of each batch line from its prefix
const ModeAuto = "auto"

// Analyzer runs one analysis request
type Analyzer interface {
	Analyze(ctx context.Context, req pipeline.Request) (*model.Report, error)
}

// AnalyzeJob represents one batch line to analyze
type AnalyzeJob struct {
	Index    int
	Input    string
	Mode     model.Mode
	Analyzer Analyzer
}

// Execute executes the analysis job
func (j *AnalyzeJob) Execute(ctx context.Context) Result {
	report, err := j.Analyzer.Analyze(ctx, pipeline.Request{Input: j.Input, Mode: j.Mode})
	return &AnalyzeResult{
		Index:  j.Index,
		Input:  j.Input,
		Mode:   j.Mode,
		Report: report,
		Error:  err,
	}
}

// AnalyzeResult represents the outcome of one batch line
type AnalyzeResult struct {
	Index  int
	Input  string
	Mode   model.Mode
	Report *model.Report
	Error  error
}

// GetError returns the error from the analysis
func (r *AnalyzeResult) GetError() error {
	return r.Error
}

// BatchProcessor analyzes many inputs concurrently
type BatchProcessor struct {
	analyzer    Analyzer
	concurrency int
	mode        string
}

// NewBatchProcessor creates a batch processor. mode is "auto", "text" or "url".
func NewBatchProcessor(analyzer Analyzer, concurrency int, mode string) (*BatchProcessor, error) {
	mode = strings.ToLower(strings.TrimSpace(mode))
	if mode == "" {
		mode = ModeAuto
	}
	if mode != ModeAuto {
		if _, err := model.ParseMode(mode); err != nil {
			return nil, fmt.Errorf("batch mode: %w", err)
		}
	}

	return &BatchProcessor{
		analyzer:    analyzer,
		concurrency: concurrency,
		mode:        mode,
	}, nil
}

// InferMode returns url for http(s) inputs and text otherwise
func InferMode(input string) model.Mode {
	lower := strings.ToLower(strings.TrimSpace(input))
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return model.ModeURL
	}
	return model.ModeText
}

func (b *BatchProcessor) modeFor(input string) model.Mode {
	if b.mode == ModeAuto {
		return InferMode(input)
	}
	return model.Mode(b.mode)
}

// ProcessInputs analyzes inputs concurrently and returns results in input order
func (b *BatchProcessor) ProcessInputs(ctx context.Context, inputs []string) []*AnalyzeResult {
	if len(inputs) == 0 {
		return []*AnalyzeResult{}
	}

	pool := NewPool(ctx, b.concurrency)
	pool.Start()

	// Submit from a separate goroutine so a full queue cannot deadlock result collection
	submitted := make(chan int, 1)
	go func() {
		n := 0
		for i, input := range inputs {
			job := &AnalyzeJob{
				Index:    i,
				Input:    input,
				Mode:     b.modeFor(input),
				Analyzer: b.analyzer,
			}
			if !pool.Submit(job) {
				break
			}
			n++
		}
		pool.Close()
		submitted <- n
	}()

	results := make([]*AnalyzeResult, 0, len(inputs))
	for result := range pool.Results() {
		results = append(results, result.(*AnalyzeResult))
	}
	<-submitted

	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})

	// Lines never run because ctx ended are reported as failures
	if len(results) < len(inputs) {
		done := make(map[int]bool, len(results))
		for _, r := range results {
			done[r.Index] = true
		}
		err := ctx.Err()
		if err == nil {
			err = context.Canceled
		}
		for i, input := range inputs {
			if !done[i] {
				results = append(results, &AnalyzeResult{Index: i, Input: input, Mode: b.modeFor(input), Error: err})
			}
		}
		sort.Slice(results, func(i, j int) bool {
			return results[i].Index < results[j].Index
		})
	}

	return results
}

// ProcessFile reads inputs from a file and analyzes them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*AnalyzeResult, error) {
	inputs, err := ReadInputsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read inputs: %w", err)
	}

	return b.ProcessInputs(ctx, inputs), nil
}

// ReadInputsFromFile reads inputs from a file, one per line.
// Blank lines and lines starting with # are skipped; duplicates keep their first position.
func ReadInputsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var inputs []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	// Lines may hold whole articles (up to the max input length, in runes)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			inputs = append(inputs, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return inputs, nil
}
