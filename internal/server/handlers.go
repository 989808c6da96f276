package server

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ppiankov/fakenews/internal/model"
	"github.com/ppiankov/fakenews/internal/pipeline"
	"github.com/ppiankov/fakenews/internal/validate"
)

const maxBodyBytes = 1 << 20

// Error codes returned alongside validation codes from the validate package
const (
	codeInvalidRequest = "invalid_request"
	codeRateLimited    = "rate_limited"
	codeInternal       = "internal_error"
)

const (
	msgGeneric     = "An error occurred during analysis. Please try again."
	msgRateLimited = "Too many requests. Please wait a moment and try again."
)

//go:embed static/index.html
var indexHTML []byte

// analyzeRequest is the JSON body accepted by the analysis endpoints
type analyzeRequest struct {
	Text   string `json:"text,omitempty"`
	URL    string `json:"url,omitempty"`
	Mode   string `json:"mode,omitempty"`   // text or url; inferred from which field is set
	Format string `json:"format,omitempty"` // text (default) or html
}

// errorResponse is the JSON body for every error status
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// toPipeline resolves the mode and input of a request
func (r analyzeRequest) toPipeline() (pipeline.Request, error) {
	var mode model.Mode
	switch {
	case r.Mode != "":
		m, err := model.ParseMode(r.Mode)
		if err != nil {
			return pipeline.Request{}, err
		}
		mode = m
	case r.URL != "" && r.Text == "":
		mode = model.ModeURL
	default:
		mode = model.ModeText
	}

	input := r.Text
	if mode == model.ModeURL && r.URL != "" {
		input = r.URL
	} else if input == "" {
		input = r.URL
	}

	var html bool
	switch strings.ToLower(strings.TrimSpace(r.Format)) {
	case "", "text":
	case "html":
		html = true
	default:
		return pipeline.Request{}, fmt.Errorf("unknown input format %q (supported: text, html)", r.Format)
	}

	return pipeline.Request{Input: input, Mode: mode, HTML: html}, nil
}

func (s *Server) indexHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexHTML)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{"status": "ok"}
	if counter, ok := s.cache.(interface{ Len() int }); ok {
		resp["cache_entries"] = counter.Len()
	}
	if s.limiter != nil {
		resp["tracked_clients"] = s.limiter.Len()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) analyzeHandler(w http.ResponseWriter, r *http.Request) {
	report, ok := s.analyze(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) summaryHandler(w http.ResponseWriter, r *http.Request) {
	report, ok := s.analyze(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = fmt.Fprintln(w, s.pipeline.Renderer().Summary(report))
}

// analyze decodes the request and runs the pipeline, writing an error response on failure
func (s *Server) analyze(w http.ResponseWriter, r *http.Request) (*model.Report, bool) {
	var body analyzeRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, "Request body must be a JSON object.")
		return nil, false
	}

	req, err := body.toPipeline()
	if err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, err.Error())
		return nil, false
	}

	report, err := s.pipeline.Analyze(r.Context(), req)
	if err != nil {
		s.writeAnalyzeError(w, r, err)
		return nil, false
	}

	s.logger.Debug("analysis complete",
		"mode", report.Mode,
		"archetype", report.Result.Archetype,
		"score", report.Result.ReliabilityScore,
		"cached", report.Cached,
	)
	return report, true
}

func (s *Server) writeAnalyzeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code, msg := s.classifyError(err)
	if status == 0 {
		// Client went away
		return
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("analysis failed", "path", r.URL.Path, "error", err)
	}
	writeError(w, status, code, msg)
}

// classifyError maps a pipeline error to a status, code and user message.
// A zero status means no response should be written.
func (s *Server) classifyError(err error) (int, string, string) {
	switch {
	case validate.IsValidationError(err):
		return http.StatusBadRequest, validate.Code(err), validate.UserMessage(err, s.config.Input)
	case errors.Is(err, context.Canceled):
		return 0, "", ""
	default:
		return http.StatusInternalServerError, codeInternal, msgGeneric
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorResponse{Error: msg, Code: code})
}
