package model

import "time"

// Disclaimer is attached to every report
const Disclaimer = "Demonstration heuristic only: no content was fetched, verified, or cross-referenced."

// Report wraps one classification run with request metadata
type Report struct {
	ID          string    `json:"id" yaml:"id"`
	Mode        Mode      `json:"mode" yaml:"mode"`
	Input       string    `json:"input,omitempty" yaml:"input,omitempty"` // URL mode only
	InputLength int       `json:"input_length" yaml:"input_length"`       // Characters after trimming
	AnalyzedAt  time.Time `json:"analyzed_at" yaml:"analyzed_at"`
	Cached      bool      `json:"cached" yaml:"cached"` // Served from the result cache
	Result      Result    `json:"result" yaml:"result"`
	Disclaimer  string    `json:"disclaimer" yaml:"disclaimer"`
}
