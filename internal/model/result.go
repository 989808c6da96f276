package model

import (
	"fmt"
	"strings"
)

// Mode selects how the input is interpreted
type Mode string

const (
	ModeText Mode = "text" // Raw article text
	ModeURL  Mode = "url"  // Article URL (never fetched)
)

// ParseMode parses a mode string (case-insensitive)
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeText:
		return ModeText, nil
	case ModeURL:
		return ModeURL, nil
	default:
		return "", fmt.Errorf("unknown mode %q (supported: text, url)", s)
	}
}

// Label returns the human-readable analysis type
func (m Mode) Label() string {
	if m == ModeURL {
		return "URL Analysis"
	}
	return "Text Analysis"
}

// Archetype identifies which of the fixed result templates a run came from
type Archetype string

const (
	ArchetypeHigh   Archetype = "high"   // High reliability
	ArchetypeMedium Archetype = "medium" // Mixed reliability
	ArchetypeLow    Archetype = "low"    // Low reliability
)

// RiskLevel is the user-facing label derived from a reliability score
type RiskLevel string

const (
	RiskTrusted RiskLevel = "Trusted - Highly Reliable"
	RiskLow     RiskLevel = "Low Risk - Generally Reliable"
	RiskMedium  RiskLevel = "Medium Risk - Verify Sources"
	RiskHigh    RiskLevel = "High Risk - Likely Fake"
)

// EditorialStandards rates a source's editorial process
type EditorialStandards string

const (
	EditorialLow      EditorialStandards = "Low"
	EditorialModerate EditorialStandards = "Moderate"
	EditorialHigh     EditorialStandards = "High"
)

// Result is the output of one classification run.
// It starts as a copy of a template; score, risk level and claims are
// overwritten per run.
type Result struct {
	Archetype         Archetype         `json:"archetype" yaml:"archetype"`
	ReliabilityScore  int               `json:"reliability_score" yaml:"reliability_score"`
	RiskLevel         RiskLevel         `json:"risk_level" yaml:"risk_level"`
	SentimentAnalysis SentimentAnalysis `json:"sentiment_analysis" yaml:"sentiment_analysis"`
	FactChecking      FactChecking      `json:"fact_checking" yaml:"fact_checking"`
	SourceCredibility SourceCredibility `json:"source_credibility" yaml:"source_credibility"`
	Signals           *Signals          `json:"signals,omitempty" yaml:"signals,omitempty"` // What drove the selection
}

// SentimentAnalysis holds the template's tone fields
type SentimentAnalysis struct {
	Bias             string `json:"bias" yaml:"bias"`
	EmotionalTone    string `json:"emotional_tone" yaml:"emotional_tone"`
	LanguagePatterns string `json:"language_patterns" yaml:"language_patterns"`
}

// FactChecking holds the detected claims and canned verification notes
type FactChecking struct {
	ClaimsDetected     []string `json:"claims_detected" yaml:"claims_detected"`
	SourceVerification string   `json:"source_verification" yaml:"source_verification"`
	SimilarArticles    string   `json:"similar_articles" yaml:"similar_articles"`
}

// SourceCredibility holds the template's canned credibility figures
type SourceCredibility struct {
	DomainAuthority    int                `json:"domain_authority" yaml:"domain_authority"`
	PublicationHistory string             `json:"publication_history" yaml:"publication_history"`
	EditorialStandards EditorialStandards `json:"editorial_standards" yaml:"editorial_standards"`
	TransparencyScore  int                `json:"transparency_score" yaml:"transparency_score"`
}

// Signals records the keyword signals evaluated for a run
type Signals struct {
	Mode Mode `json:"mode" yaml:"mode"`

	// Text mode
	Emotional  bool `json:"emotional,omitempty" yaml:"emotional,omitempty"`
	Clickbait  bool `json:"clickbait,omitempty" yaml:"clickbait,omitempty"`
	Credible   bool `json:"credible,omitempty" yaml:"credible,omitempty"`
	Anonymous  bool `json:"anonymous,omitempty" yaml:"anonymous,omitempty"`
	TextLength int  `json:"text_length,omitempty" yaml:"text_length,omitempty"`

	// URL mode
	Trusted    bool `json:"trusted,omitempty" yaml:"trusted,omitempty"`
	Suspicious bool `json:"suspicious,omitempty" yaml:"suspicious,omitempty"`
}

// Clone returns a deep copy of the result
func (r Result) Clone() Result {
	c := r
	if r.FactChecking.ClaimsDetected != nil {
		c.FactChecking.ClaimsDetected = append([]string(nil), r.FactChecking.ClaimsDetected...)
	}
	if r.Signals != nil {
		s := *r.Signals
		c.Signals = &s
	}
	return c
}
