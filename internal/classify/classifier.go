// Package classify maps article text or a URL to one of three canned
// reliability verdicts using keyword heuristics. It is a demonstration:
// nothing is fetched or verified.
package classify

import (
	"github.com/ppiankov/fakenews/internal/extract"
	"github.com/ppiankov/fakenews/internal/model"
	"github.com/ppiankov/fakenews/internal/score"
	"github.com/ppiankov/fakenews/internal/validate"
)

// Classifier selects a result template for an input and perturbs its score.
// A Classifier holds no per-call state; it is safe for concurrent use when
// its Source is.
type Classifier struct {
	source  score.Source
	domains *validate.DomainClassifier
}

// Option configures a Classifier
type Option func(*Classifier)

// WithSource sets the random source used for score offsets
func WithSource(src score.Source) Option {
	return func(c *Classifier) {
		if src != nil {
			c.source = src
		}
	}
}

// WithURLConfig replaces the URL marker lists
func WithURLConfig(cfg *model.URLConfig) Option {
	return func(c *Classifier) {
		c.domains = validate.NewDomainClassifier(cfg)
	}
}

// New creates a classifier with the default markers and a concurrency-safe source
func New(opts ...Option) *Classifier {
	c := &Classifier{
		source:  score.DefaultSource(),
		domains: validate.NewDomainClassifier(nil),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify produces one run for already-validated input
func (c *Classifier) Classify(input string, mode model.Mode) model.Result {
	if mode == model.ModeURL {
		return c.classifyURL(input)
	}
	return c.classifyText(input)
}

func (c *Classifier) classifyText(input string) model.Result {
	sig := extract.Signals(input)

	var archetype model.Archetype
	switch {
	case sig.Credible && sig.Length > 200 && !sig.Emotional:
		archetype = model.ArchetypeHigh
	case sig.Emotional && sig.Clickbait && sig.Anonymous:
		archetype = model.ArchetypeLow
	default:
		archetype = model.ArchetypeMedium
	}

	result := c.finish(archetype, extract.Claims(input))
	result.Signals = &model.Signals{
		Mode:       model.ModeText,
		Emotional:  sig.Emotional,
		Clickbait:  sig.Clickbait,
		Credible:   sig.Credible,
		Anonymous:  sig.Anonymous,
		TextLength: sig.Length,
	}
	return result
}

func (c *Classifier) classifyURL(input string) model.Result {
	sig := c.domains.Classify(input)

	// Trusted wins when a URL matches both lists
	var archetype model.Archetype
	switch {
	case sig.Trusted:
		archetype = model.ArchetypeHigh
	case sig.Suspicious:
		archetype = model.ArchetypeLow
	default:
		archetype = model.ArchetypeMedium
	}

	result := c.finish(archetype, append([]string(nil), urlClaims[archetype]...))
	result.Signals = &model.Signals{
		Mode:       model.ModeURL,
		Trusted:    sig.Trusted,
		Suspicious: sig.Suspicious,
	}
	return result
}

// finish copies the template, draws the score, sets claims, and derives the label last
func (c *Classifier) finish(archetype model.Archetype, claims []string) model.Result {
	result := template(archetype)
	result.ReliabilityScore = score.BandFor(archetype).Draw(c.source)
	result.FactChecking.ClaimsDetected = claims
	result.RiskLevel = score.RiskLevelFor(result.ReliabilityScore)
	return result
}
