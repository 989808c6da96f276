package validate

import (
	"strings"

	"github.com/ppiankov/fakenews/internal/model"
)

// DomainSignals reports which marker lists a URL matched.
// Both may be true; callers decide precedence.
type DomainSignals struct {
	Trusted    bool
	Suspicious bool
}

// DomainClassifier matches URLs against trusted and suspicious marker lists
type DomainClassifier struct {
	trusted    []string
	suspicious []string
}

// NewDomainClassifier creates a classifier from config (nil uses defaults)
func NewDomainClassifier(config *model.URLConfig) *DomainClassifier {
	if config == nil {
		config = &model.DefaultConfig().URL
	}

	return &DomainClassifier{
		trusted:    normalizeMarkers(config.TrustedMarkers),
		suspicious: normalizeMarkers(config.SuspiciousMarkers),
	}
}

// Classify lower-cases the URL and checks it for marker substrings.
// This is plain substring matching over the whole URL, not host parsing:
// "gov" matches anywhere, including the path.
func (d *DomainClassifier) Classify(rawURL string) DomainSignals {
	lower := strings.ToLower(rawURL)

	return DomainSignals{
		Trusted:    containsAny(lower, d.trusted),
		Suspicious: containsAny(lower, d.suspicious),
	}
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

// normalizeMarkers lower-cases markers and drops empty entries
func normalizeMarkers(markers []string) []string {
	out := make([]string, 0, len(markers))
	for _, m := range markers {
		m = strings.ToLower(strings.TrimSpace(m))
		if m != "" {
			out = append(out, m)
		}
	}
	return out
}
