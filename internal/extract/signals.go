package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// TextSignals are the keyword signals evaluated over article text
type TextSignals struct {
	Emotional bool // Sensational vocabulary
	Clickbait bool // Clickbait phrasing
	Credible  bool // Academic or journalistic markers
	Anonymous bool // Sourcing red flags
	Length    int  // Character count of the input
}

var (
	emotionalPattern = regexp.MustCompile(`shocking|amazing|incredible|unbelievable|secret|hidden|doctors hate|you won't believe|breaking|urgent|exclusive|leaked|scandal`)
	clickbaitPattern = regexp.MustCompile(`this will|you need to|must see|won't believe|shocking truth|simple trick|one weird`)
	crediblePattern  = regexp.MustCompile(`study|research|according to|professor|university|published|peer[ .-]reviewed|data shows`)
	anonymousPattern = regexp.MustCompile(`anonymous|sources say|unnamed|insider|leaked|rumor`)
)

// Signals evaluates the keyword signals over the lower-cased input
func Signals(text string) TextSignals {
	lower := strings.ToLower(text)

	return TextSignals{
		Emotional: emotionalPattern.MatchString(lower),
		Clickbait: clickbaitPattern.MatchString(lower),
		Credible:  crediblePattern.MatchString(lower),
		Anonymous: anonymousPattern.MatchString(lower),
		Length:    utf8.RuneCountInString(text),
	}
}
