package classify

import (
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/ppiankov/fakenews/internal/model"
	"github.com/ppiankov/fakenews/internal/score"
)

// fixedSource returns the same offset for every draw (clamped to n-1)
type fixedSource struct {
	v int
}

func (f fixedSource) IntN(n int) int {
	if f.v >= n {
		return n - 1
	}
	return f.v
}

const credibleArticle = "According to a study published by researchers at the University of Edinburgh, " +
	"average rainfall in the region has increased by four percent over the last decade. " +
	"The professor who led the work said the data shows a consistent trend across all monitoring stations. " +
	"The findings were peer reviewed before publication."

const sensationalArticle = "Breaking: Scientists discover revolutionary cure that doctors don't want you to know about! " +
	"This simple trick will shock you and change everything. " +
	"Anonymous sources confirm this amazing breakthrough that pharmaceutical companies are trying to hide from the public."

func TestClassify_TextHighReliability(t *testing.T) {
	if len([]rune(credibleArticle)) <= 200 {
		t.Fatal("fixture must be longer than 200 characters")
	}

	c := New(WithSource(score.NewSeededSource(1, 1)))
	for i := 0; i < 50; i++ {
		result := c.Classify(credibleArticle, model.ModeText)

		if result.Archetype != model.ArchetypeHigh {
			t.Fatalf("expected high archetype, got %s", result.Archetype)
		}
		if result.ReliabilityScore < 85 || result.ReliabilityScore > 94 {
			t.Fatalf("score %d out of [85, 94]", result.ReliabilityScore)
		}
		if result.RiskLevel != score.RiskLevelFor(result.ReliabilityScore) {
			t.Fatalf("label %q does not match score %d", result.RiskLevel, result.ReliabilityScore)
		}
	}
}

func TestClassify_TextHighReliabilityLabel(t *testing.T) {
	// Offset 1 gives 86, the lowest score labelled trusted
	c := New(WithSource(fixedSource{v: 1}))
	result := c.Classify(credibleArticle, model.ModeText)

	if result.ReliabilityScore != 86 {
		t.Fatalf("expected score 86, got %d", result.ReliabilityScore)
	}
	if result.RiskLevel != model.RiskTrusted {
		t.Errorf("expected %q, got %q", model.RiskTrusted, result.RiskLevel)
	}

	// Offset 0 gives 85, which falls into the next band down
	c = New(WithSource(fixedSource{v: 0}))
	result = c.Classify(credibleArticle, model.ModeText)
	if result.ReliabilityScore != 85 || result.RiskLevel != model.RiskLow {
		t.Errorf("expected 85 / %q, got %d / %q", model.RiskLow, result.ReliabilityScore, result.RiskLevel)
	}
}

func TestClassify_TextLowReliability(t *testing.T) {
	c := New(WithSource(score.NewSeededSource(3, 4)))
	for i := 0; i < 50; i++ {
		result := c.Classify(sensationalArticle, model.ModeText)

		if result.Archetype != model.ArchetypeLow {
			t.Fatalf("expected low archetype, got %s", result.Archetype)
		}
		if result.ReliabilityScore < 15 || result.ReliabilityScore > 39 {
			t.Fatalf("score %d out of [15, 39]", result.ReliabilityScore)
		}
		if result.RiskLevel != model.RiskHigh && result.RiskLevel != model.RiskMedium {
			t.Fatalf("unexpected label %q", result.RiskLevel)
		}
		if result.RiskLevel != score.RiskLevelFor(result.ReliabilityScore) {
			t.Fatalf("label %q does not match score %d", result.RiskLevel, result.ReliabilityScore)
		}
	}
}

func TestClassify_TextSelectionRules(t *testing.T) {
	tests := []struct {
		desc     string
		text     string
		expected model.Archetype
	}{
		{
			desc:     "credible but short",
			text:     "According to a study, it rained.",
			expected: model.ArchetypeMedium,
		},
		{
			desc:     "credible and long but emotional",
			text:     strings.Repeat("The research was published by the university. ", 5) + "Shocking!",
			expected: model.ArchetypeMedium,
		},
		{
			desc:     "emotional and clickbait without anonymous sources",
			text:     "Shocking news that you need to see right now, everyone is talking.",
			expected: model.ArchetypeMedium,
		},
		{
			desc:     "all three red flags",
			text:     "Exclusive: you need to read this, an insider told us everything.",
			expected: model.ArchetypeLow,
		},
		{
			desc:     "credible wins before red flags when no emotional words",
			text:     strings.Repeat("Research by the university professor. ", 6) + "You need to know, an unnamed official said.",
			expected: model.ArchetypeHigh,
		},
		{
			desc:     "plain text",
			text:     "The town council approved the new park budget on Monday evening.",
			expected: model.ArchetypeMedium,
		},
	}

	c := New(WithSource(fixedSource{v: 0}))
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			result := c.Classify(tt.text, model.ModeText)
			if result.Archetype != tt.expected {
				t.Errorf("expected %s, got %s (signals %+v)", tt.expected, result.Archetype, *result.Signals)
			}
			band := score.BandFor(tt.expected)
			if result.ReliabilityScore != band.Min() {
				t.Errorf("expected score %d with zero offset, got %d", band.Min(), result.ReliabilityScore)
			}
		})
	}
}

func TestClassify_TextClaimsFromInput(t *testing.T) {
	c := New()
	result := c.Classify(sensationalArticle, model.ModeText)

	claims := result.FactChecking.ClaimsDetected
	if len(claims) != 3 {
		t.Fatalf("expected 3 claims, got %d: %q", len(claims), claims)
	}
	if !strings.HasPrefix(claims[0], "Breaking: Scientists discover") {
		t.Errorf("expected first claim from input, got %q", claims[0])
	}
	for _, claim := range claims {
		if len([]rune(claim)) > 100 {
			t.Errorf("claim exceeds 100 chars: %q", claim)
		}
	}
}

func TestClassify_TextFallbackClaims(t *testing.T) {
	c := New()
	result := c.Classify("Short. Bits. Only here.", model.ModeText)

	expected := []string{"Content analysis completed", "Source verification performed"}
	if !reflect.DeepEqual(result.FactChecking.ClaimsDetected, expected) {
		t.Errorf("expected fallback claims, got %q", result.FactChecking.ClaimsDetected)
	}
}

func TestClassify_URL(t *testing.T) {
	tests := []struct {
		desc     string
		url      string
		expected model.Archetype
		minScore int
		maxScore int
		claim    string
	}{
		{
			desc:     "trusted news domain",
			url:      "https://www.reuters.com/world/story",
			expected: model.ArchetypeHigh,
			minScore: 85,
			maxScore: 94,
			claim:    "Content from established news organization",
		},
		{
			desc:     "sensational domain",
			url:      "http://totally-shocking-leaked-secret-info.biz/x",
			expected: model.ArchetypeLow,
			minScore: 15,
			maxScore: 39,
			claim:    "Domain name contains sensational keywords",
		},
		{
			desc:     "trusted takes priority over suspicious",
			url:      "https://www.bbc.com/news/leaked-shocking-memo",
			expected: model.ArchetypeHigh,
			minScore: 85,
			maxScore: 94,
			claim:    "Content from established news organization",
		},
		{
			desc:     "unknown domain",
			url:      "https://example-news.com/breaking-story",
			expected: model.ArchetypeMedium,
			minScore: 40,
			maxScore: 64,
			claim:    "Domain analysis shows mixed reliability indicators",
		},
	}

	c := New(WithSource(score.NewSeededSource(9, 9)))
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			for i := 0; i < 20; i++ {
				result := c.Classify(tt.url, model.ModeURL)
				if result.Archetype != tt.expected {
					t.Fatalf("expected %s, got %s", tt.expected, result.Archetype)
				}
				if result.ReliabilityScore < tt.minScore || result.ReliabilityScore > tt.maxScore {
					t.Fatalf("score %d out of [%d, %d]", result.ReliabilityScore, tt.minScore, tt.maxScore)
				}
				if result.RiskLevel != score.RiskLevelFor(result.ReliabilityScore) {
					t.Fatalf("label %q does not match score %d", result.RiskLevel, result.ReliabilityScore)
				}
				if len(result.FactChecking.ClaimsDetected) != 3 || result.FactChecking.ClaimsDetected[0] != tt.claim {
					t.Fatalf("unexpected claims %q", result.FactChecking.ClaimsDetected)
				}
			}
		})
	}
}

func TestClassify_ReutersLabel(t *testing.T) {
	c := New(WithSource(fixedSource{v: 5}))
	result := c.Classify("https://www.reuters.com/world/story", model.ModeURL)
	if result.ReliabilityScore != 90 || result.RiskLevel != model.RiskTrusted {
		t.Errorf("expected 90 / %q, got %d / %q", model.RiskTrusted, result.ReliabilityScore, result.RiskLevel)
	}
}

func TestClassify_TemplatesNeverMutated(t *testing.T) {
	c := New()

	first := c.Classify(credibleArticle, model.ModeText)
	first.FactChecking.ClaimsDetected[0] = "tampered"
	first.SentimentAnalysis.Bias = "tampered"

	_ = c.Classify("https://www.reuters.com/world/story", model.ModeURL)
	third := c.Classify(credibleArticle, model.ModeText)

	if third.SentimentAnalysis != (model.SentimentAnalysis{
		Bias:             "Neutral",
		EmotionalTone:    "Informative",
		LanguagePatterns: "Professional terminology, balanced reporting",
	}) {
		t.Errorf("sentiment fields changed between runs: %+v", third.SentimentAnalysis)
	}
	if third.FactChecking.SourceVerification != "Multiple trusted academic sources" {
		t.Errorf("source verification changed: %q", third.FactChecking.SourceVerification)
	}
	if third.SourceCredibility.DomainAuthority != 92 || third.SourceCredibility.EditorialStandards != model.EditorialHigh {
		t.Errorf("source credibility changed: %+v", third.SourceCredibility)
	}

	base, ok := Template(model.ArchetypeHigh)
	if !ok {
		t.Fatal("expected high template to exist")
	}
	if base.ReliabilityScore != 87 || base.RiskLevel != model.RiskTrusted {
		t.Errorf("base template seed changed: %d / %q", base.ReliabilityScore, base.RiskLevel)
	}
	if base.FactChecking.ClaimsDetected[0] != "Study published in peer-reviewed journal" {
		t.Errorf("base template claims changed: %q", base.FactChecking.ClaimsDetected)
	}
}

func TestClassify_URLClaimsNotShared(t *testing.T) {
	c := New()
	first := c.Classify("https://www.npr.org/story", model.ModeURL)
	first.FactChecking.ClaimsDetected[0] = "tampered"

	second := c.Classify("https://www.npr.org/story", model.ModeURL)
	if second.FactChecking.ClaimsDetected[0] != "Content from established news organization" {
		t.Errorf("URL claims leaked between runs: %q", second.FactChecking.ClaimsDetected[0])
	}
}

func TestClassify_Concurrent(t *testing.T) {
	c := New()
	inputs := []struct {
		text string
		mode model.Mode
	}{
		{credibleArticle, model.ModeText},
		{sensationalArticle, model.ModeText},
		{"https://www.reuters.com/world/story", model.ModeURL},
		{"http://real-truth-news.info/a", model.ModeURL},
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			in := inputs[i%len(inputs)]
			for j := 0; j < 50; j++ {
				result := c.Classify(in.text, in.mode)
				if result.RiskLevel != score.RiskLevelFor(result.ReliabilityScore) {
					t.Errorf("label mismatch under concurrency")
					return
				}
			}
		}(i)
	}
	wg.Wait()
}

func TestClassify_Signals(t *testing.T) {
	c := New()

	text := c.Classify(sensationalArticle, model.ModeText)
	if text.Signals == nil || text.Signals.Mode != model.ModeText {
		t.Fatal("expected text signals")
	}
	if !text.Signals.Emotional || !text.Signals.Clickbait || !text.Signals.Anonymous {
		t.Errorf("expected red-flag signals, got %+v", *text.Signals)
	}

	url := c.Classify("https://www.bbc.com/news/leaked", model.ModeURL)
	if url.Signals == nil || !url.Signals.Trusted || !url.Signals.Suspicious {
		t.Errorf("expected both URL signals, got %+v", url.Signals)
	}
}

func TestClassify_CustomURLMarkers(t *testing.T) {
	c := New(WithURLConfig(&model.URLConfig{
		TrustedMarkers:    []string{"example.org"},
		SuspiciousMarkers: []string{"gossip"},
	}))

	if got := c.Classify("https://example.org/a", model.ModeURL).Archetype; got != model.ArchetypeHigh {
		t.Errorf("expected high, got %s", got)
	}
	if got := c.Classify("https://www.reuters.com/a", model.ModeURL).Archetype; got != model.ArchetypeMedium {
		t.Errorf("expected medium once defaults are replaced, got %s", got)
	}
}

func TestSamples(t *testing.T) {
	want := map[string]model.Archetype{
		"sensational article":   model.ArchetypeLow,
		"sourced article":       model.ArchetypeHigh,
		"placeholder news URL":  model.ArchetypeMedium,
		"placeholder study URL": model.ArchetypeMedium,
		"wire service URL":      model.ArchetypeHigh,
		"sensational URL":       model.ArchetypeLow,
	}

	c := New()
	samples := Samples()
	if len(samples) != len(want) {
		t.Fatalf("expected %d samples, got %d", len(want), len(samples))
	}
	for _, s := range samples {
		t.Run(s.Name, func(t *testing.T) {
			got := c.Classify(s.Input, s.Mode)
			if got.Archetype != want[s.Name] {
				t.Errorf("expected %s, got %s", want[s.Name], got.Archetype)
			}
		})
	}
}
