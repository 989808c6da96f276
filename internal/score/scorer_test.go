package score

import (
	"sync"
	"testing"

	"github.com/ppiankov/fakenews/internal/model"
)

// fixedSource always returns the same offset (clamped to n-1)
type fixedSource struct {
	v int
}

func (f fixedSource) IntN(n int) int {
	if f.v >= n {
		return n - 1
	}
	return f.v
}

func TestRiskLevelFor_Boundaries(t *testing.T) {
	tests := []struct {
		score    int
		expected model.RiskLevel
	}{
		{100, model.RiskTrusted},
		{86, model.RiskTrusted},
		{85, model.RiskLow},
		{61, model.RiskLow},
		{60, model.RiskMedium},
		{31, model.RiskMedium},
		{30, model.RiskHigh},
		{0, model.RiskHigh},
	}

	for _, tt := range tests {
		if got := RiskLevelFor(tt.score); got != tt.expected {
			t.Errorf("RiskLevelFor(%d) = %q, expected %q", tt.score, got, tt.expected)
		}
	}
}

func TestRiskLevelFor_Total(t *testing.T) {
	valid := map[model.RiskLevel]bool{
		model.RiskTrusted: true,
		model.RiskLow:     true,
		model.RiskMedium:  true,
		model.RiskHigh:    true,
	}

	for s := 0; s <= 100; s++ {
		first := RiskLevelFor(s)
		if !valid[first] {
			t.Fatalf("score %d produced unknown label %q", s, first)
		}
		if again := RiskLevelFor(s); again != first {
			t.Fatalf("score %d not deterministic: %q vs %q", s, first, again)
		}
	}
}

func TestBand_DrawBounds(t *testing.T) {
	tests := []struct {
		name string
		band Band
		min  int
		max  int
	}{
		{"high", HighBand, 85, 94},
		{"medium", MediumBand, 40, 64},
		{"low", LowBand, 15, 39},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.band.Draw(fixedSource{v: 0}); got != tt.min {
				t.Errorf("expected min %d, got %d", tt.min, got)
			}
			if got := tt.band.Draw(fixedSource{v: 1000}); got != tt.max {
				t.Errorf("expected max %d, got %d", tt.max, got)
			}
			if tt.band.Min() != tt.min || tt.band.Max() != tt.max {
				t.Errorf("Min/Max = %d/%d, expected %d/%d", tt.band.Min(), tt.band.Max(), tt.min, tt.max)
			}

			src := NewSeededSource(42, 7)
			for i := 0; i < 500; i++ {
				got := tt.band.Draw(src)
				if got < tt.min || got > tt.max {
					t.Fatalf("draw %d out of range [%d, %d]", got, tt.min, tt.max)
				}
			}
		})
	}
}

func TestBand_DrawCoversRange(t *testing.T) {
	src := NewSeededSource(1, 2)
	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		seen[HighBand.Draw(src)] = true
	}
	for s := 85; s <= 94; s++ {
		if !seen[s] {
			t.Errorf("expected score %d to be drawn at least once", s)
		}
	}
}

func TestBand_ZeroSpread(t *testing.T) {
	b := Band{Base: 50}
	if got := b.Draw(fixedSource{v: 3}); got != 50 {
		t.Errorf("expected 50, got %d", got)
	}
}

func TestBandFor(t *testing.T) {
	if BandFor(model.ArchetypeHigh) != HighBand {
		t.Error("expected high band for high archetype")
	}
	if BandFor(model.ArchetypeLow) != LowBand {
		t.Error("expected low band for low archetype")
	}
	if BandFor(model.ArchetypeMedium) != MediumBand {
		t.Error("expected medium band for medium archetype")
	}
}

func TestDefaultSource_Concurrent(t *testing.T) {
	src := DefaultSource()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if v := src.IntN(10); v < 0 || v >= 10 {
					t.Errorf("IntN(10) returned %d", v)
					return
				}
			}
		}()
	}
	wg.Wait()
}
