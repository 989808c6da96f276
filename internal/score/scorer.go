package score

import (
	"math/rand/v2"

	"github.com/ppiankov/fakenews/internal/model"
)

// Source supplies uniform random integers in [0, n)
type Source interface {
	IntN(n int) int
}

// globalSource draws from the goroutine-safe top-level math/rand/v2 generator
type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

// DefaultSource returns a Source that is safe for concurrent use
func DefaultSource() Source {
	return globalSource{}
}

// NewSeededSource returns a deterministic Source (not safe for concurrent use)
func NewSeededSource(seed1, seed2 uint64) Source {
	return rand.New(rand.NewPCG(seed1, seed2))
}

// Band is a score range: Base plus a uniform offset in [0, Spread]
type Band struct {
	Base   int
	Spread int
}

var (
	// HighBand yields scores in [85, 94]
	HighBand = Band{Base: 85, Spread: 9}
	// MediumBand yields scores in [40, 64]
	MediumBand = Band{Base: 40, Spread: 24}
	// LowBand yields scores in [15, 39]
	LowBand = Band{Base: 15, Spread: 24}
)

// BandFor returns the score band for an archetype
func BandFor(a model.Archetype) Band {
	switch a {
	case model.ArchetypeHigh:
		return HighBand
	case model.ArchetypeLow:
		return LowBand
	default:
		return MediumBand
	}
}

// Draw returns Base + random_int(0, Spread)
func (b Band) Draw(src Source) int {
	if b.Spread <= 0 {
		return b.Base
	}
	return b.Base + src.IntN(b.Spread+1)
}

// Min returns the lowest score the band can produce
func (b Band) Min() int { return b.Base }

// Max returns the highest score the band can produce
func (b Band) Max() int { return b.Base + b.Spread }

// RiskLevelFor maps a final reliability score to its risk label
func RiskLevelFor(score int) model.RiskLevel {
	switch {
	case score >= 86:
		return model.RiskTrusted
	case score >= 61:
		return model.RiskLow
	case score >= 31:
		return model.RiskMedium
	default:
		return model.RiskHigh
	}
}
