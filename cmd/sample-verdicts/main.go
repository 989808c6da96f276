// Demo program that runs each built-in sample many times and shows the
// spread of scores and risk labels produced by the random offset.
package main

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/ppiankov/fakenews/internal/classify"
	"github.com/ppiankov/fakenews/internal/model"
	"github.com/ppiankov/fakenews/internal/score"
)

func main() {
	runs := flag.Int("runs", 200, "runs per sample")
	seed := flag.Uint64("seed", 0, "random seed (0 uses the default source)")
	flag.Parse()

	if *runs <= 0 {
		*runs = 1
	}

	var opts []classify.Option
	if *seed != 0 {
		opts = append(opts, classify.WithSource(score.NewSeededSource(*seed, *seed)))
	}
	c := classify.New(opts...)

	fmt.Println("=== Sample Verdicts ===")
	fmt.Println()

	for _, s := range classify.Samples() {
		fmt.Printf("%s [%s]\n", s.Name, s.Mode)
		fmt.Println(strings.Repeat("-", 60))

		lo, hi := 101, -1
		labels := make(map[model.RiskLevel]int)
		var archetype model.Archetype

		for i := 0; i < *runs; i++ {
			result := c.Classify(s.Input, s.Mode)
			archetype = result.Archetype
			if result.ReliabilityScore < lo {
				lo = result.ReliabilityScore
			}
			if result.ReliabilityScore > hi {
				hi = result.ReliabilityScore
			}
			labels[result.RiskLevel]++
		}

		band := score.BandFor(archetype)
		fmt.Printf("  Template:  %s (band %d-%d)\n", archetype, band.Min(), band.Max())
		if base, ok := classify.Template(archetype); ok {
			fmt.Printf("  Base:      %d, %s / %s\n", base.ReliabilityScore, base.SentimentAnalysis.Bias, base.SentimentAnalysis.EmotionalTone)
		}
		fmt.Printf("  Observed:  %d-%d over %d runs\n", lo, hi, *runs)

		levels := make([]model.RiskLevel, 0, len(labels))
		for level := range labels {
			levels = append(levels, level)
		}
		sort.Slice(levels, func(i, j int) bool { return labels[levels[i]] > labels[levels[j]] })
		for _, level := range levels {
			fmt.Printf("  %5.1f%%  %s\n", 100*float64(labels[level])/float64(*runs), level)
		}
		fmt.Println()
	}

	fmt.Println("Note: scores carry a random offset; labels near a threshold vary between runs.")
}
