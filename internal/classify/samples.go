package classify

import "github.com/ppiankov/fakenews/internal/model"

// Sample is a canned input used for demos
type Sample struct {
	Name  string
	Mode  model.Mode
	Input string
}

// Samples returns the built-in demo inputs
func Samples() []Sample {
	return []Sample{
		{
			Name: "sensational article",
			Mode: model.ModeText,
			Input: "Breaking: Scientists discover revolutionary cure that doctors don't want you to know about! " +
				"This simple trick will shock you and change everything. Anonymous sources confirm this amazing " +
				"breakthrough that pharmaceutical companies are trying to hide from the public.",
		},
		{
			Name: "sourced article",
			Mode: model.ModeText,
			Input: "According to a study published in a peer-reviewed journal, researchers at the national " +
				"statistics office found that regional employment rose by two percent last year. The professor " +
				"who led the analysis said the data matched figures from three independent surveys.",
		},
		{
			Name:  "placeholder news URL",
			Mode:  model.ModeURL,
			Input: "https://example-news.com/breaking-story",
		},
		{
			Name:  "placeholder study URL",
			Mode:  model.ModeURL,
			Input: "https://reliable-source.org/scientific-study",
		},
		{
			Name:  "wire service URL",
			Mode:  model.ModeURL,
			Input: "https://www.reuters.com/world/europe/",
		},
		{
			Name:  "sensational URL",
			Mode:  model.ModeURL,
			Input: "https://real-truth-daily.example/leaked-memo",
		},
	}
}
