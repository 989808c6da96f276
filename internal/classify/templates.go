package classify

import "github.com/ppiankov/fakenews/internal/model"

// templates is the read-only archetype table. Access it only through
// template(), which returns a deep copy.
var templates = map[model.Archetype]model.Result{
	model.ArchetypeHigh: {
		Archetype:        model.ArchetypeHigh,
		ReliabilityScore: 87,
		RiskLevel:        model.RiskTrusted,
		SentimentAnalysis: model.SentimentAnalysis{
			Bias:             "Neutral",
			EmotionalTone:    "Informative",
			LanguagePatterns: "Professional terminology, balanced reporting",
		},
		FactChecking: model.FactChecking{
			ClaimsDetected: []string{
				"Study published in peer-reviewed journal",
				"Data from government statistics",
				"Expert opinions cited with credentials",
			},
			SourceVerification: "Multiple trusted academic sources",
			SimilarArticles:    "Corroborated by Reuters, AP News",
		},
		SourceCredibility: model.SourceCredibility{
			DomainAuthority:    92,
			PublicationHistory: "Established publication with editorial oversight",
			EditorialStandards: model.EditorialHigh,
			TransparencyScore:  89,
		},
	},
	model.ArchetypeLow: {
		Archetype:        model.ArchetypeLow,
		ReliabilityScore: 34,
		RiskLevel:        model.RiskHigh,
		SentimentAnalysis: model.SentimentAnalysis{
			Bias:             "Heavily Biased",
			EmotionalTone:    "Sensational/Angry",
			LanguagePatterns: "Inflammatory language, clickbait indicators",
		},
		FactChecking: model.FactChecking{
			ClaimsDetected: []string{
				"Unverified shocking statistics",
				"Anonymous sources only",
				"Claims contradicted by fact-checkers",
			},
			SourceVerification: "No credible sources provided",
			SimilarArticles:    "Flagged by Snopes, PolitiFact as false",
		},
		SourceCredibility: model.SourceCredibility{
			DomainAuthority:    23,
			PublicationHistory: "Recently created domain, no editorial oversight",
			EditorialStandards: model.EditorialLow,
			TransparencyScore:  15,
		},
	},
	model.ArchetypeMedium: {
		Archetype:        model.ArchetypeMedium,
		ReliabilityScore: 52,
		RiskLevel:        model.RiskMedium,
		SentimentAnalysis: model.SentimentAnalysis{
			Bias:             "Slightly Biased",
			EmotionalTone:    "Opinion-based",
			LanguagePatterns: "Mix of factual and opinion content",
		},
		FactChecking: model.FactChecking{
			ClaimsDetected: []string{
				"Some verifiable facts mixed with opinions",
				"Limited source citations",
				"Partial corroboration found",
			},
			SourceVerification: "Mixed reliability of sources",
			SimilarArticles:    "Similar coverage by mainstream outlets with different angles",
		},
		SourceCredibility: model.SourceCredibility{
			DomainAuthority:    67,
			PublicationHistory: "Established but opinion-focused publication",
			EditorialStandards: model.EditorialModerate,
			TransparencyScore:  58,
		},
	},
}

// URL-mode claims, keyed by the archetype the URL selected
var urlClaims = map[model.Archetype][]string{
	model.ArchetypeHigh: {
		"Content from established news organization",
		"Domain has strong editorial standards",
		"URL structure indicates professional journalism",
	},
	model.ArchetypeLow: {
		"Domain name contains sensational keywords",
		"URL structure suggests clickbait content",
		"Domain not recognized as established news source",
	},
	model.ArchetypeMedium: {
		"Domain analysis shows mixed reliability indicators",
		"URL requires further verification",
		"Content source needs additional fact-checking",
	},
}

// template returns an independent copy of the archetype's base result
func template(a model.Archetype) model.Result {
	return templates[a].Clone()
}

// Template returns a copy of the base template for an archetype
func Template(a model.Archetype) (model.Result, bool) {
	if _, ok := templates[a]; !ok {
		return model.Result{}, false
	}
	return template(a), true
}
