package textquality

import (
	"github.com/baditaflorin/go_text_quality/internal/adapters/logger"
	"github.com/baditaflorin/go_text_quality/internal/core/readability"
	"github.com/baditaflorin/go_text_quality/internal/core/weasel"
)

// defaultAnalyzer backs the package-level helpers. It logs nothing.
var defaultAnalyzer = mustDefault()

func mustDefault() *Analyzer {
	a, err := New(WithPortLogger(logger.NewNopLogger()))
	if err != nil {
		panic(err)
	}
	return a
}

// CalculateReadability returns the readability grade of text with default settings.
func CalculateReadability(text string) ReadabilityScore {
	return defaultAnalyzer.CalculateReadability(text)
}

// CheckForWeaselWords returns the distinct default-vocabulary weasel words in text.
func CheckForWeaselWords(text string) WeaselMatches {
	return defaultAnalyzer.CheckForWeaselWords(text)
}

// Analyze runs a full pass with default settings.
func Analyze(text string) Report {
	return defaultAnalyzer.Analyze(text)
}

// Greet returns the connection greeting for name.
func Greet(name string) string {
	return defaultAnalyzer.Greet(name)
}

// GenerateReviewPrompt returns the review instructions for text.
func GenerateReviewPrompt(text string) ReviewPrompt {
	return defaultAnalyzer.GenerateReviewPrompt(text)
}

// SearchByName looks name up in the built-in records.
func SearchByName(name string) (Record, bool) {
	return defaultAnalyzer.SearchByName(name)
}

// DefaultVocabulary returns the built-in weasel-word vocabulary.
func DefaultVocabulary() []string {
	return weasel.DefaultVocabulary()
}

// ComputeMetrics returns the metrics of text without logging.
func ComputeMetrics(text string) Metrics {
	return defaultAnalyzer.ExtractMetrics(text)
}

// Score applies the readability formula to precomputed metrics.
func Score(m Metrics) ReadabilityScore {
	return readability.Score(m)
}
