package ports

import "github.com/baditaflorin/go_text_quality/internal/core/domain"

// MetricsExtractor derives raw counts from text.
type MetricsExtractor interface {
	Extract(text string) domain.Metrics
}

// ReadabilityScorer turns metrics into a grade level.
type ReadabilityScorer interface {
	Score(m domain.Metrics) domain.ReadabilityScore
	Evaluate(text string) domain.Result
}

// WeaselDetector finds vague qualifiers in text.
type WeaselDetector interface {
	Detect(text string) domain.WeaselMatches
}
