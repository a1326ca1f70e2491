package readability

import (
	"errors"
	"math"

	"github.com/baditaflorin/go_text_quality/internal/core/domain"
	"github.com/baditaflorin/go_text_quality/internal/core/metrics"
	"github.com/baditaflorin/go_text_quality/internal/ports"
)

// Flesch–Kincaid grade level coefficients.
const (
	wordsPerSentenceWeight = 0.39
	syllablesPerWordWeight = 11.8
	gradeOffset            = 15.59
)

// GradeFunc computes an unrounded grade level from text metrics.
type GradeFunc func(m domain.Metrics) float64

// FleschKincaid computes the Flesch–Kincaid grade level.
// Formula: 0.39*(words/sentences) + 11.8*(syllables/words) - 15.59
// Returns 0 when there are no words or no sentences.
func FleschKincaid(m domain.Metrics) float64 {
	if m.WordCount == 0 || m.SentenceCount == 0 {
		return 0
	}
	words := float64(m.WordCount)
	return wordsPerSentenceWeight*(words/float64(m.SentenceCount)) +
		syllablesPerWordWeight*(float64(m.SyllableCount)/words) -
		gradeOffset
}

// ScorerConfig holds configuration for the readability scorer.
type ScorerConfig struct {
	// Precision is the number of decimal places kept in the score.
	Precision int
	// MaxGrade is the highest grade level that still passes.
	MaxGrade float64
	// Grade is the formula applied to the metrics.
	Grade GradeFunc
}

// DefaultConfig returns a default configuration.
func DefaultConfig() ScorerConfig {
	return ScorerConfig{
		Precision: 2,
		MaxGrade:  12.0,
		Grade:     FleschKincaid,
	}
}

// Validate checks if the configuration is valid.
func (c ScorerConfig) Validate() error {
	if c.Precision < 0 || c.Precision > 6 {
		return errors.New("precision must be between 0 and 6")
	}
	if c.MaxGrade <= 0 {
		return errors.New("maxGrade must be greater than 0")
	}
	return nil
}

// Scorer computes readability grades.
type Scorer struct {
	config    ScorerConfig
	logger    ports.Logger
	extractor ports.MetricsExtractor
}

// NewScorer creates a new readability scorer.
func NewScorer(config ScorerConfig, logger ports.Logger, extractor ports.MetricsExtractor) (*Scorer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if config.Grade == nil {
		config.Grade = FleschKincaid
	}

	return &Scorer{
		config:    config,
		logger:    logger,
		extractor: extractor,
	}, nil
}

// Score applies the grade formula to m and rounds the result.
func (s *Scorer) Score(m domain.Metrics) domain.ReadabilityScore {
	return domain.ReadabilityScore(Round(s.config.Grade(m), s.config.Precision))
}

// Evaluate scores text and checks the grade against the configured maximum.
func (s *Scorer) Evaluate(text string) domain.Result {
	m := s.extractor.Extract(text)
	score := float64(s.Score(m))
	passed := score <= s.config.MaxGrade

	details := map[string]interface{}{
		"word_count":     m.WordCount,
		"sentence_count": m.SentenceCount,
		"syllable_count": m.SyllableCount,
		"max_grade":      s.config.MaxGrade,
	}
	if m.WordCount == 0 || m.SentenceCount == 0 {
		details["note"] = "no words or sentences, score defaults to 0"
	}

	s.logger.Debug("Computed readability",
		"score", score,
		"passed", passed,
		"details", details,
	)

	return domain.Result{
		Name:      "readability",
		Score:     score,
		Passed:    passed,
		Threshold: s.config.MaxGrade,
		Details:   details,
	}
}

// Score computes the Flesch–Kincaid grade of m rounded to two decimals.
func Score(m domain.Metrics) domain.ReadabilityScore {
	return domain.ReadabilityScore(Round(FleschKincaid(m), 2))
}

// ScoreText extracts metrics from text and scores them.
func ScoreText(text string) domain.ReadabilityScore {
	return Score(metrics.Extract(text))
}

// Round rounds v to precision decimal places, halves away from zero.
func Round(v float64, precision int) float64 {
	factor := math.Pow(10, float64(precision))
	return math.Round(v*factor) / factor
}
