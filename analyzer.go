// analyzer.go
// Package textquality scores the readability of a text and flags weasel words.
//
// The readability grade is the Flesch–Kincaid grade level computed from
// approximate counts:
//
//	score = 0.39*(words/sentences) + 11.8*(syllables/words) - 15.59
//
// where words are whitespace-separated tokens, sentences are the segments left
// after splitting on runs of '.', '!' and '?', and syllables are vowel counts.
// Texts without words or sentences score 0. Weasel words are matched on whole
// word boundaries, case-insensitively, and reported lowercase.
//
// Every operation is a pure function of its input; an Analyzer may be shared
// between goroutines.
package textquality

import (
	"fmt"

	"github.com/baditaflorin/go_text_quality/internal/adapters/logger"
	"github.com/baditaflorin/go_text_quality/internal/adapters/normalizer"
	"github.com/baditaflorin/go_text_quality/internal/catalog"
	"github.com/baditaflorin/go_text_quality/internal/core/domain"
	"github.com/baditaflorin/go_text_quality/internal/core/metrics"
	"github.com/baditaflorin/go_text_quality/internal/core/readability"
	"github.com/baditaflorin/go_text_quality/internal/core/weasel"
	"github.com/baditaflorin/go_text_quality/internal/operations"
	"github.com/baditaflorin/go_text_quality/internal/ports"
	"github.com/baditaflorin/go_text_quality/internal/prompt"
	"github.com/baditaflorin/l"
)

// Re-exported result types.
type (
	Metrics          = domain.Metrics
	ReadabilityScore = domain.ReadabilityScore
	WeaselMatches    = domain.WeaselMatches
	Record           = domain.Record
	Report           = domain.Report
	ReviewPrompt     = domain.ReviewPrompt
	Result           = domain.Result
)

// Default configuration values.
const (
	DefaultPrecision = 2
	DefaultMaxGrade  = 12.0
)

// Analyzer runs the text-quality operations.
type Analyzer struct {
	extractor ports.MetricsExtractor
	scorer    *readability.Scorer
	detector  ports.WeaselDetector
	catalog   *catalog.Catalog
	logger    ports.Logger
}

// Option defines a functional option for configuring the Analyzer.
type Option func(*analyzerConfig)

type analyzerConfig struct {
	Precision   int
	MaxGrade    float64
	Vocabulary  []string
	Records     *catalog.Catalog
	RecordsFile string
	Logger      ports.Logger
	Normalizer  ports.Normalizer
}

// WithPrecision sets the number of decimals kept in readability scores.
func WithPrecision(p int) Option {
	return func(cfg *analyzerConfig) {
		cfg.Precision = p
	}
}

// WithMaxGrade sets the highest grade that passes Evaluate.
func WithMaxGrade(grade float64) Option {
	return func(cfg *analyzerConfig) {
		cfg.MaxGrade = grade
	}
}

// WithVocabulary replaces the weasel-word vocabulary.
func WithVocabulary(words []string) Option {
	return func(cfg *analyzerConfig) {
		cfg.Vocabulary = append([]string(nil), words...)
	}
}

// WithRecords replaces the records searched by SearchByName.
func WithRecords(records []Record) Option {
	return func(cfg *analyzerConfig) {
		cfg.Records = catalog.New(records)
	}
}

// WithRecordsFile loads the records searched by SearchByName from a YAML file.
func WithRecordsFile(path string) Option {
	return func(cfg *analyzerConfig) {
		cfg.RecordsFile = path
	}
}

// WithLogger sets a custom logger.
func WithLogger(lg l.Logger) Option {
	return func(cfg *analyzerConfig) {
		cfg.Logger = logger.FromExisting(lg)
	}
}

// WithPortLogger sets a logger that already satisfies the library's logger port.
func WithPortLogger(lg ports.Logger) Option {
	return func(cfg *analyzerConfig) {
		cfg.Logger = lg
	}
}

// WithNormalizer sets how matched weasel words are canonicalised.
func WithNormalizer(n ports.Normalizer) Option {
	return func(cfg *analyzerConfig) {
		cfg.Normalizer = n
	}
}

// New creates a new Analyzer. If no logger is provided, a default logger is created.
func New(opts ...Option) (*Analyzer, error) {
	cfg := &analyzerConfig{
		Precision:  DefaultPrecision,
		MaxGrade:   DefaultMaxGrade,
		Vocabulary: weasel.DefaultVocabulary(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.Logger == nil {
		var err error
		cfg.Logger, err = createDefaultLogger()
		if err != nil {
			return nil, err
		}
	}
	if cfg.Normalizer == nil {
		cfg.Normalizer = normalizer.NewDefaultNormalizer()
	}
	if cfg.RecordsFile != "" {
		records, err := catalog.LoadRecords(cfg.RecordsFile)
		if err != nil {
			return nil, fmt.Errorf("load records: %w", err)
		}
		cfg.Records = records
	}
	if cfg.Records == nil {
		cfg.Records = catalog.Default()
	}

	extractor := metrics.NewExtractor(cfg.Logger)

	scorerConfig := readability.DefaultConfig()
	scorerConfig.Precision = cfg.Precision
	scorerConfig.MaxGrade = cfg.MaxGrade
	scorer, err := readability.NewScorer(scorerConfig, cfg.Logger, extractor)
	if err != nil {
		return nil, err
	}

	detector, err := weasel.NewDetector(weasel.DetectorConfig{Vocabulary: cfg.Vocabulary}, cfg.Logger, cfg.Normalizer)
	if err != nil {
		return nil, err
	}

	return &Analyzer{
		extractor: extractor,
		scorer:    scorer,
		detector:  detector,
		catalog:   cfg.Records,
		logger:    cfg.Logger,
	}, nil
}

// ExtractMetrics returns the word, sentence and syllable counts of text.
func (a *Analyzer) ExtractMetrics(text string) Metrics {
	return a.extractor.Extract(text)
}

// CalculateReadability returns the readability grade of text.
func (a *Analyzer) CalculateReadability(text string) ReadabilityScore {
	return a.scorer.Score(a.extractor.Extract(text))
}

// EvaluateReadability scores text and reports whether it is within the maximum grade.
func (a *Analyzer) EvaluateReadability(text string) Result {
	return a.scorer.Evaluate(text)
}

// CheckForWeaselWords returns the distinct weasel words in text.
func (a *Analyzer) CheckForWeaselWords(text string) WeaselMatches {
	return a.detector.Detect(text)
}

// Analyze runs one full pass: metrics, readability and weasel words.
func (a *Analyzer) Analyze(text string) Report {
	m := a.extractor.Extract(text)
	return Report{
		Metrics:     m,
		Readability: a.scorer.Score(m),
		WeaselWords: a.detector.Detect(text).Words(),
	}
}

// Greet returns the connection greeting for name.
func (a *Analyzer) Greet(name string) string {
	return prompt.Greet(name)
}

// GenerateReviewPrompt returns the review instructions for text.
func (a *Analyzer) GenerateReviewPrompt(text string) ReviewPrompt {
	return prompt.ReviewPrompt(text)
}

// SearchByName returns the first record named name, or false when there is none.
func (a *Analyzer) SearchByName(name string) (Record, bool) {
	return a.catalog.Lookup(name)
}

// Records returns a copy of the records searched by SearchByName.
func (a *Analyzer) Records() []Record {
	return a.catalog.Records()
}

// Operations exposes the analyzer as a catalog of named operations.
func (a *Analyzer) Operations(opts ...operations.Option) (*operations.Catalog, error) {
	return operations.NewCatalog(a, a.logger, opts...)
}

// Close releases the analyzer's logger.
func (a *Analyzer) Close() error {
	return a.logger.Close()
}
