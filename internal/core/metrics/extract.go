package metrics

import (
	"regexp"
	"strings"

	"github.com/baditaflorin/go_text_quality/internal/core/domain"
	"github.com/baditaflorin/go_text_quality/internal/ports"
)

var sentenceBreak = regexp.MustCompile(`[.!?]+`)

// Extractor derives word, sentence and syllable counts from text.
type Extractor struct {
	logger ports.Logger
}

// NewExtractor creates a new metrics extractor.
func NewExtractor(logger ports.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// Extract computes the metrics for text and logs the counts.
func (e *Extractor) Extract(text string) domain.Metrics {
	m := Extract(text)
	e.logger.Debug("Extracted text metrics",
		"word_count", m.WordCount,
		"sentence_count", m.SentenceCount,
		"syllable_count", m.SyllableCount,
	)
	return m
}

// Extract computes the metrics for text.
//
// Sentences are the segments left after splitting on runs of '.', '!' or '?',
// so a trailing terminator yields an extra empty segment. Syllables are
// approximated by counting vowels.
func Extract(text string) domain.Metrics {
	words := strings.Fields(text)
	syllables := 0
	for _, w := range words {
		syllables += CountVowels(w)
	}
	return domain.Metrics{
		WordCount:     len(words),
		SentenceCount: CountSentences(text),
		SyllableCount: syllables,
	}
}

// CountSentences returns the number of segments produced by splitting text on
// sentence terminators. Empty text has no sentences.
func CountSentences(text string) int {
	if text == "" {
		return 0
	}
	return len(sentenceBreak.FindAllStringIndex(text, -1)) + 1
}

// CountVowels returns the number of ASCII vowels in s, ignoring case.
func CountVowels(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
			n++
		}
	}
	return n
}
