package weasel

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/baditaflorin/go_text_quality/internal/core/domain"
	"github.com/baditaflorin/go_text_quality/internal/ports"
)

// defaultVocabulary is the fixed list of vague qualifiers.
var defaultVocabulary = []string{
	"many",
	"various",
	"several",
	"some",
	"most",
	"often",
	"sometimes",
	"virtually",
}

// DefaultVocabulary returns a copy of the built-in vocabulary.
func DefaultVocabulary() []string {
	out := make([]string, len(defaultVocabulary))
	copy(out, defaultVocabulary)
	return out
}

// DetectorConfig holds configuration for the weasel-word detector.
type DetectorConfig struct {
	Vocabulary []string
}

// DefaultConfig returns a default configuration.
func DefaultConfig() DetectorConfig {
	return DetectorConfig{Vocabulary: DefaultVocabulary()}
}

// Validate checks if the configuration is valid.
func (c DetectorConfig) Validate() error {
	if len(c.Vocabulary) == 0 {
		return errors.New("vocabulary must not be empty")
	}
	for i, w := range c.Vocabulary {
		if strings.TrimSpace(w) == "" {
			return fmt.Errorf("vocabulary entry %d is blank", i)
		}
		if strings.IndexFunc(w, unicode.IsSpace) >= 0 {
			return fmt.Errorf("vocabulary entry %q must be a single word", w)
		}
	}
	return nil
}

// Detector finds vocabulary words in text on whole-word boundaries, ignoring case.
type Detector struct {
	vocabulary []string
	pattern    *regexp.Regexp
	logger     ports.Logger
	normalizer ports.Normalizer
}

// NewDetector compiles the vocabulary into a single case-insensitive pattern.
func NewDetector(config DetectorConfig, logger ports.Logger, normalizer ports.Normalizer) (*Detector, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(config.Vocabulary))
	vocabulary := make([]string, 0, len(config.Vocabulary))
	quoted := make([]string, 0, len(config.Vocabulary))
	for _, w := range config.Vocabulary {
		w = normalizer.Normalize(w)
		if seen[w] {
			continue
		}
		seen[w] = true
		vocabulary = append(vocabulary, w)
		quoted = append(quoted, regexp.QuoteMeta(w))
	}

	pattern, err := regexp.Compile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
	if err != nil {
		return nil, fmt.Errorf("compile vocabulary pattern: %w", err)
	}

	return &Detector{
		vocabulary: vocabulary,
		pattern:    pattern,
		logger:     logger,
		normalizer: normalizer,
	}, nil
}

// Vocabulary returns a copy of the normalized vocabulary.
func (d *Detector) Vocabulary() []string {
	out := make([]string, len(d.vocabulary))
	copy(out, d.vocabulary)
	return out
}

// Detect returns the distinct vocabulary words found in text, lowercased.
func (d *Detector) Detect(text string) domain.WeaselMatches {
	matches := make(domain.WeaselMatches)
	if text == "" {
		return matches
	}

	for _, loc := range d.pattern.FindAllStringIndex(text, -1) {
		// \b only knows ASCII word characters; reject matches glued to other letters.
		if !isBoundary(text, loc[0], loc[1]) {
			continue
		}
		matches[d.normalizer.Normalize(text[loc[0]:loc[1]])] = struct{}{}
	}

	d.logger.Debug("Detected weasel words", "count", matches.Len())
	return matches
}

func isBoundary(text string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:start])
		if isWordRune(r) {
			return false
		}
	}
	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)
}
