package normalizer

import (
	"strings"

	"github.com/baditaflorin/go_text_quality/internal/ports"
)

// DefaultNormalizer folds matched words to their canonical lowercase form.
type DefaultNormalizer struct{}

// NewDefaultNormalizer creates a new default normalizer.
func NewDefaultNormalizer() ports.Normalizer {
	return &DefaultNormalizer{}
}

// Normalize trims surrounding whitespace and converts the text to lower case.
func (n *DefaultNormalizer) Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}
