package domain

import "sort"

// Metrics holds the raw counts derived from a block of text.
type Metrics struct {
	WordCount     int `json:"word_count"`
	SentenceCount int `json:"sentence_count"`
	SyllableCount int `json:"syllable_count"`
}

// ReadabilityScore is a grade level rounded to the configured precision.
type ReadabilityScore float64

// WeaselMatches is the set of distinct, lowercase vocabulary words found in a text.
type WeaselMatches map[string]struct{}

// NewWeaselMatches builds a set from the given words.
func NewWeaselMatches(words ...string) WeaselMatches {
	m := make(WeaselMatches, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

// Contains reports whether word is in the set.
func (m WeaselMatches) Contains(word string) bool {
	_, ok := m[word]
	return ok
}

// Len returns the number of distinct matches.
func (m WeaselMatches) Len() int {
	return len(m)
}

// Words returns the matches as a sorted slice. Sorting is for display only.
func (m WeaselMatches) Words() []string {
	words := make([]string, 0, len(m))
	for w := range m {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Result holds the outcome of a metric computation.
type Result struct {
	Name      string
	Score     float64
	Passed    bool
	Threshold float64
	Details   map[string]interface{}
}

// Report combines one full analysis pass over a text.
type Report struct {
	Metrics     Metrics          `json:"metrics"`
	Readability ReadabilityScore `json:"readability"`
	WeaselWords []string         `json:"weasel_words"`
}

// Record is a static catalog entry.
type Record struct {
	Name        string `json:"name" yaml:"name"`
	Species     string `json:"species" yaml:"species"`
	Description string `json:"description" yaml:"description"`
}

// ReviewStep is one ordered instruction of the review protocol.
type ReviewStep struct {
	Order       int    `json:"order"`
	Operation   string `json:"operation,omitempty"`
	Instruction string `json:"instruction"`
}

// ReviewPrompt is the instruction payload handed to an external orchestrator.
type ReviewPrompt struct {
	Text     string       `json:"text"`
	Steps    []ReviewStep `json:"steps"`
	Sections []string     `json:"sections"`
	Prompt   string       `json:"prompt"`
}
