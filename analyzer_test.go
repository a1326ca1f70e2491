// analyzer_test.go
package textquality

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/baditaflorin/go_text_quality/internal/adapters/logger"
	"github.com/baditaflorin/go_text_quality/internal/operations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAnalyzer(t *testing.T, opts ...Option) *Analyzer {
	t.Helper()
	opts = append([]Option{WithPortLogger(logger.NewNopLogger())}, opts...)
	a, err := New(opts...)
	require.NoError(t, err)
	return a
}

func TestCalculateReadability(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected float64
	}{
		{"Empty text", "", 0},
		{"Whitespace only", "   ", 0},
		{"Two short sentences", "The cat sat. The dog ran.", -3.01},
		{"No terminator", "hello world", 2.89},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, float64(CalculateReadability(tc.text)), 1e-9)
		})
	}
}

func TestExtractMetrics(t *testing.T) {
	m := ComputeMetrics("The cat sat. The dog ran.")
	assert.Equal(t, Metrics{WordCount: 6, SentenceCount: 3, SyllableCount: 6}, m)
	assert.InDelta(t, -3.01, float64(Score(m)), 1e-9)
}

func TestCheckForWeaselWords(t *testing.T) {
	got := CheckForWeaselWords("Many people often agree, but some disagree.")
	assert.Equal(t, WeaselMatches{"many": {}, "often": {}, "some": {}}, got)

	assert.False(t, CheckForWeaselWords("Someone said so.").Contains("some"))
	assert.Equal(t, 0, CheckForWeaselWords("").Len())
}

func TestAnalyze(t *testing.T) {
	r := Analyze("Most cats sleep. Some dogs bark often!")
	assert.Equal(t, Metrics{WordCount: 7, SentenceCount: 3, SyllableCount: 10}, r.Metrics)
	assert.Equal(t, []string{"most", "often", "some"}, r.WeaselWords)
	assert.Equal(t, CalculateReadability("Most cats sleep. Some dogs bark often!"), r.Readability)
}

func TestBoundaryOperations(t *testing.T) {
	assert.Equal(t, "Hello Ada! Its a pleasure to connect from your first MCP Server.", Greet("Ada"))

	r, ok := SearchByName("Marty")
	require.True(t, ok)
	assert.Equal(t, "Zebra", r.Species)

	_, ok = SearchByName("Nonexistent")
	assert.False(t, ok)

	p := GenerateReviewPrompt("Some text.")
	assert.Equal(t, []string{"Readability Score", "Weasel Words", "General Feedback"}, p.Sections)
}

func TestOptions(t *testing.T) {
	a := newTestAnalyzer(t,
		WithPrecision(0),
		WithMaxGrade(1),
		WithVocabulary([]string{"clearly"}),
		WithRecords([]Record{{Name: "Rico", Species: "Penguin"}}),
	)

	assert.Equal(t, ReadabilityScore(-3), a.CalculateReadability("The cat sat. The dog ran."))
	assert.False(t, a.EvaluateReadability("hello world").Passed)
	assert.Equal(t, []string{"clearly"}, a.CheckForWeaselWords("Clearly, many agree.").Words())

	_, ok := a.SearchByName("Marty")
	assert.False(t, ok)
	_, ok = a.SearchByName("Rico")
	assert.True(t, ok)
}

func TestRecordsFileOption(t *testing.T) {
	a := newTestAnalyzer(t, WithRecordsFile(filepath.Join("testdata", "records.yaml")))
	r, ok := a.SearchByName("Moto Moto")
	require.True(t, ok)
	assert.Equal(t, "Hippopotamus", r.Species)

	_, err := New(WithPortLogger(logger.NewNopLogger()), WithRecordsFile(filepath.Join("testdata", "missing.yaml")))
	assert.Error(t, err)
}

func TestInvalidOptions(t *testing.T) {
	nop := WithPortLogger(logger.NewNopLogger())

	_, err := New(nop, WithPrecision(-1))
	assert.Error(t, err)

	_, err = New(nop, WithMaxGrade(0))
	assert.Error(t, err)

	_, err = New(nop, WithVocabulary(nil))
	assert.Error(t, err)
}

func TestOperations(t *testing.T) {
	a := newTestAnalyzer(t)
	ops, err := a.Operations()
	require.NoError(t, err)

	inv, err := ops.Call(context.Background(), "calculateReadability", map[string]interface{}{"text": "The cat sat. The dog ran."})
	require.NoError(t, err)
	assert.InDelta(t, -3.01, inv.Output.(operations.ReadabilityOutput).Score, 1e-9)

	inv, err = ops.Call(context.Background(), "searchByName", map[string]interface{}{"name": "Marty"})
	require.NoError(t, err)
	out := inv.Output.(operations.SearchOutput)
	require.True(t, out.Found)
	assert.Equal(t, "Zebra", out.Record.Species)
}

func TestConcurrentUse(t *testing.T) {
	a := newTestAnalyzer(t)
	text := "Many people often agree, but some disagree."
	want := a.Analyze(text)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, a.Analyze(text))
		}()
	}
	wg.Wait()
}
