package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd, a := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := execute(cmd, a)
	return out.String(), err
}

func TestGreet(t *testing.T) {
	out, err := run(t, "", "greet", "Ada")
	require.NoError(t, err)
	assert.Equal(t, "Hello Ada! Its a pleasure to connect from your first MCP Server.\n", out)
}

func TestReadability(t *testing.T) {
	tests := []struct {
		name     string
		stdin    string
		args     []string
		expected string
	}{
		{
			name:     "Text flag",
			args:     []string{"readability", "--text", "The cat sat. The dog ran."},
			expected: "Readability grade: -3.01 (max 12.00, passed)\n",
		},
		{
			name:     "File flag",
			args:     []string{"readability", "--file", filepath.Join("testdata", "input.txt")},
			expected: "Readability grade: -3.01 (max 12.00, passed)\n",
		},
		{
			name:     "Stdin",
			stdin:    "hello world",
			args:     []string{"readability"},
			expected: "Readability grade: 2.89 (max 12.00, passed)\n",
		},
		{
			name:     "Config file",
			args:     []string{"readability", "--config", filepath.Join("testdata", "config.yaml"), "-t", "hello world"},
			expected: "Readability grade: 3.00 (max 1.00, failed)\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, tc.stdin, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, out)
		})
	}
}

func TestWeasel(t *testing.T) {
	out, err := run(t, "", "weasel", "-t", "Many people often agree, but some disagree.")
	require.NoError(t, err)
	assert.Equal(t, "Weasel words: many, often, some\n", out)

	out, err = run(t, "", "weasel", "-t", "Someone agrees.")
	require.NoError(t, err)
	assert.Equal(t, "No weasel words found.\n", out)

	out, err = run(t, "", "weasel", "--config", filepath.Join("testdata", "config.yaml"), "-o", "json", "-t", "Clearly many agree.")
	require.NoError(t, err)
	var payload struct {
		Words []string `json:"words"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Equal(t, []string{"clearly"}, payload.Words)
}

func TestAnalyzeJSON(t *testing.T) {
	out, err := run(t, "", "analyze", "-o", "json", "-t", "The cat sat. The dog ran.")
	require.NoError(t, err)

	var report struct {
		Metrics struct {
			WordCount     int `json:"word_count"`
			SentenceCount int `json:"sentence_count"`
			SyllableCount int `json:"syllable_count"`
		} `json:"metrics"`
		Readability float64  `json:"readability"`
		WeaselWords []string `json:"weasel_words"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 6, report.Metrics.WordCount)
	assert.Equal(t, 3, report.Metrics.SentenceCount)
	assert.Equal(t, 6, report.Metrics.SyllableCount)
	assert.InDelta(t, -3.01, report.Readability, 1e-9)
	assert.Empty(t, report.WeaselWords)
}

func TestReviewPrompt(t *testing.T) {
	out, err := run(t, "", "review-prompt", "-t", "Some text.")
	require.NoError(t, err)
	assert.Contains(t, out, "## Readability Score")
	assert.Contains(t, out, "## Weasel Words")
	assert.Contains(t, out, "## General Feedback")
	assert.Contains(t, out, "Some text.")
}

func TestSearch(t *testing.T) {
	out, err := run(t, "", "search", "Marty")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Marty (Zebra): "))

	_, err = run(t, "", "search", "Nonexistent")
	assert.ErrorIs(t, err, errNotFound)
}

func TestOperationsAndCall(t *testing.T) {
	out, err := run(t, "", "operations")
	require.NoError(t, err)
	for _, name := range []string{"greet", "calculateReadability", "checkForWeaselWords", "generateReviewPrompt", "searchByName"} {
		assert.Contains(t, out, name)
	}

	out, err = run(t, "", "call", "searchByName", "--args", `{"name":"Marty"}`)
	require.NoError(t, err)
	var inv struct {
		Operation string `json:"operation"`
		Output    struct {
			Found  bool `json:"found"`
			Record struct {
				Species string `json:"species"`
			} `json:"record"`
		} `json:"output"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &inv))
	assert.Equal(t, "searchByName", inv.Operation)
	assert.True(t, inv.Output.Found)
	assert.Equal(t, "Zebra", inv.Output.Record.Species)

	_, err = run(t, "", "call", "calculateReadability", "--args", `{"txt":"x"}`)
	assert.ErrorContains(t, err, "INVALID_INPUT")

	_, err = run(t, "", "call", "greet", "--args", `not json`)
	assert.Error(t, err)
}

func TestInvalidFlags(t *testing.T) {
	_, err := run(t, "", "greet", "Ada", "-o", "yaml")
	assert.ErrorContains(t, err, "invalid output format")

	_, err = run(t, "", "readability", "-t", "x", "-f", "y")
	assert.Error(t, err)

	_, err = run(t, "", "readability", "-f", filepath.Join("testdata", "missing.txt"))
	assert.Error(t, err)

	_, err = run(t, "", "greet")
	assert.Error(t, err)
}

func TestTeardownClosesLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "textquality.log")
	t.Setenv("TEXTQUALITY_LOGGING_FILE", logPath)

	tests := []struct {
		name string
		args []string
		err  error
	}{
		{"Successful command", []string{"search", "Marty"}, nil},
		{"Failing command", []string{"search", "Nonexistent"}, errNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cmd, a := newRootCmd()
			cmd.SetOut(io.Discard)
			cmd.SetErr(io.Discard)
			cmd.SetArgs(tc.args)

			err := cmd.Execute()
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
			} else {
				require.NoError(t, err)
			}

			file := a.logFile
			require.NotNil(t, file)
			require.NotNil(t, a.analyzer)

			require.NoError(t, a.teardown())
			assert.ErrorIs(t, file.Close(), os.ErrClosed)
			assert.Nil(t, a.analyzer)
			assert.Nil(t, a.logFile)
			assert.NoError(t, a.teardown())
		})
	}

	_, err := os.Stat(logPath)
	assert.NoError(t, err)
}

func TestExecuteReleasesResourcesOnError(t *testing.T) {
	t.Setenv("TEXTQUALITY_LOGGING_FILE", filepath.Join(t.TempDir(), "textquality.log"))

	cmd, a := newRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"search", "Nonexistent"})

	err := execute(cmd, a)
	assert.ErrorIs(t, err, errNotFound)
	assert.Nil(t, a.analyzer)
	assert.Nil(t, a.logFile)
}
