package prompt

import (
	"strings"
	"testing"

	"github.com/baditaflorin/go_text_quality/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreet(t *testing.T) {
	assert.Equal(t, "Hello Ada! Its a pleasure to connect from your first MCP Server.", Greet("Ada"))
	assert.Equal(t, "Hello ! Its a pleasure to connect from your first MCP Server.", Greet(""))
}

func TestReviewPromptStructure(t *testing.T) {
	p := ReviewPrompt("Some text.")

	assert.Equal(t, "Some text.", p.Text)
	assert.Equal(t, []string{"Readability Score", "Weasel Words", "General Feedback"}, p.Sections)

	require.Len(t, p.Steps, 3)
	assert.Equal(t, domain.OpCalculateReadability, p.Steps[0].Operation)
	assert.Equal(t, domain.OpCheckForWeaselWords, p.Steps[1].Operation)
	assert.Empty(t, p.Steps[2].Operation)
	for i, s := range p.Steps {
		assert.Equal(t, i+1, s.Order)
	}
}

func TestReviewPromptText(t *testing.T) {
	p := ReviewPrompt("Many people often agree.")

	assert.Contains(t, p.Prompt, "Many people often agree.")

	readability := strings.Index(p.Prompt, "`calculateReadability`")
	weasel := strings.Index(p.Prompt, "`checkForWeaselWords`")
	require.True(t, readability >= 0 && weasel >= 0)
	assert.Less(t, readability, weasel)

	h1 := strings.Index(p.Prompt, "## Readability Score")
	h2 := strings.Index(p.Prompt, "## Weasel Words")
	h3 := strings.Index(p.Prompt, "## General Feedback")
	require.True(t, h1 >= 0 && h2 >= 0 && h3 >= 0)
	assert.True(t, h1 < h2 && h2 < h3)
}

func TestReviewPromptIsDeterministic(t *testing.T) {
	assert.Equal(t, ReviewPrompt("x"), ReviewPrompt("x"))
}

func TestReviewStepsAreCopies(t *testing.T) {
	steps := ReviewSteps()
	steps[0].Operation = "changed"
	assert.Equal(t, domain.OpCalculateReadability, ReviewSteps()[0].Operation)
}
