package prompt

import (
	"strings"
	"text/template"

	"github.com/baditaflorin/go_text_quality/internal/core/domain"
)

var reviewSteps = []domain.ReviewStep{
	{
		Order:       1,
		Operation:   domain.OpCalculateReadability,
		Instruction: "Call the `" + domain.OpCalculateReadability + "` tool with the text to get its readability grade.",
	},
	{
		Order:       2,
		Operation:   domain.OpCheckForWeaselWords,
		Instruction: "Call the `" + domain.OpCheckForWeaselWords + "` tool with the text to list any weasel words.",
	},
	{
		Order:       3,
		Instruction: "Read the text yourself and assess tone, clarity, structure and word choice.",
	},
}

var reviewSections = []string{
	domain.SectionReadability,
	domain.SectionWeaselWords,
	domain.SectionFeedback,
}

var reviewTemplate = template.Must(template.New("review").Parse(
	`You are an expert editor. Review the text below by following these steps in order:
{{range .Steps}}
{{.Order}}. {{.Instruction}}{{end}}

Then write a markdown report with exactly these sections:
{{range .Sections}}
## {{.}}{{end}}

Text to review:
"""
{{.Text}}
"""
`))

// ReviewSteps returns a copy of the ordered review protocol.
func ReviewSteps() []domain.ReviewStep {
	out := make([]domain.ReviewStep, len(reviewSteps))
	copy(out, reviewSteps)
	return out
}

// ReviewSections returns a copy of the report section headers in order.
func ReviewSections() []string {
	out := make([]string, len(reviewSections))
	copy(out, reviewSections)
	return out
}

// ReviewPrompt builds the instruction payload for reviewing text.
func ReviewPrompt(text string) domain.ReviewPrompt {
	p := domain.ReviewPrompt{
		Text:     text,
		Steps:    ReviewSteps(),
		Sections: ReviewSections(),
	}

	var sb strings.Builder
	// The template is static and writes to memory, so Execute cannot fail.
	_ = reviewTemplate.Execute(&sb, p)
	p.Prompt = sb.String()
	return p
}
