package operations

import (
	"github.com/baditaflorin/go_text_quality/internal/core/domain"
)

// Descriptor describes an operation to a hosting layer.
type Descriptor struct {
	Name        string                 `json:"name"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Category    string                 `json:"category"`
	InputSchema map[string]interface{} `json:"inputSchema"`
	ReadOnly    bool                   `json:"readOnly"`
	Idempotent  bool                   `json:"idempotent"`
}

func stringArgSchema(field, description string) map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			field: map[string]interface{}{
				"type":        "string",
				"description": description,
			},
		},
		"required":             []interface{}{field},
		"additionalProperties": false,
	}
}

var descriptors = []Descriptor{
	{
		Name:        domain.OpGreet,
		Title:       "Greet",
		Description: "Returns a friendly greeting.",
		Category:    "general",
		InputSchema: stringArgSchema("name", "Name to greet."),
	},
	{
		Name:        domain.OpCalculateReadability,
		Title:       "Calculate readability",
		Description: "Computes the Flesch-Kincaid grade level of a text, rounded to two decimals.",
		Category:    "analysis",
		InputSchema: stringArgSchema("text", "Text to score."),
	},
	{
		Name:        domain.OpCheckForWeaselWords,
		Title:       "Check for weasel words",
		Description: "Lists the distinct vague qualifiers (many, some, often, ...) used in a text.",
		Category:    "analysis",
		InputSchema: stringArgSchema("text", "Text to scan."),
	},
	{
		Name:        domain.OpGenerateReviewPrompt,
		Title:       "Generate review prompt",
		Description: "Builds step-by-step review instructions and a three-section report template for a text.",
		Category:    "prompt",
		InputSchema: stringArgSchema("text", "Text to review."),
	},
	{
		Name:        domain.OpSearchByName,
		Title:       "Search by name",
		Description: "Finds the first catalog record whose name matches exactly.",
		Category:    "lookup",
		InputSchema: stringArgSchema("name", "Exact, case-sensitive record name."),
	},
}

func init() {
	for i := range descriptors {
		descriptors[i].ReadOnly = true
		descriptors[i].Idempotent = true
	}
}
