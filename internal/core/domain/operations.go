package domain

// Names under which the analysis operations are exposed to a hosting layer.
const (
	OpGreet                = "greet"
	OpCalculateReadability = "calculateReadability"
	OpCheckForWeaselWords  = "checkForWeaselWords"
	OpGenerateReviewPrompt = "generateReviewPrompt"
	OpSearchByName         = "searchByName"
)

// Report section headers, in the order an orchestrator must emit them.
const (
	SectionReadability = "Readability Score"
	SectionWeaselWords = "Weasel Words"
	SectionFeedback    = "General Feedback"
)
