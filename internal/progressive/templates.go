package progressive

import "github.com/jmateo/resume-optimizer/internal/types"

// FocusCategories is the fixed set of optimization categories the engine
// rotates through across improvement rounds.
var FocusCategories = []string{
	"quantification",
	"keywords",
	"action_verbs",
	"formatting",
	"summary",
	"experience",
	"education",
	"contact_info",
	"skills",
	"achievements",
	"certifications",
	"projects",
}

// AdvancedFocusArea is returned when every fixed category has already been
// addressed in earlier rounds.
const AdvancedFocusArea = "advanced_optimization"

type advancedTemplate struct {
	MinRound   int
	Suggestion types.Suggestion
}

// advancedByCategory holds the deeper follow-up suggestion unlocked for a
// category once its basic improvement has been applied in an earlier round.
var advancedByCategory = map[string]advancedTemplate{
	"quantification": {
		MinRound: 2,
		Suggestion: types.Suggestion{
			Priority:   types.PriorityHigh,
			Section:    "experience",
			Issue:      "Advanced metrics integration",
			Suggestion: "Pair existing metrics with industry benchmarks and KPIs so each number carries context.",
			Reasoning:  "Benchmarked numbers read as informed results rather than raw activity counts.",
		},
	},
	"keywords": {
		MinRound: 2,
		Suggestion: types.Suggestion{
			Priority:   types.PriorityMedium,
			Section:    "skills",
			Issue:      "Semantic keyword expansion",
			Suggestion: "Layer in related terms and tool names recruiters search alongside the primary keywords.",
			Reasoning:  "ATS ranking rewards semantic coverage, not just exact-match terms.",
		},
	},
	"action_verbs": {
		MinRound: 2,
		Suggestion: types.Suggestion{
			Priority:   types.PriorityMedium,
			Section:    "experience",
			Issue:      "Executive-level verb escalation",
			Suggestion: "Upgrade remaining bullets from task verbs to ownership verbs such as spearheaded, drove, and championed.",
			Reasoning:  "Ownership verbs signal scope of responsibility beyond task execution.",
		},
	},
	"formatting": {
		MinRound: 2,
		Suggestion: types.Suggestion{
			Priority:   types.PriorityLow,
			Section:    "formatting",
			Issue:      "Scanning-path refinement",
			Suggestion: "Tighten section ordering and bullet lengths so the strongest content sits in the first third of the page.",
			Reasoning:  "Recruiters skim top-down; layout should front-load impact.",
		},
	},
	"summary": {
		MinRound: 3,
		Suggestion: types.Suggestion{
			Priority:   types.PriorityMedium,
			Section:    "summary",
			Issue:      "Personal brand positioning",
			Suggestion: "Reframe the summary around a distinct professional identity instead of a list of competencies.",
			Reasoning:  "A positioned summary differentiates the candidate once the basics are solid.",
		},
	},
	"experience": {
		MinRound: 2,
		Suggestion: types.Suggestion{
			Priority:   types.PriorityMedium,
			Section:    "experience",
			Issue:      "Leadership narrative depth",
			Suggestion: "Connect bullets within each role into a progression story showing growing scope.",
			Reasoning:  "A visible trajectory is more persuasive than isolated accomplishments.",
		},
	},
	"skills": {
		MinRound: 2,
		Suggestion: types.Suggestion{
			Priority:   types.PriorityLow,
			Section:    "skills",
			Issue:      "Skill clustering",
			Suggestion: "Group skills into labeled clusters so depth in each area is visible at a glance.",
			Reasoning:  "Grouped skills read as expertise areas rather than a flat keyword list.",
		},
	},
}

// generalAdvanced are round-gated suggestions that apply regardless of which
// categories were previously addressed.
var generalAdvanced = []advancedTemplate{
	{
		MinRound: 3,
		Suggestion: types.Suggestion{
			Priority:   types.PriorityMedium,
			Section:    "general",
			Issue:      "Industry differentiation",
			Suggestion: "Emphasize the one or two results a peer with the same title could not claim.",
			Reasoning:  "Late-round passes should sharpen differentiation, not add volume.",
		},
	},
	{
		MinRound: 4,
		Suggestion: types.Suggestion{
			Priority:   types.PriorityLow,
			Section:    "general",
			Issue:      "Executive presence polish",
			Suggestion: "Trim any bullet that does not support the target role's seniority level.",
			Reasoning:  "At this stage subtraction raises the average impact per line.",
		},
	},
}
