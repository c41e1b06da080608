// Package progressive turns a flat suggestion list into round-aware analysis:
// advice already applied in earlier enhancement rounds is suppressed, deeper
// follow-ups are unlocked as rounds advance, and remaining focus areas shrink
// toward an advanced-optimization stage.
package progressive

import (
	"strings"

	"github.com/jmateo/resume-optimizer/internal/comparison"
	"github.com/jmateo/resume-optimizer/internal/types"
)

// maxImprovements caps the suggestions returned per analysis.
const maxImprovements = 10

// Analyze merges freshly generated suggestions with the user's enhancement
// history for this content. With no history the suggestions pass through as a
// first-round analysis. Otherwise previously applied improvements are
// suppressed, advanced follow-ups for already-covered categories are appended
// once the round unlocks them, and focus areas narrow to what has not been
// addressed yet.
func Analyze(fresh []types.Suggestion, history []types.EnhancementRecord) types.ProgressiveAnalysis {
	if len(history) == 0 {
		return types.ProgressiveAnalysis{
			Improvements:        capImprovements(fresh),
			ImprovementRound:    1,
			PreviouslyAddressed: []string{},
			FocusAreas:          append([]string{}, FocusCategories...),
			IsProgressive:       false,
		}
	}

	round := len(history) + 1
	addressed := collectAddressed(history)

	improvements := make([]types.Suggestion, 0, len(fresh))
	for _, s := range fresh {
		if !alreadyAddressed(s.Issue, addressed) {
			improvements = append(improvements, s)
		}
	}

	for _, adv := range advancedFor(addressed, round) {
		if !alreadyAddressed(adv.Issue, addressed) {
			improvements = append(improvements, adv)
		}
	}

	return types.ProgressiveAnalysis{
		Improvements:        capImprovements(improvements),
		ImprovementRound:    round,
		PreviouslyAddressed: addressed,
		FocusAreas:          remainingFocus(addressed),
		IsProgressive:       true,
	}
}

// collectAddressed unions the applied improvements across all history
// records, preserving first-seen order.
func collectAddressed(history []types.EnhancementRecord) []string {
	seen := map[string]bool{}
	addressed := []string{}
	for _, record := range history {
		for _, item := range record.AppliedImprovements {
			key := strings.ToLower(strings.TrimSpace(item))
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			addressed = append(addressed, item)
		}
	}
	return addressed
}

// alreadyAddressed reports whether an issue matches any previously applied
// improvement. Matching is case-insensitive substring containment in either
// direction, so "add metrics" suppresses "Add metrics to experience bullets"
// and vice versa.
func alreadyAddressed(issue string, addressed []string) bool {
	issueLower := strings.ToLower(strings.TrimSpace(issue))
	if issueLower == "" {
		return false
	}
	for _, item := range addressed {
		itemLower := strings.ToLower(strings.TrimSpace(item))
		if itemLower == "" {
			continue
		}
		if strings.Contains(issueLower, itemLower) || strings.Contains(itemLower, issueLower) {
			return true
		}
	}
	return false
}

// advancedFor returns the follow-up suggestions unlocked by this round for
// categories the user has already worked on, plus the round-gated general
// templates.
func advancedFor(addressed []string, round int) []types.Suggestion {
	covered := addressedCategories(addressed)

	out := []types.Suggestion{}
	for _, category := range FocusCategories {
		if !covered[category] {
			continue
		}
		tmpl, ok := advancedByCategory[category]
		if !ok || round < tmpl.MinRound {
			continue
		}
		out = append(out, tmpl.Suggestion)
	}
	for _, tmpl := range generalAdvanced {
		if round >= tmpl.MinRound {
			out = append(out, tmpl.Suggestion)
		}
	}
	return out
}

// addressedCategories classifies each applied improvement into the shared
// category vocabulary.
func addressedCategories(addressed []string) map[string]bool {
	covered := map[string]bool{}
	for _, item := range addressed {
		covered[comparison.Categorize(item)] = true
	}
	return covered
}

// remainingFocus returns the categories not yet touched by any applied
// improvement; once everything is covered the analysis moves to the advanced
// stage.
func remainingFocus(addressed []string) []string {
	covered := addressedCategories(addressed)

	remaining := []string{}
	for _, category := range FocusCategories {
		if !covered[category] {
			remaining = append(remaining, category)
		}
	}
	if len(remaining) == 0 {
		return []string{AdvancedFocusArea}
	}
	return remaining
}

func capImprovements(improvements []types.Suggestion) []types.Suggestion {
	if improvements == nil {
		return []types.Suggestion{}
	}
	if len(improvements) > maxImprovements {
		return improvements[:maxImprovements]
	}
	return improvements
}
