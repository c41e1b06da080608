// Package comparison provides the line-oriented diff between two versions of
// resume content, classifying changed lines and flagging likely improvements
// via fixed lexical heuristics.
package comparison

import (
	"strings"

	"github.com/jmateo/resume-optimizer/internal/types"
)

// Compare walks both inputs position by position and classifies each line as
// matching, added, removed or modified. Inputs are split into non-blank
// lines; no other normalization is applied, that is the caller's
// responsibility. Similarity is the fraction of positions with an exact
// match over the longer line count.
func Compare(original, modified string) types.ContentComparison {
	origLines := splitLines(original)
	modLines := splitLines(modified)

	result := types.ContentComparison{
		AddedSections:    []string{},
		ModifiedSections: []string{},
		RemovedSections:  []string{},
		ImprovementAreas: []string{},
	}

	total := len(origLines)
	if len(modLines) > total {
		total = len(modLines)
	}
	if total == 0 {
		return result
	}

	matching := 0
	seenAreas := map[string]bool{}
	for i := 0; i < total; i++ {
		origLine := lineAt(origLines, i)
		modLine := lineAt(modLines, i)

		switch {
		case origLine == modLine:
			matching++
		case origLine == "":
			result.AddedSections = append(result.AddedSections, modLine)
		case modLine == "":
			result.RemovedSections = append(result.RemovedSections, origLine)
		default:
			result.ModifiedSections = append(result.ModifiedSections, modLine)
			if isImprovement(origLine, modLine) {
				area := Categorize(modLine)
				if !seenAreas[area] {
					seenAreas[area] = true
					result.ImprovementAreas = append(result.ImprovementAreas, area)
				}
			}
		}
	}

	result.Similarity = float64(matching) / float64(total)
	return result
}

// splitLines splits content into trimmed, non-blank lines.
func splitLines(content string) []string {
	raw := strings.Split(content, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// lineAt returns the line at index i, or the empty string past the end.
func lineAt(lines []string, i int) string {
	if i < len(lines) {
		return lines[i]
	}
	return ""
}
