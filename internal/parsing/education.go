package parsing

import (
	"github.com/google/uuid"

	"github.com/jmateo/resume-optimizer/internal/types"
)

const (
	placeholderDegree      = "Degree"
	placeholderInstitution = "Institution"
)

// parseEducation groups accumulated education lines into entries, keyed on
// degree-indicating lines. Within an entry the first date-shaped line becomes
// Dates, the first line naming a school becomes Institution, and everything
// else is appended to Details with any leading bullet glyph stripped.
func parseEducation(lines []string) []types.EducationEntry {
	entries := []types.EducationEntry{}
	var current *types.EducationEntry

	for _, line := range lines {
		if isDegreeLine(line) {
			if current != nil {
				entries = append(entries, finalizeEducation(*current))
			}
			entry := newEducationEntry()
			entry.Degree = line
			current = &entry
			continue
		}

		if current == nil {
			entry := newEducationEntry()
			current = &entry
		}

		switch {
		case current.Dates == "" && isDateLine(line):
			current.Dates = line
		case current.Institution == placeholderInstitution && isInstitutionLine(line):
			current.Institution = line
		default:
			current.Details = append(current.Details, stripBullet(line))
		}
	}

	if current != nil {
		entries = append(entries, finalizeEducation(*current))
	}
	return entries
}

// newEducationEntry creates an entry pre-filled with placeholders.
func newEducationEntry() types.EducationEntry {
	return types.EducationEntry{
		ID:          uuid.NewString(),
		Degree:      placeholderDegree,
		Institution: placeholderInstitution,
		Details:     []string{},
	}
}

// finalizeEducation restores placeholders for fields left empty.
func finalizeEducation(entry types.EducationEntry) types.EducationEntry {
	if entry.Degree == "" {
		entry.Degree = placeholderDegree
	}
	if entry.Institution == "" {
		entry.Institution = placeholderInstitution
	}
	if entry.Details == nil {
		entry.Details = []string{}
	}
	return entry
}
