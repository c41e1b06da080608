package parsing

import (
	"github.com/google/uuid"

	"github.com/jmateo/resume-optimizer/internal/types"
)

// Placeholder values for fields that could not be detected, so downstream
// renderers never see empty required fields.
const (
	placeholderTitle   = "Position"
	placeholderCompany = "Company"
)

// parseExperience groups accumulated experience lines into entries. A
// job-title-like line closes the previous entry and opens a new one; within
// an entry the first date-shaped line becomes Dates, the first line with a
// legal-entity suffix becomes Company, and everything else is a
// responsibility with any leading bullet glyph stripped.
func parseExperience(lines []string) []types.ExperienceEntry {
	entries := []types.ExperienceEntry{}
	var current *types.ExperienceEntry

	for _, line := range lines {
		if isJobTitleLine(line) {
			if current != nil {
				entries = append(entries, finalizeExperience(*current))
			}
			entry := newExperienceEntry()
			if title, company, ok := splitTitleCompany(line); ok {
				entry.Title = title
				entry.Company = company
			} else {
				entry.Title = line
			}
			current = &entry
			continue
		}

		if current == nil {
			entry := newExperienceEntry()
			current = &entry
		}

		switch {
		case current.Dates == "" && isDateLine(line):
			current.Dates = line
		case current.Company == placeholderCompany && !hasBullet(line) && companySuffix.MatchString(line):
			current.Company = line
		default:
			current.Responsibilities = append(current.Responsibilities, stripBullet(line))
		}
	}

	if current != nil {
		entries = append(entries, finalizeExperience(*current))
	}
	return entries
}

// newExperienceEntry creates an entry pre-filled with placeholders.
func newExperienceEntry() types.ExperienceEntry {
	return types.ExperienceEntry{
		ID:               uuid.NewString(),
		Title:            placeholderTitle,
		Company:          placeholderCompany,
		Responsibilities: []string{},
	}
}

// finalizeExperience restores placeholders for fields left empty.
func finalizeExperience(entry types.ExperienceEntry) types.ExperienceEntry {
	if entry.Title == "" {
		entry.Title = placeholderTitle
	}
	if entry.Company == "" {
		entry.Company = placeholderCompany
	}
	if entry.Responsibilities == nil {
		entry.Responsibilities = []string{}
	}
	return entry
}
