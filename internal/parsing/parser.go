// Package parsing segments normalized resume text into a typed document
// model using ordered heuristic rules. Parsing is total: any input, including
// empty or unrecognizable text, yields a fully-populated document.
package parsing

import (
	"strings"

	"github.com/jmateo/resume-optimizer/internal/normalize"
	"github.com/jmateo/resume-optimizer/internal/types"
)

// headerScanLimit is how many leading lines are considered for the contact
// block. Header information is assumed to appear before any section heading.
const headerScanLimit = 8

// placeholderName is used when no name can be detected.
const placeholderName = "Your Name"

// Parse converts raw resume content into a StructuredResume. It never fails;
// when nothing can be detected a placeholder document is returned so
// downstream renderers always have displayable content.
func Parse(content string) *types.StructuredResume {
	normalized := normalize.Normalize(content)
	doc := &types.StructuredResume{RawContent: normalized}

	lines := normalize.Lines(normalized)
	doc.Header = extractHeader(lines)
	doc.Sections = segmentSections(lines)

	if len(doc.Sections) == 0 {
		doc.Sections = placeholderSections()
	}
	return doc
}

// extractHeader scans the leading lines for contact details, name, title and
// location. The scan stops early at the first recognized section heading.
func extractHeader(lines []string) types.Header {
	header := types.Header{}

	limit := headerScanLimit
	if len(lines) < limit {
		limit = len(lines)
	}

	for i := 0; i < limit; i++ {
		line := lines[i]
		if _, ok := matchSectionKeyword(line); ok {
			break
		}

		contact := false
		if email := findEmail(line); email != "" {
			if header.Email == "" {
				header.Email = email
			}
			contact = true
		}
		if phone := findPhone(line); phone != "" {
			if header.Phone == "" {
				header.Phone = phone
			}
			contact = true
		}
		if profile := findLinkedIn(line); profile != "" {
			if header.LinkedInURL == "" {
				header.LinkedInURL = profile
			}
			contact = true
		}
		if contact {
			continue
		}

		switch {
		case header.Location == "" && isLocationLine(line):
			header.Location = line
		case header.Name == "" && len(line) >= 2 && len(line) < 50:
			header.Name = line
		case header.Title == "" && len(line) >= 3 && len(line) < 80:
			header.Title = line
		}
	}

	if header.Name == "" {
		header.Name = placeholderName
	}
	return header
}

// openSection accumulates lines for the section currently being scanned.
type openSection struct {
	Type   types.SectionType
	Title  string
	buffer []string
}

// sectionAccumulator is the fold state for the line scan: the currently open
// section plus the completed sections so far.
type sectionAccumulator struct {
	open *openSection
	out  []types.Section
}

// segmentSections walks all lines, splitting them at section headings and
// dispatching each accumulated buffer to its type-specific sub-parser.
// Lines before the first heading belong to the header zone and are skipped.
func segmentSections(lines []string) []types.Section {
	acc := sectionAccumulator{}
	for _, line := range lines {
		acc = foldLine(acc, line)
	}
	if acc.open != nil {
		acc.out = append(acc.out, buildSection(acc.open))
	}
	return acc.out
}

// foldLine advances the accumulator by one line.
func foldLine(acc sectionAccumulator, line string) sectionAccumulator {
	if sectionType, title, ok := matchHeading(line, acc.open != nil); ok {
		if acc.open != nil {
			acc.out = append(acc.out, buildSection(acc.open))
		}
		acc.open = &openSection{Type: sectionType, Title: title}
		return acc
	}
	if acc.open != nil {
		acc.open.buffer = append(acc.open.buffer, line)
	}
	return acc
}

// matchHeading detects a section-start line. Keyword headings are always
// recognized; generic ALL-CAPS headings only once a first section is open,
// so that an uppercase name line is not mistaken for a section.
func matchHeading(line string, allowGeneric bool) (types.SectionType, string, bool) {
	if sectionType, ok := matchSectionKeyword(line); ok {
		return sectionType, headingTitle(line), true
	}
	if allowGeneric && isGenericHeading(line) {
		return types.SectionOther, headingTitle(line), true
	}
	return "", "", false
}

// buildSection dispatches an accumulated buffer to its sub-parser.
func buildSection(open *openSection) types.Section {
	section := types.Section{Type: open.Type, Title: open.Title}
	switch open.Type {
	case types.SectionSummary:
		section.Summary = strings.Join(open.buffer, " ")
	case types.SectionExperience:
		section.Experience = parseExperience(open.buffer)
	case types.SectionEducation:
		section.Education = parseEducation(open.buffer)
	case types.SectionSkills:
		section.Items = parseSkills(open.buffer)
	default:
		section.Items = append([]string{}, open.buffer...)
	}
	return section
}

// parseSkills splits accumulated skill lines on commas, semicolons and pipes.
func parseSkills(lines []string) []string {
	skills := []string{}
	for _, line := range lines {
		for _, token := range strings.FieldsFunc(stripBullet(line), func(r rune) bool {
			return r == ',' || r == ';' || r == '|'
		}) {
			token = strings.TrimSpace(token)
			if token != "" {
				skills = append(skills, token)
			}
		}
	}
	return skills
}

// placeholderSections is the default document used when no sections were
// detected at all.
func placeholderSections() []types.Section {
	return []types.Section{
		{
			Type:    types.SectionSummary,
			Title:   "Summary",
			Summary: "Experienced professional with a strong track record of delivering results.",
		},
		{
			Type:       types.SectionExperience,
			Title:      "Experience",
			Experience: []types.ExperienceEntry{newExperienceEntry()},
		},
		{
			Type:      types.SectionEducation,
			Title:     "Education",
			Education: []types.EducationEntry{newEducationEntry()},
		},
		{
			Type:  types.SectionSkills,
			Title: "Skills",
			Items: []string{"Communication", "Leadership", "Problem Solving"},
		},
	}
}
