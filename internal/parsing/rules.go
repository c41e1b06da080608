package parsing

import (
	"regexp"
	"strings"

	"github.com/jmateo/resume-optimizer/internal/types"
)

var (
	emailPattern    = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phonePattern    = regexp.MustCompile(`\+?\(?\d[\d\s().\-]{5,}\d`)
	linkedinPattern = regexp.MustCompile(`linkedin\.com/in/[A-Za-z0-9\-_%]+`)
	locationPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z .'\-]*,\s*[A-Za-z][A-Za-z .]*$`)
	yearPattern     = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	presentPattern  = regexp.MustCompile(`(?i)\bpresent\b`)
	companySuffix   = regexp.MustCompile(`(?i)\b(inc|llc|corp|company|ltd)\b\.?`)
	titleAtCompany  = regexp.MustCompile(`^(.{2,60}?)\s*(?:\bat\b|@|\|)\s*(.+)$`)
)

// roleKeywords mark a line as job-title-like inside an experience section.
var roleKeywords = []string{
	"manager", "director", "engineer", "analyst", "developer", "designer",
	"specialist", "coordinator", "associate", "consultant", "architect",
	"administrator",
}

// degreeKeywords mark a line as the start of an education entry.
var degreeKeywords = []string{
	"bachelor", "master", "phd", "doctorate", "associate", "mba", "degree",
}

// institutionKeywords mark a line as the school for an open education entry.
var institutionKeywords = []string{
	"university", "college", "institute", "school", "academy",
}

type sectionRule struct {
	Type     types.SectionType
	Keywords []string
}

// sectionRules is evaluated top to bottom; for ambiguous heading lines the
// first keyword match wins.
var sectionRules = []sectionRule{
	{types.SectionExperience, []string{"EXPERIENCE", "WORK EXPERIENCE", "EMPLOYMENT", "WORK HISTORY"}},
	{types.SectionEducation, []string{"EDUCATION", "ACADEMIC BACKGROUND", "ACADEMICS"}},
	{types.SectionSkills, []string{"SKILLS", "CORE COMPETENCIES", "COMPETENCIES", "TECHNOLOGIES"}},
	{types.SectionSummary, []string{"SUMMARY", "OBJECTIVE", "PROFILE", "ABOUT ME"}},
	{types.SectionCertifications, []string{"CERTIFICATIONS", "CERTIFICATES", "LICENSES"}},
	{types.SectionProjects, []string{"PROJECTS", "PORTFOLIO"}},
	{types.SectionAwards, []string{"AWARDS", "HONORS", "ACHIEVEMENTS"}},
	{types.SectionLanguages, []string{"LANGUAGES"}},
	{types.SectionVolunteer, []string{"VOLUNTEER", "COMMUNITY INVOLVEMENT"}},
	{types.SectionPublications, []string{"PUBLICATIONS", "RESEARCH"}},
}

// matchSectionKeyword reports whether the line's upper-cased form contains a
// keyword from the fixed category table, returning the matched type.
func matchSectionKeyword(line string) (types.SectionType, bool) {
	upper := strings.ToUpper(strings.TrimSpace(line))
	for _, rule := range sectionRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(upper, kw) {
				return rule.Type, true
			}
		}
	}
	return "", false
}

// isGenericHeading recognizes short ALL-CAPS lines as headings for sections
// the keyword table does not know about.
func isGenericHeading(line string) bool {
	trimmed := strings.TrimSuffix(strings.TrimSpace(line), ":")
	if len(trimmed) < 3 || len(trimmed) >= 60 {
		return false
	}
	if len(strings.Fields(trimmed)) > 5 {
		return false
	}
	hasLetter := false
	for _, r := range trimmed {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if r >= 'A' && r <= 'Z' {
			hasLetter = true
		}
		if r >= '0' && r <= '9' {
			return false
		}
	}
	return hasLetter
}

// headingTitle converts a detected heading line to a display title,
// e.g. "WORK EXPERIENCE:" -> "Work Experience".
func headingTitle(line string) string {
	trimmed := strings.TrimSuffix(strings.TrimSpace(line), ":")
	words := strings.Fields(strings.ToLower(trimmed))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// stripBullet removes a leading bullet glyph and surrounding whitespace.
func stripBullet(line string) string {
	trimmed := strings.TrimSpace(line)
	for _, glyph := range []string{"•", "-", "*"} {
		if strings.HasPrefix(trimmed, glyph) {
			return strings.TrimSpace(strings.TrimPrefix(trimmed, glyph))
		}
	}
	return trimmed
}

// hasBullet reports whether the line starts with a bullet glyph.
func hasBullet(line string) bool {
	return stripBullet(line) != strings.TrimSpace(line)
}

// isJobTitleLine reports whether a line looks like the start of a new
// experience entry: it contains a role keyword or has an "X at Y" shape.
// Bulleted lines are always treated as responsibilities, never titles.
func isJobTitleLine(line string) bool {
	if hasBullet(line) {
		return false
	}
	lower := strings.ToLower(line)
	for _, kw := range roleKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return titleAtCompany.MatchString(line)
}

// splitTitleCompany splits an "X at Y" / "X @ Y" / "X | Y" title line.
func splitTitleCompany(line string) (title, company string, ok bool) {
	m := titleAtCompany.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), true
}

// isDateLine reports whether a line carries a year together with a range
// marker (hyphen, en dash, or "present").
func isDateLine(line string) bool {
	if !yearPattern.MatchString(line) {
		return false
	}
	return strings.Contains(line, "-") || strings.Contains(line, "–") ||
		presentPattern.MatchString(line)
}

// isDegreeLine reports whether a line starts an education entry.
func isDegreeLine(line string) bool {
	if hasBullet(line) {
		return false
	}
	lower := strings.ToLower(line)
	for _, kw := range degreeKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// isInstitutionLine reports whether a line names a school.
func isInstitutionLine(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range institutionKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// findEmail returns the first email-shaped substring of the line.
func findEmail(line string) string {
	return emailPattern.FindString(line)
}

// findPhone returns the first phone-shaped substring with at least seven
// digits. Email text is masked first so digits inside addresses do not match,
// and date-range lines are excluded since year spans look phone-like.
func findPhone(line string) string {
	masked := emailPattern.ReplaceAllString(line, "")
	if isDateLine(masked) {
		return ""
	}
	for _, candidate := range phonePattern.FindAllString(masked, -1) {
		digits := 0
		for _, r := range candidate {
			if r >= '0' && r <= '9' {
				digits++
			}
		}
		if digits >= 7 {
			return strings.TrimSpace(candidate)
		}
	}
	return ""
}

// findLinkedIn returns the first linkedin.com/in/ substring of the line.
func findLinkedIn(line string) string {
	return linkedinPattern.FindString(line)
}

// isLocationLine matches a "City, State"-shaped line under 60 characters.
func isLocationLine(line string) bool {
	return len(line) < 60 && strings.Contains(line, ",") &&
		locationPattern.MatchString(strings.TrimSpace(line))
}
