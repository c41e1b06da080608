package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmateo/resume-optimizer/internal/types"
)

func TestMatchSectionKeyword_KnownHeadings(t *testing.T) {
	cases := map[string]types.SectionType{
		"EXPERIENCE":            types.SectionExperience,
		"Work Experience":       types.SectionExperience,
		"employment":            types.SectionExperience,
		"EDUCATION":             types.SectionEducation,
		"Academic Background":   types.SectionEducation,
		"SKILLS":                types.SectionSkills,
		"Core Competencies":     types.SectionSkills,
		"SUMMARY":               types.SectionSummary,
		"Objective":             types.SectionSummary,
		"Professional Profile":  types.SectionSummary,
		"CERTIFICATIONS":        types.SectionCertifications,
		"Projects":              types.SectionProjects,
		"AWARDS":                types.SectionAwards,
		"Languages":             types.SectionLanguages,
		"Volunteer":             types.SectionVolunteer,
		"PUBLICATIONS":          types.SectionPublications,
	}
	for line, expected := range cases {
		sectionType, ok := matchSectionKeyword(line)
		assert.True(t, ok, "expected %q to be a section heading", line)
		assert.Equal(t, expected, sectionType, "heading %q", line)
	}
}

func TestMatchSectionKeyword_NonHeadings(t *testing.T) {
	for _, line := range []string{"Jane Doe", "• Built things", "2019 - Present", ""} {
		_, ok := matchSectionKeyword(line)
		assert.False(t, ok, "did not expect %q to be a section heading", line)
	}
}

func TestMatchSectionKeyword_FirstRuleWins(t *testing.T) {
	// "SKILLS SUMMARY" matches both skills and summary; skills comes first
	// in the category table.
	sectionType, ok := matchSectionKeyword("SKILLS SUMMARY")
	assert.True(t, ok)
	assert.Equal(t, types.SectionSkills, sectionType)
}

func TestIsGenericHeading(t *testing.T) {
	assert.True(t, isGenericHeading("HOBBIES"))
	assert.True(t, isGenericHeading("ADDITIONAL INFORMATION:"))
	assert.False(t, isGenericHeading("Jane Doe"))
	assert.False(t, isGenericHeading("2019"))
	assert.False(t, isGenericHeading("A VERY LONG HEADING WITH FAR TOO MANY WORDS TO BE ONE"))
}

func TestHeadingTitle(t *testing.T) {
	assert.Equal(t, "Work Experience", headingTitle("WORK EXPERIENCE:"))
	assert.Equal(t, "Skills", headingTitle("skills"))
}

func TestIsJobTitleLine(t *testing.T) {
	assert.True(t, isJobTitleLine("Software Engineer at Acme Corp"))
	assert.True(t, isJobTitleLine("Operations Manager"))
	assert.True(t, isJobTitleLine("Data Analyst | CrunchWorks"))
	assert.False(t, isJobTitleLine("• Managed the engineering team"))
	assert.False(t, isJobTitleLine("2019 - Present"))
	assert.False(t, isJobTitleLine("Delivered results on time"))
}

func TestSplitTitleCompany(t *testing.T) {
	title, company, ok := splitTitleCompany("Software Engineer at Acme Corp")
	assert.True(t, ok)
	assert.Equal(t, "Software Engineer", title)
	assert.Equal(t, "Acme Corp", company)

	title, company, ok = splitTitleCompany("Designer @ Studio")
	assert.True(t, ok)
	assert.Equal(t, "Designer", title)
	assert.Equal(t, "Studio", company)

	_, _, ok = splitTitleCompany("Operations Manager")
	assert.False(t, ok)
}

func TestIsDateLine(t *testing.T) {
	assert.True(t, isDateLine("2019 - Present"))
	assert.True(t, isDateLine("Jan 2015 - Dec 2018"))
	assert.True(t, isDateLine("2020 – 2022"))
	assert.False(t, isDateLine("Built things in the past"))
	assert.False(t, isDateLine("2019"))
}

func TestStripBullet(t *testing.T) {
	assert.Equal(t, "Built things", stripBullet("• Built things"))
	assert.Equal(t, "Built things", stripBullet("- Built things"))
	assert.Equal(t, "Built things", stripBullet("* Built things"))
	assert.Equal(t, "Built things", stripBullet("Built things"))
}

func TestFindPhone_RequiresSevenDigits(t *testing.T) {
	assert.Equal(t, "(555) 123-4567", findPhone("jane@example.com | (555) 123-4567"))
	assert.Empty(t, findPhone("2019 - 2022"))
	assert.Empty(t, findPhone("no digits here"))
}

func TestFindEmail(t *testing.T) {
	assert.Equal(t, "jane@example.com", findEmail("contact: jane@example.com"))
	assert.Empty(t, findEmail("no email"))
}

func TestIsLocationLine(t *testing.T) {
	assert.True(t, isLocationLine("Portland, OR"))
	assert.True(t, isLocationLine("San Francisco, California"))
	assert.False(t, isLocationLine("Led team, shipped product, raised funding"))
	assert.False(t, isLocationLine("Portland"))
}
