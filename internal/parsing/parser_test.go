package parsing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmateo/resume-optimizer/internal/types"
)

const sampleResume = `Jane Doe
Senior Engineer
jane@example.com | (555) 123-4567
EXPERIENCE
Software Engineer at Acme Corp
2019 - Present
• Built things`

func TestParse_HeaderExtraction(t *testing.T) {
	doc := Parse(sampleResume)

	assert.Equal(t, "Jane Doe", doc.Header.Name)
	assert.Equal(t, "Senior Engineer", doc.Header.Title)
	assert.Equal(t, "jane@example.com", doc.Header.Email)
	assert.Contains(t, doc.Header.Phone, "555")
}

func TestParse_ExperienceSection(t *testing.T) {
	doc := Parse(sampleResume)

	section := doc.SectionByType(types.SectionExperience)
	require.NotNil(t, section)
	require.Len(t, section.Experience, 1)

	entry := section.Experience[0]
	assert.Contains(t, entry.Title, "Software Engineer")
	assert.Contains(t, entry.Company, "Acme")
	assert.Contains(t, entry.Dates, "2019")
	assert.Equal(t, []string{"Built things"}, entry.Responsibilities)
	assert.NotEmpty(t, entry.ID)
}

func TestParse_EmptyInput(t *testing.T) {
	doc := Parse("")

	assert.Equal(t, "Your Name", doc.Header.Name)
	require.NotEmpty(t, doc.Sections)
	assert.NotNil(t, doc.SectionByType(types.SectionSummary))
	assert.NotNil(t, doc.SectionByType(types.SectionExperience))
	assert.NotNil(t, doc.SectionByType(types.SectionEducation))
	assert.NotNil(t, doc.SectionByType(types.SectionSkills))
}

func TestParse_WhitespaceOnlyInput(t *testing.T) {
	doc := Parse("   \n\t\n  ")
	assert.Equal(t, "Your Name", doc.Header.Name)
	assert.NotEmpty(t, doc.Sections)
}

func TestParse_NoSectionHeaders(t *testing.T) {
	doc := Parse("some unstructured text\nwith no recognizable headings")

	assert.NotEmpty(t, doc.Header.Name)
	// No headings detected: the placeholder document is returned.
	assert.Len(t, doc.Sections, 4)
}

func TestParse_NeverPanics(t *testing.T) {
	inputs := []string{
		"",
		"\x00\x01\x02",
		strings.Repeat("EXPERIENCE\n", 50),
		"<html><body>broken",
		"• \n• \n• ",
	}
	for _, input := range inputs {
		assert.NotPanics(t, func() {
			doc := Parse(input)
			assert.NotEmpty(t, doc.Header.Name)
		})
	}
}

func TestParse_SectionOrderPreserved(t *testing.T) {
	doc := Parse(`John Smith
SUMMARY
A seasoned professional.
EXPERIENCE
Project Manager at BigCo
EDUCATION
Bachelor of Arts
SKILLS
Go, SQL`)

	require.Len(t, doc.Sections, 4)
	assert.Equal(t, types.SectionSummary, doc.Sections[0].Type)
	assert.Equal(t, types.SectionExperience, doc.Sections[1].Type)
	assert.Equal(t, types.SectionEducation, doc.Sections[2].Type)
	assert.Equal(t, types.SectionSkills, doc.Sections[3].Type)
}

func TestParse_SummaryJoinedIntoOneString(t *testing.T) {
	doc := Parse(`John Smith
SUMMARY
First line of summary.
Second line of summary.`)

	section := doc.SectionByType(types.SectionSummary)
	require.NotNil(t, section)
	assert.Equal(t, "First line of summary. Second line of summary.", section.Summary)
}

func TestParse_SkillsSplitOnDelimiters(t *testing.T) {
	doc := Parse(`John Smith
SKILLS
Go, Python; SQL | Docker
Kubernetes`)

	section := doc.SectionByType(types.SectionSkills)
	require.NotNil(t, section)
	assert.Equal(t, []string{"Go", "Python", "SQL", "Docker", "Kubernetes"}, section.Items)
}

func TestParse_EducationGrouping(t *testing.T) {
	doc := Parse(`John Smith
EDUCATION
Bachelor of Science in Computer Science
State University
2012 - 2016
• Graduated with honors
Master of Science in Data Engineering
Tech Institute`)

	section := doc.SectionByType(types.SectionEducation)
	require.NotNil(t, section)
	require.Len(t, section.Education, 2)

	first := section.Education[0]
	assert.Contains(t, first.Degree, "Bachelor")
	assert.Equal(t, "State University", first.Institution)
	assert.Equal(t, "2012 - 2016", first.Dates)
	assert.Equal(t, []string{"Graduated with honors"}, first.Details)

	second := section.Education[1]
	assert.Contains(t, second.Degree, "Master")
	assert.Equal(t, "Tech Institute", second.Institution)
}

func TestParse_MultipleExperienceEntries(t *testing.T) {
	doc := Parse(`John Smith
EXPERIENCE
Senior Developer at Initech
2020 - Present
• Shipped features
Data Analyst | CrunchWorks
2017 - 2020
• Analyzed data`)

	section := doc.SectionByType(types.SectionExperience)
	require.NotNil(t, section)
	require.Len(t, section.Experience, 2)
	assert.Contains(t, section.Experience[0].Company, "Initech")
	assert.Contains(t, section.Experience[1].Company, "CrunchWorks")
}

func TestParse_ExperienceCompanyFromSuffixLine(t *testing.T) {
	doc := Parse(`John Smith
EXPERIENCE
Operations Manager
Globex Inc
2015 - 2018
• Ran operations`)

	section := doc.SectionByType(types.SectionExperience)
	require.NotNil(t, section)
	require.Len(t, section.Experience, 1)
	assert.Equal(t, "Globex Inc", section.Experience[0].Company)
	assert.Equal(t, "2015 - 2018", section.Experience[0].Dates)
}

func TestParse_ExperiencePlaceholdersWhenUndetected(t *testing.T) {
	doc := Parse(`John Smith
EXPERIENCE
• Did some work
• Did more work`)

	section := doc.SectionByType(types.SectionExperience)
	require.NotNil(t, section)
	require.Len(t, section.Experience, 1)

	entry := section.Experience[0]
	assert.Equal(t, "Position", entry.Title)
	assert.Equal(t, "Company", entry.Company)
	assert.Equal(t, []string{"Did some work", "Did more work"}, entry.Responsibilities)
}

func TestParse_UnrecognizedHeadingBecomesOtherSection(t *testing.T) {
	doc := Parse(`John Smith
EXPERIENCE
Staff Engineer at Initech
HOBBIES
Chess
Woodworking`)

	var other *types.Section
	for i := range doc.Sections {
		if doc.Sections[i].Type == types.SectionOther {
			other = &doc.Sections[i]
		}
	}
	require.NotNil(t, other)
	assert.Equal(t, "Hobbies", other.Title)
	assert.Equal(t, []string{"Chess", "Woodworking"}, other.Items)
}

func TestParse_LinkedInAndLocationDetected(t *testing.T) {
	doc := Parse(`Jane Doe
Portland, OR
linkedin.com/in/janedoe
EXPERIENCE
Software Engineer at Acme Corp`)

	assert.Equal(t, "Jane Doe", doc.Header.Name)
	assert.Equal(t, "Portland, OR", doc.Header.Location)
	assert.Equal(t, "linkedin.com/in/janedoe", doc.Header.LinkedInURL)
}

func TestParse_RawContentIsNormalized(t *testing.T) {
	doc := Parse("<p>Jane Doe</p>\r\n\r\n\r\n\r\nEXPERIENCE")
	assert.Equal(t, "Jane Doe\n\nEXPERIENCE", doc.RawContent)
}
