// Package types provides type definitions for structured data used throughout the resume-optimizer system.
package types

// Header holds the contact block extracted from the top of a resume.
// All fields are optional strings; Name is synthesized with a placeholder
// when detection fails so downstream renderers never see an empty header.
type Header struct {
	Name        string `json:"name"`
	Title       string `json:"title,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Location    string `json:"location,omitempty"`
	LinkedInURL string `json:"linkedin_url,omitempty"`
}

// SectionType tags the payload shape of a resume section.
type SectionType string

// Known section types. Unrecognized headings are stored as SectionOther.
const (
	SectionSummary        SectionType = "summary"
	SectionExperience     SectionType = "experience"
	SectionEducation      SectionType = "education"
	SectionSkills         SectionType = "skills"
	SectionCertifications SectionType = "certifications"
	SectionProjects       SectionType = "projects"
	SectionAwards         SectionType = "awards"
	SectionLanguages      SectionType = "languages"
	SectionVolunteer      SectionType = "volunteer"
	SectionPublications   SectionType = "publications"
	SectionOther          SectionType = "other"
)

// Section is one typed segment of a resume. Exactly one payload field is
// populated depending on Type: Summary for summary sections, Experience for
// experience, Education for education, Items for skills and generic sections.
type Section struct {
	Type       SectionType       `json:"type"`
	Title      string            `json:"title"`
	Summary    string            `json:"summary,omitempty"`
	Experience []ExperienceEntry `json:"experience,omitempty"`
	Education  []EducationEntry  `json:"education,omitempty"`
	Items      []string          `json:"items,omitempty"`
}

// ExperienceEntry is a single job within an experience section.
// Dates is a free-form string and is never parsed into start/end.
type ExperienceEntry struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Location         string   `json:"location,omitempty"`
	Dates            string   `json:"dates,omitempty"`
	Responsibilities []string `json:"responsibilities"`
}

// EducationEntry is a single degree within an education section.
type EducationEntry struct {
	ID          string   `json:"id"`
	Degree      string   `json:"degree"`
	Institution string   `json:"institution"`
	Location    string   `json:"location,omitempty"`
	Dates       string   `json:"dates,omitempty"`
	Details     []string `json:"details"`
}

// StructuredResume is the parsed document model. Section order matches the
// order sections appeared in the source; RawContent keeps the normalized
// input for round-tripping and hashing.
type StructuredResume struct {
	Header     Header    `json:"header"`
	Sections   []Section `json:"sections"`
	RawContent string    `json:"raw_content"`
}

// SectionByType returns the first section with the given type, or nil.
func (r *StructuredResume) SectionByType(t SectionType) *Section {
	for i := range r.Sections {
		if r.Sections[i].Type == t {
			return &r.Sections[i]
		}
	}
	return nil
}
