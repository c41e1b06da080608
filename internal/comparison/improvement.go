package comparison

import (
	"regexp"
	"strings"
)

var (
	percentPattern = regexp.MustCompile(`\d+(\.\d+)?\s*%`)
	dollarPattern  = regexp.MustCompile(`\$[\d,]+(\.\d+)?`)
	scalePattern   = regexp.MustCompile(`(?i)\b\d+(\.\d+)?\s*(thousand|million|billion)\b`)
)

// actionVerbs are strong leading verbs that signal accomplishment-oriented
// phrasing.
var actionVerbs = []string{
	"achieved", "led", "managed", "developed", "implemented", "delivered",
	"launched", "spearheaded", "optimized", "streamlined", "increased",
	"reduced", "improved", "drove", "built", "designed", "established",
	"transformed", "accelerated", "generated",
}

// professionalVocabulary are terms that read as polished resume language.
var professionalVocabulary = []string{
	"strategic", "cross-functional", "stakeholder", "initiative", "scalable",
	"revenue", "efficiency", "collaboration", "leadership", "roi",
	"key performance", "best practice", "mentored", "roadmap",
}

// improvementScore counts quantification patterns, action verbs, and
// professional vocabulary hits on a single line.
func improvementScore(line string) int {
	score := len(percentPattern.FindAllString(line, -1)) +
		len(dollarPattern.FindAllString(line, -1)) +
		len(scalePattern.FindAllString(line, -1))

	lower := strings.ToLower(line)
	for _, verb := range actionVerbs {
		if strings.Contains(lower, verb) {
			score++
		}
	}
	for _, term := range professionalVocabulary {
		if strings.Contains(lower, term) {
			score++
		}
	}
	return score
}

// isImprovement reports whether the modified line scores strictly higher than
// the original and has not been shortened past 80% of the original length.
// Length is a crude guard against "improvements" that just delete content.
func isImprovement(original, modified string) bool {
	if improvementScore(modified) <= improvementScore(original) {
		return false
	}
	return len(modified)*10 >= len(original)*8
}

type categoryRule struct {
	Category string
	Keywords []string
}

// categoryRules is evaluated top to bottom; the first keyword hit wins.
// Quantification outranks the topical categories so a metrics-bearing
// experience bullet files under quantification, not experience.
var categoryRules = []categoryRule{
	{"quantification", []string{"%", "metric", "quantif", "measurable", "$", "kpi"}},
	{"keywords", []string{"keyword", "ats", "terminology", "industry term"}},
	{"action_verbs", []string{"action verb", "spearheaded", "drove", "championed"}},
	{"formatting", []string{"format", "layout", "spacing", "alignment", "font"}},
	{"contact_info", []string{"contact", "email", "phone", "linkedin"}},
	{"summary", []string{"summary", "objective", "profile", "about me"}},
	{"experience", []string{"experience", "work history", "job", "role", "position", "responsibilit", "managed", "led "}},
	{"education", []string{"education", "degree", "university", "college", "gpa"}},
	{"skills", []string{"skill", "competenc", "technolog", "proficien"}},
	{"achievements", []string{"achievement", "award", "accomplish", "honor", "recognition"}},
	{"certifications", []string{"certification", "certificate", "license", "credential"}},
	{"projects", []string{"project", "portfolio"}},
}

// Categorize maps free text to a fixed optimization category by keyword
// lookup, falling back to "general". The same table classifies modified
// resume lines and suggestion text, so comparison areas and analysis focus
// areas share one vocabulary.
func Categorize(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range categoryRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Category
			}
		}
	}
	return "general"
}
