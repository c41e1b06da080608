// Package normalize cleans raw resume input into plain text suitable for
// hashing, parsing and comparison: markup and entities are stripped, line
// endings unified, whitespace collapsed and control characters removed.
package normalize

import (
	"regexp"
	"strings"
)

var (
	tagPattern          = regexp.MustCompile(`<[^>]*>`)
	entityPattern       = regexp.MustCompile(`&#?[a-zA-Z0-9]{1,10};`)
	spaceRunPattern     = regexp.MustCompile(`[ \t]+`)
	newlineSpacePattern = regexp.MustCompile(`[ \t]*\n[ \t]*`)
	blankRunPattern     = regexp.MustCompile(`\n{3,}`)
)

// Normalize converts raw content to its canonical plain-text form. The result
// contains no markup tags, no HTML entities, no control characters other than
// newlines, no runs of spaces or tabs, and at most one blank line between
// paragraphs. Normalize never fails and is idempotent; empty or
// whitespace-only input yields the empty string.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	s := tagPattern.ReplaceAllString(raw, " ")
	s = entityPattern.ReplaceAllString(s, " ")

	// Unify line endings before any newline-aware collapsing.
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	s = stripControl(s)
	s = spaceRunPattern.ReplaceAllString(s, " ")
	s = newlineSpacePattern.ReplaceAllString(s, "\n")
	s = blankRunPattern.ReplaceAllString(s, "\n\n")

	return strings.TrimSpace(s)
}

// Lines splits normalized content into trimmed, non-blank lines.
func Lines(content string) []string {
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

// stripControl replaces C0/C1 control characters (except newline) with spaces.
func stripControl(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '\n' {
			b.WriteRune(r)
			continue
		}
		if r < 0x20 || r == 0x7f || (r >= 0x80 && r <= 0x9f) {
			b.WriteByte(' ')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
