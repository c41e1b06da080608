package export

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	blockClosePattern = regexp.MustCompile(`(?i)</(p|div|li|h[1-6]|tr|section|article)>`)
	breakPattern      = regexp.MustCompile(`(?i)<br\s*/?>`)
)

// exportTXT renders content as plain text. HTML input is reduced to its text
// content with block boundaries kept as line breaks; plain text passes
// through verbatim.
func exportTXT(content string, isHTML bool) ([]byte, error) {
	if !isHTML {
		return []byte(content), nil
	}
	return []byte(extractText(content)), nil
}

// extractText strips markup from HTML while preserving line structure:
// closing block tags and <br> become newlines before the text content is
// pulled out.
func extractText(html string) string {
	withBreaks := breakPattern.ReplaceAllString(html, "\n")
	withBreaks = blockClosePattern.ReplaceAllString(withBreaks, "\n")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(withBreaks))
	if err != nil {
		// Unparseable markup degrades to a tag-stripping pass.
		return strings.TrimSpace(tagPattern.ReplaceAllString(withBreaks, ""))
	}

	text := doc.Text()
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	blankRun := 0
	for _, line := range lines {
		trimmed := strings.TrimRight(line, " \t")
		if strings.TrimSpace(trimmed) == "" {
			blankRun++
			if blankRun > 1 {
				continue
			}
			trimmed = ""
		} else {
			blankRun = 0
		}
		out = append(out, trimmed)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)
