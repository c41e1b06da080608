package export

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// elementKind classifies a document line for styled output.
type elementKind int

const (
	elementTitle elementKind = iota
	elementHeader
	elementSubheader
	elementBullet
	elementIndented
	elementText
	elementEmpty
)

// element is one renderable unit: a line of text with a display role. The RTF
// and PDF writers share this model and only differ in how they emit it.
type element struct {
	Kind elementKind
	Text string
}

var (
	marginLeftPattern = regexp.MustCompile(`margin-left:\s*(\d+)`)
	allCapsPattern    = regexp.MustCompile(`^[A-Z][A-Z0-9 .,&/\-]+$`)
)

// indentThresholdPx is the margin-left value past which a cv-text block is
// rendered as indented rather than flush text.
const indentThresholdPx = 10

// elementsFromHTML walks the class-annotated HTML produced by the editor and
// maps each block to an element. Blocks without a cv-* class fall back to the
// plain-text heuristics on their text content.
func elementsFromHTML(html string) ([]element, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	elements := []element{}
	doc.Find("body").Children().Each(func(_ int, sel *goquery.Selection) {
		elements = append(elements, classifyNode(sel)...)
	})

	// Bare HTML fragments have no element children under body; fall back to
	// the text heuristics over the extracted text.
	if len(elements) == 0 {
		return elementsFromText(extractText(html)), nil
	}
	return elements, nil
}

func classifyNode(sel *goquery.Selection) []element {
	text := strings.TrimSpace(sel.Text())
	if text == "" {
		return []element{{Kind: elementEmpty}}
	}

	switch {
	case sel.HasClass("cv-header"):
		return []element{{Kind: elementHeader, Text: text}}
	case sel.HasClass("cv-subheader"):
		return []element{{Kind: elementSubheader, Text: text}}
	case sel.HasClass("cv-bullet"), sel.HasClass("cv-numbered"):
		return []element{{Kind: elementBullet, Text: stripBulletGlyph(text)}}
	case sel.HasClass("cv-text"):
		if styleIndent(sel) >= indentThresholdPx {
			return []element{{Kind: elementIndented, Text: text}}
		}
		return []element{{Kind: elementText, Text: text}}
	default:
		return elementsFromText(text)
	}
}

// styleIndent reads a pixel margin-left out of an inline style attribute.
func styleIndent(sel *goquery.Selection) int {
	style, ok := sel.Attr("style")
	if !ok {
		return 0
	}
	m := marginLeftPattern.FindStringSubmatch(style)
	if m == nil {
		return 0
	}
	px, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return px
}

// elementsFromText classifies plain-text lines. The first short non-blank
// line is treated as the document title; after that, short ALL-CAPS lines are
// headers, bullet-prefixed lines are bullets, and leading whitespace marks an
// indented line.
func elementsFromText(text string) []element {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	elements := make([]element, 0, len(lines))
	titleSeen := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			elements = append(elements, element{Kind: elementEmpty})
		case !titleSeen && len(trimmed) < 60:
			titleSeen = true
			elements = append(elements, element{Kind: elementTitle, Text: trimmed})
		case isHeaderLine(trimmed):
			elements = append(elements, element{Kind: elementHeader, Text: trimmed})
		case hasBulletGlyph(trimmed):
			elements = append(elements, element{Kind: elementBullet, Text: stripBulletGlyph(trimmed)})
		case strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t"):
			elements = append(elements, element{Kind: elementIndented, Text: trimmed})
		default:
			titleSeen = true
			elements = append(elements, element{Kind: elementText, Text: trimmed})
		}
	}
	return elements
}

// isHeaderLine recognizes short ALL-CAPS lines and dashed separator labels.
func isHeaderLine(line string) bool {
	if len(line) >= 60 {
		return false
	}
	if strings.HasPrefix(line, "---") && strings.HasSuffix(line, "---") {
		return true
	}
	return allCapsPattern.MatchString(line) && strings.ContainsAny(line, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
}

func hasBulletGlyph(line string) bool {
	for _, glyph := range []string{"•", "- ", "* "} {
		if strings.HasPrefix(line, glyph) {
			return true
		}
	}
	return false
}

func stripBulletGlyph(line string) string {
	trimmed := strings.TrimSpace(line)
	for _, glyph := range []string{"•", "-", "*"} {
		if strings.HasPrefix(trimmed, glyph) {
			return strings.TrimSpace(strings.TrimPrefix(trimmed, glyph))
		}
	}
	return trimmed
}
