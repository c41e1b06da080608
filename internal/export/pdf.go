package export

import (
	"bytes"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-pdf/fpdf"
)

const (
	pdfMarginPt     = 54
	pdfLineHeightPt = 14

	// Positioned-HTML conversion constants: pixels of "left" per indent
	// character and pixels of "top" per output line.
	pxPerIndentChar = 6
	pxPerLine       = 18
)

// exportPDF paginates content into a US Letter PDF. Title and header lines
// get bold sizing; everything else renders at 10pt with automatic line
// wrapping and page breaks.
func exportPDF(content string, isHTML bool) ([]byte, error) {
	lines := strings.Split(content, "\n")
	if isHTML {
		lines = htmlToLines(content)
	}

	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(pdfMarginPt, pdfMarginPt, pdfMarginPt)
	pdf.SetAutoPageBreak(true, pdfMarginPt)
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()
	contentWidth := pageWidth - 2*pdfMarginPt

	titleSeen := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			pdf.Ln(pdfLineHeightPt)
			continue
		}

		switch {
		case !titleSeen && len(trimmed) < 60:
			titleSeen = true
			pdf.SetFont("Helvetica", "B", 16)
			pdf.MultiCell(contentWidth, pdfLineHeightPt+4, trimmed, "", "L", false)
		case isHeaderLine(trimmed):
			pdf.SetFont("Helvetica", "B", 12)
			pdf.MultiCell(contentWidth, pdfLineHeightPt+2, trimmed, "", "L", false)
		default:
			titleSeen = true
			pdf.SetFont("Helvetica", "", 10)
			indent := float64(countLeadingSpaces(line)) * 4
			if indent > 0 {
				pdf.SetX(pdfMarginPt + indent)
			}
			pdf.MultiCell(contentWidth-indent, pdfLineHeightPt, trimmed, "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var (
	leftPxPattern = regexp.MustCompile(`left:\s*(\d+)px`)
	topPxPattern  = regexp.MustCompile(`top:\s*(\d+)px`)
)

type positionedLine struct {
	top  int
	left int
	text string
}

// htmlToLines flattens HTML to plain lines. Absolutely positioned blocks are
// ordered by their pixel "top" value, with vertical gaps converted to blank
// lines and "left" offsets converted to leading spaces. Flow-layout HTML
// falls back to plain text extraction.
func htmlToLines(html string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.Split(extractText(html), "\n")
	}

	positioned := []positionedLine{}
	doc.Find("[style]").Each(func(_ int, sel *goquery.Selection) {
		style, _ := sel.Attr("style")
		topMatch := topPxPattern.FindStringSubmatch(style)
		if topMatch == nil {
			return
		}
		top, _ := strconv.Atoi(topMatch[1])
		left := 0
		if m := leftPxPattern.FindStringSubmatch(style); m != nil {
			left, _ = strconv.Atoi(m[1])
		}
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return
		}
		positioned = append(positioned, positionedLine{top: top, left: left, text: text})
	})

	if len(positioned) == 0 {
		return strings.Split(extractText(html), "\n")
	}

	sort.SliceStable(positioned, func(i, j int) bool {
		return positioned[i].top < positioned[j].top
	})

	lines := []string{}
	prevTop := positioned[0].top
	for i, p := range positioned {
		if i > 0 {
			gap := (p.top - prevTop) / pxPerLine
			for n := 1; n < gap; n++ {
				lines = append(lines, "")
			}
		}
		indent := strings.Repeat(" ", p.left/pxPerIndentChar)
		lines = append(lines, indent+p.text)
		prevTop = p.top
	}
	return lines
}

func countLeadingSpaces(line string) int {
	count := 0
	for _, r := range line {
		switch r {
		case ' ':
			count++
		case '\t':
			count += 4
		default:
			return count
		}
	}
	return count
}
