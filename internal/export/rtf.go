package export

import (
	"strconv"
	"strings"
)

// rtfHeader declares RTF 1.x with the Windows-1252 charset, a two-font table
// (headings and body) and a two-color table (black text, gray rules).
const rtfHeader = `{\rtf1\ansi\ansicpg1252\deff0` +
	`{\fonttbl{\f0\fswiss\fcharset0 Helvetica;}{\f1\froman\fcharset0 Times New Roman;}}` +
	`{\colortbl;\red0\green0\blue0;\red128\green128\blue128;}`

// exportRTF renders content as an RTF document. HTML input is classified via
// its cv-* class markers; plain text goes through the line heuristics.
func exportRTF(content string, isHTML bool) ([]byte, error) {
	var (
		elements []element
		err      error
	)
	if isHTML {
		elements, err = elementsFromHTML(content)
		if err != nil {
			return nil, err
		}
	} else {
		elements = elementsFromText(content)
	}

	var doc strings.Builder
	doc.WriteString(rtfHeader)
	doc.WriteString("\n")

	for _, el := range elements {
		writeRTFElement(&doc, el)
	}

	doc.WriteString("}")
	return []byte(doc.String()), nil
}

func writeRTFElement(doc *strings.Builder, el element) {
	text := escapeRTF(el.Text)

	switch el.Kind {
	case elementTitle:
		doc.WriteString(`\pard\qc\f0\fs32\b ` + text + `\b0\par` + "\n")
	case elementHeader:
		doc.WriteString(`\pard\f0\fs28\b ` + text + `\b0\par` + "\n")
	case elementSubheader:
		doc.WriteString(`\pard\f0\fs24\b ` + text + `\b0\par` + "\n")
	case elementBullet:
		doc.WriteString(`\pard\li360\fi-180\f1\fs20 \bullet  ` + text + `\par` + "\n")
	case elementIndented:
		doc.WriteString(`\pard\li360\f1\fs20 ` + text + `\par` + "\n")
	case elementEmpty:
		doc.WriteString(`\pard\par` + "\n")
	default:
		doc.WriteString(`\pard\f1\fs20 ` + text + `\par` + "\n")
	}
}

// escapeRTF escapes the RTF control characters and encodes non-ASCII runes
// as signed 16-bit \uN? sequences with an ASCII fallback.
func escapeRTF(text string) string {
	var result strings.Builder
	result.Grow(len(text) * 2)

	for _, r := range text {
		switch {
		case r == '\\':
			result.WriteString(`\\`)
		case r == '{':
			result.WriteString(`\{`)
		case r == '}':
			result.WriteString(`\}`)
		case r > 127:
			// RTF \u takes a signed 16-bit value; "?" is the substitution
			// character for readers without Unicode support.
			result.WriteString(`\u`)
			result.WriteString(signed16(r))
			result.WriteString(`?`)
		default:
			result.WriteRune(r)
		}
	}
	return result.String()
}

func signed16(r rune) string {
	v := int64(r)
	if v > 32767 {
		v -= 65536
	}
	return strconv.FormatInt(v, 10)
}
