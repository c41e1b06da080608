package export

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport_TXTFromHTMLStripsMarkup(t *testing.T) {
	result, err := Export("<p>Hello</p>", FormatTXT, true)

	require.NoError(t, err)
	assert.Equal(t, "Hello", string(result.Data))
	assert.NotContains(t, string(result.Data), "<")
	assert.NotContains(t, string(result.Data), ">")
	assert.Equal(t, "txt", result.Extension)
}

func TestExport_TXTPlainTextPassesThrough(t *testing.T) {
	content := "Jane Doe\nSenior Engineer\n\nEXPERIENCE"
	result, err := Export(content, FormatTXT, false)

	require.NoError(t, err)
	assert.Equal(t, content, string(result.Data))
}

func TestExport_TXTPreservesLineBreaksFromHTML(t *testing.T) {
	result, err := Export("<p>Line one</p><p>Line two</p>", FormatTXT, true)

	require.NoError(t, err)
	assert.Equal(t, "Line one\nLine two", string(result.Data))
}

func TestExport_UnsupportedFormat(t *testing.T) {
	_, err := Export("content", "docx", false)

	var unsupported *UnsupportedFormatError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "docx", unsupported.Format)
}

func TestExport_RTFStructure(t *testing.T) {
	result, err := Export("Jane Doe\nEXPERIENCE\n• Built things", FormatRTF, false)

	require.NoError(t, err)
	rtf := string(result.Data)
	assert.True(t, strings.HasPrefix(rtf, `{\rtf1\ansi\ansicpg1252\deff0`))
	assert.True(t, strings.HasSuffix(rtf, "}"))
	assert.Contains(t, rtf, `\fonttbl`)
	assert.Contains(t, rtf, `\colortbl`)
	assert.Contains(t, rtf, `\fs32\b Jane Doe`)
	assert.Contains(t, rtf, `\fs28\b EXPERIENCE`)
	assert.Contains(t, rtf, `\bullet  Built things`)
	assert.Equal(t, "application/rtf", result.MIMEType)
}

func TestExport_RTFEscapesControlCharacters(t *testing.T) {
	result, err := Export(`path\to {file}`, FormatRTF, false)

	require.NoError(t, err)
	rtf := string(result.Data)
	assert.Contains(t, rtf, `path\\to \{file\}`)
}

func TestExport_RTFEncodesNonASCII(t *testing.T) {
	result, err := Export("Résumé", FormatRTF, false)

	require.NoError(t, err)
	// é is U+00E9 = 233.
	assert.Contains(t, string(result.Data), `R\u233?sum\u233?`)
}

func TestExport_RTFFromClassAnnotatedHTML(t *testing.T) {
	html := `<html><body>` +
		`<div class="cv-header">EXPERIENCE</div>` +
		`<div class="cv-subheader">Acme Corp</div>` +
		`<div class="cv-bullet">• Built things</div>` +
		`<div class="cv-text" style="margin-left: 20px">Detail line</div>` +
		`<div class="cv-text">Plain line</div>` +
		`</body></html>`

	result, err := Export(html, FormatRTF, true)

	require.NoError(t, err)
	rtf := string(result.Data)
	assert.Contains(t, rtf, `\fs28\b EXPERIENCE`)
	assert.Contains(t, rtf, `\fs24\b Acme Corp`)
	assert.Contains(t, rtf, `\bullet  Built things`)
	assert.Contains(t, rtf, `\li360\f1\fs20 Detail line`)
	assert.Contains(t, rtf, `\pard\f1\fs20 Plain line`)
}

func TestExport_PDFProducesValidHeader(t *testing.T) {
	result, err := Export("Jane Doe\nEXPERIENCE\nBuilt many things over the years", FormatPDF, false)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(result.Data), "%PDF"))
	assert.Equal(t, "application/pdf", result.MIMEType)
	assert.Equal(t, "pdf", result.Extension)
}

func TestExport_PDFFromPositionedHTML(t *testing.T) {
	html := `<html><body>` +
		`<div style="position:absolute; left: 0px; top: 0px">Jane Doe</div>` +
		`<div style="position:absolute; left: 0px; top: 54px">EXPERIENCE</div>` +
		`<div style="position:absolute; left: 24px; top: 72px">Built things</div>` +
		`</body></html>`

	result, err := Export(html, FormatPDF, true)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(result.Data), "%PDF"))
}

func TestExport_PDFHandlesLongContent(t *testing.T) {
	long := "Jane Doe\n" + strings.Repeat("A reasonably long responsibility line describing work done.\n", 200)
	result, err := Export(long, FormatPDF, false)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(result.Data), "%PDF"))
}

func TestDownloadName(t *testing.T) {
	assert.Equal(t, "optimized-resume.rtf", DownloadName("resume", "rtf"))
	assert.Equal(t, "optimized-resume.pdf", DownloadName("resume.docx", "pdf"))
	assert.Equal(t, "optimized-resume.txt", DownloadName("", "txt"))
	assert.Equal(t, "optimized-resume.txt", DownloadName(".hidden", "txt"))
}

func TestExportError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &ExportError{Format: "rtf", Message: "document generation", Cause: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "rtf export failed")
}

func TestElementsFromText_Classification(t *testing.T) {
	elements := elementsFromText("Jane Doe\nEXPERIENCE\n• Built things\n  indented detail\nplain line\n")

	require.Len(t, elements, 6)
	assert.Equal(t, element{Kind: elementTitle, Text: "Jane Doe"}, elements[0])
	assert.Equal(t, element{Kind: elementHeader, Text: "EXPERIENCE"}, elements[1])
	assert.Equal(t, element{Kind: elementBullet, Text: "Built things"}, elements[2])
	assert.Equal(t, element{Kind: elementIndented, Text: "indented detail"}, elements[3])
	assert.Equal(t, element{Kind: elementText, Text: "plain line"}, elements[4])
	assert.Equal(t, elementEmpty, elements[5].Kind)
}
