package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_EmptyInput(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
}

func TestNormalize_WhitespaceOnlyInput(t *testing.T) {
	assert.Equal(t, "", Normalize("   \n\t  \n  "))
}

func TestNormalize_StripsMarkupTags(t *testing.T) {
	result := Normalize("<p>Hello <b>world</b></p>")
	assert.Equal(t, "Hello world", result)
	assert.NotContains(t, result, "<")
	assert.NotContains(t, result, ">")
}

func TestNormalize_DecodesEntitiesAsSpaces(t *testing.T) {
	result := Normalize("Jane&nbsp;Doe&amp;Co")
	assert.Equal(t, "Jane Doe Co", result)
	assert.NotContains(t, result, "&")
}

func TestNormalize_UnifiesLineEndings(t *testing.T) {
	result := Normalize("line1\r\nline2\rline3")
	assert.Equal(t, "line1\nline2\nline3", result)
}

func TestNormalize_CollapsesExcessBlankLines(t *testing.T) {
	result := Normalize("para1\n\n\n\n\npara2")
	assert.Equal(t, "para1\n\npara2", result)
}

func TestNormalize_CollapsesBlankLinesWithTrailingSpaces(t *testing.T) {
	result := Normalize("para1\n  \n \n   \npara2")
	assert.Equal(t, "para1\n\npara2", result)
}

func TestNormalize_CollapsesSpaceRuns(t *testing.T) {
	result := Normalize("too    many\t\tspaces")
	assert.Equal(t, "too many spaces", result)
}

func TestNormalize_RemovesControlCharacters(t *testing.T) {
	result := Normalize("before\x00\x08after")
	assert.Equal(t, "before after", result)
}

func TestNormalize_TrimsEdges(t *testing.T) {
	result := Normalize("  \n content \n  ")
	assert.Equal(t, "content", result)
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"<div>markup &nbsp; and\r\nentities</div>",
		"a\n\n\n\nb\t\tc\x01d",
		"Jane Doe\nSenior Engineer\n\njane@example.com",
	}
	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		assert.Equal(t, once, twice, "normalize should be idempotent for %q", input)
	}
}

func TestNormalize_PreservesParagraphBreaks(t *testing.T) {
	result := Normalize("para1\n\npara2")
	assert.Equal(t, "para1\n\npara2", result)
}

func TestLines_DropsBlankLines(t *testing.T) {
	lines := Lines("a\n\nb\n   \nc")
	assert.Equal(t, []string{"a", "b", "c"}, lines)
}

func TestLines_EmptyContent(t *testing.T) {
	assert.Empty(t, Lines(""))
}
