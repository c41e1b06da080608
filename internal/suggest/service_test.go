package suggest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmateo/resume-optimizer/internal/types"
)

type fakeClient struct {
	response string
	err      error
	prompt   string
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.response, f.err
}

func (f *fakeClient) Close() error { return nil }

const validResponse = `{
	"suggestions": [
		{
			"priority": "high",
			"issue": "Missing metrics",
			"suggestion": "Add quantifiable outcomes",
			"section": "experience",
			"reasoning": "Numbers make impact concrete"
		}
	],
	"ats_score": 68
}`

func TestGenerate_ValidResponse(t *testing.T) {
	client := &fakeClient{response: validResponse}
	service := NewService(client)

	set, err := service.Generate(context.Background(), "Jane Doe\nEXPERIENCE", "technology", "")

	require.NoError(t, err)
	require.Len(t, set.Suggestions, 1)
	assert.Equal(t, types.PriorityHigh, set.Suggestions[0].Priority)
	assert.Equal(t, "Missing metrics", set.Suggestions[0].Issue)
	assert.Equal(t, 68, set.ATSScore)
}

func TestGenerate_PromptCarriesContext(t *testing.T) {
	client := &fakeClient{response: validResponse}
	service := NewService(client)

	_, err := service.Generate(context.Background(), "resume body text", "finance", "job posting text")

	require.NoError(t, err)
	assert.Contains(t, client.prompt, "resume body text")
	assert.Contains(t, client.prompt, "finance")
	assert.Contains(t, client.prompt, "job posting text")
	assert.NotContains(t, client.prompt, "{{.ResumeText}}")
}

func TestGenerate_EmptyIndustryDefaultsToGeneral(t *testing.T) {
	client := &fakeClient{response: validResponse}
	service := NewService(client)

	_, err := service.Generate(context.Background(), "resume", "  ", "")

	require.NoError(t, err)
	assert.Contains(t, client.prompt, "general")
}

func TestGenerate_APIFailure(t *testing.T) {
	client := &fakeClient{err: errors.New("quota exceeded")}
	service := NewService(client)

	_, err := service.Generate(context.Background(), "resume", "technology", "")

	var apiErr *APICallError
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestGenerate_SchemaViolationRejected(t *testing.T) {
	client := &fakeClient{response: `{"suggestions": [{"priority": "urgent", "issue": "x", "suggestion": "y"}], "ats_score": 50}`}
	service := NewService(client)

	_, err := service.Generate(context.Background(), "resume", "technology", "")

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestGenerate_MalformedJSONRejected(t *testing.T) {
	client := &fakeClient{response: "not json at all"}
	service := NewService(client)

	_, err := service.Generate(context.Background(), "resume", "technology", "")

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestGenerate_ScoreClampedToRange(t *testing.T) {
	client := &fakeClient{response: `{"suggestions": [], "ats_score": 100}`}
	service := NewService(client)

	set, err := service.Generate(context.Background(), "resume", "", "")
	require.NoError(t, err)
	assert.Equal(t, 100, set.ATSScore)
	assert.NotNil(t, set.Suggestions)
}

func TestGenerate_DefaultPriorityApplied(t *testing.T) {
	client := &fakeClient{response: `{
		"suggestions": [{"priority": "low", "issue": "a", "suggestion": "b"}],
		"ats_score": 10
	}`}
	service := NewService(client)

	set, err := service.Generate(context.Background(), "resume", "", "")
	require.NoError(t, err)
	assert.Equal(t, types.PriorityLow, set.Suggestions[0].Priority)
}

func TestCleanJSONBlock(t *testing.T) {
	assert.Equal(t, `{"a":1}`, cleanJSONBlock("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, cleanJSONBlock(`{"a":1}`))
}
