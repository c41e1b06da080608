package suggest

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/jmateo/resume-optimizer/internal/prompts"
	"github.com/jmateo/resume-optimizer/internal/schemas"
	"github.com/jmateo/resume-optimizer/internal/types"
)

const promptFile = "suggest.json"

// Service turns resume text plus targeting context into a validated
// suggestion set.
type Service struct {
	client Client
}

// NewService wraps an LLM client.
func NewService(client Client) *Service {
	return &Service{client: client}
}

// Close releases the underlying client.
func (s *Service) Close() error {
	return s.client.Close()
}

// Generate asks the provider for improvement suggestions and validates the
// response against the suggestion-set schema before decoding it.
func (s *Service) Generate(ctx context.Context, resumeText, industry, jobDescription string) (*types.SuggestionSet, error) {
	system, err := prompts.Get(promptFile, "system")
	if err != nil {
		return nil, &APICallError{Message: "loading system prompt", Cause: err}
	}
	template, err := prompts.Get(promptFile, "analyze_resume")
	if err != nil {
		return nil, &APICallError{Message: "loading analysis prompt", Cause: err}
	}

	prompt := system + "\n\n" + prompts.Format(template, map[string]string{
		"ResumeText":     resumeText,
		"Industry":       defaultIfEmpty(industry, "general"),
		"JobDescription": jobDescription,
	})

	raw, err := s.client.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, &APICallError{Message: "generating suggestions", Cause: err}
	}

	if err := schemas.ValidateSuggestionSet(raw); err != nil {
		log.Printf("Suggestion response failed schema validation: %v", err)
		return nil, &ParseError{Message: "schema validation", Cause: err}
	}

	var payload struct {
		Suggestions []types.Suggestion `json:"suggestions"`
		ATSScore    float64            `json:"ats_score"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, &ParseError{Message: "decoding suggestion payload", Cause: err}
	}

	set := &types.SuggestionSet{
		Suggestions: payload.Suggestions,
		ATSScore:    clampScore(payload.ATSScore),
	}
	if set.Suggestions == nil {
		set.Suggestions = []types.Suggestion{}
	}
	for i := range set.Suggestions {
		if set.Suggestions[i].Priority == "" {
			set.Suggestions[i].Priority = types.PriorityMedium
		}
	}
	return set, nil
}

func clampScore(score float64) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return int(score)
}

func defaultIfEmpty(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
