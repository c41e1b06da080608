package types

import (
	"time"

	"github.com/google/uuid"
)

// Priority ranks how urgent a suggestion is.
type Priority string

// Suggestion priorities.
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Suggestion is a single improvement recommendation. Issue and Suggestion are
// always present; Section/Original/Improved/Reasoning are populated when the
// suggestion came from the external suggestion source.
type Suggestion struct {
	Priority   Priority `json:"priority"`
	Issue      string   `json:"issue"`
	Suggestion string   `json:"suggestion"`
	Section    string   `json:"section,omitempty"`
	Original   string   `json:"original,omitempty"`
	Improved   string   `json:"improved,omitempty"`
	Reasoning  string   `json:"reasoning,omitempty"`
}

// SuggestionSet is the payload returned by the external suggestion source.
type SuggestionSet struct {
	Suggestions []Suggestion `json:"suggestions"`
	ATSScore    int          `json:"ats_score"`
}

// EnhancementRecord is one append-only ledger entry describing which
// improvements were applied to a given resume fingerprint in one round.
// Records are never mutated after creation; a new round creates a new record.
type EnhancementRecord struct {
	ID                  uuid.UUID          `json:"id"`
	UserID              string             `json:"user_id"`
	ContentHash         string             `json:"content_hash"`
	EnhancedContentHash string             `json:"enhanced_content_hash,omitempty"`
	AnalysisID          string             `json:"analysis_id,omitempty"`
	ImprovementRound    int                `json:"improvement_round"`
	AppliedImprovements []string           `json:"applied_improvements"`
	ContentChanges      *ContentComparison `json:"content_changes,omitempty"`
	OptimizationAreas   []string           `json:"optimization_areas"`
	CreatedAt           time.Time          `json:"created_at"`
}

// ProgressiveAnalysis is the output of the progressive analysis engine.
type ProgressiveAnalysis struct {
	Improvements        []Suggestion `json:"improvements"`
	ImprovementRound    int          `json:"improvement_round"`
	PreviouslyAddressed []string     `json:"previously_addressed"`
	FocusAreas          []string     `json:"focus_areas"`
	IsProgressive       bool         `json:"is_progressive"`
}
