package types

import "github.com/go-playground/validator/v10"

// ParseRequest is the request body for POST /parse.
type ParseRequest struct {
	Content string `json:"content" validate:"required"`
}

// CompareRequest is the request body for POST /compare.
type CompareRequest struct {
	Original string `json:"original" validate:"required"`
	Modified string `json:"modified" validate:"required"`
}

// AnalyzeRequest is the request body for POST /analyze.
type AnalyzeRequest struct {
	UserID         string `json:"user_id" validate:"required"`
	Content        string `json:"content" validate:"required"`
	Industry       string `json:"industry,omitempty"`
	JobDescription string `json:"job_description,omitempty"`
}

// ExportRequest is the request body for POST /export.
type ExportRequest struct {
	Content  string `json:"content" validate:"required"`
	FileName string `json:"file_name" validate:"required"`
	Format   string `json:"format" validate:"required,oneof=txt rtf pdf"`
	IsHTML   bool   `json:"is_html,omitempty"`
}

// SaveEnhancementRequest is the request body for POST /users/{id}/enhancements.
// ImprovementRound of zero means "next round for this content hash".
type SaveEnhancementRequest struct {
	OriginalContent     string   `json:"original_content" validate:"required"`
	EnhancedContent     string   `json:"enhanced_content,omitempty"`
	AnalysisID          string   `json:"analysis_id,omitempty"`
	AppliedImprovements []string `json:"applied_improvements"`
	ImprovementRound    int      `json:"improvement_round,omitempty" validate:"omitempty,min=1"`
}

// Validate validates the ParseRequest using the validator.
func (r *ParseRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CompareRequest using the validator.
func (r *CompareRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ExportRequest using the validator.
func (r *ExportRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the SaveEnhancementRequest using the validator.
func (r *SaveEnhancementRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
