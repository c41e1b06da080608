package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jmateo/resume-optimizer/internal/comparison"
	"github.com/jmateo/resume-optimizer/internal/export"
	"github.com/jmateo/resume-optimizer/internal/fingerprint"
	"github.com/jmateo/resume-optimizer/internal/history"
	"github.com/jmateo/resume-optimizer/internal/normalize"
	"github.com/jmateo/resume-optimizer/internal/parsing"
	"github.com/jmateo/resume-optimizer/internal/progressive"
	"github.com/jmateo/resume-optimizer/internal/types"
)

// handleParse parses raw resume text into its structured form.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req types.ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	doc := parsing.Parse(req.Content)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"resume":       doc,
		"content_hash": fingerprint.Hash(doc.RawContent),
	})
}

// handleCompare diffs two versions of resume content.
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req types.CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	result := comparison.Compare(
		normalize.Normalize(req.Original),
		normalize.Normalize(req.Modified),
	)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"comparison":              result,
		"has_significant_changes": result.HasSignificantChanges(),
	})
}

// handleAnalyze runs a progressive analysis round: suggestion generation and
// the history lookup run concurrently, then the engine merges them.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	content := normalize.Normalize(req.Content)
	contentHash := fingerprint.Hash(content)

	var (
		records  []types.EnhancementRecord
		fresh    []types.Suggestion
		atsScore int
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		if s.store == nil {
			return nil
		}
		var err error
		records, err = s.store.GetEnhancementHistory(ctx, req.UserID, contentHash)
		if err != nil {
			return fmt.Errorf("history lookup: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if s.suggester == nil {
			return nil
		}
		set, err := s.suggester.Generate(ctx, content, req.Industry, req.JobDescription)
		if err != nil {
			return fmt.Errorf("suggestion generation: %w", err)
		}
		fresh = set.Suggestions
		atsScore = set.ATSScore
		return nil
	})
	if err := g.Wait(); err != nil {
		log.Printf("Analysis failed: %v", err)
		s.errorResponse(w, http.StatusBadGateway, err.Error())
		return
	}

	analysis := progressive.Analyze(fresh, records)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"analysis_id":  uuid.NewString(),
		"content_hash": contentHash,
		"ats_score":    atsScore,
		"analysis":     analysis,
	})
}

// handleExport renders content in the requested format and returns it as a
// file attachment.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var req types.ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := export.Export(req.Content, req.Format, req.IsHTML)
	if err != nil {
		var unsupported *export.UnsupportedFormatError
		if errors.As(err, &unsupported) {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	name := export.DownloadName(req.FileName, result.Extension)
	w.Header().Set("Content-Type", result.MIMEType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Data); err != nil {
		log.Printf("Error writing export response: %v", err)
	}
}

// handleGetEnhancements lists the enhancement ledger for a user and content
// hash, in ascending round order.
func (s *Server) handleGetEnhancements(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "persistence not configured")
		return
	}

	userID := r.PathValue("id")
	contentHash := r.URL.Query().Get("content_hash")
	if contentHash == "" {
		s.errorResponse(w, http.StatusBadRequest, "content_hash query parameter is required")
		return
	}

	records, err := s.store.GetEnhancementHistory(r.Context(), userID, contentHash)
	if err != nil {
		log.Printf("Error fetching enhancement history: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to fetch enhancement history")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"user_id":      userID,
		"content_hash": contentHash,
		"records":      records,
	})
}

// handleSaveEnhancement appends one enhancement round to the ledger.
func (s *Server) handleSaveEnhancement(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "persistence not configured")
		return
	}

	var req types.SaveEnhancementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := s.store.SaveEnhancementHistory(r.Context(), history.SaveParams{
		UserID:              r.PathValue("id"),
		OriginalContent:     req.OriginalContent,
		EnhancedContent:     req.EnhancedContent,
		AnalysisID:          req.AnalysisID,
		AppliedImprovements: req.AppliedImprovements,
		ImprovementRound:    req.ImprovementRound,
	})
	if err != nil {
		log.Printf("Error saving enhancement record: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to save enhancement record")
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id.String()})
}
