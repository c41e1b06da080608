// Package history persists the append-only enhancement ledger: one record
// per enhancement round, keyed by user and the fingerprint of the original
// content.
package history

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jmateo/resume-optimizer/internal/comparison"
	"github.com/jmateo/resume-optimizer/internal/fingerprint"
	"github.com/jmateo/resume-optimizer/internal/normalize"
	"github.com/jmateo/resume-optimizer/internal/types"
)

// Store wraps a PostgreSQL connection pool
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the enhancement_history table if it does not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS enhancement_history (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id TEXT NOT NULL,
			content_hash TEXT NOT NULL,
			enhanced_content_hash TEXT,
			analysis_id TEXT NOT NULL,
			improvement_round INTEGER NOT NULL,
			applied_improvements JSONB NOT NULL DEFAULT '[]',
			content_changes JSONB,
			optimization_areas JSONB NOT NULL DEFAULT '[]',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_enhancement_history_user_content
			ON enhancement_history (user_id, content_hash, improvement_round);
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// GetEnhancementHistory returns every record for (user, contentHash) in
// ascending round order. Round gating in the analysis engine depends on this
// ordering, so it is enforced here rather than trusted to callers.
func (s *Store) GetEnhancementHistory(ctx context.Context, userID, contentHash string) ([]types.EnhancementRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, user_id, content_hash, enhanced_content_hash, analysis_id,
		        improvement_round, applied_improvements, content_changes,
		        optimization_areas, created_at
		 FROM enhancement_history
		 WHERE user_id = $1 AND content_hash = $2
		 ORDER BY improvement_round ASC`,
		userID, contentHash,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query enhancement history: %w", err)
	}
	defer rows.Close()

	records := []types.EnhancementRecord{}
	for rows.Next() {
		var (
			record          types.EnhancementRecord
			enhancedHash    *string
			appliedJSON     []byte
			changesJSON     []byte
			areasJSON       []byte
		)
		if err := rows.Scan(
			&record.ID, &record.UserID, &record.ContentHash, &enhancedHash,
			&record.AnalysisID, &record.ImprovementRound, &appliedJSON,
			&changesJSON, &areasJSON, &record.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan enhancement record: %w", err)
		}

		if enhancedHash != nil {
			record.EnhancedContentHash = *enhancedHash
		}
		if err := json.Unmarshal(appliedJSON, &record.AppliedImprovements); err != nil {
			return nil, fmt.Errorf("failed to decode applied improvements: %w", err)
		}
		if len(changesJSON) > 0 {
			record.ContentChanges = &types.ContentComparison{}
			if err := json.Unmarshal(changesJSON, record.ContentChanges); err != nil {
				return nil, fmt.Errorf("failed to decode content changes: %w", err)
			}
		}
		if err := json.Unmarshal(areasJSON, &record.OptimizationAreas); err != nil {
			return nil, fmt.Errorf("failed to decode optimization areas: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read enhancement history: %w", err)
	}
	return records, nil
}

// SaveParams carries one enhancement round to persist. Content hashes are
// computed here, not by the caller.
type SaveParams struct {
	UserID              string
	OriginalContent     string
	EnhancedContent     string
	AnalysisID          string
	AppliedImprovements []string
	ImprovementRound    int
}

// SaveEnhancementHistory appends a new record and returns its ID. When the
// round is unset it defaults to one past the existing record count for this
// content. When enhanced content is present, a comparison snapshot against
// the original is stored alongside the hashes.
func (s *Store) SaveEnhancementHistory(ctx context.Context, params SaveParams) (uuid.UUID, error) {
	originalNorm := normalize.Normalize(params.OriginalContent)
	contentHash := fingerprint.Hash(originalNorm)

	var enhancedHash *string
	var changes *types.ContentComparison
	areas := []string{}
	if params.EnhancedContent != "" {
		enhancedNorm := normalize.Normalize(params.EnhancedContent)
		h := fingerprint.Hash(enhancedNorm)
		enhancedHash = &h

		snapshot := comparison.Compare(originalNorm, enhancedNorm)
		changes = &snapshot
		areas = snapshot.ImprovementAreas
	}

	round := params.ImprovementRound
	if round < 1 {
		existing, err := s.countRecords(ctx, params.UserID, contentHash)
		if err != nil {
			return uuid.Nil, err
		}
		round = existing + 1
	}

	applied := params.AppliedImprovements
	if applied == nil {
		applied = []string{}
	}
	appliedJSON, err := json.Marshal(applied)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal applied improvements: %w", err)
	}
	areasJSON, err := json.Marshal(areas)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal optimization areas: %w", err)
	}
	var changesJSON []byte
	if changes != nil {
		changesJSON, err = json.Marshal(changes)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to marshal content changes: %w", err)
		}
	}

	var id uuid.UUID
	err = s.pool.QueryRow(ctx,
		`INSERT INTO enhancement_history
			(user_id, content_hash, enhanced_content_hash, analysis_id,
			 improvement_round, applied_improvements, content_changes, optimization_areas)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		params.UserID, contentHash, enhancedHash, params.AnalysisID,
		round, appliedJSON, changesJSON, areasJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save enhancement record: %w", err)
	}
	return id, nil
}

func (s *Store) countRecords(ctx context.Context, userID, contentHash string) (int, error) {
	var count int
	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM enhancement_history WHERE user_id = $1 AND content_hash = $2`,
		userID, contentHash,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count enhancement records: %w", err)
	}
	return count, nil
}
