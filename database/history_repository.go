package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"ai-text-toolkit/models"
)

// HistoryRepository persists analysis run records in PostgreSQL.
type HistoryRepository struct {
	db *sql.DB
}

// NewHistoryRepository creates a history repository
func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// SaveRun inserts one analysis record
func (r *HistoryRepository) SaveRun(ctx context.Context, record *models.AnalysisRecord) error {
	var percentages []byte
	if record.Percentages != nil {
		data, err := json.Marshal(record.Percentages)
		if err != nil {
			return fmt.Errorf("failed to serialize percentages: %w", err)
		}
		percentages = data
	}

	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	const query = `
		INSERT INTO analysis_runs
			(id, tool, input_words, input_sentences, output_words, output_sentences, percentages, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		record.ID,
		record.Tool,
		record.InputWords,
		record.InputSentences,
		record.OutputWords,
		record.OutputSentences,
		percentages,
		createdAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert analysis run: %w", err)
	}
	return nil
}

// ListRuns returns history entries, newest first
func (r *HistoryRepository) ListRuns(ctx context.Context, pagination *models.Pagination) ([]models.AnalysisRecord, error) {
	page := 1
	pageSize := 20
	if pagination != nil {
		if pagination.Page > 0 {
			page = pagination.Page
		}
		if pagination.PageSize > 0 {
			pageSize = pagination.PageSize
		}
	}
	offset := (page - 1) * pageSize

	const query = `
		SELECT id, tool, input_words, input_sentences, output_words, output_sentences, percentages, created_at
		FROM analysis_runs
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query analysis runs: %w", err)
	}
	defer rows.Close()

	records := make([]models.AnalysisRecord, 0, pageSize)
	for rows.Next() {
		var record models.AnalysisRecord
		var percentages []byte

		if err := rows.Scan(
			&record.ID,
			&record.Tool,
			&record.InputWords,
			&record.InputSentences,
			&record.OutputWords,
			&record.OutputSentences,
			&percentages,
			&record.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan analysis run: %w", err)
		}

		if len(percentages) > 0 {
			if err := json.Unmarshal(percentages, &record.Percentages); err != nil {
				return nil, fmt.Errorf("failed to deserialize percentages: %w", err)
			}
		}

		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read analysis runs: %w", err)
	}

	return records, nil
}

// HealthCheck verifies database connectivity
func (r *HistoryRepository) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return r.db.PingContext(ctx)
}
