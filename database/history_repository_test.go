package database

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-text-toolkit/models"
)

// testPostgresService connects to the database named by the TEST_DB_*
// environment variables, skipping the test when none are set.
func testPostgresService(t *testing.T) *PostgresService {
	t.Helper()

	host := os.Getenv("TEST_DB_HOST")
	if host == "" {
		t.Skip("TEST_DB_HOST not set, skipping database integration test")
	}

	port := 5432
	if raw := os.Getenv("TEST_DB_PORT"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		require.NoError(t, err)
		port = parsed
	}

	service, err := NewPostgresService(&PostgresConfig{
		Host:     host,
		Port:     port,
		Database: os.Getenv("TEST_DB_NAME"),
		User:     os.Getenv("TEST_DB_USER"),
		Password: os.Getenv("TEST_DB_PASSWORD"),
		SSLMode:  "disable",
	})
	require.NoError(t, err)
	t.Cleanup(func() { service.Close() })

	return service
}

func TestHistoryRepository(t *testing.T) {
	service := testPostgresService(t)
	repo := NewHistoryRepository(service.DB())
	ctx := context.Background()

	t.Run("save and list round trip", func(t *testing.T) {
		record := &models.AnalysisRecord{
			ID:              uuid.New().String(),
			Tool:            models.ToolHumanize,
			InputWords:      100,
			InputSentences:  6,
			OutputWords:     104,
			OutputSentences: 6,
			CreatedAt:       time.Now().UTC(),
		}
		require.NoError(t, repo.SaveRun(ctx, record))

		records, err := repo.ListRuns(ctx, &models.Pagination{Page: 1, PageSize: 10})
		require.NoError(t, err)
		require.NotEmpty(t, records)
		assert.Equal(t, record.ID, records[0].ID)
	})

	t.Run("percentages survive serialization", func(t *testing.T) {
		record := &models.AnalysisRecord{
			ID:   uuid.New().String(),
			Tool: models.ToolDetect,
			Percentages: map[models.Label]float64{
				models.LabelHuman: 75,
				models.LabelAI:    25,
			},
			CreatedAt: time.Now().UTC(),
		}
		require.NoError(t, repo.SaveRun(ctx, record))

		records, err := repo.ListRuns(ctx, &models.Pagination{Page: 1, PageSize: 1})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.InDelta(t, 75, records[0].Percentages[models.LabelHuman], 0.001)
	})

	t.Run("health check", func(t *testing.T) {
		assert.NoError(t, repo.HealthCheck(ctx))
	})
}
