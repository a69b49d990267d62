package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/othello"
	"github.com/lk16/reversi/internal/services"
)

const (
	resultStatsKey     = "match_stats"
	defaultResultLimit = 50
	maxResultLimit     = 500

	fieldGames        = "games"
	fieldBlackWins    = "black_wins"
	fieldWhiteWins    = "white_wins"
	fieldDraws        = "draws"
	fieldDoublePasses = "double_passes"
)

// ErrStorageDisabled is returned when the server runs without Postgres and Redis.
var ErrStorageDisabled = errors.New("result storage is disabled")

const createResultsTable = `
	CREATE TABLE IF NOT EXISTS match_results (
		id          UUID PRIMARY KEY,
		black       INTEGER NOT NULL,
		white       INTEGER NOT NULL,
		winner      TEXT NOT NULL,
		double_pass BOOLEAN NOT NULL,
		finished_at TIMESTAMPTZ NOT NULL
	)
`

// ResultRepository archives results of finished matches in Postgres and keeps
// counters in a Redis hash.
type ResultRepository struct {
	services *services.Services
}

// NewResultRepository creates a ResultRepository from the services in the fiber context.
func NewResultRepository(c *fiber.Ctx) *ResultRepository {
	services := c.Locals("services").(*services.Services) //nolint: errcheck

	return &ResultRepository{
		services: services,
	}
}

// NewResultRepositoryFromServices creates a ResultRepository.
func NewResultRepositoryFromServices(services *services.Services) *ResultRepository {
	return &ResultRepository{
		services: services,
	}
}

// EnsureSchema creates the results table if it doesn't exist.
func (repo *ResultRepository) EnsureSchema(ctx context.Context) error {
	if !repo.services.Enabled() {
		return ErrStorageDisabled
	}

	if _, err := repo.services.Postgres.ExecContext(ctx, createResultsTable); err != nil {
		return fmt.Errorf("error creating results table: %w", err)
	}

	return nil
}

// RecordResult stores the result of a finished match. Recording the same match
// twice has no effect.
func (repo *ResultRepository) RecordResult(ctx context.Context, id uuid.UUID, result othello.Result) error {
	if !repo.services.Enabled() {
		return ErrStorageDisabled
	}

	record := newResultRecord(id, result, time.Now())

	query := `
		INSERT INTO match_results (id, black, white, winner, double_pass, finished_at)
		VALUES (:id, :black, :white, :winner, :double_pass, :finished_at)
		ON CONFLICT (id) DO NOTHING
	`

	res, err := repo.services.Postgres.NamedExecContext(ctx, query, record)
	if err != nil {
		return fmt.Errorf("error inserting result: %w", err)
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading inserted rows: %w", err)
	}

	if inserted == 0 {
		return nil
	}

	pipe := repo.services.Redis.Pipeline()
	for _, field := range statsFields(result) {
		pipe.HIncrBy(ctx, resultStatsKey, field, 1)
	}

	if _, err = pipe.Exec(ctx); err != nil {
		return fmt.Errorf("error updating Redis stats: %w", err)
	}

	return nil
}

// ListResults returns the most recent results, newest first.
func (repo *ResultRepository) ListResults(ctx context.Context, limit int) ([]models.ResultRecord, error) {
	if !repo.services.Enabled() {
		return nil, ErrStorageDisabled
	}

	query := `
		SELECT id, black, white, winner, double_pass, finished_at
		FROM match_results
		ORDER BY finished_at DESC
		LIMIT $1
	`

	records := make([]models.ResultRecord, 0)
	if err := repo.services.Postgres.SelectContext(ctx, &records, query, clampLimit(limit)); err != nil {
		return nil, fmt.Errorf("error listing results: %w", err)
	}

	return records, nil
}

// GetStats returns the result counters. They are rebuilt from Postgres when
// the Redis hash is missing.
func (repo *ResultRepository) GetStats(ctx context.Context) (models.ResultStats, error) {
	if !repo.services.Enabled() {
		return models.ResultStats{}, ErrStorageDisabled
	}

	redisConn := repo.services.Redis

	stats, err := redisConn.HGetAll(ctx, resultStatsKey).Result()
	if err != nil {
		return models.ResultStats{}, fmt.Errorf("error getting stats from Redis: %w", err)
	}

	if len(stats) == 0 {
		if err = repo.buildInitialStats(ctx); err != nil {
			return models.ResultStats{}, fmt.Errorf("error building initial stats: %w", err)
		}

		stats, err = redisConn.HGetAll(ctx, resultStatsKey).Result()
		if err != nil {
			return models.ResultStats{}, fmt.Errorf("error getting stats from Redis after build: %w", err)
		}
	}

	return parseStats(stats)
}

func (repo *ResultRepository) buildInitialStats(ctx context.Context) error {
	query := `
		SELECT
			count(*) AS games,
			count(*) FILTER (WHERE winner = 'black') AS black_wins,
			count(*) FILTER (WHERE winner = 'white') AS white_wins,
			count(*) FILTER (WHERE winner = 'draw') AS draws,
			count(*) FILTER (WHERE double_pass) AS double_passes
		FROM match_results
	`

	var row struct {
		Games        int `db:"games"`
		BlackWins    int `db:"black_wins"`
		WhiteWins    int `db:"white_wins"`
		Draws        int `db:"draws"`
		DoublePasses int `db:"double_passes"`
	}

	if err := repo.services.Postgres.GetContext(ctx, &row, query); err != nil {
		return fmt.Errorf("error loading result stats: %w", err)
	}

	values := map[string]interface{}{
		fieldGames:        row.Games,
		fieldBlackWins:    row.BlackWins,
		fieldWhiteWins:    row.WhiteWins,
		fieldDraws:        row.Draws,
		fieldDoublePasses: row.DoublePasses,
	}

	if err := repo.services.Redis.HSet(ctx, resultStatsKey, values).Err(); err != nil {
		return fmt.Errorf("error storing result stats in Redis: %w", err)
	}

	return nil
}

func newResultRecord(id uuid.UUID, result othello.Result, finishedAt time.Time) models.ResultRecord {
	matchResult := models.NewMatchResult(result)

	return models.ResultRecord{
		ID:         id,
		Black:      result.Black,
		White:      result.White,
		Winner:     matchResult.Winner,
		DoublePass: result.DoublePass,
		FinishedAt: finishedAt,
	}
}

// statsFields returns the counters a result increments.
func statsFields(result othello.Result) []string {
	fields := []string{fieldGames}

	switch {
	case result.Draw:
		fields = append(fields, fieldDraws)
	case result.Winner == othello.Black:
		fields = append(fields, fieldBlackWins)
	default:
		fields = append(fields, fieldWhiteWins)
	}

	if result.DoublePass {
		fields = append(fields, fieldDoublePasses)
	}

	return fields
}

func parseStats(values map[string]string) (models.ResultStats, error) {
	var stats models.ResultStats

	targets := map[string]*int{
		fieldGames:        &stats.Games,
		fieldBlackWins:    &stats.BlackWins,
		fieldWhiteWins:    &stats.WhiteWins,
		fieldDraws:        &stats.Draws,
		fieldDoublePasses: &stats.DoublePasses,
	}

	for key, value := range values {
		target, ok := targets[key]
		if !ok {
			continue
		}

		count, err := strconv.Atoi(value)
		if err != nil {
			return models.ResultStats{}, fmt.Errorf("error parsing stats value %s: %w", key, err)
		}
		*target = count
	}

	return stats, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultResultLimit
	}
	return min(limit, maxResultLimit)
}
