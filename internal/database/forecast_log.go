package database

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ForecastLogEntry is one audit row per forecast call. It records what ran
// and how it went; request and response payloads themselves are never
// persisted.
type ForecastLogEntry struct {
	ID           int64     `json:"id" db:"id"`
	RequestID    string    `json:"request_id" db:"request_id"`
	Model        string    `json:"model" db:"model"`
	Horizon      int       `json:"horizon" db:"horizon"`
	HistoryCount int       `json:"history_count" db:"history_count"`
	DurationMs   int64     `json:"duration_ms" db:"duration_ms"`
	Status       string    `json:"status" db:"status"`
	ErrorDetail  string    `json:"error_detail,omitempty" db:"error_detail"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// DatabasePool defines the interface for database pool operations.
// This interface allows for both real pool and mock pool implementations.
type DatabasePool interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
}

// ForecastLogRepository handles database operations for the forecast audit
// log.
type ForecastLogRepository struct {
	pool DatabasePool
}

// NewForecastLogRepository creates a new forecast log repository.
func NewForecastLogRepository(pool DatabasePool) *ForecastLogRepository {
	return &ForecastLogRepository{pool: pool}
}

// Record inserts one audit row and returns its identifier.
func (r *ForecastLogRepository) Record(ctx context.Context, entry *ForecastLogEntry) (int64, error) {
	query := `
		INSERT INTO forecast_log (request_id, model, horizon, history_count, duration_ms, status, error_detail)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id int64
	err := r.pool.QueryRow(ctx, query,
		entry.RequestID,
		entry.Model,
		entry.Horizon,
		entry.HistoryCount,
		entry.DurationMs,
		entry.Status,
		entry.ErrorDetail,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Recent returns the most recent audit rows, newest first.
func (r *ForecastLogRepository) Recent(ctx context.Context, limit int) ([]ForecastLogEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT id, request_id, model, horizon, history_count, duration_ms, status, error_detail, created_at
		FROM forecast_log
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []ForecastLogEntry
	for rows.Next() {
		var e ForecastLogEntry
		if err := rows.Scan(&e.ID, &e.RequestID, &e.Model, &e.Horizon, &e.HistoryCount, &e.DurationMs, &e.Status, &e.ErrorDetail, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Cleanup deletes audit rows older than the retention window and returns the
// number of rows removed.
func (r *ForecastLogRepository) Cleanup(ctx context.Context, retention time.Duration) (int64, error) {
	query := `DELETE FROM forecast_log WHERE created_at < $1`
	tag, err := r.pool.Exec(ctx, query, time.Now().Add(-retention))
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
