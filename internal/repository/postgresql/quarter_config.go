package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/officetrack/officeday-backend-go/internal/domain/statistics"
	"github.com/officetrack/officeday-backend-go/internal/pkg/database"
)

// quarterConfigRepositoryImpl persists the quarter configuration in a
// single-row table:
//
//	CREATE TABLE quarter_configs (
//	    id         smallint PRIMARY KEY DEFAULT 1 CHECK (id = 1),
//	    q1         integer[] NOT NULL,
//	    q2         integer[] NOT NULL,
//	    q3         integer[] NOT NULL,
//	    q4         integer[] NOT NULL,
//	    updated_at timestamptz NOT NULL DEFAULT now()
//	);
type quarterConfigRepositoryImpl struct {
	db *database.DB
}

func NewQuarterConfigRepository(db *database.DB) statistics.QuarterConfigStore {
	return &quarterConfigRepositoryImpl{db: db}
}

// Get implements statistics.QuarterConfigStore. A missing row means the
// configuration was never customized, so the default mapping is returned.
func (r *quarterConfigRepositoryImpl) Get(ctx context.Context) (statistics.QuarterConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT q1, q2, q3, q4 FROM quarter_configs WHERE id = 1`

	var q1, q2, q3, q4 []int32
	err := q.QueryRow(ctx, query).Scan(&q1, &q2, &q3, &q4)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return statistics.DefaultQuarterConfig(), nil
		}
		return statistics.QuarterConfig{}, fmt.Errorf("failed to load quarter config: %w", err)
	}

	return statistics.QuarterConfig{
		Q1: toInts(q1),
		Q2: toInts(q2),
		Q3: toInts(q3),
		Q4: toInts(q4),
	}, nil
}

// Set implements statistics.QuarterConfigStore.
func (r *quarterConfigRepositoryImpl) Set(ctx context.Context, config statistics.QuarterConfig) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO quarter_configs (id, q1, q2, q3, q4, updated_at)
		VALUES (1, $1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET q1 = EXCLUDED.q1, q2 = EXCLUDED.q2, q3 = EXCLUDED.q3, q4 = EXCLUDED.q4,
		    updated_at = EXCLUDED.updated_at`

	_, err := q.Exec(ctx, query,
		toInt32s(config.Q1),
		toInt32s(config.Q2),
		toInt32s(config.Q3),
		toInt32s(config.Q4),
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to store quarter config: %w", err)
	}
	return nil
}

// Reset implements statistics.QuarterConfigStore.
func (r *quarterConfigRepositoryImpl) Reset(ctx context.Context) (statistics.QuarterConfig, error) {
	config := statistics.DefaultQuarterConfig()
	if err := r.Set(ctx, config); err != nil {
		return statistics.QuarterConfig{}, err
	}
	return config, nil
}

func toInts(values []int32) []int {
	out := make([]int, len(values))
	for i, v := range values {
		out[i] = int(v)
	}
	return out
}

func toInt32s(values []int) []int32 {
	out := make([]int32, len(values))
	for i, v := range values {
		out[i] = int32(v)
	}
	return out
}
