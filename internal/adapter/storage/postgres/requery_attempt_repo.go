package postgres

import (
	"context"
	"time"

	"vas-gateway/internal/core/domain"
	"vas-gateway/internal/core/ports"

	"github.com/jackc/pgx/v5/pgxpool"
)

type requeryAttemptRepo struct {
	pool *pgxpool.Pool
}

// NewRequeryAttemptRepository creates a PostgreSQL-backed
// RequeryAttemptRepository for the C8 async requery worker.
func NewRequeryAttemptRepository(pool *pgxpool.Pool) ports.RequeryAttemptRepository {
	return &requeryAttemptRepo{pool: pool}
}

func (r *requeryAttemptRepo) Create(ctx context.Context, log *domain.RequeryAttemptLog) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO requery_attempt_logs
			(id, transaction_id, provider_code, attempt, status, response_code, last_error, next_retry_at, created_at, updated_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		log.ID, log.TransactionID, log.ProviderCode, log.Attempt, string(log.Status),
		log.ResponseCode, log.LastError, log.NextRetryAt, log.CreatedAt, log.UpdatedAt,
	)
	return err
}

func (r *requeryAttemptRepo) Update(ctx context.Context, log *domain.RequeryAttemptLog) error {
	log.UpdatedAt = time.Now()
	_, err := r.pool.Exec(ctx,
		`UPDATE requery_attempt_logs
			SET status=$1, response_code=$2, last_error=$3, next_retry_at=$4, updated_at=$5
			WHERE id=$6`,
		string(log.Status), log.ResponseCode, log.LastError, log.NextRetryAt, log.UpdatedAt, log.ID,
	)
	return err
}
