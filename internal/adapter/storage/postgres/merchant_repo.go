package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vas-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// MerchantRepo implements ports.MerchantRepository.
type MerchantRepo struct {
	pool Pool
}

// NewMerchantRepo creates a new MerchantRepo.
func NewMerchantRepo(pool Pool) *MerchantRepo {
	return &MerchantRepo{pool: pool}
}

const merchantColumns = `id, merchant_code, merchant_name, api_key_hash, secret_key_enc,
	balance, daily_limit, daily_txn_count, daily_count_reset_at, ip_allowlist,
	status, created_at, updated_at`

func scanMerchant(row pgx.Row) (*domain.Merchant, error) {
	m := &domain.Merchant{}
	err := row.Scan(
		&m.ID, &m.MerchantCode, &m.MerchantName, &m.APIKeyHash, &m.SecretKeyEnc,
		&m.Balance, &m.DailyLimit, &m.DailyTxnCount, &m.DailyCountResetAt, &m.IPAllowlist,
		&m.Status, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return m, nil
}

// Create inserts a new merchant into the database.
func (r *MerchantRepo) Create(ctx context.Context, m *domain.Merchant) error {
	query := `INSERT INTO merchants (` + merchantColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`

	_, err := r.pool.Exec(ctx, query,
		m.ID, m.MerchantCode, m.MerchantName, m.APIKeyHash, m.SecretKeyEnc,
		m.Balance, m.DailyLimit, m.DailyTxnCount, m.DailyCountResetAt, m.IPAllowlist,
		m.Status, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert merchant: %w", err)
	}
	return nil
}

// GetByID fetches a merchant by its UUID.
func (r *MerchantRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Merchant, error) {
	query := `SELECT ` + merchantColumns + ` FROM merchants WHERE id = $1`
	m, err := scanMerchant(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get merchant by id: %w", err)
	}
	return m, nil
}

// GetByMerchantCode fetches a merchant by its public merchant code.
func (r *MerchantRepo) GetByMerchantCode(ctx context.Context, merchantCode string) (*domain.Merchant, error) {
	query := `SELECT ` + merchantColumns + ` FROM merchants WHERE merchant_code = $1`
	m, err := scanMerchant(r.pool.QueryRow(ctx, query, merchantCode))
	if err != nil {
		return nil, fmt.Errorf("get merchant by merchant_code: %w", err)
	}
	return m, nil
}

// GetByIDForUpdate fetches a merchant row locked FOR UPDATE, for use inside
// the C1 ledger debit/credit transaction.
func (r *MerchantRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Merchant, error) {
	query := `SELECT ` + merchantColumns + ` FROM merchants WHERE id = $1 FOR UPDATE`
	m, err := scanMerchant(tx.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get merchant for update: %w", err)
	}
	return m, nil
}

// UpdateBalance sets the merchant's ledger balance to newBalance within tx.
func (r *MerchantRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID, newBalance string) error {
	_, err := tx.Exec(ctx, `UPDATE merchants SET balance = $1, updated_at = NOW() WHERE id = $2`,
		newBalance, merchantID)
	if err != nil {
		return fmt.Errorf("update merchant balance: %w", err)
	}
	return nil
}

// UpdateDailyCounter sets the merchant's daily transaction counter and its
// reset boundary within tx.
func (r *MerchantRepo) UpdateDailyCounter(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID, count int, resetAt time.Time) error {
	_, err := tx.Exec(ctx, `UPDATE merchants SET daily_txn_count = $1, daily_count_reset_at = $2, updated_at = NOW() WHERE id = $3`,
		count, resetAt, merchantID)
	if err != nil {
		return fmt.Errorf("update merchant daily counter: %w", err)
	}
	return nil
}
