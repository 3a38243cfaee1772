package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vas-gateway/internal/core/domain"
	"vas-gateway/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TransactionRepo implements ports.TransactionRepository.
type TransactionRepo struct {
	pool Pool
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

const transactionColumns = `id, merchant_ref, merchant_id, product_code, provider_code, recipient_msisdn,
	data_code, face_amount, discount_amount, amount_charged, transaction_type, status,
	response_code, response_message, provider_ref, is_reversed, client_ip, created_at, processed_at`

// Create inserts a new transaction within tx (the same C1 ledger transaction
// that debits the merchant's balance).
func (r *TransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error {
	query := `INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)`

	_, err := tx.Exec(ctx, query,
		t.ID, t.MerchantRef, t.MerchantID, t.ProductCode, t.ProviderCode, t.RecipientMSISDN,
		t.DataCode, t.FaceAmount, t.DiscountAmount, t.AmountCharged, t.TransactionType, t.Status,
		t.ResponseCode, t.ResponseMessage, t.ProviderRef, t.IsReversed, t.ClientIP, t.CreatedAt, t.ProcessedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

func (r *TransactionRepo) scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	t := &domain.Transaction{}
	err := row.Scan(
		&t.ID, &t.MerchantRef, &t.MerchantID, &t.ProductCode, &t.ProviderCode, &t.RecipientMSISDN,
		&t.DataCode, &t.FaceAmount, &t.DiscountAmount, &t.AmountCharged, &t.TransactionType, &t.Status,
		&t.ResponseCode, &t.ResponseMessage, &t.ProviderRef, &t.IsReversed, &t.ClientIP, &t.CreatedAt, &t.ProcessedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan transaction: %w", err)
	}
	return t, nil
}

// GetByID fetches a transaction by UUID.
func (r *TransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	return r.scanTransaction(r.pool.QueryRow(ctx, query, id))
}

// GetByMerchantRef fetches a transaction by merchant ID and merchant_ref,
// the key the C3 idempotency check (and requeryTransaction) look up by.
func (r *TransactionRepo) GetByMerchantRef(ctx context.Context, merchantID uuid.UUID, merchantRef string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE merchant_id = $1 AND merchant_ref = $2`
	return r.scanTransaction(r.pool.QueryRow(ctx, query, merchantID, merchantRef))
}

// UpdateStatus updates a transaction's terminal status within tx.
func (r *TransactionRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.TransactionStatus, responseCode, responseMessage string, providerRef *string) error {
	now := time.Now()
	query := `UPDATE transactions SET status = $1, response_code = $2, response_message = $3, provider_ref = $4, processed_at = $5 WHERE id = $6`

	tag, err := tx.Exec(ctx, query, status, responseCode, responseMessage, providerRef, now, id)
	if err != nil {
		return fmt.Errorf("update transaction status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found: %s", id)
	}
	return nil
}

// MarkReversed flips is_reverse to true, within tx, as part of the refund
// policy's row-locked check-then-reverse.
func (r *TransactionRepo) MarkReversed(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `UPDATE transactions SET is_reversed = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark transaction reversed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found: %s", id)
	}
	return nil
}

// ListPendingForSweep returns up to limit PENDING, not-yet-reversed
// transactions created before cutoff, oldest first, for the C8 sweeper.
func (r *TransactionRepo) ListPendingForSweep(ctx context.Context, cutoff time.Time, limit int) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions
		WHERE status = 'PENDING' AND is_reversed = FALSE AND created_at <= $1
		ORDER BY created_at ASC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, cutoff, limit)
	if err != nil {
		return nil, fmt.Errorf("list pending transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		if err := rows.Scan(
			&t.ID, &t.MerchantRef, &t.MerchantID, &t.ProductCode, &t.ProviderCode, &t.RecipientMSISDN,
			&t.DataCode, &t.FaceAmount, &t.DiscountAmount, &t.AmountCharged, &t.TransactionType, &t.Status,
			&t.ResponseCode, &t.ResponseMessage, &t.ProviderRef, &t.IsReversed, &t.ClientIP, &t.CreatedAt, &t.ProcessedAt,
		); err != nil {
			return nil, fmt.Errorf("scan pending transaction row: %w", err)
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pending transaction rows: %w", err)
	}
	return txns, nil
}

// List fetches transactions with filtering and pagination.
func (r *TransactionRepo) List(ctx context.Context, params ports.TransactionListParams) ([]domain.Transaction, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	conditions = append(conditions, fmt.Sprintf("merchant_id = $%d", argIdx))
	args = append(args, params.MerchantID)
	argIdx++

	if params.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *params.Status)
		argIdx++
	}
	if params.Type != nil {
		conditions = append(conditions, fmt.Sprintf("transaction_type = $%d", argIdx))
		args = append(args, *params.Type)
		argIdx++
	}
	if params.From != nil {
		conditions = append(conditions, fmt.Sprintf("created_at >= to_timestamp($%d)", argIdx))
		args = append(args, *params.From)
		argIdx++
	}
	if params.To != nil {
		conditions = append(conditions, fmt.Sprintf("created_at <= to_timestamp($%d)", argIdx))
		args = append(args, *params.To)
		argIdx++
	}

	where := "WHERE " + strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM transactions %s", where)
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count transactions: %w", err)
	}

	page, pageSize := params.Page, params.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	dataQuery := fmt.Sprintf(`SELECT %s FROM transactions %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		transactionColumns, where, argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		if err := rows.Scan(
			&t.ID, &t.MerchantRef, &t.MerchantID, &t.ProductCode, &t.ProviderCode, &t.RecipientMSISDN,
			&t.DataCode, &t.FaceAmount, &t.DiscountAmount, &t.AmountCharged, &t.TransactionType, &t.Status,
			&t.ResponseCode, &t.ResponseMessage, &t.ProviderRef, &t.IsReversed, &t.ClientIP, &t.CreatedAt, &t.ProcessedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan transaction row: %w", err)
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate transaction rows: %w", err)
	}
	return txns, total, nil
}

// GetStats retrieves aggregated transaction counts for a merchant.
func (r *TransactionRepo) GetStats(ctx context.Context, merchantID uuid.UUID, periodStart *int64) (*ports.TransactionStats, error) {
	var args []any
	argIdx := 1

	condition := fmt.Sprintf("merchant_id = $%d", argIdx)
	args = append(args, merchantID)
	argIdx++

	if periodStart != nil {
		condition += fmt.Sprintf(" AND created_at >= to_timestamp($%d)", argIdx)
		args = append(args, *periodStart)
	}

	query := fmt.Sprintf(`SELECT
		COUNT(*) AS total,
		COUNT(*) FILTER (WHERE status = 'SUCCESS') AS successful,
		COUNT(*) FILTER (WHERE status = 'FAILED') AS failed,
		COUNT(*) FILTER (WHERE status = 'PENDING') AS pending,
		COUNT(*) FILTER (WHERE status = 'REVERSED') AS reversed
		FROM transactions WHERE %s`, condition)

	stats := &ports.TransactionStats{}
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&stats.TotalTransactions, &stats.Successful, &stats.Failed, &stats.Pending, &stats.Reversed,
	)
	if err != nil {
		return nil, fmt.Errorf("get transaction stats: %w", err)
	}
	return stats, nil
}
