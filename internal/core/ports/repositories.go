package ports

import (
	"context"
	"time"

	"vas-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// MerchantRepository defines persistence operations for merchants. The
// merchant row carries its own ledger balance, so locking/update methods
// live here rather than on a separate wallet repository.
type MerchantRepository interface {
	Create(ctx context.Context, merchant *domain.Merchant) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Merchant, error)
	GetByMerchantCode(ctx context.Context, merchantCode string) (*domain.Merchant, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Merchant, error)
	UpdateBalance(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID, newBalance string) error
	UpdateDailyCounter(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID, count int, resetAt time.Time) error
}

// TransactionRepository defines persistence operations for transactions.
type TransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, transaction *domain.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	GetByMerchantRef(ctx context.Context, merchantID uuid.UUID, merchantRef string) (*domain.Transaction, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.TransactionStatus, responseCode, responseMessage string, providerRef *string) error
	MarkReversed(ctx context.Context, tx pgx.Tx, id uuid.UUID) error
	// ListPendingForSweep returns up to limit PENDING, not-yet-reversed
	// transactions created before cutoff, for the C8 timeout sweeper.
	ListPendingForSweep(ctx context.Context, cutoff time.Time, limit int) ([]domain.Transaction, error)
	List(ctx context.Context, params TransactionListParams) ([]domain.Transaction, int64, error)
	GetStats(ctx context.Context, merchantID uuid.UUID, periodStart *int64) (*TransactionStats, error)
}

// TransactionListParams holds filter + pagination for listing transactions.
type TransactionListParams struct {
	MerchantID uuid.UUID
	Status     *domain.TransactionStatus
	Type       *domain.TransactionType
	From       *int64
	To         *int64
	Page       int
	PageSize   int
}

// TransactionStats holds aggregated statistics for reporting.
type TransactionStats struct {
	TotalTransactions int64
	Successful        int64
	Failed            int64
	Pending           int64
	Reversed          int64
}

// IdempotencyRepository defines persistence for idempotency logs (DB backup
// to the Redis idempotency cache).
type IdempotencyRepository interface {
	Create(ctx context.Context, tx pgx.Tx, log *domain.IdempotencyLog) error
	Get(ctx context.Context, key string) (*domain.IdempotencyLog, error)
}

// ProductRepository defines persistence operations for the product catalog.
type ProductRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.Product, error)
	ListByCategory(ctx context.Context, categoryCode string) ([]domain.Product, error)
	ListActiveCategories(ctx context.Context) ([]domain.ProductCategory, error)
	GetDataPackage(ctx context.Context, productCode, dataCode, providerCode string) (*domain.DataPackage, error)
	ListDataBundles(ctx context.Context, productCode, providerCode string) ([]domain.DataPackage, error)
}

// DiscountRepository defines persistence operations for merchant discounts.
type DiscountRepository interface {
	ListActiveForProduct(ctx context.Context, merchantID uuid.UUID, productCode string) ([]domain.MerchantDiscount, error)
}

// ProviderRepository defines persistence operations for providers and
// their operational accounts.
type ProviderRepository interface {
	GetAccountByProviderCode(ctx context.Context, providerCode string) (*domain.ProviderAccount, *domain.Provider, error)
	UpdateAccountBalance(ctx context.Context, accountID uuid.UUID, availableBalance, balanceAtProvider string) error
}

// RequeryAttemptRepository defines persistence for C8 requery attempt logs.
type RequeryAttemptRepository interface {
	Create(ctx context.Context, log *domain.RequeryAttemptLog) error
	Update(ctx context.Context, log *domain.RequeryAttemptLog) error
}

// AuditRepository defines persistence for audit log entries.
type AuditRepository interface {
	Create(ctx context.Context, entry *domain.AuditLog) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
