package integration

import (
	"context"
	"fmt"
	"sync"
	"time"

	"vas-gateway/internal/core/domain"
	"vas-gateway/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// --- In-Memory Merchant Repo ---

type inMemoryMerchantRepo struct {
	mu        sync.Mutex
	merchants map[uuid.UUID]*domain.Merchant
}

func newInMemoryMerchantRepo() *inMemoryMerchantRepo {
	return &inMemoryMerchantRepo{merchants: make(map[uuid.UUID]*domain.Merchant)}
}

func (r *inMemoryMerchantRepo) Create(ctx context.Context, m *domain.Merchant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.merchants {
		if existing.MerchantCode == m.MerchantCode {
			return fmt.Errorf("merchant code already exists")
		}
	}
	cp := *m
	r.merchants[m.ID] = &cp
	return nil
}

func (r *inMemoryMerchantRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Merchant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.merchants[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *inMemoryMerchantRepo) GetByMerchantCode(ctx context.Context, merchantCode string) (*domain.Merchant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.merchants {
		if m.MerchantCode == merchantCode {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

// GetByIDForUpdate ignores tx: inMemoryTransactor.Begin already holds a
// lock for the whole transaction, which is what SELECT ... FOR UPDATE buys
// the real Postgres repo. The repo mutex only guards each single call.
func (r *inMemoryMerchantRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Merchant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.merchants[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *inMemoryMerchantRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID, newBalance string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.merchants[merchantID]
	if !ok {
		return fmt.Errorf("merchant not found")
	}
	bal, err := decimal.NewFromString(newBalance)
	if err != nil {
		return err
	}
	prev := m.Balance
	m.Balance = bal
	registerRollback(tx, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if m, ok := r.merchants[merchantID]; ok {
			m.Balance = prev
		}
	})
	return nil
}

func (r *inMemoryMerchantRepo) UpdateDailyCounter(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID, count int, resetAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.merchants[merchantID]
	if !ok {
		return fmt.Errorf("merchant not found")
	}
	prevCount, prevResetAt := m.DailyTxnCount, m.DailyCountResetAt
	m.DailyTxnCount = count
	m.DailyCountResetAt = resetAt
	registerRollback(tx, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if m, ok := r.merchants[merchantID]; ok {
			m.DailyTxnCount = prevCount
			m.DailyCountResetAt = prevResetAt
		}
	})
	return nil
}

// --- In-Memory Transaction Repo ---

type inMemoryTransactionRepo struct {
	mu           sync.Mutex
	transactions map[uuid.UUID]*domain.Transaction
}

func newInMemoryTransactionRepo() *inMemoryTransactionRepo {
	return &inMemoryTransactionRepo{transactions: make(map[uuid.UUID]*domain.Transaction)}
}

func (r *inMemoryTransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.transactions {
		if existing.MerchantID == t.MerchantID && existing.MerchantRef == t.MerchantRef {
			return fmt.Errorf("duplicate merchant_ref")
		}
	}
	cp := *t
	r.transactions[t.ID] = &cp
	registerRollback(tx, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.transactions, t.ID)
	})
	return nil
}

func (r *inMemoryTransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.transactions[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *inMemoryTransactionRepo) GetByMerchantRef(ctx context.Context, merchantID uuid.UUID, merchantRef string) (*domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.transactions {
		if t.MerchantID == merchantID && t.MerchantRef == merchantRef {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryTransactionRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.TransactionStatus, responseCode, responseMessage string, providerRef *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.transactions[id]
	if !ok {
		return fmt.Errorf("transaction not found")
	}
	prevStatus, prevCode, prevMsg, prevRef, prevProcessedAt := t.Status, t.ResponseCode, t.ResponseMessage, t.ProviderRef, t.ProcessedAt
	t.Status = status
	t.ResponseCode = responseCode
	t.ResponseMessage = responseMessage
	if providerRef != nil && *providerRef != "" {
		t.ProviderRef = providerRef
	}
	now := time.Now().UTC()
	t.ProcessedAt = &now
	registerRollback(tx, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if t, ok := r.transactions[id]; ok {
			t.Status, t.ResponseCode, t.ResponseMessage, t.ProviderRef, t.ProcessedAt = prevStatus, prevCode, prevMsg, prevRef, prevProcessedAt
		}
	})
	return nil
}

func (r *inMemoryTransactionRepo) MarkReversed(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.transactions[id]
	if !ok {
		return fmt.Errorf("transaction not found")
	}
	t.IsReversed = true
	registerRollback(tx, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if t, ok := r.transactions[id]; ok {
			t.IsReversed = false
		}
	})
	return nil
}

func (r *inMemoryTransactionRepo) ListPendingForSweep(ctx context.Context, cutoff time.Time, limit int) ([]domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Transaction
	for _, t := range r.transactions {
		if t.Status != domain.TransactionStatusPending || t.IsReversed {
			continue
		}
		if t.CreatedAt.After(cutoff) {
			continue
		}
		out = append(out, *t)
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (r *inMemoryTransactionRepo) List(ctx context.Context, params ports.TransactionListParams) ([]domain.Transaction, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.Transaction
	for _, t := range r.transactions {
		if t.MerchantID != params.MerchantID {
			continue
		}
		if params.Status != nil && t.Status != *params.Status {
			continue
		}
		if params.Type != nil && t.TransactionType != *params.Type {
			continue
		}
		result = append(result, *t)
	}
	total := int64(len(result))

	page, size := params.Page, params.PageSize
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = len(result)
	}
	start := (page - 1) * size
	if start >= len(result) {
		return []domain.Transaction{}, total, nil
	}
	end := start + size
	if end > len(result) {
		end = len(result)
	}
	return result[start:end], total, nil
}

func (r *inMemoryTransactionRepo) GetStats(ctx context.Context, merchantID uuid.UUID, periodStart *int64) (*ports.TransactionStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stats := &ports.TransactionStats{}
	for _, t := range r.transactions {
		if t.MerchantID != merchantID {
			continue
		}
		if periodStart != nil && t.CreatedAt.Unix() < *periodStart {
			continue
		}
		stats.TotalTransactions++
		switch t.Status {
		case domain.TransactionStatusSuccess:
			stats.Successful++
		case domain.TransactionStatusFailed:
			stats.Failed++
		case domain.TransactionStatusPending:
			stats.Pending++
		case domain.TransactionStatusReversed:
			stats.Reversed++
		}
	}
	return stats, nil
}

// --- In-Memory Product Repo ---

type inMemoryProductRepo struct {
	mu         sync.Mutex
	products   map[string]*domain.Product
	categories []domain.ProductCategory
	bundles    map[string][]domain.DataPackage // keyed by product code
}

func newInMemoryProductRepo() *inMemoryProductRepo {
	return &inMemoryProductRepo{
		products: make(map[string]*domain.Product),
		bundles:  make(map[string][]domain.DataPackage),
	}
}

func (r *inMemoryProductRepo) GetByCode(ctx context.Context, code string) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[code]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *inMemoryProductRepo) ListByCategory(ctx context.Context, categoryCode string) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Product
	for _, p := range r.products {
		if p.CategoryCode == categoryCode && p.IsActive {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *inMemoryProductRepo) ListActiveCategories(ctx context.Context) ([]domain.ProductCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.ProductCategory, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

func (r *inMemoryProductRepo) GetDataPackage(ctx context.Context, productCode, dataCode, providerCode string) (*domain.DataPackage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bundles[productCode] {
		if b.DataCode == dataCode && (providerCode == "" || b.ProviderCode == providerCode) {
			cp := b
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryProductRepo) ListDataBundles(ctx context.Context, productCode, providerCode string) ([]domain.DataPackage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.DataPackage
	for _, b := range r.bundles[productCode] {
		if providerCode == "" || b.ProviderCode == providerCode {
			out = append(out, b)
		}
	}
	return out, nil
}

// --- In-Memory Discount Repo (no discounts configured by default) ---

type inMemoryDiscountRepo struct {
	mu        sync.Mutex
	discounts []domain.MerchantDiscount
}

func newInMemoryDiscountRepo() *inMemoryDiscountRepo {
	return &inMemoryDiscountRepo{}
}

func (r *inMemoryDiscountRepo) ListActiveForProduct(ctx context.Context, merchantID uuid.UUID, productCode string) ([]domain.MerchantDiscount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.MerchantDiscount
	for _, d := range r.discounts {
		if d.MerchantID == merchantID && d.ProductCode == productCode && d.IsActive {
			out = append(out, d)
		}
	}
	return out, nil
}

// --- In-Memory Provider Repo ---

type inMemoryProviderRepo struct {
	mu       sync.Mutex
	accounts map[string]*domain.ProviderAccount // keyed by provider code
	provider map[string]*domain.Provider
}

func newInMemoryProviderRepo() *inMemoryProviderRepo {
	return &inMemoryProviderRepo{
		accounts: make(map[string]*domain.ProviderAccount),
		provider: make(map[string]*domain.Provider),
	}
}

func (r *inMemoryProviderRepo) GetAccountByProviderCode(ctx context.Context, providerCode string) (*domain.ProviderAccount, *domain.Provider, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	acc, ok := r.accounts[providerCode]
	if !ok {
		return nil, nil, nil
	}
	prov := r.provider[providerCode]
	accCp, provCp := *acc, *prov
	return &accCp, &provCp, nil
}

func (r *inMemoryProviderRepo) UpdateAccountBalance(ctx context.Context, accountID uuid.UUID, availableBalance, balanceAtProvider string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, acc := range r.accounts {
		if acc.ID == accountID {
			avail, err := decimal.NewFromString(availableBalance)
			if err != nil {
				return err
			}
			atProvider, err := decimal.NewFromString(balanceAtProvider)
			if err != nil {
				return err
			}
			acc.AvailableBalance = avail
			acc.BalanceAtProvider = atProvider
			return nil
		}
	}
	return fmt.Errorf("provider account not found")
}

// --- In-Memory Idempotency Repo ---

type inMemoryIdempotencyRepo struct {
	mu   sync.Mutex
	logs map[string]*domain.IdempotencyLog
}

func newInMemoryIdempotencyRepo() *inMemoryIdempotencyRepo {
	return &inMemoryIdempotencyRepo{logs: make(map[string]*domain.IdempotencyLog)}
}

func (r *inMemoryIdempotencyRepo) Create(ctx context.Context, tx pgx.Tx, log *domain.IdempotencyLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.logs[log.Key]; exists {
		return fmt.Errorf("idempotency key already recorded")
	}
	cp := *log
	r.logs[log.Key] = &cp
	registerRollback(tx, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.logs, log.Key)
	})
	return nil
}

func (r *inMemoryIdempotencyRepo) Get(ctx context.Context, key string) (*domain.IdempotencyLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.logs[key]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

// --- In-Memory RequeryAttempt Repo ---

type inMemoryRequeryAttemptRepo struct {
	mu      sync.Mutex
	entries []domain.RequeryAttemptLog
}

func newInMemoryRequeryAttemptRepo() *inMemoryRequeryAttemptRepo {
	return &inMemoryRequeryAttemptRepo{}
}

func (r *inMemoryRequeryAttemptRepo) Create(ctx context.Context, log *domain.RequeryAttemptLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *log)
	return nil
}

func (r *inMemoryRequeryAttemptRepo) Update(ctx context.Context, log *domain.RequeryAttemptLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.entries {
		if r.entries[i].ID == log.ID {
			r.entries[i] = *log
			return nil
		}
	}
	return fmt.Errorf("requery attempt log not found")
}

// --- In-Memory Transactor ---
//
// Begin holds a single process-wide lock for the lifetime of the
// transaction, released on the first Commit or Rollback. Every write
// inside debitAndInsert/Finalize happens between Begin and Commit, so
// this reproduces what Postgres's SELECT ... FOR UPDATE buys the real
// repo: the whole read-check-write critical section is serialized
// across concurrent callers, not just each individual repo call.
type inMemoryTransactor struct {
	mu sync.Mutex
}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	t.mu.Lock()
	return &noopTx{unlock: t.mu.Unlock}, nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing; unlock
// releases the transactor's lock exactly once, on whichever of
// Commit/Rollback runs first. undo accumulates compensating closures
// registered by repo writes (see registerRollback) so that a Rollback —
// always deferred by the caller even after a successful Commit — actually
// undoes a partial write, the way a real ROLLBACK would.
type noopTx struct {
	unlock    func()
	unlocked  bool
	committed bool
	undo      []func()
}

func (t *noopTx) release() {
	if !t.unlocked {
		t.unlocked = true
		t.unlock()
	}
}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }

func (t *noopTx) Commit(ctx context.Context) error {
	t.committed = true
	t.release()
	return nil
}

func (t *noopTx) Rollback(ctx context.Context) error {
	if !t.committed {
		for i := len(t.undo) - 1; i >= 0; i-- {
			t.undo[i]()
		}
	}
	t.release()
	return nil
}

// registerRollback records fn to run if tx is rolled back without having
// committed. A nil or non-*noopTx value (shouldn't happen in this test
// harness) is silently ignored.
func registerRollback(tx pgx.Tx, fn func()) {
	if nt, ok := tx.(*noopTx); ok {
		nt.undo = append(nt.undo, fn)
	}
}
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }
