package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"vas-gateway/internal/core/domain"
	"vas-gateway/internal/core/ports"
	"vas-gateway/internal/metrics"
	"vas-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// VendingCoordinatorImpl implements ports.VendingCoordinator (C7): the
// state-machine owner for a vend request. It orchestrates product/discount
// lookup (C3), the merchant ledger debit (C1), transaction persistence
// (C2), and dispatch through C5, scheduling reconciliation via C8 when the
// provider leaves the transaction pending.
type VendingCoordinatorImpl struct {
	merchantRepo ports.MerchantRepository
	txRepo       ports.TransactionRepository
	productRepo  ports.ProductRepository
	discountRepo ports.DiscountRepository
	providerRepo ports.ProviderRepository
	idempRepo    ports.IdempotencyRepository
	idempCache   ports.IdempotencyCache
	cache        ports.ProductCache
	dispatcher   ports.ProviderDispatcher
	workers      ports.ReconcileWorkers
	transactor   ports.DBTransactor
	reconciler   *Reconciler
	location     *time.Location
	dailyLimit   decimal.Decimal
	idempTTL     time.Duration
	metrics      *metrics.Metrics
	log          zerolog.Logger
}

// SetMetrics attaches a Prometheus metrics sink. Safe to leave unset — a
// nil sink disables instrumentation without changing vend behavior.
func (s *VendingCoordinatorImpl) SetMetrics(m *metrics.Metrics) {
	s.metrics = m
}

// NewVendingCoordinator creates a new VendingCoordinatorImpl.
func NewVendingCoordinator(
	merchantRepo ports.MerchantRepository,
	txRepo ports.TransactionRepository,
	productRepo ports.ProductRepository,
	discountRepo ports.DiscountRepository,
	providerRepo ports.ProviderRepository,
	idempRepo ports.IdempotencyRepository,
	idempCache ports.IdempotencyCache,
	cache ports.ProductCache,
	dispatcher ports.ProviderDispatcher,
	workers ports.ReconcileWorkers,
	transactor ports.DBTransactor,
	location *time.Location,
	idempTTL time.Duration,
	log zerolog.Logger,
) *VendingCoordinatorImpl {
	return &VendingCoordinatorImpl{
		merchantRepo: merchantRepo,
		txRepo:       txRepo,
		productRepo:  productRepo,
		discountRepo: discountRepo,
		providerRepo: providerRepo,
		idempRepo:    idempRepo,
		idempCache:   idempCache,
		cache:        cache,
		dispatcher:   dispatcher,
		workers:      workers,
		transactor:   transactor,
		reconciler:   NewReconciler(txRepo, merchantRepo, transactor, log),
		location:     location,
		idempTTL:     idempTTL,
		log:          log,
	}
}

// VendAirtime implements the vend algorithm for category AIRTIME.
func (s *VendingCoordinatorImpl) VendAirtime(ctx context.Context, req ports.VendRequest) (*domain.Transaction, error) {
	return s.vend(ctx, req, "AIRTIME", domain.TransactionTypeAirtime)
}

// VendData implements the vend algorithm for category DATA.
func (s *VendingCoordinatorImpl) VendData(ctx context.Context, req ports.VendRequest) (*domain.Transaction, error) {
	return s.vend(ctx, req, "DATA", domain.TransactionTypeData)
}

func (s *VendingCoordinatorImpl) vend(ctx context.Context, req ports.VendRequest, expectedCategory string, txnType domain.TransactionType) (txn *domain.Transaction, err error) {
	start := time.Now()
	defer func() {
		if s.metrics == nil {
			return
		}
		s.metrics.ObserveVendDuration(expectedCategory, start)
		s.metrics.VendRequestsTotal.WithLabelValues(expectedCategory, vendResponseCode(txn, err)).Inc()
	}()

	idempKey := domain.BuildIdempotencyKey(req.MerchantID, req.MerchantRef)

	if cached, ok := s.checkIdempotency(ctx, idempKey); ok {
		return cached, nil
	}

	product, err := s.resolveProduct(ctx, req.ProductCode)
	if err != nil {
		return nil, err
	}
	if product.CategoryCode != expectedCategory {
		return nil, apperror.ErrDomainException("product does not belong to the requested category")
	}
	if !product.WithinRange(req.Amount) {
		return nil, apperror.ErrDomainException("amount outside product range")
	}

	discountType, discountValue := s.resolveMaxDiscount(ctx, req.MerchantID, req.ProductCode, req.Amount)
	discount := domain.MerchantDiscount{Type: discountType, Value: discountValue}
	discountAmount := discount.Apply(req.Amount)
	amountCharged := req.Amount.Sub(discountAmount)

	account, provider, err := s.providerRepo.GetAccountByProviderCode(ctx, product.ProviderCode)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("resolve provider account: %w", err))
	}
	if account == nil || provider == nil || !provider.IsActive {
		return nil, apperror.ErrDomainException("provider unavailable for product")
	}

	txn, err = s.debitAndInsert(ctx, req, txnType, product.ProviderCode, amountCharged, discountAmount)
	if err != nil {
		return nil, err
	}

	s.dispatch(ctx, txn, account, req)

	respJSON, err := json.Marshal(txn)
	if err == nil {
		if err := s.idempCache.Set(ctx, idempKey, respJSON, s.idempTTL); err != nil {
			s.log.Warn().Err(err).Str("key", idempKey).Msg("failed to cache idempotency in redis")
		}
	}

	return txn, nil
}

func (s *VendingCoordinatorImpl) checkIdempotency(ctx context.Context, idempKey string) (*domain.Transaction, bool) {
	if cached, err := s.idempCache.Get(ctx, idempKey); err == nil && cached != nil {
		var txn domain.Transaction
		if json.Unmarshal(cached, &txn) == nil {
			return &txn, true
		}
	}

	idempLog, err := s.idempRepo.Get(ctx, idempKey)
	if err != nil {
		s.log.Warn().Err(err).Str("key", idempKey).Msg("db idempotency check failed")
		return nil, false
	}
	if idempLog == nil {
		return nil, false
	}
	var txn domain.Transaction
	if json.Unmarshal(idempLog.ResponseJSON, &txn) != nil {
		return nil, false
	}
	return &txn, true
}

func (s *VendingCoordinatorImpl) resolveProduct(ctx context.Context, code string) (*domain.Product, error) {
	if s.cache != nil {
		if p, ok := s.cache.GetProduct(ctx, code); ok {
			return p, nil
		}
	}
	product, err := s.productRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("resolve product: %w", err))
	}
	if product == nil {
		return nil, apperror.ErrNoDataFound("product")
	}
	if s.cache != nil {
		s.cache.SetProduct(ctx, product)
	}
	return product, nil
}

// resolveMaxDiscount aggregates every active MerchantDiscount row for
// (merchant, product) by taking the MAX computed discount, per spec.md §3.
// Candidates are compared by their Apply(amount) result, not by raw Value —
// percentage and flat-amount discounts aren't comparable without first
// projecting both onto the same transaction amount.
func (s *VendingCoordinatorImpl) resolveMaxDiscount(ctx context.Context, merchantID uuid.UUID, productCode string, amount decimal.Decimal) (domain.DiscountType, decimal.Decimal) {
	discounts, err := s.discountRepo.ListActiveForProduct(ctx, merchantID, productCode)
	if err != nil || len(discounts) == 0 {
		return domain.DiscountTypeNone, decimal.Zero
	}

	best := discounts[0]
	bestApplied := best.Apply(amount)
	for _, d := range discounts[1:] {
		if applied := d.Apply(amount); applied.GreaterThan(bestApplied) {
			best = d
			bestApplied = applied
		}
	}
	return best.Type, best.Value
}

// debitAndInsert performs step 4 (daily limit) and step 6 (debit + insert)
// of the vend algorithm in a single database transaction.
func (s *VendingCoordinatorImpl) debitAndInsert(ctx context.Context, req ports.VendRequest, txnType domain.TransactionType, providerCode string, amountCharged, discountAmount decimal.Decimal) (*domain.Transaction, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	merchant, err := s.merchantRepo.GetByIDForUpdate(ctx, dbTx, req.MerchantID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock merchant: %w", err))
	}
	if merchant == nil {
		return nil, apperror.ErrInvalidMerchant()
	}

	today := time.Now().In(s.location)
	if !sameDay(merchant.DailyCountResetAt, today) {
		merchant.DailyTxnCount = 0
		merchant.DailyCountResetAt = today
	}
	if limit := s.dailyLimitFor(merchant); limit >= 0 && int64(merchant.DailyTxnCount) >= limit {
		return nil, apperror.ErrDailyLimitExceeded()
	}
	merchant.DailyTxnCount++
	if err := s.merchantRepo.UpdateDailyCounter(ctx, dbTx, merchant.ID, merchant.DailyTxnCount, merchant.DailyCountResetAt); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update daily counter: %w", err))
	}

	if merchant.Balance.LessThan(amountCharged) {
		return nil, apperror.ErrInsufficientFunds()
	}
	newBalance := merchant.Balance.Sub(amountCharged)
	if err := s.merchantRepo.UpdateBalance(ctx, dbTx, merchant.ID, newBalance.String()); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("debit merchant balance: %w", err))
	}

	dataCode := (*string)(nil)
	if req.DataCode != "" {
		dataCode = &req.DataCode
	}

	now := time.Now().UTC()
	txn := &domain.Transaction{
		ID:              uuid.New(),
		MerchantRef:     req.MerchantRef,
		MerchantID:      req.MerchantID,
		ProductCode:     req.ProductCode,
		ProviderCode:    providerCode,
		RecipientMSISDN: req.RecipientMSISDN,
		DataCode:        dataCode,
		FaceAmount:      req.Amount,
		DiscountAmount:  discountAmount,
		AmountCharged:   amountCharged,
		TransactionType: txnType,
		Status:          domain.TransactionStatusPending,
		ClientIP:        req.ClientIP,
		CreatedAt:       now,
	}

	if err := s.txRepo.Create(ctx, dbTx, txn); err != nil {
		return nil, apperror.ErrDuplicateReference()
	}

	idempLogEntry := &domain.IdempotencyLog{
		Key:           domain.BuildIdempotencyKey(req.MerchantID, req.MerchantRef),
		TransactionID: txn.ID,
		CreatedAt:     now,
	}
	respJSON, err := json.Marshal(txn)
	if err == nil {
		idempLogEntry.ResponseJSON = respJSON
		if err := s.idempRepo.Create(ctx, dbTx, idempLogEntry); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("save idempotency log: %w", err))
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	return txn, nil
}

// dailyLimitFor reads the merchant's daily transaction count ceiling.
// A zero DailyLimit means no limit is configured for that merchant.
func (s *VendingCoordinatorImpl) dailyLimitFor(merchant *domain.Merchant) int64 {
	if merchant.DailyLimit.IsZero() {
		return -1
	}
	return merchant.DailyLimit.IntPart()
}

// vendResponseCode derives the label used for the vend_requests_total
// counter: the transaction's own response code once dispatched, the
// AppError taxonomy code on a pre-dispatch failure, or "00" on a clean
// idempotent replay.
func vendResponseCode(txn *domain.Transaction, err error) string {
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return appErr.Code
		}
		return apperror.CodeProcessingError
	}
	if txn != nil && txn.ResponseCode != "" {
		return txn.ResponseCode
	}
	return apperror.CodeSuccess
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// dispatch implements step 7: call C5, fold the normalized response into a
// terminal or pending transaction state.
func (s *VendingCoordinatorImpl) dispatch(ctx context.Context, txn *domain.Transaction, account *domain.ProviderAccount, req ports.VendRequest) {
	resp := s.dispatcher.Vend(ctx, txn.ProviderCode, account, req)
	s.reconcile(ctx, txn, resp)
}

// reconcile applies a NormalizedResponse to txn under a fresh row lock,
// scheduling a requery when the provider left the transaction pending.
func (s *VendingCoordinatorImpl) reconcile(ctx context.Context, txn *domain.Transaction, resp domain.NormalizedResponse) {
	if s.reconciler.Apply(ctx, txn, resp) && s.workers != nil {
		s.workers.RunRequery(ctx, txn)
	}
}

// RequeryTransaction implements the client-initiated requeryTransaction
// endpoint: a pure read of the transaction by merchant_ref, never a
// side-effecting reconciliation.
func (s *VendingCoordinatorImpl) RequeryTransaction(ctx context.Context, merchantID uuid.UUID, merchantRef string) (*domain.Transaction, error) {
	txn, err := s.txRepo.GetByMerchantRef(ctx, merchantID, merchantRef)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup transaction: %w", err))
	}
	if txn == nil {
		return nil, apperror.ErrTransactionNotFound()
	}
	return txn, nil
}
