package service

import (
	"context"
	"time"

	"vas-gateway/internal/core/domain"
	"vas-gateway/internal/core/ports"
	"vas-gateway/internal/metrics"
	"vas-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ReconcileWorkersImpl implements C8: the async requery worker and the
// timeout reversal sweeper. Both share the Reconciler used by the
// coordinator's initial dispatch, so a refund is only ever issued once
// per transaction regardless of which of the three paths observes the
// terminal-qualifying response first.
type ReconcileWorkersImpl struct {
	txRepo       ports.TransactionRepository
	providerRepo ports.ProviderRepository
	dispatcher   ports.ProviderDispatcher
	lease        ports.RequeryLease
	attemptRepo  ports.RequeryAttemptRepository
	reconciler   *Reconciler

	initialDelay  time.Duration
	retryInterval time.Duration
	maxRetries    int
	leaseTTL      time.Duration

	pendingTimeout time.Duration
	sweepBatchSize int

	sem     chan struct{}
	metrics *metrics.Metrics
	log     zerolog.Logger
}

// SetMetrics attaches a Prometheus metrics sink. Safe to leave unset — a
// nil sink disables instrumentation without changing worker behavior.
func (w *ReconcileWorkersImpl) SetMetrics(m *metrics.Metrics) {
	w.metrics = m
}

// ReconcileWorkersConfig bundles the tunables for NewReconcileWorkers.
type ReconcileWorkersConfig struct {
	InitialDelay   time.Duration
	RetryInterval  time.Duration
	MaxRetries     int
	LeaseTTL       time.Duration
	PendingTimeout time.Duration
	SweepBatchSize int
	// MaxConcurrentRequeries bounds the number of requery goroutines
	// in flight at once; zero disables the bound (unlimited).
	MaxConcurrentRequeries int
}

// NewReconcileWorkers creates a new ReconcileWorkersImpl.
func NewReconcileWorkers(
	txRepo ports.TransactionRepository,
	providerRepo ports.ProviderRepository,
	dispatcher ports.ProviderDispatcher,
	lease ports.RequeryLease,
	attemptRepo ports.RequeryAttemptRepository,
	reconciler *Reconciler,
	cfg ReconcileWorkersConfig,
	log zerolog.Logger,
) *ReconcileWorkersImpl {
	var sem chan struct{}
	if cfg.MaxConcurrentRequeries > 0 {
		sem = make(chan struct{}, cfg.MaxConcurrentRequeries)
	}
	return &ReconcileWorkersImpl{
		txRepo:         txRepo,
		providerRepo:   providerRepo,
		dispatcher:     dispatcher,
		lease:          lease,
		attemptRepo:    attemptRepo,
		reconciler:     reconciler,
		initialDelay:   cfg.InitialDelay,
		retryInterval:  cfg.RetryInterval,
		maxRetries:     cfg.MaxRetries,
		leaseTTL:       cfg.LeaseTTL,
		pendingTimeout: cfg.PendingTimeout,
		sweepBatchSize: cfg.SweepBatchSize,
		sem:            sem,
		log:            log,
	}
}

// RunRequery schedules the C8 requery loop for txn, detached from the
// caller's request context (the HTTP request that triggered dispatch may
// already be gone by the time the delay elapses).
func (w *ReconcileWorkersImpl) RunRequery(ctx context.Context, txn *domain.Transaction) {
	go w.runRequeryLoop(context.Background(), txn.ID)
}

func (w *ReconcileWorkersImpl) runRequeryLoop(ctx context.Context, txnID uuid.UUID) {
	if w.sem != nil {
		w.sem <- struct{}{}
		defer func() { <-w.sem }()
	}

	select {
	case <-time.After(w.initialDelay):
	case <-ctx.Done():
		return
	}

	for attempt := 1; attempt <= w.maxRetries; attempt++ {
		if w.requeryOnce(ctx, txnID, attempt) {
			return // terminal state reached; stop retrying
		}
		if attempt < w.maxRetries {
			select {
			case <-time.After(w.retryInterval):
			case <-ctx.Done():
				return
			}
		}
	}
}

// requeryOnce performs a single requery attempt and reports whether the
// transaction has reached a terminal state (so the loop should stop).
func (w *ReconcileWorkersImpl) requeryOnce(ctx context.Context, txnID uuid.UUID, attempt int) bool {
	acquired, err := w.lease.Acquire(ctx, txnID, w.leaseTTL)
	if err != nil {
		w.log.Warn().Err(err).Str("txn_id", txnID.String()).Msg("requery: lease acquire failed")
		return false
	}
	if !acquired {
		return false // another worker holds the lease; skip this attempt silently
	}
	defer w.lease.Release(ctx, txnID) //nolint:errcheck

	txn, err := w.reconciler.reload(ctx, txnID)
	if err != nil || txn == nil {
		w.log.Error().Err(err).Str("txn_id", txnID.String()).Msg("requery: reload transaction failed")
		return true
	}
	if txn.IsTerminal() {
		return true
	}

	account, _, err := w.providerRepo.GetAccountByProviderCode(ctx, txn.ProviderCode)
	if err != nil || account == nil {
		w.log.Error().Err(err).Str("txn_id", txnID.String()).Msg("requery: resolve provider account failed")
		return false
	}

	resp := w.dispatcher.Requery(ctx, txn.ProviderCode, account, txn)
	w.logAttempt(ctx, txn, attempt, resp)

	if resp.ResponseCode == apperror.CodePending {
		w.countRequeryOutcome("pending")
		return false // retry, if attempts remain
	}
	w.reconciler.Apply(ctx, txn, resp)
	w.countRequeryOutcome("resolved")
	return true
}

func (w *ReconcileWorkersImpl) countRequeryOutcome(outcome string) {
	if w.metrics == nil {
		return
	}
	w.metrics.RequeryAttemptTotal.WithLabelValues(outcome).Inc()
}

func (w *ReconcileWorkersImpl) logAttempt(ctx context.Context, txn *domain.Transaction, attempt int, resp domain.NormalizedResponse) {
	status := domain.RequeryAttemptStatusResolved
	if resp.ResponseCode == apperror.CodePending {
		status = domain.RequeryAttemptStatusPending
	}
	var lastErr *string
	if resp.ResponseCode == apperror.CodeProviderFailure {
		lastErr = &resp.ResponseMessage
	}
	entry := &domain.RequeryAttemptLog{
		ID:            uuid.New(),
		TransactionID: txn.ID,
		ProviderCode:  txn.ProviderCode,
		Attempt:       attempt,
		Status:        status,
		ResponseCode:  resp.ResponseCode,
		LastError:     lastErr,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if err := w.attemptRepo.Create(ctx, entry); err != nil {
		w.log.Warn().Err(err).Str("txn_id", txn.ID.String()).Msg("requery: failed to log attempt")
	}
}

// SweepTimeouts implements the cron-driven timeout reversal sweep: up to
// sweepBatchSize PENDING, not-yet-reversed transactions older than
// pendingTimeout are credited back and marked Failed. Errors on one
// transaction never affect the others.
func (w *ReconcileWorkersImpl) SweepTimeouts(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-w.pendingTimeout)
	candidates, err := w.txRepo.ListPendingForSweep(ctx, cutoff, w.sweepBatchSize)
	if err != nil {
		return 0, err
	}

	swept := 0
	for i := range candidates {
		txn := &candidates[i]
		if !txn.EligibleForTimeoutReversal(time.Now(), w.pendingTimeout) {
			continue
		}
		w.reconciler.Apply(ctx, txn, domain.NormalizedResponse{
			ResponseCode:    apperror.CodeProviderFailure,
			ResponseMessage: "Transaction timed out",
		})
		swept++
	}
	if w.metrics != nil && swept > 0 {
		w.metrics.SweepReversedTotal.Add(float64(swept))
	}
	return swept, nil
}

var _ ports.ReconcileWorkers = (*ReconcileWorkersImpl)(nil)
