package service

import (
	"context"
	"testing"
	"time"

	"vas-gateway/internal/core/domain"
	"vas-gateway/internal/core/ports/mocks"
	"vas-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"vas-gateway/internal/metrics"
)

type workersFixture struct {
	w            *ReconcileWorkersImpl
	txRepo       *mocks.MockTransactionRepository
	merchantRepo *mocks.MockMerchantRepository
	providerRepo *mocks.MockProviderRepository
	dispatcher   *mocks.MockProviderDispatcher
	lease        *mocks.MockRequeryLease
	attemptRepo  *mocks.MockRequeryAttemptRepository
	transactor   *mocks.MockDBTransactor
}

func setupReconcileWorkers(t *testing.T, cfg ReconcileWorkersConfig) (workersFixture, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	f := workersFixture{
		txRepo:       mocks.NewMockTransactionRepository(ctrl),
		merchantRepo: mocks.NewMockMerchantRepository(ctrl),
		providerRepo: mocks.NewMockProviderRepository(ctrl),
		dispatcher:   mocks.NewMockProviderDispatcher(ctrl),
		lease:        mocks.NewMockRequeryLease(ctrl),
		attemptRepo:  mocks.NewMockRequeryAttemptRepository(ctrl),
		transactor:   mocks.NewMockDBTransactor(ctrl),
	}
	reconciler := NewReconciler(f.txRepo, f.merchantRepo, f.transactor, newTestLogger())
	f.w = NewReconcileWorkers(f.txRepo, f.providerRepo, f.dispatcher, f.lease, f.attemptRepo, reconciler, cfg, newTestLogger())
	return f, ctrl
}

func TestRequeryOnce_LeaseNotAcquired_ReturnsFalse(t *testing.T) {
	f, ctrl := setupReconcileWorkers(t, ReconcileWorkersConfig{MaxRetries: 3})
	defer ctrl.Finish()

	ctx := context.Background()
	txnID := uuid.New()
	f.lease.EXPECT().Acquire(ctx, txnID, time.Duration(0)).Return(false, nil)

	done := f.w.requeryOnce(ctx, txnID, 1)
	assert.False(t, done)
}

func TestRequeryOnce_AlreadyTerminal_ReturnsTrue(t *testing.T) {
	f, ctrl := setupReconcileWorkers(t, ReconcileWorkersConfig{})
	defer ctrl.Finish()

	ctx := context.Background()
	txnID := uuid.New()
	f.lease.EXPECT().Acquire(ctx, txnID, time.Duration(0)).Return(true, nil)
	f.lease.EXPECT().Release(ctx, txnID).Return(nil)
	f.txRepo.EXPECT().GetByID(ctx, txnID).Return(&domain.Transaction{ID: txnID, Status: domain.TransactionStatusSuccess}, nil)

	done := f.w.requeryOnce(ctx, txnID, 1)
	assert.True(t, done)
}

func TestRequeryOnce_StillPending_RetriesAndLogsAttempt(t *testing.T) {
	f, ctrl := setupReconcileWorkers(t, ReconcileWorkersConfig{})
	defer ctrl.Finish()

	ctx := context.Background()
	txnID := uuid.New()
	txn := &domain.Transaction{ID: txnID, Status: domain.TransactionStatusPending, ProviderCode: "MTN"}
	account := &domain.ProviderAccount{ID: uuid.New()}
	provider := &domain.Provider{ProviderCode: "MTN"}

	f.lease.EXPECT().Acquire(ctx, txnID, time.Duration(0)).Return(true, nil)
	f.lease.EXPECT().Release(ctx, txnID).Return(nil)
	f.txRepo.EXPECT().GetByID(ctx, txnID).Return(txn, nil)
	f.providerRepo.EXPECT().GetAccountByProviderCode(ctx, "MTN").Return(account, provider, nil)
	f.dispatcher.EXPECT().Requery(ctx, "MTN", account, txn).Return(domain.NormalizedResponse{
		ResponseCode:    apperror.CodePending,
		ResponseMessage: "still processing",
	})
	f.attemptRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, entry *domain.RequeryAttemptLog) error {
		assert.Equal(t, domain.RequeryAttemptStatusPending, entry.Status)
		assert.Equal(t, 1, entry.Attempt)
		return nil
	})

	done := f.w.requeryOnce(ctx, txnID, 1)
	assert.False(t, done)
}

func TestRequeryOnce_Resolved_AppliesReconciler(t *testing.T) {
	f, ctrl := setupReconcileWorkers(t, ReconcileWorkersConfig{})
	defer ctrl.Finish()

	ctx := context.Background()
	txnID := uuid.New()
	merchantID := uuid.New()
	txn := &domain.Transaction{ID: txnID, MerchantID: merchantID, Status: domain.TransactionStatusPending, ProviderCode: "MTN"}
	account := &domain.ProviderAccount{ID: uuid.New()}
	provider := &domain.Provider{ProviderCode: "MTN"}

	f.lease.EXPECT().Acquire(ctx, txnID, time.Duration(0)).Return(true, nil)
	f.lease.EXPECT().Release(ctx, txnID).Return(nil)
	f.txRepo.EXPECT().GetByID(ctx, txnID).Return(txn, nil)
	f.providerRepo.EXPECT().GetAccountByProviderCode(ctx, "MTN").Return(account, provider, nil)
	f.dispatcher.EXPECT().Requery(ctx, "MTN", account, txn).Return(domain.NormalizedResponse{
		ResponseCode:    apperror.CodeSuccess,
		ResponseMessage: "confirmed",
		ProviderRef:     "PRV-9",
	})
	f.attemptRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	f.transactor.EXPECT().Begin(gomock.Any()).Return(newMockTx(t, true), nil)
	f.txRepo.EXPECT().GetByID(gomock.Any(), txnID).Return(&domain.Transaction{ID: txnID, Status: domain.TransactionStatusPending}, nil)
	f.txRepo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), txnID, domain.TransactionStatusSuccess, apperror.CodeSuccess, "confirmed", gomock.Any()).Return(nil)

	done := f.w.requeryOnce(ctx, txnID, 2)
	assert.True(t, done)
}

func TestSweepTimeouts_ReversesEligibleOnly(t *testing.T) {
	f, ctrl := setupReconcileWorkers(t, ReconcileWorkersConfig{PendingTimeout: time.Hour, SweepBatchSize: 10})
	defer ctrl.Finish()

	ctx := context.Background()
	eligible := domain.Transaction{
		ID:         uuid.New(),
		MerchantID: uuid.New(),
		Status:     domain.TransactionStatusPending,
		CreatedAt:  time.Now().Add(-2 * time.Hour),
	}
	tooRecent := domain.Transaction{
		ID:        uuid.New(),
		Status:    domain.TransactionStatusPending,
		CreatedAt: time.Now(),
	}

	f.txRepo.EXPECT().ListPendingForSweep(ctx, gomock.Any(), 10).Return([]domain.Transaction{eligible, tooRecent}, nil)

	f.transactor.EXPECT().Begin(gomock.Any()).Return(newMockTx(t, true), nil)
	f.txRepo.EXPECT().GetByID(gomock.Any(), eligible.ID).Return(&domain.Transaction{ID: eligible.ID, MerchantID: eligible.MerchantID, Status: domain.TransactionStatusPending}, nil)
	f.txRepo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), eligible.ID, domain.TransactionStatusFailed, apperror.CodeProviderFailure, "Transaction timed out", gomock.Any()).Return(nil)
	f.merchantRepo.EXPECT().GetByIDForUpdate(gomock.Any(), gomock.Any(), eligible.MerchantID).Return(&domain.Merchant{ID: eligible.MerchantID}, nil)
	f.merchantRepo.EXPECT().UpdateBalance(gomock.Any(), gomock.Any(), eligible.MerchantID, gomock.Any()).Return(nil)
	f.txRepo.EXPECT().MarkReversed(gomock.Any(), gomock.Any(), eligible.ID).Return(nil)

	swept, err := f.w.SweepTimeouts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, swept)
}

func TestSweepTimeouts_RecordsMetric(t *testing.T) {
	f, ctrl := setupReconcileWorkers(t, ReconcileWorkersConfig{PendingTimeout: time.Hour, SweepBatchSize: 10})
	defer ctrl.Finish()
	m := metrics.New(prometheus.NewRegistry())
	f.w.SetMetrics(m)

	ctx := context.Background()
	txnID := uuid.New()
	merchantID := uuid.New()
	eligible := domain.Transaction{ID: txnID, MerchantID: merchantID, Status: domain.TransactionStatusPending, CreatedAt: time.Now().Add(-2 * time.Hour)}

	f.txRepo.EXPECT().ListPendingForSweep(ctx, gomock.Any(), 10).Return([]domain.Transaction{eligible}, nil)
	f.transactor.EXPECT().Begin(gomock.Any()).Return(newMockTx(t, true), nil)
	f.txRepo.EXPECT().GetByID(gomock.Any(), txnID).Return(&domain.Transaction{ID: txnID, MerchantID: merchantID, Status: domain.TransactionStatusPending}, nil)
	f.txRepo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), txnID, domain.TransactionStatusFailed, apperror.CodeProviderFailure, "Transaction timed out", gomock.Any()).Return(nil)
	f.merchantRepo.EXPECT().GetByIDForUpdate(gomock.Any(), gomock.Any(), merchantID).Return(&domain.Merchant{ID: merchantID}, nil)
	f.merchantRepo.EXPECT().UpdateBalance(gomock.Any(), gomock.Any(), merchantID, gomock.Any()).Return(nil)
	f.txRepo.EXPECT().MarkReversed(gomock.Any(), gomock.Any(), txnID).Return(nil)

	swept, err := f.w.SweepTimeouts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, swept)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.SweepReversedTotal))
}
