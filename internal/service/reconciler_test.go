package service

import (
	"context"
	"testing"

	"vas-gateway/internal/core/domain"
	"vas-gateway/internal/core/ports/mocks"
	"vas-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type reconcilerFixture struct {
	r            *Reconciler
	txRepo       *mocks.MockTransactionRepository
	merchantRepo *mocks.MockMerchantRepository
	transactor   *mocks.MockDBTransactor
}

func setupReconciler(t *testing.T) (reconcilerFixture, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	f := reconcilerFixture{
		txRepo:       mocks.NewMockTransactionRepository(ctrl),
		merchantRepo: mocks.NewMockMerchantRepository(ctrl),
		transactor:   mocks.NewMockDBTransactor(ctrl),
	}
	f.r = NewReconciler(f.txRepo, f.merchantRepo, f.transactor, newTestLogger())
	return f, ctrl
}

func TestReconciler_Apply_Success_NoReschedule(t *testing.T) {
	f, ctrl := setupReconciler(t)
	defer ctrl.Finish()

	ctx := context.Background()
	txnID := uuid.New()
	txn := &domain.Transaction{ID: txnID, MerchantID: uuid.New(), DiscountAmount: decimal.Zero}

	f.transactor.EXPECT().Begin(gomock.Any()).Return(newMockTx(t, true), nil)
	f.txRepo.EXPECT().GetByID(gomock.Any(), txnID).Return(&domain.Transaction{ID: txnID, Status: domain.TransactionStatusPending}, nil)
	f.txRepo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), txnID, domain.TransactionStatusSuccess, apperror.CodeSuccess, "ok", gomock.Any()).Return(nil)

	schedule := f.r.Apply(ctx, txn, domain.NormalizedResponse{ResponseCode: apperror.CodeSuccess, ResponseMessage: "ok", ProviderRef: "PRV-1"})
	assert.False(t, schedule)
}

func TestReconciler_Apply_Pending_SchedulesRequery(t *testing.T) {
	f, ctrl := setupReconciler(t)
	defer ctrl.Finish()

	ctx := context.Background()
	txnID := uuid.New()
	txn := &domain.Transaction{ID: txnID}

	f.transactor.EXPECT().Begin(gomock.Any()).Return(newMockTx(t, true), nil)
	f.txRepo.EXPECT().GetByID(gomock.Any(), txnID).Return(&domain.Transaction{ID: txnID, Status: domain.TransactionStatusPending}, nil)
	f.txRepo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), txnID, domain.TransactionStatusPending, apperror.CodePending, "awaiting", gomock.Any()).Return(nil)

	schedule := f.r.Apply(ctx, txn, domain.NormalizedResponse{ResponseCode: apperror.CodePending, ResponseMessage: "awaiting"})
	assert.True(t, schedule)
}

func TestReconciler_Apply_Failure_CreditsFullAmountCharged(t *testing.T) {
	f, ctrl := setupReconciler(t)
	defer ctrl.Finish()

	ctx := context.Background()
	txnID := uuid.New()
	merchantID := uuid.New()
	txn := &domain.Transaction{ID: txnID, MerchantID: merchantID}

	current := &domain.Transaction{
		ID:             txnID,
		MerchantID:     merchantID,
		Status:         domain.TransactionStatusPending,
		DiscountAmount: decimal.NewFromInt(50),
		AmountCharged:  decimal.NewFromInt(950),
	}
	merchant := &domain.Merchant{ID: merchantID, Balance: decimal.NewFromInt(9050)}

	f.transactor.EXPECT().Begin(gomock.Any()).Return(newMockTx(t, true), nil)
	f.txRepo.EXPECT().GetByID(gomock.Any(), txnID).Return(current, nil)
	f.txRepo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), txnID, domain.TransactionStatusFailed, apperror.CodeProviderFailure, "declined", gomock.Any()).Return(nil)
	f.merchantRepo.EXPECT().GetByIDForUpdate(gomock.Any(), gomock.Any(), merchantID).Return(merchant, nil)

	var capturedBalance string
	f.merchantRepo.EXPECT().UpdateBalance(gomock.Any(), gomock.Any(), merchantID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ interface{}, _ uuid.UUID, newBalance string) error {
			capturedBalance = newBalance
			return nil
		})
	f.txRepo.EXPECT().MarkReversed(gomock.Any(), gomock.Any(), txnID).Return(nil)

	schedule := f.r.Apply(ctx, txn, domain.NormalizedResponse{ResponseCode: apperror.CodeProviderFailure, ResponseMessage: "declined", ProviderRef: "PRV-2"})
	assert.False(t, schedule)

	// the full amount_charged (950) is credited back, not discount_amount (50)
	assert.Equal(t, merchant.Balance.Add(decimal.NewFromInt(950)).String(), capturedBalance)
}

func TestReconciler_Finalize_AlreadyTerminal_NoOp(t *testing.T) {
	f, ctrl := setupReconciler(t)
	defer ctrl.Finish()

	ctx := context.Background()
	txnID := uuid.New()

	f.transactor.EXPECT().Begin(gomock.Any()).Return(newMockTx(t, false), nil)
	f.txRepo.EXPECT().GetByID(gomock.Any(), txnID).Return(&domain.Transaction{ID: txnID, Status: domain.TransactionStatusSuccess}, nil)

	// UpdateStatus/MarkReversed must never be called once a transaction is
	// already terminal — this is what stops a concurrent sweeper and requery
	// worker from double-crediting the same reversal.
	f.r.Finalize(ctx, txnID, domain.TransactionStatusFailed, apperror.CodeProviderFailure, "late response", nil, true)
}

func TestReconciler_Finalize_AlreadyReversed_SkipsCredit(t *testing.T) {
	f, ctrl := setupReconciler(t)
	defer ctrl.Finish()

	ctx := context.Background()
	txnID := uuid.New()
	current := &domain.Transaction{ID: txnID, Status: domain.TransactionStatusPending, IsReversed: true}

	f.transactor.EXPECT().Begin(gomock.Any()).Return(newMockTx(t, true), nil)
	f.txRepo.EXPECT().GetByID(gomock.Any(), txnID).Return(current, nil)
	f.txRepo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), txnID, domain.TransactionStatusFailed, apperror.CodeProviderFailure, "timeout", gomock.Any()).Return(nil)

	// GetByIDForUpdate/UpdateBalance/MarkReversed must not be called again.
	f.r.Finalize(ctx, txnID, domain.TransactionStatusFailed, apperror.CodeProviderFailure, "timeout", nil, true)
}
