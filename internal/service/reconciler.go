package service

import (
	"context"
	"fmt"

	"vas-gateway/internal/core/domain"
	"vas-gateway/internal/core/ports"
	"vas-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Reconciler applies a provider's NormalizedResponse to a transaction under
// a row lock, crediting a reversal when warranted. It is shared by the
// initial vend dispatch, the C8 requery worker, and the timeout sweeper —
// every writer of transaction terminal state goes through here so the
// refund-iff-not-already-reversed check always happens inside one lock.
type Reconciler struct {
	txRepo       ports.TransactionRepository
	merchantRepo ports.MerchantRepository
	transactor   ports.DBTransactor
	log          zerolog.Logger
}

// NewReconciler creates a new Reconciler.
func NewReconciler(txRepo ports.TransactionRepository, merchantRepo ports.MerchantRepository, transactor ports.DBTransactor, log zerolog.Logger) *Reconciler {
	return &Reconciler{txRepo: txRepo, merchantRepo: merchantRepo, transactor: transactor, log: log}
}

// Apply folds a NormalizedResponse into a terminal or pending transaction
// state and reports whether the caller should schedule a requery (true
// iff the response left the transaction PENDING).
func (r *Reconciler) Apply(ctx context.Context, txn *domain.Transaction, resp domain.NormalizedResponse) (schedulePending bool) {
	switch resp.ResponseCode {
	case apperror.CodeSuccess:
		r.Finalize(ctx, txn.ID, domain.TransactionStatusSuccess, resp.ResponseCode, resp.ResponseMessage, &resp.ProviderRef, false)
		return false
	case apperror.CodePending:
		r.Finalize(ctx, txn.ID, domain.TransactionStatusPending, resp.ResponseCode, resp.ResponseMessage, &resp.ProviderRef, false)
		return true
	default:
		r.Finalize(ctx, txn.ID, domain.TransactionStatusFailed, resp.ResponseCode, resp.ResponseMessage, &resp.ProviderRef, true)
		return false
	}
}

// Finalize updates a transaction's status and, when reverse is true,
// credits the full amount_charged back to the merchant — all under a
// single row lock on both the transaction and the merchant, so a
// concurrent reconcile attempt (requery worker vs. sweeper) can never
// double-credit.
func (r *Reconciler) Finalize(ctx context.Context, txnID uuid.UUID, status domain.TransactionStatus, responseCode, responseMessage string, providerRef *string, reverse bool) {
	dbTx, err := r.transactor.Begin(ctx)
	if err != nil {
		r.log.Error().Err(err).Str("txn_id", txnID.String()).Msg("finalize: begin tx failed")
		return
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	current, err := r.txRepo.GetByID(ctx, txnID)
	if err != nil || current == nil {
		r.log.Error().Err(err).Str("txn_id", txnID.String()).Msg("finalize: reload transaction failed")
		return
	}
	if current.IsTerminal() {
		return
	}

	if err := r.txRepo.UpdateStatus(ctx, dbTx, txnID, status, responseCode, responseMessage, providerRef); err != nil {
		r.log.Error().Err(err).Str("txn_id", txnID.String()).Msg("finalize: update status failed")
		return
	}

	if reverse && !current.IsReversed {
		merchant, err := r.merchantRepo.GetByIDForUpdate(ctx, dbTx, current.MerchantID)
		if err != nil || merchant == nil {
			r.log.Error().Err(err).Str("txn_id", txnID.String()).Msg("finalize: lock merchant for reversal failed")
			return
		}
		credited := merchant.Balance.Add(current.AmountCharged)
		if err := r.merchantRepo.UpdateBalance(ctx, dbTx, merchant.ID, credited.String()); err != nil {
			r.log.Error().Err(err).Str("txn_id", txnID.String()).Msg("finalize: credit reversal failed")
			return
		}
		if err := r.txRepo.MarkReversed(ctx, dbTx, txnID); err != nil {
			r.log.Error().Err(err).Str("txn_id", txnID.String()).Msg("finalize: mark reversed failed")
			return
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		r.log.Error().Err(err).Str("txn_id", txnID.String()).Msg("finalize: commit failed")
	}
}

// reload fetches the latest transaction row; used by workers that only
// hold a transaction ID or a stale copy.
func (r *Reconciler) reload(ctx context.Context, txnID uuid.UUID) (*domain.Transaction, error) {
	txn, err := r.txRepo.GetByID(ctx, txnID)
	if err != nil {
		return nil, fmt.Errorf("reload transaction: %w", err)
	}
	return txn, nil
}
