package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the kind of product vended.
type TransactionType string

const (
	TransactionTypeAirtime TransactionType = "AIRTIME"
	TransactionTypeData    TransactionType = "DATA"
)

// TransactionStatus represents the lifecycle state of a vend transaction.
type TransactionStatus string

const (
	TransactionStatusPending  TransactionStatus = "PENDING"
	TransactionStatusSuccess  TransactionStatus = "SUCCESS"
	TransactionStatusFailed   TransactionStatus = "FAILED"
	TransactionStatusReversed TransactionStatus = "REVERSED"
)

// Transaction represents a single vend attempt: the debit of a merchant's
// balance and the corresponding provider dispatch.
type Transaction struct {
	ID              uuid.UUID         `json:"id"`
	MerchantRef     string            `json:"merchant_ref"`
	MerchantID      uuid.UUID         `json:"merchant_id"`
	ProductCode     string            `json:"product_code"`
	ProviderCode    string            `json:"provider_code"`
	RecipientMSISDN string            `json:"recipient_msisdn"`
	DataCode        *string           `json:"data_code,omitempty"`
	FaceAmount      decimal.Decimal   `json:"face_amount"`
	DiscountAmount  decimal.Decimal   `json:"discount_amount"`
	AmountCharged   decimal.Decimal   `json:"amount_charged"`
	TransactionType TransactionType   `json:"transaction_type"`
	Status          TransactionStatus `json:"status"`
	ResponseCode    string            `json:"response_code"`
	ResponseMessage string            `json:"response_message"`
	ProviderRef     *string           `json:"provider_ref,omitempty"`
	IsReversed      bool              `json:"is_reversed"`
	ClientIP        string            `json:"client_ip,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	ProcessedAt     *time.Time        `json:"processed_at,omitempty"`
}

// IsTerminal returns true if the transaction is in a final state.
func (t *Transaction) IsTerminal() bool {
	return t.Status == TransactionStatusSuccess ||
		t.Status == TransactionStatusFailed ||
		t.Status == TransactionStatusReversed
}

// EligibleForTimeoutReversal reports whether t qualifies for the C8
// sweeper: still PENDING, never reversed, and older than the timeout.
func (t *Transaction) EligibleForTimeoutReversal(now time.Time, timeout time.Duration) bool {
	return t.Status == TransactionStatusPending &&
		!t.IsReversed &&
		t.CreatedAt.Before(now.Add(-timeout))
}
