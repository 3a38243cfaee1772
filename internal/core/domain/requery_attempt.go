package domain

import (
	"time"

	"github.com/google/uuid"
)

// RequeryAttemptStatus represents the outcome of a single requery attempt
// against a provider, made by the C8 async requery worker.
type RequeryAttemptStatus string

const (
	RequeryAttemptStatusPending  RequeryAttemptStatus = "PENDING"
	RequeryAttemptStatusResolved RequeryAttemptStatus = "RESOLVED"
	RequeryAttemptStatusExpired  RequeryAttemptStatus = "EXPIRED"
)

// RequeryAttemptLog records each requery attempt the async worker made
// against the originating provider for a PENDING transaction.
type RequeryAttemptLog struct {
	ID            uuid.UUID             `json:"id"`
	TransactionID uuid.UUID             `json:"transaction_id"`
	ProviderCode  string                `json:"provider_code"`
	Attempt       int                   `json:"attempt"`
	Status        RequeryAttemptStatus  `json:"status"`
	ResponseCode  string                `json:"response_code"`
	LastError     *string               `json:"last_error,omitempty"`
	NextRetryAt   *time.Time            `json:"next_retry_at,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}
