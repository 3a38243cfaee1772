package domain

import (
	"time"

	"github.com/google/uuid"
)

// IdempotencyLog caches a vend result keyed by merchant_ref so a retried
// request with the same reference returns the original outcome instead of
// vending twice.
type IdempotencyLog struct {
	Key           string    `json:"key"` // Format: "merchant_id:merchant_ref"
	TransactionID uuid.UUID `json:"transaction_id"`
	ResponseJSON  []byte    `json:"response_json"`
	CreatedAt     time.Time `json:"created_at"`
}

// BuildIdempotencyKey constructs the standard key format from a merchant
// ID and the merchant-supplied reference (merchant_ref).
func BuildIdempotencyKey(merchantID uuid.UUID, merchantRef string) string {
	return merchantID.String() + ":" + merchantRef
}
