package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MerchantStatus represents the state of a merchant account.
type MerchantStatus string

const (
	MerchantStatusActive      MerchantStatus = "ACTIVE"
	MerchantStatusSuspended   MerchantStatus = "SUSPENDED"
	MerchantStatusDeactivated MerchantStatus = "DEACTIVATED"
)

// Merchant represents a registered VAS merchant account. The merchant
// carries its own ledger balance directly rather than through a separate
// wallet entity — this system deals in a single settlement currency.
type Merchant struct {
	ID                uuid.UUID       `json:"id"`
	MerchantCode      string          `json:"merchant_code"`
	MerchantName      string          `json:"merchant_name"`
	APIKeyHash        string          `json:"-"` // argon2id hash, never exposed
	SecretKeyEnc      string          `json:"-"` // AES-256-GCM encrypted, never exposed
	Balance           decimal.Decimal `json:"balance"`
	DailyLimit        decimal.Decimal `json:"daily_limit"`
	DailyTxnCount     int             `json:"-"`
	DailyCountResetAt time.Time       `json:"-"` // Africa/Lagos midnight boundary of last reset
	IPAllowlist       []string        `json:"-"`
	Status            MerchantStatus  `json:"status"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// IsActive returns true if the merchant account may transact.
func (m *Merchant) IsActive() bool {
	return m.Status == MerchantStatusActive
}

// IPAllowed returns true when the allowlist is empty (no restriction) or
// contains the given client IP.
func (m *Merchant) IPAllowed(clientIP string) bool {
	if len(m.IPAllowlist) == 0 {
		return true
	}
	for _, ip := range m.IPAllowlist {
		if ip == clientIP {
			return true
		}
	}
	return false
}

// MerchantDiscount represents a per-merchant, per-product discount rule.
// When several rules apply to the same product, the aggregate is the MAX
// of their computed discount amounts, not a sum.
type MerchantDiscount struct {
	ID          uuid.UUID       `json:"id"`
	MerchantID  uuid.UUID       `json:"merchant_id"`
	ProductCode string          `json:"product_code"`
	Type        DiscountType    `json:"type"`
	Value       decimal.Decimal `json:"value"` // fixed amount, or percentage points
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// DiscountType enumerates how MerchantDiscount.Value is interpreted.
type DiscountType string

const (
	DiscountTypeNone       DiscountType = "NONE"
	DiscountTypeFixed      DiscountType = "FIXED"
	DiscountTypePercentage DiscountType = "PERCENTAGE"
)

// Apply computes the discount amount for a given face amount.
func (d *MerchantDiscount) Apply(amount decimal.Decimal) decimal.Decimal {
	switch d.Type {
	case DiscountTypeFixed:
		return d.Value
	case DiscountTypePercentage:
		return amount.Mul(d.Value).Div(decimal.NewFromInt(100))
	default:
		return decimal.Zero
	}
}

// MerchantFunding records a manual or reconciled credit to a merchant's
// ledger balance, outside of the vend/refund flow (e.g. bank settlement).
type MerchantFunding struct {
	ID         uuid.UUID       `json:"id"`
	MerchantID uuid.UUID       `json:"merchant_id"`
	Amount     decimal.Decimal `json:"amount"`
	Reference  string          `json:"reference"`
	Narration  string          `json:"narration,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}
