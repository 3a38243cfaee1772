package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Provider represents a vending network/partner (MTN, AIRTEL, GLO,
// 9MOBILE, PAYVANTAGE, CREDITSWITCH).
type Provider struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	ProviderCode string    `json:"provider_code"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProviderAccount holds the operational credentials and float balance for
// a Provider. Config carries provider-specific settings (base URL,
// login/public/private keys, vending SIM, verify_ssl) keyed by name —
// the same shape as the original system's per-provider config blob, kept
// as a map since each provider's field set differs.
type ProviderAccount struct {
	ID                 uuid.UUID         `json:"id"`
	ProviderID         uuid.UUID         `json:"provider_id"`
	AccountName        string            `json:"account_name"`
	AvailableBalance   decimal.Decimal   `json:"available_balance"`
	BalanceAtProvider  decimal.Decimal   `json:"balance_at_provider"`
	VendingSIM         string            `json:"vending_sim,omitempty"`
	Config             map[string]string `json:"-"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

// ConfigValue returns the named config entry, or def if absent.
func (a *ProviderAccount) ConfigValue(key, def string) string {
	if a.Config == nil {
		return def
	}
	if v, ok := a.Config[key]; ok && v != "" {
		return v
	}
	return def
}

// NormalizedResponse is the uniform shape every provider adapter returns,
// regardless of whether the provider spoke SOAP/XML or JSON.
type NormalizedResponse struct {
	ResponseCode     string
	ResponseMessage  string
	ProviderRef      string
	ProviderAvailBal string
}
