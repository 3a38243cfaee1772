package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMerchant_IsActive(t *testing.T) {
	tests := []struct {
		name   string
		status MerchantStatus
		want   bool
	}{
		{"active", MerchantStatusActive, true},
		{"suspended", MerchantStatusSuspended, false},
		{"deactivated", MerchantStatusDeactivated, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Merchant{Status: tt.status}
			assert.Equal(t, tt.want, m.IsActive())
		})
	}
}

func TestMerchant_IPAllowed(t *testing.T) {
	open := &Merchant{}
	assert.True(t, open.IPAllowed("1.2.3.4"))

	restricted := &Merchant{IPAllowlist: []string{"10.0.0.1", "10.0.0.2"}}
	assert.True(t, restricted.IPAllowed("10.0.0.1"))
	assert.False(t, restricted.IPAllowed("10.0.0.9"))
}

func TestMerchantDiscount_Apply(t *testing.T) {
	amount := decimal.NewFromInt(1000)

	fixed := &MerchantDiscount{Type: DiscountTypeFixed, Value: decimal.NewFromInt(50)}
	assert.True(t, decimal.NewFromInt(50).Equal(fixed.Apply(amount)))

	pct := &MerchantDiscount{Type: DiscountTypePercentage, Value: decimal.NewFromInt(10)}
	assert.True(t, decimal.NewFromInt(100).Equal(pct.Apply(amount)))

	none := &MerchantDiscount{Type: DiscountTypeNone}
	assert.True(t, decimal.Zero.Equal(none.Apply(amount)))
}

func TestTransaction_IsTerminal(t *testing.T) {
	tests := []struct {
		name   string
		status TransactionStatus
		want   bool
	}{
		{"pending", TransactionStatusPending, false},
		{"success", TransactionStatusSuccess, true},
		{"failed", TransactionStatusFailed, true},
		{"reversed", TransactionStatusReversed, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := &Transaction{Status: tt.status}
			assert.Equal(t, tt.want, tx.IsTerminal())
		})
	}
}

func TestTransaction_EligibleForTimeoutReversal(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	timeout := 2 * time.Minute

	stale := &Transaction{Status: TransactionStatusPending, CreatedAt: now.Add(-3 * time.Minute)}
	assert.True(t, stale.EligibleForTimeoutReversal(now, timeout))

	fresh := &Transaction{Status: TransactionStatusPending, CreatedAt: now.Add(-1 * time.Minute)}
	assert.False(t, fresh.EligibleForTimeoutReversal(now, timeout))

	alreadyReversed := &Transaction{Status: TransactionStatusPending, IsReversed: true, CreatedAt: now.Add(-3 * time.Minute)}
	assert.False(t, alreadyReversed.EligibleForTimeoutReversal(now, timeout))

	successful := &Transaction{Status: TransactionStatusSuccess, CreatedAt: now.Add(-3 * time.Minute)}
	assert.False(t, successful.EligibleForTimeoutReversal(now, timeout))
}

func TestBuildIdempotencyKey(t *testing.T) {
	id := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
	key := BuildIdempotencyKey(id, "ORD-001")
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000:ORD-001", key)
}

func TestMerchantStatus_Constants(t *testing.T) {
	assert.Equal(t, MerchantStatus("ACTIVE"), MerchantStatusActive)
	assert.Equal(t, MerchantStatus("SUSPENDED"), MerchantStatusSuspended)
	assert.Equal(t, MerchantStatus("DEACTIVATED"), MerchantStatusDeactivated)
}

func TestTransactionType_Constants(t *testing.T) {
	assert.Equal(t, TransactionType("AIRTIME"), TransactionTypeAirtime)
	assert.Equal(t, TransactionType("DATA"), TransactionTypeData)
}

func TestTransactionStatus_Constants(t *testing.T) {
	assert.Equal(t, TransactionStatus("PENDING"), TransactionStatusPending)
	assert.Equal(t, TransactionStatus("SUCCESS"), TransactionStatusSuccess)
	assert.Equal(t, TransactionStatus("FAILED"), TransactionStatusFailed)
	assert.Equal(t, TransactionStatus("REVERSED"), TransactionStatusReversed)
}

func TestProduct_WithinRange(t *testing.T) {
	p := &Product{MinAmount: decimal.NewFromInt(50), MaxAmount: decimal.NewFromInt(5000)}
	assert.True(t, p.WithinRange(decimal.NewFromInt(100)))
	assert.False(t, p.WithinRange(decimal.NewFromInt(10)))
	assert.False(t, p.WithinRange(decimal.NewFromInt(10000)))
}

func TestProviderAccount_ConfigValue(t *testing.T) {
	acc := &ProviderAccount{Config: map[string]string{"base_url": "https://x"}}
	assert.Equal(t, "https://x", acc.ConfigValue("base_url", ""))
	assert.Equal(t, "fallback", acc.ConfigValue("missing", "fallback"))

	empty := &ProviderAccount{}
	assert.Equal(t, "fallback", empty.ConfigValue("missing", "fallback"))
}
