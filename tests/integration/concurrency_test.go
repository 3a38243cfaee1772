package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"vas-gateway/pkg/apperror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentVendAirtime_BalanceNeverGoesNegative fires N concurrent
// vendAirtime requests against one merchant funded for fewer than N of
// them, and checks the merchant's ledger balance never drops below zero —
// debitAndInsert's read-check-debit must be serialized; here the in-memory
// transactor's lock, held from Begin to Commit, stands in for Postgres's
// SELECT ... FOR UPDATE.
func TestConcurrentVendAirtime_BalanceNeverGoesNegative(t *testing.T) {
	app := newTestApp(t, &stubProviderAdapter{vendResponseCode: apperror.CodeSuccess})
	defer app.close()

	merchant, err := app.merchantRepo.GetByMerchantCode(context.Background(), "MCH-001")
	require.NoError(t, err)
	merchant.Balance = decimal.NewFromInt(5_000) // funds exactly 5 of the 20 requests below
	require.NoError(t, app.merchantRepo.Create(context.Background(), merchant))

	const concurrency = 20
	var wg sync.WaitGroup
	successes := make([]bool, concurrency)

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			body, _ := json.Marshal(map[string]string{
				"product_code": "MTNVTU",
				"phone_number": "08031234567",
				"amount":       "1000",
				"merchant_ref": fmt.Sprintf("ORD-CONC-%d", i),
			})
			resp := app.doSigned(t, http.MethodPost, "/api/product/vendAirtime", fmt.Sprintf("nonce-conc-%d", i), body)
			env := decodeEnvelope(t, resp)
			successes[i] = env["responseCode"] == "" // vend response is pre-reconcile; absence of an error envelope means the debit went through
		}(i)
	}
	wg.Wait()

	ok := 0
	for _, s := range successes {
		if s {
			ok++
		}
	}
	assert.Equal(t, 5, ok, "exactly 5 of 20 requests should have been funded")

	final, err := app.merchantRepo.GetByMerchantCode(context.Background(), "MCH-001")
	require.NoError(t, err)
	assert.True(t, final.Balance.GreaterThanOrEqual(decimal.Zero), "balance must never go negative, got %s", final.Balance.String())
	assert.Equal(t, decimal.Zero.String(), final.Balance.String())
}

// TestConcurrentVendAirtime_IdempotentReplay fires the same merchant_ref
// concurrently and checks exactly one debit is ever applied — the unique
// (merchant_id, merchant_ref) constraint the in-memory transaction repo
// enforces is what makes every racing idempotency-miss collapse to a
// single winner, just like Postgres's unique index would.
func TestConcurrentVendAirtime_IdempotentReplay(t *testing.T) {
	app := newTestApp(t, &stubProviderAdapter{vendResponseCode: apperror.CodeSuccess})
	defer app.close()

	const concurrency = 10
	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			body, _ := json.Marshal(map[string]string{
				"product_code": "MTNVTU",
				"phone_number": "08031234567",
				"amount":       "1000",
				"merchant_ref": "ORD-RACE",
			})
			resp := app.doSigned(t, http.MethodPost, "/api/product/vendAirtime", fmt.Sprintf("nonce-race-%d", i), body)
			resp.Body.Close()
		}(i)
	}
	wg.Wait()

	merchant, err := app.merchantRepo.GetByMerchantCode(context.Background(), "MCH-001")
	require.NoError(t, err)
	assert.Equal(t, decimal.NewFromInt(999_000).String(), merchant.Balance.String())
}
