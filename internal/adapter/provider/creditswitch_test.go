package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"vas-gateway/internal/core/domain"
	"vas-gateway/internal/core/ports"
	"vas-gateway/pkg/apperror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCreditSwitch_Vend_Airtime_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/api/v1/mvend")
		w.Write([]byte(`{"status":"success","responseCode":"00","transactionId":"CS-REF-1","balance":"2000.00"}`))
	}))
	defer srv.Close()

	account := &domain.ProviderAccount{Config: map[string]string{
		"base_url": srv.URL, "login_id": "merchant1", "public_key": "pub", "private_key": "priv",
	}}
	req := ports.VendRequest{ProductCode: "MTNVTU", RecipientMSISDN: "08033334444", Amount: decimal.NewFromInt(500)}
	resp := NewCreditSwitch().Vend(context.Background(), account, req)
	assert.Equal(t, apperror.CodeSuccess, resp.ResponseCode)
	assert.Equal(t, "CS-REF-1", resp.ProviderRef)
	assert.Equal(t, "2000.00", resp.ProviderAvailBal)
}

func TestCreditSwitch_Vend_Data_UsesDataEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/api/v1/dvend")
		w.Write([]byte(`{"status":"success","transactionId":"CS-REF-2"}`))
	}))
	defer srv.Close()

	account := &domain.ProviderAccount{Config: map[string]string{"base_url": srv.URL}}
	req := ports.VendRequest{ProductCode: "MTNDATA", DataCode: "1GB", RecipientMSISDN: "08033334444", Amount: decimal.NewFromInt(500)}
	resp := NewCreditSwitch().Vend(context.Background(), account, req)
	assert.Equal(t, apperror.CodeSuccess, resp.ResponseCode)
}

func TestCreditSwitch_Vend_Pending(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"pending","responseCode":"C001"}`))
	}))
	defer srv.Close()

	account := &domain.ProviderAccount{Config: map[string]string{"base_url": srv.URL}}
	req := ports.VendRequest{ProductCode: "MTNVTU", RecipientMSISDN: "08033334444", Amount: decimal.NewFromInt(500)}
	resp := NewCreditSwitch().Vend(context.Background(), account, req)
	assert.Equal(t, apperror.CodePending, resp.ResponseCode)
}

func TestCreditSwitch_Vend_Failure_FallsBackToDefaultMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"failed","responseCode":"99"}`))
	}))
	defer srv.Close()

	account := &domain.ProviderAccount{Config: map[string]string{"base_url": srv.URL}}
	req := ports.VendRequest{ProductCode: "MTNVTU", RecipientMSISDN: "08033334444", Amount: decimal.NewFromInt(500)}
	resp := NewCreditSwitch().Vend(context.Background(), account, req)
	assert.Equal(t, apperror.CodeProviderFailure, resp.ResponseCode)
	assert.Equal(t, "Transaction failed", resp.ResponseMessage)
}

func TestCreditSwitch_Vend_MissingTransactionID_FallsBackToRequestID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success"}`))
	}))
	defer srv.Close()

	account := &domain.ProviderAccount{Config: map[string]string{"base_url": srv.URL}}
	req := ports.VendRequest{ProductCode: "MTNVTU", RecipientMSISDN: "08033334444", Amount: decimal.NewFromInt(500)}
	resp := NewCreditSwitch().Vend(context.Background(), account, req)
	assert.Equal(t, apperror.CodeSuccess, resp.ResponseCode)
	assert.NotEmpty(t, resp.ProviderRef)
}

func TestCreditSwitch_Requery_NotImplemented(t *testing.T) {
	resp := NewCreditSwitch().Requery(context.Background(), &domain.ProviderAccount{}, &domain.Transaction{})
	assert.Equal(t, apperror.CodeNotImplemented, resp.ResponseCode)
}

func TestServiceID_RoutesByNetworkAndType(t *testing.T) {
	assert.Equal(t, "A04E", serviceID("MTNVTU"))
	assert.Equal(t, "D04D", serviceID("MTNDATA"))
	assert.Equal(t, "A04G", serviceID("GLOVTU"))
	assert.Equal(t, "A04A", serviceID("AIRTELVTU"))
	assert.Equal(t, "D04N", serviceID("9MOBILEDATA"))
}
