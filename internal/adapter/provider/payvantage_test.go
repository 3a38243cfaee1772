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

func TestPayvantage_Vend_Airtime_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "single_airtime_direct_vending")
		w.Write([]byte(`{"status_code":"200","message":"ok","reference":"PV-REF-1"}`))
	}))
	defer srv.Close()

	account := &domain.ProviderAccount{Config: map[string]string{"base_url": srv.URL}}
	req := ports.VendRequest{ProductCode: "MTNVTU", RecipientMSISDN: "08033334444", Amount: decimal.NewFromInt(500)}
	resp := NewPayvantage().Vend(context.Background(), account, req)
	assert.Equal(t, apperror.CodeSuccess, resp.ResponseCode)
	assert.Equal(t, "PV-REF-1", resp.ProviderRef)
}

func TestPayvantage_Vend_Data_UsesDataEndpointAndPlanFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "single_data_direct_vending")
		w.Write([]byte(`{"status_code":"200","reference":"PV-REF-2"}`))
	}))
	defer srv.Close()

	account := &domain.ProviderAccount{Config: map[string]string{"base_url": srv.URL}}
	req := ports.VendRequest{ProductCode: "MTNDATA", RecipientMSISDN: "08033334444", Amount: decimal.NewFromInt(500)}
	resp := NewPayvantage().Vend(context.Background(), account, req)
	assert.Equal(t, apperror.CodeSuccess, resp.ResponseCode)
}

func TestPayvantage_Vend_Pending(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status_code":"501","message":"processing"}`))
	}))
	defer srv.Close()

	account := &domain.ProviderAccount{Config: map[string]string{"base_url": srv.URL}}
	req := ports.VendRequest{ProductCode: "MTNVTU", RecipientMSISDN: "08033334444", Amount: decimal.NewFromInt(500)}
	resp := NewPayvantage().Vend(context.Background(), account, req)
	assert.Equal(t, apperror.CodePending, resp.ResponseCode)
}

func TestPayvantage_Vend_InvalidRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status_code":"3","message":"bad msisdn"}`))
	}))
	defer srv.Close()

	account := &domain.ProviderAccount{Config: map[string]string{"base_url": srv.URL}}
	req := ports.VendRequest{ProductCode: "MTNVTU", RecipientMSISDN: "bad", Amount: decimal.NewFromInt(500)}
	resp := NewPayvantage().Vend(context.Background(), account, req)
	assert.Equal(t, apperror.CodeInvalidMSISDN, resp.ResponseCode)
}

func TestPayvantage_Requery_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status_code":"200","result":{"status_code":"200"}}`))
	}))
	defer srv.Close()

	account := &domain.ProviderAccount{Config: map[string]string{"base_url": srv.URL}}
	ref := "PV-REF-1"
	txn := &domain.Transaction{ProductCode: "MTNVTU", ProviderRef: &ref}
	resp := NewPayvantage().Requery(context.Background(), account, txn)
	assert.Equal(t, apperror.CodeSuccess, resp.ResponseCode)
	assert.Equal(t, "PV-REF-1", resp.ProviderRef)
}

func TestPayvantage_Requery_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status_code":"404","message":"not found"}`))
	}))
	defer srv.Close()

	account := &domain.ProviderAccount{Config: map[string]string{"base_url": srv.URL}}
	txn := &domain.Transaction{ProductCode: "MTNVTU"}
	resp := NewPayvantage().Requery(context.Background(), account, txn)
	assert.Equal(t, apperror.CodeTransactionNotFound, resp.ResponseCode)
}
