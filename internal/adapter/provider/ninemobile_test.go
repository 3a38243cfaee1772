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

func TestNineMobile_Vend_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/"><soapenv:Body><SDF_Data xmlns="http://sdf.cellc.net/commonDataModel"><result><statusCode>0</statusCode><instanceId>9MOB-REF-1</instanceId></result></SDF_Data></soapenv:Body></soapenv:Envelope>`))
	}))
	defer srv.Close()

	account := &domain.ProviderAccount{Config: map[string]string{"url": srv.URL}}
	resp := NewNineMobile().Vend(context.Background(), account, ports.VendRequest{RecipientMSISDN: "08033334444", Amount: decimal.NewFromInt(500)})
	assert.Equal(t, apperror.CodeSuccess, resp.ResponseCode)
	assert.Equal(t, "9MOB-REF-1", resp.ProviderRef)
}

func TestNineMobile_Vend_InvalidMSISDN(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/"><soapenv:Body><SDF_Data xmlns="http://sdf.cellc.net/commonDataModel"><result><statusCode>2</statusCode><errorDescription>invalid subscriber</errorDescription></result></SDF_Data></soapenv:Body></soapenv:Envelope>`))
	}))
	defer srv.Close()

	account := &domain.ProviderAccount{Config: map[string]string{"url": srv.URL}}
	resp := NewNineMobile().Vend(context.Background(), account, ports.VendRequest{RecipientMSISDN: "bad", Amount: decimal.NewFromInt(500)})
	assert.Equal(t, apperror.CodeInvalidMSISDN, resp.ResponseCode)
}

func TestNineMobile_Vend_InsufficientFunds_NotTreatedAsInvalidMSISDN(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/"><soapenv:Body><SDF_Data xmlns="http://sdf.cellc.net/commonDataModel"><result><statusCode>2</statusCode><errorDescription>Insufficient Funds</errorDescription></result></SDF_Data></soapenv:Body></soapenv:Envelope>`))
	}))
	defer srv.Close()

	account := &domain.ProviderAccount{Config: map[string]string{"url": srv.URL}}
	resp := NewNineMobile().Vend(context.Background(), account, ports.VendRequest{RecipientMSISDN: "08033334444", Amount: decimal.NewFromInt(500)})
	assert.Equal(t, apperror.CodeProviderFailure, resp.ResponseCode)
}

func TestNineMobile_Vend_DataRequest_UsesDataRechargeType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/"><soapenv:Body><SDF_Data xmlns="http://sdf.cellc.net/commonDataModel"><result><statusCode>0</statusCode></result></SDF_Data></soapenv:Body></soapenv:Envelope>`))
	}))
	defer srv.Close()

	account := &domain.ProviderAccount{Config: map[string]string{"url": srv.URL}}
	resp := NewNineMobile().Vend(context.Background(), account, ports.VendRequest{RecipientMSISDN: "08033334444", DataCode: "1GB", Amount: decimal.NewFromInt(500)})
	assert.Equal(t, apperror.CodeSuccess, resp.ResponseCode)
}

func TestNineMobile_Requery_NotImplemented(t *testing.T) {
	resp := NewNineMobile().Requery(context.Background(), &domain.ProviderAccount{}, &domain.Transaction{})
	assert.Equal(t, apperror.CodeNotImplemented, resp.ResponseCode)
}
