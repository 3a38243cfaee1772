package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"vas-gateway/internal/core/domain"
	"vas-gateway/internal/core/ports"
	"vas-gateway/pkg/apperror"

	"github.com/shopspring/decimal"
)

// Payvantage speaks JSON REST. Grounded on the legacy
// PayvantageProviderService. Airtime and data each hit a distinct
// endpoint; data additionally needs a plan_code, which we fall back to
// a per-network default when the product catalog doesn't supply one.
type Payvantage struct{}

func NewPayvantage() *Payvantage { return &Payvantage{} }

var payvantagePlanFallback = map[string]string{
	"MTNDATA":      "1005",
	"GLODATA":      "2005",
	"AIRTELDATA":   "3005",
	"9MOBILEDATA":  "4005",
}

type payvantageResponse struct {
	StatusCode string `json:"status_code"`
	Message    string `json:"message"`
	Reference  string `json:"reference"`
}

func (p *Payvantage) networkFor(productCode string) string {
	switch {
	case strings.Contains(productCode, "MTN"):
		return "MTN"
	case strings.Contains(productCode, "GLO"):
		return "GLO"
	case strings.Contains(productCode, "AIRTEL"):
		return "AIRTEL"
	case strings.Contains(productCode, "9MOBILE"):
		return "9Mobile"
	default:
		return "MTN"
	}
}

func (p *Payvantage) Vend(ctx context.Context, account *domain.ProviderAccount, req ports.VendRequest) domain.NormalizedResponse {
	baseURL := account.ConfigValue("base_url", "")
	apiKey := account.ConfigValue("api_key", "")
	clientID := account.ConfigValue("client_id", "")
	verifySSL := account.ConfigValue("verify_ssl", "true") != "false"
	client := httpClientFor(defaultTimeout, verifySSL)

	txnID := fmt.Sprintf("%d-%d", 10000+generateSequence()%90000, generateSequence())

	isAirtime := strings.Contains(req.ProductCode, "VTU") || strings.Contains(req.ProductCode, "AIRTIME")
	var url string
	var payload map[string]string
	if isAirtime {
		url = baseURL + "/service/api/single_airtime_direct_vending"
		payload = map[string]string{
			"amount":         req.Amount.String(),
			"network":        p.networkFor(req.ProductCode),
			"phonenumber":    req.RecipientMSISDN,
			"transaction_id": txnID,
		}
	} else {
		planCode := req.DataCode
		if planCode == "" {
			planCode = payvantagePlanFallback[req.ProductCode]
		}
		url = baseURL + "/service/api/single_data_direct_vending"
		payload = map[string]string{
			"plan_code":      planCode,
			"phonenumber":    req.RecipientMSISDN,
			"transaction_id": txnID,
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return failedResponse(apperror.CodeProviderFailure, err.Error())
	}

	raw, err := postJSON(client, url, body, map[string]string{
		"x-api-key": apiKey,
		"client-id": clientID,
	})
	if err != nil {
		if isTimeout(err) {
			return timeoutResponse(fmt.Sprintf("request timeout after %s", defaultTimeout))
		}
		return transportFailureResponse(err)
	}

	var pr payvantageResponse
	if err := json.Unmarshal(raw, &pr); err != nil {
		return failedResponse(apperror.CodeProviderFailure, "unable to parse Payvantage response")
	}

	resp := domain.NormalizedResponse{
		ProviderRef:      pr.Reference,
		ProviderAvailBal: "0",
	}
	if resp.ProviderRef == "" {
		resp.ProviderRef = txnID
	}
	switch pr.StatusCode {
	case "200":
		resp.ResponseCode = apperror.CodeSuccess
		resp.ResponseMessage = "Successful"
	case "501":
		resp.ResponseCode = apperror.CodePending
		resp.ResponseMessage = "Transaction pending"
	case "3":
		resp.ResponseCode = apperror.CodeInvalidMSISDN
		resp.ResponseMessage = "Invalid request"
	default:
		resp.ResponseCode = apperror.CodeProviderFailure
		resp.ResponseMessage = pr.Message
		if resp.ResponseMessage == "" {
			resp.ResponseMessage = "Unknown error"
		}
	}
	return resp
}

func (p *Payvantage) Requery(ctx context.Context, account *domain.ProviderAccount, txn *domain.Transaction) domain.NormalizedResponse {
	baseURL := account.ConfigValue("base_url", "")
	apiKey := account.ConfigValue("api_key", "")
	clientID := account.ConfigValue("client_id", "")
	verifySSL := account.ConfigValue("verify_ssl", "true") != "false"
	client := httpClientFor(defaultTimeout, verifySSL)

	serviceCode := "200"
	if strings.Contains(txn.ProductCode, "VTU") {
		serviceCode = "100"
	}
	providerRef := ""
	if txn.ProviderRef != nil {
		providerRef = *txn.ProviderRef
	}

	payload, _ := json.Marshal(map[string]string{
		"service_code":   serviceCode,
		"transaction_id": providerRef,
	})

	raw, err := postJSON(client, baseURL+"/check_transaction_status", payload, map[string]string{
		"x-api-key": apiKey,
		"client-id": clientID,
	})
	if err != nil {
		if isTimeout(err) {
			return timeoutResponse(fmt.Sprintf("request timeout after %s", defaultTimeout))
		}
		return transportFailureResponse(err)
	}

	var outer struct {
		StatusCode string `json:"status_code"`
		Result     struct {
			StatusCode string `json:"status_code"`
		} `json:"result"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &outer); err != nil {
		return failedResponse(apperror.CodeProviderFailure, "unable to parse Payvantage requery response")
	}

	if outer.StatusCode == "200" && outer.Result.StatusCode == "200" {
		return domain.NormalizedResponse{
			ResponseCode:     apperror.CodeSuccess,
			ResponseMessage:  "Successful",
			ProviderRef:      providerRef,
			ProviderAvailBal: "0",
		}
	}
	msg := outer.Message
	if msg == "" {
		msg = "Transaction not found"
	}
	return domain.NormalizedResponse{
		ResponseCode:     apperror.CodeTransactionNotFound,
		ResponseMessage:  msg,
		ProviderRef:      providerRef,
		ProviderAvailBal: "0",
	}
}

func (p *Payvantage) GetBalance(ctx context.Context, account *domain.ProviderAccount) (decimal.Decimal, error) {
	return account.AvailableBalance, nil
}

var _ ports.ProviderAdapter = (*Payvantage)(nil)
