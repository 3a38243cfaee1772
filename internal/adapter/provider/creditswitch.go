package provider

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"vas-gateway/internal/core/domain"
	"vas-gateway/internal/core/ports"
	"vas-gateway/pkg/apperror"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// CreditSwitch speaks JSON REST, signing every request with a bcrypt
// checksum rather than the legacy SHA-256 digest. Grounded on the legacy
// CreditswitchProviderService for transport shape and service-ID
// derivation; the checksum itself follows the newer bcrypt scheme.
type CreditSwitch struct{}

func NewCreditSwitch() *CreditSwitch { return &CreditSwitch{} }

type creditSwitchResponse struct {
	Status        string `json:"status"`
	ResponseCode  string `json:"responseCode"`
	Message       string `json:"message"`
	TransactionID string `json:"transactionId"`
	Balance       string `json:"balance"`
}

// serviceID derives the provider's service code from the network encoded
// in the product code and whether this is an airtime or data request.
func serviceID(productCode string) string {
	isData := strings.Contains(productCode, "DATA")
	switch {
	case strings.Contains(productCode, "MTN"):
		if isData {
			return "D04D"
		}
		return "A04E"
	case strings.Contains(productCode, "GLO"):
		if isData {
			return "D04G"
		}
		return "A04G"
	case strings.Contains(productCode, "AIRTEL"):
		if isData {
			return "D04A"
		}
		return "A04A"
	case strings.Contains(productCode, "9MOBILE"):
		if isData {
			return "D04N"
		}
		return "A04N"
	default:
		return "A04E"
	}
}

// checksum builds the bcrypt-based checksum over
// loginId|requestId|serviceId|amount|privateKey|recipient, truncated to
// bcrypt's 72-byte input limit before hashing.
func checksum(loginID, requestID, svcID, amount, privateKey, recipient string) (string, error) {
	raw := strings.Join([]string{loginID, requestID, svcID, amount, privateKey, recipient}, "|")
	if len(raw) > 72 {
		raw = raw[:72]
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(hash), nil
}

func (c *CreditSwitch) Vend(ctx context.Context, account *domain.ProviderAccount, req ports.VendRequest) domain.NormalizedResponse {
	baseURL := account.ConfigValue("base_url", "")
	loginID := account.ConfigValue("login_id", "")
	publicKey := account.ConfigValue("public_key", "")
	privateKey := account.ConfigValue("private_key", "")
	verifySSL := account.ConfigValue("verify_ssl", "true") != "false"
	client := httpClientFor(defaultTimeout, verifySSL)

	requestID := fmt.Sprintf("%d", 100000000000+generateSequence()%900000000000)
	svcID := serviceID(req.ProductCode)
	amountNaira := req.Amount.String()

	sum, err := checksum(loginID, requestID, svcID, amountNaira, privateKey, req.RecipientMSISDN)
	if err != nil {
		return failedResponse(apperror.CodeProviderFailure, "unable to compute checksum")
	}

	isData := req.DataCode != ""
	payload := map[string]string{
		"loginId":   loginID,
		"key":       publicKey,
		"requestId": requestID,
		"serviceId": svcID,
		"amount":    amountNaira,
		"recipient": req.RecipientMSISDN,
		"checksum":  sum,
	}
	url := baseURL + "/api/v1/mvend"
	if isData {
		payload["productId"] = req.DataCode
		url = baseURL + "/api/v1/dvend"
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return failedResponse(apperror.CodeProviderFailure, err.Error())
	}

	raw, err := postJSON(client, url, body, nil)
	if err != nil {
		if isTimeout(err) {
			return timeoutResponse(fmt.Sprintf("request timeout after %s", defaultTimeout))
		}
		return transportFailureResponse(err)
	}

	var cr creditSwitchResponse
	if err := json.Unmarshal(raw, &cr); err != nil {
		return failedResponse(apperror.CodeProviderFailure, "unable to parse CreditSwitch response")
	}

	resp := domain.NormalizedResponse{
		ProviderRef:      cr.TransactionID,
		ProviderAvailBal: cr.Balance,
	}
	if resp.ProviderRef == "" {
		resp.ProviderRef = requestID
	}
	switch {
	case cr.ResponseCode == apperror.CodeSuccess || cr.Status == "success":
		resp.ResponseCode = apperror.CodeSuccess
		resp.ResponseMessage = "Successful"
	case cr.ResponseCode == "C001" || cr.ResponseCode == "C04" || cr.Status == "pending":
		resp.ResponseCode = apperror.CodePending
		resp.ResponseMessage = "Transaction pending"
	default:
		resp.ResponseCode = apperror.CodeProviderFailure
		resp.ResponseMessage = cr.Message
		if resp.ResponseMessage == "" {
			resp.ResponseMessage = "Transaction failed"
		}
	}
	return resp
}

func (c *CreditSwitch) Requery(ctx context.Context, account *domain.ProviderAccount, txn *domain.Transaction) domain.NormalizedResponse {
	return failedResponse(apperror.CodeNotImplemented, "requery not implemented for CreditSwitch")
}

func (c *CreditSwitch) GetBalance(ctx context.Context, account *domain.ProviderAccount) (decimal.Decimal, error) {
	return account.AvailableBalance, nil
}

var _ ports.ProviderAdapter = (*CreditSwitch)(nil)
