package provider

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"

	"vas-gateway/internal/core/domain"
	"vas-gateway/internal/core/ports"
	"vas-gateway/pkg/apperror"

	"github.com/shopspring/decimal"
)

// NineMobile speaks the Cell C SDF_Data SOAP dialect. Grounded on the
// legacy EtisalatProviderService.
type NineMobile struct{}

func NewNineMobile() *NineMobile { return &NineMobile{} }

type nineMobileResponseEnvelope struct {
	Body struct {
		SdfData struct {
			Result struct {
				StatusCode       string `xml:"statusCode"`
				ErrorDescription string `xml:"errorDescription"`
				InstanceID       string `xml:"instanceId"`
			} `xml:"result"`
		} `xml:"SDF_Data"`
	} `xml:"Body"`
}

func (n *NineMobile) buildPayload(account *domain.ProviderAccount, req ports.VendRequest) string {
	vendSIM := account.ConfigValue("vend_sim", account.VendingSIM)
	username := account.ConfigValue("username", "")
	password := account.ConfigValue("password", "")

	rechargeType := "001"
	if req.DataCode != "" {
		rechargeType = "991"
	}
	// 9MOBILE's SDF interface takes the amount in kobo.
	amountKobo := req.Amount.Mul(decimal.NewFromInt(100)).IntPart()

	return fmt.Sprintf(
		`<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/" xmlns:com="http://sdf.cellc.net/commonDataModel"><soapenv:Header/><soapenv:Body><SDF_Data xmlns="http://sdf.cellc.net/commonDataModel"><header><processTypeID>7002</processTypeID><externalReference>%d</externalReference><sourceID>%s</sourceID><username>%s</username><password>%s</password><processFlag>1</processFlag></header><parameters><parameter name="RechargeType">%s</parameter><parameter name="MSISDN">%s</parameter><parameter name="Amount">%d</parameter><parameter name="Channel_ID">2ENG0011</parameter></parameters></SDF_Data></soapenv:Body></soapenv:Envelope>`,
		generateSequence(), vendSIM, username, password, rechargeType, req.RecipientMSISDN, amountKobo,
	)
}

func (n *NineMobile) Vend(ctx context.Context, account *domain.ProviderAccount, req ports.VendRequest) domain.NormalizedResponse {
	url := account.ConfigValue("url", "https://10.158.8.33:9090/EVC/SinglePointFulfilment/EVCPinlessInterfaceEndpoint")
	verifySSL := account.ConfigValue("verify_ssl", "true") != "false"
	client := httpClientFor(defaultTimeout, verifySSL)

	payload := n.buildPayload(account, req)

	raw, err := postXML(client, url, payload, map[string]string{
		"SOAPAction": `"http://sdf.cellc.net/process"`,
		"key":        account.ConfigValue("auth_key", ""),
		"token":      account.ConfigValue("auth_token", ""),
	})
	if err != nil {
		if isTimeout(err) {
			return timeoutResponse(fmt.Sprintf("request timeout after %s", defaultTimeout))
		}
		return transportFailureResponse(err)
	}

	var env nineMobileResponseEnvelope
	if err := xml.Unmarshal(raw, &env); err != nil {
		return failedResponse(apperror.CodeProviderFailure, "unable to parse 9MOBILE response")
	}

	result := env.Body.SdfData.Result
	resp := domain.NormalizedResponse{
		ResponseCode:     result.StatusCode,
		ResponseMessage:  result.ErrorDescription,
		ProviderRef:      result.InstanceID,
		ProviderAvailBal: "0",
	}
	switch {
	case result.StatusCode == "0":
		resp.ResponseCode = apperror.CodeSuccess
	case result.StatusCode == "2" && !strings.Contains(result.ErrorDescription, "Insufficient Funds"):
		resp.ResponseCode = apperror.CodeInvalidMSISDN
		resp.ResponseMessage = "Invalid MSISDN"
	default:
		resp.ResponseCode = apperror.CodeProviderFailure
	}
	return resp
}

func (n *NineMobile) Requery(ctx context.Context, account *domain.ProviderAccount, txn *domain.Transaction) domain.NormalizedResponse {
	return failedResponse(apperror.CodeNotImplemented, "requery not implemented for 9MOBILE")
}

func (n *NineMobile) GetBalance(ctx context.Context, account *domain.ProviderAccount) (decimal.Decimal, error) {
	return account.AvailableBalance, nil
}

var _ ports.ProviderAdapter = (*NineMobile)(nil)
