package provider

import (
	"context"
	"encoding/xml"
	"fmt"

	"vas-gateway/internal/core/domain"
	"vas-gateway/internal/core/ports"
	"vas-gateway/pkg/apperror"

	"github.com/shopspring/decimal"
)

// MTN speaks SOAP/XML over HostIF. Grounded on the legacy MTNNProviderService.
type MTN struct{}

func NewMTN() *MTN { return &MTN{} }

type mtnVendResponseEnvelope struct {
	Body struct {
		VendResponse struct {
			StatusID        string `xml:"statusId"`
			ResponseMessage string `xml:"responseMessage"`
			TxRefID         string `xml:"txRefId"`
			OrigBalance     string `xml:"origBalance"`
		} `xml:"vendResponse"`
	} `xml:"Body"`
}

func (m *MTN) buildPayload(account *domain.ProviderAccount, req ports.VendRequest) string {
	vendSIM := account.ConfigValue("vend_sim", account.VendingSIM)
	return fmt.Sprintf(
		`<?xml version="1.0" encoding="UTF-8" standalone="no"?><soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/" xmlns:xsd="http://hostif.vtm.prism.co.za/xsd"><soapenv:Header/><soapenv:Body><xsd:vend><xsd:origMsisdn>%s</xsd:origMsisdn><xsd:destMsisdn>%s</xsd:destMsisdn><xsd:amount>%s</xsd:amount><xsd:sequence>%d</xsd:sequence><xsd:tariffTypeId>1</xsd:tariffTypeId><xsd:serviceproviderId>1</xsd:serviceproviderId></xsd:vend></soapenv:Body></soapenv:Envelope>`,
		vendSIM, req.RecipientMSISDN, req.Amount.String(), generateSequence(),
	)
}

func (m *MTN) Vend(ctx context.Context, account *domain.ProviderAccount, req ports.VendRequest) domain.NormalizedResponse {
	url := account.ConfigValue("url", "https://ershostif.mtn.ng/axis2/services/HostIFService")
	verifySSL := account.ConfigValue("verify_ssl", "true") != "false"
	client := httpClientFor(defaultTimeout, verifySSL)

	payload := m.buildPayload(account, req)
	auth := basicAuthHeader(account.ConfigValue("username", ""), account.ConfigValue("password", ""))

	raw, err := postXML(client, url, payload, map[string]string{
		"Authorization": auth,
		"SoapAction":    "urn:queryTx",
	})
	if err != nil {
		if isTimeout(err) {
			return timeoutResponse(fmt.Sprintf("request timeout after %s", defaultTimeout))
		}
		return transportFailureResponse(err)
	}

	var env mtnVendResponseEnvelope
	if err := xml.Unmarshal(raw, &env); err != nil {
		return failedResponse(apperror.CodeProviderFailure, "unable to parse MTN response")
	}

	body := env.Body.VendResponse
	resp := domain.NormalizedResponse{
		ResponseCode:     body.StatusID,
		ResponseMessage:  body.ResponseMessage,
		ProviderRef:      body.TxRefID,
		ProviderAvailBal: body.OrigBalance,
	}
	switch body.StatusID {
	case "0":
		resp.ResponseCode = apperror.CodeSuccess
	case "1004", "202":
		resp.ResponseCode = apperror.CodeInvalidMSISDN
		resp.ResponseMessage = "Invalid MSISDN"
	default:
		resp.ResponseCode = apperror.CodeProviderFailure
	}
	return resp
}

func (m *MTN) Requery(ctx context.Context, account *domain.ProviderAccount, txn *domain.Transaction) domain.NormalizedResponse {
	return failedResponse(apperror.CodeNotImplemented, "requery not implemented for MTN")
}

func (m *MTN) GetBalance(ctx context.Context, account *domain.ProviderAccount) (decimal.Decimal, error) {
	return account.AvailableBalance, nil
}

var _ ports.ProviderAdapter = (*MTN)(nil)
