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

// Glo speaks the Seamless ERS requestTopup SOAP interface. Grounded on the
// legacy GloProviderService.
type Glo struct{}

func NewGlo() *Glo { return &Glo{} }

type gloResponseEnvelope struct {
	Body struct {
		TopupResponse struct {
			Return struct {
				ResultCode        string `xml:"resultCode"`
				ResultDescription string `xml:"resultDescription"`
				ErsReference      string `xml:"ersReference"`
				SenderPrincipal   struct {
					Accounts struct {
						Account struct {
							Balance struct {
								Value string `xml:"value"`
							} `xml:"balance"`
						} `xml:"account"`
					} `xml:"accounts"`
				} `xml:"senderPrincipal"`
			} `xml:"return"`
		} `xml:"requestTopupResponse"`
	} `xml:"Body"`
}

func (g *Glo) buildPayload(account *domain.ProviderAccount, req ports.VendRequest, isData bool) string {
	userID := account.ConfigValue("user_id", "")
	password := account.ConfigValue("password", "")
	resellerID := account.ConfigValue("reseller_id", "")
	clientID := account.ConfigValue("client_id", "")
	seq := generateSequence()

	if isData {
		return fmt.Sprintf(`<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/" xmlns:ext="http://external.interfaces.ers.seamless.com/"><soapenv:Body><ext:requestTopup><context><channel>WSClient</channel><clientId>%s</clientId><prepareOnly>false</prepareOnly><clientReference>%d</clientReference><clientRequestTimeout>500</clientRequestTimeout><initiatorPrincipalId><id>%s</id><type>RESELLERUSER</type><userId>%s</userId></initiatorPrincipalId><password>%s</password><transactionProperties><entry><key>TRANSACTION_TYPE</key><value>PRODUCT_RECHARGE</value></entry></transactionProperties></context><senderPrincipalId><id>%s</id><type>RESELLERUSER</type><userId>%s</userId></senderPrincipalId><topupPrincipalId><id>%s</id><type>SUBSCRIBERMSISDN</type><userId></userId></topupPrincipalId><senderAccountSpecifier><accountId>%s</accountId><accountTypeId>RESELLER</accountTypeId></senderAccountSpecifier><topupAccountSpecifier><accountId>%s</accountId><accountTypeId>DATA_BUNDLE</accountTypeId></topupAccountSpecifier><productId>%s</productId><amount><currency>NGN</currency><value>%s</value></amount></ext:requestTopup></soapenv:Body></soapenv:Envelope>`,
			clientID, seq, resellerID, userID, password, resellerID, userID, req.RecipientMSISDN, resellerID, req.RecipientMSISDN, req.DataCode, req.Amount.String())
	}
	return fmt.Sprintf(`<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/" xmlns:ext="http://external.interfaces.ers.seamless.com/"><soapenv:Body><ext:requestTopup><context><channel>WSClient</channel><clientComment>airtime topup</clientComment><clientId>%s</clientId><clientReference>%d</clientReference><clientRequestTimeout>500</clientRequestTimeout><initiatorPrincipalId><id>%s</id><type>RESELLERUSER</type><userId>%s</userId></initiatorPrincipalId><password>%s</password></context><senderPrincipalId><id>%s</id><type>RESELLERUSER</type><userId>%s</userId></senderPrincipalId><topupPrincipalId><id>%s</id><type>SUBSCRIBERMSISDN</type><userId>?</userId></topupPrincipalId><senderAccountSpecifier><accountId>%s</accountId><accountTypeId>RESELLER</accountTypeId></senderAccountSpecifier><topupAccountSpecifier><accountId>%s</accountId><accountTypeId>AIRTIME</accountTypeId></topupAccountSpecifier><productId>TOPUP</productId><amount><currency>NGN</currency><value>%s</value></amount></ext:requestTopup></soapenv:Body></soapenv:Envelope>`,
		clientID, seq, resellerID, userID, password, resellerID, userID, req.RecipientMSISDN, resellerID, req.RecipientMSISDN, req.Amount.String())
}

func (g *Glo) Vend(ctx context.Context, account *domain.ProviderAccount, req ports.VendRequest) domain.NormalizedResponse {
	url := account.ConfigValue("url", "http://41.203.65.10:8913/topupservice/service?wsdl")
	verifySSL := account.ConfigValue("verify_ssl", "true") != "false"
	client := httpClientFor(defaultTimeout, verifySSL)

	isData := req.DataCode != ""
	payload := g.buildPayload(account, req, isData)

	raw, err := postXML(client, url, payload, nil)
	if err != nil {
		if isTimeout(err) {
			return timeoutResponse(fmt.Sprintf("request timeout after %s", defaultTimeout))
		}
		return transportFailureResponse(err)
	}

	var env gloResponseEnvelope
	if err := xml.Unmarshal(raw, &env); err != nil {
		return failedResponse(apperror.CodeProviderFailure, "unable to parse Glo response")
	}

	ret := env.Body.TopupResponse.Return
	resp := domain.NormalizedResponse{
		ResponseCode:     ret.ResultCode,
		ResponseMessage:  ret.ResultDescription,
		ProviderRef:      ret.ErsReference,
		ProviderAvailBal: ret.SenderPrincipal.Accounts.Account.Balance.Value,
	}
	switch ret.ResultCode {
	case "0":
		resp.ResponseCode = apperror.CodeSuccess
	case "94":
		resp.ResponseCode = apperror.CodeInvalidMSISDN
		resp.ResponseMessage = "Invalid MSISDN"
	default:
		resp.ResponseCode = apperror.CodeProviderFailure
	}
	return resp
}

func (g *Glo) Requery(ctx context.Context, account *domain.ProviderAccount, txn *domain.Transaction) domain.NormalizedResponse {
	return failedResponse(apperror.CodeNotImplemented, "requery not implemented for Glo")
}

func (g *Glo) GetBalance(ctx context.Context, account *domain.ProviderAccount) (decimal.Decimal, error) {
	return account.AvailableBalance, nil
}

var _ ports.ProviderAdapter = (*Glo)(nil)
