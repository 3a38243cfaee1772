package provider

import (
	"context"
	"encoding/xml"
	"fmt"
	"regexp"
	"time"

	"vas-gateway/internal/core/domain"
	"vas-gateway/internal/core/ports"
	"vas-gateway/pkg/apperror"

	"github.com/shopspring/decimal"
)

// Airtel speaks a legacy XML/DTD "COMMAND" dialect over Pretups. Grounded
// on the legacy AirtelProviderService.
type Airtel struct{}

func NewAirtel() *Airtel { return &Airtel{} }

var airtelBalancePattern = regexp.MustCompile(`balance is (\d+(?:\.\d+)?) NGN`)

func (a *Airtel) extractBalance(message string) string {
	m := airtelBalancePattern.FindStringSubmatch(message)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}

type airtelCommand struct {
	XMLName xml.Name `xml:"COMMAND"`
	Type    string   `xml:"TYPE"`
	Message string   `xml:"MESSAGE"`
	TxnID   string   `xml:"TXNID"`
	Status  string   `xml:"TXNSTATUS"`
}

func (a *Airtel) buildPayload(account *domain.ProviderAccount, req ports.VendRequest, isData bool) string {
	vendSIM := account.ConfigValue("vend_sim", account.VendingSIM)
	loginPin := account.ConfigValue("login_pin", "")
	datenow := time.Now().Format("02/01/2006 15:04:05")
	seq := fmt.Sprintf("SONITE_%d", generateSequence())

	if isData {
		return fmt.Sprintf(
			`<?xml version="1.0"?><!DOCTYPE COMMAND PUBLIC "-//Ocam//DTD XML Command1.0//EN" "xml/command.dtd"><COMMAND><TYPE>VASSELLREQ</TYPE><DATE>%s</DATE><EXTNWCODE>NG</EXTNWCODE><MSISDN>%s</MSISDN><PIN>%s</PIN><LOGINID></LOGINID><PASSWORD></PASSWORD><EXTCODE></EXTCODE><EXTREFNUM></EXTREFNUM><SUBSMSISDN>%s</SUBSMSISDN><AMT>%s</AMT><SUBSERVICE>7</SUBSERVICE></COMMAND>`,
			datenow, vendSIM, loginPin, req.RecipientMSISDN, req.Amount.String(),
		)
	}
	return fmt.Sprintf(
		`<?xml version="1.0"?><!DOCTYPE COMMAND PUBLIC "-//Ocam//DTD XML Command 1.0//EN" "xml/command.dtd"><COMMAND><TYPE>EXRCTRFREQ</TYPE><DATE>%s</DATE><EXTNWCODE>NG</EXTNWCODE><MSISDN>%s</MSISDN><PIN>%s</PIN><LOGINID></LOGINID><PASSWORD></PASSWORD><EXTCODE></EXTCODE><EXTREFNUM>%s</EXTREFNUM><MSISDN2>%s</MSISDN2><AMOUNT>%s</AMOUNT><LANGUAGE1>1</LANGUAGE1><LANGUAGE2>1</LANGUAGE2><SELECTOR>1</SELECTOR></COMMAND>`,
		datenow, vendSIM, loginPin, seq, req.RecipientMSISDN, req.Amount.String(),
	)
}

func (a *Airtel) Vend(ctx context.Context, account *domain.ProviderAccount, req ports.VendRequest) domain.NormalizedResponse {
	url := account.ConfigValue("url", "https://172.24.4.21:4443/pretups/C2SReceiver?REQUEST_GATEWAY_CODE=Sonite&REQUEST_GATEWAY_TYPE=EXTGW&LOGIN=Sonite_ltd&PASSWORD=f7d461edffe490ec67ea65e3df934ed2&SOURCE_TYPE=EXTGW&SERVICE_PORT=191")
	verifySSL := account.ConfigValue("verify_ssl", "true") != "false"
	client := httpClientFor(defaultTimeout, verifySSL)

	isData := req.DataCode != ""
	payload := a.buildPayload(account, req, isData)

	raw, err := postXML(client, url, payload, nil)
	if err != nil {
		if isTimeout(err) {
			return timeoutResponse(fmt.Sprintf("request timeout after %s", defaultTimeout))
		}
		return transportFailureResponse(err)
	}

	var cmd airtelCommand
	if err := xml.Unmarshal(raw, &cmd); err != nil {
		return failedResponse(apperror.CodeProviderFailure, "unable to parse Airtel response")
	}

	resp := domain.NormalizedResponse{
		ResponseCode:     cmd.Status,
		ResponseMessage:  cmd.Message,
		ProviderRef:      cmd.TxnID,
		ProviderAvailBal: a.extractBalance(cmd.Message),
	}
	switch cmd.Status {
	case "200":
		resp.ResponseCode = apperror.CodeSuccess
	case "17017":
		resp.ResponseCode = apperror.CodeInvalidMSISDN
		resp.ResponseMessage = "Invalid MSISDN"
	case "205", "250":
		resp.ResponseCode = apperror.CodePending
	default:
		// pass through the raw Airtel status rather than a fixed FAILED code
	}
	return resp
}

func (a *Airtel) Requery(ctx context.Context, account *domain.ProviderAccount, txn *domain.Transaction) domain.NormalizedResponse {
	return failedResponse(apperror.CodeNotImplemented, "requery not implemented for Airtel")
}

func (a *Airtel) GetBalance(ctx context.Context, account *domain.ProviderAccount) (decimal.Decimal, error) {
	return account.AvailableBalance, nil
}

var _ ports.ProviderAdapter = (*Airtel)(nil)
