// Package provider implements the C4 adapters: one per vending network
// (MTN, AIRTEL, GLO, 9MOBILE, PAYVANTAGE, CREDITSWITCH). Each adapter owns
// its URL, credential extraction, payload encoding, and native-to-normalized
// status mapping table.
package provider

import (
	"bytes"
	"crypto/tls"
	"encoding/base64"
	"io"
	"math/rand"
	"net/http"
	"time"

	"vas-gateway/internal/core/domain"
	"vas-gateway/pkg/apperror"
)

const defaultTimeout = 10 * time.Second

// httpClientFor builds an *http.Client honoring the account's TLS
// verification policy, per spec.md §4.4.
func httpClientFor(timeout time.Duration, verifySSL bool) *http.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	transport := http.DefaultTransport
	if !verifySSL {
		transport = insecureTransport()
	}
	return &http.Client{Timeout: timeout, Transport: transport}
}

// insecureTransport builds a Transport that skips TLS verification, for
// providers whose account config disables verify_ssl (legacy self-signed
// endpoints still in production use).
func insecureTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
	return t
}

// generateSequence mirrors the original providers' random correlation id.
func generateSequence() int64 {
	return 1000000000 + rand.Int63n(9000000000)
}

func timeoutResponse(message string) domain.NormalizedResponse {
	return domain.NormalizedResponse{
		ResponseCode:    apperror.CodePending,
		ResponseMessage: message,
	}
}

func transportFailureResponse(err error) domain.NormalizedResponse {
	return domain.NormalizedResponse{
		ResponseCode:    apperror.CodeProviderFailure,
		ResponseMessage: err.Error(),
	}
}

func failedResponse(code, message string) domain.NormalizedResponse {
	return domain.NormalizedResponse{
		ResponseCode:    code,
		ResponseMessage: message,
	}
}

func isTimeout(err error) bool {
	type timeoutter interface{ Timeout() bool }
	te, ok := err.(timeoutter)
	return ok && te.Timeout()
}

// postXML sends body as a SOAP/XML request with the given extra headers
// and returns the raw response bytes.
func postXML(client *http.Client, url, body string, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader([]byte(body)))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/xml")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

// postJSON sends body as a JSON request with the given extra headers and
// returns the raw response bytes.
func postJSON(client *http.Client, url string, body []byte, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

func basicAuthHeader(username, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
}
