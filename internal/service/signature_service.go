package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

// HMACSignatureService implements ports.SignatureService using HMAC-SHA256,
// base64-encoded per spec.md's `X-SIGNATURE` contract.
type HMACSignatureService struct{}

// NewHMACSignatureService creates a new HMAC-SHA256 signature service.
func NewHMACSignatureService() *HMACSignatureService {
	return &HMACSignatureService{}
}

// Sign computes base64(HMAC-SHA256(secretKey, payload)).
func (s *HMACSignatureService) Sign(secretKey string, payload string) string {
	mac := hmac.New(sha256.New, []byte(secretKey))
	mac.Write([]byte(payload))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// Verify checks if signature matches HMAC-SHA256(secretKey, payload) using
// a constant-time comparison to prevent timing attacks.
func (s *HMACSignatureService) Verify(secretKey string, payload string, signature string) bool {
	expected := s.Sign(secretKey, payload)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// BuildCanonicalString constructs "{timestamp}|{api_key}" per spec.md §4.6.
func (s *HMACSignatureService) BuildCanonicalString(timestamp int64, apiKey string) string {
	return fmt.Sprintf("%d|%s", timestamp, apiKey)
}
