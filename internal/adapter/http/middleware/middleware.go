package middleware

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"vas-gateway/internal/core/ports"
	"vas-gateway/pkg/apperror"
	"vas-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	// Header names for C6 HMAC authentication.
	HeaderMerchantCode = "X-MERCHANT-CODE"
	HeaderAPIKey       = "X-API-KEY"
	HeaderSignature    = "X-SIGNATURE"
	HeaderTimestamp    = "X-TIMESTAMP"
	HeaderNonce        = "X-NONCE"

	// Replay window: |now - ts| must not exceed this on either side.
	maxTimestampDrift = 300 * time.Second

	// Context keys
	CtxMerchantID   = "merchant_id"
	CtxMerchantCode = "merchant_code"
	CtxMerchantKey  = "merchant"
)

// HMACAuth implements C6: validate X-MERCHANT-CODE/X-API-KEY/X-SIGNATURE/
// X-TIMESTAMP, enforce the 300s replay window, verify the HMAC signature
// over "{timestamp}|{api_key}", enforce the merchant's IP allowlist, and
// (if X-NONCE is present) reject a byte-identical replay via AuthService's
// nonce store. All failures surface as response code 07.
func HMACAuth(authSvc ports.AuthService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		merchantCode := c.GetHeader(HeaderMerchantCode)
		apiKey := c.GetHeader(HeaderAPIKey)
		signature := c.GetHeader(HeaderSignature)
		timestampStr := c.GetHeader(HeaderTimestamp)
		nonce := c.GetHeader(HeaderNonce)

		if merchantCode == "" || apiKey == "" || signature == "" || timestampStr == "" {
			response.Error(c, apperror.ErrAuthFailure("missing authentication headers"))
			c.Abort()
			return
		}

		timestamp, err := parseTimestampHeader(timestampStr)
		if err != nil {
			response.Error(c, apperror.ErrTimestampExpired())
			c.Abort()
			return
		}
		if math.Abs(float64(time.Now().Unix()-timestamp)) > maxTimestampDrift.Seconds() {
			response.Error(c, apperror.ErrTimestampExpired())
			c.Abort()
			return
		}

		merchant, err := authSvc.Authenticate(c.Request.Context(), merchantCode, apiKey, signature, timestamp, c.ClientIP(), nonce)
		if err != nil {
			log.Warn().Err(err).Str("merchant_code", merchantCode).Msg("authentication failed")
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(CtxMerchantID, merchant.ID)
		c.Set(CtxMerchantCode, merchant.MerchantCode)
		c.Set(CtxMerchantKey, merchant)

		c.Next()
	}
}

// parseTimestampHeader accepts a Unix epoch or an ISO-8601 UTC timestamp
// (optionally suffixed with "Z"), per spec.md's X-TIMESTAMP definition.
func parseTimestampHeader(raw string) (int64, error) {
	if ts, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return ts, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		// No zone suffix: read the timestamp as UTC.
		t, err = time.Parse("2006-01-02T15:04:05", raw)
		if err != nil {
			return 0, fmt.Errorf("invalid timestamp: %w", err)
		}
	}
	return t.Unix(), nil
}

// JWTAuth creates a middleware that validates JWT tokens issued by the
// legacy generateMerchantJwtToken endpoint.
func JWTAuth(tokenSvc ports.TokenService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || len(authHeader) < 8 || authHeader[:7] != "Bearer " {
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}

		tokenStr := authHeader[7:]
		claims, err := tokenSvc.Validate(tokenStr)
		if err != nil {
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}

		c.Set(CtxMerchantID, claims.MerchantID)
		c.Set(CtxMerchantCode, claims.MerchantCode)
		c.Next()
	}
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"responseCode":    apperror.CodeProcessingError,
					"responseMessage": "internal server error",
				})
			}
		}()
		c.Next()
	}
}
