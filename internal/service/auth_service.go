package service

import (
	"context"
	"time"

	"vas-gateway/internal/core/domain"
	"vas-gateway/internal/core/ports"
	"vas-gateway/pkg/apperror"
)

// nonceTTL bounds how long a consumed nonce is remembered — it only needs
// to outlive the timestamp replay window middleware.HMACAuth enforces.
const nonceTTL = 300 * time.Second

// AuthServiceImpl implements ports.AuthService (C6).
type AuthServiceImpl struct {
	merchantRepo ports.MerchantRepository
	cache        ports.ProductCache // read-through merchant_auth:{code} cache
	hashSvc      ports.HashService
	encSvc       ports.EncryptionService
	sigSvc       ports.SignatureService
	tokenSvc     ports.TokenService
	nonceStore   ports.NonceStore // nil disables nonce replay rejection
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(
	merchantRepo ports.MerchantRepository,
	cache ports.ProductCache,
	hashSvc ports.HashService,
	encSvc ports.EncryptionService,
	sigSvc ports.SignatureService,
	tokenSvc ports.TokenService,
	nonceStore ports.NonceStore,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		merchantRepo: merchantRepo,
		cache:        cache,
		hashSvc:      hashSvc,
		encSvc:       encSvc,
		sigSvc:       sigSvc,
		tokenSvc:     tokenSvc,
		nonceStore:   nonceStore,
	}
}

// Authenticate implements C6: looks up the merchant (read-through cache),
// verifies the api_key, the HMAC signature over "{timestamp}|{api_key}",
// and (if configured) the client IP allowlist.
func (s *AuthServiceImpl) Authenticate(ctx context.Context, merchantCode, apiKey, signature string, timestamp int64, clientIP, nonce string) (*domain.Merchant, error) {
	merchant, err := s.lookupMerchant(ctx, merchantCode)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if merchant == nil || !merchant.IsActive() {
		return nil, apperror.ErrInvalidMerchant()
	}

	valid, err := s.hashSvc.Verify(apiKey, merchant.APIKeyHash)
	if err != nil || !valid {
		return nil, apperror.ErrInvalidMerchant()
	}

	secretKey, err := s.encSvc.Decrypt(merchant.SecretKeyEnc)
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	canonical := s.sigSvc.BuildCanonicalString(timestamp, apiKey)
	if !s.sigSvc.Verify(secretKey, canonical, signature) {
		return nil, apperror.ErrInvalidSignature()
	}

	if len(merchant.IPAllowlist) > 0 && !merchant.IPAllowed(clientIP) {
		return nil, apperror.ErrUnauthorizedIP()
	}

	if s.nonceStore != nil && nonce != "" {
		fresh, err := s.nonceStore.CheckAndSet(ctx, merchant.MerchantCode, nonce, nonceTTL)
		if err != nil {
			return nil, apperror.InternalError(err)
		}
		if !fresh {
			return nil, apperror.ErrAuthFailure("replayed nonce")
		}
	}

	return merchant, nil
}

func (s *AuthServiceImpl) lookupMerchant(ctx context.Context, merchantCode string) (*domain.Merchant, error) {
	if s.cache != nil {
		if m, ok := s.cache.GetMerchantAuth(ctx, merchantCode); ok {
			return m, nil
		}
	}

	merchant, err := s.merchantRepo.GetByMerchantCode(ctx, merchantCode)
	if err != nil {
		return nil, err
	}
	if merchant != nil && s.cache != nil {
		s.cache.SetMerchantAuth(ctx, merchant)
	}
	return merchant, nil
}

// GenerateJWT implements the legacy generateMerchantJwtToken endpoint.
// It mirrors the original AllowAny view: lookup by merchant_code, check
// is_active, issue a token — no api_key/signature is verified here.
func (s *AuthServiceImpl) GenerateJWT(ctx context.Context, merchantCode string, expirationMinutes int) (string, time.Time, error) {
	merchant, err := s.merchantRepo.GetByMerchantCode(ctx, merchantCode)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(err)
	}
	if merchant == nil {
		return "", time.Time{}, apperror.ErrInvalidMerchant()
	}
	if !merchant.IsActive() {
		return "", time.Time{}, apperror.ErrMerchantSuspended()
	}

	var ttl time.Duration
	if expirationMinutes > 0 {
		ttl = time.Duration(expirationMinutes) * time.Minute
	}

	return s.tokenSvc.Generate(merchant.ID, merchant.MerchantCode, ttl)
}
