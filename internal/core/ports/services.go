package ports

import (
	"context"
	"time"

	"vas-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EncryptionService handles AES-256-GCM encryption/decryption of secrets
// at rest (merchant secret keys, provider private keys).
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// SignatureService handles HMAC-SHA256 signing and verification for C6.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
	// BuildCanonicalString constructs "{timestamp}|{api_key}" per spec §6.
	BuildCanonicalString(timestamp int64, apiKey string) string
}

// HashService handles merchant API-key hashing (Argon2id).
type HashService interface {
	Hash(secret string) (string, error)
	Verify(secret string, hash string) (bool, error)
}

// TokenService handles JWT token operations for generateMerchantJwtToken.
// ttl of zero falls back to the service's configured default expiry.
type TokenService interface {
	Generate(merchantID uuid.UUID, merchantCode string, ttl time.Duration) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	MerchantID   uuid.UUID
	MerchantCode string
}

// IdempotencyCache is the Redis-layer idempotency check (fast path, C3).
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// NonceStore manages nonce uniqueness for replay attack prevention (C6).
type NonceStore interface {
	CheckAndSet(ctx context.Context, merchantCode string, nonce string, ttl time.Duration) (bool, error)
}

// ProductCache is the C3 read-through cache for the product/provider
// catalog. Key shapes and TTLs are defined by the concrete adapter.
type ProductCache interface {
	GetProduct(ctx context.Context, code string) (*domain.Product, bool)
	SetProduct(ctx context.Context, p *domain.Product)
	GetProductsByCategory(ctx context.Context, categoryCode string) ([]domain.Product, bool)
	SetProductsByCategory(ctx context.Context, categoryCode string, products []domain.Product)
	GetDataBundles(ctx context.Context, productCode, providerCode string) ([]domain.DataPackage, bool)
	SetDataBundles(ctx context.Context, productCode, providerCode string, bundles []domain.DataPackage)
	GetDataPackage(ctx context.Context, productCode, dataCode, providerCode string) (*domain.DataPackage, bool)
	SetDataPackage(ctx context.Context, productCode, dataCode, providerCode string, pkg *domain.DataPackage)
	GetActiveCategories(ctx context.Context) ([]domain.ProductCategory, bool)
	SetActiveCategories(ctx context.Context, categories []domain.ProductCategory)
	GetMerchantAuth(ctx context.Context, merchantCode string) (*domain.Merchant, bool)
	SetMerchantAuth(ctx context.Context, merchant *domain.Merchant)
	InvalidateProduct(ctx context.Context, code string)
	InvalidateCategories(ctx context.Context)
}

// RequeryLease is the Redis lease used by the C8 requery worker so two
// worker instances never requery the same transaction concurrently.
type RequeryLease interface {
	Acquire(ctx context.Context, transactionID uuid.UUID, ttl time.Duration) (bool, error)
	Release(ctx context.Context, transactionID uuid.UUID) error
}

// --- Service ports (business logic) ---

// VendingCoordinator implements C7: validation, product lookup, discount
// and daily-limit checks, debit+insert, provider dispatch, reconciliation.
type VendingCoordinator interface {
	VendAirtime(ctx context.Context, req VendRequest) (*domain.Transaction, error)
	VendData(ctx context.Context, req VendRequest) (*domain.Transaction, error)
	RequeryTransaction(ctx context.Context, merchantID uuid.UUID, merchantRef string) (*domain.Transaction, error)
}

// VendRequest holds validated input for a vend attempt.
type VendRequest struct {
	MerchantID      uuid.UUID
	MerchantRef     string
	ProductCode     string
	DataCode        string // empty for airtime
	RecipientMSISDN string
	Amount          decimal.Decimal
	ClientIP        string
}

// ProviderAdapter implements C4 for a single provider.
type ProviderAdapter interface {
	Vend(ctx context.Context, account *domain.ProviderAccount, req VendRequest) domain.NormalizedResponse
	Requery(ctx context.Context, account *domain.ProviderAccount, txn *domain.Transaction) domain.NormalizedResponse
	GetBalance(ctx context.Context, account *domain.ProviderAccount) (decimal.Decimal, error)
}

// ProviderDispatcher implements C5: routes a provider code to its adapter,
// folding any dispatch failure (unknown code, panic) into a normalized
// FAILED response rather than propagating an error.
type ProviderDispatcher interface {
	Vend(ctx context.Context, providerCode string, account *domain.ProviderAccount, req VendRequest) domain.NormalizedResponse
	Requery(ctx context.Context, providerCode string, account *domain.ProviderAccount, txn *domain.Transaction) domain.NormalizedResponse
}

// AuthService implements C6: merchant HMAC header verification, plus the
// legacy JWT issuance path named in spec.md §6.
type AuthService interface {
	// nonce, if non-empty, is checked and consumed via NonceStore to reject
	// a byte-identical replay inside the timestamp drift window.
	Authenticate(ctx context.Context, merchantCode, apiKey, signature string, timestamp int64, clientIP, nonce string) (*domain.Merchant, error)
	// GenerateJWT issues a token for merchantCode. expirationMinutes of
	// zero or less falls back to the service's configured default.
	GenerateJWT(ctx context.Context, merchantCode string, expirationMinutes int) (string, time.Time, error)
}

// ProductService serves the read-only catalog endpoints.
type ProductService interface {
	GetProductCategories(ctx context.Context) ([]domain.ProductCategory, error)
	GetProducts(ctx context.Context, categoryCode string) ([]domain.Product, error)
	GetDataBundle(ctx context.Context, productCode, providerCode string) ([]domain.DataPackage, error)
}

// ReconcileWorkers implements C8: async requery and the timeout sweeper.
type ReconcileWorkers interface {
	RunRequery(ctx context.Context, txn *domain.Transaction)
	SweepTimeouts(ctx context.Context) (int, error)
}

// AuditService records audited actions. Recording is fire-and-forget;
// failures are logged, never surfaced to the caller's request path.
type AuditService interface {
	Record(ctx context.Context, entry *domain.AuditLog)
}
