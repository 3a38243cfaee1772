package middleware

import (
"fmt"
"strconv"
"time"

redisStore "vas-gateway/internal/adapter/storage/redis"
"vas-gateway/internal/metrics"
"vas-gateway/pkg/apperror"
"vas-gateway/pkg/response"

"github.com/gin-gonic/gin"
"github.com/rs/zerolog"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
Limit  int64
Window time.Duration
}

// DefaultRateLimitRules returns per-endpoint-group HTTP throttling limits.
// This is infrastructure-level protection, distinct from the per-merchant
// daily transaction count enforced by the vending coordinator (C7).
func DefaultRateLimitRules() map[string]RateLimitRule {
return map[string]RateLimitRule{
"vend":      {Limit: 100, Window: time.Minute},
"requery":   {Limit: 60, Window: time.Minute},
"catalog":   {Limit: 120, Window: time.Minute},
"sweep":     {Limit: 6, Window: time.Minute},
"jwt_issue": {Limit: 10, Window: time.Minute},
}
}

// RateLimiter creates a rate-limiting middleware for a given endpoint group.
// m may be nil, in which case rejections are not counted.
func RateLimiter(store *redisStore.RateLimitStore, group string, rule RateLimitRule, log zerolog.Logger, m *metrics.Metrics) gin.HandlerFunc {
return func(c *gin.Context) {
identifier := extractIdentifier(c)
key := fmt.Sprintf("%s:%s", identifier, group)

result, err := store.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
if err != nil {
log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request (degraded mode)")
c.Next()
return
}

// Always set rate limit headers
c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

if !result.Allowed {
retryAfter := result.ResetAt - time.Now().Unix()
if retryAfter < 1 {
retryAfter = 1
}
c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
if m != nil {
m.RateLimitHitsTotal.WithLabelValues(group).Inc()
}
response.Error(c, apperror.ErrRateLimitExceeded())
c.Abort()
return
}

c.Next()
}
}

// extractIdentifier determines the rate limit key source.
func extractIdentifier(c *gin.Context) string {
if mc := c.GetHeader(HeaderMerchantCode); mc != "" {
return mc
}
if mid, exists := c.Get(CtxMerchantID); exists {
return fmt.Sprintf("%v", mid)
}
return c.ClientIP()
}
