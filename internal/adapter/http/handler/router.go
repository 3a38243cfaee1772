package handler

import (
	"vas-gateway/internal/adapter/http/middleware"
	redisStore "vas-gateway/internal/adapter/storage/redis"
	"vas-gateway/internal/core/ports"
	"vas-gateway/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	Coordinator    ports.VendingCoordinator
	Products       ports.ProductService
	Workers        ports.ReconcileWorkers
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService // nil = audit logging disabled
	Metrics        *metrics.Metrics   // nil = /metrics route omitted
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Prometheus scrape endpoint, unauthenticated like /health and /swagger.
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// Swagger documentation
	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger, deps.Metrics)
	}

	hmacAuth := middleware.HMACAuth(deps.AuthSvc, deps.Logger)

	productHandler := NewProductHandler(deps.Coordinator, deps.Products, deps.Workers)
	product := r.Group("/api/product", hmacAuth)
	{
		product.POST("/vendAirtime", rl("vend"), productHandler.VendAirtime)
		product.POST("/vendData", rl("vend"), productHandler.VendData)
		product.POST("/requeryTransaction", rl("requery"), productHandler.RequeryTransaction)
		product.GET("/getProductCategories", rl("catalog"), productHandler.GetProductCategories)
		product.GET("/getProducts", rl("catalog"), productHandler.GetProducts)
		product.GET("/getDataBundle", rl("catalog"), productHandler.GetDataBundle)
		product.GET("/cronReverseTimeoutUnreversedTransaction", rl("sweep"), productHandler.CronReverseTimeoutUnreversedTransaction)
	}

	// generateMerchantJwtToken is a legacy, unauthenticated (AllowAny) token
	// issuance path — it is not consumed as a bearer token by any other
	// endpoint in this gateway, which stays HMAC-authenticated throughout.
	merchantHandler := NewMerchantHandler(deps.AuthSvc)
	merchant := r.Group("/api/merchant")
	{
		merchant.POST("/generateMerchantJwtToken", rl("jwt_issue"), merchantHandler.GenerateMerchantJwtToken)
	}

	return r
}
