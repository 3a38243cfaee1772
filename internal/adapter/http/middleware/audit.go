package middleware

import (
	"encoding/json"
	"time"

	"vas-gateway/internal/core/domain"
	"vas-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLog creates an audit middleware that logs successful write operations.
// It maps HTTP methods and paths to audit actions.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		if c.Request.Method == "GET" || c.Request.Method == "HEAD" || c.Request.Method == "OPTIONS" {
			return
		}

		action, resourceType := mapPathToAction(c.Request.URL.Path)
		if action == "" {
			return
		}

		var merchantID *uuid.UUID
		if mid, exists := c.Get(CtxMerchantID); exists {
			if id, ok := mid.(uuid.UUID); ok {
				merchantID = &id
			}
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": c.Writer.Status(),
		})

		auditSvc.Record(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			MerchantID:   merchantID,
			Action:       action,
			ResourceType: resourceType,
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now(),
		})
	}
}

func mapPathToAction(path string) (domain.AuditAction, string) {
	switch path {
	case "/api/product/vendAirtime":
		return domain.AuditActionVendAirtime, "transaction"
	case "/api/product/vendData":
		return domain.AuditActionVendData, "transaction"
	case "/api/product/requeryTransaction":
		return domain.AuditActionRequery, "transaction"
	case "/api/product/cronReverseTimeoutUnreversedTransaction":
		return domain.AuditActionTimeoutReverse, "transaction"
	case "/api/merchant/generateMerchantJwtToken":
		return domain.AuditActionJWTIssue, "merchant"
	}
	return "", ""
}
