package handler

import (
	"vas-gateway/internal/adapter/http/dto"
	"vas-gateway/internal/core/ports"
	"vas-gateway/pkg/apperror"
	"vas-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// MerchantHandler serves the legacy token issuance endpoint under
// /api/merchant/*.
type MerchantHandler struct {
	authSvc ports.AuthService
}

// NewMerchantHandler creates a new MerchantHandler.
func NewMerchantHandler(authSvc ports.AuthService) *MerchantHandler {
	return &MerchantHandler{authSvc: authSvc}
}

// GenerateMerchantJwtToken handles POST /api/merchant/generateMerchantJwtToken.
func (h *MerchantHandler) GenerateMerchantJwtToken(c *gin.Context) {
	var req dto.GenerateMerchantJwtTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	token, expiresAt, err := h.authSvc.GenerateJWT(c.Request.Context(), req.MerchantCode, req.ExpirationMinutes)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "token generated", dto.GenerateMerchantJwtTokenResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	})
}
