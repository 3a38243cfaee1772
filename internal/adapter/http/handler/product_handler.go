package handler

import (
	"net/http"

	"vas-gateway/internal/adapter/http/dto"
	"vas-gateway/internal/adapter/http/middleware"
	"vas-gateway/internal/core/domain"
	"vas-gateway/internal/core/ports"
	"vas-gateway/pkg/apperror"
	"vas-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductHandler serves the vending and catalog endpoints under
// /api/product/*, the HTTP face of C7 (VendingCoordinator), C3
// (ProductService), and C8 (ReconcileWorkers, manual sweeper trigger).
type ProductHandler struct {
	coordinator ports.VendingCoordinator
	products    ports.ProductService
	workers     ports.ReconcileWorkers
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(coordinator ports.VendingCoordinator, products ports.ProductService, workers ports.ReconcileWorkers) *ProductHandler {
	return &ProductHandler{coordinator: coordinator, products: products, workers: workers}
}

func merchantIDFrom(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(middleware.CtxMerchantID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// VendAirtime handles POST /api/product/vendAirtime.
func (h *ProductHandler) VendAirtime(c *gin.Context) {
	h.vend(c, domain.TransactionTypeAirtime)
}

// VendData handles POST /api/product/vendData.
func (h *ProductHandler) VendData(c *gin.Context) {
	h.vend(c, domain.TransactionTypeData)
}

func (h *ProductHandler) vend(c *gin.Context, txnType domain.TransactionType) {
	merchantID, ok := merchantIDFrom(c)
	if !ok {
		response.Error(c, apperror.ErrAuthFailure("missing merchant context"))
		return
	}

	var (
		productCode, phoneNumber, amountStr, merchantRef, dataCode string
	)

	if txnType == domain.TransactionTypeData {
		var req dto.VendDataRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, apperror.Validation(err.Error()))
			return
		}
		dto.SanitizeStruct(&req)
		productCode, phoneNumber, merchantRef, dataCode = req.ProductCode, req.PhoneNumber, req.MerchantRef, req.DataCode
	} else {
		var req dto.VendAirtimeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, apperror.Validation(err.Error()))
			return
		}
		dto.SanitizeStruct(&req)
		productCode, phoneNumber, amountStr, merchantRef = req.ProductCode, req.PhoneNumber, req.Amount, req.MerchantRef
	}

	amount := decimal.Zero
	if amountStr != "" {
		parsed, err := decimal.NewFromString(amountStr)
		if err != nil || !parsed.IsPositive() {
			response.Error(c, apperror.Validation("amount must be a positive decimal"))
			return
		}
		amount = parsed
	}

	req := ports.VendRequest{
		MerchantID:      merchantID,
		MerchantRef:     merchantRef,
		ProductCode:     productCode,
		DataCode:        dataCode,
		RecipientMSISDN: dto.NormalizeMSISDN(phoneNumber),
		Amount:          amount,
		ClientIP:        c.ClientIP(),
	}

	var (
		txn *domain.Transaction
		err error
	)
	if txnType == domain.TransactionTypeData {
		txn, err = h.coordinator.VendData(c.Request.Context(), req)
	} else {
		txn, err = h.coordinator.VendAirtime(c.Request.Context(), req)
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	respondTransaction(c, txn)
}

// respondTransaction maps a transaction's response_code to the HTTP
// envelope — PENDING and FAILED outcomes are not request errors, so they
// bypass response.Error and go straight through response.Raw.
func respondTransaction(c *gin.Context, txn *domain.Transaction) {
	httpStatus := http.StatusOK
	switch txn.ResponseCode {
	case apperror.CodePending:
		httpStatus = http.StatusAccepted
	case apperror.CodeSuccess:
		httpStatus = http.StatusOK
	default:
		httpStatus = http.StatusOK // domain-level failure, still a well-formed envelope
	}
	response.Raw(c, httpStatus, txn.ResponseCode, txn.ResponseMessage, toTransactionResponse(txn))
}

func toTransactionResponse(txn *domain.Transaction) dto.TransactionResponse {
	resp := dto.TransactionResponse{
		MerchantRef:     txn.MerchantRef,
		ProductCode:     txn.ProductCode,
		ProviderCode:    txn.ProviderCode,
		RecipientMSISDN: txn.RecipientMSISDN,
		DataCode:        txn.DataCode,
		Amount:          txn.FaceAmount.String(),
		DiscountAmount:  txn.DiscountAmount.String(),
		AmountCharged:   txn.AmountCharged.String(),
		Status:          string(txn.Status),
		ResponseCode:    txn.ResponseCode,
		ResponseMessage: txn.ResponseMessage,
		ProviderRef:     txn.ProviderRef,
		IsReversed:      txn.IsReversed,
		CreatedAt:       txn.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if txn.ProcessedAt != nil {
		s := txn.ProcessedAt.Format("2006-01-02T15:04:05Z07:00")
		resp.ProcessedAt = &s
	}
	return resp
}

// RequeryTransaction handles POST /api/product/requeryTransaction.
func (h *ProductHandler) RequeryTransaction(c *gin.Context) {
	merchantID, ok := merchantIDFrom(c)
	if !ok {
		response.Error(c, apperror.ErrAuthFailure("missing merchant context"))
		return
	}

	var req dto.RequeryTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	txn, err := h.coordinator.RequeryTransaction(c.Request.Context(), merchantID, req.MerchantRef)
	if err != nil {
		response.Error(c, err)
		return
	}
	respondTransaction(c, txn)
}

// GetProductCategories handles GET /api/product/getProductCategories.
func (h *ProductHandler) GetProductCategories(c *gin.Context) {
	categories, err := h.products.GetProductCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	out := make([]dto.ProductCategoryResponse, 0, len(categories))
	for _, cat := range categories {
		out = append(out, dto.ProductCategoryResponse{Code: cat.Code, Name: cat.Name})
	}
	response.OK(c, "categories retrieved", out)
}

// GetProducts handles GET /api/product/getProducts?category_code=...
func (h *ProductHandler) GetProducts(c *gin.Context) {
	categoryCode := c.Query("category_code")
	if categoryCode == "" {
		response.Error(c, apperror.Validation("category_code is required"))
		return
	}

	products, err := h.products.GetProducts(c.Request.Context(), categoryCode)
	if err != nil {
		response.Error(c, err)
		return
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ProductResponse{
			Code:         p.Code,
			Name:         p.Name,
			CategoryCode: p.CategoryCode,
			ProviderCode: p.ProviderCode,
			MinAmount:    p.MinAmount.String(),
			MaxAmount:    p.MaxAmount.String(),
		})
	}
	response.OK(c, "products retrieved", out)
}

// GetDataBundle handles GET /api/product/getDataBundle?product_code=...
func (h *ProductHandler) GetDataBundle(c *gin.Context) {
	productCode := c.Query("product_code")
	if productCode == "" {
		response.Error(c, apperror.Validation("product_code is required"))
		return
	}
	providerCode := c.Query("provider_code")

	bundles, err := h.products.GetDataBundle(c.Request.Context(), productCode, providerCode)
	if err != nil {
		response.Error(c, err)
		return
	}
	out := make([]dto.DataBundleResponse, 0, len(bundles))
	for _, b := range bundles {
		out = append(out, dto.DataBundleResponse{
			DataCode:     b.DataCode,
			ProductCode:  b.ProductCode,
			ProviderCode: b.ProviderCode,
			Name:         b.Name,
			Price:        b.Price.String(),
			ValidityDays: b.ValidityDays,
		})
	}
	response.OK(c, "data bundles retrieved", out)
}

// CronReverseTimeoutUnreversedTransaction handles GET
// /api/product/cronReverseTimeoutUnreversedTransaction: the manual trigger
// for the C8 timeout sweeper (also run on its own schedule by the sweeper
// loop in cmd/api).
func (h *ProductHandler) CronReverseTimeoutUnreversedTransaction(c *gin.Context) {
	swept, err := h.workers.SweepTimeouts(c.Request.Context())
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	response.OK(c, "sweep complete", dto.SweepResultResponse{Reversed: swept})
}
