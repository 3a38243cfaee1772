package dto

// VendAirtimeRequest is the request body for POST /api/product/vendAirtime.
type VendAirtimeRequest struct {
	ProductCode string `json:"product_code" binding:"required,max=50"`
	PhoneNumber string `json:"phone_number" binding:"required,max=20"`
	Amount      string `json:"amount" binding:"required"`
	MerchantRef string `json:"merchant_ref" binding:"required,max=100,merchant_ref"`
}

// VendDataRequest is the request body for POST /api/product/vendData.
type VendDataRequest struct {
	ProductCode string `json:"product_code" binding:"required,max=50"`
	DataCode    string `json:"data_code" binding:"required,max=50"`
	PhoneNumber string `json:"phone_number" binding:"required,max=20"`
	MerchantRef string `json:"merchant_ref" binding:"required,max=100,merchant_ref"`
}

// RequeryTransactionRequest is the request body for
// POST /api/product/requeryTransaction.
type RequeryTransactionRequest struct {
	MerchantRef string `json:"merchant_ref" binding:"required,max=100,merchant_ref"`
}

// GenerateMerchantJwtTokenRequest is the request body for
// POST /api/merchant/generateMerchantJwtToken.
type GenerateMerchantJwtTokenRequest struct {
	MerchantCode      string `json:"merchant_code" binding:"required"`
	ExpirationMinutes int    `json:"expiration_minutes"`
}

// GenerateMerchantJwtTokenResponse is the response body for the legacy
// token issuance endpoint.
type GenerateMerchantJwtTokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

// TransactionResponse is the response body shape for a single transaction.
type TransactionResponse struct {
	MerchantRef     string  `json:"merchant_ref"`
	ProductCode     string  `json:"product_code"`
	ProviderCode    string  `json:"provider_code"`
	RecipientMSISDN string  `json:"phone_number"`
	DataCode        *string `json:"data_code,omitempty"`
	Amount          string  `json:"amount"`
	DiscountAmount  string  `json:"discount_amount"`
	AmountCharged   string  `json:"amount_charged"`
	Status          string  `json:"status"`
	ResponseCode    string  `json:"response_code"`
	ResponseMessage string  `json:"response_message"`
	ProviderRef     *string `json:"provider_ref,omitempty"`
	IsReversed      bool    `json:"is_reverse"`
	CreatedAt       string  `json:"created_at"`
	ProcessedAt     *string `json:"processed_at,omitempty"`
}

// ProductCategoryResponse is a single category row.
type ProductCategoryResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// ProductResponse is a single product row.
type ProductResponse struct {
	Code         string `json:"product_code"`
	Name         string `json:"name"`
	CategoryCode string `json:"category_code"`
	ProviderCode string `json:"provider_code"`
	MinAmount    string `json:"min_amount"`
	MaxAmount    string `json:"max_amount"`
}

// DataBundleResponse is a single data bundle row.
type DataBundleResponse struct {
	DataCode     string `json:"data_code"`
	ProductCode  string `json:"product_code"`
	ProviderCode string `json:"provider_code"`
	Name         string `json:"name"`
	Price        string `json:"price"`
	ValidityDays int    `json:"validity_days"`
}

// SweepResultResponse is the response body for the manual sweeper trigger.
type SweepResultResponse struct {
	Reversed int `json:"reversed"`
}
