package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error carrying a normalized response code (§7
// of the response code taxonomy) alongside an HTTP status for the outer
// envelope.
type AppError struct {
	Code       string `json:"responseCode"`
	Message    string `json:"responseMessage"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // wrapped internal error, never exposed to the client
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// Normalized response codes. Two-character strings per the response code
// taxonomy; these travel in the responseCode field of every envelope.
const (
	CodeSuccess             = "00"
	CodeTransactionNotFound = "01"
	CodeValidation          = "02"
	CodeNoDataFound         = "03"
	CodeDomainException     = "04"
	CodeDailyLimitExceeded  = "05"
	CodeProcessingError     = "06"
	CodeAuthFailure         = "07"
	CodeInvalidMSISDN       = "08"
	CodePending             = "80"
	CodeProviderFailure     = "90"
	CodeNotImplemented      = "99"
)

// ---- 01: not found ----

func ErrTransactionNotFound() *AppError {
	return New(CodeTransactionNotFound, "transaction not found", http.StatusNotFound)
}

func ErrNotFound(entity string) *AppError {
	return New(CodeTransactionNotFound, fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- 02: validation ----

func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

func ErrInvalidAmount() *AppError {
	return New(CodeValidation, "invalid amount", http.StatusBadRequest)
}

// ---- 03: no data found ----

func ErrNoDataFound(entity string) *AppError {
	return New(CodeNoDataFound, fmt.Sprintf("no %s found", entity), http.StatusNotFound)
}

// ---- 04: domain exception ----

func ErrInsufficientFunds() *AppError {
	return New(CodeDomainException, "insufficient balance", http.StatusUnprocessableEntity)
}

func ErrDomainException(message string) *AppError {
	return New(CodeDomainException, message, http.StatusUnprocessableEntity)
}

// ---- 05: daily limit ----

func ErrDailyLimitExceeded() *AppError {
	return New(CodeDailyLimitExceeded, "daily transaction limit exceeded", http.StatusUnprocessableEntity)
}

// ---- 06: processing error / duplicate reference ----

func ErrDuplicateReference() *AppError {
	return New(CodeProcessingError, "duplicate merchant reference", http.StatusConflict)
}

func ErrRateLimitExceeded() *AppError {
	return New(CodeProcessingError, "rate limit exceeded", http.StatusTooManyRequests)
}

func ErrProcessing(err error) *AppError {
	return Wrap(CodeProcessingError, "processing error", http.StatusInternalServerError, err)
}

// ---- 07: authentication failure ----

func ErrAuthFailure(message string) *AppError {
	return New(CodeAuthFailure, message, http.StatusUnauthorized)
}

func ErrInvalidMerchant() *AppError {
	return New(CodeAuthFailure, "invalid merchant", http.StatusUnauthorized)
}

func ErrInvalidSignature() *AppError {
	return New(CodeAuthFailure, "invalid signature", http.StatusUnauthorized)
}

func ErrTimestampExpired() *AppError {
	return New(CodeAuthFailure, "request timestamp outside replay window", http.StatusUnauthorized)
}

func ErrUnauthorizedIP() *AppError {
	return New(CodeAuthFailure, "client IP not allowlisted", http.StatusForbidden)
}

func ErrInvalidToken() *AppError {
	return New(CodeAuthFailure, "invalid or expired token", http.StatusUnauthorized)
}

func ErrMerchantSuspended() *AppError {
	return New(CodeAuthFailure, "merchant account is suspended", http.StatusForbidden)
}

// ---- 08: invalid MSISDN ----

func ErrInvalidMSISDN() *AppError {
	return New(CodeInvalidMSISDN, "invalid recipient MSISDN", http.StatusBadRequest)
}

// ---- 80 / 90: provider outcomes (not errors raised to callers via panic,
// but constructors used by the coordinator when building a response body) ----

func ErrProviderPending() *AppError {
	return New(CodePending, "pending at provider", http.StatusAccepted)
}

func ErrProviderFailure(message string) *AppError {
	return New(CodeProviderFailure, message, http.StatusBadGateway)
}

// ---- 99: not implemented ----

func ErrNotImplemented(what string) *AppError {
	return New(CodeNotImplemented, fmt.Sprintf("%s not implemented", what), http.StatusNotImplemented)
}

// ---- infrastructure (mapped onto 06 processing errors; no client-visible
// distinction exists in the taxonomy beyond "retry with a new reference") ----

func ErrDatabaseError(err error) *AppError {
	return Wrap(CodeProcessingError, "internal database error", http.StatusInternalServerError, err)
}

func ErrLockTimeout(err error) *AppError {
	return Wrap(CodeProcessingError, "lock acquisition timeout", http.StatusServiceUnavailable, err)
}

func ErrEncryptionFailure(err error) *AppError {
	return Wrap(CodeProcessingError, "encryption service failure", http.StatusInternalServerError, err)
}

// InternalError wraps an unexpected internal error as a 06 processing error.
func InternalError(err error) *AppError {
	return Wrap(CodeProcessingError, "internal server error", http.StatusInternalServerError, err)
}
