package response

import (
	"errors"
	"net/http"

	"vas-gateway/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// Envelope is the standard response shape for every endpoint:
// { responseCode, responseMessage, responseData }.
type Envelope struct {
	ResponseCode    string      `json:"responseCode"`
	ResponseMessage string      `json:"responseMessage"`
	ResponseData    interface{} `json:"responseData,omitempty"`
}

// OK sends a 200 response with a success envelope.
func OK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Envelope{
		ResponseCode:    apperror.CodeSuccess,
		ResponseMessage: message,
		ResponseData:    data,
	})
}

// Raw sends an arbitrary response code/message/data tuple at the given
// HTTP status. Used when a vend outcome is not an error (e.g. PENDING).
func Raw(c *gin.Context, httpStatus int, code, message string, data interface{}) {
	c.JSON(httpStatus, Envelope{
		ResponseCode:    code,
		ResponseMessage: message,
		ResponseData:    data,
	})
}

// Error sends an error response. It checks if err is an *apperror.AppError
// and maps it accordingly, otherwise returns 06/500.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, Envelope{
			ResponseCode:    appErr.Code,
			ResponseMessage: appErr.Message,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, Envelope{
		ResponseCode:    apperror.CodeProcessingError,
		ResponseMessage: "internal server error",
	})
}
