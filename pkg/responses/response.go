package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SuccessResponse represents a standard success JSON response.
type SuccessResponse struct {
	Status  string      `json:"status"` // "success"
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// ErrorResponse represents a standard error JSON response.
type ErrorResponse struct {
	Status  string      `json:"status"` // "error" or "fail"
	Message string      `json:"message"`
	Code    int         `json:"code"`
	Errors  interface{} `json:"errors,omitempty"` // field errors for validation failures
}

// ListResponse is a success response for collections. Count is always len(Data).
type ListResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Count   int         `json:"count"`
}

// SendSuccess sends a standardized success response.
func SendSuccess(c *gin.Context, statusCode int, message string, data interface{}) {
	if message == "" {
		message = "Operation completed successfully"
	}
	c.JSON(statusCode, SuccessResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// SendList sends a collection. Callers pass a non-nil slice so the payload is [] rather than null.
func SendList(c *gin.Context, message string, data interface{}, count int) {
	if message == "" {
		message = "Data retrieved successfully"
	}
	c.JSON(http.StatusOK, ListResponse{
		Status:  "success",
		Message: message,
		Data:    data,
		Count:   count,
	})
}

// SendError sends a standardized error response and aborts the chain.
func SendError(c *gin.Context, statusCode int, message string, details interface{}) {
	statusText := "error"
	if statusCode >= http.StatusInternalServerError {
		statusText = "fail"
	}
	c.AbortWithStatusJSON(statusCode, ErrorResponse{
		Status:  statusText,
		Message: message,
		Code:    statusCode,
		Errors:  details,
	})
}

// NotFound sends a 404 Not Found error response.
func NotFound(c *gin.Context, resourceName string) {
	SendError(c, http.StatusNotFound, resourceName+" not found", nil)
}

// Unauthorized sends a 401 Unauthorized error response.
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Unauthorized access"
	}
	SendError(c, http.StatusUnauthorized, message, nil)
}

// Forbidden sends a 403 Forbidden error response.
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "Access to this resource is forbidden"
	}
	SendError(c, http.StatusForbidden, message, nil)
}

// BadRequest sends a 400 Bad Request error response.
func BadRequest(c *gin.Context, message string, details interface{}) {
	if message == "" {
		message = "Invalid request payload or parameters"
	}
	SendError(c, http.StatusBadRequest, message, details)
}

// Conflict sends a 409 Conflict error response.
func Conflict(c *gin.Context, message string) {
	SendError(c, http.StatusConflict, message, nil)
}

// InternalServerError sends a 500 response. The cause is logged by the caller, never echoed.
func InternalServerError(c *gin.Context, message string) {
	if message == "" {
		message = "An unexpected error occurred on the server"
	}
	SendError(c, http.StatusInternalServerError, message, nil)
}
