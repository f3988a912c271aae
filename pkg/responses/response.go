package responses

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/matchday-app/matchday/pkg/apperrors"
)

// APIResponse is the standard JSON envelope for every endpoint.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
}

// PaginatedResponse is the envelope for list endpoints.
type PaginatedResponse struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

// Pagination holds paging metadata for list responses.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// SendSuccess sends a standardized success response.
func SendSuccess(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// SendError sends a standardized error response and aborts the handler chain.
func SendError(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, APIResponse{
		Success: false,
		Message: message,
	})
}

// SendValidationError sends a 400 with per-field validation messages.
func SendValidationError(c *gin.Context, errs []string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, APIResponse{
		Success: false,
		Message: "Validation failed",
		Errors:  errs,
	})
}

// SendAppError maps an application error onto the envelope. Unexpected errors
// degrade to a generic 500 so internals never leak.
func SendAppError(c *gin.Context, err error) {
	if appErr, ok := apperrors.As(err); ok {
		SendError(c, appErr.StatusCode(), appErr.Message)
		return
	}
	SendError(c, http.StatusInternalServerError, "Internal server error")
}

// SendPaginated sends a standardized list response with paging metadata.
func SendPaginated(c *gin.Context, statusCode int, message string, data interface{}, total int64, page, limit int) {
	if limit <= 0 {
		limit = 20
	}
	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	c.JSON(statusCode, PaginatedResponse{
		Success: true,
		Message: message,
		Data:    data,
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	})
}
