package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// --- Response Types ---

// ErrorResponse is the error body for every API error. Detail carries the
// underlying message verbatim, matching what the PWA frontend displays.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// --- Error Response Helpers ---

// respondValidationError sends a 422 for a request that failed decoding or validation.
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: message})
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Detail: message})
}

// respondInternalError logs the error and sends a 500 carrying its message.
func respondInternalError(c *gin.Context, err error, context string) {
	requestLogger(c).Error("request failed", zap.String("operation", context), zap.Error(err))
	c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
}

// --- Parameter Parsing ---

// parseIDParam extracts a positive integer ID from URL parameters.
// Returns the parsed ID or responds with a 422 error and returns 0, false.
func parseIDParam(c *gin.Context, paramName string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(paramName), 10, 64)
	if err != nil || id < 1 {
		respondValidationError(c, "invalid "+paramName)
		return 0, false
	}
	return id, true
}
