package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/database"
)

// Machine-readable error codes carried in ErrorResponse.Code.
const (
	CodeBadRequest  = "BAD_REQUEST"
	CodeNotFound    = "NOT_FOUND"
	CodeDuplicate   = "DUPLICATE"
	CodeReference   = "REFERENCE_VIOLATION"
	CodeUnavailable = "STORAGE_UNAVAILABLE"
	CodeInternal    = "INTERNAL_ERROR"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`    // machine-readable error code
	Details any    `json:"details,omitempty"` // additional context (validation errors, etc.)
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	respondError(c, http.StatusBadRequest, CodeBadRequest, message)
}

// respondInvalidBody sends a 400 response carrying the binding error as details.
func respondInvalidBody(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "invalid request body",
		Code:    CodeBadRequest,
		Details: err.Error(),
	})
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, resource string) {
	respondError(c, http.StatusNotFound, CodeNotFound, resource+" not found")
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s) request_id=%s: %v", context, GetRequestID(c), err)
	respondError(c, http.StatusInternalServerError, CodeInternal, "internal server error")
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{Error: message, Code: code})
}

// respondStoreError maps a repository error onto the HTTP error taxonomy.
// A foreign-key violation means a missing reference on create and a row that
// is still referenced on delete, so the caller picks its status.
func respondStoreError(c *gin.Context, err error, resource, context string, referenceStatus int) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		respondNotFound(c, resource)
	case errors.Is(err, database.ErrDuplicate):
		respondError(c, http.StatusConflict, CodeDuplicate, resource+" violates a unique constraint")
	case errors.Is(err, database.ErrReference):
		message := resource + " references a row that does not exist"
		if referenceStatus == http.StatusConflict {
			message = resource + " is still referenced by another row"
		}
		respondError(c, referenceStatus, CodeReference, message)
	case errors.Is(err, database.ErrUnavailable):
		log.Printf("Storage unavailable (%s) request_id=%s: %v", context, GetRequestID(c), err)
		respondError(c, http.StatusServiceUnavailable, CodeUnavailable, "storage unavailable")
	default:
		respondInternalError(c, err, context)
	}
}

// --- Success Response Helpers ---

// respondCreated sends a 201 Created response with data.
func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// --- Parameter Parsing ---

// parseIDParam extracts and validates an unsigned integer ID from URL parameters.
// Returns the parsed ID or responds with a 400 error and returns 0, false.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		respondBadRequest(c, "invalid "+paramName)
		return 0, false
	}
	return uint(id), true
}
