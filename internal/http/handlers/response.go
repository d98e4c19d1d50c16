// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the standard response utilities used across all endpoints,
// including structured error envelopes, consistent JSON serialization, and
// helpers for common HTTP patterns. The goal is to guarantee uniform responses
// for both success and failure cases, making the API predictable and
// machine-friendly.
//
// Conventions:
//   - Blog endpoints return an ErrorResponse with a stable `code` on failure.
//   - The contact endpoint uses its own envelope (ContactErrorResponse /
//     ContactSuccessResponse) because form clients branch on `success` and
//     the uppercase rejection codes.
//   - `fail()` centralizes error logging and formatting, ensuring 5xx responses
//     are logged with request context for observability.
//   - `ok()` simplifies writing success responses in a consistent shape.
//
// Example error response:
//
//	HTTP/1.1 404 Not Found
//	{
//	  "request_id": "123e4567-e89b-12d3-a456-426614174000",
//	  "code": "not_found",
//	  "message": "post not found"
//	}
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pkarali/go-blog-backend/internal/http/middleware"
)

// ErrorResponse is the standard error envelope returned by blog endpoints.
//
// Fields:
//   - RequestID: Optional correlation ID, echoed from X-Request-ID header, used
//     to correlate server logs with client-side errors.
//   - Code: A stable, machine-readable string (see errors.go constants).
//   - Message: A human-readable error description, safe for display to users.
//
// This struct is used in OpenAPI documentation via Swagger annotations.
type ErrorResponse struct {
	// Correlates server logs and client errors
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	// Stable, machine-readable code (see errors.go constants)
	Code string `json:"code" example:"not_found"`
	// Human-readable message (safe to show to users)
	Message string `json:"message" example:"post not found"`
}

// ContactSuccessResponse is the acknowledgment returned for an accepted
// contact submission.
type ContactSuccessResponse struct {
	Success   bool   `json:"success" example:"true"`
	Message   string `json:"message" example:"Thank you for your message. We'll get back to you soon."`
	Timestamp string `json:"timestamp" example:"2025-07-01T12:00:00Z"`
}

// ContactErrorResponse is the rejection envelope of the contact endpoint.
// Code is one of the uppercase constants in errors.go.
type ContactErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"message must be at least 10 characters"`
	Code    string `json:"code" example:"VALIDATION_ERROR"`
}

// fail aborts the request with a structured error and logs server-side errors.
//
// It constructs an ErrorResponse, writes it as JSON with the given HTTP status,
// and calls gin.Context.AbortWithStatusJSON to stop further processing.
//
// Server errors (>=500) are logged using the request-scoped logger from middleware.
func fail(c *gin.Context, status int, code, msg string) {
	reqID := c.Writer.Header().Get("X-Request-ID")
	resp := ErrorResponse{
		RequestID: reqID,
		Code:      code,
		Message:   msg,
	}

	// Log 5xx (server-side) with request-scoped logger
	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("code", code).
			Str("message", msg).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, resp)
}

// Fail is the exported variant of fail().
//
// External packages (e.g., router setup) should call Fail to return
// consistent error envelopes without directly depending on unexported helpers.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

// contactFail aborts a contact request with the form-client envelope.
// Server errors (>=500) are logged like fail().
func contactFail(c *gin.Context, status int, code, msg string) {
	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("code", code).
			Str("message", msg).
			Msg("contact error")
	}
	c.AbortWithStatusJSON(status, ContactErrorResponse{
		Success: false,
		Error:   msg,
		Code:    code,
	})
}

// contactOK writes the success acknowledgment for an accepted submission.
func contactOK(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, ContactSuccessResponse{
		Success:   true,
		Message:   msg,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// ok writes a success JSON response.
//
// It serializes `body` as JSON with the given HTTP status code.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}
