// Package handlers defines HTTP-layer error codes used across all API endpoints.
//
// This file centralizes symbolic error code constants that are mapped to HTTP
// responses (via the `fail()` and `contactFail()` helpers in this package).
// These codes provide clients with a stable, machine-readable error taxonomy
// that supplements human-readable messages.
//
// Conventions:
//   - Blog codes are lowercase snake_case and mirror common HTTP status
//     semantics (bad_request, not_found, internal_error).
//   - Contact codes are uppercase SCREAMING_SNAKE_CASE because the contact
//     form client ships with a fixed switch over exactly these values; they
//     are part of the public form contract and must not be renamed.
//   - All error responses must include both an HTTP status and one of these codes.
//
// Example contact rejection:
//
//	{
//	  "success": false,
//	  "error": "message flagged as spam",
//	  "code": "SPAM_DETECTED"
//	}

package handlers

// Blog endpoint codes.
const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeNotFound         = "not_found"
	ErrCodeRateLimited      = "too_many_requests"
	ErrCodeInternal         = "internal_error"
	ErrCodeMethodNotAllowed = "method_not_allowed"
	ErrCodeFeedFailed       = "feed_failed"
)

// Contact endpoint codes (public form contract).
const (
	ContactCodeRateLimited     = "RATE_LIMITED"
	ContactCodeValidation      = "VALIDATION_ERROR"
	ContactCodeSpam            = "SPAM_DETECTED"
	ContactCodeFileTooLarge    = "FILE_TOO_LARGE"
	ContactCodeUnsupportedType = "UNSUPPORTED_FILE_TYPE"
	ContactCodeTooManyFiles    = "TOO_MANY_FILES"
	ContactCodeEmailFailed     = "EMAIL_SEND_FAILED"
	ContactCodeInternal        = "INTERNAL_ERROR"
)
