// Package services defines the business logic for the blog catalog and the
// contact gateway. This file centralizes common service-level error values so
// that they can be consistently returned by service methods and checked by
// callers.
//
// These errors are intended for internal use by the service layer and
// translation into user-facing messages or HTTP status codes should be
// performed at the handler/controller layer.
package services

import "errors"

// Blog-related errors.
var (
	// ErrPostNotFound indicates that no published post exists for the
	// requested slug.
	ErrPostNotFound = errors.New("post not found")
)

// Contact-gateway errors. Each maps to one machine-readable rejection code
// at the handler boundary.
var (
	// ErrRateLimited is returned when a client exceeds the contact
	// submission window limit.
	ErrRateLimited = errors.New("too many contact requests")

	// ErrValidation is returned when a submission fails required-field or
	// schema validation. Wrap it with field detail via fmt.Errorf.
	ErrValidation = errors.New("validation failed")

	// ErrSpamDetected is returned when the spam heuristics reject a
	// submission.
	ErrSpamDetected = errors.New("message flagged as spam")

	// ErrTooManyFiles is returned when a submission carries more
	// attachments than allowed.
	ErrTooManyFiles = errors.New("too many attachments")

	// ErrFileTooLarge is returned when an attachment exceeds the size cap.
	ErrFileTooLarge = errors.New("attachment too large")

	// ErrUnsupportedFileType is returned when an attachment's MIME type is
	// not in the allowlist.
	ErrUnsupportedFileType = errors.New("unsupported attachment type")

	// ErrDispatchFailed is returned when the mailer rejects the message or
	// does not answer within the dispatch timeout.
	ErrDispatchFailed = errors.New("email dispatch failed")

	// ErrMessageNotFound indicates that no stored contact message exists
	// for the requested ID.
	ErrMessageNotFound = errors.New("contact message not found")
)
