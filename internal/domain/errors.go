package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Concrete errors wrap one of them so callers can map a whole
// family with errors.Is.
var (
	ErrConfiguration   = errors.New("configuration error")
	ErrTransportKind   = errors.New("transport error")
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrConflict        = errors.New("conflict")
)

var (
	ErrWebhookNotConfigured = fmt.Errorf("webhook url is not configured: %w", ErrConfiguration)
	ErrClientUnavailable    = fmt.Errorf("http client is not available: %w", ErrConfiguration)

	ErrTransport      = fmt.Errorf("webhook request failed: %w", ErrTransportKind)
	ErrUpstreamStatus = fmt.Errorf("webhook returned a non-success status: %w", ErrTransportKind)

	ErrMissingCaseID           = fmt.Errorf("case_id is missing: %w", ErrInvalidInput)
	ErrMissingCSVContent       = fmt.Errorf("csv content is missing: %w", ErrInvalidInput)
	ErrUpstreamReportedFailure = fmt.Errorf("upstream reported failure: %w", ErrInvalidInput)
	ErrCaseHasNoImage          = fmt.Errorf("case has no image: %w", ErrInvalidInput)
	ErrMissingReceiptImage     = fmt.Errorf("receipt_image is required: %w", ErrInvalidInput)

	ErrCaseNotFound     = fmt.Errorf("case not found: %w", ErrNotFound)
	ErrObjectNotFound   = fmt.Errorf("stored object not found: %w", ErrNotFound)
	ErrCaseNotProcessed = fmt.Errorf("case is not processed yet: %w", ErrConflict)

	ErrSecretMismatch = fmt.Errorf("callback secret mismatch: %w", ErrForbidden)
)
