package domain

import "errors"

var (
	// ErrStorageUnavailable wraps document-store failures other than a
	// missing document. Surfaced as 503; never retried.
	ErrStorageUnavailable = errors.New("storage unavailable")

	ErrForbidden = errors.New("access forbidden")
)
