// Package services defines the business logic for message ingestion and
// querying. This file centralizes common service-level error values so that
// they can be consistently returned by service methods and checked by
// callers with errors.Is.
//
// These errors are intended for internal use by the service layer;
// translation into user-facing messages or HTTP status codes is performed at
// the handler layer.
package services

import "errors"

var (
	// ErrValidation indicates the inbound payload was malformed or failed a
	// field constraint. Returned errors wrap it together with a description
	// of the offending field.
	ErrValidation = errors.New("validation error")

	// ErrStorageUnavailable indicates the backing store was unreachable or a
	// query failed for an unexpected reason. It is never used for benign
	// duplicate inserts.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
