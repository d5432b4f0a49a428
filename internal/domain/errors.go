package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized indicates the caller is not authenticated.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrAccessDenied indicates the target is missing or owned by someone else.
	ErrAccessDenied = errors.New("product not found or access denied")
	// ErrCleanupFailed indicates the stored file could not be removed, so the
	// document it belongs to was left in place.
	ErrCleanupFailed = errors.New("file cleanup failed")
)
