package provider

import "errors"

// Common errors
var (
	ErrNotFound         = errors.New("resource not found")
	ErrAuthFailed       = errors.New("authentication failed")
	ErrPermissionDenied = errors.New("permission denied")
	ErrNoRegion         = errors.New("instance identity document has no region")
	ErrInvalidArguments = errors.New("invalid arguments")
)
