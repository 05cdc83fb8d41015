package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound           = errors.New("not found")
	ErrBackendUnavailable = errors.New("recognition backend unavailable")
	ErrInvalidDictionary  = errors.New("invalid dictionary")
	ErrInvalidConfig      = errors.New("invalid configuration")
	ErrStoreUnavailable   = errors.New("store unavailable")
)
