package errors

import "errors"

var (
	ErrValidation       = errors.New("validation failed")
	ErrNotFound         = errors.New("record not found")
	ErrInUse            = errors.New("record in use")
	ErrStoreUnavailable = errors.New("store unavailable")
)
