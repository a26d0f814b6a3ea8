package common

import "errors"

var (
	// Local validation errors raised before any network call.
	ErrEmptyPixKey     = errors.New("pix key is empty")
	ErrEmptyKeyValue   = errors.New("key value is required for this key type")
	ErrInvalidAmount   = errors.New("amount must be a positive number")
	ErrInvalidPin      = errors.New("transaction pin must be 4 digits")
	ErrInvalidDocument = errors.New("document must be 11 digits")

	// Session errors.
	ErrNotAuthenticated = errors.New("not authenticated")
)
