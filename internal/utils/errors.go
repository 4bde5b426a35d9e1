package utils

import "errors"

// Common application errors used across services.
var (
	ErrMissingName     = errors.New("MISSING_NAME")
	ErrNameTooLong     = errors.New("NAME_TOO_LONG")
	ErrMissingCategory = errors.New("MISSING_CATEGORY")
	ErrInvalidCategory = errors.New("INVALID_CATEGORY")
	ErrProductNotFound = errors.New("PRODUCT_NOT_FOUND")
)
