package utils

import "errors"

// Common application errors used across services.
var (
	ErrInvalidCredentials = errors.New("INVALID_CREDENTIALS")
	ErrEmailTaken         = errors.New("EMAIL_TAKEN")
	ErrInvalidToken       = errors.New("INVALID_TOKEN")
	ErrForbidden          = errors.New("FORBIDDEN")
	ErrNotFound           = errors.New("NOT_FOUND")
	ErrProductNotFound    = errors.New("PRODUCT_NOT_FOUND")
	ErrOrderNotFound      = errors.New("ORDER_NOT_FOUND")
	ErrEmptyOrder         = errors.New("EMPTY_ORDER")
	ErrInsufficientStock  = errors.New("INSUFFICIENT_STOCK")
	ErrDuplicatePromoID   = errors.New("DUPLICATE_PROMO_ID")
	ErrInvalidDiscount    = errors.New("INVALID_DISCOUNT")
)
