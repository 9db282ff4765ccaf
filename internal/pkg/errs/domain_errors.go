package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase and handler layers
var (
	// Profile errors
	ErrInvalidProfileID = errors.New("invalid profile id")

	// Checkout errors
	ErrEmptyCart             = errors.New("cart is empty")
	ErrInvalidPaymentMethod  = errors.New("invalid payment method")
	ErrInvalidPaymentDetails = errors.New("invalid payment details")
	ErrCheckoutCanceled      = errors.New("checkout canceled")
	ErrCheckoutRateLimited   = errors.New("too many checkout attempts")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrStorageOperationFailed = errors.New("storage operation failed")
)
