package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Booking errors
	ErrBookingNotFound   = errors.New("booking not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrBookingConflict   = errors.New("booking write conflict")
	ErrBookingCancelled  = errors.New("booking already cancelled")

	// Assignment errors
	ErrIneligibleDecorator = errors.New("ineligible decorator")

	// Catalog errors
	ErrServiceNotFound = errors.New("service not found")

	// Coupon errors
	ErrCouponNotFound = errors.New("coupon not found")

	// Payment errors
	ErrSessionNotFound    = errors.New("payment session not found")
	ErrPaymentNotCaptured = errors.New("payment not captured")
	ErrBookingUnpaid      = errors.New("booking not paid")

	// Actor errors
	ErrUnauthorized = errors.New("actor not permitted")

	// Decorator lifecycle errors
	ErrDecoratorNotFound      = errors.New("decorator not found")
	ErrDecoratorAlreadyExists = errors.New("decorator already exists")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
