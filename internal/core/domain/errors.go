package domain

import "errors"

// ErrValidation marks malformed or rule-breaking input. Wrap it with the
// reason: fmt.Errorf("%w: items must not be empty", ErrValidation).
var ErrValidation = errors.New("validation failed")

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUserExists          = errors.New("user already exists")
	ErrMenuItemNotFound    = errors.New("menu item not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrReservationNotFound = errors.New("reservation not found")
)

var (
	// ErrPaymentProviderUnavailable is returned when no provider credentials
	// are configured. Browsing and ordering keep working without them.
	ErrPaymentProviderUnavailable = errors.New("payment processing not configured")
	// ErrPaymentProvider wraps a rejection reported by the provider.
	ErrPaymentProvider = errors.New("error creating payment intent")
)
