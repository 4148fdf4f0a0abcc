package services

import "errors"

// Sentinel errors returned by the service layer. Handlers translate these to
// HTTP statuses with errors.Is.
var (
	// ErrInvalidInput marks a malformed or missing request field.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidQuantity rejects cart quantities below one.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	// ErrInvalidCredentials is deliberately generic: it covers both an
	// unknown email and a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAccountDisabled is returned on login against a deactivated account.
	ErrAccountDisabled = errors.New("account is disabled")
	// ErrEmailTaken is returned when registering an already-known email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrCartEmpty aborts a checkout with nothing in the cart.
	ErrCartEmpty = errors.New("cart is empty")
	// ErrProductUnavailable aborts a checkout containing an inactive or
	// vanished product.
	ErrProductUnavailable = errors.New("product is not available")
	// ErrPaymentDeclined carries the simulated gateway's decline verdict.
	ErrPaymentDeclined = errors.New("payment declined")
)
