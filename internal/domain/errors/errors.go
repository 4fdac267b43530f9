package errors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidSignature marks a payment callback whose signature does not
	// verify. The rejection path must stay side-effect free.
	ErrInvalidSignature = errors.New("invalid payment signature")
	// ErrInvalidTransition marks a payment status change outside the allowed
	// pending->paid, pending->failed, paid->refunded set, including duplicate
	// or out-of-order verification callbacks.
	ErrInvalidTransition = errors.New("invalid payment transition")
	// ErrGatewayUnavailable marks a network or service failure of an outbound
	// gateway call; the order is left pending and the call is retryable.
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
	ErrShipmentFailed     = errors.New("shipment booking failed")
	ErrInsufficientStock  = errors.New("insufficient stock")
)

// InsufficientStockError reports which artwork could not cover a requested
// quantity. It matches ErrInsufficientStock under errors.Is.
type InsufficientStockError struct {
	ArtworkID int64
}

func (e InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for artwork %d", e.ArtworkID)
}

func (InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// ValidationError carries per-field validation messages for a 400 response.
type ValidationError struct {
	Fields map[string]string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// NewValidationError builds ValidationError from field/message pairs.
func NewValidationError(fields map[string]string) ValidationError {
	return ValidationError{Fields: fields}
}
