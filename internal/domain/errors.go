package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the services wraps exactly one of them.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation failed")
	ErrConflict    = errors.New("conflict")
	ErrPersistence = errors.New("persistence failure")
)

var (
	ErrCartNotFound     = newKindError(ErrNotFound, "cart not found")
	ErrCartItemNotFound = newKindError(ErrNotFound, "cart item not found")
	ErrProductNotFound  = newKindError(ErrNotFound, "product not found")
	ErrOrderNotFound    = newKindError(ErrNotFound, "order not found")
	ErrCustomerNotFound = newKindError(ErrNotFound, "customer not found")

	ErrCartEmpty       = newKindError(ErrValidation, "cart is empty")
	ErrInvalidQuantity = newKindError(ErrValidation, "quantity must be positive")
	ErrInvalidStatus   = newKindError(ErrValidation, "invalid status, must be one of: PENDING, SHIPPED, DELIVERED")
	ErrMixedCurrencies = newKindError(ErrValidation, "cart items use more than one currency")

	ErrInsufficientStock = newKindError(ErrConflict, "insufficient stock")
	ErrEmailTaken        = newKindError(ErrConflict, "email is already registered")
)

type kindError struct {
	kind error
	msg  string
}

func newKindError(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

func (e *kindError) Error() string {
	return e.msg
}

func (e *kindError) Unwrap() error {
	return e.kind
}

// InsufficientStockError names the product whose stock could not cover the ordered quantity.
type InsufficientStockError struct {
	ProductID   int64
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product: %s", e.ProductName)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// Classify leaves errors that already carry a kind untouched and marks everything else as a
// persistence failure.
func Classify(err error) error {
	if err == nil || Kind(err) != nil {
		return err
	}
	return fmt.Errorf("%w: %w", ErrPersistence, err)
}

// Kind returns the error kind err wraps, or nil.
func Kind(err error) error {
	for _, kind := range []error{ErrNotFound, ErrValidation, ErrConflict, ErrPersistence} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
