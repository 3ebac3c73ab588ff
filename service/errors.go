package service

import (
	"errors"
	"fmt"
)

// Error kinds returned by the service layer. The handler boundary translates
// them to HTTP statuses; anything else degrades to an internal error.
var (
	// ErrUnauthenticated means the request carried no valid caller identity.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrNotOwner means the caller is authenticated but does not own the store.
	ErrNotOwner = errors.New("caller does not own store")

	// ErrNoProducts means checkout was asked to charge an empty product list.
	ErrNoProducts = errors.New("product ids are required")

	// ErrUnknownProduct means checkout was given a product id with no matching row.
	ErrUnknownProduct = errors.New("unknown product id")
)

// MissingFieldError names a required request field that was absent.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

func missing(field string) error {
	return &MissingFieldError{Field: field}
}
