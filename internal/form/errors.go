package form

import (
	"errors"
	"fmt"
)

var (
	// ErrSaveFailed is returned by Submit when the store could not save the product.
	ErrSaveFailed = errors.New("could not save product")
	// ErrDeleteFailed is returned by Delete when the store could not remove the product.
	ErrDeleteFailed = errors.New("could not delete product")
	// ErrLoadFailed is returned by Refresh when the product list could not be read.
	ErrLoadFailed = errors.New("could not load products")
)

// ValidationError reports user input that was rejected before reaching the store.
type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Description)
}
