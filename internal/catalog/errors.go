package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSelection is reported when a submit happens without a chosen product.
	ErrNoSelection = errors.New("no product selected")
	// ErrInvalidPrice is reported when the price field does not hold a valid number.
	ErrInvalidPrice = errors.New("invalid price format")
)

// FetchError describes a failed catalog fetch: transport failure, a
// non-success status or an undecodable body.
type FetchError struct {
	Op     string
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch products %s: %s: HTTP %d", e.URL, e.Op, e.Status)
	}
	if e.Err == nil {
		return fmt.Sprintf("fetch products %s: %s", e.URL, e.Op)
	}
	return fmt.Sprintf("fetch products %s: %s: %v", e.URL, e.Op, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ValidationError rejects a user edit. Reason is one of ErrNoSelection or
// ErrInvalidPrice so callers can match with errors.Is.
type ValidationError struct {
	Reason error
	Input  string
}

func (e *ValidationError) Error() string {
	if e.Input == "" {
		return e.Reason.Error()
	}
	return fmt.Sprintf("%s: %q", e.Reason, e.Input)
}

func (e *ValidationError) Unwrap() error {
	return e.Reason
}

// Message returns the user-facing feedback text for the validation failure.
func (e *ValidationError) Message() string {
	switch {
	case errors.Is(e.Reason, ErrNoSelection):
		return "Please select a product first."
	case errors.Is(e.Reason, ErrInvalidPrice):
		return "Invalid price format."
	default:
		return e.Reason.Error()
	}
}
