package clash

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput matches any *EmptyInputError.
	ErrEmptyInput = errors.New("no valid barcodes")
	// ErrConfiguration matches any *ConfigurationError.
	ErrConfiguration = errors.New("invalid configuration")
)

// EmptyInputError reports that a required set held no valid barcodes after
// normalization.
type EmptyInputError struct {
	Label string
}

func (e *EmptyInputError) Error() string {
	if e.Label == "" {
		return ErrEmptyInput.Error()
	}
	return fmt.Sprintf("%s: %s", e.Label, ErrEmptyInput)
}

func (e *EmptyInputError) Unwrap() error { return ErrEmptyInput }

// ConfigurationError reports a bad threshold or mode/input combination.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }
