package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for malformed or out-of-bounds input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnsupported is returned when the active frame lacks a capability.
	ErrUnsupported = errors.New("unsupported operation")
)

// ArgumentError identifies the offending field of a rejected input.
type ArgumentError struct {
	Field  string
	Reason string
}

func (e *ArgumentError) Error() string {
	return e.Reason
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// ErrMalformedCoordinates reports an input that is not a well-formed point.
func ErrMalformedCoordinates() error {
	return &ArgumentError{Field: "coordinates", Reason: "missing or invalid parameter `coordinates`"}
}

// ErrOutOfBounds reports a coordinate field outside its allowed range.
func ErrOutOfBounds(field string) error {
	return &ArgumentError{
		Field:  field,
		Reason: fmt.Sprintf("`coordinates.%s` out of bounds", field),
	}
}
