package zulu

import (
	"errors"
	"fmt"
)

var (
	// ErrUsage is returned when no Java version was given on the command line.
	ErrUsage = errors.New("java version is required")

	// ErrInvalidInput marks malformed API data: a version field that is not
	// an array or a checksum that is not valid hex.
	ErrInvalidInput = errors.New("invalid input")
)

// StatusError is returned when the metadata API answers with anything but 200.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.Code, e.URL)
}
