package wire

import (
	"errors"
	"fmt"

	"github.com/sdrhost/dboard-go/pkg/dboard"
	"github.com/sdrhost/dboard-go/pkg/prop"
)

// Status represents a response status code.
type Status uint8

const (
	// StatusSuccess indicates the operation completed successfully.
	StatusSuccess Status = 0

	// StatusInvalidValue indicates the board rejected the value.
	StatusInvalidValue Status = 1

	// StatusReadOnly indicates an attempt to set a read-only property.
	StatusReadOnly Status = 2

	// StatusUnsupported indicates the property is not part of the enumeration.
	StatusUnsupported Status = 3

	// StatusUnknownSubdev indicates the unit has no such sub-device.
	StatusUnknownSubdev Status = 4

	// StatusBadRequest indicates a malformed request.
	StatusBadRequest Status = 5

	// StatusFailure is any other error.
	StatusFailure Status = 6
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "SUCCESS"
	case StatusInvalidValue:
		return "INVALID_VALUE"
	case StatusReadOnly:
		return "READ_ONLY"
	case StatusUnsupported:
		return "UNSUPPORTED"
	case StatusUnknownSubdev:
		return "UNKNOWN_SUBDEV"
	case StatusBadRequest:
		return "BAD_REQUEST"
	case StatusFailure:
		return "FAILURE"
	default:
		return "UNKNOWN"
	}
}

// IsSuccess returns true if the status indicates success.
func (s Status) IsSuccess() bool {
	return s == StatusSuccess
}

// IsError returns true if the status indicates an error.
func (s Status) IsError() bool {
	return s != StatusSuccess
}

// ErrBadRequest marks a request that could not be dispatched.
var ErrBadRequest = errors.New("bad request")

// StatusFromError maps an error onto a status code. A nil error is success.
func StatusFromError(err error) Status {
	switch {
	case err == nil:
		return StatusSuccess
	case errors.Is(err, prop.ErrInvalidValue):
		return StatusInvalidValue
	case errors.Is(err, prop.ErrReadOnlyProperty):
		return StatusReadOnly
	case errors.Is(err, prop.ErrUnsupportedProperty):
		return StatusUnsupported
	case errors.Is(err, dboard.ErrUnknownSubdev):
		return StatusUnknownSubdev
	case errors.Is(err, ErrBadRequest):
		return StatusBadRequest
	default:
		return StatusFailure
	}
}

// Err turns a status back into an error wrapping the matching sentinel.
// It returns nil for StatusSuccess.
func (s Status) Err(message string) error {
	var base error
	switch s {
	case StatusSuccess:
		return nil
	case StatusInvalidValue:
		base = prop.ErrInvalidValue
	case StatusReadOnly:
		base = prop.ErrReadOnlyProperty
	case StatusUnsupported:
		base = prop.ErrUnsupportedProperty
	case StatusUnknownSubdev:
		base = dboard.ErrUnknownSubdev
	case StatusBadRequest:
		base = ErrBadRequest
	default:
		base = errors.New(s.String())
	}
	if message == "" {
		return base
	}
	return fmt.Errorf("%w: %s", base, message)
}
