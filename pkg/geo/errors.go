package geo

import (
	"errors"
)

var (
	ErrLookupFailed        = errors.New("lookup failed")
	ErrProviderUnavailable = errors.New("geolocation provider unavailable")
	ErrTooManyRequests     = errors.New("too many requests sent")
	ErrBadHTTPStatus       = errors.New("bad HTTP status received")
)

// LookupError is returned when the provider answers but reports
// it could not geolocate the address. Message is the provider's own
// message and is meant to be shown to the user as is.
type LookupError struct {
	Provider Provider
	Message  string
}

func (e *LookupError) Error() string {
	return string(e.Provider) + ": " + e.Message
}

// Is returns true for ErrLookupFailed.
func (e *LookupError) Is(target error) bool {
	return target == ErrLookupFailed //nolint:errorlint,goerr113
}
