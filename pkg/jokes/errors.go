package jokes

import (
	"errors"
	"fmt"
)

// ErrMissingField is returned when an upstream body decodes but lacks the expected field.
var ErrMissingField = errors.New("expected field missing from upstream response")

// UpstreamError reports a failed call to one of the joke providers.
type UpstreamError struct {
	// Op is the loader operation that failed, e.g. "random joke".
	Op string
	// URL is the upstream URL that was requested.
	URL string
	// StatusCode is the HTTP status of the upstream response, 0 if none was received.
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("upstream %s (%s, status %d): %v", e.Op, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("upstream %s (%s): %v", e.Op, e.URL, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// IsUpstreamError reports whether err carries an *UpstreamError.
func IsUpstreamError(err error) bool {
	var upstreamErr *UpstreamError
	return errors.As(err, &upstreamErr)
}
