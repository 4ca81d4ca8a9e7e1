package collector

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey is returned by fetch operations before any network
// call is attempted when the fetcher was built without an API key.
var ErrMissingAPIKey = errors.New("fmp: missing API key")

// RequestError reports a failed API request: a transport failure, a
// non-2xx status, or an unparseable response body.
type RequestError struct {
	URL    string // endpoint without credentials
	Status int    // 0 when the request never got a response
	Err    error
}

func (e *RequestError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fmp: request %s: status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fmp: request %s: %v", e.URL, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }
