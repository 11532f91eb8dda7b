package client

import "fmt"

// Error is the only error type returned by Client.
//
// StatusCode is non-zero when the server answered with a non-2xx status; in
// that case Status and Body carry the status text and the raw response body.
// Otherwise Err holds the transport or decode failure.
type Error struct {
	StatusCode int
	Status     string
	Body       string
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("HTTP error: status %d %s: %s", e.StatusCode, e.Status, e.Body)
	}
	return fmt.Sprintf("failed to create summary: %v", e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
