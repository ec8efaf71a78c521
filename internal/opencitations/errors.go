package opencitations

import (
	"errors"
	"fmt"
)

// Common errors returned by the OpenCitations client.
var (
	// ErrNetwork indicates a network-level failure (DNS, connection
	// refused, timeout/deadline expiry).
	ErrNetwork = errors.New("network error communicating with OpenCitations")

	// ErrInvalidResponse indicates the response body was not valid JSON or
	// did not match the expected shape for the endpoint.
	ErrInvalidResponse = errors.New("invalid response from OpenCitations")
)

// APIError represents a non-2xx response from the OpenCitations API.
type APIError struct {
	StatusCode int
	Status     string // Status line from the response, e.g. "404 Not Found"
}

func (e *APIError) Error() string {
	return fmt.Sprintf("OpenCitations API error (status %d): %s", e.StatusCode, e.Status)
}

// IsRequestError returns true if the error is a non-2xx API response.
func IsRequestError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// IsNetworkError returns true if the error is a network-level failure.
func IsNetworkError(err error) bool {
	return errors.Is(err, ErrNetwork)
}

// IsDecodeError returns true if the error indicates an undecodable response.
func IsDecodeError(err error) bool {
	return errors.Is(err, ErrInvalidResponse)
}
