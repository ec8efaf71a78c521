package main

import "github.com/ahmeshaf/opencitations/internal/opencitations"

// Exit codes for lookup commands.
const (
	ExitSuccess      = 0 // Success
	ExitError        = 1 // General error (invalid arguments, runtime failure)
	ExitRequestError = 2 // Remote API returned a non-2xx status
	ExitNetworkError = 3 // Network-level failure (DNS, refused, timeout)
	ExitDecodeError  = 4 // Response was not parseable as expected
)

// exitCodeFor maps an error to the exit code for its failure kind.
func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case opencitations.IsRequestError(err):
		return ExitRequestError
	case opencitations.IsNetworkError(err):
		return ExitNetworkError
	case opencitations.IsDecodeError(err):
		return ExitDecodeError
	default:
		return ExitError
	}
}
