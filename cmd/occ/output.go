package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputHuman writes a human-readable string to stdout.
func outputHuman(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// exitWithError outputs a lookup error in the appropriate format and exits
// with the code for its failure kind.
func exitWithError(context string, err error) error {
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s: %v\n", context, err)
	} else {
		outputJSON(ErrorResponse{Error: fmt.Sprintf("%s: %v", context, err)})
	}
	os.Exit(exitCodeFor(err))
	return nil
}
