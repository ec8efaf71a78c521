package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ahmeshaf/opencitations/internal/opencitations"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "generic", err: errors.New("boom"), want: ExitError},
		{
			name: "request failure",
			err:  &opencitations.APIError{StatusCode: 404, Status: "404 Not Found"},
			want: ExitRequestError,
		},
		{
			name: "network failure",
			err:  fmt.Errorf("%w: connection refused", opencitations.ErrNetwork),
			want: ExitNetworkError,
		},
		{
			name: "decode failure",
			err:  fmt.Errorf("%w: unexpected end of JSON input", opencitations.ErrInvalidResponse),
			want: ExitDecodeError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
