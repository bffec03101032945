/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestStructuredErrorError(t *testing.T) {
	tests := []struct {
		name string
		err  *StructuredError
		want string
	}{
		{
			name: "without cause",
			err:  New(ErrCodeNotFound, "snapshot missing"),
			want: "[NOT_FOUND] snapshot missing",
		},
		{
			name: "with cause",
			err:  Wrap(ErrCodeUnavailable, "store open failed", errors.New("disk full")),
			want: "[UNAVAILABLE] store open failed: disk full",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(ErrCodeInternal, "wrapped", cause)
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}

	wrapped := fmt.Errorf("outer: %w", err)
	var se *StructuredError
	if !errors.As(wrapped, &se) {
		t.Fatal("expected errors.As to find StructuredError")
	}
	if se.Code != ErrCodeInternal {
		t.Errorf("Code = %q, want %q", se.Code, ErrCodeInternal)
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(New(ErrCodeTimeout, "slow")); got != ErrCodeTimeout {
		t.Errorf("CodeOf = %q, want %q", got, ErrCodeTimeout)
	}
	if got := CodeOf(errors.New("plain")); got != ErrCodeInternal {
		t.Errorf("CodeOf = %q, want %q", got, ErrCodeInternal)
	}
}
