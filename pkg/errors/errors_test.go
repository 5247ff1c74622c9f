package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeUnknownStation, "unknown station: %s", "Nowhere")

	if err.Code != ErrCodeUnknownStation {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeUnknownStation)
	}

	if err.Message != "unknown station: Nowhere" {
		t.Errorf("Message = %v, want %v", err.Message, "unknown station: Nowhere")
	}

	expected := "UNKNOWN_STATION: unknown station: Nowhere"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("no route")
	err := Wrap(ErrCodeNoRoute, cause, "No route between %s and %s.", "A", "B")

	if err.Code != ErrCodeNoRoute {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeNoRoute)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	// Test Unwrap
	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Test errors.Is with wrapped error
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	expected := "NO_ROUTE: No route between A and B.: no route"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeTrivialQuery, "test"),
			code:     ErrCodeTrivialQuery,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeTrivialQuery, "test"),
			code:     ErrCodeNoRoute,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeInvalidNetwork, New(ErrCodeInvalidInput, "inner"), "outer"),
			code:     ErrCodeInvalidNetwork,
			expected: true,
		},
		{
			name:     "fmt wrapped",
			err:      fmt.Errorf("plan: %w", New(ErrCodeNoRoute, "inner")),
			code:     ErrCodeNoRoute,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidConfig, "test"),
			expected: ErrCodeInvalidConfig,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeUnknownStation, "Source station doesn't exist!"),
			expected: "Source station doesn't exist!",
		},
		{
			name:     "wrapped keeps outer message",
			err:      Wrap(ErrCodeNoRoute, errors.New("no route"), "No route between A and B."),
			expected: "No route between A and B.",
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRecoverable(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{New(ErrCodeUnknownStation, "x"), true},
		{New(ErrCodeTrivialQuery, "x"), true},
		{New(ErrCodeNoRoute, "x"), true},
		{New(ErrCodeInvalidInput, "x"), true},
		{New(ErrCodeInvalidNetwork, "x"), false},
		{New(ErrCodeInternal, "x"), false},
		{errors.New("plain"), false},
	}

	for _, tt := range tests {
		if got := Recoverable(tt.err); got != tt.want {
			t.Errorf("Recoverable(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
