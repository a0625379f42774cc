package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without underlying error",
			appErr:   NotFound("Tour"),
			expected: "NOT_FOUND: Tour not found",
		},
		{
			name:     "with underlying error",
			appErr:   Internal("Failed to save booking", errors.New("connection reset")),
			expected: "INTERNAL_ERROR: Failed to save booking (caused by: connection reset)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.appErr.Error(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestConstructors_StatusAndCode(t *testing.T) {
	tests := []struct {
		name   string
		err    *AppError
		code   string
		status int
	}{
		{"not found", NotFound("Session"), CodeNotFound, http.StatusNotFound},
		{"not found with id", NotFoundWithID("Tour", "9"), CodeNotFound, http.StatusNotFound},
		{"validation", Validation("bad guest info", nil), CodeValidation, http.StatusUnprocessableEntity},
		{"invalid input", InvalidInput("bad limit"), CodeInvalidInput, http.StatusBadRequest},
		{"conflict", Conflict("duplicate item"), CodeConflict, http.StatusConflict},
		{"precondition", PreconditionFailed("select a tour first", nil), CodePreconditionFailed, http.StatusConflict},
		{"internal", Internal("boom", nil), CodeInternal, http.StatusInternalServerError},
		{"timeout", Timeout("too slow"), CodeTimeout, http.StatusGatewayTimeout},
		{"unavailable", Unavailable("mongo"), CodeUnavailable, http.StatusServiceUnavailable},
		{"zero status falls back to 500", &AppError{Code: "X"}, "X", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("expected code %s, got %s", tt.code, tt.err.Code)
			}
			if tt.err.StatusCode() != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, tt.err.StatusCode())
			}
		})
	}
}

func TestNotFoundWithID_Details(t *testing.T) {
	err := NotFoundWithID("Tour", "42")
	if err.Details["resource"] != "Tour" || err.Details["id"] != "42" {
		t.Errorf("unexpected details: %v", err.Details)
	}
}

func TestAsAppError(t *testing.T) {
	original := Conflict("item exists")
	wrapped := fmt.Errorf("service: %w", original)

	if got := AsAppError(wrapped); got != original {
		t.Errorf("expected wrapped AppError to be found, got %v", got)
	}
	if !IsAppError(wrapped) {
		t.Error("IsAppError should see through wrapping")
	}
	if !HasCode(wrapped, CodeConflict) {
		t.Error("HasCode should match the wrapped code")
	}

	plain := errors.New("plain")
	got := AsAppError(plain)
	if got.Code != CodeInternal || !errors.Is(got, plain) {
		t.Errorf("expected plain error wrapped as internal, got %v", got)
	}
	if IsAppError(plain) {
		t.Error("plain error is not an AppError")
	}
}

func TestAppError_ToJSON(t *testing.T) {
	err := Validation("invalid", map[string]any{"field": "email"})

	var decoded map[string]any
	if jerr := json.Unmarshal(err.ToJSON(), &decoded); jerr != nil {
		t.Fatalf("invalid JSON: %v", jerr)
	}
	if decoded["code"] != CodeValidation || decoded["message"] != "invalid" {
		t.Errorf("unexpected JSON: %v", decoded)
	}
	if _, ok := decoded["Err"]; ok {
		t.Error("underlying error must not be serialized")
	}
}
