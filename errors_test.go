package ecobee

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name    string
		err     *APIError
		wantMsg string
	}{
		{
			name: "vendor status code",
			err: &APIError{
				HTTPStatus: 500,
				Code:       3,
				Message:    "Processing error",
			},
			wantMsg: "ecobee: API error 3 (http 500): Processing error",
		},
		{
			name: "expired token",
			err: &APIError{
				HTTPStatus: 500,
				Code:       14,
				Message:    "Authentication token has expired",
			},
			wantMsg: "ecobee: API error 14 (http 500): Authentication token has expired",
		},
		{
			name: "no vendor status",
			err: &APIError{
				HTTPStatus: 502,
			},
			wantMsg: "ecobee: API error 0 (http 502): ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.wantMsg {
				t.Errorf("APIError.Error() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestAuthError_Error(t *testing.T) {
	err := &AuthError{
		HTTPStatus:  401,
		Type:        "invalid_grant",
		Description: "The authorization grant, token or credentials are invalid",
	}
	want := `ecobee: authorization error "invalid_grant" (http 401): The authorization grant, token or credentials are invalid`
	if got := err.Error(); got != want {
		t.Errorf("AuthError.Error() = %q, want %q", got, want)
	}
}

func TestIsAPIError(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		codes []int
		want  bool
	}{
		{
			name: "plain API error",
			err:  &APIError{HTTPStatus: 500, Code: 3},
			want: true,
		},
		{
			name:  "matching code",
			err:   &APIError{HTTPStatus: 500, Code: 14},
			codes: []int{14},
			want:  true,
		},
		{
			name:  "non-matching code",
			err:   &APIError{HTTPStatus: 500, Code: 3},
			codes: []int{14},
			want:  false,
		},
		{
			name:  "one of several codes",
			err:   &APIError{HTTPStatus: 500, Code: 6},
			codes: []int{5, 6, 7},
			want:  true,
		},
		{
			name:  "wrapped API error",
			err:   fmt.Errorf("request failed: %w", &APIError{Code: 14}),
			codes: []int{14},
			want:  true,
		},
		{
			name: "unrelated error",
			err:  errors.New("boom"),
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAPIError(tt.err, tt.codes...); got != tt.want {
				t.Errorf("IsAPIError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsTokenExpired(t *testing.T) {
	if !IsTokenExpired(&APIError{HTTPStatus: 500, Code: 14}) {
		t.Error("code 14 should report an expired token")
	}
	if IsTokenExpired(&APIError{HTTPStatus: 500, Code: 3}) {
		t.Error("code 3 should not report an expired token")
	}
	if IsTokenExpired(ErrNoAccessToken) {
		t.Error("sentinel error should not report an expired token")
	}
}

func TestIsAuthError(t *testing.T) {
	if !IsAuthError(&AuthError{Type: "invalid_grant"}) {
		t.Error("AuthError should be detected")
	}
	if !IsAuthError(fmt.Errorf("wrapped: %w", &AuthError{Type: "slow_down"})) {
		t.Error("wrapped AuthError should be detected")
	}
	if IsAuthError(&APIError{Code: 14}) {
		t.Error("APIError is not an auth error")
	}
}

func TestIsDecodeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"unknown field", &UnknownFieldError{Type: "Thermostat", Key: "x"}, true},
		{"shape mismatch", &ShapeMismatchError{Type: "Status", Key: "code"}, true},
		{"missing type", &MissingTypeError{Name: "Nope"}, true},
		{"wrapped shape mismatch", fmt.Errorf("decode: %w", &ShapeMismatchError{}), true},
		{"API error", &APIError{Code: 3}, false},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDecodeError(tt.err); got != tt.want {
				t.Errorf("IsDecodeError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsTimeout(t *testing.T) {
	if !IsTimeout(context.DeadlineExceeded) {
		t.Error("context.DeadlineExceeded should report a timeout")
	}
	if IsTimeout(errors.New("boom")) {
		t.Error("plain error should not report a timeout")
	}
}

func TestShapeMismatchError_Error(t *testing.T) {
	t.Run("with field key", func(t *testing.T) {
		err := &ShapeMismatchError{Type: "Runtime", Key: "actualTemperature", Expected: "integer", Actual: "boolean"}
		want := `ecobee: field "actualTemperature" of type Runtime: expected integer, got boolean`
		if got := err.Error(); got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	})

	t.Run("without field key", func(t *testing.T) {
		err := &ShapeMismatchError{Type: "Status", Expected: "payload rooted at a single key", Actual: "payload with 2 root keys"}
		want := "ecobee: type Status: expected payload rooted at a single key, got payload with 2 root keys"
		if got := err.Error(); got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	})
}
