package ecobee

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the ecobee client.
// All errors are defined here for easy discovery and consistent organization.
var (
	// Authentication errors
	ErrEmptyAppKey    = errors.New("ecobee: application key cannot be empty")
	ErrNoAccessToken  = errors.New("ecobee: no access token (run the PIN authorization flow first)")
	ErrNoRefreshToken = errors.New("ecobee: no refresh token (run the PIN authorization flow first)")
	ErrNotAuthorized  = errors.New("ecobee: authorization code missing (call Authorize first)")
	ErrNoStoredTokens = errors.New("ecobee: no stored tokens")

	// Request validation errors
	ErrNilSelection      = errors.New("ecobee: selection cannot be nil")
	ErrEmptyFunctionType = errors.New("ecobee: function type cannot be empty")
	ErrEmptyVacationName = errors.New("ecobee: vacation name cannot be empty")
	ErrEmptyMessageText  = errors.New("ecobee: message text cannot be empty")
	ErrEmptySensorName   = errors.New("ecobee: sensor name cannot be empty")
	ErrEmptyPlugName     = errors.New("ecobee: plug name cannot be empty")
	ErrEmptyAckRef       = errors.New("ecobee: acknowledge ref cannot be empty")

	// Report validation errors
	ErrReportSelectionType = errors.New("ecobee: report selection must use the thermostats selection type")
	ErrTooManyThermostats  = errors.New("ecobee: report selection must not specify more than 25 thermostats")
	ErrReportWindow        = errors.New("ecobee: report window must be at most 31 days and end after it starts")
	ErrReportDateRange     = errors.New("ecobee: report dates must fall between 2008-01-02 and 2035-01-01 UTC")
	ErrEmptyReportColumns  = errors.New("ecobee: report columns cannot be empty")
	ErrInvalidMeter        = errors.New(`ecobee: meters must be a CSV string of "energy"`)

	// Hold/event validation errors
	ErrEventDateRange    = errors.New("ecobee: event dates must fall between 2008-01-02 and 2035-01-01")
	ErrEventWindow       = errors.New("ecobee: event end must be later than its start")
	ErrHoldEndRequired   = errors.New("ecobee: dateTime holds require an end date and time")
	ErrHoldHoursRequired = errors.New("ecobee: holdHours holds require a positive hold hours value")
	ErrHoldTempRequired  = errors.New("ecobee: a hold needs either both hold temperatures or a climate ref")
	ErrTempOutOfRange    = errors.New("ecobee: hold temperature out of the supported range")
	ErrFanMinOnTimeRange = errors.New("ecobee: fan min on time must be between 0 and 60 minutes")
)

// APIError is an ecobee API status error: the vendor returns HTTP failures
// with a status object carrying its own code and message.
type APIError struct {
	HTTPStatus int
	Code       int
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("ecobee: API error %d (http %d): %s", e.Code, e.HTTPStatus, e.Message)
}

// AuthError is an OAuth error response from the authorization endpoints.
type AuthError struct {
	HTTPStatus  int
	Type        string
	Description string
	URI         string
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	return fmt.Sprintf("ecobee: authorization error %q (http %d): %s", e.Type, e.HTTPStatus, e.Description)
}

// UnknownFieldError reports a wire key with no entry in the active type's
// descriptor. Unknown keys are never dropped silently; they usually mean the
// registry has drifted from the vendor's response contract.
type UnknownFieldError struct {
	Type string
	Key  string
}

// Error implements the error interface.
func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("ecobee: unknown field %q for type %s", e.Key, e.Type)
}

// ShapeMismatchError reports a wire value whose runtime shape disagrees with
// the field's declared type.
type ShapeMismatchError struct {
	Type     string
	Key      string
	Expected string
	Actual   string
}

// Error implements the error interface.
func (e *ShapeMismatchError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("ecobee: type %s: expected %s, got %s", e.Type, e.Expected, e.Actual)
	}
	return fmt.Sprintf("ecobee: field %q of type %s: expected %s, got %s", e.Key, e.Type, e.Expected, e.Actual)
}

// MissingTypeError reports a reference to a type the registry has no
// descriptor for. This is a configuration defect, not a runtime condition.
type MissingTypeError struct {
	Name string
}

// Error implements the error interface.
func (e *MissingTypeError) Error() string {
	return fmt.Sprintf("ecobee: no registered type %q", e.Name)
}

// IsAuthError returns true if the error is an OAuth authorization failure.
func IsAuthError(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}

// IsAPIError returns true if the error is an ecobee API status error,
// optionally matching one of the given vendor status codes.
func IsAPIError(err error, codes ...int) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	if len(codes) == 0 {
		return true
	}
	for _, code := range codes {
		if apiErr.Code == code {
			return true
		}
	}
	return false
}

// IsTokenExpired returns true if the error indicates an expired access token
// (vendor status code 14), the cue to call RefreshTokens.
func IsTokenExpired(err error) bool {
	return IsAPIError(err, 14)
}

// IsDecodeError returns true if the error came from the marshaller rather
// than the transport or the vendor API.
func IsDecodeError(err error) bool {
	var unknown *UnknownFieldError
	var shape *ShapeMismatchError
	var missing *MissingTypeError
	return errors.As(err, &unknown) || errors.As(err, &shape) || errors.As(err, &missing)
}

// IsTimeout returns true if the error indicates a timeout.
func IsTimeout(err error) bool {
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
