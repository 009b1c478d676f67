package ecobee

import (
	"context"
	"time"
)

// API defines the interface for ecobee thermostat operations.
// Client implements this interface, enabling mocking for tests.
type API interface {
	// ============================================================================
	// Authorization Operations
	// ============================================================================

	Authorize(ctx context.Context) (*AuthorizeResponse, error)
	RequestTokens(ctx context.Context) (*Tokens, error)
	RefreshTokens(ctx context.Context) (*Tokens, error)
	EnsureValidToken(ctx context.Context) error
	Tokens() *Tokens
	SetTokens(ctx context.Context, tokens *Tokens) error

	// ============================================================================
	// Thermostat Operations
	// ============================================================================

	ThermostatSummary(ctx context.Context, sel *Selection) (*ThermostatSummaryResponse, error)
	Thermostats(ctx context.Context, sel *Selection, page *Page) (*ThermostatResponse, error)
	AllThermostats(ctx context.Context, sel *Selection) ([]*Thermostat, error)
	UpdateThermostats(ctx context.Context, sel *Selection, thermostat *Thermostat, fns ...Function) (*UpdateThermostatResponse, error)

	// ============================================================================
	// Thermostat Functions
	// ============================================================================

	SetHold(ctx context.Context, sel *Selection, opts HoldOptions) (*UpdateThermostatResponse, error)
	ResumeProgram(ctx context.Context, sel *Selection, resumeAll bool) (*UpdateThermostatResponse, error)
	CreateVacation(ctx context.Context, sel *Selection, opts VacationOptions) (*UpdateThermostatResponse, error)
	DeleteVacation(ctx context.Context, sel *Selection, name string) (*UpdateThermostatResponse, error)
	SendMessage(ctx context.Context, sel *Selection, text string) (*UpdateThermostatResponse, error)
	Acknowledge(ctx context.Context, sel *Selection, thermostatIdentifier, ackRef string, ackType AckType, remindMeLater bool) (*UpdateThermostatResponse, error)
	ControlPlug(ctx context.Context, sel *Selection, opts PlugOptions) (*UpdateThermostatResponse, error)
	ResetPreferences(ctx context.Context, sel *Selection) (*UpdateThermostatResponse, error)
	SetOccupied(ctx context.Context, sel *Selection, opts OccupiedOptions) (*UpdateThermostatResponse, error)
	UpdateSensor(ctx context.Context, sel *Selection, name, deviceID, sensorID string) (*UpdateThermostatResponse, error)

	// ============================================================================
	// Report Operations
	// ============================================================================

	RuntimeReport(ctx context.Context, sel *Selection, start, end time.Time, columns string, includeSensors bool) (*RuntimeReportResponse, error)
	MeterReport(ctx context.Context, sel *Selection, start, end time.Time, meters string) (*MeterReportResponse, error)
}

// Compile-time check that Client implements API.
var _ API = (*Client)(nil)
