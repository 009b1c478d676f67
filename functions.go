package ecobee

import (
	"context"
	"fmt"
	"time"
)

// Temperature limits in degrees Fahrenheit for holds and vacations.
const (
	MinCoolTemp = -10.0
	MaxCoolTemp = 120.0
	MinHeatTemp = 45.0
	MaxHeatTemp = 120.0
)

// The vendor rejects dates outside this window everywhere a date appears.
var (
	beforeTimeBegan = time.Date(2008, time.January, 2, 0, 0, 0, 0, time.UTC)
	endOfTime       = time.Date(2035, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// Function is one named operation applied by UpdateThermostats. Params are
// heterogeneous per function type, so they travel as an open key/value set
// rather than through the type registry.
type Function struct {
	Type   string
	Params map[string]any
}

func (f Function) encode() (map[string]any, error) {
	if f.Type == "" {
		return nil, ErrEmptyFunctionType
	}
	out := map[string]any{"type": f.Type}
	if f.Params != nil {
		out["params"] = f.Params
	}
	return out, nil
}

// tempX10 converts degrees Fahrenheit to the wire's tenths-of-a-degree ints.
func tempX10(t float64) int {
	return int(t * 10)
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func formatTime(t time.Time) string {
	return t.Format("15:04:05")
}

// checkEventDates validates the optional start/end pair of an event-creating
// function against the vendor's supported date window.
func checkEventDates(start, end *time.Time) error {
	for _, t := range []*time.Time{start, end} {
		if t == nil {
			continue
		}
		if t.Before(beforeTimeBegan) || t.After(endOfTime) {
			return ErrEventDateRange
		}
	}
	if start != nil && end != nil && !start.Before(*end) {
		return ErrEventWindow
	}
	return nil
}

// checkHoldType validates the hold type against its required companions.
func checkHoldType(holdType HoldType, end *time.Time, holdHours *int) error {
	if holdType == HoldTypeDateTime && end == nil {
		return ErrHoldEndRequired
	}
	if holdType == HoldTypeHoldHours && (holdHours == nil || *holdHours <= 0) {
		return ErrHoldHoursRequired
	}
	return nil
}

// putEventDates writes the optional start/end pair into a params set.
func putEventDates(params map[string]any, start, end *time.Time) {
	if start != nil {
		params["startDate"] = formatDate(*start)
		params["startTime"] = formatTime(*start)
	}
	if end != nil {
		params["endDate"] = formatDate(*end)
		params["endTime"] = formatTime(*end)
	}
}

// HoldOptions shape a SetHold call. Either both hold temperatures or
// HoldClimateRef must be set; the climate ref wins when both are present.
type HoldOptions struct {
	CoolHoldTemp   *float64
	HeatHoldTemp   *float64
	HoldClimateRef *string
	StartDateTime  *time.Time
	EndDateTime    *time.Time
	HoldType       HoldType
	HoldHours      *int
}

// SetHold puts the selected thermostats into a temperature hold. An event is
// created regardless of whether the program is already in the requested state.
func (c *Client) SetHold(ctx context.Context, sel *Selection, opts HoldOptions) (*UpdateThermostatResponse, error) {
	if opts.CoolHoldTemp == nil && opts.HeatHoldTemp == nil && opts.HoldClimateRef == nil {
		return nil, ErrHoldTempRequired
	}
	if opts.HoldClimateRef == nil && (opts.CoolHoldTemp == nil || opts.HeatHoldTemp == nil) {
		return nil, ErrHoldTempRequired
	}
	if opts.CoolHoldTemp != nil && (*opts.CoolHoldTemp < MinCoolTemp || *opts.CoolHoldTemp > MaxCoolTemp) {
		return nil, fmt.Errorf("%w: cool hold %v", ErrTempOutOfRange, *opts.CoolHoldTemp)
	}
	if opts.HeatHoldTemp != nil && (*opts.HeatHoldTemp < MinHeatTemp || *opts.HeatHoldTemp > MaxHeatTemp) {
		return nil, fmt.Errorf("%w: heat hold %v", ErrTempOutOfRange, *opts.HeatHoldTemp)
	}
	if err := checkEventDates(opts.StartDateTime, opts.EndDateTime); err != nil {
		return nil, err
	}
	holdType := opts.HoldType
	if holdType == "" {
		holdType = HoldTypeIndefinite
	}
	if err := checkHoldType(holdType, opts.EndDateTime, opts.HoldHours); err != nil {
		return nil, err
	}

	params := map[string]any{"holdType": string(holdType)}
	if opts.CoolHoldTemp != nil {
		params["coolHoldTemp"] = tempX10(*opts.CoolHoldTemp)
	}
	if opts.HeatHoldTemp != nil {
		params["heatHoldTemp"] = tempX10(*opts.HeatHoldTemp)
	}
	if opts.HoldClimateRef != nil {
		params["holdClimateRef"] = *opts.HoldClimateRef
	}
	putEventDates(params, opts.StartDateTime, opts.EndDateTime)
	if opts.HoldHours != nil {
		params["holdHours"] = *opts.HoldHours
	}

	return c.UpdateThermostats(ctx, sel, nil, Function{Type: "setHold", Params: params})
}

// VacationOptions shape a CreateVacation call. Without a start/end pair the
// vacation begins immediately and lasts 14 days.
type VacationOptions struct {
	Name          string
	CoolHoldTemp  float64
	HeatHoldTemp  float64
	StartDateTime *time.Time
	EndDateTime   *time.Time
	FanMode       FanMode
	FanMinOnTime  int
}

// CreateVacation creates a vacation event on the selected thermostats.
func (c *Client) CreateVacation(ctx context.Context, sel *Selection, opts VacationOptions) (*UpdateThermostatResponse, error) {
	if opts.Name == "" {
		return nil, ErrEmptyVacationName
	}
	if opts.CoolHoldTemp < MinCoolTemp || opts.CoolHoldTemp > MaxCoolTemp {
		return nil, fmt.Errorf("%w: cool hold %v", ErrTempOutOfRange, opts.CoolHoldTemp)
	}
	if opts.HeatHoldTemp < MinHeatTemp || opts.HeatHoldTemp > MaxHeatTemp {
		return nil, fmt.Errorf("%w: heat hold %v", ErrTempOutOfRange, opts.HeatHoldTemp)
	}
	if err := checkEventDates(opts.StartDateTime, opts.EndDateTime); err != nil {
		return nil, err
	}
	if opts.FanMinOnTime < 0 || opts.FanMinOnTime > 60 {
		return nil, ErrFanMinOnTimeRange
	}
	fanMode := opts.FanMode
	if fanMode == "" {
		fanMode = FanModeAuto
	}

	params := map[string]any{
		"name":         opts.Name,
		"coolHoldTemp": tempX10(opts.CoolHoldTemp),
		"heatHoldTemp": tempX10(opts.HeatHoldTemp),
		"fan":          string(fanMode),
		"fanMinOnTime": fmt.Sprintf("%d", opts.FanMinOnTime),
	}
	putEventDates(params, opts.StartDateTime, opts.EndDateTime)

	return c.UpdateThermostats(ctx, sel, nil, Function{Type: "createVacation", Params: params})
}

// DeleteVacation removes a vacation event, including ones scheduled in the
// future. This is the only way to cancel a vacation.
func (c *Client) DeleteVacation(ctx context.Context, sel *Selection, name string) (*UpdateThermostatResponse, error) {
	if name == "" {
		return nil, ErrEmptyVacationName
	}
	return c.UpdateThermostats(ctx, sel, nil, Function{
		Type:   "deleteVacation",
		Params: map[string]any{"name": name},
	})
}

// ResumeProgram removes the top running event. With resumeAll it removes all
// events and returns the thermostat to its program.
func (c *Client) ResumeProgram(ctx context.Context, sel *Selection, resumeAll bool) (*UpdateThermostatResponse, error) {
	return c.UpdateThermostats(ctx, sel, nil, Function{
		Type:   "resumeProgram",
		Params: map[string]any{"resumeAll": resumeAll},
	})
}

// SendMessage shows an alert message on the selected thermostats. Text longer
// than 500 characters is truncated by the vendor.
func (c *Client) SendMessage(ctx context.Context, sel *Selection, text string) (*UpdateThermostatResponse, error) {
	if text == "" {
		return nil, ErrEmptyMessageText
	}
	return c.UpdateThermostats(ctx, sel, nil, Function{
		Type:   "sendMessage",
		Params: map[string]any{"text": text},
	})
}

// Acknowledge acknowledges an alert on a thermostat.
func (c *Client) Acknowledge(ctx context.Context, sel *Selection, thermostatIdentifier, ackRef string, ackType AckType, remindMeLater bool) (*UpdateThermostatResponse, error) {
	if ackRef == "" {
		return nil, ErrEmptyAckRef
	}
	return c.UpdateThermostats(ctx, sel, nil, Function{
		Type: "acknowledge",
		Params: map[string]any{
			"thermostatIdentifier": thermostatIdentifier,
			"ackRef":               ackRef,
			"ackType":              string(ackType),
			"remindMeLater":        remindMeLater,
		},
	})
}

// PlugOptions shape a ControlPlug call.
type PlugOptions struct {
	Name          string
	State         PlugState
	StartDateTime *time.Time
	EndDateTime   *time.Time
	HoldType      HoldType
	HoldHours     *int
}

// ControlPlug sets a hold on a smart plug. An event is created regardless of
// whether the plug is already in the requested state.
func (c *Client) ControlPlug(ctx context.Context, sel *Selection, opts PlugOptions) (*UpdateThermostatResponse, error) {
	if opts.Name == "" {
		return nil, ErrEmptyPlugName
	}
	if err := checkEventDates(opts.StartDateTime, opts.EndDateTime); err != nil {
		return nil, err
	}
	holdType := opts.HoldType
	if holdType == "" {
		holdType = HoldTypeIndefinite
	}
	if err := checkHoldType(holdType, opts.EndDateTime, opts.HoldHours); err != nil {
		return nil, err
	}

	params := map[string]any{
		"plugName":  opts.Name,
		"plugState": string(opts.State),
		"holdType":  string(holdType),
	}
	putEventDates(params, opts.StartDateTime, opts.EndDateTime)
	if opts.HoldHours != nil {
		params["holdHours"] = *opts.HoldHours
	}

	return c.UpdateThermostats(ctx, sel, nil, Function{Type: "controlPlug", Params: params})
}

// ResetPreferences sets all user configurable settings back to factory
// defaults, including the Settings and Program blocks. Installer settings and
// wifi details are untouched.
func (c *Client) ResetPreferences(ctx context.Context, sel *Selection) (*UpdateThermostatResponse, error) {
	return c.UpdateThermostats(ctx, sel, nil, Function{Type: "resetPreferences"})
}

// OccupiedOptions shape a SetOccupied call.
type OccupiedOptions struct {
	Occupied      bool
	StartDateTime *time.Time
	EndDateTime   *time.Time
	HoldType      HoldType
	HoldHours     *int
}

// SetOccupied switches an EMS thermostat between occupied and unoccupied.
// Smart thermostats reject this function.
func (c *Client) SetOccupied(ctx context.Context, sel *Selection, opts OccupiedOptions) (*UpdateThermostatResponse, error) {
	if err := checkEventDates(opts.StartDateTime, opts.EndDateTime); err != nil {
		return nil, err
	}
	holdType := opts.HoldType
	if holdType == "" {
		holdType = HoldTypeIndefinite
	}
	if err := checkHoldType(holdType, opts.EndDateTime, opts.HoldHours); err != nil {
		return nil, err
	}

	params := map[string]any{
		"occupied": opts.Occupied,
		"holdType": string(holdType),
	}
	putEventDates(params, opts.StartDateTime, opts.EndDateTime)
	if opts.HoldHours != nil {
		params["holdHours"] = *opts.HoldHours
	}

	return c.UpdateThermostats(ctx, sel, nil, Function{Type: "setOccupied", Params: params})
}

// UpdateSensor renames an ecobee3 remote sensor. Both sensors in the
// enclosure are renamed to stay consistent, matching the thermostat's own
// behavior. Names are limited to 32 characters.
func (c *Client) UpdateSensor(ctx context.Context, sel *Selection, name, deviceID, sensorID string) (*UpdateThermostatResponse, error) {
	if name == "" || len(name) > 32 {
		return nil, ErrEmptySensorName
	}
	return c.UpdateThermostats(ctx, sel, nil, Function{
		Type: "updateSensor",
		Params: map[string]any{
			"name":     name,
			"deviceId": deviceID,
			"sensorId": sensorID,
		},
	})
}
