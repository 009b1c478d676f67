package ecobee

// Scope is the OAuth scope requested during PIN authorization.
type Scope string

const (
	ScopeSmartRead  Scope = "smartRead"
	ScopeSmartWrite Scope = "smartWrite"
	ScopeEMS        Scope = "ems"
)

// SelectionType determines how a Selection matches thermostats.
type SelectionType string

const (
	SelectionTypeRegistered    SelectionType = "registered"
	SelectionTypeThermostats   SelectionType = "thermostats"
	SelectionTypeManagementSet SelectionType = "managementSet"
)

// HoldType determines how long a hold or vacation event runs.
type HoldType string

const (
	HoldTypeDateTime       HoldType = "dateTime"
	HoldTypeNextTransition HoldType = "nextTransition"
	HoldTypeIndefinite     HoldType = "indefinite"
	HoldTypeHoldHours      HoldType = "holdHours"
)

// FanMode controls the fan during a hold or vacation.
type FanMode string

const (
	FanModeAuto FanMode = "auto"
	FanModeOn   FanMode = "on"
)

// AckType is the acknowledgement applied to an alert.
type AckType string

const (
	AckTypeAccept         AckType = "accept"
	AckTypeDecline        AckType = "decline"
	AckTypeDefer          AckType = "defer"
	AckTypeUnacknowledged AckType = "unacknowledged"
)

// PlugState is the state applied to a smart plug.
type PlugState string

const (
	PlugStateOn     PlugState = "on"
	PlugStateOff    PlugState = "off"
	PlugStateResume PlugState = "resume"
)

// HvacMode is the thermostat's operating mode.
type HvacMode string

const (
	HvacModeAuto        HvacMode = "auto"
	HvacModeAuxHeatOnly HvacMode = "auxHeatOnly"
	HvacModeCool        HvacMode = "cool"
	HvacModeHeat        HvacMode = "heat"
	HvacModeOff         HvacMode = "off"
)

// EventType classifies scheduled and ad hoc thermostat events.
type EventType string

const (
	EventTypeAutoAway        EventType = "autoAway"
	EventTypeAutoHome        EventType = "autoHome"
	EventTypeDemandResponse  EventType = "demandResponse"
	EventTypeHold            EventType = "hold"
	EventTypeQuickSave       EventType = "quickSave"
	EventTypeSensor          EventType = "sensor"
	EventTypeSwitchOccupancy EventType = "switchOccupancy"
	EventTypeToday           EventType = "today"
	EventTypeVacation        EventType = "vacation"
)

// VentilatorMode controls the ventilator during a hold or vacation.
type VentilatorMode string

const (
	VentilatorModeAuto      VentilatorMode = "auto"
	VentilatorModeMinOnTime VentilatorMode = "minontime"
	VentilatorModeOn        VentilatorMode = "on"
	VentilatorModeOff       VentilatorMode = "off"
)

// RemoteSensorType classifies a remote sensor.
type RemoteSensorType string

const (
	RemoteSensorTypeControl    RemoteSensorType = "control_sensor"
	RemoteSensorTypeEcobee3    RemoteSensorType = "ecobee3_remote_sensor"
	RemoteSensorTypeMonitor    RemoteSensorType = "monitor_sensor"
	RemoteSensorTypeThermostat RemoteSensorType = "thermostat"
)

// RemoteSensorCapabilityType names what a remote sensor capability measures.
type RemoteSensorCapabilityType string

const (
	CapabilityADC         RemoteSensorCapabilityType = "adc"
	CapabilityCO2         RemoteSensorCapabilityType = "co2"
	CapabilityDryContact  RemoteSensorCapabilityType = "dryContact"
	CapabilityHumidity    RemoteSensorCapabilityType = "humidity"
	CapabilityOccupancy   RemoteSensorCapabilityType = "occupancy"
	CapabilityTemperature RemoteSensorCapabilityType = "temperature"
	CapabilityUnknown     RemoteSensorCapabilityType = "unknown"
)
