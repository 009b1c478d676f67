package ecobee

// Event is a scheduled or ad hoc change of program: holds, vacations, demand
// response events, and the like. Which fields apply depends on Type.
type Event struct {
	Type                   *string
	Name                   *string
	Running                *bool
	StartDate              *string
	StartTime              *string
	EndDate                *string
	EndTime                *string
	IsOccupied             *bool
	IsCoolOff              *bool
	IsHeatOff              *bool
	CoolHoldTemp           *int
	HeatHoldTemp           *int
	Fan                    *string
	Vent                   *string
	VentilatorMinOnTime    *int
	IsOptional             *bool
	IsTemperatureRelative  *bool
	CoolRelativeTemp       *int
	HeatRelativeTemp       *int
	IsTemperatureAbsolute  *bool
	DutyCyclePercentage    *int
	FanMinOnTime           *int
	OccupiedSensorActive   *bool
	UnoccupiedSensorActive *bool
	DrRampUpTemp           *int
	DrRampUpTime           *int
	LinkRef                *string
	HoldClimateRef         *string
}

func init() {
	registerType("Event", []fieldDef{
		{name: "Type", wire: "type", typ: tString},
		{name: "Name", wire: "name", typ: tString},
		{name: "Running", wire: "running", typ: tBool},
		{name: "StartDate", wire: "startDate", typ: tString},
		{name: "StartTime", wire: "startTime", typ: tString},
		{name: "EndDate", wire: "endDate", typ: tString},
		{name: "EndTime", wire: "endTime", typ: tString},
		{name: "IsOccupied", wire: "isOccupied", typ: tBool},
		{name: "IsCoolOff", wire: "isCoolOff", typ: tBool},
		{name: "IsHeatOff", wire: "isHeatOff", typ: tBool},
		{name: "CoolHoldTemp", wire: "coolHoldTemp", typ: tInt},
		{name: "HeatHoldTemp", wire: "heatHoldTemp", typ: tInt},
		{name: "Fan", wire: "fan", typ: tString},
		{name: "Vent", wire: "vent", typ: tString},
		{name: "VentilatorMinOnTime", wire: "ventilatorMinOnTime", typ: tInt},
		{name: "IsOptional", wire: "isOptional", typ: tBool},
		{name: "IsTemperatureRelative", wire: "isTemperatureRelative", typ: tBool},
		{name: "CoolRelativeTemp", wire: "coolRelativeTemp", typ: tInt},
		{name: "HeatRelativeTemp", wire: "heatRelativeTemp", typ: tInt},
		{name: "IsTemperatureAbsolute", wire: "isTemperatureAbsolute", typ: tBool},
		{name: "DutyCyclePercentage", wire: "dutyCyclePercentage", typ: tInt},
		{name: "FanMinOnTime", wire: "fanMinOnTime", typ: tInt},
		{name: "OccupiedSensorActive", wire: "occupiedSensorActive", typ: tBool},
		{name: "UnoccupiedSensorActive", wire: "unoccupiedSensorActive", typ: tBool},
		{name: "DrRampUpTemp", wire: "drRampUpTemp", typ: tInt},
		{name: "DrRampUpTime", wire: "drRampUpTime", typ: tInt},
		{name: "LinkRef", wire: "linkRef", typ: tString},
		{name: "HoldClimateRef", wire: "holdClimateRef", typ: tString},
	}, func(fs fieldSet) Object {
		return &Event{
			Type:                   fs.str("Type"),
			Name:                   fs.str("Name"),
			Running:                fs.boolean("Running"),
			StartDate:              fs.str("StartDate"),
			StartTime:              fs.str("StartTime"),
			EndDate:                fs.str("EndDate"),
			EndTime:                fs.str("EndTime"),
			IsOccupied:             fs.boolean("IsOccupied"),
			IsCoolOff:              fs.boolean("IsCoolOff"),
			IsHeatOff:              fs.boolean("IsHeatOff"),
			CoolHoldTemp:           fs.integer("CoolHoldTemp"),
			HeatHoldTemp:           fs.integer("HeatHoldTemp"),
			Fan:                    fs.str("Fan"),
			Vent:                   fs.str("Vent"),
			VentilatorMinOnTime:    fs.integer("VentilatorMinOnTime"),
			IsOptional:             fs.boolean("IsOptional"),
			IsTemperatureRelative:  fs.boolean("IsTemperatureRelative"),
			CoolRelativeTemp:       fs.integer("CoolRelativeTemp"),
			HeatRelativeTemp:       fs.integer("HeatRelativeTemp"),
			IsTemperatureAbsolute:  fs.boolean("IsTemperatureAbsolute"),
			DutyCyclePercentage:    fs.integer("DutyCyclePercentage"),
			FanMinOnTime:           fs.integer("FanMinOnTime"),
			OccupiedSensorActive:   fs.boolean("OccupiedSensorActive"),
			UnoccupiedSensorActive: fs.boolean("UnoccupiedSensorActive"),
			DrRampUpTemp:           fs.integer("DrRampUpTemp"),
			DrRampUpTime:           fs.integer("DrRampUpTime"),
			LinkRef:                fs.str("LinkRef"),
			HoldClimateRef:         fs.str("HoldClimateRef"),
		}
	})
}

// TypeName implements Object.
func (e *Event) TypeName() string { return "Event" }

func (e *Event) encodeFields() fieldSet {
	fs := fieldSet{}
	fs.putString("Type", e.Type)
	fs.putString("Name", e.Name)
	fs.putBool("Running", e.Running)
	fs.putString("StartDate", e.StartDate)
	fs.putString("StartTime", e.StartTime)
	fs.putString("EndDate", e.EndDate)
	fs.putString("EndTime", e.EndTime)
	fs.putBool("IsOccupied", e.IsOccupied)
	fs.putBool("IsCoolOff", e.IsCoolOff)
	fs.putBool("IsHeatOff", e.IsHeatOff)
	fs.putInt("CoolHoldTemp", e.CoolHoldTemp)
	fs.putInt("HeatHoldTemp", e.HeatHoldTemp)
	fs.putString("Fan", e.Fan)
	fs.putString("Vent", e.Vent)
	fs.putInt("VentilatorMinOnTime", e.VentilatorMinOnTime)
	fs.putBool("IsOptional", e.IsOptional)
	fs.putBool("IsTemperatureRelative", e.IsTemperatureRelative)
	fs.putInt("CoolRelativeTemp", e.CoolRelativeTemp)
	fs.putInt("HeatRelativeTemp", e.HeatRelativeTemp)
	fs.putBool("IsTemperatureAbsolute", e.IsTemperatureAbsolute)
	fs.putInt("DutyCyclePercentage", e.DutyCyclePercentage)
	fs.putInt("FanMinOnTime", e.FanMinOnTime)
	fs.putBool("OccupiedSensorActive", e.OccupiedSensorActive)
	fs.putBool("UnoccupiedSensorActive", e.UnoccupiedSensorActive)
	fs.putInt("DrRampUpTemp", e.DrRampUpTemp)
	fs.putInt("DrRampUpTime", e.DrRampUpTime)
	fs.putString("LinkRef", e.LinkRef)
	fs.putString("HoldClimateRef", e.HoldClimateRef)
	return fs
}
