package ecobee

// Program is the thermostat's schedule: a 7x48 grid of climate references
// (one per half hour, Monday first) plus the climates the grid refers to.
type Program struct {
	Schedule          [][]string
	Climates          []*Climate
	CurrentClimateRef *string
}

func init() {
	registerType("Program", []fieldDef{
		{name: "Schedule", wire: "schedule", typ: tList(tList(tString))},
		{name: "Climates", wire: "climates", typ: tList(tObject("Climate"))},
		{name: "CurrentClimateRef", wire: "currentClimateRef", typ: tString},
	}, func(fs fieldSet) Object {
		return &Program{
			Schedule:          scheduleRows(fs, "Schedule"),
			Climates:          objects[Climate](fs, "Climates"),
			CurrentClimateRef: fs.str("CurrentClimateRef"),
		}
	})
}

// TypeName implements Object.
func (p *Program) TypeName() string { return "Program" }

func (p *Program) encodeFields() fieldSet {
	fs := fieldSet{}
	if p.Schedule != nil {
		rows := make([]any, 0, len(p.Schedule))
		for _, row := range p.Schedule {
			rows = append(rows, row)
		}
		fs["Schedule"] = rows
	}
	putObjects(fs, "Climates", p.Climates)
	fs.putString("CurrentClimateRef", p.CurrentClimateRef)
	return fs
}

// scheduleRows unpacks a decoded list-of-lists-of-strings field.
func scheduleRows(fs fieldSet, name string) [][]string {
	v, ok := fs[name]
	if !ok {
		return nil
	}
	decoded := v.([]any)
	out := make([][]string, 0, len(decoded))
	for _, row := range decoded {
		out = append(out, row.([]string))
	}
	return out
}

// Climate is one named comfort setting referenced from the schedule grid.
type Climate struct {
	Name                *string
	ClimateRef          *string
	IsOccupied          *bool
	IsOptimized         *bool
	CoolFan             *string
	HeatFan             *string
	Vent                *string
	VentilatorMinOnTime *int
	Owner               *string
	Type                *string
	Colour              *int
	CoolTemp            *int
	HeatTemp            *int
	Sensors             []*RemoteSensor
}

func init() {
	registerType("Climate", []fieldDef{
		{name: "Name", wire: "name", typ: tString},
		{name: "ClimateRef", wire: "climateRef", typ: tString},
		{name: "IsOccupied", wire: "isOccupied", typ: tBool},
		{name: "IsOptimized", wire: "isOptimized", typ: tBool},
		{name: "CoolFan", wire: "coolFan", typ: tString},
		{name: "HeatFan", wire: "heatFan", typ: tString},
		{name: "Vent", wire: "vent", typ: tString},
		{name: "VentilatorMinOnTime", wire: "ventilatorMinOnTime", typ: tInt},
		{name: "Owner", wire: "owner", typ: tString},
		{name: "Type", wire: "type", typ: tString},
		{name: "Colour", wire: "colour", typ: tInt},
		{name: "CoolTemp", wire: "coolTemp", typ: tInt},
		{name: "HeatTemp", wire: "heatTemp", typ: tInt},
		{name: "Sensors", wire: "sensors", typ: tList(tObject("RemoteSensor"))},
	}, func(fs fieldSet) Object {
		return &Climate{
			Name:                fs.str("Name"),
			ClimateRef:          fs.str("ClimateRef"),
			IsOccupied:          fs.boolean("IsOccupied"),
			IsOptimized:         fs.boolean("IsOptimized"),
			CoolFan:             fs.str("CoolFan"),
			HeatFan:             fs.str("HeatFan"),
			Vent:                fs.str("Vent"),
			VentilatorMinOnTime: fs.integer("VentilatorMinOnTime"),
			Owner:               fs.str("Owner"),
			Type:                fs.str("Type"),
			Colour:              fs.integer("Colour"),
			CoolTemp:            fs.integer("CoolTemp"),
			HeatTemp:            fs.integer("HeatTemp"),
			Sensors:             objects[RemoteSensor](fs, "Sensors"),
		}
	})
}

// TypeName implements Object.
func (c *Climate) TypeName() string { return "Climate" }

func (c *Climate) encodeFields() fieldSet {
	fs := fieldSet{}
	fs.putString("Name", c.Name)
	fs.putString("ClimateRef", c.ClimateRef)
	fs.putBool("IsOccupied", c.IsOccupied)
	fs.putBool("IsOptimized", c.IsOptimized)
	fs.putString("CoolFan", c.CoolFan)
	fs.putString("HeatFan", c.HeatFan)
	fs.putString("Vent", c.Vent)
	fs.putInt("VentilatorMinOnTime", c.VentilatorMinOnTime)
	fs.putString("Owner", c.Owner)
	fs.putString("Type", c.Type)
	fs.putInt("Colour", c.Colour)
	fs.putInt("CoolTemp", c.CoolTemp)
	fs.putInt("HeatTemp", c.HeatTemp)
	putObjects(fs, "Sensors", c.Sensors)
	return fs
}
