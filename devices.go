package ecobee

// Device is an HVAC component wired to the thermostat.
type Device struct {
	DeviceID *int
	Name     *string
	Sensors  []*Sensor
	Outputs  []*Output
}

func init() {
	registerType("Device", []fieldDef{
		{name: "DeviceID", wire: "deviceId", typ: tInt},
		{name: "Name", wire: "name", typ: tString},
		{name: "Sensors", wire: "sensors", typ: tList(tObject("Sensor"))},
		{name: "Outputs", wire: "outputs", typ: tList(tObject("Output"))},
	}, func(fs fieldSet) Object {
		return &Device{
			DeviceID: fs.integer("DeviceID"),
			Name:     fs.str("Name"),
			Sensors:  objects[Sensor](fs, "Sensors"),
			Outputs:  objects[Output](fs, "Outputs"),
		}
	})
}

// TypeName implements Object.
func (d *Device) TypeName() string { return "Device" }

func (d *Device) encodeFields() fieldSet {
	fs := fieldSet{}
	fs.putInt("DeviceID", d.DeviceID)
	fs.putString("Name", d.Name)
	putObjects(fs, "Sensors", d.Sensors)
	putObjects(fs, "Outputs", d.Outputs)
	return fs
}

// Sensor is a wired sensor attached to a Device.
type Sensor struct {
	Name           *string
	Manufacturer   *string
	Model          *string
	Zone           *int
	SensorID       *int
	Type           *string
	Usage          *string
	NumberOfBits   *int
	Bconstant      *int
	ThermistorSize *int
	TempCorrection *int
	Gain           *int
	MaxVoltage     *int
	Multiplier     *int
}

func init() {
	registerType("Sensor", []fieldDef{
		{name: "Name", wire: "name", typ: tString},
		{name: "Manufacturer", wire: "manufacturer", typ: tString},
		{name: "Model", wire: "model", typ: tString},
		{name: "Zone", wire: "zone", typ: tInt},
		{name: "SensorID", wire: "sensorId", typ: tInt},
		{name: "Type", wire: "type", typ: tString},
		{name: "Usage", wire: "usage", typ: tString},
		{name: "NumberOfBits", wire: "numberOfBits", typ: tInt},
		{name: "Bconstant", wire: "bconstant", typ: tInt},
		{name: "ThermistorSize", wire: "thermistorSize", typ: tInt},
		{name: "TempCorrection", wire: "tempCorrection", typ: tInt},
		{name: "Gain", wire: "gain", typ: tInt},
		{name: "MaxVoltage", wire: "maxVoltage", typ: tInt},
		{name: "Multiplier", wire: "multiplier", typ: tInt},
	}, func(fs fieldSet) Object {
		return &Sensor{
			Name:           fs.str("Name"),
			Manufacturer:   fs.str("Manufacturer"),
			Model:          fs.str("Model"),
			Zone:           fs.integer("Zone"),
			SensorID:       fs.integer("SensorID"),
			Type:           fs.str("Type"),
			Usage:          fs.str("Usage"),
			NumberOfBits:   fs.integer("NumberOfBits"),
			Bconstant:      fs.integer("Bconstant"),
			ThermistorSize: fs.integer("ThermistorSize"),
			TempCorrection: fs.integer("TempCorrection"),
			Gain:           fs.integer("Gain"),
			MaxVoltage:     fs.integer("MaxVoltage"),
			Multiplier:     fs.integer("Multiplier"),
		}
	})
}

// TypeName implements Object.
func (s *Sensor) TypeName() string { return "Sensor" }

func (s *Sensor) encodeFields() fieldSet {
	fs := fieldSet{}
	fs.putString("Name", s.Name)
	fs.putString("Manufacturer", s.Manufacturer)
	fs.putString("Model", s.Model)
	fs.putInt("Zone", s.Zone)
	fs.putInt("SensorID", s.SensorID)
	fs.putString("Type", s.Type)
	fs.putString("Usage", s.Usage)
	fs.putInt("NumberOfBits", s.NumberOfBits)
	fs.putInt("Bconstant", s.Bconstant)
	fs.putInt("ThermistorSize", s.ThermistorSize)
	fs.putInt("TempCorrection", s.TempCorrection)
	fs.putInt("Gain", s.Gain)
	fs.putInt("MaxVoltage", s.MaxVoltage)
	fs.putInt("Multiplier", s.Multiplier)
	return fs
}

// Output is a relay or output wired to a Device.
type Output struct {
	Name             *string
	Zone             *int
	OutputID         *int
	Type             *string
	SendUpdate       *bool
	ActiveClosed     *bool
	ActivationTime   *int
	DeactivationTime *int
}

func init() {
	registerType("Output", []fieldDef{
		{name: "Name", wire: "name", typ: tString},
		{name: "Zone", wire: "zone", typ: tInt},
		{name: "OutputID", wire: "outputId", typ: tInt},
		{name: "Type", wire: "type", typ: tString},
		{name: "SendUpdate", wire: "sendUpdate", typ: tBool},
		{name: "ActiveClosed", wire: "activeClosed", typ: tBool},
		{name: "ActivationTime", wire: "activationTime", typ: tInt},
		{name: "DeactivationTime", wire: "deactivationTime", typ: tInt},
	}, func(fs fieldSet) Object {
		return &Output{
			Name:             fs.str("Name"),
			Zone:             fs.integer("Zone"),
			OutputID:         fs.integer("OutputID"),
			Type:             fs.str("Type"),
			SendUpdate:       fs.boolean("SendUpdate"),
			ActiveClosed:     fs.boolean("ActiveClosed"),
			ActivationTime:   fs.integer("ActivationTime"),
			DeactivationTime: fs.integer("DeactivationTime"),
		}
	})
}

// TypeName implements Object.
func (o *Output) TypeName() string { return "Output" }

func (o *Output) encodeFields() fieldSet {
	fs := fieldSet{}
	fs.putString("Name", o.Name)
	fs.putInt("Zone", o.Zone)
	fs.putInt("OutputID", o.OutputID)
	fs.putString("Type", o.Type)
	fs.putBool("SendUpdate", o.SendUpdate)
	fs.putBool("ActiveClosed", o.ActiveClosed)
	fs.putInt("ActivationTime", o.ActivationTime)
	fs.putInt("DeactivationTime", o.DeactivationTime)
	return fs
}
