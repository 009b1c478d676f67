package ecobee

// RemoteSensor is a sensor paired to the thermostat, including the
// thermostat's own internal sensor set.
type RemoteSensor struct {
	ID         *string
	Name       *string
	Type       *string
	Code       *string
	InUse      *bool
	Capability []*RemoteSensorCapability
}

func init() {
	registerType("RemoteSensor", []fieldDef{
		{name: "ID", wire: "id", typ: tString},
		{name: "Name", wire: "name", typ: tString},
		{name: "Type", wire: "type", typ: tString},
		{name: "Code", wire: "code", typ: tString},
		{name: "InUse", wire: "inUse", typ: tBool},
		{name: "Capability", wire: "capability", typ: tList(tObject("RemoteSensorCapability"))},
	}, func(fs fieldSet) Object {
		return &RemoteSensor{
			ID:         fs.str("ID"),
			Name:       fs.str("Name"),
			Type:       fs.str("Type"),
			Code:       fs.str("Code"),
			InUse:      fs.boolean("InUse"),
			Capability: objects[RemoteSensorCapability](fs, "Capability"),
		}
	})
}

// TypeName implements Object.
func (s *RemoteSensor) TypeName() string { return "RemoteSensor" }

func (s *RemoteSensor) encodeFields() fieldSet {
	fs := fieldSet{}
	fs.putString("ID", s.ID)
	fs.putString("Name", s.Name)
	fs.putString("Type", s.Type)
	fs.putString("Code", s.Code)
	fs.putBool("InUse", s.InUse)
	putObjects(fs, "Capability", s.Capability)
	return fs
}

// RemoteSensorCapability is one reading a remote sensor reports. Value is
// always a string on the wire; temperature values are degrees Fahrenheit
// multiplied by 10, occupancy values are "true"/"false".
type RemoteSensorCapability struct {
	ID    *string
	Type  *string
	Value *string
}

func init() {
	registerType("RemoteSensorCapability", []fieldDef{
		{name: "ID", wire: "id", typ: tString},
		{name: "Type", wire: "type", typ: tString},
		{name: "Value", wire: "value", typ: tString},
	}, func(fs fieldSet) Object {
		return &RemoteSensorCapability{
			ID:    fs.str("ID"),
			Type:  fs.str("Type"),
			Value: fs.str("Value"),
		}
	})
}

// TypeName implements Object.
func (c *RemoteSensorCapability) TypeName() string { return "RemoteSensorCapability" }

func (c *RemoteSensorCapability) encodeFields() fieldSet {
	fs := fieldSet{}
	fs.putString("ID", c.ID)
	fs.putString("Type", c.Type)
	fs.putString("Value", c.Value)
	return fs
}
