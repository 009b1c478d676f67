package ecobee

// Thermostat is the top-level thermostat object. Reads return only the blocks
// requested through the Selection include flags; writes send only the fields
// set on the object, so a partial Thermostat works as an update template.
type Thermostat struct {
	Identifier      *string
	Name            *string
	ThermostatRev   *string
	IsRegistered    *bool
	ModelNumber     *string
	Brand           *string
	Features        *string
	LastModified    *string
	ThermostatTime  *string
	UTCTime         *string
	EquipmentStatus *string
	Settings        *Settings
	Runtime         *Runtime
	ExtendedRuntime *ExtendedRuntime
	Location        *Location
	Program         *Program
	Events          []*Event
	Devices         []*Device
	RemoteSensors   []*RemoteSensor
	Weather         *Weather
	HouseDetails    *HouseDetails
	Alerts          []*Alert
	Version         *Version
}

func init() {
	registerType("Thermostat", []fieldDef{
		{name: "Identifier", wire: "identifier", typ: tString},
		{name: "Name", wire: "name", typ: tString},
		{name: "ThermostatRev", wire: "thermostatRev", typ: tString},
		{name: "IsRegistered", wire: "isRegistered", typ: tBool},
		{name: "ModelNumber", wire: "modelNumber", typ: tString},
		{name: "Brand", wire: "brand", typ: tString},
		{name: "Features", wire: "features", typ: tString},
		{name: "LastModified", wire: "lastModified", typ: tString},
		{name: "ThermostatTime", wire: "thermostatTime", typ: tString},
		{name: "UTCTime", wire: "utcTime", typ: tString},
		{name: "EquipmentStatus", wire: "equipmentStatus", typ: tString},
		{name: "Settings", wire: "settings", typ: tObject("Settings")},
		{name: "Runtime", wire: "runtime", typ: tObject("Runtime")},
		{name: "ExtendedRuntime", wire: "extendedRuntime", typ: tObject("ExtendedRuntime")},
		{name: "Location", wire: "location", typ: tObject("Location")},
		{name: "Program", wire: "program", typ: tObject("Program")},
		{name: "Events", wire: "events", typ: tList(tObject("Event"))},
		{name: "Devices", wire: "devices", typ: tList(tObject("Device"))},
		{name: "RemoteSensors", wire: "remoteSensors", typ: tList(tObject("RemoteSensor"))},
		{name: "Weather", wire: "weather", typ: tObject("Weather")},
		{name: "HouseDetails", wire: "houseDetails", typ: tObject("HouseDetails")},
		{name: "Alerts", wire: "alerts", typ: tList(tObject("Alert"))},
		{name: "Version", wire: "version", typ: tObject("Version")},
	}, func(fs fieldSet) Object {
		return &Thermostat{
			Identifier:      fs.str("Identifier"),
			Name:            fs.str("Name"),
			ThermostatRev:   fs.str("ThermostatRev"),
			IsRegistered:    fs.boolean("IsRegistered"),
			ModelNumber:     fs.str("ModelNumber"),
			Brand:           fs.str("Brand"),
			Features:        fs.str("Features"),
			LastModified:    fs.str("LastModified"),
			ThermostatTime:  fs.str("ThermostatTime"),
			UTCTime:         fs.str("UTCTime"),
			EquipmentStatus: fs.str("EquipmentStatus"),
			Settings:        object[Settings](fs, "Settings"),
			Runtime:         object[Runtime](fs, "Runtime"),
			ExtendedRuntime: object[ExtendedRuntime](fs, "ExtendedRuntime"),
			Location:        object[Location](fs, "Location"),
			Program:         object[Program](fs, "Program"),
			Events:          objects[Event](fs, "Events"),
			Devices:         objects[Device](fs, "Devices"),
			RemoteSensors:   objects[RemoteSensor](fs, "RemoteSensors"),
			Weather:         object[Weather](fs, "Weather"),
			HouseDetails:    object[HouseDetails](fs, "HouseDetails"),
			Alerts:          objects[Alert](fs, "Alerts"),
			Version:         object[Version](fs, "Version"),
		}
	})
}

// TypeName implements Object.
func (t *Thermostat) TypeName() string { return "Thermostat" }

func (t *Thermostat) encodeFields() fieldSet {
	fs := fieldSet{}
	fs.putString("Identifier", t.Identifier)
	fs.putString("Name", t.Name)
	fs.putString("ThermostatRev", t.ThermostatRev)
	fs.putBool("IsRegistered", t.IsRegistered)
	fs.putString("ModelNumber", t.ModelNumber)
	fs.putString("Brand", t.Brand)
	fs.putString("Features", t.Features)
	fs.putString("LastModified", t.LastModified)
	fs.putString("ThermostatTime", t.ThermostatTime)
	fs.putString("UTCTime", t.UTCTime)
	fs.putString("EquipmentStatus", t.EquipmentStatus)
	putObject(fs, "Settings", t.Settings)
	putObject(fs, "Runtime", t.Runtime)
	putObject(fs, "ExtendedRuntime", t.ExtendedRuntime)
	putObject(fs, "Location", t.Location)
	putObject(fs, "Program", t.Program)
	putObjects(fs, "Events", t.Events)
	putObjects(fs, "Devices", t.Devices)
	putObjects(fs, "RemoteSensors", t.RemoteSensors)
	putObject(fs, "Weather", t.Weather)
	putObject(fs, "HouseDetails", t.HouseDetails)
	putObjects(fs, "Alerts", t.Alerts)
	putObject(fs, "Version", t.Version)
	return fs
}

// Version carries the thermostat firmware version.
type Version struct {
	ThermostatFirmwareVersion *string
}

func init() {
	registerType("Version", []fieldDef{
		{name: "ThermostatFirmwareVersion", wire: "thermostatFirmwareVersion", typ: tString},
	}, func(fs fieldSet) Object {
		return &Version{
			ThermostatFirmwareVersion: fs.str("ThermostatFirmwareVersion"),
		}
	})
}

// TypeName implements Object.
func (v *Version) TypeName() string { return "Version" }

func (v *Version) encodeFields() fieldSet {
	fs := fieldSet{}
	fs.putString("ThermostatFirmwareVersion", v.ThermostatFirmwareVersion)
	return fs
}
