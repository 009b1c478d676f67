package ecobee

// Runtime is the thermostat's last reported state. Readings lag live state by
// up to 15 minutes; temperatures are degrees Fahrenheit multiplied by 10.
type Runtime struct {
	RuntimeRev         *string
	Connected          *bool
	FirstConnected     *string
	ConnectDateTime    *string
	DisconnectDateTime *string
	LastModified       *string
	LastStatusModified *string
	RuntimeDate        *string
	RuntimeInterval    *int
	ActualTemperature  *int
	ActualHumidity     *int
	RawTemperature     *int
	ShowIconMode       *int
	DesiredHeat        *int
	DesiredCool        *int
	DesiredHumidity    *int
	DesiredDehumidity  *int
	DesiredFanMode     *string
	DesiredHeatRange   []int
	DesiredCoolRange   []int
}

func init() {
	registerType("Runtime", []fieldDef{
		{name: "RuntimeRev", wire: "runtimeRev", typ: tString},
		{name: "Connected", wire: "connected", typ: tBool},
		{name: "FirstConnected", wire: "firstConnected", typ: tString},
		{name: "ConnectDateTime", wire: "connectDateTime", typ: tString},
		{name: "DisconnectDateTime", wire: "disconnectDateTime", typ: tString},
		{name: "LastModified", wire: "lastModified", typ: tString},
		{name: "LastStatusModified", wire: "lastStatusModified", typ: tString},
		{name: "RuntimeDate", wire: "runtimeDate", typ: tString},
		{name: "RuntimeInterval", wire: "runtimeInterval", typ: tInt},
		{name: "ActualTemperature", wire: "actualTemperature", typ: tInt},
		{name: "ActualHumidity", wire: "actualHumidity", typ: tInt},
		{name: "RawTemperature", wire: "rawTemperature", typ: tInt},
		{name: "ShowIconMode", wire: "showIconMode", typ: tInt},
		{name: "DesiredHeat", wire: "desiredHeat", typ: tInt},
		{name: "DesiredCool", wire: "desiredCool", typ: tInt},
		{name: "DesiredHumidity", wire: "desiredHumidity", typ: tInt},
		{name: "DesiredDehumidity", wire: "desiredDehumidity", typ: tInt},
		{name: "DesiredFanMode", wire: "desiredFanMode", typ: tString},
		{name: "DesiredHeatRange", wire: "desiredHeatRange", typ: tList(tInt)},
		{name: "DesiredCoolRange", wire: "desiredCoolRange", typ: tList(tInt)},
	}, func(fs fieldSet) Object {
		return &Runtime{
			RuntimeRev:         fs.str("RuntimeRev"),
			Connected:          fs.boolean("Connected"),
			FirstConnected:     fs.str("FirstConnected"),
			ConnectDateTime:    fs.str("ConnectDateTime"),
			DisconnectDateTime: fs.str("DisconnectDateTime"),
			LastModified:       fs.str("LastModified"),
			LastStatusModified: fs.str("LastStatusModified"),
			RuntimeDate:        fs.str("RuntimeDate"),
			RuntimeInterval:    fs.integer("RuntimeInterval"),
			ActualTemperature:  fs.integer("ActualTemperature"),
			ActualHumidity:     fs.integer("ActualHumidity"),
			RawTemperature:     fs.integer("RawTemperature"),
			ShowIconMode:       fs.integer("ShowIconMode"),
			DesiredHeat:        fs.integer("DesiredHeat"),
			DesiredCool:        fs.integer("DesiredCool"),
			DesiredHumidity:    fs.integer("DesiredHumidity"),
			DesiredDehumidity:  fs.integer("DesiredDehumidity"),
			DesiredFanMode:     fs.str("DesiredFanMode"),
			DesiredHeatRange:   fs.ints("DesiredHeatRange"),
			DesiredCoolRange:   fs.ints("DesiredCoolRange"),
		}
	})
}

// TypeName implements Object.
func (r *Runtime) TypeName() string { return "Runtime" }

func (r *Runtime) encodeFields() fieldSet {
	fs := fieldSet{}
	fs.putString("RuntimeRev", r.RuntimeRev)
	fs.putBool("Connected", r.Connected)
	fs.putString("FirstConnected", r.FirstConnected)
	fs.putString("ConnectDateTime", r.ConnectDateTime)
	fs.putString("DisconnectDateTime", r.DisconnectDateTime)
	fs.putString("LastModified", r.LastModified)
	fs.putString("LastStatusModified", r.LastStatusModified)
	fs.putString("RuntimeDate", r.RuntimeDate)
	fs.putInt("RuntimeInterval", r.RuntimeInterval)
	fs.putInt("ActualTemperature", r.ActualTemperature)
	fs.putInt("ActualHumidity", r.ActualHumidity)
	fs.putInt("RawTemperature", r.RawTemperature)
	fs.putInt("ShowIconMode", r.ShowIconMode)
	fs.putInt("DesiredHeat", r.DesiredHeat)
	fs.putInt("DesiredCool", r.DesiredCool)
	fs.putInt("DesiredHumidity", r.DesiredHumidity)
	fs.putInt("DesiredDehumidity", r.DesiredDehumidity)
	fs.putString("DesiredFanMode", r.DesiredFanMode)
	fs.putInts("DesiredHeatRange", r.DesiredHeatRange)
	fs.putInts("DesiredCoolRange", r.DesiredCoolRange)
	return fs
}

// ExtendedRuntime carries the last three 5-minute interval readings. Each
// slice holds one value per interval, oldest first.
type ExtendedRuntime struct {
	LastReadingTimestamp     *string
	RuntimeDate              *string
	RuntimeInterval          *int
	ActualTemperature        []int
	ActualHumidity           []int
	DesiredHeat              []int
	DesiredCool              []int
	DesiredHumidity          []int
	DesiredDehumidity        []int
	DmOffset                 []int
	HvacMode                 []string
	HeatPump1                []int
	HeatPump2                []int
	AuxHeat1                 []int
	AuxHeat2                 []int
	AuxHeat3                 []int
	Cool1                    []int
	Cool2                    []int
	Fan                      []int
	Humidifier               []int
	Dehumidifier             []int
	Economizer               []int
	Ventilator               []int
	CurrentElectricityBill   *int
	ProjectedElectricityBill *int
}

func init() {
	registerType("ExtendedRuntime", []fieldDef{
		{name: "LastReadingTimestamp", wire: "lastReadingTimestamp", typ: tString},
		{name: "RuntimeDate", wire: "runtimeDate", typ: tString},
		{name: "RuntimeInterval", wire: "runtimeInterval", typ: tInt},
		{name: "ActualTemperature", wire: "actualTemperature", typ: tList(tInt)},
		{name: "ActualHumidity", wire: "actualHumidity", typ: tList(tInt)},
		{name: "DesiredHeat", wire: "desiredHeat", typ: tList(tInt)},
		{name: "DesiredCool", wire: "desiredCool", typ: tList(tInt)},
		{name: "DesiredHumidity", wire: "desiredHumidity", typ: tList(tInt)},
		{name: "DesiredDehumidity", wire: "desiredDehumidity", typ: tList(tInt)},
		{name: "DmOffset", wire: "dmOffset", typ: tList(tInt)},
		{name: "HvacMode", wire: "hvacMode", typ: tList(tString)},
		{name: "HeatPump1", wire: "heatPump1", typ: tList(tInt)},
		{name: "HeatPump2", wire: "heatPump2", typ: tList(tInt)},
		{name: "AuxHeat1", wire: "auxHeat1", typ: tList(tInt)},
		{name: "AuxHeat2", wire: "auxHeat2", typ: tList(tInt)},
		{name: "AuxHeat3", wire: "auxHeat3", typ: tList(tInt)},
		{name: "Cool1", wire: "cool1", typ: tList(tInt)},
		{name: "Cool2", wire: "cool2", typ: tList(tInt)},
		{name: "Fan", wire: "fan", typ: tList(tInt)},
		{name: "Humidifier", wire: "humidifier", typ: tList(tInt)},
		{name: "Dehumidifier", wire: "dehumidifier", typ: tList(tInt)},
		{name: "Economizer", wire: "economizer", typ: tList(tInt)},
		{name: "Ventilator", wire: "ventilator", typ: tList(tInt)},
		{name: "CurrentElectricityBill", wire: "currentElectricityBill", typ: tInt},
		{name: "ProjectedElectricityBill", wire: "projectedElectricityBill", typ: tInt},
	}, func(fs fieldSet) Object {
		return &ExtendedRuntime{
			LastReadingTimestamp:     fs.str("LastReadingTimestamp"),
			RuntimeDate:              fs.str("RuntimeDate"),
			RuntimeInterval:          fs.integer("RuntimeInterval"),
			ActualTemperature:        fs.ints("ActualTemperature"),
			ActualHumidity:           fs.ints("ActualHumidity"),
			DesiredHeat:              fs.ints("DesiredHeat"),
			DesiredCool:              fs.ints("DesiredCool"),
			DesiredHumidity:          fs.ints("DesiredHumidity"),
			DesiredDehumidity:        fs.ints("DesiredDehumidity"),
			DmOffset:                 fs.ints("DmOffset"),
			HvacMode:                 fs.strings("HvacMode"),
			HeatPump1:                fs.ints("HeatPump1"),
			HeatPump2:                fs.ints("HeatPump2"),
			AuxHeat1:                 fs.ints("AuxHeat1"),
			AuxHeat2:                 fs.ints("AuxHeat2"),
			AuxHeat3:                 fs.ints("AuxHeat3"),
			Cool1:                    fs.ints("Cool1"),
			Cool2:                    fs.ints("Cool2"),
			Fan:                      fs.ints("Fan"),
			Humidifier:               fs.ints("Humidifier"),
			Dehumidifier:             fs.ints("Dehumidifier"),
			Economizer:               fs.ints("Economizer"),
			Ventilator:               fs.ints("Ventilator"),
			CurrentElectricityBill:   fs.integer("CurrentElectricityBill"),
			ProjectedElectricityBill: fs.integer("ProjectedElectricityBill"),
		}
	})
}

// TypeName implements Object.
func (r *ExtendedRuntime) TypeName() string { return "ExtendedRuntime" }

func (r *ExtendedRuntime) encodeFields() fieldSet {
	fs := fieldSet{}
	fs.putString("LastReadingTimestamp", r.LastReadingTimestamp)
	fs.putString("RuntimeDate", r.RuntimeDate)
	fs.putInt("RuntimeInterval", r.RuntimeInterval)
	fs.putInts("ActualTemperature", r.ActualTemperature)
	fs.putInts("ActualHumidity", r.ActualHumidity)
	fs.putInts("DesiredHeat", r.DesiredHeat)
	fs.putInts("DesiredCool", r.DesiredCool)
	fs.putInts("DesiredHumidity", r.DesiredHumidity)
	fs.putInts("DesiredDehumidity", r.DesiredDehumidity)
	fs.putInts("DmOffset", r.DmOffset)
	fs.putStrings("HvacMode", r.HvacMode)
	fs.putInts("HeatPump1", r.HeatPump1)
	fs.putInts("HeatPump2", r.HeatPump2)
	fs.putInts("AuxHeat1", r.AuxHeat1)
	fs.putInts("AuxHeat2", r.AuxHeat2)
	fs.putInts("AuxHeat3", r.AuxHeat3)
	fs.putInts("Cool1", r.Cool1)
	fs.putInts("Cool2", r.Cool2)
	fs.putInts("Fan", r.Fan)
	fs.putInts("Humidifier", r.Humidifier)
	fs.putInts("Dehumidifier", r.Dehumidifier)
	fs.putInts("Economizer", r.Economizer)
	fs.putInts("Ventilator", r.Ventilator)
	fs.putInt("CurrentElectricityBill", r.CurrentElectricityBill)
	fs.putInt("ProjectedElectricityBill", r.ProjectedElectricityBill)
	return fs
}
