package ecobee

// Settings is the thermostat configuration block. All temperatures are in
// degrees Fahrenheit multiplied by 10, matching the wire representation.
type Settings struct {
	HvacMode                *string
	LastServiceDate         *string
	ServiceRemindMe         *bool
	MonthsBetweenService    *int
	RemindMeDate            *string
	Vent                    *string
	VentilatorMinOnTime     *int
	ServiceRemindTechnician *bool
	HeatStages              *int
	CoolStages              *int
	HeatCoolMinDelta        *int
	HeatMinTemp             *int
	HeatMaxTemp             *int
	CoolMinTemp             *int
	CoolMaxTemp             *int
	HeatRangeHigh           *int
	HeatRangeLow            *int
	CoolRangeHigh           *int
	CoolRangeLow            *int
	FanMinOnTime            *int
	HumidifierMode          *string
	Humidity                *string
	DehumidifierMode        *string
	DehumidifierLevel       *int
	UseCelsius              *bool
	UseTimeFormat12         *bool
	Locale                  *string
	HasHumidifier           *bool
	HasDehumidifier         *bool
	HasElectric             *bool
	HasHeatPump             *bool
	HasForcedAir            *bool
	HasBoiler               *bool
	HasErv                  *bool
	HasHrv                  *bool
	CondensationAvoid       *bool
	HoldAction              *string
	TempCorrection          *int
	QuickSaveSetBack        *bool
	BacklightOnIntensity    *int
	BacklightSleepIntensity *int
	BacklightOffTime        *int
	DisableAlertsOnIdt      *bool
}

func init() {
	registerType("Settings", []fieldDef{
		{name: "HvacMode", wire: "hvacMode", typ: tString},
		{name: "LastServiceDate", wire: "lastServiceDate", typ: tString},
		{name: "ServiceRemindMe", wire: "serviceRemindMe", typ: tBool},
		{name: "MonthsBetweenService", wire: "monthsBetweenService", typ: tInt},
		{name: "RemindMeDate", wire: "remindMeDate", typ: tString},
		{name: "Vent", wire: "vent", typ: tString},
		{name: "VentilatorMinOnTime", wire: "ventilatorMinOnTime", typ: tInt},
		{name: "ServiceRemindTechnician", wire: "serviceRemindTechnician", typ: tBool},
		{name: "HeatStages", wire: "heatStages", typ: tInt},
		{name: "CoolStages", wire: "coolStages", typ: tInt},
		{name: "HeatCoolMinDelta", wire: "heatCoolMinDelta", typ: tInt},
		{name: "HeatMinTemp", wire: "heatMinTemp", typ: tInt},
		{name: "HeatMaxTemp", wire: "heatMaxTemp", typ: tInt},
		{name: "CoolMinTemp", wire: "coolMinTemp", typ: tInt},
		{name: "CoolMaxTemp", wire: "coolMaxTemp", typ: tInt},
		{name: "HeatRangeHigh", wire: "heatRangeHigh", typ: tInt},
		{name: "HeatRangeLow", wire: "heatRangeLow", typ: tInt},
		{name: "CoolRangeHigh", wire: "coolRangeHigh", typ: tInt},
		{name: "CoolRangeLow", wire: "coolRangeLow", typ: tInt},
		{name: "FanMinOnTime", wire: "fanMinOnTime", typ: tInt},
		{name: "HumidifierMode", wire: "humidifierMode", typ: tString},
		{name: "Humidity", wire: "humidity", typ: tString},
		{name: "DehumidifierMode", wire: "dehumidifierMode", typ: tString},
		{name: "DehumidifierLevel", wire: "dehumidifierLevel", typ: tInt},
		{name: "UseCelsius", wire: "useCelsius", typ: tBool},
		{name: "UseTimeFormat12", wire: "useTimeFormat12", typ: tBool},
		{name: "Locale", wire: "locale", typ: tString},
		{name: "HasHumidifier", wire: "hasHumidifier", typ: tBool},
		{name: "HasDehumidifier", wire: "hasDehumidifier", typ: tBool},
		{name: "HasElectric", wire: "hasElectric", typ: tBool},
		{name: "HasHeatPump", wire: "hasHeatPump", typ: tBool},
		{name: "HasForcedAir", wire: "hasForcedAir", typ: tBool},
		{name: "HasBoiler", wire: "hasBoiler", typ: tBool},
		{name: "HasErv", wire: "hasErv", typ: tBool},
		{name: "HasHrv", wire: "hasHrv", typ: tBool},
		{name: "CondensationAvoid", wire: "condensationAvoid", typ: tBool},
		{name: "HoldAction", wire: "holdAction", typ: tString},
		{name: "TempCorrection", wire: "tempCorrection", typ: tInt},
		{name: "QuickSaveSetBack", wire: "quickSaveSetBack", typ: tBool},
		{name: "BacklightOnIntensity", wire: "backlightOnIntensity", typ: tInt},
		{name: "BacklightSleepIntensity", wire: "backlightSleepIntensity", typ: tInt},
		{name: "BacklightOffTime", wire: "backlightOffTime", typ: tInt},
		{name: "DisableAlertsOnIdt", wire: "disableAlertsOnIdt", typ: tBool},
	}, func(fs fieldSet) Object {
		return &Settings{
			HvacMode:                fs.str("HvacMode"),
			LastServiceDate:         fs.str("LastServiceDate"),
			ServiceRemindMe:         fs.boolean("ServiceRemindMe"),
			MonthsBetweenService:    fs.integer("MonthsBetweenService"),
			RemindMeDate:            fs.str("RemindMeDate"),
			Vent:                    fs.str("Vent"),
			VentilatorMinOnTime:     fs.integer("VentilatorMinOnTime"),
			ServiceRemindTechnician: fs.boolean("ServiceRemindTechnician"),
			HeatStages:              fs.integer("HeatStages"),
			CoolStages:              fs.integer("CoolStages"),
			HeatCoolMinDelta:        fs.integer("HeatCoolMinDelta"),
			HeatMinTemp:             fs.integer("HeatMinTemp"),
			HeatMaxTemp:             fs.integer("HeatMaxTemp"),
			CoolMinTemp:             fs.integer("CoolMinTemp"),
			CoolMaxTemp:             fs.integer("CoolMaxTemp"),
			HeatRangeHigh:           fs.integer("HeatRangeHigh"),
			HeatRangeLow:            fs.integer("HeatRangeLow"),
			CoolRangeHigh:           fs.integer("CoolRangeHigh"),
			CoolRangeLow:            fs.integer("CoolRangeLow"),
			FanMinOnTime:            fs.integer("FanMinOnTime"),
			HumidifierMode:          fs.str("HumidifierMode"),
			Humidity:                fs.str("Humidity"),
			DehumidifierMode:        fs.str("DehumidifierMode"),
			DehumidifierLevel:       fs.integer("DehumidifierLevel"),
			UseCelsius:              fs.boolean("UseCelsius"),
			UseTimeFormat12:         fs.boolean("UseTimeFormat12"),
			Locale:                  fs.str("Locale"),
			HasHumidifier:           fs.boolean("HasHumidifier"),
			HasDehumidifier:         fs.boolean("HasDehumidifier"),
			HasElectric:             fs.boolean("HasElectric"),
			HasHeatPump:             fs.boolean("HasHeatPump"),
			HasForcedAir:            fs.boolean("HasForcedAir"),
			HasBoiler:               fs.boolean("HasBoiler"),
			HasErv:                  fs.boolean("HasErv"),
			HasHrv:                  fs.boolean("HasHrv"),
			CondensationAvoid:       fs.boolean("CondensationAvoid"),
			HoldAction:              fs.str("HoldAction"),
			TempCorrection:          fs.integer("TempCorrection"),
			QuickSaveSetBack:        fs.boolean("QuickSaveSetBack"),
			BacklightOnIntensity:    fs.integer("BacklightOnIntensity"),
			BacklightSleepIntensity: fs.integer("BacklightSleepIntensity"),
			BacklightOffTime:        fs.integer("BacklightOffTime"),
			DisableAlertsOnIdt:      fs.boolean("DisableAlertsOnIdt"),
		}
	})
}

// TypeName implements Object.
func (s *Settings) TypeName() string { return "Settings" }

func (s *Settings) encodeFields() fieldSet {
	fs := fieldSet{}
	fs.putString("HvacMode", s.HvacMode)
	fs.putString("LastServiceDate", s.LastServiceDate)
	fs.putBool("ServiceRemindMe", s.ServiceRemindMe)
	fs.putInt("MonthsBetweenService", s.MonthsBetweenService)
	fs.putString("RemindMeDate", s.RemindMeDate)
	fs.putString("Vent", s.Vent)
	fs.putInt("VentilatorMinOnTime", s.VentilatorMinOnTime)
	fs.putBool("ServiceRemindTechnician", s.ServiceRemindTechnician)
	fs.putInt("HeatStages", s.HeatStages)
	fs.putInt("CoolStages", s.CoolStages)
	fs.putInt("HeatCoolMinDelta", s.HeatCoolMinDelta)
	fs.putInt("HeatMinTemp", s.HeatMinTemp)
	fs.putInt("HeatMaxTemp", s.HeatMaxTemp)
	fs.putInt("CoolMinTemp", s.CoolMinTemp)
	fs.putInt("CoolMaxTemp", s.CoolMaxTemp)
	fs.putInt("HeatRangeHigh", s.HeatRangeHigh)
	fs.putInt("HeatRangeLow", s.HeatRangeLow)
	fs.putInt("CoolRangeHigh", s.CoolRangeHigh)
	fs.putInt("CoolRangeLow", s.CoolRangeLow)
	fs.putInt("FanMinOnTime", s.FanMinOnTime)
	fs.putString("HumidifierMode", s.HumidifierMode)
	fs.putString("Humidity", s.Humidity)
	fs.putString("DehumidifierMode", s.DehumidifierMode)
	fs.putInt("DehumidifierLevel", s.DehumidifierLevel)
	fs.putBool("UseCelsius", s.UseCelsius)
	fs.putBool("UseTimeFormat12", s.UseTimeFormat12)
	fs.putString("Locale", s.Locale)
	fs.putBool("HasHumidifier", s.HasHumidifier)
	fs.putBool("HasDehumidifier", s.HasDehumidifier)
	fs.putBool("HasElectric", s.HasElectric)
	fs.putBool("HasHeatPump", s.HasHeatPump)
	fs.putBool("HasForcedAir", s.HasForcedAir)
	fs.putBool("HasBoiler", s.HasBoiler)
	fs.putBool("HasErv", s.HasErv)
	fs.putBool("HasHrv", s.HasHrv)
	fs.putBool("CondensationAvoid", s.CondensationAvoid)
	fs.putString("HoldAction", s.HoldAction)
	fs.putInt("TempCorrection", s.TempCorrection)
	fs.putBool("QuickSaveSetBack", s.QuickSaveSetBack)
	fs.putInt("BacklightOnIntensity", s.BacklightOnIntensity)
	fs.putInt("BacklightSleepIntensity", s.BacklightSleepIntensity)
	fs.putInt("BacklightOffTime", s.BacklightOffTime)
	fs.putBool("DisableAlertsOnIdt", s.DisableAlertsOnIdt)
	return fs
}
