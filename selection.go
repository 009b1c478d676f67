package ecobee

// Selection tells the API which thermostats to match and which blocks of
// thermostat data to include in the response. Include flags left nil are
// omitted from the request, which the vendor treats as false.
type Selection struct {
	SelectionType  *string
	SelectionMatch *string

	IncludeRuntime              *bool
	IncludeExtendedRuntime      *bool
	IncludeElectricity          *bool
	IncludeSettings             *bool
	IncludeLocation             *bool
	IncludeProgram              *bool
	IncludeEvents               *bool
	IncludeDevice               *bool
	IncludeTechnician           *bool
	IncludeUtility              *bool
	IncludeManagement           *bool
	IncludeAlerts               *bool
	IncludeWeather              *bool
	IncludeHouseDetails         *bool
	IncludeOemCfg               *bool
	IncludeEquipmentStatus      *bool
	IncludeNotificationSettings *bool
	IncludePrivacy              *bool
	IncludeVersion              *bool
	IncludeSecuritySettings     *bool
	IncludeSensors              *bool
	IncludeAudio                *bool
}

// NewSelection builds a Selection for the given match type and CSV match
// expression; include flags are set through the struct fields.
func NewSelection(selectionType SelectionType, selectionMatch string) *Selection {
	return &Selection{
		SelectionType:  String(string(selectionType)),
		SelectionMatch: String(selectionMatch),
	}
}

func init() {
	registerType("Selection", []fieldDef{
		{name: "SelectionType", wire: "selectionType", typ: tString},
		{name: "SelectionMatch", wire: "selectionMatch", typ: tString},
		{name: "IncludeRuntime", wire: "includeRuntime", typ: tBool},
		{name: "IncludeExtendedRuntime", wire: "includeExtendedRuntime", typ: tBool},
		{name: "IncludeElectricity", wire: "includeElectricity", typ: tBool},
		{name: "IncludeSettings", wire: "includeSettings", typ: tBool},
		{name: "IncludeLocation", wire: "includeLocation", typ: tBool},
		{name: "IncludeProgram", wire: "includeProgram", typ: tBool},
		{name: "IncludeEvents", wire: "includeEvents", typ: tBool},
		{name: "IncludeDevice", wire: "includeDevice", typ: tBool},
		{name: "IncludeTechnician", wire: "includeTechnician", typ: tBool},
		{name: "IncludeUtility", wire: "includeUtility", typ: tBool},
		{name: "IncludeManagement", wire: "includeManagement", typ: tBool},
		{name: "IncludeAlerts", wire: "includeAlerts", typ: tBool},
		{name: "IncludeWeather", wire: "includeWeather", typ: tBool},
		{name: "IncludeHouseDetails", wire: "includeHouseDetails", typ: tBool},
		{name: "IncludeOemCfg", wire: "includeOemCfg", typ: tBool},
		{name: "IncludeEquipmentStatus", wire: "includeEquipmentStatus", typ: tBool},
		{name: "IncludeNotificationSettings", wire: "includeNotificationSettings", typ: tBool},
		{name: "IncludePrivacy", wire: "includePrivacy", typ: tBool},
		{name: "IncludeVersion", wire: "includeVersion", typ: tBool},
		{name: "IncludeSecuritySettings", wire: "includeSecuritySettings", typ: tBool},
		{name: "IncludeSensors", wire: "includeSensors", typ: tBool},
		{name: "IncludeAudio", wire: "includeAudio", typ: tBool},
	}, func(fs fieldSet) Object {
		return &Selection{
			SelectionType:               fs.str("SelectionType"),
			SelectionMatch:              fs.str("SelectionMatch"),
			IncludeRuntime:              fs.boolean("IncludeRuntime"),
			IncludeExtendedRuntime:      fs.boolean("IncludeExtendedRuntime"),
			IncludeElectricity:          fs.boolean("IncludeElectricity"),
			IncludeSettings:             fs.boolean("IncludeSettings"),
			IncludeLocation:             fs.boolean("IncludeLocation"),
			IncludeProgram:              fs.boolean("IncludeProgram"),
			IncludeEvents:               fs.boolean("IncludeEvents"),
			IncludeDevice:               fs.boolean("IncludeDevice"),
			IncludeTechnician:           fs.boolean("IncludeTechnician"),
			IncludeUtility:              fs.boolean("IncludeUtility"),
			IncludeManagement:           fs.boolean("IncludeManagement"),
			IncludeAlerts:               fs.boolean("IncludeAlerts"),
			IncludeWeather:              fs.boolean("IncludeWeather"),
			IncludeHouseDetails:         fs.boolean("IncludeHouseDetails"),
			IncludeOemCfg:               fs.boolean("IncludeOemCfg"),
			IncludeEquipmentStatus:      fs.boolean("IncludeEquipmentStatus"),
			IncludeNotificationSettings: fs.boolean("IncludeNotificationSettings"),
			IncludePrivacy:              fs.boolean("IncludePrivacy"),
			IncludeVersion:              fs.boolean("IncludeVersion"),
			IncludeSecuritySettings:     fs.boolean("IncludeSecuritySettings"),
			IncludeSensors:              fs.boolean("IncludeSensors"),
			IncludeAudio:                fs.boolean("IncludeAudio"),
		}
	})
}

// TypeName implements Object.
func (s *Selection) TypeName() string { return "Selection" }

func (s *Selection) encodeFields() fieldSet {
	fs := fieldSet{}
	fs.putString("SelectionType", s.SelectionType)
	fs.putString("SelectionMatch", s.SelectionMatch)
	fs.putBool("IncludeRuntime", s.IncludeRuntime)
	fs.putBool("IncludeExtendedRuntime", s.IncludeExtendedRuntime)
	fs.putBool("IncludeElectricity", s.IncludeElectricity)
	fs.putBool("IncludeSettings", s.IncludeSettings)
	fs.putBool("IncludeLocation", s.IncludeLocation)
	fs.putBool("IncludeProgram", s.IncludeProgram)
	fs.putBool("IncludeEvents", s.IncludeEvents)
	fs.putBool("IncludeDevice", s.IncludeDevice)
	fs.putBool("IncludeTechnician", s.IncludeTechnician)
	fs.putBool("IncludeUtility", s.IncludeUtility)
	fs.putBool("IncludeManagement", s.IncludeManagement)
	fs.putBool("IncludeAlerts", s.IncludeAlerts)
	fs.putBool("IncludeWeather", s.IncludeWeather)
	fs.putBool("IncludeHouseDetails", s.IncludeHouseDetails)
	fs.putBool("IncludeOemCfg", s.IncludeOemCfg)
	fs.putBool("IncludeEquipmentStatus", s.IncludeEquipmentStatus)
	fs.putBool("IncludeNotificationSettings", s.IncludeNotificationSettings)
	fs.putBool("IncludePrivacy", s.IncludePrivacy)
	fs.putBool("IncludeVersion", s.IncludeVersion)
	fs.putBool("IncludeSecuritySettings", s.IncludeSecuritySettings)
	fs.putBool("IncludeSensors", s.IncludeSensors)
	fs.putBool("IncludeAudio", s.IncludeAudio)
	return fs
}
