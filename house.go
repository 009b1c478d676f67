package ecobee

// Location is the geographic and address information for a thermostat.
type Location struct {
	TimeZoneOffsetMinutes *int
	TimeZone              *string
	IsDaylightSaving      *bool
	StreetAddress         *string
	City                  *string
	ProvinceState         *string
	Country               *string
	PostalCode            *string
	PhoneNumber           *string
	MapCoordinates        *string
}

func init() {
	registerType("Location", []fieldDef{
		{name: "TimeZoneOffsetMinutes", wire: "timeZoneOffsetMinutes", typ: tInt},
		{name: "TimeZone", wire: "timeZone", typ: tString},
		{name: "IsDaylightSaving", wire: "isDaylightSaving", typ: tBool},
		{name: "StreetAddress", wire: "streetAddress", typ: tString},
		{name: "City", wire: "city", typ: tString},
		{name: "ProvinceState", wire: "provinceState", typ: tString},
		{name: "Country", wire: "country", typ: tString},
		{name: "PostalCode", wire: "postalCode", typ: tString},
		{name: "PhoneNumber", wire: "phoneNumber", typ: tString},
		{name: "MapCoordinates", wire: "mapCoordinates", typ: tString},
	}, func(fs fieldSet) Object {
		return &Location{
			TimeZoneOffsetMinutes: fs.integer("TimeZoneOffsetMinutes"),
			TimeZone:              fs.str("TimeZone"),
			IsDaylightSaving:      fs.boolean("IsDaylightSaving"),
			StreetAddress:         fs.str("StreetAddress"),
			City:                  fs.str("City"),
			ProvinceState:         fs.str("ProvinceState"),
			Country:               fs.str("Country"),
			PostalCode:            fs.str("PostalCode"),
			PhoneNumber:           fs.str("PhoneNumber"),
			MapCoordinates:        fs.str("MapCoordinates"),
		}
	})
}

// TypeName implements Object.
func (l *Location) TypeName() string { return "Location" }

func (l *Location) encodeFields() fieldSet {
	fs := fieldSet{}
	fs.putInt("TimeZoneOffsetMinutes", l.TimeZoneOffsetMinutes)
	fs.putString("TimeZone", l.TimeZone)
	fs.putBool("IsDaylightSaving", l.IsDaylightSaving)
	fs.putString("StreetAddress", l.StreetAddress)
	fs.putString("City", l.City)
	fs.putString("ProvinceState", l.ProvinceState)
	fs.putString("Country", l.Country)
	fs.putString("PostalCode", l.PostalCode)
	fs.putString("PhoneNumber", l.PhoneNumber)
	fs.putString("MapCoordinates", l.MapCoordinates)
	return fs
}

// HouseDetails describes the building the thermostat conditions.
type HouseDetails struct {
	Style             *string
	Size              *int
	NumberOfFloors    *int
	NumberOfRooms     *int
	NumberOfOccupants *int
	Age               *int
	WindowEfficiency  *int
}

func init() {
	registerType("HouseDetails", []fieldDef{
		{name: "Style", wire: "style", typ: tString},
		{name: "Size", wire: "size", typ: tInt},
		{name: "NumberOfFloors", wire: "numberOfFloors", typ: tInt},
		{name: "NumberOfRooms", wire: "numberOfRooms", typ: tInt},
		{name: "NumberOfOccupants", wire: "numberOfOccupants", typ: tInt},
		{name: "Age", wire: "age", typ: tInt},
		{name: "WindowEfficiency", wire: "windowEfficiency", typ: tInt},
	}, func(fs fieldSet) Object {
		return &HouseDetails{
			Style:             fs.str("Style"),
			Size:              fs.integer("Size"),
			NumberOfFloors:    fs.integer("NumberOfFloors"),
			NumberOfRooms:     fs.integer("NumberOfRooms"),
			NumberOfOccupants: fs.integer("NumberOfOccupants"),
			Age:               fs.integer("Age"),
			WindowEfficiency:  fs.integer("WindowEfficiency"),
		}
	})
}

// TypeName implements Object.
func (h *HouseDetails) TypeName() string { return "HouseDetails" }

func (h *HouseDetails) encodeFields() fieldSet {
	fs := fieldSet{}
	fs.putString("Style", h.Style)
	fs.putInt("Size", h.Size)
	fs.putInt("NumberOfFloors", h.NumberOfFloors)
	fs.putInt("NumberOfRooms", h.NumberOfRooms)
	fs.putInt("NumberOfOccupants", h.NumberOfOccupants)
	fs.putInt("Age", h.Age)
	fs.putInt("WindowEfficiency", h.WindowEfficiency)
	return fs
}
