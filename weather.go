package ecobee

// Weather is the forecast block for the thermostat's location.
type Weather struct {
	Timestamp      *string
	WeatherStation *string
	Forecasts      []*WeatherForecast
}

func init() {
	registerType("Weather", []fieldDef{
		{name: "Timestamp", wire: "timestamp", typ: tString},
		{name: "WeatherStation", wire: "weatherStation", typ: tString},
		{name: "Forecasts", wire: "forecasts", typ: tList(tObject("WeatherForecast"))},
	}, func(fs fieldSet) Object {
		return &Weather{
			Timestamp:      fs.str("Timestamp"),
			WeatherStation: fs.str("WeatherStation"),
			Forecasts:      objects[WeatherForecast](fs, "Forecasts"),
		}
	})
}

// TypeName implements Object.
func (w *Weather) TypeName() string { return "Weather" }

func (w *Weather) encodeFields() fieldSet {
	fs := fieldSet{}
	fs.putString("Timestamp", w.Timestamp)
	fs.putString("WeatherStation", w.WeatherStation)
	putObjects(fs, "Forecasts", w.Forecasts)
	return fs
}

// WeatherForecast is one forecast entry. The first entry is current weather;
// temperatures are degrees Fahrenheit multiplied by 10.
type WeatherForecast struct {
	WeatherSymbol    *int
	DateTime         *string
	Condition        *string
	Temperature      *int
	Pressure         *int
	RelativeHumidity *int
	Dewpoint         *int
	Visibility       *int
	WindSpeed        *int
	WindGust         *int
	WindDirection    *string
	WindBearing      *int
	Pop              *int
	TempHigh         *int
	TempLow          *int
	Sky              *int
}

func init() {
	registerType("WeatherForecast", []fieldDef{
		{name: "WeatherSymbol", wire: "weatherSymbol", typ: tInt},
		{name: "DateTime", wire: "dateTime", typ: tString},
		{name: "Condition", wire: "condition", typ: tString},
		{name: "Temperature", wire: "temperature", typ: tInt},
		{name: "Pressure", wire: "pressure", typ: tInt},
		{name: "RelativeHumidity", wire: "relativeHumidity", typ: tInt},
		{name: "Dewpoint", wire: "dewpoint", typ: tInt},
		{name: "Visibility", wire: "visibility", typ: tInt},
		{name: "WindSpeed", wire: "windSpeed", typ: tInt},
		{name: "WindGust", wire: "windGust", typ: tInt},
		{name: "WindDirection", wire: "windDirection", typ: tString},
		{name: "WindBearing", wire: "windBearing", typ: tInt},
		{name: "Pop", wire: "pop", typ: tInt},
		{name: "TempHigh", wire: "tempHigh", typ: tInt},
		{name: "TempLow", wire: "tempLow", typ: tInt},
		{name: "Sky", wire: "sky", typ: tInt},
	}, func(fs fieldSet) Object {
		return &WeatherForecast{
			WeatherSymbol:    fs.integer("WeatherSymbol"),
			DateTime:         fs.str("DateTime"),
			Condition:        fs.str("Condition"),
			Temperature:      fs.integer("Temperature"),
			Pressure:         fs.integer("Pressure"),
			RelativeHumidity: fs.integer("RelativeHumidity"),
			Dewpoint:         fs.integer("Dewpoint"),
			Visibility:       fs.integer("Visibility"),
			WindSpeed:        fs.integer("WindSpeed"),
			WindGust:         fs.integer("WindGust"),
			WindDirection:    fs.str("WindDirection"),
			WindBearing:      fs.integer("WindBearing"),
			Pop:              fs.integer("Pop"),
			TempHigh:         fs.integer("TempHigh"),
			TempLow:          fs.integer("TempLow"),
			Sky:              fs.integer("Sky"),
		}
	})
}

// TypeName implements Object.
func (f *WeatherForecast) TypeName() string { return "WeatherForecast" }

func (f *WeatherForecast) encodeFields() fieldSet {
	fs := fieldSet{}
	fs.putInt("WeatherSymbol", f.WeatherSymbol)
	fs.putString("DateTime", f.DateTime)
	fs.putString("Condition", f.Condition)
	fs.putInt("Temperature", f.Temperature)
	fs.putInt("Pressure", f.Pressure)
	fs.putInt("RelativeHumidity", f.RelativeHumidity)
	fs.putInt("Dewpoint", f.Dewpoint)
	fs.putInt("Visibility", f.Visibility)
	fs.putInt("WindSpeed", f.WindSpeed)
	fs.putInt("WindGust", f.WindGust)
	fs.putString("WindDirection", f.WindDirection)
	fs.putInt("WindBearing", f.WindBearing)
	fs.putInt("Pop", f.Pop)
	fs.putInt("TempHigh", f.TempHigh)
	fs.putInt("TempLow", f.TempLow)
	fs.putInt("Sky", f.Sky)
	return fs
}
