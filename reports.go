package ecobee

import (
	"context"
	"strings"
	"time"
)

// maxReportThermostats is the vendor's per-request thermostat cap for reports.
const maxReportThermostats = 25

// maxReportDays is the vendor's per-request report window cap.
const maxReportDays = 31

// RuntimeReport is the 5-minute interval data for one thermostat. Each row is
// a CSV string ordered date, time, then the requested columns.
type RuntimeReport struct {
	ThermostatIdentifier *string
	RowCount             *int
	RowList              []string
}

func init() {
	registerType("RuntimeReport", []fieldDef{
		{name: "ThermostatIdentifier", wire: "thermostatIdentifier", typ: tString},
		{name: "RowCount", wire: "rowCount", typ: tInt},
		{name: "RowList", wire: "rowList", typ: tList(tString)},
	}, func(fs fieldSet) Object {
		return &RuntimeReport{
			ThermostatIdentifier: fs.str("ThermostatIdentifier"),
			RowCount:             fs.integer("RowCount"),
			RowList:              fs.strings("RowList"),
		}
	})
}

// TypeName implements Object.
func (r *RuntimeReport) TypeName() string { return "RuntimeReport" }

func (r *RuntimeReport) encodeFields() fieldSet {
	fs := fieldSet{}
	fs.putString("ThermostatIdentifier", r.ThermostatIdentifier)
	fs.putInt("RowCount", r.RowCount)
	fs.putStrings("RowList", r.RowList)
	return fs
}

// RuntimeSensorReport is the per-sensor interval data for one thermostat.
type RuntimeSensorReport struct {
	ThermostatIdentifier *string
	Sensors              []*RuntimeSensorMetadata
	Columns              []string
	Data                 []string
}

func init() {
	registerType("RuntimeSensorReport", []fieldDef{
		{name: "ThermostatIdentifier", wire: "thermostatIdentifier", typ: tString},
		{name: "Sensors", wire: "sensors", typ: tList(tObject("RuntimeSensorMetadata"))},
		{name: "Columns", wire: "columns", typ: tList(tString)},
		{name: "Data", wire: "data", typ: tList(tString)},
	}, func(fs fieldSet) Object {
		return &RuntimeSensorReport{
			ThermostatIdentifier: fs.str("ThermostatIdentifier"),
			Sensors:              objects[RuntimeSensorMetadata](fs, "Sensors"),
			Columns:              fs.strings("Columns"),
			Data:                 fs.strings("Data"),
		}
	})
}

// TypeName implements Object.
func (r *RuntimeSensorReport) TypeName() string { return "RuntimeSensorReport" }

func (r *RuntimeSensorReport) encodeFields() fieldSet {
	fs := fieldSet{}
	fs.putString("ThermostatIdentifier", r.ThermostatIdentifier)
	putObjects(fs, "Sensors", r.Sensors)
	fs.putStrings("Columns", r.Columns)
	fs.putStrings("Data", r.Data)
	return fs
}

// RuntimeSensorMetadata identifies one sensor in a RuntimeSensorReport.
type RuntimeSensorMetadata struct {
	SensorID    *string
	SensorName  *string
	SensorType  *string
	SensorUsage *string
}

func init() {
	registerType("RuntimeSensorMetadata", []fieldDef{
		{name: "SensorID", wire: "sensorId", typ: tString},
		{name: "SensorName", wire: "sensorName", typ: tString},
		{name: "SensorType", wire: "sensorType", typ: tString},
		{name: "SensorUsage", wire: "sensorUsage", typ: tString},
	}, func(fs fieldSet) Object {
		return &RuntimeSensorMetadata{
			SensorID:    fs.str("SensorID"),
			SensorName:  fs.str("SensorName"),
			SensorType:  fs.str("SensorType"),
			SensorUsage: fs.str("SensorUsage"),
		}
	})
}

// TypeName implements Object.
func (m *RuntimeSensorMetadata) TypeName() string { return "RuntimeSensorMetadata" }

func (m *RuntimeSensorMetadata) encodeFields() fieldSet {
	fs := fieldSet{}
	fs.putString("SensorID", m.SensorID)
	fs.putString("SensorName", m.SensorName)
	fs.putString("SensorType", m.SensorType)
	fs.putString("SensorUsage", m.SensorUsage)
	return fs
}

// MeterReport is the meter reading data for one thermostat.
type MeterReport struct {
	ThermostatIdentifier *string
	MeterList            []*MeterReportData
}

func init() {
	registerType("MeterReport", []fieldDef{
		{name: "ThermostatIdentifier", wire: "thermostatIdentifier", typ: tString},
		{name: "MeterList", wire: "meterList", typ: tList(tObject("MeterReportData"))},
	}, func(fs fieldSet) Object {
		return &MeterReport{
			ThermostatIdentifier: fs.str("ThermostatIdentifier"),
			MeterList:            objects[MeterReportData](fs, "MeterList"),
		}
	})
}

// TypeName implements Object.
func (r *MeterReport) TypeName() string { return "MeterReport" }

func (r *MeterReport) encodeFields() fieldSet {
	fs := fieldSet{}
	fs.putString("ThermostatIdentifier", r.ThermostatIdentifier)
	putObjects(fs, "MeterList", r.MeterList)
	return fs
}

// MeterReportData is one meter's interval rows within a MeterReport.
type MeterReportData struct {
	MeterType *string
	Columns   *string
	Data      []string
}

func init() {
	registerType("MeterReportData", []fieldDef{
		{name: "MeterType", wire: "meterType", typ: tString},
		{name: "Columns", wire: "columns", typ: tString},
		{name: "Data", wire: "data", typ: tList(tString)},
	}, func(fs fieldSet) Object {
		return &MeterReportData{
			MeterType: fs.str("MeterType"),
			Columns:   fs.str("Columns"),
			Data:      fs.strings("Data"),
		}
	})
}

// TypeName implements Object.
func (d *MeterReportData) TypeName() string { return "MeterReportData" }

func (d *MeterReportData) encodeFields() fieldSet {
	fs := fieldSet{}
	fs.putString("MeterType", d.MeterType)
	fs.putString("Columns", d.Columns)
	fs.putStrings("Data", d.Data)
	return fs
}

// reportInterval converts a time of day to the vendor's 5-minute interval
// index (0-287).
func reportInterval(t time.Time) int {
	return t.Hour()*12 + t.Minute()/5
}

// checkReportSelection validates the selection of a report request and
// returns the number of selected thermostats.
func checkReportSelection(sel *Selection) (int, error) {
	if sel == nil {
		return 0, ErrNilSelection
	}
	if sel.SelectionType == nil || *sel.SelectionType != string(SelectionTypeThermostats) {
		return 0, ErrReportSelectionType
	}
	count := 0
	if sel.SelectionMatch != nil && *sel.SelectionMatch != "" {
		count = len(strings.Split(*sel.SelectionMatch, ","))
	}
	if count > maxReportThermostats {
		return 0, ErrTooManyThermostats
	}
	return count, nil
}

// checkReportWindow validates the report date range.
func checkReportWindow(start, end time.Time) error {
	if start.Before(beforeTimeBegan) || start.After(endOfTime) ||
		end.Before(beforeTimeBegan) || end.After(endOfTime) {
		return ErrReportDateRange
	}
	// Day granularity: a window of 31 days plus a few hours is still 31 days.
	if !start.Before(end) || int(end.Sub(start)/(24*time.Hour)) > maxReportDays {
		return ErrReportWindow
	}
	return nil
}

// RuntimeReport retrieves interval runtime data for up to 25 thermostats over
// a window of at most 31 days. The selection must use the thermostats
// selection type with a CSV of identifiers; columns is a CSV of runtime
// column names. A full window for a full selection is roughly 223,200 rows.
func (c *Client) RuntimeReport(ctx context.Context, sel *Selection, start, end time.Time, columns string, includeSensors bool) (*RuntimeReportResponse, error) {
	if _, err := checkReportSelection(sel); err != nil {
		return nil, err
	}
	if err := checkReportWindow(start, end); err != nil {
		return nil, err
	}
	if columns == "" {
		return nil, ErrEmptyReportColumns
	}

	selFields, err := encodeFields(sel)
	if err != nil {
		return nil, err
	}

	start, end = start.UTC(), end.UTC()
	payload := map[string]any{
		"selection":      selFields,
		"startDate":      formatDate(start),
		"startInterval":  reportInterval(start),
		"endDate":        formatDate(end),
		"endInterval":    reportInterval(end),
		"columns":        columns,
		"includeSensors": includeSensors,
	}

	body, err := c.get(ctx, runtimeReportPath, payload)
	if err != nil {
		return nil, err
	}

	return decodeResponse[*RuntimeReportResponse](body, "RuntimeReportResponse")
}

// MeterReport retrieves historical meter readings for up to 25 thermostats
// over a window of at most 31 days. meters is a CSV of meter types with one
// entry per selected thermostat; the only supported meter type is "energy".
func (c *Client) MeterReport(ctx context.Context, sel *Selection, start, end time.Time, meters string) (*MeterReportResponse, error) {
	count, err := checkReportSelection(sel)
	if err != nil {
		return nil, err
	}
	if err := checkReportWindow(start, end); err != nil {
		return nil, err
	}

	if meters == "" {
		meters = "energy"
	}
	meterList := strings.Split(meters, ",")
	for _, meter := range meterList {
		if meter != "energy" {
			return nil, ErrInvalidMeter
		}
	}
	if len(meterList) != count {
		return nil, ErrInvalidMeter
	}

	selFields, err := encodeFields(sel)
	if err != nil {
		return nil, err
	}

	start, end = start.UTC(), end.UTC()
	payload := map[string]any{
		"selection":     selFields,
		"startDate":     formatDate(start),
		"startInterval": reportInterval(start),
		"endDate":       formatDate(end),
		"endInterval":   reportInterval(end),
		"meters":        meters,
	}

	body, err := c.get(ctx, meterReportPath, payload)
	if err != nil {
		return nil, err
	}

	return decodeResponse[*MeterReportResponse](body, "MeterReportResponse")
}
