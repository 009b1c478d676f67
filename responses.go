package ecobee

// AuthorizeResponse is the result of starting the PIN authorization flow.
// ExpiresIn is the number of minutes until the PIN expires; Interval is the
// minimum number of seconds between token polling attempts.
type AuthorizeResponse struct {
	EcobeePin *string
	Code      *string
	Scope     *string
	ExpiresIn *int
	Interval  *int
}

func init() {
	registerType("AuthorizeResponse", []fieldDef{
		{name: "EcobeePin", wire: "ecobeePin", typ: tString},
		{name: "Code", wire: "code", typ: tString},
		{name: "Scope", wire: "scope", typ: tString},
		{name: "ExpiresIn", wire: "expires_in", typ: tInt},
		{name: "Interval", wire: "interval", typ: tInt},
	}, func(fs fieldSet) Object {
		return &AuthorizeResponse{
			EcobeePin: fs.str("EcobeePin"),
			Code:      fs.str("Code"),
			Scope:     fs.str("Scope"),
			ExpiresIn: fs.integer("ExpiresIn"),
			Interval:  fs.integer("Interval"),
		}
	})
}

// TypeName implements Object.
func (r *AuthorizeResponse) TypeName() string { return "AuthorizeResponse" }

func (r *AuthorizeResponse) encodeFields() fieldSet {
	fs := fieldSet{}
	fs.putString("EcobeePin", r.EcobeePin)
	fs.putString("Code", r.Code)
	fs.putString("Scope", r.Scope)
	fs.putInt("ExpiresIn", r.ExpiresIn)
	fs.putInt("Interval", r.Interval)
	return fs
}

// TokensResponse is the wire payload of the token endpoint. ExpiresIn is the
// access token lifetime in seconds.
type TokensResponse struct {
	AccessToken  *string
	TokenType    *string
	ExpiresIn    *int
	RefreshToken *string
	Scope        *string
}

func init() {
	registerType("TokensResponse", []fieldDef{
		{name: "AccessToken", wire: "access_token", typ: tString},
		{name: "TokenType", wire: "token_type", typ: tString},
		{name: "ExpiresIn", wire: "expires_in", typ: tInt},
		{name: "RefreshToken", wire: "refresh_token", typ: tString},
		{name: "Scope", wire: "scope", typ: tString},
	}, func(fs fieldSet) Object {
		return &TokensResponse{
			AccessToken:  fs.str("AccessToken"),
			TokenType:    fs.str("TokenType"),
			ExpiresIn:    fs.integer("ExpiresIn"),
			RefreshToken: fs.str("RefreshToken"),
			Scope:        fs.str("Scope"),
		}
	})
}

// TypeName implements Object.
func (r *TokensResponse) TypeName() string { return "TokensResponse" }

func (r *TokensResponse) encodeFields() fieldSet {
	fs := fieldSet{}
	fs.putString("AccessToken", r.AccessToken)
	fs.putString("TokenType", r.TokenType)
	fs.putInt("ExpiresIn", r.ExpiresIn)
	fs.putString("RefreshToken", r.RefreshToken)
	fs.putString("Scope", r.Scope)
	return fs
}

// ErrorResponse is the OAuth error payload returned by the authorization
// endpoints.
type ErrorResponse struct {
	Error       *string
	Description *string
	URI         *string
}

func init() {
	registerType("ErrorResponse", []fieldDef{
		{name: "Error", wire: "error", typ: tString},
		{name: "Description", wire: "error_description", typ: tString},
		{name: "URI", wire: "error_uri", typ: tString},
	}, func(fs fieldSet) Object {
		return &ErrorResponse{
			Error:       fs.str("Error"),
			Description: fs.str("Description"),
			URI:         fs.str("URI"),
		}
	})
}

// TypeName implements Object.
func (r *ErrorResponse) TypeName() string { return "ErrorResponse" }

func (r *ErrorResponse) encodeFields() fieldSet {
	fs := fieldSet{}
	fs.putString("Error", r.Error)
	fs.putString("Description", r.Description)
	fs.putString("URI", r.URI)
	return fs
}

// ThermostatResponse is one page of a thermostat listing.
type ThermostatResponse struct {
	Page           *Page
	ThermostatList []*Thermostat
	Status         *Status
}

func init() {
	registerType("ThermostatResponse", []fieldDef{
		{name: "Page", wire: "page", typ: tObject("Page")},
		{name: "ThermostatList", wire: "thermostatList", typ: tList(tObject("Thermostat"))},
		{name: "Status", wire: "status", typ: tObject("Status")},
	}, func(fs fieldSet) Object {
		return &ThermostatResponse{
			Page:           object[Page](fs, "Page"),
			ThermostatList: objects[Thermostat](fs, "ThermostatList"),
			Status:         object[Status](fs, "Status"),
		}
	})
}

// TypeName implements Object.
func (r *ThermostatResponse) TypeName() string { return "ThermostatResponse" }

func (r *ThermostatResponse) encodeFields() fieldSet {
	fs := fieldSet{}
	putObject(fs, "Page", r.Page)
	putObjects(fs, "ThermostatList", r.ThermostatList)
	putObject(fs, "Status", r.Status)
	return fs
}

// ThermostatSummaryResponse lists the revision and equipment status CSV rows
// for the selected thermostats; parse them with ParseRevision and
// ParseEquipmentStatus.
type ThermostatSummaryResponse struct {
	RevisionList    []string
	ThermostatCount *int
	StatusList      []string
	Status          *Status
}

func init() {
	registerType("ThermostatSummaryResponse", []fieldDef{
		{name: "RevisionList", wire: "revisionList", typ: tList(tString)},
		{name: "ThermostatCount", wire: "thermostatCount", typ: tInt},
		{name: "StatusList", wire: "statusList", typ: tList(tString)},
		{name: "Status", wire: "status", typ: tObject("Status")},
	}, func(fs fieldSet) Object {
		return &ThermostatSummaryResponse{
			RevisionList:    fs.strings("RevisionList"),
			ThermostatCount: fs.integer("ThermostatCount"),
			StatusList:      fs.strings("StatusList"),
			Status:          object[Status](fs, "Status"),
		}
	})
}

// TypeName implements Object.
func (r *ThermostatSummaryResponse) TypeName() string { return "ThermostatSummaryResponse" }

func (r *ThermostatSummaryResponse) encodeFields() fieldSet {
	fs := fieldSet{}
	fs.putStrings("RevisionList", r.RevisionList)
	fs.putInt("ThermostatCount", r.ThermostatCount)
	fs.putStrings("StatusList", r.StatusList)
	putObject(fs, "Status", r.Status)
	return fs
}

// UpdateThermostatResponse carries only the vendor status for a write.
type UpdateThermostatResponse struct {
	Status *Status
}

func init() {
	registerType("UpdateThermostatResponse", []fieldDef{
		{name: "Status", wire: "status", typ: tObject("Status")},
	}, func(fs fieldSet) Object {
		return &UpdateThermostatResponse{
			Status: object[Status](fs, "Status"),
		}
	})
}

// TypeName implements Object.
func (r *UpdateThermostatResponse) TypeName() string { return "UpdateThermostatResponse" }

func (r *UpdateThermostatResponse) encodeFields() fieldSet {
	fs := fieldSet{}
	putObject(fs, "Status", r.Status)
	return fs
}

// RuntimeReportResponse is the result of a runtime report request. Columns is
// the CSV column list echoed back from the request.
type RuntimeReportResponse struct {
	StartDate     *string
	StartInterval *int
	EndDate       *string
	EndInterval   *int
	Columns       *string
	ReportList    []*RuntimeReport
	SensorList    []*RuntimeSensorReport
	Status        *Status
}

func init() {
	registerType("RuntimeReportResponse", []fieldDef{
		{name: "StartDate", wire: "startDate", typ: tString},
		{name: "StartInterval", wire: "startInterval", typ: tInt},
		{name: "EndDate", wire: "endDate", typ: tString},
		{name: "EndInterval", wire: "endInterval", typ: tInt},
		{name: "Columns", wire: "columns", typ: tString},
		{name: "ReportList", wire: "reportList", typ: tList(tObject("RuntimeReport"))},
		{name: "SensorList", wire: "sensorList", typ: tList(tObject("RuntimeSensorReport"))},
		{name: "Status", wire: "status", typ: tObject("Status")},
	}, func(fs fieldSet) Object {
		return &RuntimeReportResponse{
			StartDate:     fs.str("StartDate"),
			StartInterval: fs.integer("StartInterval"),
			EndDate:       fs.str("EndDate"),
			EndInterval:   fs.integer("EndInterval"),
			Columns:       fs.str("Columns"),
			ReportList:    objects[RuntimeReport](fs, "ReportList"),
			SensorList:    objects[RuntimeSensorReport](fs, "SensorList"),
			Status:        object[Status](fs, "Status"),
		}
	})
}

// TypeName implements Object.
func (r *RuntimeReportResponse) TypeName() string { return "RuntimeReportResponse" }

func (r *RuntimeReportResponse) encodeFields() fieldSet {
	fs := fieldSet{}
	fs.putString("StartDate", r.StartDate)
	fs.putInt("StartInterval", r.StartInterval)
	fs.putString("EndDate", r.EndDate)
	fs.putInt("EndInterval", r.EndInterval)
	fs.putString("Columns", r.Columns)
	putObjects(fs, "ReportList", r.ReportList)
	putObjects(fs, "SensorList", r.SensorList)
	putObject(fs, "Status", r.Status)
	return fs
}

// MeterReportResponse is the result of a meter report request.
type MeterReportResponse struct {
	ReportList []*MeterReport
	Status     *Status
}

func init() {
	registerType("MeterReportResponse", []fieldDef{
		{name: "ReportList", wire: "reportList", typ: tList(tObject("MeterReport"))},
		{name: "Status", wire: "status", typ: tObject("Status")},
	}, func(fs fieldSet) Object {
		return &MeterReportResponse{
			ReportList: objects[MeterReport](fs, "ReportList"),
			Status:     object[Status](fs, "Status"),
		}
	})
}

// TypeName implements Object.
func (r *MeterReportResponse) TypeName() string { return "MeterReportResponse" }

func (r *MeterReportResponse) encodeFields() fieldSet {
	fs := fieldSet{}
	putObjects(fs, "ReportList", r.ReportList)
	putObject(fs, "Status", r.Status)
	return fs
}
