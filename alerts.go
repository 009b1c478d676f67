package ecobee

// Alert is a message generated by the thermostat or the vendor platform,
// acknowledged through Acknowledge.
type Alert struct {
	AcknowledgeRef       *string
	Date                 *string
	Time                 *string
	Severity             *string
	Text                 *string
	AlertNumber          *int
	AlertType            *string
	IsOperatorAlert      *bool
	Reminder             *string
	ShowIdt              *bool
	ShowWeb              *bool
	SendEmail            *bool
	Acknowledgement      *string
	RemindMeLater        *bool
	ThermostatIdentifier *string
	NotificationType     *string
}

func init() {
	registerType("Alert", []fieldDef{
		{name: "AcknowledgeRef", wire: "acknowledgeRef", typ: tString},
		{name: "Date", wire: "date", typ: tString},
		{name: "Time", wire: "time", typ: tString},
		{name: "Severity", wire: "severity", typ: tString},
		{name: "Text", wire: "text", typ: tString},
		{name: "AlertNumber", wire: "alertNumber", typ: tInt},
		{name: "AlertType", wire: "alertType", typ: tString},
		{name: "IsOperatorAlert", wire: "isOperatorAlert", typ: tBool},
		{name: "Reminder", wire: "reminder", typ: tString},
		{name: "ShowIdt", wire: "showIdt", typ: tBool},
		{name: "ShowWeb", wire: "showWeb", typ: tBool},
		{name: "SendEmail", wire: "sendEmail", typ: tBool},
		{name: "Acknowledgement", wire: "acknowledgement", typ: tString},
		{name: "RemindMeLater", wire: "remindMeLater", typ: tBool},
		{name: "ThermostatIdentifier", wire: "thermostatIdentifier", typ: tString},
		{name: "NotificationType", wire: "notificationType", typ: tString},
	}, func(fs fieldSet) Object {
		return &Alert{
			AcknowledgeRef:       fs.str("AcknowledgeRef"),
			Date:                 fs.str("Date"),
			Time:                 fs.str("Time"),
			Severity:             fs.str("Severity"),
			Text:                 fs.str("Text"),
			AlertNumber:          fs.integer("AlertNumber"),
			AlertType:            fs.str("AlertType"),
			IsOperatorAlert:      fs.boolean("IsOperatorAlert"),
			Reminder:             fs.str("Reminder"),
			ShowIdt:              fs.boolean("ShowIdt"),
			ShowWeb:              fs.boolean("ShowWeb"),
			SendEmail:            fs.boolean("SendEmail"),
			Acknowledgement:      fs.str("Acknowledgement"),
			RemindMeLater:        fs.boolean("RemindMeLater"),
			ThermostatIdentifier: fs.str("ThermostatIdentifier"),
			NotificationType:     fs.str("NotificationType"),
		}
	})
}

// TypeName implements Object.
func (a *Alert) TypeName() string { return "Alert" }

func (a *Alert) encodeFields() fieldSet {
	fs := fieldSet{}
	fs.putString("AcknowledgeRef", a.AcknowledgeRef)
	fs.putString("Date", a.Date)
	fs.putString("Time", a.Time)
	fs.putString("Severity", a.Severity)
	fs.putString("Text", a.Text)
	fs.putInt("AlertNumber", a.AlertNumber)
	fs.putString("AlertType", a.AlertType)
	fs.putBool("IsOperatorAlert", a.IsOperatorAlert)
	fs.putString("Reminder", a.Reminder)
	fs.putBool("ShowIdt", a.ShowIdt)
	fs.putBool("ShowWeb", a.ShowWeb)
	fs.putBool("SendEmail", a.SendEmail)
	fs.putString("Acknowledgement", a.Acknowledgement)
	fs.putBool("RemindMeLater", a.RemindMeLater)
	fs.putString("ThermostatIdentifier", a.ThermostatIdentifier)
	fs.putString("NotificationType", a.NotificationType)
	return fs
}
