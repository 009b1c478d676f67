package ecobee

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// SummaryRevision is one parsed row of ThermostatSummaryResponse.RevisionList.
// Compare the revision stamps against a previous poll: a changed
// ThermostatRevision means settings/program/event data changed, a changed
// RuntimeRevision means new runtime data is available.
type SummaryRevision struct {
	Identifier         string
	Name               string
	Connected          bool
	ThermostatRevision string
	AlertsRevision     string
	RuntimeRevision    string
	IntervalRevision   string
}

// ParseRevision parses one colon-separated row of a summary revision list.
func ParseRevision(row string) (SummaryRevision, error) {
	parts := strings.Split(row, ":")
	if len(parts) != 7 {
		return SummaryRevision{}, fmt.Errorf("ecobee: malformed revision row %q", row)
	}
	return SummaryRevision{
		Identifier:         parts[0],
		Name:               parts[1],
		Connected:          parts[2] == "true",
		ThermostatRevision: parts[3],
		AlertsRevision:     parts[4],
		RuntimeRevision:    parts[5],
		IntervalRevision:   parts[6],
	}, nil
}

// SummaryStatus is one parsed row of ThermostatSummaryResponse.StatusList:
// the equipment currently running on one thermostat.
type SummaryStatus struct {
	Identifier string
	Equipment  []string
}

// ParseEquipmentStatus parses one colon-separated row of a summary status
// list. An idle thermostat has an empty Equipment slice.
func ParseEquipmentStatus(row string) (SummaryStatus, error) {
	identifier, equipment, found := strings.Cut(row, ":")
	if !found {
		return SummaryStatus{}, fmt.Errorf("ecobee: malformed status row %q", row)
	}
	status := SummaryStatus{Identifier: identifier}
	if equipment != "" {
		status.Equipment = strings.Split(equipment, ",")
	}
	return status, nil
}

// Running reports whether the named equipment is currently running.
func (s SummaryStatus) Running(equipment string) bool {
	return lo.Contains(s.Equipment, equipment)
}

// Revisions parses every row of the revision list.
func (r *ThermostatSummaryResponse) Revisions() ([]SummaryRevision, error) {
	out := make([]SummaryRevision, 0, len(r.RevisionList))
	for _, row := range r.RevisionList {
		rev, err := ParseRevision(row)
		if err != nil {
			return nil, err
		}
		out = append(out, rev)
	}
	return out, nil
}

// Statuses parses every row of the status list.
func (r *ThermostatSummaryResponse) Statuses() ([]SummaryStatus, error) {
	out := make([]SummaryStatus, 0, len(r.StatusList))
	for _, row := range r.StatusList {
		st, err := ParseEquipmentStatus(row)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, nil
}

// ConnectedRevisions filters the parsed revision list down to thermostats
// currently connected to the vendor platform.
func ConnectedRevisions(revs []SummaryRevision) []SummaryRevision {
	return lo.Filter(revs, func(rev SummaryRevision, _ int) bool {
		return rev.Connected
	})
}
