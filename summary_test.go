package ecobee

import (
	"reflect"
	"testing"
)

func TestParseRevision(t *testing.T) {
	t.Run("full row", func(t *testing.T) {
		rev, err := ParseRevision("318324702718:Main Floor:true:071223012334:080102000000:080102000000:080102000000")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := SummaryRevision{
			Identifier:         "318324702718",
			Name:               "Main Floor",
			Connected:          true,
			ThermostatRevision: "071223012334",
			AlertsRevision:     "080102000000",
			RuntimeRevision:    "080102000000",
			IntervalRevision:   "080102000000",
		}
		if rev != want {
			t.Errorf("revision = %+v, want %+v", rev, want)
		}
	})

	t.Run("disconnected thermostat", func(t *testing.T) {
		rev, err := ParseRevision("id:Name:false:a:b:c:d")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rev.Connected {
			t.Error("Connected should be false")
		}
	})

	t.Run("malformed row", func(t *testing.T) {
		if _, err := ParseRevision("id:Name:true"); err == nil {
			t.Error("expected error for short row")
		}
		if _, err := ParseRevision(""); err == nil {
			t.Error("expected error for empty row")
		}
	})
}

func TestParseEquipmentStatus(t *testing.T) {
	t.Run("running equipment", func(t *testing.T) {
		status, err := ParseEquipmentStatus("318324702718:heatPump,fan")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status.Identifier != "318324702718" {
			t.Errorf("Identifier = %q", status.Identifier)
		}
		if !reflect.DeepEqual(status.Equipment, []string{"heatPump", "fan"}) {
			t.Errorf("Equipment = %v", status.Equipment)
		}
		if !status.Running("fan") {
			t.Error("fan should be running")
		}
		if status.Running("auxHeat1") {
			t.Error("auxHeat1 should not be running")
		}
	})

	t.Run("idle thermostat", func(t *testing.T) {
		status, err := ParseEquipmentStatus("318324702718:")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(status.Equipment) != 0 {
			t.Errorf("Equipment = %v, want empty", status.Equipment)
		}
	})

	t.Run("malformed row", func(t *testing.T) {
		if _, err := ParseEquipmentStatus("no-colon-here"); err == nil {
			t.Error("expected error for row without separator")
		}
	})
}

func TestSummaryResponseParsing(t *testing.T) {
	resp := &ThermostatSummaryResponse{
		RevisionList: []string{
			"id-1:One:true:a:b:c:d",
			"id-2:Two:false:a:b:c:d",
		},
		StatusList: []string{
			"id-1:compCool1",
			"id-2:",
		},
	}

	revs, err := resp.Revisions()
	if err != nil {
		t.Fatalf("Revisions: %v", err)
	}
	if len(revs) != 2 {
		t.Fatalf("got %d revisions, want 2", len(revs))
	}

	statuses, err := resp.Statuses()
	if err != nil {
		t.Fatalf("Statuses: %v", err)
	}
	if len(statuses) != 2 {
		t.Fatalf("got %d statuses, want 2", len(statuses))
	}
	if !statuses[0].Running("compCool1") {
		t.Error("compCool1 should be running on id-1")
	}

	connected := ConnectedRevisions(revs)
	if len(connected) != 1 || connected[0].Identifier != "id-1" {
		t.Errorf("connected = %+v, want only id-1", connected)
	}

	t.Run("malformed rows surface errors", func(t *testing.T) {
		bad := &ThermostatSummaryResponse{RevisionList: []string{"short"}}
		if _, err := bad.Revisions(); err == nil {
			t.Error("expected error for malformed revision row")
		}
		bad = &ThermostatSummaryResponse{StatusList: []string{"no-separator"}}
		if _, err := bad.Statuses(); err == nil {
			t.Error("expected error for malformed status row")
		}
	})
}
