//go:build integration

package ecobee

import (
	"context"
	"os"
	"testing"
	"time"
)

// Integration tests run against the live ecobee API and need real
// credentials:
//
//	ECOBEE_APP_KEY       the registered application key
//	ECOBEE_REFRESH_TOKEN a refresh token from a completed PIN flow
//
// Run with: go test -tags=integration -run TestIntegration
func integrationClient(t *testing.T) *Client {
	t.Helper()

	appKey := os.Getenv("ECOBEE_APP_KEY")
	refreshToken := os.Getenv("ECOBEE_REFRESH_TOKEN")
	if appKey == "" || refreshToken == "" {
		t.Skip("ECOBEE_APP_KEY and ECOBEE_REFRESH_TOKEN not set")
	}

	client, err := NewClient(appKey, WithRetry(DefaultRetryConfig()))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	client.SetTokens(context.Background(), &Tokens{RefreshToken: refreshToken})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if _, err := client.RefreshTokens(ctx); err != nil {
		t.Fatalf("RefreshTokens: %v", err)
	}
	return client
}

func TestIntegration_ThermostatSummary(t *testing.T) {
	client := integrationClient(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sel := NewSelection(SelectionTypeRegistered, "")
	sel.IncludeEquipmentStatus = Bool(true)

	resp, err := client.ThermostatSummary(ctx, sel)
	if err != nil {
		t.Fatalf("ThermostatSummary: %v", err)
	}
	if resp.ThermostatCount == nil {
		t.Fatal("ThermostatCount is nil")
	}
	t.Logf("account has %d thermostats", *resp.ThermostatCount)

	revs, err := resp.Revisions()
	if err != nil {
		t.Fatalf("Revisions: %v", err)
	}
	for _, rev := range revs {
		t.Logf("thermostat %s (%s) connected=%v", rev.Identifier, rev.Name, rev.Connected)
	}
}

func TestIntegration_Thermostats(t *testing.T) {
	client := integrationClient(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sel := NewSelection(SelectionTypeRegistered, "")
	sel.IncludeRuntime = Bool(true)
	sel.IncludeSettings = Bool(true)

	thermostats, err := client.AllThermostats(ctx, sel)
	if err != nil {
		t.Fatalf("AllThermostats: %v", err)
	}
	for _, tstat := range thermostats {
		if tstat.Identifier == nil {
			t.Error("thermostat has no identifier")
			continue
		}
		if tstat.Runtime == nil || tstat.Runtime.ActualTemperature == nil {
			t.Errorf("thermostat %s has no runtime temperature", *tstat.Identifier)
			continue
		}
		t.Logf("%s: %.1fF", deref(tstat.Name), float64(*tstat.Runtime.ActualTemperature)/10)
	}
}

func TestIntegration_RuntimeReport(t *testing.T) {
	client := integrationClient(t)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	sel := NewSelection(SelectionTypeRegistered, "")
	summary, err := client.ThermostatSummary(ctx, sel)
	if err != nil {
		t.Fatalf("ThermostatSummary: %v", err)
	}
	revs, err := summary.Revisions()
	if err != nil || len(revs) == 0 {
		t.Skip("no thermostats on the account")
	}

	end := time.Now().UTC()
	start := end.Add(-24 * time.Hour)
	reportSel := NewSelection(SelectionTypeThermostats, revs[0].Identifier)

	resp, err := client.RuntimeReport(ctx, reportSel, start, end, "zoneAveTemp,hvacMode", false)
	if err != nil {
		t.Fatalf("RuntimeReport: %v", err)
	}
	if len(resp.ReportList) == 0 {
		t.Fatal("report list is empty")
	}
	t.Logf("report has %d rows", len(resp.ReportList[0].RowList))
}
