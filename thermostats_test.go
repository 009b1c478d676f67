package ecobee

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// requestPayload parses the payload the client put in the "json" query
// parameter of a read request.
func requestPayload(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	raw := r.URL.Query().Get("json")
	if raw == "" {
		t.Fatal("request carries no json query parameter")
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatalf("json query parameter is not JSON: %v", err)
	}
	return payload
}

func TestThermostatSummary(t *testing.T) {
	t.Run("parses revisions and statuses", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/1/thermostatSummary" {
				t.Errorf("path = %q, want /1/thermostatSummary", r.URL.Path)
			}
			payload := requestPayload(t, r)
			sel, ok := payload["selection"].(map[string]any)
			if !ok {
				t.Fatal("payload missing selection")
			}
			if sel["selectionType"] != "registered" {
				t.Errorf("selectionType = %v, want registered", sel["selectionType"])
			}
			if sel["includeEquipmentStatus"] != true {
				t.Errorf("includeEquipmentStatus = %v, want true", sel["includeEquipmentStatus"])
			}
			json.NewEncoder(w).Encode(map[string]any{
				"revisionList": []string{
					"318324702718:Main Floor:true:071223012334:080102000000:080102000000:080102000000",
				},
				"thermostatCount": 1,
				"statusList":      []string{"318324702718:heatPump,fan"},
				"status":          map[string]any{"code": 0, "message": ""},
			})
		}))
		defer server.Close()

		client, _ := NewClient("app-key", WithBaseURL(server.URL))
		installTestTokens(t, client)

		sel := NewSelection(SelectionTypeRegistered, "")
		sel.IncludeEquipmentStatus = Bool(true)

		resp, err := client.ThermostatSummary(context.Background(), sel)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := *resp.ThermostatCount; got != 1 {
			t.Errorf("ThermostatCount = %d, want 1", got)
		}

		revs, err := resp.Revisions()
		if err != nil {
			t.Fatalf("Revisions: %v", err)
		}
		if revs[0].Identifier != "318324702718" || !revs[0].Connected {
			t.Errorf("revision = %+v", revs[0])
		}

		statuses, err := resp.Statuses()
		if err != nil {
			t.Fatalf("Statuses: %v", err)
		}
		if !statuses[0].Running("heatPump") {
			t.Error("heatPump should be running")
		}
	})

	t.Run("nil selection rejected", func(t *testing.T) {
		client, _ := NewClient("app-key")
		if _, err := client.ThermostatSummary(context.Background(), nil); err != ErrNilSelection {
			t.Errorf("error = %v, want ErrNilSelection", err)
		}
	})
}

func TestThermostats(t *testing.T) {
	t.Run("single page with data blocks", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/1/thermostat" {
				t.Errorf("path = %q, want /1/thermostat", r.URL.Path)
			}
			payload := requestPayload(t, r)
			if _, hasPage := payload["page"]; hasPage {
				t.Error("first page request should not carry a page object")
			}
			json.NewEncoder(w).Encode(map[string]any{
				"page": map[string]any{"page": 1, "totalPages": 1, "pageSize": 1, "total": 1},
				"thermostatList": []any{
					map[string]any{
						"identifier": "318324702718",
						"name":       "Main Floor",
						"runtime":    map[string]any{"actualTemperature": 712},
					},
				},
				"status": map[string]any{"code": 0, "message": ""},
			})
		}))
		defer server.Close()

		client, _ := NewClient("app-key", WithBaseURL(server.URL))
		installTestTokens(t, client)

		sel := NewSelection(SelectionTypeRegistered, "")
		sel.IncludeRuntime = Bool(true)

		resp, err := client.Thermostats(context.Background(), sel, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.ThermostatList) != 1 {
			t.Fatalf("got %d thermostats, want 1", len(resp.ThermostatList))
		}
		tstat := resp.ThermostatList[0]
		if deref(tstat.Name) != "Main Floor" {
			t.Errorf("Name = %q, want Main Floor", deref(tstat.Name))
		}
		if tstat.Runtime == nil || *tstat.Runtime.ActualTemperature != 712 {
			t.Error("Runtime block not decoded")
		}
	})

	t.Run("nil selection rejected", func(t *testing.T) {
		client, _ := NewClient("app-key")
		if _, err := client.Thermostats(context.Background(), nil, nil); err != ErrNilSelection {
			t.Errorf("error = %v, want ErrNilSelection", err)
		}
	})
}

func TestAllThermostats(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload := requestPayload(t, r)

		page := 1
		if p, ok := payload["page"].(map[string]any); ok {
			page = int(p["page"].(float64))
		}

		names := map[int]string{1: "Main Floor", 2: "Upstairs"}
		json.NewEncoder(w).Encode(map[string]any{
			"page": map[string]any{"page": page, "totalPages": 2, "pageSize": 1, "total": 2},
			"thermostatList": []any{
				map[string]any{"identifier": "id-" + names[page], "name": names[page]},
			},
			"status": map[string]any{"code": 0, "message": ""},
		})
	}))
	defer server.Close()

	client, _ := NewClient("app-key", WithBaseURL(server.URL))
	installTestTokens(t, client)

	all, err := client.AllThermostats(context.Background(), NewSelection(SelectionTypeRegistered, ""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d thermostats, want 2", len(all))
	}
	if deref(all[0].Name) != "Main Floor" || deref(all[1].Name) != "Upstairs" {
		t.Errorf("names = %q, %q", deref(all[0].Name), deref(all[1].Name))
	}
}

func TestUpdateThermostats(t *testing.T) {
	t.Run("settings template and functions", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("method = %s, want POST", r.Method)
			}
			if r.URL.Path != "/1/thermostat" {
				t.Errorf("path = %q, want /1/thermostat", r.URL.Path)
			}

			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Fatalf("body is not JSON: %v", err)
			}

			sel := body["selection"].(map[string]any)
			if sel["selectionType"] != "thermostats" || sel["selectionMatch"] != "318324702718" {
				t.Errorf("selection = %v", sel)
			}

			tstat, ok := body["thermostat"].(map[string]any)
			if !ok {
				t.Fatal("body missing thermostat template")
			}
			settings := tstat["settings"].(map[string]any)
			if settings["hvacMode"] != "heat" {
				t.Errorf("hvacMode = %v, want heat", settings["hvacMode"])
			}

			fns, ok := body["functions"].([]any)
			if !ok || len(fns) != 1 {
				t.Fatalf("functions = %v, want one entry", body["functions"])
			}
			fn := fns[0].(map[string]any)
			if fn["type"] != "resumeProgram" {
				t.Errorf("function type = %v, want resumeProgram", fn["type"])
			}

			json.NewEncoder(w).Encode(map[string]any{
				"status": map[string]any{"code": 0, "message": ""},
			})
		}))
		defer server.Close()

		client, _ := NewClient("app-key", WithBaseURL(server.URL))
		installTestTokens(t, client)

		template := &Thermostat{
			Settings: &Settings{HvacMode: String("heat")},
		}
		fn := Function{Type: "resumeProgram", Params: map[string]any{"resumeAll": false}}

		resp, err := client.UpdateThermostats(context.Background(),
			NewSelection(SelectionTypeThermostats, "318324702718"), template, fn)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Status == nil || *resp.Status.Code != 0 {
			t.Errorf("status = %+v", resp.Status)
		}
	})

	t.Run("empty function type rejected", func(t *testing.T) {
		client, _ := NewClient("app-key")
		installTestTokens(t, client)
		_, err := client.UpdateThermostats(context.Background(),
			NewSelection(SelectionTypeRegistered, ""), nil, Function{})
		if err != ErrEmptyFunctionType {
			t.Errorf("error = %v, want ErrEmptyFunctionType", err)
		}
	})

	t.Run("nil selection rejected", func(t *testing.T) {
		client, _ := NewClient("app-key")
		if _, err := client.UpdateThermostats(context.Background(), nil, nil); err != ErrNilSelection {
			t.Errorf("error = %v, want ErrNilSelection", err)
		}
	})
}
