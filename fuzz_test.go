package ecobee

import (
	"encoding/json"
	"testing"
)

// FuzzDecode fuzzes payload decoding through the type registry.
// Run with: go test -fuzz=FuzzDecode
func FuzzDecode(f *testing.F) {
	// Add seed corpus
	f.Add([]byte(`{"identifier":"123","name":"Test"}`))
	f.Add([]byte(`{}`))
	f.Add([]byte(`{"runtime":{"actualTemperature":712}}`))
	f.Add([]byte(`{"runtime":{"actualTemperature":"712"}}`))
	f.Add([]byte(`{"remoteSensors":[{"id":"rs:100","capability":[]}]}`))
	f.Add([]byte(`{"identifier":null,"events":[{}]}`))

	f.Fuzz(func(t *testing.T, data []byte) {
		var parsed map[string]any
		if err := json.Unmarshal(data, &parsed); err != nil {
			return
		}
		// Should not panic - errors are acceptable
		_, _ = Decode(map[string]any{"Thermostat": parsed}, "Thermostat")
	})
}

// FuzzParseRevision fuzzes summary revision row parsing.
// Run with: go test -fuzz=FuzzParseRevision
func FuzzParseRevision(f *testing.F) {
	f.Add("318324702718:Main Floor:true:a:b:c:d")
	f.Add("")
	f.Add("::::::")
	f.Add("id:name:maybe:a:b:c:d:extra")

	f.Fuzz(func(t *testing.T, row string) {
		// Should not panic
		_, _ = ParseRevision(row)
		_, _ = ParseEquipmentStatus(row)
	})
}

// FuzzCoerceInt fuzzes the permissive integer coercion.
// Run with: go test -fuzz=FuzzCoerceInt
func FuzzCoerceInt(f *testing.F) {
	f.Add("42")
	f.Add(" -7 ")
	f.Add("7.5")
	f.Add("NaN")

	f.Fuzz(func(t *testing.T, s string) {
		// Should not panic
		_, _ = coerceInt(s)
		_, _ = coerceFloat(s)
		_, _ = coerceBool(s)
	})
}
