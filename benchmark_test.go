package ecobee

import (
	"testing"
)

// BenchmarkDecodeThermostat benchmarks decoding a thermostat payload with
// nested data blocks through the type registry.
func BenchmarkDecodeThermostat(b *testing.B) {
	payload := thermostatPayload()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Decode(payload, "Thermostat"); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkEncodeThermostat benchmarks the reverse direction.
func BenchmarkEncodeThermostat(b *testing.B) {
	obj, err := Decode(thermostatPayload(), "Thermostat")
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Encode(obj); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkEncodeSelection benchmarks the sparse encode of a typical read
// request selection.
func BenchmarkEncodeSelection(b *testing.B) {
	sel := NewSelection(SelectionTypeRegistered, "")
	sel.IncludeRuntime = Bool(true)
	sel.IncludeSettings = Bool(true)
	sel.IncludeEquipmentStatus = Bool(true)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Encode(sel); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkParseRevision benchmarks summary revision row parsing.
func BenchmarkParseRevision(b *testing.B) {
	row := "318324702718:Main Floor:true:071223012334:080102000000:080102000000:080102000000"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ParseRevision(row); err != nil {
			b.Fatal(err)
		}
	}
}
