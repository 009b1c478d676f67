package ecobee_test

import (
	"encoding/json"
	"fmt"

	"github.com/gohvac/ecobee"
)

func ExampleNewSelection() {
	sel := ecobee.NewSelection(ecobee.SelectionTypeThermostats, "318324702718")
	sel.IncludeRuntime = ecobee.Bool(true)

	fmt.Println(*sel.SelectionType, *sel.SelectionMatch)
	// Output: thermostats 318324702718
}

func ExampleEncode() {
	sel := ecobee.NewSelection(ecobee.SelectionTypeRegistered, "")
	sel.IncludeSettings = ecobee.Bool(true)

	payload, _ := ecobee.Encode(sel)
	data, _ := json.Marshal(payload)
	fmt.Println(string(data))
	// Output: {"Selection":{"includeSettings":true,"selectionMatch":"","selectionType":"registered"}}
}

func ExampleDecode() {
	payload := map[string]any{
		"Status": map[string]any{
			"code":    14,
			"message": "Authentication token has expired.",
		},
	}

	obj, err := ecobee.Decode(payload, "Status")
	if err != nil {
		fmt.Println(err)
		return
	}
	status := obj.(*ecobee.Status)
	fmt.Println(*status.Code, *status.Message)
	// Output: 14 Authentication token has expired.
}

func ExampleParseRevision() {
	rev, _ := ecobee.ParseRevision("318324702718:Main Floor:true:071223012334:080102000000:080102000000:080102000000")
	fmt.Println(rev.Identifier, rev.Connected, rev.RuntimeRevision)
	// Output: 318324702718 true 080102000000
}

func ExampleParseEquipmentStatus() {
	status, _ := ecobee.ParseEquipmentStatus("318324702718:heatPump,fan")
	fmt.Println(status.Identifier, status.Running("fan"))
	// Output: 318324702718 true
}

func ExampleRevisionTracker() {
	tracker := ecobee.NewRevisionTracker()

	first := ecobee.SummaryRevision{Identifier: "318324702718", RuntimeRevision: "r1"}
	second := ecobee.SummaryRevision{Identifier: "318324702718", RuntimeRevision: "r2"}

	fmt.Println(len(tracker.Update([]ecobee.SummaryRevision{first})))
	fmt.Println(len(tracker.Update([]ecobee.SummaryRevision{first})))
	fmt.Println(len(tracker.Update([]ecobee.SummaryRevision{second})))
	// Output:
	// 1
	// 0
	// 1
}
