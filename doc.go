// Package ecobee provides a Go client library for the ecobee thermostat API.
//
// The library covers the consumer API surface: PIN-based authorization,
// thermostat reads and writes, thermostat functions (holds, vacations,
// messages), and historical runtime and meter reports. Wire payloads are
// converted to and from typed objects by a registry of per-type field tables
// rather than reflection, so every field the vendor sends is checked against
// a declared name and type.
//
// # Authentication
//
// The ecobee API uses a PIN-based OAuth flow. Request a PIN, have the user
// enter it under My Apps on the ecobee portal, then exchange it for tokens:
//
//	client, err := ecobee.NewClient("your-application-key",
//	    ecobee.WithTokenStore(ecobee.NewFileTokenStore("/path/to/tokens.json")),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	auth, err := client.Authorize(ctx)
//	fmt.Printf("Enter PIN %s on the ecobee portal\n", *auth.EcobeePin)
//	// ... wait for the user ...
//	tokens, err := client.RequestTokens(ctx)
//
// Access tokens are short-lived; EnsureValidToken refreshes them when needed
// and persists the result through the configured TokenStore:
//
//	if err := client.EnsureValidToken(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Basic Usage
//
// Read thermostats with the data blocks you need:
//
//	sel := ecobee.NewSelection(ecobee.SelectionTypeRegistered, "")
//	sel.IncludeRuntime = ecobee.Bool(true)
//	sel.IncludeSettings = ecobee.Bool(true)
//	thermostats, err := client.AllThermostats(ctx, sel)
//	for _, t := range thermostats {
//	    fmt.Printf("%s: %.1fF\n", *t.Name, float64(*t.Runtime.ActualTemperature)/10)
//	}
//
// Set a temperature hold:
//
//	_, err := client.SetHold(ctx, sel, ecobee.HoldOptions{
//	    CoolHoldTemp: ecobee.Float(76.5),
//	    HeatHoldTemp: ecobee.Float(68),
//	    HoldType:     ecobee.HoldTypeNextTransition,
//	})
//
// All temperatures cross the wire as Fahrenheit tenths; option structs take
// plain degrees Fahrenheit and convert.
//
// # Polling
//
// Poll ThermostatSummary (at most every 3 minutes) and fetch full data only
// for thermostats whose revision stamps changed:
//
//	summary, err := client.ThermostatSummary(ctx, sel)
//	revs, err := summary.Revisions()
//	for _, rev := range tracker.Update(revs) {
//	    // fetch rev.Identifier
//	}
//
// # Retry Configuration
//
// Enable automatic retry for transient failures:
//
//	client, err := ecobee.NewClient("app-key",
//	    ecobee.WithRetry(ecobee.DefaultRetryConfig()),
//	)
//
// # Error Handling
//
// Check for specific error types:
//
//	resp, err := client.Thermostats(ctx, sel, nil)
//	if err != nil {
//	    if ecobee.IsTokenExpired(err) {
//	        // Access token expired; call RefreshTokens
//	    } else if ecobee.IsAuthError(err) {
//	        // Authorization failed; rerun the PIN flow
//	    } else if ecobee.IsAPIError(err) {
//	        // Vendor rejected the request
//	    }
//	}
//
// # API Coverage
//
// The library supports the following ecobee API endpoints:
//
//   - Authorization: PIN request, token grant, token refresh
//   - Thermostat: read with selection include flags, paged reads, updates
//   - Thermostat summary: revision stamps and equipment status
//   - Functions: holds, vacations, resume, messages, acknowledgements,
//     plug control, occupancy, sensor updates, preference reset
//   - Runtime report: 5-minute interval data, optionally per sensor
//   - Meter report: historical energy meter readings
//
// For more information, see https://www.ecobee.com/home/developer/api/
package ecobee
