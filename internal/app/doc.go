// Package app is the composition root of storedash.
//
// Run and Report share one setup path:
//
//  1. Load config.toml and prefs.toml
//  2. Open the slog file logger
//  3. Build the api.Client and a state.Session on top of it
//  4. Apply the store and period overrides
//
// Run then fetches the store list, starts the background refresher and
// blocks in the Bubble Tea program. Report refreshes a single domain and
// prints it.
//
// The refresher (poller.go) refreshes only the domain the UI is showing.
// Its delay doubles per consecutive transport failure, capped at five
// minutes, and returns to the configured interval once the API answers.
package app
