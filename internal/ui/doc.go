// Package ui renders storedash sessions: an interactive Bubble Tea dashboard
// and a one-shot text report.
//
// # Package Structure
//
//   - app.go: Model, messages, commands and Run
//   - keys.go: keyboard handling
//   - view.go: dashboard layout, tabs, status line and footer
//   - sections.go: per-domain sections built from a state.Snapshot, shared
//     by the dashboard and the report
//   - report.go: RenderReport for the report subcommand
//   - theme.go: Dracula and Slate palettes and their Lipgloss styles
//   - format.go: won, count and period formatting
//
// # Event Flow
//
//  1. Init fetches a snapshot and refreshes the active domain
//  2. A one-second tick re-reads session.Snapshot; the model never holds
//     store pointers beyond the session itself
//  3. Keys that change scope (store, month, tab) schedule a refresh of the
//     active domain as a tea.Cmd, so requests never block rendering
//  4. Theme, store and section changes are saved to prefs.toml immediately
//
// The meal kit tab draws its inventory with a bubbles table so rows can be
// added to the cart; every other list is a static lipgloss table inside a
// scrollable viewport.
package ui
