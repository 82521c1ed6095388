// Package app is the composition root for the recall viewer.
//
// Run wires the pieces together in a fixed order: load and validate the
// config file (internal/config), create the navigation state machine sized
// to the page count (internal/nav), and hand both to the Bubble Tea UI
// (internal/ui), blocking until it exits.
//
// Startup errors -- an unreadable path, malformed TOML, or a shape
// violation -- propagate out of Run and terminate the process with a
// non-zero exit; no error recovery happens here. Once the UI is running,
// rendering and dispatch are total and the only way out is the navigation
// state machine's quitting transition or context cancellation, which is
// folded into the same quit-reason reporting.
package app
