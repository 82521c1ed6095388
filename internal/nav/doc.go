// Package nav holds the viewer's navigation state: the current page index
// and a running/quitting lifecycle.
//
// The index is clamped inside the increment/decrement operations, so no
// caller can observe it outside [0, pageCount-1]. Quitting carries a
// QuitReason and is absorbing; the UI loop observes it and terminates. The
// reason is a closed set (interrupt, close key, init subcommand) plus a
// free-form variant for forward extension, rather than a bare boolean, so
// every exit path is observable in logs and tests.
//
// The package is pure in-memory state with no dependencies; it is mutated
// only from the single UI goroutine.
package nav
