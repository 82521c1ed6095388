// Package config loads recall's TOML config file and builds the immutable
// page/entry model the UI renders.
//
// # Document format
//
// The file is a set of top-level tables. The reserved [recall] table holds
// optional global settings; every other table is a page:
//
//	[recall]
//	primary_color = 15
//	highlight_color = 14
//
//	[General]
//	Copy = {content = ["Ctrl","C"], description = "Copies the current selection."}
//
// Colors are ANSI color table indices (0-255). Both settings and either
// color field may be omitted; defaults are white (15) and cyan (14).
//
// Each page maps arbitrary entry identifiers to records with a "content"
// array of key names (possibly empty) and a "description" string. Both
// fields are required. The identifier is only used for uniqueness and is
// never displayed.
//
// # Ordering
//
// Pages render in the order their tables appear in the document, and
// entries in the order they appear within their page. Nothing is sorted.
// Parsing goes through an order-preserving generic pass (document.go)
// before any domain validation, so authors control layout entirely.
//
// # Errors
//
// Load distinguishes three failures, all fatal at startup:
//
//   - *ParseError: the document is not valid TOML
//   - *ConfigError: valid TOML with the wrong shape; names the offending
//     section and, when applicable, the entry
//   - wrapped I/O errors: the path cannot be resolved or read
//
// # Discovery
//
// The default location is ~/.config/recall/config.toml. Tilde expansion and
// relative paths are handled by ResolvePath. WriteExample (the `recall
// init` subcommand) creates an annotated starter file and refuses to
// overwrite an existing one.
package config
