// Package ui renders the recall viewer and dispatches its keyboard events.
//
// The Bubble Tea model owns three read-mostly pieces: the immutable config,
// the navigation state, and the styles derived from the theme colors. View
// draws a full-screen bordered frame with the page title centered in the
// top border and a legend plus page counter centered in the bottom border.
//
// The entry table has two columns. The shortcut column is sized to the
// widest rendered shortcut span on the current page, recomputed on every
// render; the description column fills the remaining width. Shortcut spans
// join their key tokens with '+' separators, keys in bold highlight and
// separators in the primary color.
//
// A config with zero pages renders an informational panel pointing at
// `recall init` instead of a table. Rendering and dispatch are total
// functions over validated state; no error originates here.
package ui
