// Package demo is the interactive demo screen: a single flat form field and
// buttons that cycle it through its states.
//
//	a   cycle the accessory (checkmark, loading, refresh, none)
//	d   cycle the display state (read-only, editing, loading, error)
//	x   step through the configured error messages, clearing in between
//	?   toggle the full help
//	q   quit
//
// While the field is being edited every letter goes to it; esc leaves the
// field and ctrl+c always quits.
//
// The demo's Listener logs every field notification, refuses edits past the
// configured character limit and reports a required-but-empty value as a
// field error when editing ends.
package demo
