// Package flatfield draws a formfield.Field in the terminal.
//
// The Model owns a Bubbles text input for the edit session, a spinner for
// the loading accessory and the lip gloss styles of a ui.Theme. It reads
// the field to render and calls the field's event methods for key presses:
//
//	enter / e   BeginEditing
//	typing      ReplaceText (the input is rolled back when vetoed)
//	enter       Return, then EndEditing when the listener allows it
//	esc         EndEditing
//	ctrl+t      TapAccessory
//
// The spinner only ticks while the loading accessory is shown.
package flatfield
