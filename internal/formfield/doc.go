// Package formfield holds the state model of a "flat form" text field: a
// single-line input with a placeholder, an inline error message and a
// trailing accessory icon.
//
// The model is presentation free. A presentation adapter (see
// internal/ui/flatfield) reads it to render and calls its event methods
// when the user interacts with the field.
//
// # Revisions
//
// A field is built for one of two revisions:
//
//   - RevisionDisplayStates: the error label, the accessory override and
//     input permissions are all driven by a DisplayState (ReadOnly, Editing,
//     Loading, Error(message)).
//   - RevisionLegacy: the error label is toggled with ShowError/ClearError
//     and the accessory is always the one the caller selected.
//
// Calling the entry point of the other revision returns ErrRevisionMismatch.
//
// # Display states
//
//	ReadOnly        static text, edit affordance, no focus
//	Editing         focus allowed, accessory shown
//	Loading         no focus, spinner forced, accessory taps ignored
//	Error(message)  message shown, accessory hidden, input as before
//
// # Listener
//
// Outbound notifications go to a single Listener, invoked synchronously:
//
//	f := formfield.New(
//	    formfield.WithPlaceholder("Group Name"),
//	    formfield.WithListener(myListener),
//	)
//	f.SetAccessoryState(formfield.AccessoryCheckmark)
//	f.TapAccessory() // myListener.AccessoryTapped(f, AccessoryCheckmark)
//
// Embed NopListener to get default-allow behaviour for the methods you do
// not implement.
package formfield
