package formfield

import "fmt"

// AccessoryState selects the trailing icon of a field.
// At most one accessory is shown at a time.
type AccessoryState int

const (
	AccessoryNone AccessoryState = iota
	AccessoryLoading
	AccessoryRefresh
	AccessoryCheckmark
)

// String returns the accessory name used in logs and config files
func (a AccessoryState) String() string {
	switch a {
	case AccessoryNone:
		return "none"
	case AccessoryLoading:
		return "loading"
	case AccessoryRefresh:
		return "refresh"
	case AccessoryCheckmark:
		return "checkmark"
	default:
		return fmt.Sprintf("AccessoryState(%d)", int(a))
	}
}

// ParseAccessoryState converts a name produced by String back into an AccessoryState
func ParseAccessoryState(s string) (AccessoryState, error) {
	switch s {
	case "none", "":
		return AccessoryNone, nil
	case "loading":
		return AccessoryLoading, nil
	case "refresh":
		return AccessoryRefresh, nil
	case "checkmark":
		return AccessoryCheckmark, nil
	default:
		return AccessoryNone, fmt.Errorf("unknown accessory state %q (expected none, loading, refresh or checkmark)", s)
	}
}

// DisplayKind identifies the variant of a DisplayState
type DisplayKind int

const (
	KindReadOnly DisplayKind = iota
	KindEditing
	KindLoading
	KindError
)

// String returns the variant name
func (k DisplayKind) String() string {
	switch k {
	case KindReadOnly:
		return "read-only"
	case KindEditing:
		return "editing"
	case KindLoading:
		return "loading"
	case KindError:
		return "error"
	default:
		return fmt.Sprintf("DisplayKind(%d)", int(k))
	}
}

// DisplayState is the display mode of a field. Only the Error variant
// carries a payload. The zero value is ReadOnly.
//
// DisplayState values are comparable with ==.
type DisplayState struct {
	kind    DisplayKind
	message string
}

// ReadOnly shows the content as static text with an edit affordance
func ReadOnly() DisplayState { return DisplayState{kind: KindReadOnly} }

// Editing allows input focus
func Editing() DisplayState { return DisplayState{kind: KindEditing} }

// Loading disables input and forces the spinner accessory
func Loading() DisplayState { return DisplayState{kind: KindLoading} }

// Error shows message below the field and suppresses the accessory
func Error(message string) DisplayState {
	return DisplayState{kind: KindError, message: message}
}

// Kind returns the variant
func (s DisplayState) Kind() DisplayKind {
	return s.kind
}

// Message returns the error message. It is empty for every variant but Error.
func (s DisplayState) Message() string {
	return s.message
}

// IsError reports whether s is the Error variant
func (s DisplayState) IsError() bool {
	return s.kind == KindError
}

func (s DisplayState) String() string {
	if s.kind == KindError {
		return fmt.Sprintf("error(%q)", s.message)
	}
	return s.kind.String()
}

// ParseDisplayState converts a variant name into a DisplayState.
// message is only used for "error".
func ParseDisplayState(name, message string) (DisplayState, error) {
	switch name {
	case "read-only", "readonly":
		return ReadOnly(), nil
	case "editing", "":
		return Editing(), nil
	case "loading":
		return Loading(), nil
	case "error":
		return Error(message), nil
	default:
		return DisplayState{}, fmt.Errorf("unknown display state %q (expected read-only, editing, loading or error)", name)
	}
}

// Revision selects which error/state API a field exposes.
//
// RevisionLegacy drives the error label with ShowError/ClearError and has
// no display-state machine. RevisionDisplayStates drives everything through
// SetDisplayState. The two are mutually exclusive on one field.
type Revision int

const (
	RevisionDisplayStates Revision = iota
	RevisionLegacy
)

func (r Revision) String() string {
	switch r {
	case RevisionDisplayStates:
		return "display-states"
	case RevisionLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("Revision(%d)", int(r))
	}
}

// ParseRevision converts a config value into a Revision
func ParseRevision(s string) (Revision, error) {
	switch s {
	case "display-states", "":
		return RevisionDisplayStates, nil
	case "legacy":
		return RevisionLegacy, nil
	default:
		return RevisionDisplayStates, fmt.Errorf("unknown revision %q (expected legacy or display-states)", s)
	}
}
