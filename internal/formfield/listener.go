package formfield

// Range addresses a run of runes in the field text.
// Location and Length count runes, not bytes.
type Range struct {
	Location int
	Length   int
}

// Listener receives the outbound notifications of a field. All methods are
// invoked synchronously on the caller's goroutine.
//
// The Should* methods may veto the pending operation by returning false.
// Embed NopListener to only implement the methods you care about.
type Listener interface {
	ShouldBeginEditing(f *Field) bool
	DidBeginEditing(f *Field)
	ShouldEndEditing(f *Field) bool
	DidEndEditing(f *Field)
	ShouldChangeText(f *Field, r Range, replacement string) bool
	DidChangeText(f *Field)
	ShouldReturn(f *Field) bool
	AccessoryTapped(f *Field, kind AccessoryState)
}

// NopListener allows everything and ignores every notification
type NopListener struct{}

func (NopListener) ShouldBeginEditing(*Field) bool { return true }
func (NopListener) DidBeginEditing(*Field) {}
func (NopListener) ShouldEndEditing(*Field) bool { return true }
func (NopListener) DidEndEditing(*Field) {}
func (NopListener) ShouldChangeText(*Field, Range, string) bool { return true }
func (NopListener) DidChangeText(*Field) {}
func (NopListener) ShouldReturn(*Field) bool { return true }
func (NopListener) AccessoryTapped(*Field, AccessoryState) {}

var _ Listener = NopListener{}

// ChangeKind tells the presentation adapter what needs re-rendering
type ChangeKind int

const (
	ChangeText ChangeKind = iota
	ChangePlaceholder
	ChangeAccessory
	ChangeDisplayState
	ChangeError
	ChangeEditing
)

func (c ChangeKind) String() string {
	switch c {
	case ChangeText:
		return "text"
	case ChangePlaceholder:
		return "placeholder"
	case ChangeAccessory:
		return "accessory"
	case ChangeDisplayState:
		return "display_state"
	case ChangeError:
		return "error"
	case ChangeEditing:
		return "editing"
	default:
		return "unknown"
	}
}

// ChangeFunc is the re-render signal hook installed by a presentation adapter
type ChangeFunc func(f *Field, kind ChangeKind)
