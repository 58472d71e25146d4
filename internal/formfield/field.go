package formfield

import (
	"errors"
	"fmt"

	"github.com/muurk/flatform/internal/logging"
)

// ErrRevisionMismatch is returned when an entry point belonging to the other
// revision is called, e.g. ShowError on a field built with
// RevisionDisplayStates.
var ErrRevisionMismatch = errors.New("operation not available in this field revision")

// Field is the state model of a flat form text field.
//
// A Field is not safe for concurrent use. It is meant to be owned by a
// single UI event loop.
type Field struct {
	text        string
	placeholder string

	// legacy error label
	errorMessage string
	hasError     bool

	accessory AccessoryState
	display   DisplayState
	// lastInput is the most recent non-error display state; it decides
	// how input behaves while an error is shown.
	lastInput DisplayState

	revision Revision
	editing  bool

	listener Listener
	onChange ChangeFunc
}

// Option configures a Field at construction
type Option func(*Field)

// WithText sets the initial text
func WithText(text string) Option {
	return func(f *Field) {
		f.text = text
	}
}

// WithPlaceholder sets the placeholder shown while the text is empty
func WithPlaceholder(placeholder string) Option {
	return func(f *Field) {
		f.placeholder = placeholder
	}
}

// WithRevision selects the legacy error API or the display-state machine
func WithRevision(r Revision) Option {
	return func(f *Field) {
		f.revision = r
	}
}

// WithDisplayState sets the initial display state. Ignored by legacy fields.
func WithDisplayState(s DisplayState) Option {
	return func(f *Field) {
		f.display = s
		if !s.IsError() {
			f.lastInput = s
		}
	}
}

// WithAccessory sets the initial accessory
func WithAccessory(a AccessoryState) Option {
	return func(f *Field) {
		f.accessory = a
	}
}

// WithListener registers the listener for text lifecycle and accessory taps
func WithListener(l Listener) Option {
	return func(f *Field) {
		f.listener = l
	}
}

// New creates a field. Without options the field is empty, editable and
// uses the display-state revision.
func New(opts ...Option) *Field {
	f := &Field{
		display:   Editing(),
		lastInput: Editing(),
		listener:  NopListener{},
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.listener == nil {
		f.listener = NopListener{}
	}
	if f.revision == RevisionLegacy {
		f.display = Editing()
		f.lastInput = Editing()
	}
	return f
}

// SetListener replaces the registered listener. A nil listener restores
// the default-allow behaviour.
func (f *Field) SetListener(l Listener) {
	if l == nil {
		l = NopListener{}
	}
	f.listener = l
}

// SetChangeFunc installs the re-render hook. Only one hook is kept.
func (f *Field) SetChangeFunc(fn ChangeFunc) {
	f.onChange = fn
}

func (f *Field) notify(kind ChangeKind) {
	if f.onChange != nil {
		f.onChange(f, kind)
	}
}

// Revision returns the revision the field was built with
func (f *Field) Revision() Revision {
	return f.revision
}

// Text returns the current content
func (f *Field) Text() string {
	return f.text
}

// SetText replaces the content. No validation is performed.
func (f *Field) SetText(value string) {
	f.text = value
	f.notify(ChangeText)
}

// Placeholder returns the configured placeholder
func (f *Field) Placeholder() string {
	return f.placeholder
}

// SetPlaceholder replaces the placeholder
func (f *Field) SetPlaceholder(value string) {
	f.placeholder = value
	f.notify(ChangePlaceholder)
}

// VisiblePlaceholder returns the placeholder when it is rendered, which is
// whenever the text is empty.
func (f *Field) VisiblePlaceholder() (string, bool) {
	if f.text != "" || f.placeholder == "" {
		return "", false
	}
	return f.placeholder, true
}

// AccessoryState returns the caller-selected accessory
func (f *Field) AccessoryState() AccessoryState {
	return f.accessory
}

// SetAccessoryState replaces the accessory selection
func (f *Field) SetAccessoryState(a AccessoryState) {
	if f.accessory != a {
		logging.LogTransition("accessory", f.accessory, a)
	}
	f.accessory = a
	f.notify(ChangeAccessory)
}

// ActiveAccessory returns the accessory that is actually rendered.
// Loading forces the spinner and Error suppresses the icon; otherwise the
// selected accessory is shown.
func (f *Field) ActiveAccessory() AccessoryState {
	if f.revision == RevisionLegacy {
		return f.accessory
	}
	switch f.display.Kind() {
	case KindLoading:
		return AccessoryLoading
	case KindError:
		return AccessoryNone
	default:
		return f.accessory
	}
}

// DisplayState returns the current display state. Legacy fields always
// report Editing.
func (f *Field) DisplayState() DisplayState {
	return f.display
}

// SetDisplayState moves the field into s. Every transition is accepted.
//
// Entering Error while Loading replaces Loading: the error is shown at once
// and input behaves as it did before Loading was entered.
// Entering a state that does not allow focus ends an active edit session
// without consulting ShouldEndEditing. DidEndEditing runs before this call
// returns, so a listener that sets another display state from it wins: the
// field is left in the listener's state, not s.
func (f *Field) SetDisplayState(s DisplayState) error {
	if f.revision != RevisionDisplayStates {
		return fmt.Errorf("set display state %s: %w", s, ErrRevisionMismatch)
	}

	from := f.display
	f.display = s
	if !s.IsError() {
		f.lastInput = s
	}

	logging.LogTransition("display", from, s)

	if f.editing && !f.CanFocus() {
		f.editing = false
		f.listener.DidEndEditing(f)
		f.notify(ChangeEditing)
	}

	f.notify(ChangeDisplayState)
	return nil
}

// ShowError displays message in the error region. Legacy revision only.
func (f *Field) ShowError(message string) error {
	if f.revision != RevisionLegacy {
		return fmt.Errorf("show error: %w", ErrRevisionMismatch)
	}
	f.errorMessage = message
	f.hasError = true
	f.notify(ChangeError)
	return nil
}

// ClearError hides the error region. Legacy revision only.
func (f *Field) ClearError() error {
	if f.revision != RevisionLegacy {
		return fmt.Errorf("clear error: %w", ErrRevisionMismatch)
	}
	f.errorMessage = ""
	f.hasError = false
	f.notify(ChangeError)
	return nil
}

// RenderedError returns the error text currently shown below the field
func (f *Field) RenderedError() (string, bool) {
	if f.revision == RevisionLegacy {
		return f.errorMessage, f.hasError
	}
	if f.display.IsError() {
		return f.display.Message(), true
	}
	return "", false
}

// inputState is the display state that governs input. While an error is
// shown this is the state that preceded it.
func (f *Field) inputState() DisplayState {
	if f.revision == RevisionLegacy {
		return Editing()
	}
	if f.display.IsError() {
		return f.lastInput
	}
	return f.display
}

// CanFocus reports whether an edit session may start
func (f *Field) CanFocus() bool {
	return f.inputState().Kind() == KindEditing
}

// ShowsEditAffordance reports whether the read-only edit marker is shown
func (f *Field) ShowsEditAffordance() bool {
	return f.inputState().Kind() == KindReadOnly
}

// IsEditing reports whether an edit session is active
func (f *Field) IsEditing() bool {
	return f.editing
}

// BeginEditing starts an edit session. It returns false when focus is not
// permitted in the current state or the listener vetoes it.
func (f *Field) BeginEditing() bool {
	if f.editing {
		return true
	}
	if !f.CanFocus() {
		return false
	}
	if !f.listener.ShouldBeginEditing(f) {
		return false
	}
	f.editing = true
	f.listener.DidBeginEditing(f)
	f.notify(ChangeEditing)
	return true
}

// EndEditing ends the edit session unless the listener vetoes it
func (f *Field) EndEditing() bool {
	if !f.editing {
		return true
	}
	if !f.listener.ShouldEndEditing(f) {
		return false
	}
	f.editing = false
	f.listener.DidEndEditing(f)
	f.notify(ChangeEditing)
	return true
}

// ReplaceText replaces the runes in r with replacement, as typed by the
// user. Out of range values are clamped to the text. The change is
// rejected outside an edit session or when the listener vetoes it.
func (f *Field) ReplaceText(r Range, replacement string) bool {
	if !f.editing {
		return false
	}

	runes := []rune(f.text)
	r = clampRange(r, len(runes))

	if !f.listener.ShouldChangeText(f, r, replacement) {
		return false
	}

	var b []rune
	b = append(b, runes[:r.Location]...)
	b = append(b, []rune(replacement)...)
	b = append(b, runes[r.Location+r.Length:]...)
	f.text = string(b)

	f.listener.DidChangeText(f)
	f.notify(ChangeText)
	return true
}

// Return forwards a return-key press. It reports the listener's decision;
// outside an edit session it is false.
func (f *Field) Return() bool {
	if !f.editing {
		return false
	}
	return f.listener.ShouldReturn(f)
}

// TapAccessory notifies the listener that the active accessory was tapped.
// Nothing happens when no accessory is shown or the field is loading.
// The field state is never changed by a tap.
func (f *Field) TapAccessory() bool {
	kind := f.ActiveAccessory()
	if kind == AccessoryNone {
		return false
	}
	if f.revision == RevisionDisplayStates && f.display.Kind() == KindLoading {
		return false
	}
	f.listener.AccessoryTapped(f, kind)
	return true
}

func clampRange(r Range, n int) Range {
	if r.Location < 0 {
		r.Location = 0
	}
	if r.Location > n {
		r.Location = n
	}
	if r.Length < 0 {
		r.Length = 0
	}
	if r.Length > n-r.Location {
		r.Length = n - r.Location
	}
	return r
}
