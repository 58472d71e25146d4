package demo

import (
	"fmt"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/muurk/flatform/internal/formfield"
	"github.com/muurk/flatform/internal/logging"
)

// Listener receives the demo field's notifications. It logs every event,
// enforces the character limit while typing and validates the value when
// editing ends.
type Listener struct {
	Name      string
	CharLimit int
	Rules     []Rule // checked when editing ends

	// Status is a one-line description of the last notification
	Status string

	// set while an error raised by Rules is shown
	invalid bool
}

// NewListener creates a listener for the field called name
func NewListener(name string, charLimit int, required bool) *Listener {
	l := &Listener{Name: name, CharLimit: charLimit}
	if required {
		l.Rules = append(l.Rules, Required(name))
	}
	l.Rules = append(l.Rules, MaxLength(name, charLimit))
	return l
}

func (l *Listener) event(name string, fields ...zap.Field) {
	logging.LogFieldEvent(l.Name, name, fields...)
	l.Status = name
}

func (l *Listener) ShouldBeginEditing(f *formfield.Field) bool {
	logging.LogFieldEvent(l.Name, "should begin editing")
	return true
}

func (l *Listener) DidBeginEditing(f *formfield.Field) {
	l.event("did begin editing")
}

func (l *Listener) ShouldEndEditing(f *formfield.Field) bool {
	logging.LogFieldEvent(l.Name, "should end editing")
	return true
}

func (l *Listener) DidEndEditing(f *formfield.Field) {
	l.event("did end editing", zap.String("text", f.Text()))

	if err := Validate(f.Text(), l.Rules...); err != nil {
		l.showError(f, err.Error())
	}
}

func (l *Listener) ShouldChangeText(f *formfield.Field, r formfield.Range, replacement string) bool {
	if l.CharLimit <= 0 {
		return true
	}
	length := utf8.RuneCountInString(f.Text()) - r.Length + utf8.RuneCountInString(replacement)
	if length > l.CharLimit {
		l.event("change rejected", zap.Int("limit", l.CharLimit))
		l.Status = fmt.Sprintf("limit of %d characters reached", l.CharLimit)
		return false
	}
	return true
}

func (l *Listener) DidChangeText(f *formfield.Field) {
	l.event("did change text", zap.String("text", f.Text()))
	if l.invalid {
		l.clearError(f)
	}
}

func (l *Listener) ShouldReturn(f *formfield.Field) bool {
	l.event("should return")
	return true
}

func (l *Listener) AccessoryTapped(f *formfield.Field, kind formfield.AccessoryState) {
	l.event("did tap "+kind.String(), zap.Stringer("accessory", kind))
}

// showError puts message under the field using whichever error API the
// field's revision provides.
func (l *Listener) showError(f *formfield.Field, message string) {
	var err error
	if f.Revision() == formfield.RevisionLegacy {
		err = f.ShowError(message)
	} else {
		err = f.SetDisplayState(formfield.Error(message))
	}
	if err != nil {
		logging.Warn("Failed to show validation error", zap.Error(err))
		return
	}
	l.invalid = true
}

func (l *Listener) clearError(f *formfield.Field) {
	var err error
	if f.Revision() == formfield.RevisionLegacy {
		err = f.ClearError()
	} else if f.DisplayState().IsError() {
		err = f.SetDisplayState(formfield.Editing())
	}
	if err != nil {
		logging.Warn("Failed to clear validation error", zap.Error(err))
	}
	l.invalid = false
}
