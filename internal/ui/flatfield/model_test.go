package flatfield

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-cmp/cmp"

	"github.com/muurk/flatform/internal/formfield"
	"github.com/muurk/flatform/internal/ui"
)

type listener struct {
	formfield.NopListener

	vetoChange bool
	vetoReturn bool
	taps       []formfield.AccessoryState
}

func (l *listener) ShouldChangeText(*formfield.Field, formfield.Range, string) bool {
	return !l.vetoChange
}

func (l *listener) ShouldReturn(*formfield.Field) bool {
	return !l.vetoReturn
}

func (l *listener) AccessoryTapped(_ *formfield.Field, kind formfield.AccessoryState) {
	l.taps = append(l.taps, kind)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func newModel(opts ...formfield.Option) (Model, *formfield.Field) {
	f := formfield.New(opts...)
	return New(f, ui.DefaultTheme(), 30), f
}

func TestView_PlaceholderAndText(t *testing.T) {
	m, f := newModel(formfield.WithPlaceholder("Group Name"))

	if !strings.Contains(m.View(), "Group Name") {
		t.Errorf("View() should show the placeholder:\n%s", m.View())
	}

	f.SetText("William")
	m, _ = m.Sync()
	view := m.View()
	if !strings.Contains(view, "William") {
		t.Errorf("View() should show the text:\n%s", view)
	}
	if strings.Contains(view, "Group Name") {
		t.Errorf("View() should hide the placeholder:\n%s", view)
	}
}

func TestView_Accessory(t *testing.T) {
	tests := []struct {
		name    string
		opts    []formfield.Option
		want    string
		notWant string
	}{
		{
			name: "checkmark",
			opts: []formfield.Option{formfield.WithAccessory(formfield.AccessoryCheckmark)},
			want: CheckmarkGlyph,
		},
		{
			name: "refresh",
			opts: []formfield.Option{formfield.WithAccessory(formfield.AccessoryRefresh)},
			want: RefreshGlyph,
		},
		{
			name: "read-only affordance",
			opts: []formfield.Option{formfield.WithDisplayState(formfield.ReadOnly())},
			want: EditGlyph,
		},
		{
			name: "read-only keeps affordance with accessory",
			opts: []formfield.Option{
				formfield.WithAccessory(formfield.AccessoryCheckmark),
				formfield.WithDisplayState(formfield.ReadOnly()),
			},
			want: EditGlyph + " " + CheckmarkGlyph,
		},
		{
			name: "error hides accessory",
			opts: []formfield.Option{
				formfield.WithAccessory(formfield.AccessoryCheckmark),
				formfield.WithDisplayState(formfield.Error("Name is taken")),
			},
			want:    "Name is taken",
			notWant: CheckmarkGlyph,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newModel(tt.opts...)
			view := m.View()
			if !strings.Contains(view, tt.want) {
				t.Errorf("View() missing %q:\n%s", tt.want, view)
			}
			if tt.notWant != "" && strings.Contains(view, tt.notWant) {
				t.Errorf("View() should not contain %q:\n%s", tt.notWant, view)
			}
		})
	}
}

func TestView_ReadOnlyAccessoryFitsWidth(t *testing.T) {
	m, _ := newModel(
		formfield.WithText(strings.Repeat("W", 60)),
		formfield.WithAccessory(formfield.AccessoryRefresh),
		formfield.WithDisplayState(formfield.ReadOnly()),
	)

	first := strings.Split(m.View(), "\n")[0]
	if !strings.Contains(first, EditGlyph) || !strings.Contains(first, RefreshGlyph) {
		t.Errorf("first line should carry both glyphs: %q", first)
	}
	if w := lipgloss.Width(first); w != m.Width {
		t.Errorf("first line is %d wide, want %d", w, m.Width)
	}
}

func TestView_LongErrorWraps(t *testing.T) {
	m, f := newModel(formfield.WithRevision(formfield.RevisionLegacy))
	_ = f.ShowError("This is a long error message that will not fit on one line")

	lines := strings.Split(m.View(), "\n")
	if len(lines) < 4 {
		t.Errorf("expected the error to wrap below the separator, got %d lines", len(lines))
	}
	for _, l := range lines {
		if w := len([]rune(l)); w > m.Width {
			t.Errorf("line %q is %d wide, want at most %d", l, w, m.Width)
		}
	}
}

func TestUpdate_EditSession(t *testing.T) {
	m, f := newModel(formfield.WithText("Will"))

	m = press(m, runes("e"))
	if !f.IsEditing() || !m.Input.Focused() {
		t.Fatal("e should begin editing and focus the input")
	}

	m = press(m, runes("i"), runes("a"), runes("m"))
	if f.Text() != "William" {
		t.Errorf("Text() = %q, want William", f.Text())
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyBackspace})
	if f.Text() != "Willia" || m.Input.Value() != "Willia" {
		t.Errorf("after backspace Text() = %q, input = %q", f.Text(), m.Input.Value())
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if f.IsEditing() || m.Input.Focused() {
		t.Error("enter should end editing")
	}
}

func TestUpdate_VetoedChangeRollsBackInput(t *testing.T) {
	l := &listener{vetoChange: true}
	m, f := newModel(formfield.WithText("abc"), formfield.WithListener(l))

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter}, runes("d"))

	if f.Text() != "abc" {
		t.Errorf("Text() = %q, want abc", f.Text())
	}
	if m.Input.Value() != "abc" {
		t.Errorf("input value = %q, want abc", m.Input.Value())
	}
}

func TestUpdate_PasteGoesThroughField(t *testing.T) {
	tests := []struct {
		name  string
		veto  bool
		paste tea.Msg
		want  string
	}{
		{name: "clipboard", paste: PasteMsg("xyz"), want: "Williamxyz"},
		{name: "bracketed", paste: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("xyz"), Paste: true}, want: "Williamxyz"},
		{name: "clipboard vetoed", veto: true, paste: PasteMsg("xyz"), want: "William"},
		{name: "bracketed vetoed", veto: true, paste: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("xyz"), Paste: true}, want: "William"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &listener{vetoChange: tt.veto}
			m, f := newModel(formfield.WithText("William"), formfield.WithListener(l))

			m = press(m, tea.KeyMsg{Type: tea.KeyEnter}, tt.paste)

			if f.Text() != tt.want {
				t.Errorf("Text() = %q, want %q", f.Text(), tt.want)
			}
			if m.Input.Value() != f.Text() {
				t.Errorf("input value = %q, field text = %q", m.Input.Value(), f.Text())
			}

			m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
			if !strings.Contains(m.View(), tt.want) {
				t.Errorf("View() after esc missing %q:\n%s", tt.want, m.View())
			}
		})
	}
}

func TestUpdate_PasteIgnoredOutsideEditing(t *testing.T) {
	m, f := newModel(formfield.WithText("William"))

	m = press(m, PasteMsg("xyz"))

	if f.Text() != "William" || m.Input.Value() != "William" {
		t.Errorf("Text() = %q, input = %q, want William", f.Text(), m.Input.Value())
	}
}

func TestUpdate_PasteKeyReadsClipboard(t *testing.T) {
	m, f := newModel(formfield.WithText("William"))
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	if cmd == nil {
		t.Error("ctrl+v while editing should return the clipboard command")
	}
	if f.Text() != "William" || m.Input.Value() != "William" {
		t.Errorf("ctrl+v alone changed the text: field %q, input %q", f.Text(), m.Input.Value())
	}
}

func TestUpdate_ReturnVetoKeepsEditing(t *testing.T) {
	l := &listener{vetoReturn: true}
	m, f := newModel(formfield.WithListener(l))

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyEnter})
	if !f.IsEditing() {
		t.Error("a vetoed return should keep the edit session")
	}

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if f.IsEditing() {
		t.Error("esc should end editing")
	}
}

func TestUpdate_NoFocusStates(t *testing.T) {
	for _, s := range []formfield.DisplayState{formfield.ReadOnly(), formfield.Loading()} {
		t.Run(s.String(), func(t *testing.T) {
			m, f := newModel(formfield.WithDisplayState(s))
			press(m, runes("e"))
			if f.IsEditing() {
				t.Errorf("%v should not allow editing", s)
			}
		})
	}
}

func TestUpdate_TapAccessory(t *testing.T) {
	l := &listener{}
	m, f := newModel(formfield.WithListener(l), formfield.WithAccessory(formfield.AccessoryCheckmark))

	tap := tea.KeyMsg{Type: tea.KeyCtrlT}
	m = press(m, tap)

	_ = f.SetDisplayState(formfield.Loading())
	m, _ = m.Sync()
	press(m, tap)

	if diff := cmp.Diff([]formfield.AccessoryState{formfield.AccessoryCheckmark}, l.taps); diff != "" {
		t.Errorf("taps mismatch (-want +got):\n%s", diff)
	}
}

func TestSync_ExternalTextWhileEditing(t *testing.T) {
	m, f := newModel()
	m = press(m, runes("e"))

	f.SetText("reset")
	m, _ = m.Sync()
	if m.Input.Value() != "reset" {
		t.Errorf("input value = %q, want reset", m.Input.Value())
	}
}

func TestSpinner_TicksOnlyWhileLoading(t *testing.T) {
	m, f := newModel(formfield.WithDisplayState(formfield.Loading()))
	if m.Init() == nil {
		t.Fatal("Init() should start the spinner for a loading field")
	}

	tick := m.Spinner.Tick()
	if _, cmd := m.Update(tick); cmd == nil {
		t.Error("spinner should keep ticking while loading")
	}

	_ = f.SetDisplayState(formfield.Editing())
	m, _ = m.Sync()
	m, cmd := m.Update(tick)
	if cmd != nil {
		t.Error("spinner should stop once loading ends")
	}

	f.SetAccessoryState(formfield.AccessoryLoading)
	if _, cmd := m.Sync(); cmd == nil {
		t.Error("selecting the loading accessory should restart the spinner")
	}
}

func TestThemeSetters(t *testing.T) {
	m, _ := newModel()
	m.SetTextColor("#111111")
	m.SetSeparatorColor("#222222")
	m.SetErrorColor("#333333")
	m.SetBackgroundColor("#444444")

	want := ui.DefaultTheme()
	want.Text, want.Separator, want.Error, want.Background = "#111111", "#222222", "#333333", "#444444"
	if diff := cmp.Diff(want, m.Theme); diff != "" {
		t.Errorf("theme mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffRange(t *testing.T) {
	tests := []struct {
		name      string
		before    string
		after     string
		wantRange formfield.Range
		wantRepl  string
	}{
		{name: "append", before: "Will", after: "William", wantRange: formfield.Range{Location: 4}, wantRepl: "iam"},
		{name: "delete last", before: "abc", after: "ab", wantRange: formfield.Range{Location: 2, Length: 1}},
		{name: "insert middle", before: "ac", after: "abc", wantRange: formfield.Range{Location: 1}, wantRepl: "b"},
		{name: "clear", before: "abc", after: "", wantRange: formfield.Range{Location: 0, Length: 3}},
		{name: "repeated rune", before: "aa", after: "aaa", wantRange: formfield.Range{Location: 2}, wantRepl: "a"},
		{name: "multibyte", before: "café", after: "cafe", wantRange: formfield.Range{Location: 3, Length: 1}, wantRepl: "e"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, repl := diffRange(tt.before, tt.after)
			if r != tt.wantRange || repl != tt.wantRepl {
				t.Errorf("diffRange(%q, %q) = %v, %q, want %v, %q",
					tt.before, tt.after, r, repl, tt.wantRange, tt.wantRepl)
			}
		})
	}
}
