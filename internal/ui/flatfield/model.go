package flatfield

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/flatform/internal/formfield"
	"github.com/muurk/flatform/internal/logging"
	"github.com/muurk/flatform/internal/ui"
)

// Glyphs drawn in the accessory cell
const (
	CheckmarkGlyph = "✓"
	RefreshGlyph   = "↻"
	EditGlyph      = "✎"
)

// MinWidth is the narrowest field that can be drawn
const MinWidth = 8

// PasteMsg carries clipboard text to insert at the cursor while editing
type PasteMsg string

// readClipboard is the command bound to the paste key
func readClipboard() tea.Msg {
	text, err := clipboard.ReadAll()
	if err != nil {
		logging.Debug("Clipboard read failed", zap.Error(err))
		return nil
	}
	return PasteMsg(text)
}

// pending records which parts of the field changed since the last Sync.
// It is shared by every copy of a Model.
type pending struct {
	text      bool
	editing   bool
	accessory bool
}

// Model renders a formfield.Field and turns key presses into calls on it
type Model struct {
	Field   *formfield.Field
	Input   textinput.Model
	Spinner spinner.Model
	Theme   ui.Theme
	Width   int
	Keys    KeyMap

	changes *pending
	ticking bool
}

// New creates a field component drawn with theme at the given width.
// The component installs itself as the field's change hook.
func New(field *formfield.Field, theme ui.Theme, width int) Model {
	if width < MinWidth {
		width = MinWidth
	}

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	in := textinput.New()
	in.Prompt = ""
	// paste is read by the field so it goes through the listener
	in.KeyMap.Paste.SetEnabled(false)

	m := Model{
		Field:   field,
		Input:   in,
		Spinner: s,
		Theme:   theme,
		Width:   width,
		Keys:    DefaultKeyMap(),
		changes: &pending{text: true, editing: true, accessory: true},
	}
	m.applyTheme()

	changes := m.changes
	field.SetChangeFunc(func(_ *formfield.Field, kind formfield.ChangeKind) {
		switch kind {
		case formfield.ChangeText:
			changes.text = true
		case formfield.ChangeEditing:
			changes.editing = true
		case formfield.ChangeAccessory, formfield.ChangeDisplayState:
			changes.accessory = true
		}
	})

	m, _ = m.Sync()
	return m
}

// Init starts the spinner when the field is created loading
func (m Model) Init() tea.Cmd {
	if m.ticking {
		return m.Spinner.Tick
	}
	return nil
}

// Update handles key presses and spinner ticks
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.Field.ActiveAccessory() != formfield.AccessoryLoading {
			m.ticking = false
			return m, nil
		}
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		logging.LogKey("field", msg.String())
		cmd = m.handleKey(msg)

	case PasteMsg:
		if m.Field.IsEditing() && msg != "" {
			cmd = m.applyInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(string(msg)), Paste: true})
		}

	default:
		if m.Field.IsEditing() {
			cmd = m.applyInput(msg)
		}
	}

	m, syncCmd := m.Sync()
	return m, tea.Batch(cmd, syncCmd)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	editing := m.Field.IsEditing()

	switch {
	case editing && key.Matches(msg, m.Keys.Return):
		if m.Field.Return() {
			m.Field.EndEditing()
		}
	case editing && key.Matches(msg, m.Keys.Done):
		m.Field.EndEditing()
	case key.Matches(msg, m.Keys.Tap):
		m.Field.TapAccessory()
	case editing && key.Matches(msg, m.Keys.Paste):
		return readClipboard
	case editing:
		return m.applyInput(msg)
	case key.Matches(msg, m.Keys.Edit):
		m.Field.BeginEditing()
	}
	return nil
}

// applyInput lets the text input apply msg to a copy of itself and forwards
// any resulting edit to the field. A vetoed edit leaves the input untouched.
// Every message reaching the input while editing goes through here.
func (m *Model) applyInput(msg tea.Msg) tea.Cmd {
	before := m.Input.Value()
	next, cmd := m.Input.Update(msg)
	after := next.Value()

	if after != before {
		r, replacement := diffRange(before, after)
		if !m.Field.ReplaceText(r, replacement) {
			return nil
		}
	}

	m.Input = next
	return cmd
}

// diffRange returns the rune range of before that was replaced and the text
// that replaced it to turn before into after.
func diffRange(before, after string) (formfield.Range, string) {
	b, a := []rune(before), []rune(after)

	prefix := 0
	for prefix < len(b) && prefix < len(a) && b[prefix] == a[prefix] {
		prefix++
	}

	suffix := 0
	for suffix < len(b)-prefix && suffix < len(a)-prefix &&
		b[len(b)-1-suffix] == a[len(a)-1-suffix] {
		suffix++
	}

	return formfield.Range{Location: prefix, Length: len(b) - prefix - suffix},
		string(a[prefix : len(a)-suffix])
}

// Sync brings the text input, focus and spinner in line with the field.
// Call it after changing the field from outside Update.
func (m Model) Sync() (Model, tea.Cmd) {
	var cmds []tea.Cmd

	if m.changes.text {
		if m.Input.Value() != m.Field.Text() {
			m.Input.SetValue(m.Field.Text())
		}
		m.changes.text = false
	}
	m.Input.Placeholder = m.Field.Placeholder()

	if m.changes.editing {
		if m.Field.IsEditing() && !m.Input.Focused() {
			cmds = append(cmds, m.Input.Focus())
		} else if !m.Field.IsEditing() && m.Input.Focused() {
			m.Input.Blur()
		}
		m.changes.editing = false
	}

	if m.changes.accessory {
		if m.Field.ActiveAccessory() == formfield.AccessoryLoading && !m.ticking {
			m.ticking = true
			cmds = append(cmds, m.Spinner.Tick)
		}
		m.changes.accessory = false
	}

	return m, tea.Batch(cmds...)
}

// SetWidth sets the number of columns the field occupies
func (m *Model) SetWidth(width int) {
	if width < MinWidth {
		width = MinWidth
	}
	m.Width = width
	m.applyTheme()
}

// SetTextColor sets the colour of the field text
func (m *Model) SetTextColor(c lipgloss.Color) {
	m.Theme.Text = c
	m.applyTheme()
}

// SetSeparatorColor sets the colour of the line under the field
func (m *Model) SetSeparatorColor(c lipgloss.Color) {
	m.Theme.Separator = c
}

// SetErrorColor sets the colour of the error message
func (m *Model) SetErrorColor(c lipgloss.Color) {
	m.Theme.Error = c
}

// SetBackgroundColor sets the background behind the text
func (m *Model) SetBackgroundColor(c lipgloss.Color) {
	m.Theme.Background = c
	m.applyTheme()
}

func (m *Model) applyTheme() {
	m.Input.TextStyle = m.textStyle()
	m.Input.PlaceholderStyle = m.placeholderStyle()
	m.Input.Width = m.Width - 3 // accessory cell, gap and cursor
	m.Spinner.Style = lipgloss.NewStyle().Foreground(m.Theme.Accessory)
}

func (m Model) textStyle() lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(m.Theme.Text)
	if m.Theme.Background != "" {
		s = s.Background(m.Theme.Background)
	}
	return s
}

func (m Model) placeholderStyle() lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(m.Theme.Placeholder)
	if m.Theme.Background != "" {
		s = s.Background(m.Theme.Background)
	}
	return s
}

// View renders the field: the text line with its accessory, the separator
// and, when shown, the error message.
func (m Model) View() string {
	accessory := m.accessoryView()
	contentWidth := m.Width - 1 - lipgloss.Width(accessory)

	var content string
	switch {
	case m.Field.IsEditing():
		content = m.Input.View()
	case m.Field.Text() != "":
		content = m.textStyle().MaxWidth(contentWidth).Render(m.Field.Text())
	default:
		if placeholder, ok := m.Field.VisiblePlaceholder(); ok {
			content = m.placeholderStyle().MaxWidth(contentWidth).Render(placeholder)
		}
	}

	pad := contentWidth - lipgloss.Width(content)
	if pad < 0 {
		pad = 0
	}
	line := content + strings.Repeat(" ", pad) + " " + accessory

	sepColor := m.Theme.Separator
	if m.Field.IsEditing() && m.Theme.SeparatorFocused != "" {
		sepColor = m.Theme.SeparatorFocused
	}
	separator := lipgloss.NewStyle().Foreground(sepColor).Render(strings.Repeat("─", m.Width))

	rows := []string{line, separator}
	if msg, ok := m.Field.RenderedError(); ok {
		rows = append(rows, lipgloss.NewStyle().
			Foreground(m.Theme.Error).
			Width(m.Width).
			Render(msg))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// accessoryView draws the accessory cell. A read-only field keeps its edit
// marker in front of any selected accessory.
func (m Model) accessoryView() string {
	style := lipgloss.NewStyle().Foreground(m.Theme.Accessory)

	var icon string
	switch m.Field.ActiveAccessory() {
	case formfield.AccessoryLoading:
		icon = m.Spinner.View()
	case formfield.AccessoryRefresh:
		icon = style.Render(RefreshGlyph)
	case formfield.AccessoryCheckmark:
		icon = lipgloss.NewStyle().Foreground(m.Theme.Checkmark).Render(CheckmarkGlyph)
	}

	if m.Field.ShowsEditAffordance() {
		edit := style.Render(EditGlyph)
		if icon == "" {
			return edit
		}
		return edit + " " + icon
	}
	if icon == "" {
		return " "
	}
	return icon
}
