package demo

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/flatform/internal/config"
	"github.com/muurk/flatform/internal/formfield"
	"github.com/muurk/flatform/internal/logging"
	"github.com/muurk/flatform/internal/ui"
	"github.com/muurk/flatform/internal/ui/flatfield"
)

// errorStep is one press of the error button: show message, or clear
type errorStep struct {
	message string
	clear   bool
}

// buildErrorSteps alternates the messages with clears: m0, clear, m1,
// clear, ..., mN. The sequence wraps around after the last message.
func buildErrorSteps(messages []string) []errorStep {
	var steps []errorStep
	for i, msg := range messages {
		if i > 0 {
			steps = append(steps, errorStep{clear: true})
		}
		steps = append(steps, errorStep{message: msg})
	}
	return steps
}

// nextAccessory follows the demo order checkmark, loading, refresh, none
func nextAccessory(a formfield.AccessoryState) formfield.AccessoryState {
	switch a {
	case formfield.AccessoryNone:
		return formfield.AccessoryCheckmark
	case formfield.AccessoryCheckmark:
		return formfield.AccessoryLoading
	case formfield.AccessoryLoading:
		return formfield.AccessoryRefresh
	default:
		return formfield.AccessoryNone
	}
}

// nextDisplayState follows read-only, editing, loading, error, read-only
func nextDisplayState(s formfield.DisplayState, message string) formfield.DisplayState {
	switch s.Kind() {
	case formfield.KindReadOnly:
		return formfield.Editing()
	case formfield.KindEditing:
		return formfield.Loading()
	case formfield.KindLoading:
		return formfield.Error(message)
	default:
		return formfield.ReadOnly()
	}
}

// Model is the demo screen: one field and buttons that cycle its states
type Model struct {
	Field    flatfield.Model
	Listener *Listener
	Label    string

	Keys KeyMap
	Help help.Model

	Width  int
	Height int

	errorSteps []errorStep
	errorStep  int
}

// New builds the demo screen from cfg
func New(cfg *config.Config) (Model, error) {
	opts, err := cfg.FieldOptions()
	if err != nil {
		return Model{}, fmt.Errorf("failed to build field: %w", err)
	}
	theme, err := ui.ThemeFromConfig(cfg.Theme)
	if err != nil {
		return Model{}, fmt.Errorf("failed to load theme: %w", err)
	}

	label := cfg.Field.Placeholder
	if label == "" {
		label = "Field"
	}

	listener := NewListener(label, cfg.Field.CharLimit, cfg.Field.Required)
	field := formfield.New(append(opts, formfield.WithListener(listener))...)

	var messages []string
	if cfg.Demo != nil {
		messages = cfg.Demo.ErrorMessages
	}

	width, height := ui.GetTerminalSize()

	m := Model{
		Field:      flatfield.New(field, theme, cfg.Field.Width),
		Listener:   listener,
		Label:      label,
		Keys:       DefaultKeyMap(),
		Help:       help.New(),
		Width:      width,
		Height:     height,
		errorSteps: buildErrorSteps(messages),
	}

	logging.Info("Demo started",
		zap.String("field", label),
		zap.Stringer("revision", field.Revision()),
	)
	return m, nil
}

// Init starts the field's spinner when it begins loading
func (m Model) Init() tea.Cmd {
	return m.Field.Init()
}

// Update routes keys to the demo buttons or to the field
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// letters belong to the field while it is being edited
		if !m.Field.Field.IsEditing() {
			switch {
			case key.Matches(msg, m.Keys.Quit):
				return m, tea.Quit
			case key.Matches(msg, m.Keys.Help):
				m.Help.ShowAll = !m.Help.ShowAll
				return m, nil
			case key.Matches(msg, m.Keys.Accessory):
				logging.LogKey("demo", msg.String())
				m.CycleAccessory()
				return m.sync()
			case key.Matches(msg, m.Keys.Display):
				logging.LogKey("demo", msg.String())
				m.CycleDisplayState()
				return m.sync()
			case key.Matches(msg, m.Keys.Error):
				logging.LogKey("demo", msg.String())
				m.CycleError()
				return m.sync()
			}
		}
	}

	var cmd tea.Cmd
	m.Field, cmd = m.Field.Update(msg)
	return m, cmd
}

func (m Model) sync() (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.Field, cmd = m.Field.Sync()
	return m, cmd
}

// CycleAccessory selects the next accessory
func (m *Model) CycleAccessory() {
	f := m.Field.Field
	f.SetAccessoryState(nextAccessory(f.AccessoryState()))
	m.Listener.Status = "accessory: " + f.AccessoryState().String()
}

// CycleDisplayState moves the field to the next display state
func (m *Model) CycleDisplayState() {
	f := m.Field.Field
	if f.Revision() != formfield.RevisionDisplayStates {
		m.Listener.Status = "display states need the display-states revision"
		return
	}

	message := "The error message would go here."
	if len(m.errorSteps) > 0 {
		message = m.errorSteps[len(m.errorSteps)-1].message
	}

	next := nextDisplayState(f.DisplayState(), message)
	if err := f.SetDisplayState(next); err != nil {
		m.Listener.Status = err.Error()
		return
	}
	m.Listener.Status = "display state: " + next.String()
}

// CycleError runs the next step of the error sequence
func (m *Model) CycleError() {
	if len(m.errorSteps) == 0 {
		m.Listener.Status = "no error messages configured"
		return
	}

	step := m.errorSteps[m.errorStep]
	m.errorStep = (m.errorStep + 1) % len(m.errorSteps)

	f := m.Field.Field
	var err error
	switch {
	case f.Revision() == formfield.RevisionLegacy && step.clear:
		err = f.ClearError()
	case f.Revision() == formfield.RevisionLegacy:
		err = f.ShowError(step.message)
	case step.clear:
		err = f.SetDisplayState(formfield.Editing())
	default:
		err = f.SetDisplayState(formfield.Error(step.message))
	}
	if err != nil {
		m.Listener.Status = err.Error()
		return
	}

	if step.clear {
		m.Listener.Status = "error cleared"
	} else {
		m.Listener.Status = "error shown"
	}
}

// View renders the demo screen
func (m Model) View() string {
	var helpText string
	if m.Field.Field.IsEditing() {
		helpText = m.Help.View(editingKeyMap{field: m.Keys.Field, quit: forceQuit})
	} else {
		helpText = m.Help.View(m.Keys)
	}
	return RenderApplicationContainer(m.buildContent(), helpText, m.Width, m.Height)
}

func (m Model) buildContent() string {
	f := m.Field.Field
	var b strings.Builder

	b.WriteString(LabelStyle.Render(strings.ToUpper(m.Label)))
	b.WriteString("\n")
	b.WriteString(m.Field.View())
	b.WriteString("\n\n")

	rows := [][2]string{
		{"Revision", f.Revision().String()},
		{"Display", f.DisplayState().Kind().String()},
		{"Accessory", f.AccessoryState().String()},
		{"Editing", fmt.Sprintf("%v", f.IsEditing())},
	}
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, StatusKeyStyle.Render(fmt.Sprintf("%-10s", r[0]))+" "+StatusValueStyle.Render(r[1]))
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, lines...))

	if m.Listener.Status != "" {
		b.WriteString("\n\n")
		b.WriteString(EventStyle.Render(m.Listener.Status))
	}

	return b.String()
}
