package demo

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/muurk/flatform/internal/config"
	"github.com/muurk/flatform/internal/formfield"
	"github.com/muurk/flatform/internal/ui/flatfield"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, mutate func(*config.Config)) Model {
	t.Helper()
	cfg := config.NewConfig()
	if mutate != nil {
		mutate(cfg)
	}
	m, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	m.Width, m.Height = 80, 24
	return m
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestNew_FromDefaults(t *testing.T) {
	m := newTestModel(t, nil)
	f := m.Field.Field

	if f.Text() != "William" || f.Placeholder() != "Group Name" {
		t.Errorf("field = %q / %q, want William / Group Name", f.Text(), f.Placeholder())
	}
	if len(m.errorSteps) != 5 {
		t.Errorf("got %d error steps, want 5", len(m.errorSteps))
	}
}

func TestNew_InvalidTheme(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Theme.Error = "not-a-colour"
	if _, err := New(cfg); err == nil {
		t.Error("New() should fail on an unknown theme colour")
	}
}

func TestCycleAccessory(t *testing.T) {
	m := newTestModel(t, nil)

	var got []formfield.AccessoryState
	for i := 0; i < 4; i++ {
		m = send(m, keyRunes("a"))
		got = append(got, m.Field.Field.AccessoryState())
	}

	want := []formfield.AccessoryState{
		formfield.AccessoryCheckmark,
		formfield.AccessoryLoading,
		formfield.AccessoryRefresh,
		formfield.AccessoryNone,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("accessory cycle mismatch (-want +got):\n%s", diff)
	}
}

func TestCycleDisplayState(t *testing.T) {
	m := newTestModel(t, func(c *config.Config) { c.Field.InitialState = "read-only" })

	var got []formfield.DisplayKind
	for i := 0; i < 4; i++ {
		m = send(m, keyRunes("d"))
		got = append(got, m.Field.Field.DisplayState().Kind())
	}

	want := []formfield.DisplayKind{
		formfield.KindEditing,
		formfield.KindLoading,
		formfield.KindError,
		formfield.KindReadOnly,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("display cycle mismatch (-want +got):\n%s", diff)
	}
}

func TestCycleDisplayState_Legacy(t *testing.T) {
	m := newTestModel(t, func(c *config.Config) { c.Field.Revision = "legacy" })
	m = send(m, keyRunes("d"))

	if m.Field.Field.DisplayState() != formfield.Editing() {
		t.Errorf("legacy DisplayState() = %v, want editing", m.Field.Field.DisplayState())
	}
	if !strings.Contains(m.Listener.Status, "display-states revision") {
		t.Errorf("Status = %q", m.Listener.Status)
	}
}

func TestCycleError(t *testing.T) {
	messages := config.NewConfig().Demo.ErrorMessages

	for _, revision := range []string{"display-states", "legacy"} {
		t.Run(revision, func(t *testing.T) {
			m := newTestModel(t, func(c *config.Config) { c.Field.Revision = revision })

			type shown struct {
				Message string
				OK      bool
			}
			var got []shown
			for i := 0; i < 6; i++ {
				m = send(m, keyRunes("x"))
				msg, ok := m.Field.Field.RenderedError()
				got = append(got, shown{msg, ok})
			}

			want := []shown{
				{messages[0], true},
				{"", false},
				{messages[1], true},
				{"", false},
				{messages[2], true},
				{messages[0], true},
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("error cycle mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEditingCapturesLetters(t *testing.T) {
	m := newTestModel(t, func(c *config.Config) { c.Field.Text = "" })

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter}, keyRunes("a"), keyRunes("d"), keyRunes("q"))
	f := m.Field.Field
	if f.Text() != "adq" {
		t.Errorf("Text() = %q, want adq", f.Text())
	}
	if f.AccessoryState() != formfield.AccessoryNone {
		t.Error("a should be typed, not cycle the accessory")
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyEsc}, keyRunes("a"))
	if f.IsEditing() {
		t.Error("esc should end editing")
	}
	if f.AccessoryState() != formfield.AccessoryCheckmark {
		t.Error("a should cycle the accessory once editing ended")
	}
}

func TestPasteRespectsCharLimit(t *testing.T) {
	m := newTestModel(t, func(c *config.Config) {
		c.Field.Text = "Will"
		c.Field.CharLimit = 6
	})

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter}, flatfield.PasteMsg("iam"))
	f := m.Field.Field
	if f.Text() != "Will" || m.Field.Input.Value() != "Will" {
		t.Errorf("paste past the limit: field %q, input %q, want Will", f.Text(), m.Field.Input.Value())
	}

	m = send(m, flatfield.PasteMsg("ie"))
	if f.Text() != "Willie" || m.Field.Input.Value() != "Willie" {
		t.Errorf("paste within the limit: field %q, input %q, want Willie", f.Text(), m.Field.Input.Value())
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, nil)

	for _, k := range []tea.KeyMsg{keyRunes("q"), {Type: tea.KeyCtrlC}} {
		if _, cmd := m.Update(k); cmd == nil {
			t.Errorf("%s should quit", k.String())
		} else if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s should return tea.Quit", k.String())
		}
	}
}

func TestView(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(m, keyRunes("a"), tea.KeyMsg{Type: tea.KeyCtrlT})

	view := m.View()
	for _, want := range []string{"GROUP NAME", "William", "checkmark", "did tap checkmark", AppName} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestBuildErrorSteps(t *testing.T) {
	steps := buildErrorSteps([]string{"a", "b"})
	want := []errorStep{{message: "a"}, {clear: true}, {message: "b"}}
	if diff := cmp.Diff(want, steps, cmp.AllowUnexported(errorStep{})); diff != "" {
		t.Errorf("steps mismatch (-want +got):\n%s", diff)
	}
	if buildErrorSteps(nil) != nil {
		t.Error("no messages should give no steps")
	}
}
