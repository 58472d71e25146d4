package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ResultType selects the colour and marker of a result box
type ResultType int

const (
	ResultSuccess ResultType = iota
	ResultWarning
)

// Result markers
const (
	SuccessMarker = "✓"
	WarningMarker = "⚠"
)

var (
	SuccessColor = Palette["green-500"]
	WarningColor = Palette["orange-500"]

	ResultKeyStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	ResultValueStyle = lipgloss.NewStyle().
				Foreground(TextColor)
)

// Result is a boxed outcome of a command, e.g. a written config file
type Result struct {
	Type    ResultType
	Title   string            // e.g., "Config written"
	Details map[string]string // rendered sorted by key
	Notes   []string          // bullet points under the details
	Width   int
}

// NewSuccessResult creates a success result box
func NewSuccessResult(title string, details map[string]string) *Result {
	return &Result{
		Type:    ResultSuccess,
		Title:   title,
		Details: details,
		Width:   GetTerminalWidth(),
	}
}

// NewWarningResult creates a warning result box
func NewWarningResult(title string, notes []string) *Result {
	return &Result{
		Type:  ResultWarning,
		Title: title,
		Notes: notes,
		Width: GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (r *Result) SetWidth(width int) *Result {
	r.Width = width
	return r
}

// Render returns the styled result box as a string
func (r *Result) Render() string {
	width := r.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	color, marker, label := SuccessColor, SuccessMarker, "SUCCESS"
	if r.Type == ResultWarning {
		color, marker, label = WarningColor, WarningMarker, "WARNING"
	}

	lines := []string{
		"",
		lipgloss.NewStyle().
			Foreground(color).
			Bold(true).
			Render(fmt.Sprintf(" %s  %s  ─  %s", marker, label, r.Title)),
		"",
	}

	keys := make([]string, 0, len(r.Details))
	for k := range r.Details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		lines = append(lines, ResultKeyStyle.Render(" "+k+":")+" "+ResultValueStyle.Render(r.Details[k]))
	}

	for _, note := range r.Notes {
		lines = append(lines, ResultValueStyle.Render(" • "+note))
	}
	if len(keys) > 0 || len(r.Notes) > 0 {
		lines = append(lines, "")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(color).
		Width(width-2).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
}

// String implements fmt.Stringer
func (r *Result) String() string {
	return r.Render()
}

// PrintResult prints a result box followed by a blank line
func (p *Printer) PrintResult(r *Result) {
	p.Println(r.SetWidth(p.width).Render())
	p.Newline()
}
