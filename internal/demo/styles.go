package demo

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/flatform/internal/ui"
	"github.com/muurk/flatform/internal/version"
)

// Application branding constants
const (
	AppName   = "FLAT FORM FIELD"
	GitHubURL = "github.com/muurk/flatform"
)

// Layout constants
const (
	MinTerminalWidth  = 44
	MinTerminalHeight = 16
)

var (
	LabelStyle = lipgloss.NewStyle().
			Foreground(ui.MutedColor).
			MarginBottom(1)

	StatusKeyStyle = lipgloss.NewStyle().
			Foreground(ui.MutedColor)

	StatusValueStyle = lipgloss.NewStyle().
				Foreground(ui.TextColor)

	EventStyle = lipgloss.NewStyle().
			Foreground(ui.PrimaryColor).
			Italic(true)
)

// BuildHeaderContent creates header content with app name and GitHub URL
func BuildHeaderContent() string {
	left := lipgloss.NewStyle().
		Foreground(ui.TextColor).
		Bold(true).
		Render(AppName + " v" + version.Version)

	right := lipgloss.NewStyle().
		Foreground(ui.MutedColor).
		Render(GitHubURL)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

// RenderApplicationContainer wraps the demo content with a header, a footer
// holding the help text and a border filling the terminal.
func RenderApplicationContainer(content string, footerText string, terminalWidth int, terminalHeight int) string {
	if terminalWidth < MinTerminalWidth {
		terminalWidth = MinTerminalWidth
	}
	if terminalHeight < MinTerminalHeight {
		terminalHeight = MinTerminalHeight
	}

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(ui.PrimaryColor).
		Width(terminalWidth-4). // Leave room for outer border
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(ui.PrimaryColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	contentStyle := lipgloss.NewStyle().
		Width(terminalWidth-4).
		Padding(1, 2)

	header := headerStyle.Render(BuildHeaderContent())
	footer := footerStyle.Render(lipgloss.NewStyle().Foreground(ui.MutedColor).Render(footerText))
	body := contentStyle.Render(content)

	// Pin the footer to the bottom of the inner area
	gap := terminalHeight - 2 - lipgloss.Height(header) - lipgloss.Height(body) - lipgloss.Height(footer)
	if gap > 0 {
		body = lipgloss.JoinVertical(lipgloss.Left, body, lipgloss.NewStyle().Height(gap).Render(""))
	}

	inner := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)

	bordered := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(ui.PrimaryColor).
		Width(terminalWidth - 2).
		AlignVertical(lipgloss.Top).
		Render(inner)

	return lipgloss.Place(terminalWidth, terminalHeight, lipgloss.Left, lipgloss.Top, bordered)
}
