package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Confirm shows a warning box with notes and asks a yes/no question on in.
// Anything but "y" or "yes" (case-insensitive), including EOF, is a no.
func (p *Printer) Confirm(in io.Reader, title string, notes []string, question string) bool {
	p.PrintResult(NewWarningResult(title, notes))

	promptStyle := lipgloss.NewStyle().
		Foreground(WarningColor).
		Bold(true)
	p.Print(promptStyle.Render(fmt.Sprintf("%s [y/N]: ", question)))

	input, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && input == "" {
		p.Newline()
		return false
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true
	}

	p.Println(lipgloss.NewStyle().Foreground(MutedColor).Render("  Cancelled."))
	return false
}
