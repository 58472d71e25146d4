package ui

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/muurk/flatform/internal/config"
)

// Palette maps the colour asset names used by the field theme to hex values
var Palette = map[string]lipgloss.Color{
	"neutral-100": lipgloss.Color("#F5F5F5"),
	"neutral-200": lipgloss.Color("#E5E5E5"),
	"neutral-300": lipgloss.Color("#D4D4D4"),
	"neutral-400": lipgloss.Color("#A3A3A3"),
	"neutral-500": lipgloss.Color("#737373"),
	"neutral-600": lipgloss.Color("#525252"),
	"neutral-700": lipgloss.Color("#404040"),
	"neutral-800": lipgloss.Color("#262626"),
	"red-500":     lipgloss.Color("#EF4444"),
	"orange-500":  lipgloss.Color("#F97316"),
	"green-500":   lipgloss.Color("#22C55E"),
	"purple-500":  lipgloss.Color("#7D56F4"),
}

// Shared colours for screen chrome
var (
	PrimaryColor = Palette["purple-500"] // headers, borders
	MutedColor   = Palette["neutral-500"] // secondary info
	TextColor    = lipgloss.Color("#FFFFFF")
)

// Layout constants
const (
	MinTerminalWidth = 40  // Minimum supported terminal width
	MaxContentWidth  = 100 // Maximum content width before capping
)

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
var ansiColor = regexp.MustCompile(`^[0-9]{1,3}$`)

// ResolveColor turns a palette name, hex value or ANSI colour number into a colour
func ResolveColor(value string) (lipgloss.Color, error) {
	v := strings.TrimSpace(value)
	if c, ok := Palette[strings.ToLower(v)]; ok {
		return c, nil
	}
	if hexColor.MatchString(v) || ansiColor.MatchString(v) {
		return lipgloss.Color(v), nil
	}
	return "", fmt.Errorf("unknown colour %q", value)
}

// Theme holds the colours of a flat form field
type Theme struct {
	Text             lipgloss.Color
	Placeholder      lipgloss.Color
	Separator        lipgloss.Color
	SeparatorFocused lipgloss.Color
	Error            lipgloss.Color
	Accessory        lipgloss.Color
	Checkmark        lipgloss.Color
	Background       lipgloss.Color
}

// DefaultTheme mirrors the default config theme
func DefaultTheme() Theme {
	t, _ := ThemeFromConfig(config.NewConfig().Theme)
	return t
}

// ThemeFromConfig resolves every colour of a theme section.
// Empty values leave the terminal default in place.
func ThemeFromConfig(tc *config.ThemeConfig) (Theme, error) {
	if tc == nil {
		return Theme{}, nil
	}

	var t Theme
	fields := []struct {
		name  string
		value string
		dst   *lipgloss.Color
	}{
		{"text", tc.Text, &t.Text},
		{"placeholder", tc.Placeholder, &t.Placeholder},
		{"separator", tc.Separator, &t.Separator},
		{"separator_focused", tc.SeparatorFocused, &t.SeparatorFocused},
		{"error", tc.Error, &t.Error},
		{"accessory", tc.Accessory, &t.Accessory},
		{"checkmark", tc.Checkmark, &t.Checkmark},
		{"background", tc.Background, &t.Background},
	}

	for _, f := range fields {
		if f.value == "" {
			continue
		}
		c, err := ResolveColor(f.value)
		if err != nil {
			return Theme{}, fmt.Errorf("theme.%s: %w", f.name, err)
		}
		*f.dst = c
	}

	return t, nil
}

// Shared styles for command output
var (
	// HeaderTitleStyle is for the snapshot title (e.g., "FLAT FORM FIELD")
	HeaderTitleStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Bold(true).
				PaddingLeft(2)

	// HeaderCommandStyle is for the command path (e.g., "flatform render")
	HeaderCommandStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				PaddingLeft(2)

	// HeaderParamKeyStyle is for parameter keys (e.g., "State:")
	HeaderParamKeyStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				PaddingLeft(2)

	// HeaderParamValueStyle is for parameter values (e.g., "editing")
	HeaderParamValueStyle = lipgloss.NewStyle().
				Foreground(TextColor)
)

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// GetTerminalSize returns the current terminal width and height
func GetTerminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return MinTerminalWidth, 24
	}
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if width > MaxContentWidth {
		width = MaxContentWidth
	}
	return width, height
}
