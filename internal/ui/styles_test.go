package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/flatform/internal/config"
)

func TestResolveColor(t *testing.T) {
	tests := []struct {
		in      string
		want    lipgloss.Color
		wantErr bool
	}{
		{in: "red-500", want: "#EF4444"},
		{in: "Neutral-400", want: "#A3A3A3"},
		{in: "#abc", want: "#abc"},
		{in: "#7D56F4", want: "#7D56F4"},
		{in: "240", want: "240"},
		{in: "rebeccapurple", wantErr: true},
		{in: "#12345", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ResolveColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResolveColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ResolveColor(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestThemeFromConfig(t *testing.T) {
	theme, err := ThemeFromConfig(config.NewConfig().Theme)
	if err != nil {
		t.Fatalf("ThemeFromConfig() error = %v", err)
	}
	if theme.Error != Palette["red-500"] {
		t.Errorf("Error = %q, want red-500", theme.Error)
	}
	if theme.Separator != Palette["neutral-400"] {
		t.Errorf("Separator = %q, want neutral-400", theme.Separator)
	}

	bad := config.NewConfig().Theme
	bad.Checkmark = "chartreuse"
	if _, err := ThemeFromConfig(bad); err == nil || !strings.Contains(err.Error(), "theme.checkmark") {
		t.Errorf("ThemeFromConfig() error = %v, want theme.checkmark error", err)
	}
}

func TestHeader_RenderSortedParams(t *testing.T) {
	h := NewHeader("Flat form field", "flatform render", map[string]string{
		"State":     "editing",
		"Accessory": "checkmark",
	}).SetWidth(60)

	out := h.Render()
	if !strings.Contains(out, "FLAT FORM FIELD") {
		t.Error("header should contain the upper-cased title")
	}
	if strings.Index(out, "Accessory") > strings.Index(out, "State") {
		t.Error("params should be rendered in sorted order")
	}
}
