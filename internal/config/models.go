package config

import (
	"fmt"

	"github.com/muurk/flatform/internal/formfield"
)

// CurrentVersion is the config file format version
const CurrentVersion = 1

// Config represents the entire user configuration file.
type Config struct {
	Version int          `yaml:"version"`
	Field   *FieldConfig `yaml:"field,omitempty"`
	Theme   *ThemeConfig `yaml:"theme,omitempty"`
	Demo    *DemoConfig  `yaml:"demo,omitempty"`
}

// FieldConfig describes how the demo field is built.
type FieldConfig struct {
	Placeholder  string `yaml:"placeholder"`
	Text         string `yaml:"text"`
	Revision     string `yaml:"revision"`      // "display-states" or "legacy"
	InitialState string `yaml:"initial_state"` // read-only, editing, loading
	Accessory    string `yaml:"accessory"`     // none, loading, refresh, checkmark
	CharLimit    int    `yaml:"char_limit"`    // 0 = unlimited
	Width        int    `yaml:"width"`         // columns, including the accessory cell
	Required     bool   `yaml:"required"`      // demo validation: empty value is an error
}

// ThemeConfig holds colours, either palette names (e.g. "red-500") or hex values.
type ThemeConfig struct {
	Text             string `yaml:"text"`
	Placeholder      string `yaml:"placeholder"`
	Separator        string `yaml:"separator"`
	SeparatorFocused string `yaml:"separator_focused"`
	Error            string `yaml:"error"`
	Accessory        string `yaml:"accessory"`
	Checkmark        string `yaml:"checkmark"`
	Background       string `yaml:"background,omitempty"`
}

// DemoConfig holds the content the demo screen cycles through.
type DemoConfig struct {
	ErrorMessages []string `yaml:"error_messages"`
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Version: CurrentVersion,
		Field:   defaultField(),
		Theme:   defaultTheme(),
		Demo:    defaultDemo(),
	}
}

func defaultField() *FieldConfig {
	return &FieldConfig{
		Placeholder:  "Group Name",
		Text:         "William",
		Revision:     formfield.RevisionDisplayStates.String(),
		InitialState: "editing",
		Accessory:    formfield.AccessoryNone.String(),
		CharLimit:    64,
		Width:        40,
	}
}

func defaultTheme() *ThemeConfig {
	return &ThemeConfig{
		Text:             "neutral-100",
		Placeholder:      "neutral-400",
		Separator:        "neutral-400",
		SeparatorFocused: "purple-500",
		Error:            "red-500",
		Accessory:        "neutral-400",
		Checkmark:        "green-500",
		Background:       "neutral-700",
	}
}

func defaultDemo() *DemoConfig {
	return &DemoConfig{
		ErrorMessages: []string{
			"This is an error message because someone made a mistake. But it totally wasn't me, it was the other person who was at fault.",
			"This is an error message because someone made a mistake. But it totally wasn't me.",
			"The error message would go here.",
		},
	}
}

// applyDefaults fills sections missing from a loaded file
func (c *Config) applyDefaults() {
	if c.Field == nil {
		c.Field = defaultField()
	}
	if c.Theme == nil {
		c.Theme = defaultTheme()
	}
	if c.Demo == nil || len(c.Demo.ErrorMessages) == 0 {
		c.Demo = defaultDemo()
	}
	if c.Field.Width <= 0 {
		c.Field.Width = defaultField().Width
	}
}

// Validate checks the version and every enumerated value.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", c.Version, CurrentVersion)
	}
	if c.Field == nil {
		return nil
	}
	if _, err := formfield.ParseRevision(c.Field.Revision); err != nil {
		return fmt.Errorf("field.revision: %w", err)
	}
	if _, err := formfield.ParseDisplayState(c.Field.InitialState, ""); err != nil {
		return fmt.Errorf("field.initial_state: %w", err)
	}
	if c.Field.InitialState == "error" {
		return fmt.Errorf("field.initial_state: error cannot be an initial state")
	}
	if _, err := formfield.ParseAccessoryState(c.Field.Accessory); err != nil {
		return fmt.Errorf("field.accessory: %w", err)
	}
	if c.Field.CharLimit < 0 {
		return fmt.Errorf("field.char_limit: must not be negative, got %d", c.Field.CharLimit)
	}
	return nil
}

// FieldOptions converts the field section into formfield options.
func (c *Config) FieldOptions() ([]formfield.Option, error) {
	fc := c.Field
	if fc == nil {
		fc = defaultField()
	}

	revision, err := formfield.ParseRevision(fc.Revision)
	if err != nil {
		return nil, err
	}
	state, err := formfield.ParseDisplayState(fc.InitialState, "")
	if err != nil {
		return nil, err
	}
	accessory, err := formfield.ParseAccessoryState(fc.Accessory)
	if err != nil {
		return nil, err
	}

	return []formfield.Option{
		formfield.WithPlaceholder(fc.Placeholder),
		formfield.WithText(fc.Text),
		formfield.WithRevision(revision),
		formfield.WithDisplayState(state),
		formfield.WithAccessory(accessory),
	}, nil
}
