// Package config provides user configuration for the flatform demo.
//
// The configuration is a small YAML file describing the demo field
// (placeholder, initial text, revision, initial display state), its theme
// colours and the error messages the demo cycles through.
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/flatform/config.yaml or $HOME/.config/flatform/config.yaml
//   - macOS: $HOME/.config/flatform/config.yaml
//   - Windows: %LOCALAPPDATA%\flatform\config.yaml
//
// A missing file is not an error; Load returns the defaults.
//
// # Usage Example
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	opts, err := cfg.FieldOptions()
//	if err != nil {
//	    return err
//	}
//	field := formfield.New(opts...)
//
// Save writes to a temporary file and renames it over the target.
package config
