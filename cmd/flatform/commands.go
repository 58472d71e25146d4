package main

import (
	"fmt"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/flatform/internal/config"
	"github.com/muurk/flatform/internal/demo"
	"github.com/muurk/flatform/internal/formfield"
	"github.com/muurk/flatform/internal/logging"
	"github.com/muurk/flatform/internal/ui"
	"github.com/muurk/flatform/internal/ui/flatfield"
)

// Render command flags
var (
	renderText        string
	renderPlaceholder string
	renderState       string
	renderError       string
	renderAccessory   string
	renderRevision    string
	renderWidth       int
	renderFocused     bool
	renderPlain       bool
)

// Config command flags
var configForce bool

func init() {
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// demoCmd runs the interactive demo
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the interactive field demo",
	Long: `Run the interactive demo screen.

The screen shows one field and buttons that cycle it through its states:
  a  cycle the accessory (checkmark, loading, refresh, none)
  d  cycle the display state (read-only, editing, loading, error)
  x  step through the error messages
Press enter or e to edit the field and esc to leave it.`,
	Example: `  # Run the demo with the default configuration
  flatform demo

  # Use the legacy error API
  flatform demo --config ./legacy.yaml

  # Record every field notification
  flatform demo --log-level debug`,
	Annotations: map[string]string{annotationTUI: "true"},
	RunE:        runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	model, err := demo.New(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("demo error: %w", err)
	}

	return nil
}

// renderCmd prints a single frame of the field
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the field in a given state",
	Long: `Render one frame of the field without starting the interactive demo.

Values not given as flags come from the config file.`,
	Example: `  # Placeholder only
  flatform render --text ""

  # Checkmark accessory
  flatform render --accessory checkmark

  # Display-state error
  flatform render --state error --error "Name is taken"

  # Legacy revision with an error label
  flatform render --revision legacy --error "Name is taken"`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderText, "text", "", "Field text")
	renderCmd.Flags().StringVar(&renderPlaceholder, "placeholder", "", "Placeholder shown when the text is empty")
	renderCmd.Flags().StringVar(&renderState, "state", "", "Display state: read-only, editing, loading, error")
	renderCmd.Flags().StringVar(&renderError, "error", "", "Error message")
	renderCmd.Flags().StringVar(&renderAccessory, "accessory", "", "Accessory: none, loading, refresh, checkmark")
	renderCmd.Flags().StringVar(&renderRevision, "revision", "", "Revision: display-states, legacy")
	renderCmd.Flags().IntVar(&renderWidth, "width", 0, "Field width in columns (default from config)")
	renderCmd.Flags().BoolVar(&renderFocused, "focused", false, "Render the field with an active edit session")
	renderCmd.Flags().BoolVar(&renderPlain, "plain", false, "Omit the header box")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("text") {
		cfg.Field.Text = renderText
	}
	if flags.Changed("placeholder") {
		cfg.Field.Placeholder = renderPlaceholder
	}
	if flags.Changed("accessory") {
		cfg.Field.Accessory = renderAccessory
	}
	if flags.Changed("revision") {
		cfg.Field.Revision = renderRevision
	}
	if flags.Changed("width") {
		cfg.Field.Width = renderWidth
	}

	field, err := buildRenderField(cfg, renderState, renderError)
	if err != nil {
		return err
	}

	if renderFocused && !field.BeginEditing() {
		return fmt.Errorf("field cannot be focused in state %s", field.DisplayState())
	}

	theme, err := ui.ThemeFromConfig(cfg.Theme)
	if err != nil {
		return fmt.Errorf("failed to load theme: %w", err)
	}

	view := flatfield.New(field, theme, cfg.Field.Width).View()
	logging.Debug("Rendered field",
		zap.Stringer("state", field.DisplayState()),
		zap.Stringer("accessory", field.ActiveAccessory()),
	)

	p := ui.NewPrinter(cmd.OutOrStdout())
	if !renderPlain {
		params := map[string]string{
			"Revision":  field.Revision().String(),
			"State":     field.DisplayState().String(),
			"Accessory": field.ActiveAccessory().String(),
			"Width":     strconv.Itoa(cfg.Field.Width),
		}
		p.PrintHeader("Flat form field", cmd.CommandPath(), params)
		p.Newline()
	}
	p.Println(view)

	return nil
}

// buildRenderField creates the field for a snapshot. state overrides the
// configured initial state; errMsg is shown through whichever error API
// the revision has.
func buildRenderField(cfg *config.Config, state, errMsg string) (*formfield.Field, error) {
	opts, err := cfg.FieldOptions()
	if err != nil {
		return nil, err
	}
	field := formfield.New(opts...)

	if field.Revision() == formfield.RevisionLegacy {
		if state != "" {
			return nil, fmt.Errorf("--state needs the display-states revision")
		}
		if errMsg != "" {
			if err := field.ShowError(errMsg); err != nil {
				return nil, err
			}
		}
		return field, nil
	}

	if state == "" && errMsg != "" {
		state = "error"
	}
	if state == "" {
		return field, nil
	}

	s, err := formfield.ParseDisplayState(state, errMsg)
	if err != nil {
		return nil, err
	}
	if err := field.SetDisplayState(s); err != nil {
		return nil, err
	}
	return field, nil
}

// configCmd groups the config file commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			p, err := config.GetConfigPath()
			if err != nil {
				return err
			}
			path = p
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with the defaults",
	Example: `  # Create the default config file
  flatform config init

  # Overwrite an existing file
  flatform config init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			p, err := config.GetConfigPath()
			if err != nil {
				return err
			}
			path = p
		}

		p := ui.NewPrinter(cmd.OutOrStdout())

		if _, err := os.Stat(path); err == nil && !configForce {
			if !ui.IsTerminal(os.Stdin) {
				return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
			}
			notes := []string{path, "Your changes to it will be lost."}
			if !p.Confirm(cmd.InOrStdin(), "Config file exists", notes, "Overwrite with the defaults?") {
				return nil
			}
		}

		cfg := config.NewConfig()
		if err := cfg.Save(path); err != nil {
			return err
		}
		logging.Info("Config written", zap.String("path", path))

		p.PrintResult(ui.NewSuccessResult("Config written", map[string]string{
			"Path":    path,
			"Version": strconv.Itoa(cfg.Version),
		}))
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing config file")
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}
