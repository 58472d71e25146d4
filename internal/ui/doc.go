// Package ui holds the shared terminal styling for flatform: the colour
// palette and field Theme, terminal size helpers, the snapshot Header and
// a Printer for non-interactive output.
//
// The interactive field component lives in the flatfield subpackage and
// the demo screen in internal/demo.
//
// # Colours
//
// Theme colours are configured by name, mirroring the asset catalogue of
// the original control ("neutral-400", "red-500", ...), or as hex/ANSI
// values:
//
//	theme, err := ui.ThemeFromConfig(cfg.Theme)
//
// # Snapshots
//
// The render command prints one frame of a field without taking over the
// terminal:
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintHeader("Flat form field", "flatform render", params)
//	p.Println(fieldView)
package ui
