// Package logging provides structured logging for flatform.
//
// This package wraps a global zap logger with convenience functions. It is
// silent by default. Commands that take over the terminal log to a file.
//
// # Log Levels
//
//   - Debug: key presses, display state and accessory transitions
//   - Info: listener notifications (begin/end editing, text changes, taps)
//   - Warn: a field refused a validation error or its removal
//   - Error: failures that end a command
//
// # Configuration
//
// Set FLATFORM_LOG_LEVEL to "debug", "info", "warn" or "error" to enable
// output, and FLATFORM_LOG_FILE (or --log-file) to send it to a file:
//
//	FLATFORM_LOG_LEVEL=debug FLATFORM_LOG_FILE=/tmp/flatform.log flatform
//
// Commands initialize logging once at startup:
//
//	if err := logging.Initialize(level, file); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Structured Logging
//
//	logging.LogFieldEvent("group-name", "accessory_tapped",
//	    zap.Stringer("kind", formfield.AccessoryCheckmark),
//	)
package logging
