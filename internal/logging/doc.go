// Package logging provides structured logging for quillboot.
//
// This package wraps zap logger with convenience functions for common logging
// patterns used throughout the boot menu and its host plumbing. Logging is
// silent by default: the TUI owns the framebuffer/terminal during boot and
// stray output would corrupt the display.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed debugging info (page transitions, property pushes)
//   - Info: Normal operations (callback invocations, bridge connections)
//   - Warn: Non-fatal issues (corrupted boot configuration, bridge drops)
//   - Error: Fatal issues (startup failures)
//
// # Configuration
//
// Set QUILLBOOT_LOG_LEVEL to enable output, and optionally QUILLBOOT_LOG_FILE
// to keep it off the terminal:
//
//	QUILLBOOT_LOG_LEVEL=debug QUILLBOOT_LOG_FILE=/tmp/quillboot.log quillboot
//
// Initialize at startup:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging
