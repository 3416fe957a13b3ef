// Package tui implements the quillboot pre-boot menu.
//
// The menu is shown before the main operating system starts and lets the
// operator boot the default system, inspect version information, adjust a
// small set of boot-time settings, trigger a destructive reset, or inspect
// a fatal-error report when boot fails. Built on the Bubble Tea framework,
// it follows the Elm architecture: one coordinator Model, all mutation in
// Update, rendering in View.
//
// # Pages
//
// The current page is a closed enum routed by the coordinator:
//
//	None ──(host)──▶ QuillBoot ──▶ Options ──▶ BootConfiguration
//	     └─(host)──▶ BootSplash        └─────▶ RecoveryOptions
//	                 QuillBoot ──▶ VersionInfo
//	     (host, terminal) ─────▶ Error
//
// Back navigation walks the documented predecessor: sub-pages return to
// Options, Options and VersionInfo return to the main menu. The main menu,
// the splash, the blank startup page and the error page have no back
// action. The error page is terminal: it is entered only through a host
// fatal-error push and offers nothing but power off and reboot.
//
// # Dialogs
//
// A single slot holds at most one overlay: a passive toast that
// auto-dismisses on a tick-driven countdown, or the blocking soft reset
// confirm dialog. Entering a new dialog replaces the old one outright.
//
// # Host contract
//
// The host runtime pushes typed property updates (see the host package)
// through tea.Program.Send, and receives zero-argument callbacks for power
// off, reboot, boot default, soft reset and the configuration toggles. The
// UI never blocks on the host.
//
// # Framework Components
//
//   - bubbles/progress: determinate boot progress bar
//   - bubbles/spinner: indeterminate "moving dots" boot indicator
//   - bubbles/viewport: scrollback for the error page log tabs
//   - bubbles/help, bubbles/key: context-sensitive key hints
//   - lipgloss: styling, kept monochrome for e-ink consoles
package tui
