package tui

// Page represents one full-screen view of the boot menu.
type Page int

const (
	PageNone Page = iota // Blank until the host pushes startup data
	PageQuillBoot
	PageVersionInfo
	PageBootSplash
	PageOptions
	PageBootConfiguration
	PageRecoveryOptions
	PageError
)

// String returns the page name for logging
func (p Page) String() string {
	switch p {
	case PageNone:
		return "none"
	case PageQuillBoot:
		return "quillboot"
	case PageVersionInfo:
		return "version_info"
	case PageBootSplash:
		return "boot_splash"
	case PageOptions:
		return "options"
	case PageBootConfiguration:
		return "boot_configuration"
	case PageRecoveryOptions:
		return "recovery_options"
	case PageError:
		return "error"
	default:
		return "unknown"
	}
}

// QRCodePage reports whether a debug QR image is available on the error page.
type QRCodePage int

const (
	QRCodeAvailable QRCodePage = iota
	QRCodeNotAvailable
)

// ProgressWidget selects the boot-progress presentation.
type ProgressWidget int

const (
	WidgetProgressBar ProgressWidget = iota
	WidgetMovingDots
)

// Section header titles for pages reached through the menu.
const (
	headerOptions           = "Options"
	headerAbout             = "About"
	headerRecoveryOptions   = "Recovery options"
	headerBootConfiguration = "Boot configuration"
)

// NavigationState tracks the current page and back-navigation context.
// Mutated only by navigation actions.
type NavigationState struct {
	CurrentPage        Page
	SectionHeaderTitle string // Label shown above sub-pages; empty on top-level pages
	DebugTabIndex      int    // Selected tab on the error page
}

// CanGoBack reports whether the back action is offered on the current page.
// Top-level pages, the splash, the blank page and the terminal error page
// have no predecessor.
func (n NavigationState) CanGoBack() bool {
	switch n.CurrentPage {
	case PageQuillBoot, PageBootSplash, PageNone, PageError:
		return false
	default:
		return true
	}
}

// BootState is host-owned boot progress, read by the UI to decide rendering.
type BootState struct {
	Progress        float64 // Clamped to [0,1] at render time
	StartupFinished bool
	Widget          ProgressWidget
}

// ConfigState mirrors the boot configuration settings the menu can change.
// Toggles mutate it locally and notify the host via callback; the host may
// also push updates that overwrite it.
type ConfigState struct {
	PersistentRootfs        bool
	ScalingFactor           int
	ButtonScalingMultiplier float64
}

// VersionState holds version strings pushed by the host for the about page.
type VersionState struct {
	Version      string
	ShortVersion string
	KernelCommit string
}

// clampProgress forces a host-supplied progress fraction into [0,1].
// Out-of-range values are a host bug but must not crash or distort the
// presentation.
func clampProgress(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
