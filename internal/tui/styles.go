package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Application branding constants
const (
	AppName       = "QUILL OS"
	ProjectURL    = "github.com/quill-os/quillboot"
	HelpURLNotice = "Scan the help code or visit quill-os.org/help"
)

// Layout constants
const (
	MinTerminalWidth = 40  // Smallest e-ink console we target
	MaxContentWidth  = 100 // Maximum content width before capping
)

// Color palette. The boot menu renders on e-ink consoles, so the palette is
// monochrome with a single accent reserved for destructive warnings.
var (
	TextColor   = lipgloss.Color("#FFFFFF")
	SubtleColor = lipgloss.Color("#626262")
	BorderColor = lipgloss.Color("#AAAAAA")
	AccentColor = lipgloss.Color("#000000")
	WarnColor   = lipgloss.Color("#FFA500")
	ErrorColor  = lipgloss.Color("#FF5555")
)

// Common styles
var (
	// Title style for the main menu banner
	TitleStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true).
			Padding(1, 0)

	// SubtitleStyle for version strings under the banner
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	// SectionHeaderStyle for the title above sub-pages
	SectionHeaderStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Bold(true).
				Underline(true).
				MarginBottom(1)

	// Menu item style (unselected)
	MenuItemStyle = lipgloss.NewStyle().
			PaddingLeft(4).
			Foreground(TextColor)

	// Menu item style (selected)
	SelectedMenuItemStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				Foreground(TextColor).
				Bold(true).
				Reverse(true)

	// Help text style
	HelpStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Padding(1, 0)

	// Toast overlay style
	ToastStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 2)

	// Confirm dialog style
	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(WarnColor).
			Padding(1, 2)

	// Dialog button styles
	DialogButtonStyle = lipgloss.NewStyle().
				Padding(0, 3).
				Foreground(TextColor)

	SelectedDialogButtonStyle = lipgloss.NewStyle().
					Padding(0, 3).
					Foreground(TextColor).
					Bold(true).
					Reverse(true)

	// Error page styles
	ErrorTitleStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	ErrorReasonStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Border(lipgloss.NormalBorder()).
				BorderForeground(ErrorColor).
				Padding(0, 1)

	// Tab styles for the diagnostics viewer
	TabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(SubtleColor)

	ActiveTabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(TextColor).
			Bold(true).
			Underline(true)

	// Log viewport frame
	LogFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(BorderColor)

	// Placeholder for the unavailable QR code
	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(SubtleColor).
				Italic(true).
				Padding(2, 4)

	// Toggle value styles on the boot configuration page
	ToggleOnStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	ToggleOffStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// Splash progress label
	SplashLabelStyle = lipgloss.NewStyle().
				Foreground(SubtleColor).
				MarginTop(1)
)

// GetTerminalWidth returns the current terminal width, falling back to
// MinTerminalWidth when the size cannot be determined (e.g. the e-ink
// console before the first WindowSizeMsg arrives).
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}
