package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current page with any active overlay.
func (m Model) View() string {
	// A blocking dialog takes over the screen; the page state underneath
	// is untouched and reappears on dismissal.
	if m.Dialog.Blocking() {
		return m.center(m.Dialog.View(m.contentWidth()))
	}

	var content string
	switch m.Nav.CurrentPage {
	case PageQuillBoot:
		content = m.renderMainMenu()
	case PageVersionInfo:
		content = m.renderVersionInfo()
	case PageBootSplash:
		content = m.renderBootSplash()
	case PageOptions:
		content = m.renderOptions()
	case PageBootConfiguration:
		content = m.renderBootConfiguration()
	case PageRecoveryOptions:
		content = m.renderRecoveryOptions()
	case PageError:
		content = m.renderErrorPage()
	default:
		// PageNone: blank until the host pushes startup data
		content = ""
	}

	// Toasts are passive overlays appended below the page content
	if m.Dialog.Dialog == DialogToast {
		content = lipgloss.JoinVertical(lipgloss.Left,
			content,
			"",
			m.Dialog.View(m.contentWidth()),
		)
	}

	return content
}

func (m Model) contentWidth() int {
	if m.Width > 0 {
		return m.Width
	}
	return GetTerminalWidth()
}

func (m Model) center(content string) string {
	if m.Width <= 0 || m.Height <= 0 {
		return content
	}
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, content)
}

// renderSectionHeader renders the label above sub-pages.
func (m Model) renderSectionHeader() string {
	if m.Nav.SectionHeaderTitle == "" {
		return ""
	}
	return SectionHeaderStyle.Render(m.Nav.SectionHeaderTitle) + "\n"
}

// renderMenu renders a cursor-driven list of entries.
func (m Model) renderMenu(entries []string) string {
	var b strings.Builder
	for i, entry := range entries {
		if i == m.Cursor {
			b.WriteString(SelectedMenuItemStyle.Render("▸ " + entry))
		} else {
			b.WriteString(MenuItemStyle.Render(entry))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderMainMenu() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(AppName))
	b.WriteString("\n")
	if m.Version.ShortVersion != "" {
		b.WriteString(SubtitleStyle.Render(m.Version.ShortVersion))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.renderMenu(menuEntries))
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(m.Help.View(m.Keys)))

	return b.String()
}

func (m Model) renderOptions() string {
	var b strings.Builder

	b.WriteString(m.renderSectionHeader())
	b.WriteString(m.renderMenu(optionsEntries))
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(m.Help.View(m.Keys)))

	return b.String()
}

func (m Model) renderBootConfiguration() string {
	var b strings.Builder

	b.WriteString(m.renderSectionHeader())

	entries := []string{
		fmt.Sprintf("UI scaling: %s", ToggleOnStyle.Render(fmt.Sprintf("%dx", m.Config.ScalingFactor))),
		fmt.Sprintf("Persistent root filesystem: %s", renderToggle(m.Config.PersistentRootfs)),
	}
	b.WriteString(m.renderMenu(entries))
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render("Changes take effect on next boot"))
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(m.Help.View(m.Keys)))

	return b.String()
}

func (m Model) renderRecoveryOptions() string {
	var b strings.Builder

	b.WriteString(m.renderSectionHeader())
	b.WriteString(m.renderMenu([]string{"Soft reset"}))
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render("Soft reset erases all user data"))
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(m.Help.View(m.Keys)))

	return b.String()
}

func (m Model) renderVersionInfo() string {
	var b strings.Builder

	b.WriteString(m.renderSectionHeader())

	b.WriteString(fmt.Sprintf("Version:        %s\n", orUnknown(m.Version.Version)))
	b.WriteString(fmt.Sprintf("Kernel commit:  %s\n", orUnknown(m.Version.KernelCommit)))
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render(ProjectURL))
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(m.Help.View(m.Keys)))

	return b.String()
}

func (m Model) renderBootSplash() string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		TitleStyle.Render(AppName),
		"",
		m.reporter.View(m.Boot),
	)
	return m.center(content)
}

func (m Model) renderErrorPage() string {
	var b strings.Builder

	b.WriteString(m.viewer.View(m.Nav.DebugTabIndex))
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(m.Help.View(m.ErrorKeys)))

	return b.String()
}

func renderToggle(on bool) string {
	if on {
		return ToggleOnStyle.Render("on")
	}
	return ToggleOffStyle.Render("off")
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
