package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quill-os/quillboot/internal/diag"
	"github.com/quill-os/quillboot/internal/host"
	"github.com/quill-os/quillboot/internal/logging"
)

// keyMap defines key bindings for the boot menu
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Tab    key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Back, k.Tab},
	}
}

// errorKeyMap defines key bindings for the terminal error page
type errorKeyMap struct {
	Tab      key.Binding
	PowerOff key.Binding
	Reboot   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k errorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.PowerOff, k.Reboot}
}

// FullHelp returns keybindings for the expanded help view
func (k errorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.PowerOff, k.Reboot},
	}
}

// Model is the top-level coordinator for the boot menu. It owns the page
// state machine, the single dialog slot, and the host-pushed state the
// pages render from. All mutation happens inside Update, on the program's
// single sequential message loop.
type Model struct {
	// Navigation and overlay state
	Nav    NavigationState
	Dialog DialogState

	// Host-pushed state
	Boot    BootState
	Config  ConfigState
	Version VersionState

	// Outbound contract
	Callbacks host.Callbacks

	// Page-local cursor, reset on every transition
	Cursor int

	// UI state
	Width  int
	Height int

	reporter progressReporter
	viewer   diagViewer

	// Help
	Help      help.Model
	Keys      keyMap
	ErrorKeys errorKeyMap
}

// NewModel creates the boot menu model. The page starts blank until the
// host pushes a show_page update.
func NewModel(callbacks host.Callbacks, config ConfigState) Model {
	keys := keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
	}

	errorKeys := errorKeyMap{
		Tab: key.NewBinding(
			key.WithKeys("tab", "right"),
			key.WithHelp("tab", "next tab"),
		),
		PowerOff: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "power off"),
		),
		Reboot: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reboot"),
		),
	}

	if config.ScalingFactor < 1 {
		config.ScalingFactor = 1
	}

	return Model{
		Nav:       NavigationState{CurrentPage: PageNone},
		Boot:      BootState{Widget: WidgetProgressBar},
		Config:    config,
		Callbacks: callbacks,
		reporter:  newProgressReporter(),
		viewer:    newDiagViewer(),
		Help:      help.New(),
		Keys:      keys,
		ErrorKeys: errorKeys,
	}
}

// Init starts the dialog countdown ticker and the spinner animation.
func (m Model) Init() tea.Cmd {
	return tea.Batch(dialogTick(), m.reporter.dots.Tick)
}

// Update handles all messages: user input, host property pushes, and timer
// ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.reporter.SetWidth(msg.Width)
		m.viewer.SetSize(msg.Width, msg.Height)
		return m, nil

	case DialogTickMsg:
		m.Dialog.Tick(int(dialogTickInterval.Milliseconds()))
		return m, dialogTick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.reporter.dots, cmd = m.reporter.dots.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Host property pushes
	if updated, handled := m.handleHostUpdate(msg); handled {
		return updated, nil
	}

	return m, nil
}

// handleHostUpdate applies a property push from the boot orchestrator.
// Pushes may arrive at any time, including mid-transition; none of them
// depend on navigation state.
func (m Model) handleHostUpdate(msg tea.Msg) (Model, bool) {
	switch msg := msg.(type) {
	case host.BootProgressMsg:
		m.Boot.Progress = msg.Progress
		return m, true

	case host.StartupFinishedMsg:
		m.Boot.StartupFinished = true
		return m, true

	case host.ProgressWidgetMsg:
		widget := WidgetProgressBar
		if msg.Widget == host.WidgetMovingDots {
			widget = WidgetMovingDots
		}
		if widget != m.Boot.Widget {
			// Swap drops the animation phase
			m.reporter.resetDots()
		}
		m.Boot.Widget = widget
		return m, true

	case host.ShowPageMsg:
		// The host drives the initial transition out of the blank page
		switch msg.Page {
		case host.PageSplash:
			m = m.navigateTo(PageBootSplash)
		default:
			m = m.navigateTo(PageQuillBoot)
		}
		return m, true

	case host.ToastMsg:
		m.Dialog.ShowToast(msg.Message, msg.DurationMs)
		return m, true

	case host.FatalErrorMsg:
		// Terminal transition: diagnostics are populated once, and the
		// only way out is power off or reboot.
		report := diag.NewReport(msg.ErrorReason, msg.ProgramOutput, msg.KernelBuffer, msg.DebugPayload)
		m.viewer.SetReport(report)
		m.Nav.DebugTabIndex = 0
		m = m.navigateTo(PageError)
		return m, true

	case host.ProgramOutputMsg:
		m.viewer.AppendProgramOutput(msg.Text)
		return m, true

	case host.KernelBufferMsg:
		m.viewer.AppendKernelBuffer(msg.Text)
		return m, true

	case host.ConfigUpdateMsg:
		if msg.PersistentRootfs != nil {
			m.Config.PersistentRootfs = *msg.PersistentRootfs
		}
		if msg.ScalingFactor != nil && *msg.ScalingFactor >= 1 {
			m.Config.ScalingFactor = *msg.ScalingFactor
		}
		if msg.ButtonScalingMultiplier != nil && *msg.ButtonScalingMultiplier > 0 {
			m.Config.ButtonScalingMultiplier = *msg.ButtonScalingMultiplier
		}
		return m, true

	case host.VersionInfoMsg:
		m.Version = VersionState{
			Version:      msg.Version,
			ShortVersion: msg.ShortVersion,
			KernelCommit: msg.KernelCommit,
		}
		return m, true
	}

	return m, false
}

// handleKey routes key input to the active dialog or the current page.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// A blocking dialog captures all input. Toasts are passive and let
	// input fall through to the page.
	if m.Dialog.Blocking() {
		return m.handleDialogKey(msg), nil
	}

	switch m.Nav.CurrentPage {
	case PageQuillBoot:
		return m.handleMenuKey(msg), nil
	case PageOptions:
		return m.handleOptionsKey(msg), nil
	case PageBootConfiguration:
		return m.handleBootConfigKey(msg), nil
	case PageRecoveryOptions:
		return m.handleRecoveryKey(msg), nil
	case PageVersionInfo:
		if key.Matches(msg, m.Keys.Back) {
			return m.goBack(), nil
		}
	case PageError:
		return m.handleErrorKey(msg)
	}

	// PageNone and PageBootSplash take no input
	return m, nil
}

// handleDialogKey handles input while the soft reset confirm dialog is up.
func (m Model) handleDialogKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "left", "right", "tab", "h", "l":
		m.Dialog.ConfirmSelected = !m.Dialog.ConfirmSelected
	case "enter":
		if m.Dialog.ConfirmSelected {
			m.Dialog.Confirm(m.Callbacks)
		} else {
			m.Dialog.Cancel()
		}
	case "esc":
		m.Dialog.Cancel()
	}
	return m
}

// Main menu entries, in display order.
var menuEntries = []string{"Quill OS", "Options", "About", "Power off"}

func (m Model) handleMenuKey(msg tea.KeyMsg) Model {
	switch {
	case key.Matches(msg, m.Keys.Up):
		m.Cursor = moveCursor(m.Cursor, -1, len(menuEntries))
	case key.Matches(msg, m.Keys.Down):
		m.Cursor = moveCursor(m.Cursor, 1, len(menuEntries))
	case key.Matches(msg, m.Keys.Select):
		switch m.Cursor {
		case 0: // Quill OS
			m = m.navigateTo(PageNone)
			m.Callbacks.InvokeBootDefault()
		case 1: // Options
			m = m.navigateTo(PageOptions)
		case 2: // About
			m = m.navigateTo(PageVersionInfo)
		case 3: // Power off, page unchanged
			m.Callbacks.InvokePowerOff()
		}
	}
	return m
}

// Options page entries, in display order.
var optionsEntries = []string{"Boot configuration", "Recovery options"}

func (m Model) handleOptionsKey(msg tea.KeyMsg) Model {
	switch {
	case key.Matches(msg, m.Keys.Up):
		m.Cursor = moveCursor(m.Cursor, -1, len(optionsEntries))
	case key.Matches(msg, m.Keys.Down):
		m.Cursor = moveCursor(m.Cursor, 1, len(optionsEntries))
	case key.Matches(msg, m.Keys.Select):
		switch m.Cursor {
		case 0:
			m = m.navigateTo(PageBootConfiguration)
		case 1:
			m = m.navigateTo(PageRecoveryOptions)
		}
	case key.Matches(msg, m.Keys.Back):
		m = m.goBack()
	}
	return m
}

// Boot configuration entries, in display order.
const (
	bootConfigUIScale = iota
	bootConfigPersistentRootfs
	bootConfigEntryCount
)

func (m Model) handleBootConfigKey(msg tea.KeyMsg) Model {
	switch {
	case key.Matches(msg, m.Keys.Up):
		m.Cursor = moveCursor(m.Cursor, -1, bootConfigEntryCount)
	case key.Matches(msg, m.Keys.Down):
		m.Cursor = moveCursor(m.Cursor, 1, bootConfigEntryCount)
	case key.Matches(msg, m.Keys.Select):
		// Toggles mutate local state and notify the host; the host may
		// push the persisted value back after it lands.
		switch m.Cursor {
		case bootConfigUIScale:
			m.Config.ScalingFactor++
			if m.Config.ScalingFactor > maxScalingFactor {
				m.Config.ScalingFactor = 1
			}
			m.Callbacks.InvokeToggleUIScale()
		case bootConfigPersistentRootfs:
			m.Config.PersistentRootfs = !m.Config.PersistentRootfs
			m.Callbacks.InvokeTogglePersistentRootfs()
		}
	case key.Matches(msg, m.Keys.Back):
		m = m.goBack()
	}
	return m
}

// maxScalingFactor bounds the UI scale cycle. Panels larger than 3x scale
// do not exist in the supported hardware range.
const maxScalingFactor = 3

func (m Model) handleRecoveryKey(msg tea.KeyMsg) Model {
	switch {
	case key.Matches(msg, m.Keys.Select):
		m.Dialog.ShowSoftReset()
	case key.Matches(msg, m.Keys.Back):
		m = m.goBack()
	}
	return m
}

func (m Model) handleErrorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.ErrorKeys.Tab):
		m.Nav.DebugTabIndex = (m.Nav.DebugTabIndex + 1) % tabCount
		return m, nil
	case msg.String() == "left":
		m.Nav.DebugTabIndex = (m.Nav.DebugTabIndex + tabCount - 1) % tabCount
		return m, nil
	case key.Matches(msg, m.ErrorKeys.PowerOff):
		m.Callbacks.InvokePowerOff()
		return m, nil
	case key.Matches(msg, m.ErrorKeys.Reboot):
		m.Callbacks.InvokeReboot()
		return m, nil
	}

	// Manual scrolling within the visible log tab
	var cmd tea.Cmd
	switch m.Nav.DebugTabIndex {
	case tabProgramOutput:
		m.viewer.outputView, cmd = m.viewer.outputView.Update(msg)
	case tabKernelLog:
		m.viewer.kernelView, cmd = m.viewer.kernelView.Update(msg)
	}
	return m, cmd
}

// navigateTo transitions to a page and sets the matching section header.
func (m Model) navigateTo(page Page) Model {
	logging.LogPageTransition(m.Nav.CurrentPage.String(), page.String())
	m.Nav.CurrentPage = page
	m.Nav.SectionHeaderTitle = sectionHeaderFor(page)
	m.Cursor = 0
	return m
}

// goBack returns to the documented predecessor page. Pages with no
// predecessor ignore the action.
func (m Model) goBack() Model {
	if !m.Nav.CanGoBack() {
		return m
	}

	switch m.Nav.CurrentPage {
	case PageOptions, PageVersionInfo:
		return m.navigateTo(PageQuillBoot)
	case PageRecoveryOptions, PageBootConfiguration:
		return m.navigateTo(PageOptions)
	default:
		return m
	}
}

// sectionHeaderFor returns the header label shown above sub-pages, or ""
// for pages without one.
func sectionHeaderFor(page Page) string {
	switch page {
	case PageOptions:
		return headerOptions
	case PageVersionInfo:
		return headerAbout
	case PageRecoveryOptions:
		return headerRecoveryOptions
	case PageBootConfiguration:
		return headerBootConfiguration
	default:
		return ""
	}
}

// moveCursor moves a menu cursor by delta, clamped to [0, count).
func moveCursor(cursor, delta, count int) int {
	cursor += delta
	if cursor < 0 {
		return 0
	}
	if cursor >= count {
		return count - 1
	}
	return cursor
}
