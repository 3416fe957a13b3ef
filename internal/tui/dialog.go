package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/quill-os/quillboot/internal/host"
)

// DialogType identifies the currently active overlay, if any. A single slot
// holds at most one dialog; entering a new one replaces the old outright.
type DialogType int

const (
	DialogNone DialogType = iota
	DialogToast
	DialogSoftReset
)

// String returns the dialog name for logging
func (d DialogType) String() string {
	switch d {
	case DialogNone:
		return "none"
	case DialogToast:
		return "toast"
	case DialogSoftReset:
		return "soft_reset"
	default:
		return "unknown"
	}
}

// softResetWarning is shown in the confirm dialog before the destructive
// reset.
const softResetWarning = "Soft reset erases all user data and settings on this device. This cannot be undone."

// DialogState owns the transient overlay and its lifecycle. Toasts carry a
// countdown decremented by an external tick; confirm dialogs are dismissed
// only by explicit user action.
type DialogState struct {
	Dialog             DialogType
	Message            string
	DismissCountdownMs int

	// ConfirmSelected tracks which button the cursor is on in a confirm
	// dialog (true = confirm).
	ConfirmSelected bool
}

// ShowToast enters a toast overlay, replacing any active dialog.
func (d *DialogState) ShowToast(message string, durationMs int) {
	d.Dialog = DialogToast
	d.Message = message
	d.DismissCountdownMs = durationMs
	d.ConfirmSelected = false
}

// ShowSoftReset enters the soft reset confirm dialog, replacing any active
// dialog. The cursor starts on Cancel so a stray activation is harmless.
func (d *DialogState) ShowSoftReset() {
	d.Dialog = DialogSoftReset
	d.Message = softResetWarning
	d.DismissCountdownMs = 0
	d.ConfirmSelected = false
}

// Tick advances the toast countdown by elapsedMs. Reaching zero forces the
// dialog slot back to none. Ticks are ignored for confirm dialogs, which
// have no countdown.
func (d *DialogState) Tick(elapsedMs int) {
	if d.Dialog != DialogToast {
		return
	}
	d.DismissCountdownMs -= elapsedMs
	if d.DismissCountdownMs <= 0 {
		d.dismiss()
	}
}

// Confirm activates the confirm button of a blocking dialog: soft_reset()
// is invoked exactly once and the slot is cleared. A no-op for toasts and
// the empty slot.
func (d *DialogState) Confirm(callbacks host.Callbacks) {
	if d.Dialog != DialogSoftReset {
		return
	}
	d.dismiss()
	callbacks.InvokeSoftReset()
}

// Cancel dismisses a blocking dialog with no other effect.
func (d *DialogState) Cancel() {
	if d.Dialog != DialogSoftReset {
		return
	}
	d.dismiss()
}

func (d *DialogState) dismiss() {
	d.Dialog = DialogNone
	d.Message = ""
	d.DismissCountdownMs = 0
	d.ConfirmSelected = false
}

// Active reports whether any overlay occupies the slot.
func (d DialogState) Active() bool {
	return d.Dialog != DialogNone
}

// Blocking reports whether the overlay captures input.
func (d DialogState) Blocking() bool {
	return d.Dialog == DialogSoftReset
}

// View renders the active overlay, or "" when the slot is empty.
func (d DialogState) View(width int) string {
	switch d.Dialog {
	case DialogToast:
		return ToastStyle.MaxWidth(width).Render(d.Message)

	case DialogSoftReset:
		warning := lipgloss.NewStyle().
			Foreground(WarnColor).
			Bold(true).
			Render("⚠ Soft reset")

		confirm := DialogButtonStyle.Render("Reset")
		cancel := SelectedDialogButtonStyle.Render("Cancel")
		if d.ConfirmSelected {
			confirm = SelectedDialogButtonStyle.Render("Reset")
			cancel = DialogButtonStyle.Render("Cancel")
		}
		buttons := lipgloss.JoinHorizontal(lipgloss.Center, cancel, "  ", confirm)

		body := lipgloss.JoinVertical(lipgloss.Left,
			warning,
			"",
			lipgloss.NewStyle().Width(min(width-8, 60)).Render(d.Message),
			"",
			buttons,
		)
		return DialogStyle.MaxWidth(width).Render(body)

	default:
		return ""
	}
}
