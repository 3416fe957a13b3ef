package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/quill-os/quillboot/internal/diag"
)

// Tabs of the diagnostics viewer on the error page.
const (
	tabQRCode = iota
	tabProgramOutput
	tabKernelLog
	tabCount
)

var tabTitles = [tabCount]string{"QR codes", "Program output", "Kernel log"}

// diagViewer composes log buffers and QR availability into the tabbed error
// report. Active only while the error page is shown, which is terminal for
// the session.
type diagViewer struct {
	report *diag.Report

	outputView viewport.Model
	kernelView viewport.Model

	width  int
	height int
}

func newDiagViewer() diagViewer {
	return diagViewer{
		outputView: viewport.New(60, 12),
		kernelView: viewport.New(60, 12),
	}
}

// SetSize resizes the log viewports for the terminal dimensions.
func (v *diagViewer) SetSize(width, height int) {
	v.width = width
	v.height = height

	logWidth := width - 4
	if logWidth < 20 {
		logWidth = 20
	}
	logHeight := height - 10
	if logHeight < 5 {
		logHeight = 5
	}

	v.outputView.Width = logWidth
	v.outputView.Height = logHeight
	v.kernelView.Width = logWidth
	v.kernelView.Height = logHeight

	// Re-flow and keep the newest content visible
	if v.report != nil {
		v.outputView.SetContent(v.report.ProgramOutput)
		v.outputView.GotoBottom()
		v.kernelView.SetContent(v.report.KernelBuffer)
		v.kernelView.GotoBottom()
	}
}

// SetReport installs the diagnostics payload when the fatal error is
// reported.
func (v *diagViewer) SetReport(report *diag.Report) {
	v.report = report
	v.outputView.SetContent(report.ProgramOutput)
	v.outputView.GotoBottom()
	v.kernelView.SetContent(report.KernelBuffer)
	v.kernelView.GotoBottom()
}

// AppendProgramOutput appends streamed text and scrolls to the newest
// content. Log buffers are append-only: the view only ever moves down.
func (v *diagViewer) AppendProgramOutput(text string) {
	if v.report == nil {
		return
	}
	v.report.AppendProgramOutput(text)
	v.outputView.SetContent(v.report.ProgramOutput)
	v.outputView.GotoBottom()
}

// AppendKernelBuffer appends streamed kernel log text, same contract as
// AppendProgramOutput.
func (v *diagViewer) AppendKernelBuffer(text string) {
	if v.report == nil {
		return
	}
	v.report.AppendKernelBuffer(text)
	v.kernelView.SetContent(v.report.KernelBuffer)
	v.kernelView.GotoBottom()
}

// QRCodePage reports whether the QR tab has an image to show.
func (v diagViewer) QRCodePage() QRCodePage {
	if v.report != nil && v.report.QRAvailable && v.report.DebugQR != "" {
		return QRCodeAvailable
	}
	return QRCodeNotAvailable
}

// View renders the error report with the given tab selected.
func (v diagViewer) View(tabIndex int) string {
	if v.report == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(ErrorTitleStyle.Render("✗ Boot failed"))
	b.WriteString("\n\n")
	b.WriteString(ErrorReasonStyle.MaxWidth(v.width).Render(v.report.ErrorReason))
	b.WriteString("\n\n")
	b.WriteString(v.renderTabBar(tabIndex))
	b.WriteString("\n")

	switch tabIndex {
	case tabProgramOutput:
		b.WriteString(LogFrameStyle.Render(v.outputView.View()))
	case tabKernelLog:
		b.WriteString(LogFrameStyle.Render(v.kernelView.View()))
	default:
		b.WriteString(v.renderQRTab())
	}

	return b.String()
}

func (v diagViewer) renderTabBar(tabIndex int) string {
	tabs := make([]string, tabCount)
	for i, title := range tabTitles {
		if i == tabIndex {
			tabs[i] = ActiveTabStyle.Render(title)
		} else {
			tabs[i] = TabStyle.Render(title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)
}

// renderQRTab shows the debug QR code if one is available, else a literal
// placeholder. Never both. The help URI code is always present.
func (v diagViewer) renderQRTab() string {
	var debugPart string
	if v.QRCodePage() == QRCodeAvailable {
		debugPart = v.report.DebugQR
	} else {
		debugPart = PlaceholderStyle.Render("Debug report not available")
	}

	help := lipgloss.JoinVertical(lipgloss.Center,
		v.report.HelpURIQR,
		SubtitleStyle.Render(HelpURLNotice),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, debugPart, "    ", help)
}
