package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quill-os/quillboot/internal/diag"
	"github.com/quill-os/quillboot/internal/host"
)

func TestQRTabPlaceholder(t *testing.T) {
	m := update(newTestModel(), host.FatalErrorMsg{
		ErrorReason: "rootfs signature check failed",
		// No debug payload: QR not available
	})

	if m.viewer.QRCodePage() != QRCodeNotAvailable {
		t.Fatal("QRCodePage() = available, want not available")
	}

	view := m.renderErrorPage()
	if !strings.Contains(view, "Debug report not available") {
		t.Error("QR tab should show the placeholder when no debug QR exists")
	}
}

func TestQRTabShowsImageWhenAvailable(t *testing.T) {
	m := update(newTestModel(), host.FatalErrorMsg{
		ErrorReason:  "rootfs signature check failed",
		DebugPayload: "trace-1234",
	})

	if m.viewer.QRCodePage() != QRCodeAvailable {
		t.Fatal("QRCodePage() = not available, want available")
	}

	view := m.renderErrorPage()
	if strings.Contains(view, "Debug report not available") {
		t.Error("placeholder must not be shown alongside a valid QR code")
	}
}

func TestQRAvailabilitySwitchAtRuntime(t *testing.T) {
	// First report without a payload, then an updated one with it: the QR
	// tab must show the image on the next render.
	m := update(newTestModel(), host.FatalErrorMsg{ErrorReason: "boot failed"})
	if m.viewer.QRCodePage() != QRCodeNotAvailable {
		t.Fatal("expected no QR before payload arrives")
	}

	m = update(m, host.FatalErrorMsg{ErrorReason: "boot failed", DebugPayload: "trace"})
	if m.viewer.QRCodePage() != QRCodeAvailable {
		t.Error("expected QR available after payload push")
	}
	if strings.Contains(m.renderErrorPage(), "Debug report not available") {
		t.Error("placeholder still rendered after QR became available")
	}
}

func TestTabSwitching(t *testing.T) {
	m := update(newTestModel(), host.FatalErrorMsg{ErrorReason: "err"})

	if m.Nav.DebugTabIndex != tabQRCode {
		t.Fatalf("initial tab = %v, want QR tab", m.Nav.DebugTabIndex)
	}

	m = update(m, keyMsg("tab"))
	if m.Nav.DebugTabIndex != tabProgramOutput {
		t.Errorf("tab = %v, want program output", m.Nav.DebugTabIndex)
	}

	m = update(m, keyMsg("tab"))
	if m.Nav.DebugTabIndex != tabKernelLog {
		t.Errorf("tab = %v, want kernel log", m.Nav.DebugTabIndex)
	}

	m = update(m, keyMsg("tab"))
	if m.Nav.DebugTabIndex != tabQRCode {
		t.Errorf("tab = %v, want wrap to QR tab", m.Nav.DebugTabIndex)
	}

	m = update(m, keyMsg("left"))
	if m.Nav.DebugTabIndex != tabKernelLog {
		t.Errorf("tab = %v, want wrap back to kernel log", m.Nav.DebugTabIndex)
	}
}

func TestLogAppendAutoScrolls(t *testing.T) {
	m := update(newTestModel(), tea.WindowSizeMsg{Width: 80, Height: 24})
	m = update(m, host.FatalErrorMsg{
		ErrorReason:  "err",
		KernelBuffer: "line 0\n",
	})

	// Push enough kernel log lines to overflow the viewport
	for i := 0; i < 100; i++ {
		m = update(m, host.KernelBufferMsg{Text: "kernel line\n"})
	}

	if !m.viewer.kernelView.AtBottom() {
		t.Error("kernel log view must be scrolled to the newest content after appends")
	}

	// Same contract for program output
	for i := 0; i < 100; i++ {
		m = update(m, host.ProgramOutputMsg{Text: "program line\n"})
	}
	if !m.viewer.outputView.AtBottom() {
		t.Error("program output view must be scrolled to the newest content after appends")
	}
}

func TestAppendsBeforeReportAreDropped(t *testing.T) {
	// Log pushes may race the fatal error report; without a report there
	// is nothing to append to and the update must not panic.
	m := newTestModel()
	m = update(m, host.KernelBufferMsg{Text: "early\n"})
	m = update(m, host.ProgramOutputMsg{Text: "early\n"})

	if m.Nav.CurrentPage != PageNone {
		t.Errorf("page = %v, want PageNone", m.Nav.CurrentPage)
	}
}

func TestDiagViewerKeepsBottomOnResize(t *testing.T) {
	var v diagViewer = newDiagViewer()
	report := diag.NewReport("err", strings.Repeat("out\n", 200), strings.Repeat("kern\n", 200), "")
	v.SetReport(report)

	v.SetSize(80, 24)
	if !v.outputView.AtBottom() {
		t.Error("program output view should stay at the bottom after resize")
	}
	if !v.kernelView.AtBottom() {
		t.Error("kernel log view should stay at the bottom after resize")
	}
}
