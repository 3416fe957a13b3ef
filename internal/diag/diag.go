package diag

import (
	"strings"

	"github.com/mdp/qrterminal/v3"
)

// HelpURI is encoded as a QR code on the error page so the operator can
// reach the troubleshooting documentation from another device.
const HelpURI = "https://quill-os.org/help/boot-failure"

// Report is the diagnostics payload for the terminal error page. It is
// assembled once when the fatal error is reported and never mutated except
// for log appends, which the orchestrator may keep streaming while the
// error page is up.
type Report struct {
	ErrorReason   string
	ProgramOutput string
	KernelBuffer  string

	// DebugQR is the debug payload rendered as QR text, empty when no
	// payload was supplied.
	DebugQR string
	// HelpURIQR is the help URI rendered as QR text, always present.
	HelpURIQR string

	// QRAvailable reports whether DebugQR holds a renderable code.
	QRAvailable bool
}

// NewReport assembles a diagnostics report. An empty debugPayload means the
// failure produced no machine-readable trace; the QR tab then shows a
// placeholder instead of an image.
func NewReport(reason, programOutput, kernelBuffer, debugPayload string) *Report {
	r := &Report{
		ErrorReason:   reason,
		ProgramOutput: programOutput,
		KernelBuffer:  kernelBuffer,
		HelpURIQR:     EncodeQR(HelpURI),
	}

	if debugPayload != "" {
		r.DebugQR = EncodeQR(debugPayload)
		r.QRAvailable = r.DebugQR != ""
	}

	return r
}

// AppendProgramOutput appends streamed program output to the report.
func (r *Report) AppendProgramOutput(text string) {
	r.ProgramOutput += text
}

// AppendKernelBuffer appends streamed kernel log text to the report.
func (r *Report) AppendKernelBuffer(text string) {
	r.KernelBuffer += text
}

// EncodeQR renders text as a QR code using Unicode half blocks, suitable for
// both terminal emulators and the e-ink console. Returns "" for empty input
// or when the payload exceeds QR capacity.
func EncodeQR(text string) string {
	if text == "" {
		return ""
	}

	var buf strings.Builder

	// qrterminal panics for payloads beyond QR version 40 capacity; a
	// too-long trace must degrade to "not available", not crash the boot
	// menu.
	defer func() {
		_ = recover()
	}()

	qrterminal.GenerateHalfBlock(text, qrterminal.L, &buf)
	return buf.String()
}
