// Package host defines the contract between the boot menu UI and the host
// runtime (the boot orchestrator).
//
// The contract has two directions:
//
//   - Inbound: the orchestrator pushes typed property updates (boot
//     progress, log appends, fatal error reports, config changes) over a
//     websocket served on a Unix socket. The Bridge decodes each update and
//     forwards it to a sink, normally tea.Program.Send, so all state changes
//     enter the UI through its single sequential message loop.
//
//   - Outbound: the UI notifies the host through the zero-argument functions
//     in Callbacks (power off, reboot, boot default, soft reset, toggles).
//     The UI never waits for a result; outcomes come back as inbound pushes.
//
// Wire framing is a JSON envelope with a type tag:
//
//	{"type": "boot_progress", "payload": {"progress": 0.73}}
//
// See DecodeUpdate for the full set of update types.
package host
