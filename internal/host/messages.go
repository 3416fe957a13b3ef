package host

import (
	"encoding/json"
	"fmt"
)

// Update type identifiers used on the bridge wire.
const (
	TypeBootProgress    = "boot_progress"
	TypeStartupFinished = "startup_finished"
	TypeProgressWidget  = "progress_widget"
	TypeShowPage        = "show_page"
	TypeToast           = "toast"
	TypeFatalError      = "fatal_error"
	TypeProgramOutput   = "program_output"
	TypeKernelBuffer    = "kernel_buffer"
	TypeConfigUpdate    = "config_update"
	TypeVersionInfo     = "version_info"
)

// Progress widget selectors carried by ProgressWidgetMsg.
const (
	WidgetProgressBar = "progress_bar"
	WidgetMovingDots  = "moving_dots"
)

// Page selectors carried by ShowPageMsg. The host drives the initial
// transition out of the blank page once startup data is ready.
const (
	PageMenu   = "menu"
	PageSplash = "splash"
)

// BootProgressMsg updates the boot progress fraction. Values outside [0,1]
// are a host bug; the UI clamps rather than crashing.
type BootProgressMsg struct {
	Progress float64 `json:"progress"`
}

// StartupFinishedMsg marks the end of boot: the indeterminate widget settles
// to its completed visual state.
type StartupFinishedMsg struct{}

// ProgressWidgetMsg selects which boot-progress presentation is active.
type ProgressWidgetMsg struct {
	Widget string `json:"widget"`
}

// ShowPageMsg asks the UI to show the menu or the boot splash.
type ShowPageMsg struct {
	Page string `json:"page"`
}

// ToastMsg displays a transient informational overlay that auto-dismisses
// after DurationMs.
type ToastMsg struct {
	Message    string `json:"message"`
	DurationMs int    `json:"duration_ms"`
}

// FatalErrorMsg reports an unrecoverable boot failure. The UI transitions to
// the terminal error page with this report; there is no way back.
type FatalErrorMsg struct {
	ErrorReason   string `json:"error_reason"`
	ProgramOutput string `json:"program_output"`
	KernelBuffer  string `json:"kernel_buffer"`
	// DebugPayload is the raw diagnostic string to encode as a QR code.
	// Empty means no debug QR is available.
	DebugPayload string `json:"debug_payload"`
}

// ProgramOutputMsg appends text to the program output buffer shown on the
// error page.
type ProgramOutputMsg struct {
	Text string `json:"text"`
}

// KernelBufferMsg appends text to the kernel log buffer shown on the error
// page.
type KernelBufferMsg struct {
	Text string `json:"text"`
}

// ConfigUpdateMsg pushes persisted configuration back into the UI. Nil
// fields are left untouched, so the host can update a single setting.
type ConfigUpdateMsg struct {
	PersistentRootfs        *bool    `json:"persistent_rootfs,omitempty"`
	ScalingFactor           *int     `json:"scaling_factor,omitempty"`
	ButtonScalingMultiplier *float64 `json:"button_scaling_multiplier,omitempty"`
}

// VersionInfoMsg pushes version strings for the about page and menu banner.
type VersionInfoMsg struct {
	Version      string `json:"version"`
	ShortVersion string `json:"short_version"`
	KernelCommit string `json:"kernel_commit"`
}

// Envelope is the wire framing for bridge updates: a type tag plus a
// type-specific payload.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// DecodeUpdate parses a bridge envelope into its typed message. The returned
// value is one of the *Msg types above, suitable for handing straight to the
// UI program.
func DecodeUpdate(data []byte) (interface{}, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to parse update envelope: %w", err)
	}

	unmarshal := func(v interface{}) (interface{}, error) {
		if len(env.Payload) == 0 {
			return v, nil
		}
		if err := json.Unmarshal(env.Payload, v); err != nil {
			return nil, fmt.Errorf("failed to parse %q payload: %w", env.Type, err)
		}
		return v, nil
	}

	switch env.Type {
	case TypeBootProgress:
		msg := &BootProgressMsg{}
		if _, err := unmarshal(msg); err != nil {
			return nil, err
		}
		return *msg, nil
	case TypeStartupFinished:
		return StartupFinishedMsg{}, nil
	case TypeProgressWidget:
		msg := &ProgressWidgetMsg{}
		if _, err := unmarshal(msg); err != nil {
			return nil, err
		}
		return *msg, nil
	case TypeShowPage:
		msg := &ShowPageMsg{}
		if _, err := unmarshal(msg); err != nil {
			return nil, err
		}
		return *msg, nil
	case TypeToast:
		msg := &ToastMsg{}
		if _, err := unmarshal(msg); err != nil {
			return nil, err
		}
		return *msg, nil
	case TypeFatalError:
		msg := &FatalErrorMsg{}
		if _, err := unmarshal(msg); err != nil {
			return nil, err
		}
		return *msg, nil
	case TypeProgramOutput:
		msg := &ProgramOutputMsg{}
		if _, err := unmarshal(msg); err != nil {
			return nil, err
		}
		return *msg, nil
	case TypeKernelBuffer:
		msg := &KernelBufferMsg{}
		if _, err := unmarshal(msg); err != nil {
			return nil, err
		}
		return *msg, nil
	case TypeConfigUpdate:
		msg := &ConfigUpdateMsg{}
		if _, err := unmarshal(msg); err != nil {
			return nil, err
		}
		return *msg, nil
	case TypeVersionInfo:
		msg := &VersionInfoMsg{}
		if _, err := unmarshal(msg); err != nil {
			return nil, err
		}
		return *msg, nil
	default:
		return nil, fmt.Errorf("unknown update type %q", env.Type)
	}
}

// EncodeUpdate builds a bridge envelope for the given typed message. Used by
// the socket test tool and by host-side code pushing updates.
func EncodeUpdate(msg interface{}) ([]byte, error) {
	var typ string
	switch msg.(type) {
	case BootProgressMsg, *BootProgressMsg:
		typ = TypeBootProgress
	case StartupFinishedMsg, *StartupFinishedMsg:
		typ = TypeStartupFinished
	case ProgressWidgetMsg, *ProgressWidgetMsg:
		typ = TypeProgressWidget
	case ShowPageMsg, *ShowPageMsg:
		typ = TypeShowPage
	case ToastMsg, *ToastMsg:
		typ = TypeToast
	case FatalErrorMsg, *FatalErrorMsg:
		typ = TypeFatalError
	case ProgramOutputMsg, *ProgramOutputMsg:
		typ = TypeProgramOutput
	case KernelBufferMsg, *KernelBufferMsg:
		typ = TypeKernelBuffer
	case ConfigUpdateMsg, *ConfigUpdateMsg:
		typ = TypeConfigUpdate
	case VersionInfoMsg, *VersionInfoMsg:
		typ = TypeVersionInfo
	default:
		return nil, fmt.Errorf("unsupported update type %T", msg)
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %q payload: %w", typ, err)
	}

	return json.Marshal(Envelope{Type: typ, Payload: payload})
}
