package host

import (
	"testing"
)

func TestDecodeUpdate(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr bool
		verify  func(t *testing.T, msg interface{})
	}{
		{
			name: "boot progress",
			data: []byte(`{"type":"boot_progress","payload":{"progress":0.42}}`),
			verify: func(t *testing.T, msg interface{}) {
				m, ok := msg.(BootProgressMsg)
				if !ok {
					t.Fatalf("msg = %T, want BootProgressMsg", msg)
				}
				if m.Progress != 0.42 {
					t.Errorf("Progress = %v, want 0.42", m.Progress)
				}
			},
		},
		{
			name: "startup finished without payload",
			data: []byte(`{"type":"startup_finished"}`),
			verify: func(t *testing.T, msg interface{}) {
				if _, ok := msg.(StartupFinishedMsg); !ok {
					t.Fatalf("msg = %T, want StartupFinishedMsg", msg)
				}
			},
		},
		{
			name: "progress widget selection",
			data: []byte(`{"type":"progress_widget","payload":{"widget":"moving_dots"}}`),
			verify: func(t *testing.T, msg interface{}) {
				m, ok := msg.(ProgressWidgetMsg)
				if !ok {
					t.Fatalf("msg = %T, want ProgressWidgetMsg", msg)
				}
				if m.Widget != WidgetMovingDots {
					t.Errorf("Widget = %q, want %q", m.Widget, WidgetMovingDots)
				}
			},
		},
		{
			name: "toast with duration",
			data: []byte(`{"type":"toast","payload":{"message":"Battery low","duration_ms":5000}}`),
			verify: func(t *testing.T, msg interface{}) {
				m, ok := msg.(ToastMsg)
				if !ok {
					t.Fatalf("msg = %T, want ToastMsg", msg)
				}
				if m.Message != "Battery low" {
					t.Errorf("Message = %q", m.Message)
				}
				if m.DurationMs != 5000 {
					t.Errorf("DurationMs = %v, want 5000", m.DurationMs)
				}
			},
		},
		{
			name: "fatal error report",
			data: []byte(`{"type":"fatal_error","payload":{"error_reason":"rootfs signature check failed","program_output":"mount: failed","kernel_buffer":"EXT4-fs error","debug_payload":"trace-1234"}}`),
			verify: func(t *testing.T, msg interface{}) {
				m, ok := msg.(FatalErrorMsg)
				if !ok {
					t.Fatalf("msg = %T, want FatalErrorMsg", msg)
				}
				if m.ErrorReason != "rootfs signature check failed" {
					t.Errorf("ErrorReason = %q", m.ErrorReason)
				}
				if m.DebugPayload != "trace-1234" {
					t.Errorf("DebugPayload = %q", m.DebugPayload)
				}
			},
		},
		{
			name: "partial config update",
			data: []byte(`{"type":"config_update","payload":{"persistent_rootfs":true}}`),
			verify: func(t *testing.T, msg interface{}) {
				m, ok := msg.(ConfigUpdateMsg)
				if !ok {
					t.Fatalf("msg = %T, want ConfigUpdateMsg", msg)
				}
				if m.PersistentRootfs == nil || !*m.PersistentRootfs {
					t.Error("PersistentRootfs should be set to true")
				}
				if m.ScalingFactor != nil {
					t.Error("ScalingFactor should stay nil when omitted")
				}
			},
		},
		{
			name:    "unknown type",
			data:    []byte(`{"type":"frobnicate"}`),
			wantErr: true,
		},
		{
			name:    "invalid JSON",
			data:    []byte(`{type: nope`),
			wantErr: true,
		},
		{
			name:    "payload type mismatch",
			data:    []byte(`{"type":"boot_progress","payload":{"progress":"not a number"}}`),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := DecodeUpdate(tt.data)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeUpdate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.verify != nil && err == nil {
				tt.verify(t, msg)
			}
		})
	}
}

func TestEncodeDecodeRoundtrip(t *testing.T) {
	orig := ToastMsg{Message: "Persistent storage enabled", DurationMs: 3000}

	data, err := EncodeUpdate(orig)
	if err != nil {
		t.Fatalf("EncodeUpdate() error = %v", err)
	}

	decoded, err := DecodeUpdate(data)
	if err != nil {
		t.Fatalf("DecodeUpdate() error = %v", err)
	}

	got, ok := decoded.(ToastMsg)
	if !ok {
		t.Fatalf("decoded = %T, want ToastMsg", decoded)
	}
	if got != orig {
		t.Errorf("roundtrip = %+v, want %+v", got, orig)
	}
}

func TestEncodeUpdateUnsupportedType(t *testing.T) {
	if _, err := EncodeUpdate(struct{ X int }{1}); err == nil {
		t.Error("EncodeUpdate() should reject unknown message types")
	}
}

func TestCallbacksNilSafe(t *testing.T) {
	var c Callbacks

	// None of these may panic with nil functions
	c.InvokePowerOff()
	c.InvokeReboot()
	c.InvokeBootDefault()
	c.InvokeSoftReset()
	c.InvokeToggleUIScale()
	c.InvokeTogglePersistentRootfs()
}

func TestCallbacksInvoke(t *testing.T) {
	count := 0
	c := Callbacks{
		SoftReset: func() { count++ },
	}

	c.InvokeSoftReset()
	if count != 1 {
		t.Errorf("SoftReset invoked %d times, want 1", count)
	}
}
