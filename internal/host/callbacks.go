package host

import "github.com/quill-os/quillboot/internal/logging"

// Callbacks is the outbound contract from the boot menu to the host runtime.
// Each callback is a zero-argument notification: the menu does not wait for
// or model a result. The host reflects any outcome back through property
// pushes (e.g. a ConfigUpdateMsg after a toggle lands).
//
// All fields may be nil; invoking a nil callback is a logged no-op so the UI
// can run detached from a real host during development.
type Callbacks struct {
	PowerOff               func()
	Reboot                 func()
	BootDefault            func()
	SoftReset              func()
	ToggleUIScale          func()
	TogglePersistentRootfs func()
}

func (c Callbacks) invoke(name string, fn func()) {
	logging.LogCallback(name)
	if fn != nil {
		fn()
	}
}

// InvokePowerOff asks the host to power the device off.
func (c Callbacks) InvokePowerOff() { c.invoke("power_off", c.PowerOff) }

// InvokeReboot asks the host to reboot the device.
func (c Callbacks) InvokeReboot() { c.invoke("reboot", c.Reboot) }

// InvokeBootDefault asks the host to boot the default system.
func (c Callbacks) InvokeBootDefault() { c.invoke("boot_default", c.BootDefault) }

// InvokeSoftReset asks the host to perform the destructive soft reset.
func (c Callbacks) InvokeSoftReset() { c.invoke("soft_reset", c.SoftReset) }

// InvokeToggleUIScale asks the host to cycle the UI scaling factor.
func (c Callbacks) InvokeToggleUIScale() { c.invoke("toggle_ui_scale", c.ToggleUIScale) }

// InvokeTogglePersistentRootfs asks the host to flip the persistent rootfs flag.
func (c Callbacks) InvokeTogglePersistentRootfs() {
	c.invoke("toggle_persistent_rootfs", c.TogglePersistentRootfs)
}
