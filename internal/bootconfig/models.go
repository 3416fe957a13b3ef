package bootconfig

// BootConfig represents the persisted boot configuration file.
// It lives on the data partition and survives across boots; the UI mutates
// the display and rootfs sections in response to toggles on the boot
// configuration page.
type BootConfig struct {
	Flags   Flags   `yaml:"flags"`
	RootFS  RootFS  `yaml:"rootfs"`
	System  System  `yaml:"system"`
	Display Display `yaml:"display"`
}

// Flags holds one-shot boot markers.
type Flags struct {
	FirstBootDone bool `yaml:"first_boot_done"`
}

// RootFS holds root filesystem settings.
type RootFS struct {
	// PersistentStorage keeps the overlay workdir across reboots instead of
	// discarding it; toggled from the boot configuration page.
	PersistentStorage   bool  `yaml:"persistent_storage"`
	Timestamp           int64 `yaml:"timestamp,omitempty"`             // Root filesystem image build time
	SystemdTargetsTotal int   `yaml:"systemd_targets_total,omitempty"` // Learned on first boot, drives the progress bar
}

// System holds general system settings.
type System struct {
	DefaultUser string `yaml:"default_user,omitempty"`
	Timezone    string `yaml:"timezone"`
}

// Display holds presentation settings for the boot menu.
type Display struct {
	// ScalingFactor is the integer UI scale, at least 1. E-ink panels ship
	// in several DPI classes; the host picks a sane initial value.
	ScalingFactor int `yaml:"scaling_factor"`
	// ButtonScalingMultiplier fine-tunes touch target sizes relative to
	// ScalingFactor.
	ButtonScalingMultiplier float64 `yaml:"button_scaling_multiplier"`
}

// NewBootConfig creates a BootConfig with default values.
func NewBootConfig() *BootConfig {
	return &BootConfig{
		Flags: Flags{
			FirstBootDone: false,
		},
		RootFS: RootFS{
			PersistentStorage: false,
		},
		System: System{
			Timezone: "UTC",
		},
		Display: Display{
			ScalingFactor:           1,
			ButtonScalingMultiplier: 1.0,
		},
	}
}
