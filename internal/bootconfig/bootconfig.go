package bootconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/quill-os/quillboot/internal/logging"
)

// DefaultPath is where the boot configuration lives on the data partition
// once it is mounted.
const DefaultPath = "/data/boot/boot_config.yaml"

// Mutex for thread-safe file operations: the UI goroutine saves after
// toggles while the orchestrator may save learned values (targets total).
var fileMutex sync.Mutex

// Load reads the boot configuration from the given path.
//
// A missing file yields the default configuration. An unparsable file yields
// the default configuration with FirstBootDone forced on: a corrupted config
// most likely means the device has already been through first boot, and
// re-running first-boot provisioning on an initialized system is worse than
// losing preferences.
func Load(path string) (*BootConfig, error) {
	logging.Debug("Reading boot configuration", zap.String("path", path))

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Info("No boot configuration found, using defaults")
			return NewBootConfig(), nil
		}
		return nil, fmt.Errorf("failed to read boot configuration: %w", err)
	}

	cfg := NewBootConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		logging.Warn("Boot configuration is corrupted or incomplete, using defaults with first_boot_done set",
			zap.Error(err),
		)
		cfg = NewBootConfig()
		cfg.Flags.FirstBootDone = true
		return cfg, nil
	}

	cfg.normalize()
	return cfg, nil
}

// Save writes the boot configuration to the given path, creating parent
// directories as needed. The write goes through a temp file and rename so a
// power cut mid-write cannot leave a truncated file.
func Save(cfg *BootConfig, path string) error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	logging.Debug("Writing boot configuration", zap.String("path", path))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create boot configuration directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal boot configuration: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write boot configuration: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to replace boot configuration: %w", err)
	}

	return nil
}

// normalize guards against out-of-range values written by older builds or
// edited by hand.
func (c *BootConfig) normalize() {
	if c.Display.ScalingFactor < 1 {
		c.Display.ScalingFactor = 1
	}
	if c.Display.ButtonScalingMultiplier <= 0 {
		c.Display.ButtonScalingMultiplier = 1.0
	}
	if c.System.Timezone == "" {
		c.System.Timezone = "UTC"
	}
}
