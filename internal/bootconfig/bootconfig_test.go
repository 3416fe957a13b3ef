package bootconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewBootConfig(t *testing.T) {
	cfg := NewBootConfig()

	if cfg.Flags.FirstBootDone {
		t.Error("NewBootConfig().Flags.FirstBootDone should be false by default")
	}

	if cfg.RootFS.PersistentStorage {
		t.Error("NewBootConfig().RootFS.PersistentStorage should be false by default")
	}

	if cfg.System.Timezone != "UTC" {
		t.Errorf("NewBootConfig().System.Timezone = %v, want UTC", cfg.System.Timezone)
	}

	if cfg.Display.ScalingFactor != 1 {
		t.Errorf("NewBootConfig().Display.ScalingFactor = %v, want 1", cfg.Display.ScalingFactor)
	}

	if cfg.Display.ButtonScalingMultiplier != 1.0 {
		t.Errorf("NewBootConfig().Display.ButtonScalingMultiplier = %v, want 1.0", cfg.Display.ButtonScalingMultiplier)
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boot_config.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Missing file must behave like a fresh device
	if cfg.Flags.FirstBootDone {
		t.Error("missing config should not set FirstBootDone")
	}
}

func TestLoadCorruptedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boot_config.yaml")
	if err := os.WriteFile(path, []byte("{{{ not yaml"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Corrupted config implies the device already booted once
	if !cfg.Flags.FirstBootDone {
		t.Error("corrupted config should force FirstBootDone")
	}

	if cfg.Display.ScalingFactor != 1 {
		t.Errorf("corrupted config should fall back to defaults, ScalingFactor = %v", cfg.Display.ScalingFactor)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boot", "boot_config.yaml")

	cfg := NewBootConfig()
	cfg.Flags.FirstBootDone = true
	cfg.RootFS.PersistentStorage = true
	cfg.RootFS.SystemdTargetsTotal = 42
	cfg.Display.ScalingFactor = 2
	cfg.Display.ButtonScalingMultiplier = 1.5
	cfg.System.Timezone = "Europe/Paris"

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !loaded.Flags.FirstBootDone {
		t.Error("FirstBootDone lost in roundtrip")
	}
	if !loaded.RootFS.PersistentStorage {
		t.Error("PersistentStorage lost in roundtrip")
	}
	if loaded.RootFS.SystemdTargetsTotal != 42 {
		t.Errorf("SystemdTargetsTotal = %v, want 42", loaded.RootFS.SystemdTargetsTotal)
	}
	if loaded.Display.ScalingFactor != 2 {
		t.Errorf("ScalingFactor = %v, want 2", loaded.Display.ScalingFactor)
	}
	if loaded.Display.ButtonScalingMultiplier != 1.5 {
		t.Errorf("ButtonScalingMultiplier = %v, want 1.5", loaded.Display.ButtonScalingMultiplier)
	}
	if loaded.System.Timezone != "Europe/Paris" {
		t.Errorf("Timezone = %v, want Europe/Paris", loaded.System.Timezone)
	}
}

func TestLoadNormalizesBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boot_config.yaml")
	data := []byte("display:\n  scaling_factor: 0\n  button_scaling_multiplier: -2.0\nsystem:\n  timezone: \"\"\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Display.ScalingFactor != 1 {
		t.Errorf("ScalingFactor = %v, want clamped to 1", cfg.Display.ScalingFactor)
	}
	if cfg.Display.ButtonScalingMultiplier != 1.0 {
		t.Errorf("ButtonScalingMultiplier = %v, want 1.0", cfg.Display.ButtonScalingMultiplier)
	}
	if cfg.System.Timezone != "UTC" {
		t.Errorf("Timezone = %v, want UTC", cfg.System.Timezone)
	}
}
