// Package bootconfig loads and persists the quillboot boot configuration.
//
// The configuration lives as a YAML file on the data partition
// (/data/boot/boot_config.yaml) and carries the settings the boot menu can
// change (persistent root filesystem, UI scaling) alongside values the boot
// orchestrator learns over time (systemd target count for progress scaling,
// first-boot marker).
//
// A missing file yields defaults; a corrupted file yields defaults with the
// first-boot marker forced on, since re-provisioning an initialized device
// is the more destructive failure mode.
package bootconfig
