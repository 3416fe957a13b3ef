package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quill-os/quillboot/internal/bootconfig"
	"github.com/quill-os/quillboot/internal/debugnet"
	"github.com/quill-os/quillboot/internal/host"
	"github.com/quill-os/quillboot/internal/logging"
	"github.com/quill-os/quillboot/internal/tui"
	"github.com/quill-os/quillboot/internal/version"
)

var (
	socketPath     string
	configPath     string
	logLevel       string
	guiOnly        bool
	announceDebug  bool
	debugShellPort int
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); silent when unset")

	rootCmd.Flags().StringVar(&socketPath, "socket", host.DefaultSocketPath, "Bridge socket the boot orchestrator connects to")
	rootCmd.Flags().StringVar(&configPath, "config", bootconfig.DefaultPath, "Boot configuration file")
	rootCmd.Flags().BoolVar(&guiOnly, "gui-only", false, "Run the menu without the bridge socket (development)")
	rootCmd.Flags().BoolVar(&announceDebug, "announce-debug", false, "Announce the debug shell over mDNS")
	rootCmd.Flags().IntVar(&debugShellPort, "debug-shell-port", debugnet.DefaultPort, "Debug shell port for the mDNS announcement")
}

func runBootMenu(cmd *cobra.Command, args []string) error {
	if err := logging.Initialize(logLevel); err != nil {
		return err
	}
	defer logging.Sync()

	cfg, err := bootconfig.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load boot configuration: %w", err)
	}

	var program *tea.Program

	// Callbacks notify the host side. Power management and the actual
	// boot/reset work belong to the orchestrator; here the toggles persist
	// their setting and reflect it back into the UI, everything else is
	// logged and ends the menu where that is all it can mean.
	callbacks := host.Callbacks{
		PowerOff: func() {
			program.Quit()
		},
		Reboot: func() {
			program.Quit()
		},
		BootDefault: func() {
			program.Quit()
		},
		SoftReset: func() {
			logging.Warn("Soft reset requested")
		},
		ToggleUIScale: func() {
			cfg.Display.ScalingFactor++
			if cfg.Display.ScalingFactor > 3 {
				cfg.Display.ScalingFactor = 1
			}
			saveAndPushConfig(program, cfg)
		},
		TogglePersistentRootfs: func() {
			cfg.RootFS.PersistentStorage = !cfg.RootFS.PersistentStorage
			saveAndPushConfig(program, cfg)
		},
	}

	model := tui.NewModel(callbacks, tui.ConfigState{
		PersistentRootfs:        cfg.RootFS.PersistentStorage,
		ScalingFactor:           cfg.Display.ScalingFactor,
		ButtonScalingMultiplier: cfg.Display.ButtonScalingMultiplier,
	})

	program = tea.NewProgram(model, tea.WithAltScreen())

	if !guiOnly {
		bridge := host.NewBridge(socketPath, func(msg interface{}) {
			program.Send(msg)
		})
		if err := bridge.Start(); err != nil {
			return fmt.Errorf("failed to start host bridge: %w", err)
		}
		defer bridge.Close()
	}

	if announceDebug {
		announcer, err := debugnet.Announce(debugnet.DefaultInstance, debugShellPort, version.Version)
		if err != nil {
			// The menu is more important than the announcement
			logging.Warn("Failed to announce debug shell", zap.Error(err))
		} else {
			defer announcer.Shutdown()
		}
	}

	// Seed the UI with version info and show the menu. In production the
	// orchestrator decides between menu and splash; standalone we go
	// straight to the menu.
	go func() {
		program.Send(host.VersionInfoMsg{
			Version:      version.Full(),
			ShortVersion: version.Short(),
			KernelCommit: version.KernelCommit(),
		})
		program.Send(host.ShowPageMsg{Page: host.PageMenu})
	}()

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("boot menu failed: %w", err)
	}

	return nil
}

// saveAndPushConfig persists a toggled setting and reflects the stored
// value back into the UI, closing the two-way binding loop.
func saveAndPushConfig(program *tea.Program, cfg *bootconfig.BootConfig) {
	if err := bootconfig.Save(cfg, configPath); err != nil {
		logging.Error("Failed to save boot configuration", zap.Error(err))
	}

	if program == nil {
		return
	}
	persistent := cfg.RootFS.PersistentStorage
	scale := cfg.Display.ScalingFactor
	program.Send(host.ConfigUpdateMsg{
		PersistentRootfs: &persistent,
		ScalingFactor:    &scale,
	})
}
