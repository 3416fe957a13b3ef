// Quillboot is the pre-boot diagnostics and recovery interface of Quill OS.
//
// It is shown to the operator before the main operating system starts and
// lets them boot the default system, inspect version information, adjust
// boot-time settings, trigger a destructive reset, or inspect a fatal-error
// report when boot fails.
//
// Usage:
//
//	quillboot [command] [flags]
//
// Running without arguments launches the boot menu.
// See 'quillboot --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quill-os/quillboot/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "quillboot",
	Short: "Quill OS pre-boot menu",
	Long: `The initialization menu of Quill OS.

Presents the boot menu on the device console: boot the default system,
inspect version information, adjust boot-time settings, or trigger a
recovery reset. The boot orchestrator drives progress and error reports
through the bridge socket.`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBootMenu(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("quillboot %s (commit: %s)\n", version.Version, version.Commit)
	},
}
