// Quillboot-sockettest exercises the quillboot bridge socket.
//
// It connects to a running quillboot instance and pushes synthetic property
// updates, standing in for the boot orchestrator during development.
//
// Usage:
//
//	quillboot-sockettest [command] [flags]
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/quill-os/quillboot/internal/host"
)

var (
	socketPath  string
	errorReason string
	toastText   string
	durationMs  int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "quillboot-sockettest",
	Short: "Test the quillboot bridge socket",
	Long: `Push synthetic property updates into a running quillboot instance.

Stands in for the boot orchestrator: drives the boot splash progress,
raises toasts, and triggers the fatal error page.`,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&socketPath, "socket", host.DefaultSocketPath, "Bridge socket path")

	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(toastCmd)
	rootCmd.AddCommand(fatalCmd)
}

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Drive the boot splash through a full progress ramp",
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := host.Dial(socketPath)
		if err != nil {
			return err
		}
		defer conn.Close()

		if err := conn.Send(host.ShowPageMsg{Page: host.PageSplash}); err != nil {
			return err
		}

		for i := 0; i <= 100; i += 5 {
			if err := conn.Send(host.BootProgressMsg{Progress: float64(i) / 100}); err != nil {
				return err
			}
			time.Sleep(100 * time.Millisecond)
		}

		return conn.Send(host.StartupFinishedMsg{})
	},
}

var toastCmd = &cobra.Command{
	Use:   "toast",
	Short: "Raise a toast overlay",
	RunE: func(cmd *cobra.Command, args []string) error {
		return host.Push(socketPath, host.ToastMsg{
			Message:    toastText,
			DurationMs: durationMs,
		})
	},
}

func init() {
	toastCmd.Flags().StringVar(&toastText, "message", "Test toast", "Toast message")
	toastCmd.Flags().IntVar(&durationMs, "duration", 3000, "Dismiss countdown in milliseconds")
}

var fatalCmd = &cobra.Command{
	Use:   "fatal",
	Short: "Trigger the fatal error page",
	RunE: func(cmd *cobra.Command, args []string) error {
		return host.Push(socketPath, host.FatalErrorMsg{
			ErrorReason:   errorReason,
			ProgramOutput: "mount: /overlay: mount failed\n",
			KernelBuffer:  "EXT4-fs (mmcblk0p6): unable to read superblock\n",
			DebugPayload:  "quillboot-test-trace",
		})
	},
}

func init() {
	fatalCmd.Flags().StringVar(&errorReason, "reason", "(No reason provided)", "Error reason")
}
