// cmd/shell.go
package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"feedock/internal/config"
	"feedock/internal/engine"
)

var shellCommand = &cobra.Command{
	Use:   "shell",
	Short: "Open an interactive shell in the dashboard container",
	Long:  "Open an interactive shell inside the running dashboard container and block until it exits. The exit status of the remote shell becomes this command's exit status.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			logrus.Fatalf("Failed to load config: %v", err)
		}

		client, err := engine.New()
		if err != nil {
			logrus.Fatalf("Failed to create docker client: %v", err)
		}
		defer client.Close()

		code, err := client.Shell(cmd.Context(), cfg.Container, cfg.Shell)
		if err != nil {
			logrus.Fatalf("Failed to open shell: %v", err)
		}
		if code != 0 {
			os.Exit(code)
		}
	},
}

func init() {
	rootCmd.AddCommand(shellCommand)
}
