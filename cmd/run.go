// cmd/run.go
package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"feedock/internal/config"
	"feedock/internal/engine"
	"feedock/internal/lifecycle"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Start the dashboard container",
	Long:  "Create and start the dashboard container detached, publishing the fixed host port. The engine rejects the run if the name is already taken.",
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

		if err := lifecycle.Run(cmd.Context(), lifecycle.RunSteps(client, cfg)); err != nil {
			logrus.Fatalf("Failed to start container: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCommand)
}
