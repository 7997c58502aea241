// cmd/logs.go
package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"feedock/internal/config"
	"feedock/internal/engine"
)

var logsTail string

var logsCommand = &cobra.Command{
	Use:   "logs",
	Short: "Follow the dashboard container's output",
	Long:  "Attach to the dashboard container's output stream and follow it until interrupted.",
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

		if err := client.StreamLogs(cmd.Context(), cfg.Container, true, logsTail); err != nil {
			logrus.Fatalf("Failed to stream logs: %v", err)
		}
	},
}

func init() {
	logsCommand.Flags().StringVar(&logsTail, "tail", "all", "Number of lines to show from the end of the logs")
	rootCmd.AddCommand(logsCommand)
}
