// cmd/stop.go
package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"feedock/internal/config"
	"feedock/internal/engine"
	"feedock/internal/lifecycle"
)

var stopCommand = &cobra.Command{
	Use:   "stop",
	Short: "Stop and remove the dashboard container",
	Long:  "Stop the dashboard container and remove it, freeing the name and the port binding.",
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

		logrus.Infof("Stopping container: %s", cfg.Container)
		if err := lifecycle.Run(cmd.Context(), lifecycle.StopSteps(client, cfg)); err != nil {
			logrus.Fatalf("Failed to stop container: %v", err)
		}
		fmt.Println(cfg.Container)
	},
}

func init() {
	rootCmd.AddCommand(stopCommand)
}
