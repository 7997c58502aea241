// cmd/clean.go
package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"feedock/internal/engine"
	"feedock/internal/lifecycle"
)

var cleanCommand = &cobra.Command{
	Use:   "clean",
	Short: "Prune unused containers, networks and dangling images",
	Long:  "Reclaim disk by pruning stopped containers, unused networks and dangling images. Tagged images are kept.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		client, err := engine.New()
		if err != nil {
			logrus.Fatalf("Failed to create docker client: %v", err)
		}
		defer client.Close()

		if err := lifecycle.Run(cmd.Context(), lifecycle.CleanSteps(client)); err != nil {
			logrus.Fatalf("Clean failed: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(cleanCommand)
}
