// cmd/build.go
package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"feedock/internal/config"
	"feedock/internal/engine"
	"feedock/internal/lifecycle"
)

var buildNoCache bool

var buildCommand = &cobra.Command{
	Use:   "build",
	Short: "Build the dashboard image",
	Long:  "Build the dashboard image from the configured build context and tag it with the fixed name.",
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

		logrus.Infof("Building %s from %s", cfg.ImageRef(), cfg.BuildContext)
		if err := lifecycle.Run(cmd.Context(), lifecycle.BuildSteps(client, cfg, buildNoCache)); err != nil {
			logrus.Fatalf("Build failed: %v", err)
		}
	},
}

func init() {
	buildCommand.Flags().BoolVar(&buildNoCache, "no-cache", false, "Build without using the layer cache")
	rootCmd.AddCommand(buildCommand)
}
