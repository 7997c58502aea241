// cmd/composeup.go
package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"feedock/internal/compose"
	"feedock/internal/config"
	"feedock/internal/lifecycle"
)

var composeUpCommand = &cobra.Command{
	Use:   "compose-up",
	Short: "Bring up the compose service set detached",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			logrus.Fatalf("Failed to load config: %v", err)
		}

		if err := lifecycle.Run(cmd.Context(), lifecycle.ComposeUpSteps(compose.New(cfg))); err != nil {
			logrus.Errorf("compose up: %v", err)
			os.Exit(compose.ExitCode(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(composeUpCommand)
}
