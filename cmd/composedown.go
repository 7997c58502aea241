// cmd/composedown.go
package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"feedock/internal/compose"
	"feedock/internal/config"
	"feedock/internal/lifecycle"
)

var composeDownCommand = &cobra.Command{
	Use:   "compose-down",
	Short: "Tear down the compose service set",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			logrus.Fatalf("Failed to load config: %v", err)
		}

		if err := lifecycle.Run(cmd.Context(), lifecycle.ComposeDownSteps(compose.New(cfg))); err != nil {
			logrus.Errorf("compose down: %v", err)
			os.Exit(compose.ExitCode(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(composeDownCommand)
}
