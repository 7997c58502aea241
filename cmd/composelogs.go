// cmd/composelogs.go
package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"feedock/internal/compose"
	"feedock/internal/config"
)

var composeLogsCommand = &cobra.Command{
	Use:   "compose-logs",
	Short: "Follow the compose service set's combined output",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			logrus.Fatalf("Failed to load config: %v", err)
		}

		if err := compose.New(cfg).Logs(cmd.Context()); err != nil {
			logrus.Errorf("compose logs: %v", err)
			os.Exit(compose.ExitCode(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(composeLogsCommand)
}
