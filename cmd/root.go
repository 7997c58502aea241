package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"feedock/internal/config"
)

var logLevel string

func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", config.DefaultLogLevel,
		"Set the logging level (\"trace\"|\"debug\"|\"info\"|\"warn\"|\"error\"|\"fatal\"|\"panic\")")
}

var rootCmd = &cobra.Command{
	Use:   "feedock",
	Short: "Manage the fee dashboard container",
	Long:  "Feedock drives the build, run and teardown of the fee dashboard container through the local Docker daemon.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			log.Fatalf("Invalid log level: %v", err)
		}
		logrus.SetLevel(level)
		logrus.SetOutput(os.Stdout)
	},
	// Reject anything that is not a registered verb so the full usage,
	// with the verb list, is printed instead of cobra's one-line hint.
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return nil
		}
		return fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())
	},
	// A bare invocation is a usage error, not a help request.
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
		os.Exit(1)
	},
}

// Execute runs the dispatcher. Usage and errors go to stdout; any
// dispatch-level failure (unknown verb, bad flag) exits with status 1.
// Runtime failures exit inside the individual commands.
func Execute() {
	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stdout)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
