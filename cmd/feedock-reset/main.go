// cmd/feedock-reset/main.go
//
// Hard reset for the fee dashboard: tear down whatever exists (compose
// services, container, image, builder cache) and rebuild the image from
// scratch with caching disabled. Teardown is best-effort so the reset is
// safe to run from any starting state; only the rebuild itself can fail
// the process.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"feedock/internal/compose"
	"feedock/internal/config"
	"feedock/internal/engine"
	"feedock/internal/lifecycle"
)

func main() {
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logLevel())

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	client, err := engine.New()
	if err != nil {
		logrus.Fatalf("Failed to create docker client: %v", err)
	}
	defer client.Close()

	logrus.Infof("Resetting %s from scratch", cfg.ImageRef())
	steps := lifecycle.ResetSteps(client, compose.New(cfg), cfg)
	if err := lifecycle.Run(context.Background(), steps); err != nil {
		// No start guidance after a failed rebuild: there is nothing to start.
		logrus.Fatalf("Rebuild failed: %v", err)
	}

	fmt.Print(lifecycle.Guidance(cfg))
}

// logLevel resolves FEEDOCK_LOG_LEVEL, warning and falling back to the
// default when the value does not parse.
func logLevel() logrus.Level {
	raw := config.EnvOr("FEEDOCK_LOG_LEVEL", config.DefaultLogLevel)
	level, err := logrus.ParseLevel(raw)
	if err != nil {
		logrus.Warnf("Invalid log level %q, using %q", raw, config.DefaultLogLevel)
		level, _ = logrus.ParseLevel(config.DefaultLogLevel)
	}
	return level
}
