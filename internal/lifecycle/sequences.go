// internal/lifecycle/sequences.go
package lifecycle

import (
	"context"
	"fmt"
	"strings"

	"github.com/docker/go-units"
	"github.com/sirupsen/logrus"

	"feedock/internal/config"
	"feedock/internal/engine"
)

// Engine is the container-runtime surface the sequences drive.
// *engine.Client implements it; tests substitute a fake.
type Engine interface {
	BuildImage(ctx context.Context, opts engine.BuildOptions) error
	RunContainer(ctx context.Context, opts engine.RunOptions) (string, error)
	StopContainer(ctx context.Context, name string) error
	RemoveContainer(ctx context.Context, name string) error
	RemoveImage(ctx context.Context, ref string) error
	PruneSystem(ctx context.Context) (uint64, error)
	PruneImages(ctx context.Context) (uint64, error)
	PruneBuildCache(ctx context.Context) (uint64, error)
}

// Composer is the compose surface the sequences drive.
type Composer interface {
	Up(ctx context.Context) error
	Down(ctx context.Context) error
}

// BuildSteps builds the image from the configured context.
func BuildSteps(e Engine, cfg config.Config, noCache bool) []Step {
	return []Step{{
		Name: "build image",
		Run: func(ctx context.Context) error {
			if err := e.BuildImage(ctx, engine.BuildOptions{
				ContextDir: cfg.BuildContext,
				Dockerfile: cfg.Dockerfile,
				Tag:        cfg.ImageRef(),
				NoCache:    noCache,
			}); err != nil {
				return err
			}
			logrus.Infof("Image built: %s", cfg.ImageRef())
			return nil
		},
	}}
}

// RunSteps creates and starts the container detached with the fixed name
// and port binding.
func RunSteps(e Engine, cfg config.Config) []Step {
	return []Step{{
		Name: "run container",
		Run: func(ctx context.Context) error {
			id, err := e.RunContainer(ctx, engine.RunOptions{
				Image:    cfg.ImageRef(),
				Name:     cfg.Container,
				HostPort: cfg.HostPort,
				AppPort:  cfg.AppPort,
			})
			if err != nil {
				return err
			}
			logrus.Infof("Container started: %s (port %s -> %s)", id, cfg.HostPort, cfg.AppPort)
			return nil
		},
	}}
}

// StopSteps stops then removes the container. Both steps surface the
// engine's errors: a missing container is a failure here, unlike in the
// reset sequence.
func StopSteps(e Engine, cfg config.Config) []Step {
	return []Step{
		{
			Name: "stop container",
			Run: func(ctx context.Context) error {
				return e.StopContainer(ctx, cfg.Container)
			},
		},
		{
			Name: "remove container",
			Run: func(ctx context.Context) error {
				return e.RemoveContainer(ctx, cfg.Container)
			},
		},
	}
}

// CleanSteps reclaims disk: one pass over stopped containers and unused
// networks, one over dangling images.
func CleanSteps(e Engine) []Step {
	return []Step{
		{
			Name: "prune system",
			Run: func(ctx context.Context) error {
				reclaimed, err := e.PruneSystem(ctx)
				if err != nil {
					return err
				}
				logrus.Infof("System pruned, reclaimed %s", units.HumanSize(float64(reclaimed)))
				return nil
			},
		},
		{
			Name: "prune images",
			Run: func(ctx context.Context) error {
				reclaimed, err := e.PruneImages(ctx)
				if err != nil {
					return err
				}
				logrus.Infof("Images pruned, reclaimed %s", units.HumanSize(float64(reclaimed)))
				return nil
			},
		},
	}
}

// ComposeUpSteps brings the service set up detached.
func ComposeUpSteps(c Composer) []Step {
	return []Step{{Name: "compose up", Run: c.Up}}
}

// ComposeDownSteps tears the service set down.
func ComposeDownSteps(c Composer) []Step {
	return []Step{{Name: "compose down", Run: c.Down}}
}

// ResetSteps is the hard-reset sequence: tear everything down regardless of
// what exists, clear the builder cache, then rebuild without cache. Every
// teardown step is best-effort so the reset is safe from any starting
// state; only the rebuild can fail the sequence.
func ResetSteps(e Engine, c Composer, cfg config.Config) []Step {
	return []Step{
		{Name: "compose down", Tolerant: true, Run: c.Down},
		{
			Name:     "stop container",
			Tolerant: true,
			Run: func(ctx context.Context) error {
				return e.StopContainer(ctx, cfg.Container)
			},
		},
		{
			Name:     "remove container",
			Tolerant: true,
			Run: func(ctx context.Context) error {
				return e.RemoveContainer(ctx, cfg.Container)
			},
		},
		{
			Name:     "remove image",
			Tolerant: true,
			Run: func(ctx context.Context) error {
				return e.RemoveImage(ctx, cfg.ImageRef())
			},
		},
		{
			Name:     "prune build cache",
			Tolerant: true,
			Run: func(ctx context.Context) error {
				reclaimed, err := e.PruneBuildCache(ctx)
				if err != nil {
					return err
				}
				logrus.Infof("Build cache cleared, reclaimed %s", units.HumanSize(float64(reclaimed)))
				return nil
			},
		},
		{
			Name: "rebuild image",
			Run: func(ctx context.Context) error {
				return e.BuildImage(ctx, engine.BuildOptions{
					ContextDir: cfg.BuildContext,
					Dockerfile: cfg.Dockerfile,
					Tag:        cfg.ImageRef(),
					NoCache:    true,
				})
			},
		},
	}
}

// Guidance is the start help printed after a successful reset: the raw
// docker command line and the equivalent dispatcher verb.
func Guidance(cfg config.Config) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Fresh image built: %s\n", cfg.ImageRef())
	fmt.Fprintf(&b, "Start it with either of:\n")
	fmt.Fprintf(&b, "  docker run -d -p %s:%s --name %s %s\n", cfg.HostPort, cfg.AppPort, cfg.Container, cfg.ImageRef())
	fmt.Fprintf(&b, "  feedock run\n")
	return b.String()
}
