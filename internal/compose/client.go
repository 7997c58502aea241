// internal/compose/client.go
package compose

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"feedock/internal/config"
)

// Client shells out to `docker compose` for the application's service set.
// The subprocess inherits stdio so compose's own output and prompts reach
// the caller untouched.
type Client struct {
	project string
	file    string
}

func New(cfg config.Config) *Client {
	return &Client{project: cfg.ComposeProject, file: cfg.ComposeFile}
}

// args builds the compose argv for a subcommand, injecting the project and
// file flags when configured.
func (c *Client) args(sub ...string) []string {
	cmdArgs := []string{"compose"}
	if c.project != "" {
		cmdArgs = append(cmdArgs, "-p", c.project)
	}
	if c.file != "" {
		cmdArgs = append(cmdArgs, "-f", c.file)
	}
	return append(cmdArgs, sub...)
}

func (c *Client) run(ctx context.Context, sub ...string) error {
	cmd := exec.CommandContext(ctx, "docker", c.args(sub...)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Up brings the service set up detached.
func (c *Client) Up(ctx context.Context) error {
	return c.run(ctx, "up", "-d")
}

// Down tears the service set down.
func (c *Client) Down(ctx context.Context) error {
	return c.run(ctx, "down")
}

// Logs follows the combined service output until interrupted.
func (c *Client) Logs(ctx context.Context) error {
	return c.run(ctx, "logs", "-f")
}

// ExitCode maps a run error to the subprocess exit status: 0 on nil, the
// child's own code for exit errors, 1 for anything else (docker missing,
// start failure).
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}
