// internal/engine/container.go
package engine

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/pkg/stdcopy"
	"github.com/docker/go-connections/nat"
)

// RunContainer creates and starts the named container detached, publishing
// the fixed host port. Duplicate names and missing images are the engine's
// errors to raise, not ours.
func (c *Client) RunContainer(ctx context.Context, opts RunOptions) (string, error) {
	port, err := nat.NewPort("tcp", opts.AppPort)
	if err != nil {
		return "", err
	}

	resp, err := c.api.ContainerCreate(ctx,
		&container.Config{
			Image:        opts.Image,
			ExposedPorts: nat.PortSet{port: struct{}{}},
		},
		&container.HostConfig{
			PortBindings: nat.PortMap{port: {{HostPort: opts.HostPort}}},
		},
		nil, nil, opts.Name)
	if err != nil {
		return "", err
	}

	if err := c.api.ContainerStart(ctx, resp.ID, container.StartOptions{}); err != nil {
		return "", err
	}
	return resp.ID, nil
}

// StopContainer sends the engine's default stop signal and waits the
// default grace period.
func (c *Client) StopContainer(ctx context.Context, name string) error {
	return c.api.ContainerStop(ctx, name, container.StopOptions{})
}

// RemoveContainer removes the stopped container.
func (c *Client) RemoveContainer(ctx context.Context, name string) error {
	return c.api.ContainerRemove(ctx, name, container.RemoveOptions{})
}

// StreamLogs copies the container's output to the caller's stdout/stderr
// until the stream ends or ctx is cancelled. Output from non-TTY containers
// arrives multiplexed and is demuxed with stdcopy.
func (c *Client) StreamLogs(ctx context.Context, name string, follow bool, tail string) error {
	info, err := c.api.ContainerInspect(ctx, name)
	if err != nil {
		return err
	}

	reader, err := c.api.ContainerLogs(ctx, name, container.LogsOptions{
		ShowStdout: true,
		ShowStderr: true,
		Follow:     follow,
		Tail:       tail,
	})
	if err != nil {
		return err
	}
	defer reader.Close()

	if info.Config != nil && info.Config.Tty {
		_, err = io.Copy(os.Stdout, reader)
	} else {
		_, err = stdcopy.StdCopy(os.Stdout, os.Stderr, reader)
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
