// internal/engine/exec.go
package engine

import (
	"context"
	"io"
	"os"

	"github.com/docker/docker/api/types/container"
	"golang.org/x/term"
)

// Shell opens an interactive session inside the named container and blocks
// until the remote shell exits. The local terminal is switched to raw mode
// for the duration. Returns the shell's exit code.
func (c *Client) Shell(ctx context.Context, name, shell string) (int, error) {
	execResp, err := c.api.ContainerExecCreate(ctx, name, container.ExecOptions{
		AttachStdin:  true,
		AttachStdout: true,
		AttachStderr: true,
		Tty:          true,
		Cmd:          []string{shell},
	})
	if err != nil {
		return 0, err
	}

	attach, err := c.api.ContainerExecAttach(ctx, execResp.ID, container.ExecStartOptions{Tty: true})
	if err != nil {
		return 0, err
	}
	defer attach.Close()

	if term.IsTerminal(int(os.Stdin.Fd())) {
		oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
		if err != nil {
			return 0, err
		}
		defer term.Restore(int(os.Stdin.Fd()), oldState)
	}

	done := make(chan struct{})
	go func() {
		_, _ = io.Copy(os.Stdout, attach.Reader)
		done <- struct{}{}
	}()
	go func() {
		_, _ = io.Copy(attach.Conn, os.Stdin)
		_ = attach.CloseWrite()
	}()
	<-done

	inspect, err := c.api.ContainerExecInspect(ctx, execResp.ID)
	if err != nil {
		return 0, err
	}
	return inspect.ExitCode, nil
}
