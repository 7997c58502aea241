// internal/engine/build.go
package engine

import (
	"context"
	"fmt"
	"os"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/pkg/archive"
	"github.com/docker/docker/pkg/jsonmessage"
	"golang.org/x/term"
)

// BuildImage builds an image from opts.ContextDir and streams the engine's
// build progress to stdout. A failure reported inside the progress stream
// is returned as the build error.
func (c *Client) BuildImage(ctx context.Context, opts BuildOptions) error {
	buildCtx, err := archive.TarWithOptions(opts.ContextDir, &archive.TarOptions{})
	if err != nil {
		return fmt.Errorf("failed to create build context: %w", err)
	}
	defer buildCtx.Close()

	resp, err := c.api.ImageBuild(ctx, buildCtx, types.ImageBuildOptions{
		Tags:       []string{opts.Tag},
		Dockerfile: opts.Dockerfile,
		Remove:     true,
		NoCache:    opts.NoCache,
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	fd := os.Stdout.Fd()
	return jsonmessage.DisplayJSONMessagesStream(resp.Body, os.Stdout, fd, term.IsTerminal(int(fd)), nil)
}
