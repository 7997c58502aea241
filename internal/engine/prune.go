// internal/engine/prune.go
package engine

import (
	"context"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/filters"
)

// PruneSystem removes stopped containers and unused networks, returning the
// bytes reclaimed.
func (c *Client) PruneSystem(ctx context.Context) (uint64, error) {
	report, err := c.api.ContainersPrune(ctx, filters.NewArgs())
	if err != nil {
		return 0, err
	}
	reclaimed := report.SpaceReclaimed
	if _, err := c.api.NetworksPrune(ctx, filters.NewArgs()); err != nil {
		return reclaimed, err
	}
	return reclaimed, nil
}

// PruneImages removes dangling images only. dangling=false would mean
// `docker image prune -a`, deleting the tagged application image whenever
// no container references it.
func (c *Client) PruneImages(ctx context.Context) (uint64, error) {
	report, err := c.api.ImagesPrune(ctx, filters.NewArgs(filters.Arg("dangling", "true")))
	if err != nil {
		return 0, err
	}
	return report.SpaceReclaimed, nil
}

// PruneBuildCache clears the engine's builder cache.
func (c *Client) PruneBuildCache(ctx context.Context) (uint64, error) {
	report, err := c.api.BuildCachePrune(ctx, types.BuildCachePruneOptions{All: true})
	if err != nil {
		return 0, err
	}
	return report.SpaceReclaimed, nil
}
