// internal/engine/image.go
package engine

import (
	"context"

	"github.com/docker/docker/api/types/image"
)

// RemoveImage removes the image by reference. "No such image" and "image is
// being used" conflicts surface as the engine's errors.
func (c *Client) RemoveImage(ctx context.Context, ref string) error {
	_, err := c.api.ImageRemove(ctx, ref, image.RemoveOptions{})
	return err
}
