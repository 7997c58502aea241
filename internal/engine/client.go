// internal/engine/client.go
package engine

import (
	"github.com/docker/docker/client"
)

// Client wraps the Docker Engine API for the fixed application resources.
// Every method delegates straight to the engine: preconditions are the
// engine's to check and its errors come back unmodified.
type Client struct {
	api *client.Client
}

// New connects to the local Docker daemon using the standard environment
// settings (DOCKER_HOST and friends).
func New() (*Client, error) {
	api, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, err
	}
	return &Client{api: api}, nil
}

func (c *Client) Close() error {
	return c.api.Close()
}
