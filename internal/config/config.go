// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"feedock/pkg"
)

// Config carries the fixed identifiers both binaries operate on. Values are
// handed to the runtime verbatim; nothing here is validated or derived from
// runtime state.
type Config struct {
	Image          string `yaml:"image"`
	Tag            string `yaml:"tag"`
	Container      string `yaml:"container"`
	HostPort       string `yaml:"host_port"`
	AppPort        string `yaml:"app_port"`
	BuildContext   string `yaml:"build_context"`
	Dockerfile     string `yaml:"dockerfile"`
	ComposeFile    string `yaml:"compose_file"`
	ComposeProject string `yaml:"compose_project"`
	Shell          string `yaml:"shell"`
}

// Default returns the built-in configuration for the fee dashboard.
func Default() Config {
	return Config{
		Image:          DefaultImage,
		Tag:            DefaultTag,
		Container:      DefaultContainer,
		HostPort:       DefaultHostPort,
		AppPort:        DefaultAppPort,
		BuildContext:   DefaultBuildContext,
		Dockerfile:     DefaultDockerfile,
		ComposeFile:    DefaultComposeFile,
		ComposeProject: DefaultComposeProject,
		Shell:          DefaultShell,
	}
}

// Load builds the effective configuration: defaults, then the optional YAML
// file, then environment overrides. A missing config file is not an error.
func Load() (Config, error) {
	cfg := Default()

	path := EnvOr("FEEDOCK_CONFIG", DefaultConfigFile)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return Config{}, err
	}

	if v := os.Getenv("FEEDOCK_IMAGE"); v != "" {
		if name, tag := pkg.Parse(v); name != "" {
			cfg.Image, cfg.Tag = name, tag
		}
	}
	cfg.Container = EnvOr("FEEDOCK_CONTAINER", cfg.Container)
	cfg.HostPort = EnvOr("FEEDOCK_HOST_PORT", cfg.HostPort)
	cfg.AppPort = EnvOr("FEEDOCK_APP_PORT", cfg.AppPort)
	cfg.BuildContext = EnvOr("FEEDOCK_BUILD_CONTEXT", cfg.BuildContext)
	cfg.Dockerfile = EnvOr("FEEDOCK_DOCKERFILE", cfg.Dockerfile)
	cfg.ComposeFile = EnvOr("FEEDOCK_COMPOSE_FILE", cfg.ComposeFile)
	cfg.ComposeProject = EnvOr("FEEDOCK_COMPOSE_PROJECT", cfg.ComposeProject)
	cfg.Shell = EnvOr("FEEDOCK_SHELL", cfg.Shell)

	return cfg, nil
}

// ImageRef returns the name:tag reference the image is built and removed by.
func (c Config) ImageRef() string {
	return pkg.Join(c.Image, c.Tag)
}

// EnvOr returns the environment value for key, or fallback when unset.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
