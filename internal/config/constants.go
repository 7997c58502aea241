// internal/config/constants.go
package config

const (
	// Image and container identity
	DefaultImage     = "fees-app"
	DefaultTag       = "latest"
	DefaultContainer = "fees-app"

	// Port binding (Streamlit serves on 8501)
	DefaultHostPort = "8501"
	DefaultAppPort  = "8501"

	// Build inputs
	DefaultBuildContext = "."
	DefaultDockerfile   = "Dockerfile"

	// Compose inputs
	DefaultComposeFile    = "docker-compose.yml"
	DefaultComposeProject = ""

	// Interactive shell inside the container
	DefaultShell = "/bin/bash"

	// Logging
	DefaultLogLevel = "info"

	// Optional config file, overridable via FEEDOCK_CONFIG
	DefaultConfigFile = "feedock.yaml"
)
