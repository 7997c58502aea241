package engine

// BuildOptions describes one image build.
type BuildOptions struct {
	ContextDir string // build context directory
	Dockerfile string // path relative to the context
	Tag        string // name:tag for the result
	NoCache    bool   // docker build --no-cache
}

// RunOptions describes the single application container.
type RunOptions struct {
	Image    string
	Name     string
	HostPort string // host side of the fixed port binding
	AppPort  string // container side
}
