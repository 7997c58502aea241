package lifecycle

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"feedock/internal/config"
	"feedock/internal/engine"
)

var (
	errNoSuchContainer = errors.New("Error response from daemon: No such container: fees-app")
	errNoSuchImage     = errors.New("Error response from daemon: No such image: fees-app:latest")
)

// fakeEngine simulates the daemon's view of the named image and container
// and records every call in order.
type fakeEngine struct {
	calls []string

	imagePresent bool
	container    string // "absent", "stopped", "running"

	builds    int
	lastBuild engine.BuildOptions
	buildErr  error
	lastRun   engine.RunOptions

	pruneSystem, pruneImages, pruneCache int
}

func newFakeEngine(imagePresent bool, container string) *fakeEngine {
	return &fakeEngine{imagePresent: imagePresent, container: container}
}

func (f *fakeEngine) BuildImage(_ context.Context, opts engine.BuildOptions) error {
	f.calls = append(f.calls, "build")
	if f.buildErr != nil {
		return f.buildErr
	}
	f.builds++
	f.lastBuild = opts
	f.imagePresent = true
	return nil
}

func (f *fakeEngine) RunContainer(_ context.Context, opts engine.RunOptions) (string, error) {
	f.calls = append(f.calls, "run")
	if f.container != "absent" {
		return "", errors.New(`Error response from daemon: Conflict. The container name "/fees-app" is already in use`)
	}
	if !f.imagePresent {
		return "", errNoSuchImage
	}
	f.container = "running"
	f.lastRun = opts
	return "0123456789ab", nil
}

func (f *fakeEngine) StopContainer(context.Context, string) error {
	f.calls = append(f.calls, "stop")
	if f.container == "absent" {
		return errNoSuchContainer
	}
	// stopping an already stopped container is a no-op success
	f.container = "stopped"
	return nil
}

func (f *fakeEngine) RemoveContainer(context.Context, string) error {
	f.calls = append(f.calls, "rm")
	switch f.container {
	case "absent":
		return errNoSuchContainer
	case "running":
		return errors.New("Error response from daemon: cannot remove a running container")
	}
	f.container = "absent"
	return nil
}

func (f *fakeEngine) RemoveImage(context.Context, string) error {
	f.calls = append(f.calls, "rmi")
	if !f.imagePresent {
		return errNoSuchImage
	}
	if f.container != "absent" {
		return errors.New("Error response from daemon: conflict: image is being used by container")
	}
	f.imagePresent = false
	return nil
}

func (f *fakeEngine) PruneSystem(context.Context) (uint64, error) {
	f.calls = append(f.calls, "prune-system")
	f.pruneSystem++
	return 1024, nil
}

func (f *fakeEngine) PruneImages(context.Context) (uint64, error) {
	// dangling-only, as the engine prunes: the tagged image survives even
	// when no container references it
	f.calls = append(f.calls, "prune-images")
	f.pruneImages++
	return 2048, nil
}

func (f *fakeEngine) PruneBuildCache(context.Context) (uint64, error) {
	f.calls = append(f.calls, "prune-cache")
	f.pruneCache++
	return 4096, nil
}

type fakeComposer struct {
	ups, downs int
	downErr    error
}

func (f *fakeComposer) Up(context.Context) error {
	f.ups++
	return nil
}

func (f *fakeComposer) Down(context.Context) error {
	f.downs++
	return f.downErr
}

func testConfig() config.Config {
	return config.Default()
}

func TestRunStopsAtFatalStep(t *testing.T) {
	boom := errors.New("boom")
	var after int
	steps := []Step{
		{Name: "first", Run: func(context.Context) error { return nil }},
		{Name: "explodes", Run: func(context.Context) error { return boom }},
		{Name: "never", Run: func(context.Context) error { after++; return nil }},
	}
	err := Run(context.Background(), steps)
	if !errors.Is(err, boom) {
		t.Fatalf("Run returned %v, want the step error unchanged", err)
	}
	if after != 0 {
		t.Error("steps after the fatal one still ran")
	}
}

func TestRunToleratesAnyFailure(t *testing.T) {
	var tail int
	steps := []Step{
		{Name: "gone", Tolerant: true, Run: func(context.Context) error { return errNoSuchContainer }},
		{Name: "denied", Tolerant: true, Run: func(context.Context) error { return errors.New("permission denied") }},
		{Name: "tail", Run: func(context.Context) error { tail++; return nil }},
	}
	if err := Run(context.Background(), steps); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if tail != 1 {
		t.Error("sequence did not continue past tolerant failures")
	}
}

func TestResetOrder(t *testing.T) {
	e := newFakeEngine(true, "running")
	c := &fakeComposer{downErr: errors.New("no configuration file provided")}
	if err := Run(context.Background(), ResetSteps(e, c, testConfig())); err != nil {
		t.Fatalf("reset: %v", err)
	}
	want := []string{"stop", "rm", "rmi", "prune-cache", "build"}
	if !reflect.DeepEqual(e.calls, want) {
		t.Errorf("engine calls = %v, want %v", e.calls, want)
	}
	if c.downs != 1 {
		t.Errorf("compose down ran %d times, want 1", c.downs)
	}
	if !e.lastBuild.NoCache {
		t.Error("rebuild ran with layer caching enabled")
	}
}

func TestResetFromAnyState(t *testing.T) {
	cases := []struct {
		name         string
		imagePresent bool
		container    string
	}{
		{"nothing", false, "absent"},
		{"image only", true, "absent"},
		{"image and stopped container", true, "stopped"},
		{"image and running container", true, "running"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newFakeEngine(tc.imagePresent, tc.container)
			if err := Run(context.Background(), ResetSteps(e, &fakeComposer{}, testConfig())); err != nil {
				t.Fatalf("reset: %v", err)
			}
			if e.container != "absent" {
				t.Errorf("container state after reset = %s, want absent", e.container)
			}
			if !e.imagePresent || e.builds != 1 {
				t.Errorf("image not rebuilt (present=%v builds=%d)", e.imagePresent, e.builds)
			}
			if e.pruneCache != 1 {
				t.Errorf("builder cache pruned %d times, want 1", e.pruneCache)
			}
		})
	}
}

func TestResetBuildFailureAborts(t *testing.T) {
	e := newFakeEngine(false, "absent")
	e.buildErr = errors.New(`process "pip install -r requirements.txt" did not complete successfully`)
	err := Run(context.Background(), ResetSteps(e, &fakeComposer{}, testConfig()))
	if err == nil {
		t.Fatal("build failure did not abort the sequence")
	}
	if !errors.Is(err, e.buildErr) {
		t.Errorf("build error rewritten: %v", err)
	}
}

func TestStopPropagatesMissingContainer(t *testing.T) {
	e := newFakeEngine(false, "absent")
	err := Run(context.Background(), StopSteps(e, testConfig()))
	if !errors.Is(err, errNoSuchContainer) {
		t.Fatalf("stop on missing container returned %v", err)
	}
	if len(e.calls) != 1 {
		t.Errorf("remove still ran after failed stop: %v", e.calls)
	}
}

func TestStopThenRemove(t *testing.T) {
	e := newFakeEngine(true, "running")
	if err := Run(context.Background(), StopSteps(e, testConfig())); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if want := []string{"stop", "rm"}; !reflect.DeepEqual(e.calls, want) {
		t.Errorf("calls = %v, want %v", e.calls, want)
	}
	if e.container != "absent" {
		t.Errorf("container = %s after stop, want absent", e.container)
	}
}

func TestCleanIsExactlyTwoPrunes(t *testing.T) {
	e := newFakeEngine(true, "running")
	if err := Run(context.Background(), CleanSteps(e)); err != nil {
		t.Fatalf("clean: %v", err)
	}
	if want := []string{"prune-system", "prune-images"}; !reflect.DeepEqual(e.calls, want) {
		t.Errorf("calls = %v, want %v", e.calls, want)
	}
	if !e.imagePresent || e.container != "running" {
		t.Error("clean touched the named image or container")
	}
}

func TestCleanKeepsImageWithoutContainer(t *testing.T) {
	// the state stop leaves behind: image present, container gone
	e := newFakeEngine(true, "absent")
	if err := Run(context.Background(), CleanSteps(e)); err != nil {
		t.Fatalf("clean: %v", err)
	}
	if !e.imagePresent {
		t.Error("clean removed the tagged image")
	}
	if e.pruneImages != 1 {
		t.Errorf("image prune ran %d times, want 1", e.pruneImages)
	}
}

func TestRunSurfacesNameConflict(t *testing.T) {
	e := newFakeEngine(true, "stopped")
	err := Run(context.Background(), RunSteps(e, testConfig()))
	if err == nil || !strings.Contains(err.Error(), "already in use") {
		t.Fatalf("run with existing name returned %v", err)
	}
}

func TestRunPassesFixedIdentifiers(t *testing.T) {
	e := newFakeEngine(true, "absent")
	cfg := testConfig()
	cfg.Container = "dash-test"
	cfg.HostPort = "9999"
	if err := Run(context.Background(), RunSteps(e, cfg)); err != nil {
		t.Fatalf("run: %v", err)
	}
	if e.lastRun.Name != "dash-test" || e.lastRun.HostPort != "9999" {
		t.Errorf("identifiers not passed through: %+v", e.lastRun)
	}
	if e.lastRun.Image != cfg.ImageRef() {
		t.Errorf("image ref = %q, want %q", e.lastRun.Image, cfg.ImageRef())
	}
}

func TestBuildHonorsNoCache(t *testing.T) {
	e := newFakeEngine(false, "absent")
	if err := Run(context.Background(), BuildSteps(e, testConfig(), false)); err != nil {
		t.Fatalf("build: %v", err)
	}
	if e.lastBuild.NoCache {
		t.Error("cached build requested no-cache")
	}
	if err := Run(context.Background(), BuildSteps(e, testConfig(), true)); err != nil {
		t.Fatalf("build: %v", err)
	}
	if !e.lastBuild.NoCache {
		t.Error("no-cache flag not passed through")
	}
}

func TestComposeSteps(t *testing.T) {
	c := &fakeComposer{}
	if err := Run(context.Background(), ComposeUpSteps(c)); err != nil {
		t.Fatalf("compose up: %v", err)
	}
	if err := Run(context.Background(), ComposeDownSteps(c)); err != nil {
		t.Fatalf("compose down: %v", err)
	}
	if c.ups != 1 || c.downs != 1 {
		t.Errorf("ups=%d downs=%d, want 1 and 1", c.ups, c.downs)
	}
}

func TestGuidanceNamesBothForms(t *testing.T) {
	g := Guidance(testConfig())
	if !strings.Contains(g, "docker run -d -p 8501:8501 --name fees-app fees-app:latest") {
		t.Errorf("raw docker form missing:\n%s", g)
	}
	if !strings.Contains(g, "feedock run") {
		t.Errorf("dispatcher form missing:\n%s", g)
	}
}
