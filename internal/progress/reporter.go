// Package progress reports the stages of a site build.
package progress

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Stage is one named step of a site build.
type Stage string

const (
	StageProjects Stage = "Loading projects"
	StagePage     Stage = "Writing page"
	StagePayload  Stage = "Writing projects.json"
	StageAssets   Stage = "Copying assets"
)

// BuildStages lists the stages of a build in the order they run.
var BuildStages = []Stage{StageProjects, StagePage, StagePayload, StageAssets}

// Reporter follows a build through its stages. Done is called exactly once,
// with the error that stopped the build or nil.
type Reporter interface {
	Begin(stages []Stage)
	Enter(stage Stage)
	Done(err error)
}

// NewReporter returns a LineReporter on stderr under CI, otherwise a
// BarReporter.
func NewReporter() Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &LineReporter{Out: os.Stderr}
	}
	return &BarReporter{}
}

// stageIndex returns the 1-based position of stage, or 0 when unknown.
func stageIndex(stages []Stage, stage Stage) int {
	for i, s := range stages {
		if s == stage {
			return i + 1
		}
	}
	return 0
}

// BarReporter draws a progress bar on stderr, one tick per stage.
type BarReporter struct {
	bar    *progressbar.ProgressBar
	stages []Stage
}

func (r *BarReporter) Begin(stages []Stage) {
	r.stages = stages
	r.bar = progressbar.NewOptions(len(stages),
		progressbar.OptionSetDescription("Building site"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *BarReporter) Enter(stage Stage) {
	if r.bar == nil {
		return
	}
	r.bar.Describe(string(stage))
	if i := stageIndex(r.stages, stage); i > 1 {
		_ = r.bar.Set(i - 1)
	}
}

func (r *BarReporter) Done(err error) {
	if r.bar == nil {
		return
	}
	if err != nil {
		_ = r.bar.Exit()
		return
	}
	_ = r.bar.Finish()
}

// LineReporter writes one line per stage with the time the previous stage
// took. It suits CI logs.
type LineReporter struct {
	Out io.Writer
	// Now defaults to time.Now.
	Now func() time.Time

	stages  []Stage
	current Stage
	began   time.Time
	entered time.Time
}

func (r *LineReporter) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

func (r *LineReporter) Begin(stages []Stage) {
	r.stages = stages
	r.began = r.now()
	fmt.Fprintf(r.Out, "Building site (%d stages)\n", len(stages))
}

func (r *LineReporter) Enter(stage Stage) {
	t := r.now()
	if r.current != "" {
		fmt.Fprintf(r.Out, "  %s done in %s\n", r.current, t.Sub(r.entered).Round(time.Millisecond))
	}
	r.current, r.entered = stage, t
	fmt.Fprintf(r.Out, "[%d/%d] %s\n", stageIndex(r.stages, stage), len(r.stages), stage)
}

func (r *LineReporter) Done(err error) {
	if err != nil {
		fmt.Fprintf(r.Out, "Site build failed during %q: %v\n", r.current, err)
		return
	}
	fmt.Fprintf(r.Out, "Site built in %s\n", r.now().Sub(r.began).Round(time.Millisecond))
}

// Nop discards progress.
type Nop struct{}

func (Nop) Begin([]Stage) {}
func (Nop) Enter(Stage)   {}
func (Nop) Done(error)    {}
