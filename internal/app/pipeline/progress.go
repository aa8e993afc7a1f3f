package pipeline

import (
	"io"
	"os"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"memomaker/internal/app/router"
)

// ProgressConfig controls whether a terminal step indicator is rendered.
type ProgressConfig struct {
	Enabled bool
	Writer  io.Writer
}

// StepTracker renders the run's fixed milestones as a step-indicator bar.
// Disabled trackers are no-ops, so callers never branch on TTY state.
type StepTracker struct {
	container *mpb.Progress
	bar       *mpb.Bar
	enabled   bool
}

// StepsFor returns how many progress steps a run has: validation,
// upload (upload path only), generation, memo.
func StepsFor(method router.Method, sizeBytes int64, cfg router.Config) int {
	steps := 3
	if method == router.MethodUpload ||
		(method == router.MethodAuto && sizeBytes >= cfg.InlineThreshold) {
		steps++
	}
	return steps
}

// NewStepTracker builds the milestone bar for one run.
func NewStepTracker(config ProgressConfig, totalSteps int, description string) *StepTracker {
	if !config.Enabled {
		return &StepTracker{enabled: false}
	}

	writer := config.Writer
	if writer == nil {
		writer = os.Stderr
	}

	container := mpb.New(
		mpb.WithOutput(writer),
		mpb.WithRefreshRate(120*time.Millisecond),
	)
	bar := container.AddBar(int64(totalSteps),
		mpb.PrependDecorators(
			decor.Name(description+" ", decor.WC{W: len(description) + 1, C: decor.DindentRight}),
			decor.CountersNoUnit("(%d/%d)", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.OnComplete(decor.Percentage(decor.WCSyncSpace), " ✓ "),
		),
	)

	return &StepTracker{
		container: container,
		bar:       bar,
		enabled:   true,
	}
}

// Step advances the bar by one milestone.
func (st *StepTracker) Step() {
	if st.enabled && st.bar != nil {
		st.bar.Increment()
	}
}

// Complete fills the bar regardless of remaining steps and waits for the
// final render.
func (st *StepTracker) Complete() {
	if st.enabled && st.bar != nil {
		st.bar.SetTotal(st.bar.Current(), true)
		st.container.Wait()
	}
}

// Abandon stops rendering without completing the bar.
func (st *StepTracker) Abandon() {
	if st.enabled && st.bar != nil {
		st.bar.Abort(true)
		st.container.Wait()
	}
}

// IsTTY reports whether writer is an interactive terminal.
func IsTTY(writer io.Writer) bool {
	if writer == nil {
		return false
	}
	if file, ok := writer.(*os.File); ok {
		stat, err := file.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
	return false
}
