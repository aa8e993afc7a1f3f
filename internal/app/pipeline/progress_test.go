package pipeline

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"memomaker/internal/app/router"
)

func TestStepsFor(t *testing.T) {
	cfg := router.Config{
		MinFileSize:     64,
		MaxFileSize:     1 << 20,
		InlineThreshold: 4 << 10,
	}

	tests := []struct {
		name      string
		method    router.Method
		sizeBytes int64
		want      int
	}{
		{name: "auto small file stays inline", method: router.MethodAuto, sizeBytes: 100, want: 3},
		{name: "auto at threshold adds upload step", method: router.MethodAuto, sizeBytes: 4 << 10, want: 4},
		{name: "explicit upload adds upload step", method: router.MethodUpload, sizeBytes: 100, want: 4},
		{name: "explicit inline never uploads", method: router.MethodInline, sizeBytes: 1 << 19, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StepsFor(tt.method, tt.sizeBytes, cfg))
		})
	}
}

func TestDisabledTrackerIsNoOp(t *testing.T) {
	st := NewStepTracker(ProgressConfig{Enabled: false}, 3, "Processing")

	// None of these may panic or block when rendering is off.
	st.Step()
	st.Step()
	st.Complete()
	st.Abandon()
}

func TestEnabledTrackerRenders(t *testing.T) {
	var buf bytes.Buffer
	st := NewStepTracker(ProgressConfig{Enabled: true, Writer: &buf}, 3, "Processing")

	st.Step()
	st.Step()
	st.Step()
	st.Complete()

	assert.NotZero(t, buf.Len())
}

func TestIsTTY(t *testing.T) {
	assert.False(t, IsTTY(nil))
	assert.False(t, IsTTY(&bytes.Buffer{}))
}
