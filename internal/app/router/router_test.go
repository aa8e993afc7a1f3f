package router

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memomaker/internal/app/model"
	"memomaker/internal/app/testutil"
)

func TestSubmitInline(t *testing.T) {
	dir := t.TempDir()
	path := writeAudioFile(t, dir, "standup.mp3", mp3Header, 512)

	mock := testutil.NewMockInferenceClient().
		WithTranscript("hello from the standup").
		WithUsage(model.UsageStats{InputTokens: 10, OutputTokens: 20, TotalTokens: 30})
	rt := newTestRouter(t, mock)

	sub, res := rt.NewSubmission(path)
	require.True(t, res.OK)

	text, usage, err := rt.Submit(context.Background(), sub, MethodAuto, "transcribe this recording")
	require.NoError(t, err)

	assert.Equal(t, "hello from the standup", text)
	assert.Equal(t, int32(30), usage.TotalTokens)
	assert.Greater(t, usage.Elapsed.Nanoseconds(), int64(0))
	assert.Equal(t, model.StateCompleted, sub.State)

	// Inline sends the raw bytes in a single call; no upload happens.
	assert.Equal(t, []string{"generate_bytes"}, mock.CallOrder())
	assert.Equal(t, 512, mock.LastBytesLen())
	assert.Equal(t, 0, mock.UploadCalls())
}

func TestSubmitUpload(t *testing.T) {
	dir := t.TempDir()
	// Larger than the test threshold so auto resolves to upload.
	path := writeAudioFile(t, dir, "allhands.wav", wavHeader, (4<<10)+100)

	mock := testutil.NewMockInferenceClient().
		WithTranscript("quarterly update").
		WithUploadHandle("files/abc-123")
	rt := newTestRouter(t, mock)

	sub, res := rt.NewSubmission(path)
	require.True(t, res.OK)

	text, _, err := rt.Submit(context.Background(), sub, MethodAuto, "transcribe this recording")
	require.NoError(t, err)

	assert.Equal(t, "quarterly update", text)
	assert.Equal(t, model.StateCompleted, sub.State)

	// Upload must complete before generation, and the generation request
	// must reference the returned handle.
	assert.Equal(t, []string{"upload", "generate_handle"}, mock.CallOrder())
	assert.Equal(t, "files/abc-123", mock.LastHandle())
	assert.Equal(t, 0, mock.GenerateFromBytesCalls())
}

func TestSubmitMilestoneOrder(t *testing.T) {
	dir := t.TempDir()

	t.Run("inline path skips the upload milestone", func(t *testing.T) {
		path := writeAudioFile(t, dir, "small.flac", flacHeader, 512)
		rt := newTestRouter(t, testutil.NewMockInferenceClient())

		var seen []Milestone
		rt.SetMilestoneFunc(func(m Milestone) { seen = append(seen, m) })

		sub, res := rt.NewSubmission(path)
		require.True(t, res.OK)
		_, _, err := rt.Submit(context.Background(), sub, MethodAuto, "transcribe this recording")
		require.NoError(t, err)

		assert.Equal(t, []Milestone{
			MilestoneValidationComplete,
			MilestoneGenerationComplete,
		}, seen)
	})

	t.Run("upload path fires all three in order", func(t *testing.T) {
		path := writeAudioFile(t, dir, "big.flac", flacHeader, (4<<10)+1)
		rt := newTestRouter(t, testutil.NewMockInferenceClient())

		var seen []Milestone
		rt.SetMilestoneFunc(func(m Milestone) { seen = append(seen, m) })

		sub, res := rt.NewSubmission(path)
		require.True(t, res.OK)
		_, _, err := rt.Submit(context.Background(), sub, MethodAuto, "transcribe this recording")
		require.NoError(t, err)

		assert.Equal(t, []Milestone{
			MilestoneValidationComplete,
			MilestoneUploadComplete,
			MilestoneGenerationComplete,
		}, seen)
	})
}

func TestSubmitRemoteFailure(t *testing.T) {
	dir := t.TempDir()

	t.Run("generation failure surfaces the provider message verbatim", func(t *testing.T) {
		remoteErr := errors.New("quota exceeded for model")
		mock := testutil.NewMockInferenceClient().
			WithName("gemini").
			WithGenerateError(remoteErr)
		rt := newTestRouter(t, mock)

		path := writeAudioFile(t, dir, "fail.mp3", mp3Header, 512)
		sub, res := rt.NewSubmission(path)
		require.True(t, res.OK)

		_, _, err := rt.Submit(context.Background(), sub, MethodInline, "transcribe this recording")
		require.Error(t, err)

		var remote *RemoteServiceError
		require.ErrorAs(t, err, &remote)
		assert.Equal(t, "gemini", remote.Provider)
		assert.ErrorIs(t, err, remoteErr)
		assert.Contains(t, err.Error(), "quota exceeded for model")
		assert.Equal(t, model.StateFailed, sub.State)

		// Exactly one attempt, no retry.
		assert.Equal(t, 1, mock.GenerateFromBytesCalls())
	})

	t.Run("upload failure stops before generation", func(t *testing.T) {
		mock := testutil.NewMockInferenceClient().
			WithUploadError(errors.New("storage unavailable"))
		rt := newTestRouter(t, mock)

		path := writeAudioFile(t, dir, "failup.mp3", mp3Header, 512)
		sub, res := rt.NewSubmission(path)
		require.True(t, res.OK)

		var seen []Milestone
		rt.SetMilestoneFunc(func(m Milestone) { seen = append(seen, m) })

		_, _, err := rt.Submit(context.Background(), sub, MethodUpload, "transcribe this recording")
		require.Error(t, err)

		var remote *RemoteServiceError
		require.ErrorAs(t, err, &remote)
		assert.Equal(t, model.StateFailed, sub.State)
		assert.Equal(t, 1, mock.UploadCalls())
		assert.Equal(t, 0, mock.GenerateFromHandleCalls())
		assert.NotContains(t, seen, MilestoneUploadComplete)
	})
}

func TestSubmitTerminalStateGuard(t *testing.T) {
	mock := testutil.NewMockInferenceClient()
	rt := newTestRouter(t, mock)

	sub := &model.AudioSubmission{
		Path:  "rejected.mp3",
		State: model.StateRejected,
	}

	_, _, err := rt.Submit(context.Background(), sub, MethodInline, "transcribe this recording")
	require.Error(t, err)
	assert.Equal(t, 0, mock.GenerateFromBytesCalls())
	assert.Equal(t, 0, mock.UploadCalls())
}
