package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"memomaker/internal/app/model"
	"memomaker/internal/app/output"
	"memomaker/internal/app/prompt"
	"memomaker/internal/app/repository"
	"memomaker/internal/app/router"
)

// Pipeline runs one audio file end to end: validation, method resolution,
// transcript generation, memo generation over the transcript, artifact
// writes and a history record. One run at a time.
type Pipeline struct {
	router *router.Router
	db     repository.RunDAO
	logger *zap.Logger
}

// RunParams carries the per-run inputs.
type RunParams struct {
	AudioPath string
	Method    router.Method
	Templates *prompt.Templates
	Artifacts output.Artifacts

	// OnMilestone, when set, receives the router's progress milestones.
	OnMilestone router.MilestoneFunc
}

func NewPipeline(rt *router.Router, db repository.RunDAO, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{router: rt, db: db, logger: logger}
}

func (p *Pipeline) Close() error {
	return p.db.Close()
}

// Run processes a single audio file. The returned record reflects the
// terminal state of the run; err is non-nil for rejected and failed runs.
// A failed run leaves any previous output files untouched.
func (p *Pipeline) Run(ctx context.Context, params RunParams) (*model.RunRecord, error) {
	rec := &model.RunRecord{
		ID:        uuid.NewString(),
		FilePath:  params.AudioPath,
		FileName:  filepath.Base(params.AudioPath),
		Provider:  p.router.Client().Name(),
		CreatedAt: time.Now(),
	}

	if params.OnMilestone != nil {
		p.router.SetMilestoneFunc(params.OnMilestone)
	}

	if err := prompt.Validate(params.Templates.Transcript); err != nil {
		return p.rejectPrompt(rec, fmt.Errorf("transcript prompt: %w", err))
	}
	if err := prompt.Validate(params.Templates.Memo); err != nil {
		return p.rejectPrompt(rec, fmt.Errorf("memo prompt: %w", err))
	}

	sub, res := p.router.NewSubmission(params.AudioPath)
	if !res.OK {
		p.logger.Warn("submission rejected",
			zap.String("file", rec.FileName),
			zap.String("kind", string(res.Kind)),
			zap.String("reason", res.Reason),
		)
		return p.reject(rec, res)
	}
	rec.SizeBytes = sub.SizeBytes

	method := p.router.ResolveMethod(sub.SizeBytes, params.Method)
	rec.Method = string(method)

	start := time.Now()
	transcript, usage, err := p.router.Submit(ctx, sub, method, params.Templates.Transcript)
	if err != nil {
		return p.fail(rec, err)
	}

	if err := params.Artifacts.WriteTranscript(transcript); err != nil {
		return p.fail(rec, err)
	}
	p.logger.Info("transcript saved", zap.String("path", params.Artifacts.TranscriptPath))

	memoResult, err := p.router.Client().GenerateFromText(ctx, params.Templates.Memo, transcript)
	if err != nil {
		return p.fail(rec, &router.RemoteServiceError{Provider: rec.Provider, Err: err})
	}

	memo := output.StripMarkdownFence(memoResult.Text)
	if err := params.Artifacts.WriteMemo(memo); err != nil {
		return p.fail(rec, err)
	}
	p.logger.Info("memo saved", zap.String("path", params.Artifacts.MemoPath))

	usage.Add(memoResult.Usage)
	rec.InputTokens = usage.InputTokens
	rec.OutputTokens = usage.OutputTokens
	rec.TotalTokens = usage.TotalTokens
	rec.ElapsedMs = time.Since(start).Milliseconds()
	rec.State = model.StateCompleted

	p.record(rec)
	return rec, nil
}

func (p *Pipeline) reject(rec *model.RunRecord, res router.ValidationResult) (*model.RunRecord, error) {
	rec.State = model.StateRejected
	rec.ErrorMessage = res.Reason
	p.record(rec)
	return rec, &router.ValidationError{Result: res}
}

func (p *Pipeline) rejectPrompt(rec *model.RunRecord, err error) (*model.RunRecord, error) {
	rec.State = model.StateRejected
	rec.ErrorMessage = err.Error()
	p.record(rec)
	return rec, err
}

func (p *Pipeline) fail(rec *model.RunRecord, err error) (*model.RunRecord, error) {
	rec.State = model.StateFailed
	rec.ErrorMessage = err.Error()
	p.record(rec)
	return rec, err
}

func (p *Pipeline) record(rec *model.RunRecord) {
	if p.db == nil {
		return
	}
	if err := p.db.RecordRun(rec); err != nil {
		// History is best-effort; a bookkeeping failure must not mask the
		// run's own outcome.
		p.logger.Warn("failed to record run history", zap.Error(err))
	}
}
