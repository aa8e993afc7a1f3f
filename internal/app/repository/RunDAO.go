package repository

import (
	"memomaker/internal/app/model"
)

// RunDAO persists run history. The audio itself is never stored, only the
// per-run summary used by the history and export commands.
type RunDAO interface {
	Close() error

	RecordRun(rec *model.RunRecord) error

	GetRecent(limit int) ([]model.RunRecord, error)

	GetAll() ([]model.RunRecord, error)
}
