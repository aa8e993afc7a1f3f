package testutil

import (
	"sync"

	"memomaker/internal/app/model"
)

// MockRunDAO is an in-memory repository.RunDAO for tests.
type MockRunDAO struct {
	mu sync.Mutex

	records     []model.RunRecord
	recordErr   error
	closeErr    error
	closeCalled bool
}

func NewMockRunDAO() *MockRunDAO {
	return &MockRunDAO{}
}

func (m *MockRunDAO) WithRecordError(err error) *MockRunDAO {
	m.recordErr = err
	return m
}

func (m *MockRunDAO) WithCloseError(err error) *MockRunDAO {
	m.closeErr = err
	return m
}

func (m *MockRunDAO) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closeCalled = true
	return m.closeErr
}

func (m *MockRunDAO) RecordRun(rec *model.RunRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.recordErr != nil {
		return m.recordErr
	}
	m.records = append(m.records, *rec)
	return nil
}

func (m *MockRunDAO) GetRecent(limit int) ([]model.RunRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if limit > len(m.records) {
		limit = len(m.records)
	}
	out := make([]model.RunRecord, limit)
	copy(out, m.records[len(m.records)-limit:])
	return out, nil
}

func (m *MockRunDAO) GetAll() ([]model.RunRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.RunRecord, len(m.records))
	copy(out, m.records)
	return out, nil
}

func (m *MockRunDAO) Records() []model.RunRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.RunRecord, len(m.records))
	copy(out, m.records)
	return out
}

func (m *MockRunDAO) WasCloseCalled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closeCalled
}
